/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggerConfig(name string, level LogLevel) *config.LoggerConfig {
	var conf config.LoggerConfig
	conf.Logger.Name = name
	conf.Logger.Level = int(level)
	return &conf
}

func TestLogrusLogger(t *testing.T) {
	t.Run("writes to the configured file", func(t *testing.T) {
		conf := loggerConfig("zoo", LEVEL_INFO)
		conf.Logger.File.Filename = filepath.Join(t.TempDir(), "zoo.log")

		logger, err := NewLogrusLogger(conf)
		require.NoError(t, err)

		logger.Infof("monkey ate the %s", "Banana")
		logger.Debug("hidden below info")

		buf, err := os.ReadFile(conf.Logger.File.Filename)
		require.NoError(t, err)
		assert.Contains(t, string(buf), "monkey ate the Banana")
		assert.Contains(t, string(buf), "name=zoo")
		assert.NotContains(t, string(buf), "hidden below info")
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		_, err := NewLogrusLogger(loggerConfig("zoo", 42))
		var lerr *LogLevelError
		assert.ErrorAs(t, err, &lerr)
	})
}

func TestDefaultLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := newDefaultLogger(&out, &errOut, loggerConfig("zoo", LEVEL_WARNING))

	logger.Info("skipped")
	logger.Warnf("%s was left untouched", "Cup of coffee")
	logger.Error("boom")

	assert.NotContains(t, out.String(), "skipped")
	assert.Contains(t, out.String(), "[WARN - Default zoo]: ")
	assert.Contains(t, out.String(), "Cup of coffee was left untouched")
	assert.Contains(t, out.String(), "boom")
	assert.Empty(t, errOut.String())
}

func TestDefaultLoggerFatal(t *testing.T) {
	var codes []int
	exit = func(code int) { codes = append(codes, code) }
	t.Cleanup(func() { exit = os.Exit })

	t.Run("exits after logging", func(t *testing.T) {
		var out, errOut bytes.Buffer
		newDefaultLogger(&out, &errOut, loggerConfig("zoo", LEVEL_FATAL)).Fatal("unknown entry")
		assert.Contains(t, errOut.String(), "[FATAL - Default zoo]: ")
		assert.Contains(t, errOut.String(), "unknown entry")
		assert.Equal(t, []int{1}, codes)
	})

	t.Run("does not exit when filtered", func(t *testing.T) {
		codes = nil
		var out, errOut bytes.Buffer
		newDefaultLogger(&out, &errOut, loggerConfig("zoo", LEVEL_FATAL+1)).Fatalf("%s", "silent")
		assert.Empty(t, errOut.String())
		assert.Empty(t, codes)
	})
}

func TestEmptyLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		logger := NewEmptyLogger()
		logger.Info("nothing")
		logger.Errorf("%d", 1)
	})
}
