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
	"io"
	"os"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/config"
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

type LogLevel int

const (
	LEVEL_TRACE   LogLevel = 1
	LEVEL_DEBUG   LogLevel = 2
	LEVEL_INFO    LogLevel = 3
	LEVEL_WARNING LogLevel = 4
	LEVEL_ERROR   LogLevel = 5
	LEVEL_FATAL   LogLevel = 6
)

var levels = map[LogLevel]logrus.Level{
	LEVEL_TRACE:   logrus.TraceLevel,
	LEVEL_DEBUG:   logrus.DebugLevel,
	LEVEL_INFO:    logrus.InfoLevel,
	LEVEL_WARNING: logrus.WarnLevel,
	LEVEL_ERROR:   logrus.ErrorLevel,
	LEVEL_FATAL:   logrus.FatalLevel,
}

// LogrusLogger is a logrus logger wrapper.
type LogrusLogger struct {
	entry *logrus.Entry
}

func newOutput(config *config.LoggerConfig) io.Writer {
	if config.Logger.File.Filename == "" {
		return os.Stdout
	}

	return &lumberjack.Logger{
		Filename:   config.Logger.File.Filename,
		MaxSize:    config.Logger.File.MaxSize,
		MaxBackups: config.Logger.File.MaxBackups,
		MaxAge:     config.Logger.File.MaxAge,
		LocalTime:  config.Logger.File.LocalTime,
		Compress:   config.Logger.File.Compress,
	}
}

// NewLogrusLogger creates a new logger compliant with the Logger interface.
// Output goes to stdout unless a log file is configured.
func NewLogrusLogger(config *config.LoggerConfig) (Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: !config.Logger.Color,
		FullTimestamp: true,
	})

	lvl, ok := levels[LogLevel(config.Logger.Level)]
	if !ok {
		return nil, &LogLevelError{Level: config.Logger.Level}
	}

	log.SetLevel(lvl)
	log.SetOutput(newOutput(config))

	return LogrusLogger{
		entry: log.WithField("name", config.Logger.Name),
	}, nil
}

func (l LogrusLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l LogrusLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l LogrusLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l LogrusLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l LogrusLogger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func (l LogrusLogger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l LogrusLogger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l LogrusLogger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l LogrusLogger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l LogrusLogger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}
