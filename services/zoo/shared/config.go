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

package shared

import (
	"strings"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/config"
)

// RequestPlaceholder is replaced with the request in handler replies.
const RequestPlaceholder = "{request}"

type HandlerConfig struct {
	Name    string   `yaml:"name"`
	Accepts []string `yaml:"accepts"`
	Reply   string   `yaml:"reply"`
}

type ZooConfig struct {
	Zoo struct {
		Handlers []HandlerConfig `yaml:"handlers"`
		Entries  []string        `yaml:"entries" env:"ZOO_ENTRIES,overwrite"`
		Requests []string        `yaml:"requests" env:"ZOO_REQUESTS,overwrite"`
		Workers  int             `yaml:"workers" env:"ZOO_WORKERS,overwrite"`
	} `yaml:"zoo"`
}

func (zc *ZooConfig) Validate() error {
	if len(zc.Zoo.Handlers) == 0 {
		return &config.InvalidConfigurationParameterError{
			Parameter: "Handlers",
			Reason:    "Should contain at least one handler",
		}
	}

	names := make(map[string]struct{}, len(zc.Zoo.Handlers))
	for i := range zc.Zoo.Handlers {
		h := &zc.Zoo.Handlers[i]
		h.Name = strings.TrimSpace(h.Name)
		if h.Name == "" {
			return &config.InvalidConfigurationParameterError{
				Parameter: "Handler Name",
				Reason:    "Should not be empty",
			}
		}

		if _, ok := names[h.Name]; ok {
			return &config.InvalidConfigurationParameterError{
				Parameter: "Handler Name",
				Reason:    "Should be unique, got " + h.Name + " twice",
			}
		}

		names[h.Name] = struct{}{}
	}

	for i, entry := range zc.Zoo.Entries {
		zc.Zoo.Entries[i] = strings.TrimSpace(entry)
		if _, ok := names[zc.Zoo.Entries[i]]; !ok {
			return &config.InvalidConfigurationParameterError{
				Parameter: "Entries",
				Reason:    "Should name a configured handler, got " + entry,
			}
		}
	}

	if zc.Zoo.Workers < 1 {
		return &config.InvalidConfigurationParameterError{
			Parameter: "Workers",
			Reason:    "Should be positive",
		}
	}

	return nil
}

func BuildNewZooConfig(path string) func() (*ZooConfig, error) {
	return func() (*ZooConfig, error) {
		return config.Load(path, func(config *ZooConfig) {
			config.Zoo.Handlers = []HandlerConfig{
				{Name: "Monkey", Accepts: []string{"Banana"}, Reply: "Monkey: I'll eat the " + RequestPlaceholder},
				{Name: "Squirrel", Accepts: []string{"Nut"}, Reply: "Squirrel: I'll eat the " + RequestPlaceholder},
				{Name: "Dog", Accepts: []string{"MeatBall"}, Reply: "Dog: I'll eat the " + RequestPlaceholder},
			}
			config.Zoo.Entries = []string{"Monkey", "Squirrel"}
			config.Zoo.Requests = []string{"Nut", "Banana", "Cup of coffee"}
			config.Zoo.Workers = 4
		})
	}
}
