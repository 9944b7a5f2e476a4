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

package config

import "strings"

type ServerConfig struct {
	Namespace string `yaml:"namespace" env:"SERVER_NAMESPACE,overwrite"`
	Name      string `yaml:"name" env:"SERVER_NAME,overwrite"`
	Version   int    `yaml:"version" env:"SERVER_VERSION,overwrite"`
	Debug     bool   `yaml:"debug" env:"SERVER_DEBUG,overwrite"`
}

func (hs *ServerConfig) Validate() error {
	hs.Namespace = strings.TrimSpace(hs.Namespace)
	hs.Name = strings.TrimSpace(hs.Name)

	if hs.Namespace == "" {
		return &InvalidConfigurationParameterError{
			Parameter: "Namespace",
			Reason:    "Should not be empty",
		}
	}

	if hs.Name == "" {
		return &InvalidConfigurationParameterError{
			Parameter: "Name",
			Reason:    "Should not be empty",
		}
	}

	return nil
}

func BuildNewServerConfig(path string) func() (*ServerConfig, error) {
	return func() (*ServerConfig, error) {
		return Load(path, func(config *ServerConfig) {
			config.Namespace = "onlyoffice"
			config.Name = "patterns"
			config.Version = 1
		})
	}
}
