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

type TracerConfig struct {
	Tracer struct {
		Name          string  `yaml:"name" env:"TRACER_NAME,overwrite"`
		Enable        bool    `yaml:"enable" env:"TRACER_ENABLE,overwrite"`
		Address       string  `yaml:"address" env:"TRACER_ADDRESS,overwrite"`
		TracerType    int     `yaml:"type" env:"TRACER_TYPE,overwrite"`
		FractionRatio float64 `yaml:"fraction" env:"TRACER_FRACTION_RATIO,overwrite"`
	} `yaml:"tracer"`
}

func (tc *TracerConfig) Validate() error {
	if tc.Tracer.FractionRatio < 0 || tc.Tracer.FractionRatio > 1 {
		return &InvalidConfigurationParameterError{
			Parameter: "Fraction Ratio",
			Reason:    "Should be between 0 and 1",
		}
	}

	if tc.Tracer.Enable && tc.Tracer.TracerType == 1 && tc.Tracer.Address == "" {
		return &InvalidConfigurationParameterError{
			Parameter: "Address",
			Reason:    "Zipkin tracer must have a valid address",
		}
	}

	return nil
}

func BuildNewTracerConfig(path string) func() (*TracerConfig, error) {
	return func() (*TracerConfig, error) {
		return Load(path, func(config *TracerConfig) {
			config.Tracer.FractionRatio = 1
		})
	}
}
