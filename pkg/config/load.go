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

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/functional"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v2"
)

const envTimeout = 4 * time.Second

// Validatable is a configuration pointer type that can check itself.
type Validatable[T any] interface {
	*T
	Validate() error
}

// Load builds a configuration of type T: defaults first, then the YAML file at
// path (if any), then environment overrides, then validation.
func Load[T any, P Validatable[T]](path string, defaults func(P)) (P, error) {
	return functional.From(P(new(T))).
		Next(func(config P) (P, error) {
			if defaults != nil {
				defaults(config)
			}
			return config, nil
		}).
		Next(decodeFile[T, P](path)).
		Next(processEnv[T, P]).
		Next(func(config P) (P, error) {
			return config, config.Validate()
		}).
		Do()
}

func decodeFile[T any, P Validatable[T]](path string) functional.Step[P] {
	return func(config P) (P, error) {
		if path == "" {
			return config, nil
		}

		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		return config, nil
	}
}

func processEnv[T any, P Validatable[T]](config P) (P, error) {
	ctx, cancel := context.WithTimeout(context.Background(), envTimeout)
	defer cancel()
	if err := envconfig.Process(ctx, config); err != nil {
		return nil, err
	}

	return config, nil
}
