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

package core

import (
	"strings"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/chain"
	"github.com/ONLYOFFICE/onlyoffice-patterns/services/zoo/shared"
)

// Zoo is a configured chain of string handlers indexed by name.
type Zoo struct {
	head     *chain.Handler[string, string]
	handlers map[string]*chain.Handler[string, string]
}

// NewZoo links the configured handlers in configuration order.
func NewZoo(config *shared.ZooConfig) (*Zoo, error) {
	handlers := make([]*chain.Handler[string, string], 0, len(config.Zoo.Handlers))
	byName := make(map[string]*chain.Handler[string, string], len(config.Zoo.Handlers))
	for _, hc := range config.Zoo.Handlers {
		h := chain.New(hc.Name, chain.Equals(hc.Accepts...), reply(hc.Reply))
		handlers = append(handlers, h)
		byName[hc.Name] = h
	}

	head, err := chain.Build(handlers...)
	if err != nil {
		return nil, err
	}

	return &Zoo{
		head:     head,
		handlers: byName,
	}, nil
}

func reply(template string) chain.Action[string, string] {
	return func(request string) string {
		return strings.ReplaceAll(template, shared.RequestPlaceholder, request)
	}
}

// Head returns the first handler of the chain.
func (z *Zoo) Head() *chain.Handler[string, string] {
	return z.head
}

// Entry returns the named handler, which is the entry point of its sub-chain.
func (z *Zoo) Entry(name string) (*chain.Handler[string, string], error) {
	h, ok := z.handlers[name]
	if !ok {
		return nil, &UnknownHandlerError{Name: name}
	}

	return h, nil
}
