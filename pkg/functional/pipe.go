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

package functional

// Step transforms the piped value or stops the pipe with an error.
type Step[T any] func(input T) (T, error)

// Pipe runs its steps in order, feeding each step the previous output.
type Pipe[T any] struct {
	seed  T
	chain []Step[T]
}

// NewPipe creates a pipe seeded with the zero value of T.
func NewPipe[T any]() *Pipe[T] {
	return &Pipe[T]{}
}

// From creates a pipe seeded with val.
func From[T any](val T) *Pipe[T] {
	return &Pipe[T]{seed: val}
}

func (p *Pipe[T]) Next(f Step[T]) *Pipe[T] {
	p.chain = append(p.chain, f)
	return p
}

// Do runs the steps. The first failing step stops the pipe and its output is
// returned together with the error.
func (p *Pipe[T]) Do() (T, error) {
	res := p.seed
	var err error
	for _, fn := range p.chain {
		res, err = fn(res)
		if err != nil {
			break
		}
	}

	return res, err
}
