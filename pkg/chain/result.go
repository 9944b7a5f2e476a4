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

package chain

// Result is the outcome of a dispatch: either a value produced by a named
// handler or the unhandled signal.
type Result[Res any] struct {
	value   Res
	by      string
	handled bool
}

// Handled wraps a value produced by the handler called by.
func Handled[Res any](value Res, by string) Result[Res] {
	return Result[Res]{
		value:   value,
		by:      by,
		handled: true,
	}
}

// Unhandled is the signal that no handler accepted the request.
func Unhandled[Res any]() Result[Res] {
	return Result[Res]{}
}

// IsHandled reports whether some handler accepted the request.
func (r Result[Res]) IsHandled() bool {
	return r.handled
}

// Value returns the produced value and whether the request was handled.
func (r Result[Res]) Value() (Res, bool) {
	return r.value, r.handled
}

// By returns the name of the accepting handler, empty when unhandled.
func (r Result[Res]) By() string {
	return r.by
}
