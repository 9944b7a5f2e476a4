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

// Rule reports whether a handler accepts a request.
type Rule[Req any] func(request Req) bool

// Action produces the handler's result for an accepted request.
type Action[Req, Res any] func(request Req) Res

// Handler is a named node of a delegation chain.
//
// A handler holds an acceptance rule, an action and an optional successor.
// The successor link does not own the next handler, so the same handler may be
// used as the entry point of a sub-chain.
type Handler[Req, Res any] struct {
	name    string
	accepts Rule[Req]
	act     Action[Req, Res]
	next    *Handler[Req, Res]
}

// New creates an unlinked handler. A nil rule never accepts, a nil action
// produces the zero value of Res.
func New[Req, Res any](name string, accepts Rule[Req], act Action[Req, Res]) *Handler[Req, Res] {
	return &Handler[Req, Res]{
		name:    name,
		accepts: accepts,
		act:     act,
	}
}

// Name returns the handler name.
func (h *Handler[Req, Res]) Name() string {
	return h.name
}

// Next returns the current successor or nil.
func (h *Handler[Req, Res]) Next() *Handler[Req, Res] {
	return h.next
}

// SetNext rebinds the successor and returns next, so that calls can be
// chained: monkey.SetNext(squirrel).SetNext(dog).
// A previous successor is silently dropped. Passing nil unlinks the handler.
func (h *Handler[Req, Res]) SetNext(next *Handler[Req, Res]) *Handler[Req, Res] {
	h.next = next
	return next
}

// Handle delivers the request to the first handler, starting at h, whose rule
// accepts it. Handlers before h are never consulted.
// The links from h must form a forward list (see Validate).
func (h *Handler[Req, Res]) Handle(request Req) Result[Res] {
	for node := h; node != nil; node = node.next {
		if !node.match(request) {
			continue
		}

		var value Res
		if node.act != nil {
			value = node.act(request)
		}

		return Handled(value, node.name)
	}

	return Unhandled[Res]()
}

func (h *Handler[Req, Res]) match(request Req) bool {
	return h.accepts != nil && h.accepts(request)
}

// Walk calls fn for every handler reachable from h, in order, until fn returns false.
func (h *Handler[Req, Res]) Walk(fn func(*Handler[Req, Res]) bool) {
	for node := h; node != nil; node = node.next {
		if !fn(node) {
			return
		}
	}
}

// Names lists the handler names of the sub-chain starting at h.
func (h *Handler[Req, Res]) Names() []string {
	var names []string
	h.Walk(func(node *Handler[Req, Res]) bool {
		names = append(names, node.name)
		return true
	})

	return names
}

// Len returns the number of handlers reachable from h.
func (h *Handler[Req, Res]) Len() int {
	n := 0
	h.Walk(func(*Handler[Req, Res]) bool {
		n++
		return true
	})

	return n
}

// Validate checks that the successor links starting at h form a forward list.
func (h *Handler[Req, Res]) Validate() error {
	slow, fast := h, h
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return ErrCyclicChain
		}
	}

	return nil
}

// Build links the handlers in the given order and returns the head.
// The last handler's successor is cleared.
func Build[Req, Res any](handlers ...*Handler[Req, Res]) (*Handler[Req, Res], error) {
	if len(handlers) == 0 {
		return nil, ErrEmptyChain
	}

	seen := make(map[*Handler[Req, Res]]struct{}, len(handlers))
	for _, h := range handlers {
		if h == nil {
			return nil, ErrNilHandler
		}

		if _, ok := seen[h]; ok {
			return nil, ErrCyclicChain
		}

		seen[h] = struct{}{}
	}

	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	handlers[len(handlers)-1].SetNext(nil)

	return handlers[0], nil
}
