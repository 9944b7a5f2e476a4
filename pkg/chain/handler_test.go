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

package chain_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ONLYOFFICE/onlyoffice-patterns/pkg/chain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eats(name string) chain.Action[string, string] {
	return func(food string) string {
		return fmt.Sprintf("%s: I'll eat the %s", name, food)
	}
}

func newZoo() (monkey, squirrel, dog *chain.Handler[string, string]) {
	monkey = chain.New("Monkey", chain.Equals("Banana"), eats("Monkey"))
	squirrel = chain.New("Squirrel", chain.Equals("Nut"), eats("Squirrel"))
	dog = chain.New("Dog", chain.Equals("MeatBall"), eats("Dog"))
	monkey.SetNext(squirrel).SetNext(dog)
	return
}

func TestHandlerScenarios(t *testing.T) {
	monkey, squirrel, _ := newZoo()

	t.Run("banana is eaten by the monkey", func(t *testing.T) {
		res := monkey.Handle("Banana")
		value, ok := res.Value()
		assert.True(t, ok)
		assert.Equal(t, "Monkey", res.By())
		assert.Equal(t, "Monkey: I'll eat the Banana", value)
	})

	t.Run("nut is delegated to the squirrel", func(t *testing.T) {
		res := monkey.Handle("Nut")
		assert.True(t, res.IsHandled())
		assert.Equal(t, "Squirrel", res.By())
	})

	t.Run("meatball reaches the dog", func(t *testing.T) {
		res := monkey.Handle("MeatBall")
		value, _ := res.Value()
		assert.Equal(t, "Dog", res.By())
		assert.Equal(t, "Dog: I'll eat the MeatBall", value)
	})

	t.Run("coffee is left untouched", func(t *testing.T) {
		res := monkey.Handle("Cup of coffee")
		assert.False(t, res.IsHandled())
		assert.Empty(t, res.By())
	})

	t.Run("sub-chain skips the monkey", func(t *testing.T) {
		res := squirrel.Handle("Banana")
		assert.False(t, res.IsHandled())
	})
}

func TestHandlerFirstMatchWins(t *testing.T) {
	var calls []string
	record := func(name string) chain.Action[int, string] {
		return func(int) string {
			calls = append(calls, name)
			return name
		}
	}

	even := func(n int) bool { return n%2 == 0 }
	head, err := chain.Build(
		chain.New("odd", chain.Not[int](even), record("odd")),
		chain.New("even", even, record("even")),
		chain.New("all", func(int) bool { return true }, record("all")),
	)
	require.NoError(t, err)

	assert.Equal(t, "even", head.Handle(4).By())
	assert.Equal(t, "odd", head.Handle(3).By())
	assert.Equal(t, []string{"even", "odd"}, calls)
}

func TestHandlerHandledEmptyValue(t *testing.T) {
	h := chain.New("blank", chain.Equals(""), func(string) string { return "" })

	handled := h.Handle("")
	value, ok := handled.Value()
	assert.True(t, ok)
	assert.Empty(t, value)

	unhandled := h.Handle("x")
	value, ok = unhandled.Value()
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.NotEqual(t, handled, unhandled)
}

func TestHandlerNilRuleAndAction(t *testing.T) {
	never := chain.New[string, int]("never", nil, func(string) int { return 1 })
	zero := chain.New[string, int]("zero", chain.Equals("a"), nil)
	never.SetNext(zero)

	res := never.Handle("a")
	value, ok := res.Value()
	assert.True(t, ok)
	assert.Equal(t, "zero", res.By())
	assert.Zero(t, value)
}

func TestHandlerSetNext(t *testing.T) {
	h := chain.New("h", chain.Equals("none"), eats("h"))
	x := chain.New("x", chain.Equals("x"), eats("x"))
	y := chain.New("y", chain.Equals("y"), eats("y"))

	t.Run("returns its argument", func(t *testing.T) {
		assert.Same(t, x, h.SetNext(x))
	})

	t.Run("rebinding drops the previous successor", func(t *testing.T) {
		h.SetNext(x)
		h.SetNext(y)
		assert.Same(t, y, h.Next())
		assert.False(t, h.Handle("x").IsHandled())
		assert.Equal(t, "y", h.Handle("y").By())
	})

	t.Run("nil unlinks", func(t *testing.T) {
		assert.Nil(t, h.SetNext(nil))
		assert.Nil(t, h.Next())
		assert.Equal(t, 1, h.Len())
	})
}

func TestHandlerIntrospection(t *testing.T) {
	monkey, squirrel, dog := newZoo()

	if diff := cmp.Diff([]string{"Monkey", "Squirrel", "Dog"}, monkey.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"Squirrel", "Dog"}, squirrel.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 3, monkey.Len())
	assert.Equal(t, 1, dog.Len())

	var visited []string
	monkey.Walk(func(h *chain.Handler[string, string]) bool {
		visited = append(visited, h.Name())
		return h.Name() != "Squirrel"
	})
	assert.Equal(t, []string{"Monkey", "Squirrel"}, visited)
}

func TestBuild(t *testing.T) {
	t.Run("links in order", func(t *testing.T) {
		a := chain.New("a", chain.Equals(1), func(int) int { return 1 })
		b := chain.New("b", chain.Equals(2), func(int) int { return 2 })
		b.SetNext(a)

		head, err := chain.Build(a, b)
		require.NoError(t, err)
		assert.Same(t, a, head)
		assert.Same(t, b, a.Next())
		assert.Nil(t, b.Next())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := chain.Build[int, int]()
		assert.ErrorIs(t, err, chain.ErrEmptyChain)
	})

	t.Run("nil handler", func(t *testing.T) {
		_, err := chain.Build[int, int](nil)
		assert.ErrorIs(t, err, chain.ErrNilHandler)
	})

	t.Run("repeated handler", func(t *testing.T) {
		a := chain.New("a", chain.Equals(1), func(int) int { return 1 })
		_, err := chain.Build(a, a)
		assert.ErrorIs(t, err, chain.ErrCyclicChain)
	})
}

func TestValidate(t *testing.T) {
	monkey, squirrel, dog := newZoo()
	assert.NoError(t, monkey.Validate())

	dog.SetNext(squirrel)
	assert.ErrorIs(t, monkey.Validate(), chain.ErrCyclicChain)

	dog.SetNext(nil)
	assert.NoError(t, monkey.Validate())

	self := chain.New("self", chain.Equals(0), func(int) int { return 0 })
	self.SetNext(self)
	assert.ErrorIs(t, self.Validate(), chain.ErrCyclicChain)
}

func TestHandlerConcurrentDispatch(t *testing.T) {
	monkey, _, _ := newZoo()
	foods := []string{"Banana", "Nut", "MeatBall", "Cup of coffee"}
	want := []string{"Monkey", "Squirrel", "Dog", ""}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx := i % len(foods)
			assert.Equal(t, want[idx], monkey.Handle(foods[idx]).By())
		}(i)
	}
	wg.Wait()
}

func TestRules(t *testing.T) {
	fruit := chain.Equals("Banana", "Apple")
	nut := chain.Equals("Nut")

	assert.True(t, fruit("Apple"))
	assert.False(t, fruit("Nut"))
	assert.True(t, chain.AnyOf(fruit, nil, nut)("Nut"))
	assert.False(t, chain.AnyOf[string]()("Nut"))
	assert.True(t, chain.Not(nut)("Banana"))
	assert.True(t, chain.Not[string](nil)("anything"))
}
