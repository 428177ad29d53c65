package chain_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lodash-utils/chain"
)

func TestMixin(t *testing.T) {
	t.Cleanup(chain.FlushMixins)

	chain.RegisterMixin("evens", func(c any, _ ...any) any {
		return c.(*chain.Chain[int]).Filter(func(n, _ int) bool { return n%2 == 0 })
	})
	require.True(t, chain.HasMixin("evens"))

	res, err := chain.Of(1, 2, 3, 4).Mixin("evens")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, res.(*chain.Chain[int]).Value())
}

func TestMixinArgs(t *testing.T) {
	t.Cleanup(chain.FlushMixins)

	chain.RegisterMixin("without", func(c any, args ...any) any {
		exclude := make([]string, len(args))
		for i, a := range args {
			exclude[i] = a.(string)
		}
		return c.(*chain.Chain[string]).Difference(exclude)
	})

	res, err := chain.CallMixin("without", chain.Of("a", "b", "c"), "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.(*chain.Chain[string]).Value())
}

func TestMixinNotFound(t *testing.T) {
	_, err := chain.Of(1).Mixin("missing")
	assert.True(t, errors.Is(err, chain.ErrMixinNotFound))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestFlushMixins(t *testing.T) {
	chain.RegisterMixin("noop", func(c any, _ ...any) any { return c })
	chain.FlushMixins()
	assert.False(t, chain.HasMixin("noop"))
}

func TestRegisterMixins(t *testing.T) {
	t.Cleanup(chain.FlushMixins)

	chain.RegisterMixins(map[string]chain.MixinFunc{
		"first": func(c any, _ ...any) any {
			ints := c.(*chain.Chain[int])
			return ints.DropRight(ints.Count() - 1)
		},
		"last": func(c any, _ ...any) any {
			ints := c.(*chain.Chain[int])
			return ints.Drop(ints.Count() - 1)
		},
	})
	assert.Equal(t, []string{"first", "last"}, chain.MixinNames())

	res, err := chain.Of(1, 2, 3).Mixin("last")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, res.(*chain.Chain[int]).Value())
}

func TestRegistryIsolation(t *testing.T) {
	t.Cleanup(chain.FlushMixins)

	double := func(c any, _ ...any) any {
		return chain.Map(c.(*chain.Chain[int]), func(n, _ int) int { return n * 2 })
	}
	r := chain.NewRegistry().Mixin(map[string]chain.MixinFunc{"double": double})

	assert.True(t, r.Has("double"))
	assert.False(t, chain.HasMixin("double"), "private registries do not leak into the default one")

	res, err := chain.Of(1, 2).MixinFrom(r, "double")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, res.(*chain.Chain[int]).Value())

	_, err = chain.Of(1, 2).Mixin("double")
	assert.ErrorIs(t, err, chain.ErrMixinNotFound)

	r.Reset()
	assert.Empty(t, r.Names())
}

func TestMixinConcurrentAccess(t *testing.T) {
	t.Cleanup(chain.FlushMixins)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chain.RegisterMixin("identity", func(c any, _ ...any) any { return c })
			_, _ = chain.CallMixin("identity", chain.Of(1))
		}()
	}
	wg.Wait()
	assert.True(t, chain.HasMixin("identity"))
}
