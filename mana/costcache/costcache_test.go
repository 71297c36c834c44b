package costcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMemoizes(t *testing.T) {
	cache, err := New(8)
	require.NoError(t, err)

	a := cache.Get("{R/W}{2}")
	b := cache.Get("{R/W}{2}")
	assert.Same(t, a, b)
	assert.Equal(t, 1, cache.Len())
}

func TestInterpretationsReified(t *testing.T) {
	cache, err := New(8)
	require.NoError(t, err)

	entry := cache.Get("{R/W}{R/W}")
	first := entry.Interpretations()
	require.Len(t, first, 4)

	// Same backing slice on every call.
	second := entry.Interpretations()
	assert.Same(t, &first[0], &second[0])
}

func TestEntryRelations(t *testing.T) {
	cache, err := New(8)
	require.NoError(t, err)

	rr := cache.Get("{R}{R}")
	hybrid := cache.Get("{R/G}")

	assert.True(t, hybrid.Less(rr))
	assert.False(t, rr.Less(hybrid))
	assert.True(t, rr.Greater(hybrid))
	assert.True(t, rr.Equal(cache.Get("{R}{R}")))
	assert.True(t, hybrid.LessEq(hybrid))
	assert.True(t, rr.GreaterEq(rr))
}

func TestEviction(t *testing.T) {
	cache, err := New(2)
	require.NoError(t, err)

	cache.Get("{R}")
	cache.Get("{G}")
	cache.Get("{U}")
	assert.Equal(t, 2, cache.Len())

	// Evicted entry is re-parsed transparently.
	assert.Equal(t, 1, cache.Get("{R}").Cost.NumVariations())
}

func TestDefaultSize(t *testing.T) {
	cache, err := New(0)
	require.NoError(t, err)
	cache.Get("{W}")
	assert.Equal(t, 1, cache.Len())
}
