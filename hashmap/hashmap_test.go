package hashmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "github.com/zyedidia/generic"

	"github.com/katalvlaran/fognav/hashmap"
)

// constHash sends every key to the same bucket to force chaining.
func constHash(int) uint64 { return 7 }

func TestPutGetOverwrite(t *testing.T) {
	m := hashmap.NewComparable[string, int](4, g.HashString)

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("a", 3)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, m.Len())

	_, ok = m.Get("zzz")
	assert.False(t, ok)
	assert.Equal(t, -1, m.GetOrDefault("zzz", -1))
}

func TestRemove(t *testing.T) {
	m := hashmap.NewComparable[int, string](8, constHash)
	m.Put(1, "one")
	m.Put(2, "two")
	m.Put(3, "three")

	// 2 sits in the middle of the single chain.
	assert.True(t, m.Remove(2))
	assert.False(t, m.ContainsKey(2))
	assert.True(t, m.ContainsKey(1))
	assert.True(t, m.ContainsKey(3))
	assert.Equal(t, 2, m.Len())

	assert.False(t, m.Remove(2), "second remove must report absence")
	assert.True(t, m.Remove(3), "head of chain")
	assert.True(t, m.Remove(1), "tail of chain")
	assert.Zero(t, m.Len())
}

func TestChainingUnderFullCollision(t *testing.T) {
	m := hashmap.NewComparable[int, int](2, constHash)
	for i := 0; i < 100; i++ {
		m.Put(i, i*i)
	}
	require.Equal(t, 100, m.Len())
	for i := 0; i < 100; i++ {
		v, ok := m.Get(i)
		require.True(t, ok, "key %d", i)
		require.Equal(t, i*i, v)
	}
}

func TestGrowthPolicy(t *testing.T) {
	m := hashmap.NewComparable[int, int](4, g.HashInt)
	// 3/4 reaches the load factor, so the 4th put grows the table first.
	for i := 0; i < 3; i++ {
		m.Put(i, i)
	}
	assert.Equal(t, 4, m.Capacity())
	m.Put(3, 3)
	assert.Equal(t, 9, m.Capacity())
}

func TestZeroCapacityUsesDefault(t *testing.T) {
	m := hashmap.NewComparable[int, int](0, g.HashInt)
	assert.Equal(t, hashmap.DefaultCapacity, m.Capacity())
	m.Put(1, 1)
	assert.True(t, m.ContainsKey(1))
}

// TestRandomOperationsMatchBuiltinMap cross-checks put/remove sequences against a Go map.
func TestRandomOperationsMatchBuiltinMap(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	m := hashmap.NewComparable[int, int](1, g.HashInt)
	ref := make(map[int]int)

	for i := 0; i < 20000; i++ {
		k := r.Intn(2000) - 1000
		if r.Intn(3) == 0 {
			_, had := ref[k]
			delete(ref, k)
			require.Equal(t, had, m.Remove(k))
			continue
		}
		v := r.Int()
		ref[k] = v
		m.Put(k, v)
	}

	require.Equal(t, len(ref), m.Len())
	for k := -1000; k < 1000; k++ {
		want, has := ref[k]
		got, ok := m.Get(k)
		require.Equal(t, has, m.ContainsKey(k), "key %d", k)
		require.Equal(t, has, ok)
		if has {
			require.Equal(t, want, got)
		}
	}
}

// TestResizeKeepsEveryEntry inserts 10,000 random keys through many resizes.
func TestResizeKeepsEveryEntry(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m := hashmap.NewComparable[uint64, int](1, g.HashUint64)
	ref := make(map[uint64]int)

	for i := 0; i < 10000; i++ {
		k := r.Uint64()
		ref[k] = i
		m.Put(k, i)
	}

	require.Equal(t, len(ref), m.Len())
	assert.Len(t, m.Values(), len(ref))

	seen := make(map[uint64]bool, len(ref))
	m.Each(func(k uint64, v int) {
		require.False(t, seen[k], "duplicate key %d after resize", k)
		seen[k] = true
		require.Equal(t, ref[k], v)
	})
	assert.Len(t, seen, len(ref))
}

func TestCustomEquality(t *testing.T) {
	type pair struct{ a, b int }
	hash := func(p pair) uint64 { return g.HashInt(p.a*31 + p.b) }
	eq := func(x, y pair) bool { return x.a == y.a && x.b == y.b }

	m := hashmap.New[pair, string](3, eq, hash)
	m.Put(pair{1, 2}, "x")
	m.Put(pair{2, 1}, "y")

	v, ok := m.Get(pair{1, 2})
	require.True(t, ok)
	assert.Equal(t, "x", v)
	assert.False(t, m.ContainsKey(pair{1, 1}))
}
