package orderbook

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prices(t *levelTree) []int32 {
	var out []int32
	t.walk(func(level *priceLevel) bool {
		out = append(out, level.price)
		return true
	})
	return out
}

func TestLevelTree_AscendingWalk(t *testing.T) {
	tree := newLevelTree(false)
	for _, price := range []int32{10_200, 10_000, 10_100, -50, 10_050} {
		tree.insert(&priceLevel{price: price})
	}

	assert.Equal(t, []int32{-50, 10_000, 10_050, 10_100, 10_200}, prices(tree))
	assert.Equal(t, int32(-50), tree.best().price)
	assert.Equal(t, 5, tree.len())
}

func TestLevelTree_DescendingWalk(t *testing.T) {
	tree := newLevelTree(true)
	for _, price := range []int32{10_200, 10_000, 10_100, -50, 10_050} {
		tree.insert(&priceLevel{price: price})
	}

	assert.Equal(t, []int32{10_200, 10_100, 10_050, 10_000, -50}, prices(tree))
	assert.Equal(t, int32(10_200), tree.best().price)
}

func TestLevelTree_GetAndDelete(t *testing.T) {
	tree := newLevelTree(false)
	tree.insert(&priceLevel{price: 10_000})
	tree.insert(&priceLevel{price: 10_100})

	require.NotNil(t, tree.get(10_000))
	assert.Nil(t, tree.get(9_999))

	tree.delete(10_000)
	assert.Nil(t, tree.get(10_000))
	assert.Equal(t, 1, tree.len())
	assert.Equal(t, int32(10_100), tree.best().price)

	// Deleting an absent price is a no-op
	tree.delete(10_000)
	assert.Equal(t, 1, tree.len())

	tree.delete(10_100)
	assert.Nil(t, tree.best())
	assert.Equal(t, 0, tree.len())
}

func TestLevelTree_RandomizedInsertDelete(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := newLevelTree(false)
	reference := map[int32]bool{}

	for i := 0; i < 5_000; i++ {
		price := int32(rng.Intn(500)) - 250
		if rng.Intn(3) == 0 {
			tree.delete(price)
			delete(reference, price)
		} else if !reference[price] {
			tree.insert(&priceLevel{price: price})
			reference[price] = true
		}
	}

	want := make([]int32, 0, len(reference))
	for price := range reference {
		want = append(want, price)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	assert.Equal(t, want, prices(tree))
	assert.Equal(t, len(want), tree.len())
	if len(want) > 0 {
		assert.Equal(t, want[0], tree.best().price)
	}
}

func TestLevelTree_WalkEarlyStop(t *testing.T) {
	tree := newLevelTree(false)
	for price := int32(0); price < 10; price++ {
		tree.insert(&priceLevel{price: price})
	}

	var visited []int32
	tree.walk(func(level *priceLevel) bool {
		visited = append(visited, level.price)
		return len(visited) < 3
	})
	assert.Equal(t, []int32{0, 1, 2}, visited)
}
