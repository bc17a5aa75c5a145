package concurrent

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbutts/quadtree"
)

type item struct {
	id  int
	box quadtree.Box[float64]
}

func getBox(it item) quadtree.Box[float64] { return it.box }
func equal(a, b item) bool                 { return a.id == b.id }

func newTree() *Tree[item, float64] {
	return New[item, float64](quadtree.Box[float64]{Left: 0, Top: 0, Width: 1000, Height: 1000}, getBox, equal)
}

func TestAddQueryRemove(t *testing.T) {
	tree := newTree()
	it := item{id: 1, box: quadtree.Box[float64]{Left: 10, Top: 10, Width: 5, Height: 5}}
	require.NoError(t, tree.Add(it))
	assert.Len(t, tree.Query(tree.WorldBox()), 1)
	require.NoError(t, tree.Remove(it))
	assert.Empty(t, tree.Query(tree.WorldBox()))
}

func TestFindClosestReturnsCopyNotAlias(t *testing.T) {
	tree := newTree()
	require.NoError(t, tree.Add(item{id: 1, box: quadtree.Box[float64]{Left: 10, Top: 10, Width: 1, Height: 1}}))

	found, ok := tree.FindClosest(quadtree.Box[float64]{Left: 10, Top: 10, Width: 1, Height: 1})
	require.True(t, ok)
	assert.Equal(t, 1, found.id)

	found.id = 99
	again, ok := tree.FindClosest(quadtree.Box[float64]{Left: 10, Top: 10, Width: 1, Height: 1})
	require.True(t, ok)
	assert.Equal(t, 1, again.id, "changing the returned copy must not change the stored item")

	_, ok = newTree().FindClosest(quadtree.Box[float64]{Left: 0, Top: 0, Width: 1, Height: 1})
	assert.False(t, ok)
}

// Concurrent readers must not race with each other; this is a smoke
// test for the locking discipline, not a correctness proof.
func TestConcurrentReadersDoNotRace(t *testing.T) {
	tree := newTree()
	for i := 0; i < 100; i++ {
		require.NoError(t, tree.Add(item{id: i, box: quadtree.Box[float64]{
			Left: float64(i % 90), Top: float64(i % 90), Width: 1, Height: 1,
		}}))
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree.Query(tree.WorldBox())
			tree.FindAllIntersections()
			_, _ = tree.FindClosest(quadtree.Box[float64]{Left: 5, Top: 5, Width: 1, Height: 1})
		}()
	}
	wg.Wait()
}
