// Package concurrent wraps the quadtree package's single-threaded
// Quadtree in a reader-writer discipline. The core makes no concurrency
// guarantees of its own; Tree adds one sync.RWMutex around it rather
// than reimplementing storage with its own locking.
package concurrent

import (
	"sync"

	"github.com/rbutts/quadtree"
)

// Tree is a *quadtree.Quadtree[T, F] guarded by a sync.RWMutex. Add and
// Remove take the write lock; Query, FindAllIntersections and
// FindClosest take the read lock, so any number of reads may proceed
// concurrently as long as no write is in flight.
type Tree[T any, F quadtree.Float] struct {
	mu   sync.RWMutex
	tree *quadtree.Quadtree[T, F]
}

// New constructs a concurrency-safe Tree over worldBox.
func New[T any, F quadtree.Float](worldBox quadtree.Box[F], getBox quadtree.GetBox[T, F], equal quadtree.Equal[T]) *Tree[T, F] {
	return &Tree[T, F]{tree: quadtree.New(worldBox, getBox, equal)}
}

// WorldBox returns the tree's fixed outer bounds. It never changes after
// construction, so no lock is needed.
func (t *Tree[T, F]) WorldBox() quadtree.Box[F] {
	return t.tree.WorldBox()
}

// Add inserts item under an exclusive lock.
func (t *Tree[T, F]) Add(item T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Add(item)
}

// Remove deletes item under an exclusive lock.
func (t *Tree[T, F]) Remove(item T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Remove(item)
}

// Query returns every item whose box intersects box, under a shared
// read lock.
func (t *Tree[T, F]) Query(box quadtree.Box[F]) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Query(box)
}

// FindAllIntersections reports every intersecting pair, under a shared
// read lock.
func (t *Tree[T, F]) FindAllIntersections() []quadtree.Pair[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.FindAllIntersections()
}

// FindClosest returns a copy of the nearest item to searchBox, if any.
// Unlike quadtree.Quadtree.FindClosest, it returns a copy rather than a
// tree-internal pointer: that pointer's validity window ends at the
// next mutation, which here can happen the instant the read lock below
// is released, so handing it out would be unsafe.
func (t *Tree[T, F]) FindClosest(searchBox quadtree.Box[F], predicate ...quadtree.Predicate[T, F]) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	found := t.tree.FindClosest(searchBox, predicate...)
	if found == nil {
		var zero T
		return zero, false
	}
	return *found, true
}
