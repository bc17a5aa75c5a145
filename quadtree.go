// Package quadtree implements a generic, in-memory region quadtree over
// axis-aligned boxes. It supports insertion, deletion, box-overlap range
// queries, nearest-neighbor search against a box, and bulk reporting of
// every intersecting pair of stored items — the broad phase of a
// collision-detection pipeline.
//
// The tree is parametric over an item type T, a coordinate type F, a
// GetBox extractor that recovers an item's spatial extent, and an Equal
// predicate used only to locate items for removal. It stores no
// ancillary ordering or hashing requirement on T.
//
// The tree is not safe for concurrent use; see the concurrent package
// for a reader-writer wrapper.
package quadtree

import "github.com/pkg/errors"

// Threshold is the maximum number of items a leaf holds below MaxDepth
// before it is split.
const Threshold = 16

// MaxDepth is the maximum depth a Quadtree will split to; a leaf at that
// depth is never split and its size is unbounded.
const MaxDepth = 8

// GetBox recovers the spatial extent of an item of type T.
type GetBox[T any, F Float] func(T) Box[F]

// Equal reports whether two items of type T represent the same stored
// value, for the purposes of locating an item to remove.
type Equal[T any] func(a, b T) bool

// Quadtree indexes items of type T by the boxes GetBox extracts from
// them, within a fixed world box established at construction.
type Quadtree[T any, F Float] struct {
	box    Box[F]
	root   *Node[T]
	getBox GetBox[T, F]
	equal  Equal[T]
}

// New constructs a Quadtree over worldBox. getBox and equal are called on
// every traversal step and should be cheap and side-effect free.
func New[T any, F Float](worldBox Box[F], getBox GetBox[T, F], equal Equal[T]) *Quadtree[T, F] {
	return &Quadtree[T, F]{
		box:    worldBox,
		root:   &Node[T]{},
		getBox: getBox,
		equal:  equal,
	}
}

// WorldBox returns the tree's fixed outer bounds.
func (q *Quadtree[T, F]) WorldBox() Box[F] {
	return q.box
}

// Add inserts item into the tree. It returns ErrOutOfBounds if the
// item's box is not fully contained in the world box.
func (q *Quadtree[T, F]) Add(item T) error {
	box := q.getBox(item)
	if !q.box.Contains(box) {
		return errors.Wrapf(ErrOutOfBounds, "box %+v not contained in world box %+v", box, q.box)
	}
	q.add(q.root, 0, q.box, item)
	return nil
}

func (q *Quadtree[T, F]) add(node *Node[T], depth int, box Box[F], item T) {
	if node.isLeaf() {
		if depth >= MaxDepth || len(node.values) < Threshold {
			node.values = append(node.values, item)
			return
		}
		q.split(node, box)
		q.add(node, depth, box, item)
		return
	}
	i := getQuadrant(box, q.getBox(item))
	if i != -1 {
		q.add(node.children[i], depth+1, computeBox(box, i), item)
		return
	}
	node.values = append(node.values, item)
}

// split converts a leaf into an interior node, distributing its values
// to the four newly allocated children where they fit, and keeping the
// rest (those straddling a child boundary) at the parent. It does not
// recurse into the new children even if one now exceeds Threshold;
// subsequent inserts drive further splits naturally.
func (q *Quadtree[T, F]) split(node *Node[T], box Box[F]) {
	for i := range node.children {
		node.children[i] = &Node[T]{}
	}
	kept := node.values[:0:0]
	for _, item := range node.values {
		i := getQuadrant(box, q.getBox(item))
		if i != -1 {
			node.children[i].values = append(node.children[i].values, item)
		} else {
			kept = append(kept, item)
		}
	}
	node.values = kept
}

// Remove deletes item from the tree, located via the tree's Equal
// predicate. It returns ErrNotFound if no matching item is stored.
func (q *Quadtree[T, F]) Remove(item T) error {
	return q.remove(q.root, nil, q.box, item)
}

func (q *Quadtree[T, F]) remove(node, parent *Node[T], box Box[F], item T) error {
	if node.isLeaf() {
		if err := q.removeValue(node, item); err != nil {
			return err
		}
		if parent != nil {
			q.tryMerge(parent)
		}
		return nil
	}
	i := getQuadrant(box, q.getBox(item))
	if i != -1 {
		return q.remove(node.children[i], node, computeBox(box, i), item)
	}
	return q.removeValue(node, item)
}

func (q *Quadtree[T, F]) removeValue(node *Node[T], item T) error {
	for i, v := range node.values {
		if q.equal(item, v) {
			last := len(node.values) - 1
			node.values[i] = node.values[last]
			node.values = node.values[:last]
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "no stored item equal to %+v", item)
}

// tryMerge collapses parent's four children back into parent when all
// four are themselves leaves and the aggregate item count fits within
// Threshold. It only ever collapses one level; a chain of merge
// opportunities higher up the tree is not climbed — a known
// suboptimality, preserved deliberately rather than a bug.
func (q *Quadtree[T, F]) tryMerge(node *Node[T]) {
	total := len(node.values)
	for _, child := range node.children {
		if !child.isLeaf() {
			return
		}
		total += len(child.values)
	}
	if total > Threshold {
		return
	}
	merged := make([]T, 0, total)
	merged = append(merged, node.values...)
	for _, child := range node.children {
		merged = append(merged, child.values...)
	}
	node.values = merged
	for i := range node.children {
		node.children[i] = nil
	}
}

// Query returns every stored item whose box intersects box.
func (q *Quadtree[T, F]) Query(box Box[F]) []T {
	var out []T
	q.query(q.root, q.box, box, &out)
	return out
}

func (q *Quadtree[T, F]) query(node *Node[T], nodeBox, queryBox Box[F], out *[]T) {
	for _, v := range node.values {
		if queryBox.Intersects(q.getBox(v)) {
			*out = append(*out, v)
		}
	}
	if node.isLeaf() {
		return
	}
	for i, child := range node.children {
		childBox := computeBox(nodeBox, i)
		if queryBox.Intersects(childBox) {
			q.query(child, childBox, queryBox, out)
		}
	}
}

// Pair is an unordered pair of items found by FindAllIntersections.
type Pair[T any] struct {
	First  T
	Second T
}

// FindAllIntersections reports every unordered pair of stored items
// whose boxes intersect, each exactly once.
func (q *Quadtree[T, F]) FindAllIntersections() []Pair[T] {
	var out []Pair[T]
	q.findAllIntersections(q.root, &out)
	return out
}

func (q *Quadtree[T, F]) findAllIntersections(node *Node[T], out *[]Pair[T]) {
	for i := 0; i < len(node.values); i++ {
		for j := 0; j < i; j++ {
			if q.getBox(node.values[i]).Intersects(q.getBox(node.values[j])) {
				*out = append(*out, Pair[T]{First: node.values[i], Second: node.values[j]})
			}
		}
	}
	if node.isLeaf() {
		return
	}
	for _, child := range node.children {
		for _, v := range node.values {
			q.findIntersectionsInDescendants(child, v, out)
		}
	}
	for _, child := range node.children {
		q.findAllIntersections(child, out)
	}
}

func (q *Quadtree[T, F]) findIntersectionsInDescendants(node *Node[T], value T, out *[]Pair[T]) {
	valueBox := q.getBox(value)
	for _, other := range node.values {
		if valueBox.Intersects(q.getBox(other)) {
			*out = append(*out, Pair[T]{First: value, Second: other})
		}
	}
	if node.isLeaf() {
		return
	}
	for _, child := range node.children {
		q.findIntersectionsInDescendants(child, value, out)
	}
}

// Predicate filters candidate items during FindClosest.
type Predicate[T any, F Float] func(item T, box Box[F]) bool

func alwaysTrue[T any, F Float](T, Box[F]) bool { return true }

// FindClosest returns a pointer to the stored item whose box has minimum
// distance to searchBox, subject to predicate(item, itsBox) returning
// true. Ties are broken by traversal order: the first item found at the
// minimum distance wins. Returns nil if the tree is empty or no item
// satisfies predicate. The returned pointer aliases tree-internal
// storage and is valid only until the tree's next mutation.
func (q *Quadtree[T, F]) FindClosest(searchBox Box[F], predicate ...Predicate[T, F]) *T {
	pred := Predicate[T, F](alwaysTrue[T, F])
	if len(predicate) > 0 {
		pred = predicate[0]
	}
	bestDist := abs(q.box.Width) + abs(q.box.Height)
	best, _ := q.findClosestImpl(searchBox, nil, bestDist, q.root, q.box, pred)
	return best
}

func abs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

func (q *Quadtree[T, F]) findClosestImpl(
	searchBox Box[F],
	best *T,
	bestDist F,
	node *Node[T],
	nodeBox Box[F],
	predicate Predicate[T, F],
) (*T, F) {
	if distance(searchBox, nodeBox) > bestDist {
		return best, bestDist
	}

	for i := range node.values {
		itemBox := q.getBox(node.values[i])
		d := distance(itemBox, searchBox)
		if d < bestDist && predicate(node.values[i], itemBox) {
			best, bestDist = &node.values[i], d
		}
	}

	if node.isLeaf() {
		return best, bestDist
	}

	// Visit children in the order most likely to improve the bound
	// first: the quadrant containing searchBox's center, then its two
	// orthogonal neighbors, then the diagonal opposite last. Derived
	// from which side of each bisector searchBox's center falls on, via
	// the (2*left + width) trick that avoids a division.
	rl := 0
	if searchBox.Left*2+searchBox.Width > nodeBox.Left*2+nodeBox.Width {
		rl = 1
	}
	bt := 0
	if searchBox.Top*2+searchBox.Height > nodeBox.Top*2+nodeBox.Height {
		bt = 1
	}
	order := [4]int{
		bt*2 + rl,
		bt*2 + (1 - rl),
		(1-bt)*2 + rl,
		(1-bt)*2 + (1 - rl),
	}
	for _, i := range order {
		best, bestDist = q.findClosestImpl(searchBox, best, bestDist, node.children[i], computeBox(nodeBox, i), predicate)
	}
	return best, bestDist
}
