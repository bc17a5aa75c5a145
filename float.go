package quadtree

import "golang.org/x/exp/constraints"

// Float is the coordinate type a Quadtree is built over. It is restricted
// to the IEEE floating point types because distance() requires sqrt.
type Float interface {
	constraints.Float
}
