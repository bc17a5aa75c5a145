package quadtree

import "github.com/pkg/errors"

// ErrOutOfBounds is returned by Add when the item's box is not fully
// contained in the tree's world box.
var ErrOutOfBounds = errors.New("quadtree: item box is not contained in the world box")

// ErrNotFound is returned by Remove when no stored item matches the
// given item under the tree's Equal predicate.
var ErrNotFound = errors.New("quadtree: item not found")
