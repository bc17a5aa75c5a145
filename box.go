package quadtree

import "math"

// Box is an axis-aligned rectangle: left, top, width, height. Width and
// height must be non-negative; the zero value is the degenerate box at
// the origin.
type Box[F Float] struct {
	Left   F
	Top    F
	Width  F
	Height F
}

// NewBox builds a box from a top-left position and a size.
func NewBox[F Float](position, size Vector2[F]) Box[F] {
	return Box[F]{Left: position.X, Top: position.Y, Width: size.X, Height: size.Y}
}

func (b Box[F]) Right() F {
	return b.Left + b.Width
}

func (b Box[F]) Bottom() F {
	return b.Top + b.Height
}

func (b Box[F]) TopLeft() Vector2[F] {
	return Vector2[F]{X: b.Left, Y: b.Top}
}

func (b Box[F]) Size() Vector2[F] {
	return Vector2[F]{X: b.Width, Y: b.Height}
}

func (b Box[F]) Center() Vector2[F] {
	two := F(2)
	return Vector2[F]{X: b.Left + b.Width/two, Y: b.Top + b.Height/two}
}

// Contains reports whether b fully encloses inner, edges inclusive.
func (b Box[F]) Contains(inner Box[F]) bool {
	return b.Left <= inner.Left && inner.Right() <= b.Right() &&
		b.Top <= inner.Top && inner.Bottom() <= b.Bottom()
}

// Intersects reports whether b and other overlap. Boxes whose edges only
// touch are treated as non-intersecting: this is deliberate, and the
// quadrant classifier in node.go depends on it.
func (b Box[F]) Intersects(other Box[F]) bool {
	return !(b.Left >= other.Right() || b.Right() <= other.Left ||
		b.Top >= other.Bottom() || b.Bottom() <= other.Top)
}

// distance returns the Euclidean distance between the closest pair of
// points on the boundaries of a and b, or 0 if they intersect or touch.
// The nine-region case analysis mirrors the reference implementation
// bit-for-bit; it must use sqrt on the diagonal cases, not squared
// distance, because callers compare the result against an absolute
// bound.
func distance[F Float](a, b Box[F]) F {
	al, ar, at, ab := a.Left, a.Right(), a.Top, a.Bottom()
	bl, br, bt, bb := b.Left, b.Right(), b.Top, b.Bottom()

	switch {
	case ar < bl && ab < bt:
		return F(math.Sqrt(float64((bl-ar)*(bl-ar) + (bt-ab)*(bt-ab))))
	case al > br && ab < bt:
		return F(math.Sqrt(float64((al-br)*(al-br) + (bt-ab)*(bt-ab))))
	case al > br && at > bb:
		return F(math.Sqrt(float64((al-br)*(al-br) + (at-bb)*(at-bb))))
	case ar < bl && at > bb:
		return F(math.Sqrt(float64((bl-ar)*(bl-ar) + (at-bb)*(at-bb))))
	case ar < bl:
		return bl - ar
	case ab < bt:
		return bt - ab
	case al > br:
		return al - br
	case at > bb:
		return at - bb
	default:
		return F(0)
	}
}
