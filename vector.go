package quadtree

// Vector2 is a pair of coordinates in the plane. It is a pure value type:
// all operations return a new Vector2 rather than mutating the receiver.
type Vector2[F Float] struct {
	X F
	Y F
}

func (v Vector2[F]) Add(other Vector2[F]) Vector2[F] {
	return Vector2[F]{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2[F]) Sub(other Vector2[F]) Vector2[F] {
	return Vector2[F]{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2[F]) Div(scalar F) Vector2[F] {
	return Vector2[F]{X: v.X / scalar, Y: v.Y / scalar}
}
