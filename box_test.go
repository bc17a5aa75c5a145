package quadtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func box(l, t float64) Box[float64] {
	return Box[float64]{Left: l, Top: t, Width: 10, Height: 10}
}

func TestDistanceBoundaryCases(t *testing.T) {
	cases := []struct {
		name string
		a, b Box[float64]
		want float64
	}{
		{"identical", box(10, 10), box(10, 10), 0},
		{"overlap", box(10, 10), box(15, 15), 0},
		{"horizontal gap only", box(10, 10), box(40, 15), 20},
		{"diagonal gap", box(10, 10), box(30, 30), math.Sqrt(200)},
		{"touching", box(10, 10), box(0, 0), 0},
		{"vertical gap only", box(10, 10), box(8, 55), 35},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, distance(c.a, c.b), 1e-9)
			assert.InDelta(t, c.want, distance(c.b, c.a), 1e-9, "distance must be symmetric")
		})
	}
}

func TestBoxContains(t *testing.T) {
	outer := Box[float64]{Left: 0, Top: 0, Width: 100, Height: 100}
	assert.True(t, outer.Contains(Box[float64]{Left: 0, Top: 0, Width: 100, Height: 100}))
	assert.True(t, outer.Contains(Box[float64]{Left: 10, Top: 10, Width: 10, Height: 10}))
	assert.False(t, outer.Contains(Box[float64]{Left: -1, Top: 0, Width: 10, Height: 10}))
	assert.False(t, outer.Contains(Box[float64]{Left: 90, Top: 90, Width: 20, Height: 20}))
}

// Touching edges do not intersect: deliberate, not an off-by-one.
func TestBoxIntersectsExcludesTouchingEdges(t *testing.T) {
	a := Box[float64]{Left: 0, Top: 0, Width: 10, Height: 10}
	touching := Box[float64]{Left: 10, Top: 0, Width: 10, Height: 10}
	overlapping := Box[float64]{Left: 9, Top: 0, Width: 10, Height: 10}

	assert.False(t, a.Intersects(touching))
	assert.True(t, a.Intersects(overlapping))
}
