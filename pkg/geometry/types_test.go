package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint2D(t *testing.T) {
	t.Parallel()

	t.Run("distance", func(t *testing.T) {
		t.Parallel()
		a := NewPoint2D(0, 0)
		b := NewPoint2D(3, 4)
		assert.InDelta(t, 5.0, a.Distance(b), 1e-12)
		assert.InDelta(t, 5.0, b.Distance(a), 1e-12)
		assert.Zero(t, a.Distance(a))
	})

	t.Run("arithmetic", func(t *testing.T) {
		t.Parallel()
		a := NewPoint2D(1, 2)
		b := NewPoint2D(3, -4)
		assert.Equal(t, NewPoint2D(4, -2), a.Add(b))
		assert.Equal(t, NewPoint2D(-2, 6), a.Sub(b))
		assert.Equal(t, NewPoint2D(2.5, 5), a.Scale(2.5))
		assert.Equal(t, NewPoint2D(2, -1), a.Midpoint(b))
	})

	t.Run("blend weights interior points", func(t *testing.T) {
		t.Parallel()
		a := NewPoint2D(0, 0)
		b := NewPoint2D(10, 5)
		// weight 3:2 toward a sits two fifths of the way along
		got := Blend(a, 3, b, 2)
		assert.InDelta(t, 4.0, got.X, 1e-12)
		assert.InDelta(t, 2.0, got.Y, 1e-12)
		// equal weights reduce to the midpoint
		assert.Equal(t, a.Midpoint(b), Blend(a, 1, b, 1))
	})
}

func TestPixel(t *testing.T) {
	t.Parallel()

	t.Run("round-trips with Point2D swapping axis order", func(t *testing.T) {
		t.Parallel()
		p := NewPoint2D(7, 3)
		px := PixelFromPoint(p)
		assert.Equal(t, Pixel{Row: 3, Col: 7}, px)
		assert.Equal(t, p, px.ToPoint())
	})

	t.Run("angle is measured from +row toward +col", func(t *testing.T) {
		t.Parallel()
		origin := Pixel{Row: 10, Col: 10}
		assert.InDelta(t, 0.0, origin.Angle(Pixel{Row: 20, Col: 10}), 1e-12)
		assert.InDelta(t, math.Pi/2, origin.Angle(Pixel{Row: 10, Col: 20}), 1e-12)
		assert.InDelta(t, math.Pi, math.Abs(origin.Angle(Pixel{Row: 0, Col: 10})), 1e-12)
		assert.InDelta(t, -math.Pi/2, origin.Angle(Pixel{Row: 10, Col: 0}), 1e-12)
	})

	t.Run("offset inverts angle and distance", func(t *testing.T) {
		t.Parallel()
		origin := Pixel{Row: 5, Col: 5}
		target := Pixel{Row: 12, Col: 23}
		moved := origin.Offset(origin.Angle(target), origin.Distance(target))
		assert.InDelta(t, target.Row, moved.Row, 1e-9)
		assert.InDelta(t, target.Col, moved.Col, 1e-9)
	})
}

func TestBoundsInt(t *testing.T) {
	t.Parallel()

	want := RectInt{X: 10, Y: 10, Width: 10, Height: 20}
	a := NewPoint2D(10, 30)
	b := NewPoint2D(20, 10)

	require.Equal(t, want, BoundsInt(a, b))
	// argument order must not matter
	require.Equal(t, want, BoundsInt(b, a))
}

func TestCentroid(t *testing.T) {
	t.Parallel()

	pts := []Point2D{
		NewPoint2D(0, 0),
		NewPoint2D(6, 0),
		NewPoint2D(0, 6),
	}
	assert.Equal(t, NewPoint2D(2, 2), Centroid(pts))
	assert.Equal(t, Point2D{}, Centroid(nil))
}
