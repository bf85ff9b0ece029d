package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// twoWalls builds a raster with two full-height vertical boundary lines.
func twoWalls(rows, cols, leftCol, rightCol int) *silhouette.Raster {
	r := silhouette.NewRaster(rows, cols)
	for row := 0; row < rows; row++ {
		r.Set(row, leftCol, true)
		r.Set(row, rightCol, true)
	}
	return r
}

func TestWidthAcrossLine(t *testing.T) {
	t.Parallel()

	t.Run("recovers the separation of two parallel walls", func(t *testing.T) {
		t.Parallel()
		r := twoWalls(40, 60, 5, 50)

		// A horizontal landmark pair between the walls.
		start := geometry.NewPoint2D(20, 20)
		end := geometry.NewPoint2D(30, 20)

		w, err := WidthAcrossLine(r, start, end, DefaultParams())
		require.NoError(t, err)
		assert.InDelta(t, 45.0, w, 0.01)
	})

	t.Run("symmetric in its endpoints", func(t *testing.T) {
		t.Parallel()
		r := twoWalls(40, 60, 5, 50)

		start := geometry.NewPoint2D(20, 20)
		end := geometry.NewPoint2D(30, 20)

		forward, err := WidthAcrossLine(r, start, end, DefaultParams())
		require.NoError(t, err)
		backward, err := WidthAcrossLine(r, end, start, DefaultParams())
		require.NoError(t, err)
		assert.InDelta(t, forward, backward, 1e-9)
	})

	t.Run("reports a miss when a wall is absent", func(t *testing.T) {
		t.Parallel()
		r := silhouette.NewRaster(40, 60)
		for row := 0; row < 40; row++ {
			r.Set(row, 50, true) // only the far wall
		}

		_, err := WidthAcrossLine(r, geometry.NewPoint2D(20, 20), geometry.NewPoint2D(30, 20), DefaultParams())
		require.ErrorIs(t, err, ErrBoundaryMiss)
	})
}

func TestWidthFromStart(t *testing.T) {
	t.Parallel()

	t.Run("measures the local cross-section at the anchor", func(t *testing.T) {
		t.Parallel()
		r := twoWalls(40, 60, 5, 50)

		// Segment pointing straight down; perpendicular rays run along
		// the columns and strike both walls.
		start := geometry.NewPoint2D(20, 20)
		end := geometry.NewPoint2D(20, 35)

		w, err := WidthFromStart(r, start, end, DefaultParams())
		require.NoError(t, err)
		assert.InDelta(t, 45.0, w, 0.01)
	})

	t.Run("reports a miss on an empty raster", func(t *testing.T) {
		t.Parallel()
		r := silhouette.NewRaster(40, 60)

		_, err := WidthFromStart(r, geometry.NewPoint2D(20, 20), geometry.NewPoint2D(20, 35), DefaultParams())
		require.ErrorIs(t, err, ErrBoundaryMiss)
	})
}
