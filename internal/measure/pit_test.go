package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// floorLine builds a raster with a single full-width horizontal boundary.
func floorLine(rows, cols, atRow int) *silhouette.Raster {
	r := silhouette.NewRaster(rows, cols)
	for col := 0; col < cols; col++ {
		r.Set(atRow, col, true)
	}
	return r
}

func TestLocatePit(t *testing.T) {
	t.Parallel()

	t.Run("climbs toward the deepest reachable boundary point", func(t *testing.T) {
		t.Parallel()
		// Against a flat floor the hit distance grows monotonically as the
		// ray tilts, so each climb runs until its ray slips past the floor
		// edge; the deeper side wins.
		r := floorLine(60, 60, 40)
		anchor := geometry.NewPoint2D(25, 20)

		pt, dist, err := LocatePit(r, anchor, DefaultParams())
		require.NoError(t, err)

		// Anchor sits at column 25 of 60, so the far (right) corner of the
		// floor is the deeper of the two climb results.
		assert.InDelta(t, 40.0, pt.Y, 1e-9)
		assert.Greater(t, pt.X, 50.0)
		assert.InDelta(t, 39.4, dist, 1.0)
	})

	t.Run("sweep cap turns an unbounded climb into a miss", func(t *testing.T) {
		t.Parallel()
		r := floorLine(60, 60, 40)

		p := DefaultParams()
		p.PitMaxSweep = 0.03
		_, _, err := LocatePit(r, geometry.NewPoint2D(25, 20), p)
		require.ErrorIs(t, err, ErrBoundaryMiss)
	})

	t.Run("missing reference ray reports a boundary miss", func(t *testing.T) {
		t.Parallel()
		// Boundary exists only above the anchor; the reference ray points
		// down and leaves the raster.
		r := floorLine(60, 60, 5)

		_, _, err := LocatePit(r, geometry.NewPoint2D(25, 20), DefaultParams())
		require.ErrorIs(t, err, ErrBoundaryMiss)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		t.Parallel()
		r := floorLine(60, 60, 40)
		anchor := geometry.NewPoint2D(25, 20)

		pt1, d1, err := LocatePit(r, anchor, DefaultParams())
		require.NoError(t, err)
		pt2, d2, err := LocatePit(r, anchor, DefaultParams())
		require.NoError(t, err)
		assert.Equal(t, pt1, pt2)
		assert.Equal(t, d1, d2)
	})
}
