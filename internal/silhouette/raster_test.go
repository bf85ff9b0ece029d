package silhouette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

func TestRasterCells(t *testing.T) {
	t.Parallel()

	r := NewRaster(10, 15)
	assert.Equal(t, 10, r.Rows())
	assert.Equal(t, 15, r.Cols())
	assert.Zero(t, r.Count())

	r.Set(3, 7, true)
	assert.True(t, r.At(3, 7))
	assert.False(t, r.At(7, 3))
	assert.Equal(t, 1, r.Count())

	r.Set(3, 7, false)
	assert.Zero(t, r.Count())

	// out-of-bounds access is clear and silent
	assert.False(t, r.At(-1, 0))
	assert.False(t, r.At(0, 15))
	r.Set(10, 0, true)
	assert.Zero(t, r.Count())
}

func TestRasterFirstBoundary(t *testing.T) {
	t.Parallel()

	r := NewRaster(10, 10)
	_, _, ok := r.FirstBoundary()
	require.False(t, ok)

	r.Set(4, 8, true)
	r.Set(4, 2, true)
	r.Set(6, 0, true)

	row, col, ok := r.FirstBoundary()
	require.True(t, ok)
	assert.Equal(t, 4, row)
	assert.Equal(t, 2, col)
}

func TestRasterCrop(t *testing.T) {
	t.Parallel()

	r := NewRaster(20, 20)
	r.Set(5, 6, true)
	r.Set(12, 12, true) // outside the crop window

	crop := r.Crop(geometry.RectInt{X: 4, Y: 3, Width: 6, Height: 8})
	require.Equal(t, 8, crop.Rows())
	require.Equal(t, 6, crop.Cols())
	assert.True(t, crop.At(2, 2))
	assert.Equal(t, 1, crop.Count())

	// mutating the crop leaves the source untouched
	crop.Set(0, 0, true)
	assert.False(t, r.At(3, 4))
}

func TestRasterClear(t *testing.T) {
	t.Parallel()

	full := func() *Raster {
		r := NewRaster(6, 6)
		for row := 0; row < 6; row++ {
			for col := 0; col < 6; col++ {
				r.Set(row, col, true)
			}
		}
		return r
	}

	t.Run("rows", func(t *testing.T) {
		t.Parallel()
		r := full()
		r.ClearRows(0, 3)
		assert.Equal(t, 18, r.Count())
		assert.False(t, r.At(2, 0))
		assert.True(t, r.At(3, 0))
	})

	t.Run("cols", func(t *testing.T) {
		t.Parallel()
		r := full()
		r.ClearCols(4, 6)
		assert.Equal(t, 24, r.Count())
		assert.True(t, r.At(0, 3))
		assert.False(t, r.At(0, 4))
	})

	t.Run("ranges are clamped to the grid", func(t *testing.T) {
		t.Parallel()
		r := full()
		r.ClearRows(-5, 100)
		assert.Zero(t, r.Count())
	})
}
