// Package silhouette produces and represents binary body-outline rasters.
//
// The extraction pipeline mirrors the classic contour chain: grayscale,
// Canny, dilation, external contours, contours re-rendered onto a blank
// canvas. Downstream measurement code only ever sees the resulting Raster.
package silhouette

import (
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// Raster is an immutable-by-convention boolean boundary grid. A cell is true
// iff the silhouette contour passes through that pixel. Row/col addressing
// matches geometry.Pixel storage order.
type Raster struct {
	rows, cols int
	cells      []bool
}

// NewRaster returns an all-clear raster of the given dimensions.
func NewRaster(rows, cols int) *Raster {
	return &Raster{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// Rows returns the raster height in pixels.
func (r *Raster) Rows() int { return r.rows }

// Cols returns the raster width in pixels.
func (r *Raster) Cols() int { return r.cols }

// Contains reports whether the integer cell (row, col) lies inside the grid.
func (r *Raster) Contains(row, col int) bool {
	return row >= 0 && row < r.rows && col >= 0 && col < r.cols
}

// At reports whether (row, col) is a boundary cell. Out-of-bounds cells
// read as clear.
func (r *Raster) At(row, col int) bool {
	if !r.Contains(row, col) {
		return false
	}
	return r.cells[row*r.cols+col]
}

// Set marks or clears a boundary cell. Out-of-bounds writes are ignored.
func (r *Raster) Set(row, col int, boundary bool) {
	if !r.Contains(row, col) {
		return
	}
	r.cells[row*r.cols+col] = boundary
}

// FirstBoundary returns the first boundary cell in row-major scan order.
// ok is false when the raster has no boundary cells at all.
func (r *Raster) FirstBoundary() (row, col int, ok bool) {
	for i, cell := range r.cells {
		if cell {
			return i / r.cols, i % r.cols, true
		}
	}
	return 0, 0, false
}

// Crop copies the cells covered by rect into a new raster. Portions of the
// rect outside the source read as clear.
func (r *Raster) Crop(rect geometry.RectInt) *Raster {
	out := NewRaster(rect.Height, rect.Width)
	for row := 0; row < rect.Height; row++ {
		for col := 0; col < rect.Width; col++ {
			out.Set(row, col, r.At(rect.Y+row, rect.X+col))
		}
	}
	return out
}

// ClearRows clears every cell in rows [from, to).
func (r *Raster) ClearRows(from, to int) {
	for row := max(from, 0); row < min(to, r.rows); row++ {
		for col := 0; col < r.cols; col++ {
			r.cells[row*r.cols+col] = false
		}
	}
}

// ClearCols clears every cell in columns [from, to).
func (r *Raster) ClearCols(from, to int) {
	for row := 0; row < r.rows; row++ {
		for col := max(from, 0); col < min(to, r.cols); col++ {
			r.cells[row*r.cols+col] = false
		}
	}
}

// Count returns the number of boundary cells.
func (r *Raster) Count() int {
	n := 0
	for _, cell := range r.cells {
		if cell {
			n++
		}
	}
	return n
}
