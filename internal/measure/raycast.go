// Package measure derives linear body measurements from pose landmarks and
// silhouette boundary rasters.
//
// Everything here is a pure function of (landmarks, raster, params): rays
// are marched through the raster at sub-pixel increments until they strike
// a boundary cell or leave the grid, and higher-level searches (widths,
// girth extrema, angular pits, region features) are built on that single
// primitive. Landmarks enter in natural x/y order and are converted to
// row/col storage order internally; results convert back at return.
package measure

import (
	"fmt"
	"math"

	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// Hit is a successful ray termination: the boundary cell that stopped the
// ray and the marched distance at which it was reached.
type Hit struct {
	Pixel    geometry.Pixel
	Distance float64
}

// Cast marches a ray from origin at the given angle until it strikes a
// boundary cell or exits the raster. Angle 0 advances along +row; the
// direction vector is (cos a, sin a) in (row, col) order.
//
// Coordinates are truncated to integer cells at every step, and the march
// advances by p.Step raster units per iteration, so accuracy is bounded by
// the step size rather than pixel quantisation of the direction. A ray that
// exits the grid returns ErrBoundaryMiss.
func Cast(r *silhouette.Raster, origin geometry.Pixel, angle float64, p Params) (Hit, error) {
	sin, cos := math.Sincos(angle)
	for dist := 0.0; ; dist += p.Step {
		row := int(origin.Row + cos*dist)
		col := int(origin.Col + sin*dist)
		if !r.Contains(row, col) {
			return Hit{}, fmt.Errorf("cast from (%.1f, %.1f) at %.3f rad: %w",
				origin.Row, origin.Col, angle, ErrBoundaryMiss)
		}
		if r.At(row, col) {
			return Hit{
				Pixel:    geometry.Pixel{Row: float64(row), Col: float64(col)},
				Distance: dist,
			}, nil
		}
	}
}
