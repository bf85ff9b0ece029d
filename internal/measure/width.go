package measure

import (
	"fmt"
	"math"

	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// WidthAcrossLine measures the full cross-section width through two
// opposite landmarks: one ray leaves start directly away from end, the
// other leaves end directly away from start, and the result is the distance
// between the two boundary hits. Intended for left/right landmark pairs
// (hips, umbiculi, ribs, nipples) on a frontal raster.
func WidthAcrossLine(r *silhouette.Raster, start, end geometry.Point2D, p Params) (float64, error) {
	a := geometry.PixelFromPoint(start)
	b := geometry.PixelFromPoint(end)
	axis := a.Angle(b)

	near, err := Cast(r, a, axis+math.Pi, p)
	if err != nil {
		return 0, fmt.Errorf("width across line, start ray: %w", err)
	}
	far, err := Cast(r, b, axis, p)
	if err != nil {
		return 0, fmt.Errorf("width across line, end ray: %w", err)
	}
	return near.Pixel.Distance(far.Pixel), nil
}

// WidthFromStart measures the local cross-section width at start, using end
// only to orient the segment: both rays leave start perpendicular to
// start-end, one to each side. Intended for limb girths where only one
// landmark sits on the segment axis (wrists, knees, mid-arm).
func WidthFromStart(r *silhouette.Raster, start, end geometry.Point2D, p Params) (float64, error) {
	a := geometry.PixelFromPoint(start)
	b := geometry.PixelFromPoint(end)
	axis := a.Angle(b)

	left, err := Cast(r, a, axis+math.Pi/2, p)
	if err != nil {
		return 0, fmt.Errorf("width from start, left ray: %w", err)
	}
	right, err := Cast(r, a, axis-math.Pi/2, p)
	if err != nil {
		return 0, fmt.Errorf("width from start, right ray: %w", err)
	}
	return left.Pixel.Distance(right.Pixel), nil
}
