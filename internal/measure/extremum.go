package measure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// LocateExtremum finds the point of maximal perpendicular width along the
// start-end segment, the brute-force stand-in for the true girth extremum
// of a tapered limb (maximum forearm, maximum calf).
//
// The segment is sampled at p.Samples evenly spaced points; from each, two
// rays are cast perpendicular to the segment, one per side. Opposite hits
// are paired positionally, so both sides must produce the same number of
// hits — anything else is an input-contract violation, reported rather than
// resolved. The winning sample is returned in natural x/y order.
//
// p.WidthRatioLimit reproduces the calibration heuristic that abandons the
// scan when a candidate width exceeds the first sample's width by that
// ratio, which rejects runaway hits where a ray escapes past the limb onto
// the torso boundary.
func LocateExtremum(r *silhouette.Raster, start, end geometry.Point2D, p Params) (geometry.Point2D, error) {
	a := geometry.PixelFromPoint(start)
	b := geometry.PixelFromPoint(end)
	axis := a.Angle(b)

	rows := floats.Span(make([]float64, p.Samples), a.Row, b.Row)
	cols := floats.Span(make([]float64, p.Samples), a.Col, b.Col)

	var (
		left, right []Hit
		sampleAt    []int // sample index for each left-side hit
	)
	for i := range rows {
		origin := geometry.Pixel{Row: rows[i], Col: cols[i]}
		if h, err := Cast(r, origin, axis+math.Pi/2, p); err == nil {
			left = append(left, h)
			sampleAt = append(sampleAt, i)
		}
		if h, err := Cast(r, origin, axis-math.Pi/2, p); err == nil {
			right = append(right, h)
		}
	}

	if len(left) != len(right) {
		return geometry.Point2D{}, fmt.Errorf("locate extremum: %d hits on one side, %d on the other: %w",
			len(left), len(right), ErrContract)
	}
	if len(left) == 0 {
		return geometry.Point2D{}, fmt.Errorf("locate extremum: every sample ray missed: %w", ErrBoundaryMiss)
	}

	widths := make([]float64, len(left))
	for i := range left {
		widths[i] = left[i].Pixel.Distance(right[i].Pixel)
	}

	best := 0
	maxWidth := widths[0]
	for i, w := range widths {
		if w > maxWidth {
			if p.WidthRatioLimit > 0 && w > widths[0]*p.WidthRatioLimit {
				break
			}
			maxWidth = w
			best = i
		}
	}

	winner := sampleAt[best]
	return geometry.Pixel{Row: rows[winner], Col: cols[winner]}.ToPoint(), nil
}
