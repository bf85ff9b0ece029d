package measure

import (
	"fmt"

	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// Side identifies which side of the body a landmark pair belongs to, in the
// subject's own frame. In a non-mirrored photograph the subject's left
// appears on the right of the image.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// TopOfHead returns the first boundary pixel in row-major scan order, the
// topmost-then-leftmost point of the silhouette. On a standing subject that
// is the crown of the head.
func TopOfHead(r *silhouette.Raster) (geometry.Point2D, error) {
	row, col, ok := r.FirstBoundary()
	if !ok {
		return geometry.Point2D{}, fmt.Errorf("top of head: %w", ErrEmptyRegion)
	}
	return geometry.Point2D{X: float64(col), Y: float64(row)}, nil
}

// Acromion locates the bony tip of the shoulder between the ear and
// shoulder landmarks. The ear/shoulder bounding box is cropped, then the
// vertical half nearer the ear and the horizontal half nearer the body
// midline are cleared, which isolates the acromion in the lateral lower
// quadrant; the first surviving boundary pixel is returned in raster
// coordinates. The horizontal mask mirrors between sides.
func Acromion(r *silhouette.Raster, side Side, ear, shoulder geometry.Point2D) (geometry.Point2D, error) {
	box := geometry.BoundsInt(ear, shoulder)
	crop := r.Crop(box)

	crop.ClearRows(0, crop.Rows()/2)
	if side == SideLeft {
		crop.ClearCols(0, crop.Cols()/2)
	} else {
		crop.ClearCols(crop.Cols()/2, crop.Cols())
	}

	row, col, ok := crop.FirstBoundary()
	if !ok {
		return geometry.Point2D{}, fmt.Errorf("%s acromion: %w", side, ErrEmptyRegion)
	}
	return geometry.Point2D{X: float64(box.X + col), Y: float64(box.Y + row)}, nil
}

// CrotchPoints locates the crotch from the frontal raster. Cropping the
// raster between the right hip and the left knee leaves the crotch arch as
// the only boundary feature near the top of the crop, so the first couple
// of boundary pixels pin down its vertical offset below the hip line; that
// offset is applied under both hip landmarks to produce one crotch point
// per leg.
func CrotchPoints(r *silhouette.Raster, rightHip, leftHip, leftKnee geometry.Point2D) (right, left geometry.Point2D, err error) {
	box := geometry.BoundsInt(rightHip, leftKnee)
	crop := r.Crop(box)

	found := make([]geometry.PointInt, 0, 2)
	for row := 0; row < crop.Rows() && len(found) < 2; row++ {
		for col := 0; col < crop.Cols() && len(found) < 2; col++ {
			if crop.At(row, col) {
				found = append(found, geometry.PointInt{X: col, Y: row})
			}
		}
	}
	if len(found) == 0 {
		return geometry.Point2D{}, geometry.Point2D{}, fmt.Errorf("crotch: %w", ErrEmptyRegion)
	}

	drop := float64(found[len(found)-1].Y)
	right = geometry.Point2D{X: rightHip.X, Y: rightHip.Y + drop}
	left = geometry.Point2D{X: leftHip.X, Y: leftHip.Y + drop}
	return right, left, nil
}
