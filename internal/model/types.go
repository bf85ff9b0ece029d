// Package model assembles the labeled anthropometric measurement set of a
// segmented-body model from four camera views.
//
// Labels follow the segment naming of Yeadon's inertia model: Ls* for the
// torso and head stadia, La*/Lb* for the left/right arms, Lj*/Lk* for the
// left/right legs. A bare label is a landmark point, an L suffix a segment
// length, a w suffix a cross-section width, and a p suffix a perimeter.
package model

import (
	"sort"

	"github.com/Hakuou123/YeadonModelGenerator/internal/pose"
	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// View pairs one camera view's landmarks with its silhouette raster. Both
// must come from the same photograph.
type View struct {
	Landmarks pose.Landmarks
	Edges     *silhouette.Raster
}

// Subject holds the four views a full measurement run needs.
type Subject struct {
	Front     View // T-pose facing the camera
	FrontUp   View // facing the camera, arms raised
	LeftSide  View // left profile
	RightSide View // right profile
}

// Kind tags what a measurement value represents.
type Kind int

const (
	KindPoint     Kind = iota // a located landmark
	KindLength                // distance between two landmarks
	KindWidth                 // silhouette cross-section width
	KindPerimeter             // composed cross-section perimeter
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLength:
		return "length"
	case KindWidth:
		return "width"
	case KindPerimeter:
		return "perimeter"
	default:
		return "unknown"
	}
}

// Value is one labeled measurement: a point for KindPoint, a scalar in
// raster units otherwise.
type Value struct {
	Kind   Kind
	Point  geometry.Point2D
	Scalar float64
}

// Results collects per-label outcomes of a measurement run. A label appears
// in exactly one of the two maps; failures never abort the batch.
type Results struct {
	Values map[string]Value
	Errors map[string]error
}

func newResults() *Results {
	return &Results{
		Values: make(map[string]Value),
		Errors: make(map[string]error),
	}
}

// Labels returns the successfully measured labels in sorted order.
func (r *Results) Labels() []string {
	labels := make([]string, 0, len(r.Values))
	for label := range r.Values {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// FailedLabels returns the failed labels in sorted order.
func (r *Results) FailedLabels() []string {
	labels := make([]string, 0, len(r.Errors))
	for label := range r.Errors {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Scalar returns a scalar measurement by label.
func (r *Results) Scalar(label string) (float64, bool) {
	v, ok := r.Values[label]
	if !ok || v.Kind == KindPoint {
		return 0, false
	}
	return v.Scalar, true
}

// PointValue returns a point measurement by label.
func (r *Results) PointValue(label string) (geometry.Point2D, bool) {
	v, ok := r.Values[label]
	if !ok || v.Kind != KindPoint {
		return geometry.Point2D{}, false
	}
	return v.Point, true
}
