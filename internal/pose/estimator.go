package pose

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// Estimator is the pose-network seam: given a photograph it returns the raw
// keypoint array in COCO-WholeBody order. Implementations own the model
// lifecycle; callers treat them as stateless capabilities.
type Estimator interface {
	Infer(img image.Image) ([]geometry.Point2D, error)
}

// FileEstimator reads keypoints exported by an external pose network as a
// JSON array of [x, y] pairs, one file per view. The image argument is
// ignored; the inference already happened out of process.
type FileEstimator struct {
	Path string
}

// NewFileEstimator returns an estimator backed by the given JSON file.
func NewFileEstimator(path string) *FileEstimator {
	return &FileEstimator{Path: path}
}

// Infer loads and validates the exported keypoint array.
func (e *FileEstimator) Infer(_ image.Image) ([]geometry.Point2D, error) {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, fmt.Errorf("read keypoints: %w", err)
	}

	var pairs [][]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parse keypoints %s: %w", e.Path, err)
	}

	points := make([]geometry.Point2D, len(pairs))
	for i, pair := range pairs {
		if len(pair) < 2 {
			return nil, fmt.Errorf("keypoint %d in %s has %d coordinates, need 2", i, e.Path, len(pair))
		}
		points[i] = geometry.Point2D{X: pair[0], Y: pair[1]}
	}
	return points, nil
}
