// Package report persists a measurement session to disk.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/Hakuou123/YeadonModelGenerator/internal/model"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// Measurement is one labeled result in a saved report. Points carry
// coordinates, everything else a scalar in working-image pixels.
type Measurement struct {
	Kind   string            `json:"kind"`
	Point  *geometry.Point2D `json:"point,omitempty"`
	Scalar float64           `json:"scalar,omitempty"`
}

// File is a saved measurement session (.bodymeas.json).
type File struct {
	Version  int       `json:"version"`
	Subject  string    `json:"subject,omitempty"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`

	// Source image paths, relative to the report file when possible.
	FrontImagePath     string `json:"front_image,omitempty"`
	FrontUpImagePath   string `json:"front_up_image,omitempty"`
	LeftSideImagePath  string `json:"left_side_image,omitempty"`
	RightSideImagePath string `json:"right_side_image,omitempty"`

	Measurements map[string]Measurement `json:"measurements"`
	Failures     map[string]string      `json:"failures,omitempty"`
}

// New creates an empty report for the named subject.
func New(subject string) *File {
	now := time.Now()
	return &File{
		Version:      1,
		Subject:      subject,
		Created:      now,
		Modified:     now,
		Measurements: make(map[string]Measurement),
		Failures:     make(map[string]string),
	}
}

// FromResults converts a measurement run into a saveable report.
func FromResults(subject string, res *model.Results) *File {
	f := New(subject)
	for label, v := range res.Values {
		m := Measurement{Kind: v.Kind.String()}
		if v.Kind == model.KindPoint {
			pt := v.Point
			m.Point = &pt
		} else {
			m.Scalar = v.Scalar
		}
		f.Measurements[label] = m
	}
	for label, err := range res.Errors {
		f.Failures[label] = err.Error()
	}
	return f
}

// SetImages records the four source photographs, stored relative to the
// report path when they share a tree with it.
func (f *File) SetImages(reportPath, front, frontUp, leftSide, rightSide string) {
	f.FrontImagePath = relativize(reportPath, front)
	f.FrontUpImagePath = relativize(reportPath, frontUp)
	f.LeftSideImagePath = relativize(reportPath, leftSide)
	f.RightSideImagePath = relativize(reportPath, rightSide)
	f.Modified = time.Now()
}

func relativize(reportPath, imagePath string) string {
	if imagePath == "" {
		return ""
	}
	rel, err := filepath.Rel(filepath.Dir(reportPath), imagePath)
	if err != nil {
		return imagePath
	}
	return rel
}

// Load reads a report file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Save writes the report to a file.
func (f *File) Save(path string) error {
	f.Modified = time.Now()

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
