// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point in natural image coordinates: X grows to the
// right (columns), Y grows downward (rows).
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Midpoint returns the point halfway between p and other.
func (p Point2D) Midpoint(other Point2D) Point2D {
	return Point2D{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Pixel addresses a raster cell in storage order: Row first, then Col.
// Raster search code works in Pixel space and converts to Point2D only at
// API boundaries, so storage order and natural order never mix silently.
type Pixel struct {
	Row float64 `json:"row"`
	Col float64 `json:"col"`
}

// PixelFromPoint converts a natural-order point into storage order.
func PixelFromPoint(p Point2D) Pixel {
	return Pixel{Row: p.Y, Col: p.X}
}

// ToPoint converts a storage-order pixel into natural x/y order.
func (px Pixel) ToPoint() Point2D {
	return Point2D{X: px.Col, Y: px.Row}
}

// Distance returns the Euclidean distance to another pixel.
func (px Pixel) Distance(other Pixel) float64 {
	dr := px.Row - other.Row
	dc := px.Col - other.Col
	return math.Sqrt(dr*dr + dc*dc)
}

// Angle returns the direction from px toward other, measured from the +row
// axis toward the +col axis.
func (px Pixel) Angle(other Pixel) float64 {
	return math.Atan2(other.Col-px.Col, other.Row-px.Row)
}

// Offset returns the pixel displaced by distance along the given angle.
func (px Pixel) Offset(angle, distance float64) Pixel {
	return Pixel{
		Row: px.Row + math.Cos(angle)*distance,
		Col: px.Col + math.Sin(angle)*distance,
	}
}

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// RectInt represents a rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BoundsInt returns the axis-aligned integer bounding box of two points,
// regardless of their relative order.
func BoundsInt(a, b Point2D) RectInt {
	x1, x2 := int(a.X), int(b.X)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := int(a.Y), int(b.Y)
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return RectInt{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Centroid computes the centroid (average position) of a set of points.
func Centroid(points []Point2D) Point2D {
	if len(points) == 0 {
		return Point2D{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point2D{X: sumX / n, Y: sumY / n}
}

// Blend returns the weighted average wa*a + wb*b normalised by wa+wb.
func Blend(a Point2D, wa float64, b Point2D, wb float64) Point2D {
	return a.Scale(wa).Add(b.Scale(wb)).Scale(1 / (wa + wb))
}
