// Package annotate renders silhouette contours and landmarks onto a
// photograph for visual verification of a measurement run.
package annotate

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/Hakuou123/YeadonModelGenerator/internal/pose"
	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/colorutil"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// Options configures how an overlay is rendered.
type Options struct {
	// MarkerRadius is the landmark dot radius in pixels.
	MarkerRadius int

	// MarkerOutlineWidth is the darker rim drawn around each dot.
	MarkerOutlineWidth int

	// FillMarkers draws solid dots instead of outlines only.
	FillMarkers bool

	// ContourColor paints the silhouette boundary pixels.
	ContourColor color.RGBA
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{
		MarkerRadius:       4,
		MarkerOutlineWidth: 1,
		FillMarkers:        true,
		ContourColor:       colorutil.Yellow,
	}
}

// Render composites the silhouette contour and the landmark markers over the
// base photograph. A nil base yields markers on a black canvas sized to the
// raster.
func Render(base image.Image, edges *silhouette.Raster, landmarks pose.Landmarks, opts Options) *image.RGBA {
	var img *image.RGBA
	if base != nil {
		b := base.Bounds()
		img = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(img, img.Bounds(), base, b.Min, draw.Src)
	} else {
		img = image.NewRGBA(image.Rect(0, 0, edges.Cols(), edges.Rows()))
	}

	for row := 0; row < edges.Rows(); row++ {
		for col := 0; col < edges.Cols(); col++ {
			if edges.At(row, col) {
				img.Set(col, row, opts.ContourColor)
			}
		}
	}

	for name, pt := range landmarks {
		drawMarker(img, pt, markerColor(name), opts)
	}
	return img
}

// DrawSegment draws a measurement line between two landmarks.
func DrawSegment(img *image.RGBA, a, b geometry.Point2D, thickness int, c color.RGBA) {
	drawThickLine(img, a.X, a.Y, b.X, b.Y, thickness, c)
}

// markerColor distinguishes how a landmark was obtained: green for pose
// network output, cyan for interpolated landmarks, magenta for points found
// on the raster itself.
func markerColor(name string) color.RGBA {
	switch name {
	case pose.TopOfHead, pose.LeftAcromion, pose.RightAcromion,
		pose.LeftMaxForearm, pose.RightMaxForearm,
		pose.LeftMaxCalf, pose.RightMaxCalf,
		pose.LeftCrotch, pose.RightCrotch:
		return colorutil.Magenta
	case pose.LeftLowestRib, pose.RightLowestRib,
		pose.LeftNipple, pose.RightNipple,
		pose.LeftUmbiculus, pose.RightUmbiculus,
		pose.LeftArch, pose.RightArch,
		pose.LeftBall, pose.RightBall,
		pose.LeftMidArm, pose.RightMidArm,
		pose.LeftKnuckles, pose.RightKnuckles,
		pose.LeftNails, pose.RightNails,
		pose.LeftMidThigh, pose.RightMidThigh:
		return colorutil.Cyan
	default:
		return colorutil.Green
	}
}

func drawMarker(img *image.RGBA, pt geometry.Point2D, c color.RGBA, opts Options) {
	cx, cy := int(pt.X), int(pt.Y)

	if opts.FillMarkers {
		fillCircle(img, cx, cy, opts.MarkerRadius, c)
	}
	if opts.MarkerOutlineWidth > 0 {
		rim := colorutil.Darken(c, 0.3)
		for w := 0; w < opts.MarkerOutlineWidth; w++ {
			drawCircle(img, cx, cy, opts.MarkerRadius-w, rim)
		}
	}
}

// fillCircle fills a circle with the given color.
func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	bounds := img.Bounds()

	for y := cy - r; y <= cy+r; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

// drawCircle draws a circle outline using Bresenham's algorithm.
func drawCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	bounds := img.Bounds()

	setPixel := func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.Set(x, y, c)
		}
	}

	x := r
	y := 0
	err := 0

	for x >= y {
		setPixel(cx+x, cy+y)
		setPixel(cx+y, cy+x)
		setPixel(cx-y, cy+x)
		setPixel(cx-x, cy+y)
		setPixel(cx-x, cy-y)
		setPixel(cx-y, cy-x)
		setPixel(cx+y, cy-x)
		setPixel(cx+x, cy-y)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// drawThickLine draws a line with given thickness.
func drawThickLine(img *image.RGBA, x1, y1, x2, y2 float64, thickness int, c color.RGBA) {
	bounds := img.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}

	// perpendicular unit vector
	px := -dy / length
	py := dx / length

	halfThick := float64(thickness) / 2
	for t := -halfThick; t <= halfThick; t += 1.0 {
		drawLine(img, int(x1+px*t), int(y1+py*t), int(x2+px*t), int(y2+py*t), c, bounds)
	}
}

// drawLine draws a line using Bresenham's algorithm.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA, bounds image.Rectangle) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= bounds.Min.X && x1 < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			img.Set(x1, y1, c)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
