package silhouette

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Options configures edge extraction.
type Options struct {
	CannyLow         float32 // lower hysteresis threshold
	CannyHigh        float32 // upper hysteresis threshold
	DilateKernel     int     // square structuring element side, pixels
	DilateIterations int     // dilation passes before contour extraction
	ContourThickness int     // stroke width when re-rendering contours
	RemoveBackground bool    // run a coarse GrabCut pass first
	GrabCutIters     int     // GrabCut refinement iterations
}

// DefaultOptions returns the extraction parameters tuned for ~600px
// person photographs with the background already removed.
func DefaultOptions() Options {
	return Options{
		CannyLow:         10,
		CannyHigh:        100,
		DilateKernel:     3,
		DilateIterations: 1,
		ContourThickness: 2,
		RemoveBackground: false,
		GrabCutIters:     3,
	}
}

// Extract computes the external body contour of a BGR photograph and
// returns it as a boundary raster of the same dimensions.
func Extract(img gocv.Mat, opts Options) (*Raster, error) {
	if img.Empty() {
		return nil, fmt.Errorf("extract silhouette: empty input image")
	}

	src := img
	if opts.RemoveBackground {
		masked := suppressBackground(img, opts.GrabCutIters)
		defer masked.Close()
		src = masked
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	edged := gocv.NewMat()
	defer edged.Close()
	gocv.Canny(gray, &edged, opts.CannyLow, opts.CannyHigh)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{opts.DilateKernel, opts.DilateKernel})
	defer kernel.Close()
	for i := 0; i < opts.DilateIterations; i++ {
		gocv.Dilate(edged, &edged, kernel)
	}

	// Only the outermost contour matters: interior clothing edges and
	// shadows must not register as silhouette boundary.
	contours := gocv.FindContours(edged, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	canvas := gocv.NewMatWithSize(img.Rows(), img.Cols(), gocv.MatTypeCV8U)
	defer canvas.Close()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < contours.Size(); i++ {
		gocv.DrawContours(&canvas, contours, i, white, opts.ContourThickness)
	}

	return FromMat(canvas), nil
}

// suppressBackground blanks everything GrabCut marks as background, seeding
// the model with a rectangle one pixel inside the frame.
func suppressBackground(img gocv.Mat, iterations int) gocv.Mat {
	rows, cols := img.Rows(), img.Cols()

	mask := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8U)
	defer mask.Close()
	bgdModel := gocv.NewMat()
	defer bgdModel.Close()
	fgdModel := gocv.NewMat()
	defer fgdModel.Close()

	seed := image.Rect(1, 1, cols-1, rows-1)
	gocv.GrabCut(img, &mask, seed, &bgdModel, &fgdModel, iterations, gocv.GCInitWithRect)

	out := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m := mask.GetUCharAt(y, x)
			if m == uint8(gocv.GCFgd) || m == uint8(gocv.GCPRFgd) {
				out.SetUCharAt(y, x*3+0, img.GetUCharAt(y, x*3+0))
				out.SetUCharAt(y, x*3+1, img.GetUCharAt(y, x*3+1))
				out.SetUCharAt(y, x*3+2, img.GetUCharAt(y, x*3+2))
			}
		}
	}
	return out
}

// FromMat converts a single-channel mat into a raster; any nonzero pixel
// counts as boundary.
func FromMat(mat gocv.Mat) *Raster {
	rows, cols := mat.Rows(), mat.Cols()
	out := NewRaster(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if mat.GetUCharAt(row, col) != 0 {
				out.Set(row, col, true)
			}
		}
	}
	return out
}

// ToMat renders the raster as a single-channel mat with boundary cells at
// 255. The caller owns the returned mat.
func ToMat(r *Raster) gocv.Mat {
	mat := gocv.NewMatWithSize(r.Rows(), r.Cols(), gocv.MatTypeCV8U)
	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			if r.At(row, col) {
				mat.SetUCharAt(row, col, 255)
			}
		}
	}
	return mat
}
