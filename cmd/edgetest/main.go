// Command edgetest runs silhouette extraction on a single photograph and
// writes the boundary raster out for inspection.
package main

import (
	"flag"
	"fmt"
	"os"

	"gocv.io/x/gocv"

	"github.com/Hakuou123/YeadonModelGenerator/internal/imgio"
	"github.com/Hakuou123/YeadonModelGenerator/internal/measure"
	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/internal/version"
)

func main() {
	imagePath := flag.String("image", "", "Path to photograph (TIFF, PNG, or JPEG)")
	outPath := flag.String("out", "edges.png", "Output path for the rendered raster")
	maxSize := flag.Int("max-size", 600, "Working-size cap in pixels")
	cannyLow := flag.Float64("canny-low", 10, "Canny lower threshold")
	cannyHigh := flag.Float64("canny-high", 100, "Canny upper threshold")
	grabcut := flag.Bool("grabcut", false, "Suppress background with GrabCut first")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("edgetest %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	if *imagePath == "" {
		fmt.Println("Usage: edgetest -image <path> [-out edges.png] [-max-size 600] [-grabcut]")
		os.Exit(1)
	}

	img, err := imgio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	img = imgio.Downscale(img, *maxSize)
	bounds := img.Bounds()
	fmt.Printf("Working image: %dx%d pixels\n", bounds.Dx(), bounds.Dy())

	mat, err := imgio.ToMat(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to convert image: %v\n", err)
		os.Exit(1)
	}
	defer mat.Close()

	opts := silhouette.DefaultOptions()
	opts.CannyLow = float32(*cannyLow)
	opts.CannyHigh = float32(*cannyHigh)
	opts.RemoveBackground = *grabcut

	raster, err := silhouette.Extract(mat, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Boundary pixels: %d\n", raster.Count())
	if crown, err := measure.TopOfHead(raster); err == nil {
		fmt.Printf("Topmost boundary point: (%.0f, %.0f)\n", crown.X, crown.Y)
	} else {
		fmt.Printf("No boundary found: %v\n", err)
	}

	rendered := silhouette.ToMat(raster)
	defer rendered.Close()
	if ok := gocv.IMWrite(*outPath, rendered); !ok {
		fmt.Fprintf(os.Stderr, "Failed to write %s\n", *outPath)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}
