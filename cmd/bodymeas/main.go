// Command bodymeas derives the labeled measurement set of a segmented-body
// model from four photographs of a subject plus keypoint files exported by
// an external pose network.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/Hakuou123/YeadonModelGenerator/internal/annotate"
	"github.com/Hakuou123/YeadonModelGenerator/internal/imgio"
	"github.com/Hakuou123/YeadonModelGenerator/internal/measure"
	"github.com/Hakuou123/YeadonModelGenerator/internal/model"
	"github.com/Hakuou123/YeadonModelGenerator/internal/pose"
	"github.com/Hakuou123/YeadonModelGenerator/internal/report"
	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/internal/version"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	frontImg := flag.String("front", "", "Front T-pose photograph")
	frontKP := flag.String("front-kp", "", "Front keypoints JSON")
	frontUpImg := flag.String("front-up", "", "Front arms-up photograph")
	frontUpKP := flag.String("front-up-kp", "", "Front arms-up keypoints JSON")
	leftImg := flag.String("left", "", "Left profile photograph")
	leftKP := flag.String("left-kp", "", "Left profile keypoints JSON")
	rightImg := flag.String("right", "", "Right profile photograph")
	rightKP := flag.String("right-kp", "", "Right profile keypoints JSON")
	configPath := flag.String("config", "", "Optional YAML config")
	subjectName := flag.String("subject", "", "Subject name recorded in the report")
	outPath := flag.String("out", "", "Write a JSON measurement report here")
	overlayPath := flag.String("overlay", "", "Write an annotated front-view PNG here")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("bodymeas %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	if *frontImg == "" || *frontUpImg == "" || *leftImg == "" || *rightImg == "" {
		fmt.Println("Usage: bodymeas -front <img> -front-kp <json> -front-up <img> -front-up-kp <json>")
		fmt.Println("                -left <img> -left-kp <json> -right <img> -right-kp <json>")
		fmt.Println("                [-config <yaml>] [-out <json>] [-overlay <png>] [-subject <name>]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	params := measure.Params{
		Step:            cfg.Engine.Step,
		Samples:         cfg.Engine.Samples,
		PitStep:         cfg.Engine.PitStep,
		PitMaxSweep:     cfg.Engine.PitMaxSweep,
		WidthRatioLimit: cfg.Engine.WidthRatioLimit,
	}

	subject := model.Subject{}
	var frontPhoto image.Image
	load := func(view pose.View, imgPath, kpPath string, dst *model.View) image.Image {
		v, photo, err := loadView(view, imgPath, kpPath, cfg)
		if err != nil {
			log.Fatalf("Load %s view: %v", view, err)
		}
		*dst = v
		return photo
	}
	frontPhoto = load(pose.ViewFront, *frontImg, *frontKP, &subject.Front)
	load(pose.ViewFrontUp, *frontUpImg, *frontUpKP, &subject.FrontUp)
	load(pose.ViewLeftSide, *leftImg, *leftKP, &subject.LeftSide)
	load(pose.ViewRightSide, *rightImg, *rightKP, &subject.RightSide)

	results := subject.Measure(params, cfg.Engine.Workers)

	for _, label := range results.Labels() {
		v := results.Values[label]
		if v.Kind == model.KindPoint {
			fmt.Printf("%-6s %-10s (%8.2f, %8.2f)\n", label, v.Kind, v.Point.X, v.Point.Y)
		} else {
			fmt.Printf("%-6s %-10s %10.2f\n", label, v.Kind, v.Scalar)
		}
	}
	for _, label := range results.FailedLabels() {
		fmt.Fprintf(os.Stderr, "FAILED %-6s %v\n", label, results.Errors[label])
	}
	if len(results.Errors) > 0 {
		log.Printf("%d of %d measurements failed", len(results.Errors),
			len(results.Values)+len(results.Errors))
	}

	if *outPath != "" {
		f := report.FromResults(*subjectName, results)
		f.SetImages(*outPath, *frontImg, *frontUpImg, *leftImg, *rightImg)
		if err := f.Save(*outPath); err != nil {
			log.Fatalf("Save report: %v", err)
		}
		log.Printf("Report written to %s", *outPath)
	}

	if *overlayPath != "" {
		overlay := annotate.Render(frontPhoto, subject.Front.Edges, subject.Front.Landmarks,
			annotate.DefaultOptions())
		if err := imgio.SavePNG(*overlayPath, overlay); err != nil {
			log.Fatalf("Save overlay: %v", err)
		}
		log.Printf("Overlay written to %s", *overlayPath)
	}
}

// loadView runs the upstream pipeline for one camera view: decode and
// downscale the photograph, extract the silhouette raster, and assemble the
// named landmarks from the exported keypoints. The downscaled photograph is
// returned alongside the view for overlay rendering.
func loadView(view pose.View, imgPath, kpPath string, cfg *config.Config) (model.View, image.Image, error) {
	img, err := imgio.Load(imgPath)
	if err != nil {
		return model.View{}, nil, err
	}
	img = imgio.Downscale(img, cfg.Image.MaxSize)

	mat, err := imgio.ToMat(img)
	if err != nil {
		return model.View{}, nil, err
	}
	defer mat.Close()

	opts := silhouette.DefaultOptions()
	opts.CannyLow = cfg.Silhouette.CannyLow
	opts.CannyHigh = cfg.Silhouette.CannyHigh
	opts.DilateKernel = cfg.Silhouette.DilateKernel
	opts.DilateIterations = cfg.Silhouette.DilateIterations
	opts.ContourThickness = cfg.Silhouette.ContourThickness
	opts.RemoveBackground = cfg.Silhouette.RemoveBackground
	opts.GrabCutIters = cfg.Silhouette.GrabCutIterations

	raster, err := silhouette.Extract(mat, opts)
	if err != nil {
		return model.View{}, nil, err
	}
	log.Printf("%s: %dx%d raster, %d boundary pixels", view, raster.Cols(), raster.Rows(), raster.Count())

	raw, err := pose.NewFileEstimator(kpPath).Infer(img)
	if err != nil {
		return model.View{}, nil, err
	}
	landmarks, err := pose.Assemble(view, raw)
	if err != nil {
		return model.View{}, nil, err
	}

	return model.View{Landmarks: landmarks, Edges: raster}, img, nil
}
