// Command heatmap-overlay renders a detection heatmap over an image in batch
// mode: an event-log JSON document and a base image in, a composited PNG out.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/sightline-labs/heatmap-overlay/internal/detection"
	"github.com/sightline-labs/heatmap-overlay/internal/heatmap"
)

func main() {
	jsonPath := flag.String("json", "response.json", "event-log JSON document")
	imagePath := flag.String("image", "image.png", "base image (PNG or JPEG)")
	outPath := flag.String("out", "overlay.png", "output PNG path")
	class := flag.String("class", heatmap.DefaultClass, "target detection class label")
	sigma := flag.Float64("sigma", heatmap.DefaultSigma, "Gaussian smoothing standard deviation")
	densityCap := flag.Float64("cap", heatmap.DefaultCap, "density ceiling applied after smoothing")
	alpha := flag.Float64("alpha", heatmap.DefaultAlpha, "overlay opacity in [0,1]")
	width := flag.Int("width", heatmap.DefaultWidth, "output width in pixels")
	height := flag.Int("height", heatmap.DefaultHeight, "output height in pixels")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	data, err := os.ReadFile(*jsonPath)
	if err != nil {
		log.Fatalf("Error: could not read %s: %v", *jsonPath, err)
	}
	dets, err := detection.ExtractCentroids(data, *class)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	img, err := imgio.Open(*imagePath)
	if err != nil {
		log.Fatalf("Error: could not load image from %s: %v", *imagePath, err)
	}

	opts := heatmap.Options{
		Sigma:  *sigma,
		Cap:    *densityCap,
		Alpha:  *alpha,
		Width:  *width,
		Height: *height,
	}
	result, err := heatmap.Render(img, dets, opts)
	if errors.Is(err, heatmap.ErrNoDetections) {
		log.Fatalf("No %s detections found.", *class)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := imgio.Save(*outPath, result, imgio.PNGEncoder()); err != nil {
		log.Fatalf("Error: could not save %s: %v", *outPath, err)
	}
	fmt.Printf("Overlayed image saved to %s (%d detections).\n", *outPath, len(dets))
}
