package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rmak/go-pathtracer/pkg/renderer"
	"github.com/rmak/go-pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cover'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("output", "", "Output file path, '-' for stdout (default output/<scene>/render_<timestamp>.ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres (diffuse, hollow glass, fuzzy metal) on a ground sphere")
		fmt.Println("  cover   - Grid of random small spheres around three large ones, wide aperture")
		return
	}

	overrides := renderer.CameraConfig{
		Width:           *width,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	}

	selectedScene, err := createScene(*sceneType, *seed, overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Keep stdout clean when the image itself goes there
	logger := renderer.NewDefaultLogger()
	if *output == "-" {
		logger = nil
	}
	raytracer := renderer.NewRaytracer(selectedScene, logger)

	startTime := time.Now()
	frame := raytracer.Render(renderer.RenderOptions{
		NumWorkers: *workers,
		Seed:       *seed,
		Progress: func(completed, total int) {
			fmt.Fprintf(os.Stderr, "\rRows remaining: %d ", total-completed)
		},
	})
	fmt.Fprint(os.Stderr, "\rDone.                    \n")
	fmt.Fprintf(os.Stderr, "Render completed in %v\n", time.Since(startTime))

	if err := writeOutput(*output, *sceneType, frame); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// createScene builds a scene by name with camera overrides applied
func createScene(sceneType string, seed int64, overrides renderer.CameraConfig) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(overrides), nil
	case "cover":
		return scene.NewCoverScene(seed, overrides), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q (available: default, cover)", sceneType)
	}
}

// writeOutput serializes the frame to the requested destination
func writeOutput(path, sceneType string, frame *renderer.Frame) error {
	if path == "-" {
		return renderer.WritePPM(os.Stdout, frame)
	}

	if path == "" {
		outputDir := filepath.Join("output", sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		path = filepath.Join(outputDir, fmt.Sprintf("render_%s.ppm", timestamp))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := renderer.WritePPM(file, frame); err != nil {
		return fmt.Errorf("writing PPM: %w", err)
	}

	fmt.Printf("Render saved as %s\n", path)
	return nil
}
