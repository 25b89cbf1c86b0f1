package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/sugarray/go-whitted-raytracer/pkg/demo"
	"github.com/sugarray/go-whitted-raytracer/pkg/renderer"
	"github.com/sugarray/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "spheres", "Scene: 'spheres', 'default', 'silhouette', 'clock' or 'projectile'")
	width := flag.Int("width", 800, "Canvas width in pixels")
	height := flag.Int("height", 400, "Canvas height in pixels")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  spheres    - Three shaded spheres above a plane floor")
		fmt.Println("  default    - The two-sphere test world, rendered head-on")
		fmt.Println("  silhouette - Unshaded sphere silhouette on a wall")
		fmt.Println("  clock      - Clock face drawn with chained transforms")
		fmt.Println("  projectile - Projectile arc under gravity and wind")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	canvas, err := renderScene(*sceneType, *width, *height, *workers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))

	if err := saveCanvas(canvas, filename, *format); err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// renderScene builds and renders the named scene, reporting the render time
func renderScene(sceneType string, width, height, workers int) (*renderer.Canvas, error) {
	start := time.Now()

	var canvas *renderer.Canvas
	switch sceneType {
	case "spheres":
		s := scene.NewThreeSphereScene(width, height)
		canvas = s.Camera.RenderWithWorkers(s.World, workers)
	case "default":
		s := scene.NewDefaultScene(width, height)
		canvas = s.Camera.RenderWithWorkers(s.World, workers)
	case "silhouette":
		canvas = demo.Silhouette(width)
	case "clock":
		canvas = demo.Clock(width, 3.5, 30)
	case "projectile":
		canvas = demo.Projectile(width, height)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}

	fmt.Printf("Render completed in %v\n", time.Since(start))
	return canvas, nil
}

// saveCanvas writes the canvas in the requested format
func saveCanvas(canvas *renderer.Canvas, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	switch format {
	case "png":
		return png.Encode(file, canvas.ToImage())
	case "ppm":
		return canvas.WritePPM(file)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
