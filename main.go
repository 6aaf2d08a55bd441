package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/opticslab/go-beamtrace/pkg/renderer"
	"github.com/opticslab/go-beamtrace/pkg/scene"
	"github.com/opticslab/go-beamtrace/pkg/tracer"
)

func main() {
	// Parse command line flags
	sceneID := flag.String("scene", "default", "Built-in scene id (see -list)")
	sceneFile := flag.String("scene-file", "", "Path to a scene JSON file (overrides -scene)")
	width := flag.Int("width", 800, "Output image width")
	height := flag.Int("height", 600, "Output image height")
	maxEvents := flag.Int("max-events", tracer.DefaultMaxEvents, "Event budget per source ray tree")
	threshold := flag.Int("parallel-threshold", tracer.DefaultParallelThreshold, "Minimum ray count for parallel tracing")
	list := flag.Bool("list", false, "List built-in scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Beamtrace - 2D optical raytracer")
		fmt.Println("Usage: beamtrace [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/trace_<timestamp>.png")
		return
	}

	if *list {
		for _, info := range scene.ListBuiltinScenes() {
			fmt.Printf("  %-12s %s\n", info.ID, info.Description)
		}
		return
	}

	// Build the scene snapshot
	var selectedScene *scene.Scene
	if *sceneFile != "" {
		loaded, warnings, err := scene.LoadConfig(*sceneFile)
		if err != nil {
			fmt.Printf("Error loading scene: %v\n", err)
			os.Exit(1)
		}
		for _, w := range warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		selectedScene = loaded
	} else {
		selectedScene = scene.NewSceneByID(*sceneID)
		if selectedScene == nil {
			fmt.Printf("Unknown scene %q. Using default scene.\n", *sceneID)
			selectedScene = scene.NewDefaultScene()
		}
	}

	params := tracer.DefaultParams()
	params.MaxEvents = *maxEvents
	params.ParallelThreshold = *threshold
	params.Logger = &tracer.DefaultLogger{}

	// Trace one full pass over the snapshot
	startTime := time.Now()
	paths, stats := selectedScene.Trace(params)
	traceTime := time.Since(startTime)

	for _, w := range stats.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	fmt.Printf("Traced %d source rays into %d paths (%d events, %d workers) in %v\n",
		stats.SourceRays, stats.Paths, stats.Events, stats.Workers, traceTime)

	// Render the traced paths
	r := renderer.NewRenderer(renderer.DefaultConfig(*width, *height))
	img := r.Render(selectedScene, paths)

	// Create output directory for this scene
	name := selectedScene.Name
	if name == "" {
		name = "scene"
	}
	outputDir := filepath.Join("output", name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("trace_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Trace saved as %s\n", filename)
}
