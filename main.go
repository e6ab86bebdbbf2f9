package main

import (
	"context"
	goflag "flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/cpu"
	"github.com/spf13/cobra"

	"github.com/jerx2y/go-path-tracer/pkg/renderer"
	"github.com/jerx2y/go-path-tracer/pkg/scene"
)

var flags struct {
	sceneType string
	width     int
	samples   int
	maxDepth  int
	workers   int
	seed      int64
	outputDir string
}

var cmdRoot = &cobra.Command{
	Use:   "pathtracer",
	Short: "Offline Monte Carlo path tracer",
	Long: `Offline Monte Carlo path tracer.

Renders a built-in scene and writes the result to
<output>/<scene>/render_<timestamp>.png.

Available scenes:
  default      four-sphere scene: diffuse, mirror and glass
  motion-blur  bouncing sphere field with depth of field
  light        night scene lit by an emissive sphere`,
	SilenceUsage: true,
	RunE:         runRender,
}

// glogLogger adapts glog to the renderer's Logger interface
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

func init() {
	cmdRoot.Flags().StringVar(&flags.sceneType, "scene", "default", "Scene to render: default, motion-blur or light")
	cmdRoot.Flags().IntVar(&flags.width, "width", 400, "Image width in pixels; height follows the scene's aspect ratio")
	cmdRoot.Flags().IntVar(&flags.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	cmdRoot.Flags().IntVar(&flags.maxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	cmdRoot.Flags().IntVar(&flags.workers, "workers", 0, "Number of render workers (0 = one per logical CPU)")
	cmdRoot.Flags().Int64Var(&flags.seed, "seed", 42, "Base random seed; the same seed reproduces the image exactly")
	cmdRoot.Flags().StringVar(&flags.outputDir, "output", "output", "Output directory")

	// Pick up glog's -v/-logtostderr/... flags
	cmdRoot.Flags().AddGoFlagSet(goflag.CommandLine)
}

func runRender(cmd *cobra.Command, args []string) error {
	var selectedScene *scene.Scene
	switch flags.sceneType {
	case "default":
		selectedScene = scene.NewDefaultScene()
	case "motion-blur":
		selectedScene = scene.NewMotionBlurScene()
	case "light":
		selectedScene = scene.NewLightScene()
	default:
		return fmt.Errorf("unknown scene type %q", flags.sceneType)
	}

	logCPUInfo()

	width := flags.width
	height := int(float64(width) / selectedScene.CameraConfig.AspectRatio)

	samplingConfig := selectedScene.SamplingConfig
	if flags.samples > 0 {
		samplingConfig.SamplesPerPixel = flags.samples
	}
	if flags.maxDepth > 0 {
		samplingConfig.MaxDepth = flags.maxDepth
	}

	raytracer := renderer.NewRaytracer(selectedScene, width, height, glogLogger{})
	raytracer.SetSamplingConfig(samplingConfig)
	raytracer.SetSeed(flags.seed)
	raytracer.SetNumWorkers(defaultWorkers(flags.workers))

	bar := newProgressBar(width * height)
	img, stats, err := raytracer.Render(context.Background(), func(completedPixels int) {
		bar.Add(completedPixels)
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	bar.Finish()

	fmt.Printf("Render completed in %v (%d samples on %d workers)\n",
		stats.Elapsed.Round(time.Millisecond), stats.TotalSamples, stats.Workers)

	outputDir := filepath.Join(flags.outputDir, flags.sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		// Reported, not retried
		return fmt.Errorf("encoding PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// logCPUInfo logs a short hardware banner
func logCPUInfo() {
	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		glog.Infof("CPU: %s", cpuInfo[0].ModelName)
	}
}

// defaultWorkers resolves the worker count, preferring the logical CPU
// count reported by the OS
func defaultWorkers(requested int) int {
	if requested > 0 {
		return requested
	}
	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		return counts
	}
	return 0 // renderer falls back to runtime.NumCPU
}

// newProgressBar builds the per-pixel progress bar, hidden on CI
func newProgressBar(totalPixels int) *progressbar.ProgressBar {
	if os.Getenv("CI") == "true" {
		return progressbar.DefaultSilent(int64(totalPixels))
	}
	return progressbar.NewOptions(totalPixels,
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("px"),
	)
}

func main() {
	defer glog.Flush()
	if err := cmdRoot.Execute(); err != nil {
		glog.Errorf("%v", err)
		os.Exit(1)
	}
}
