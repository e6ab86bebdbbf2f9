package renderer

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

// Printf writes a formatted message to stdout
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{}
}

// Size of each square render tile
const tileSize = 64

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels  int
	TotalSamples int
	Workers      int
	Elapsed      time.Duration
}

// tileTask is one disjoint region of the image plus its RNG seed
type tileTask struct {
	index  int
	bounds image.Rectangle
}

// Render renders the full image using a pool of workers over disjoint tiles.
// Each tile gets its own deterministic random stream derived from the base
// seed and the tile index, so the output is identical regardless of worker
// count or scheduling order.
//
// progress, if non-nil, is called from worker goroutines with the number of
// newly completed pixels; it must be safe for concurrent use.
func (rt *Raytracer) Render(ctx context.Context, progress func(completedPixels int)) (*image.RGBA, RenderStats, error) {
	start := time.Now()

	numWorkers := rt.numWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	tiles := rt.makeTiles()

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, %d tiles on %d workers\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, len(tiles), numWorkers)

	tasks := make(chan tileTask, len(tiles))
	for _, task := range tiles {
		tasks <- task
	}
	close(tasks)

	sampleCounts := make([]int, len(tiles))

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for task := range tasks {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				random := rand.New(rand.NewSource(rt.tileSeed(task.index)))
				sampleCounts[task.index] = rt.renderBounds(task.bounds, img, random)

				if progress != nil {
					progress(task.bounds.Dx() * task.bounds.Dy())
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	totalSamples := 0
	for _, n := range sampleCounts {
		totalSamples += n
	}

	stats := RenderStats{
		TotalPixels:  rt.width * rt.height,
		TotalSamples: totalSamples,
		Workers:      numWorkers,
		Elapsed:      time.Since(start),
	}
	return img, stats, nil
}

// makeTiles partitions the image into disjoint tiles in row-major order
func (rt *Raytracer) makeTiles() []tileTask {
	var tiles []tileTask
	index := 0
	for y := 0; y < rt.height; y += tileSize {
		for x := 0; x < rt.width; x += tileSize {
			tiles = append(tiles, tileTask{
				index:  index,
				bounds: image.Rect(x, y, min(x+tileSize, rt.width), min(y+tileSize, rt.height)),
			})
			index++
		}
	}
	return tiles
}

// tileSeed derives an independent stream seed for a tile. The splitmix-style
// scramble keeps adjacent tiles' streams uncorrelated.
func (rt *Raytracer) tileSeed(tileIndex int) int64 {
	seed := uint64(rt.seed) + uint64(tileIndex)*0x9E3779B97F4A7C15
	seed ^= seed >> 30
	seed *= 0xBF58476D1CE4E5B9
	seed ^= seed >> 27
	return int64(seed & 0x7FFFFFFFFFFFFFFF)
}
