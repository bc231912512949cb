package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/sync/errgroup"

	"texca/internal/app"
	"texca/internal/sims/texture"
	"texca/pkg/grid"
)

type result struct {
	seed int64
	path string
	mean [3]float64
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 120, "ticks to simulate per seed")
	seeds := flag.Int("seeds", 1, "number of consecutive seeds to render, starting at -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel worlds")
	scale := flag.Int("scale", 4, "output pixels per cell")
	out := flag.String("out", ".", "directory for PNG snapshots")
	flag.Parse()

	sim, model, err := cfg.Train()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	results := make([]result, max(*seeds, 1))
	var g errgroup.Group
	g.SetLimit(max(*workers, 1))
	for i := range results {
		i := i
		g.Go(func() error {
			seed := sim.Seed + int64(i)
			world, err := texture.New(sim, model)
			if err != nil {
				return err
			}
			world.Reset(seed)
			for s := 0; s < *steps; s++ {
				world.Step()
			}
			path := filepath.Join(*out, fmt.Sprintf("texca-%d.png", seed))
			if err := save(path, world.Current(), *scale); err != nil {
				return err
			}
			results[i] = result{seed: seed, path: path, mean: meanColor(world.Current())}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Rendered %d seeds after %d steps (%d patterns, sharpness %.4f)\n",
		len(results), *steps, model.Patterns, model.Kernel.Sharpness)
	for _, r := range results {
		fmt.Printf("seed=%d mean=(%.1f, %.1f, %.1f) -> %s\n", r.seed, r.mean[0], r.mean[1], r.mean[2], r.path)
	}
}

func save(path string, g *grid.Grid, scale int) error {
	img := g.Image()
	if scale > 1 {
		img = transform.Resize(img, g.W*scale, g.H*scale, transform.NearestNeighbor)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func meanColor(g *grid.Grid) [3]float64 {
	var sum [3]float64
	cells := g.Cells()
	for i := 0; i < len(cells); i += 3 {
		sum[0] += float64(cells[i])
		sum[1] += float64(cells[i+1])
		sum[2] += float64(cells[i+2])
	}
	n := float64(len(cells) / 3)
	return [3]float64{sum[0] / n, sum[1] / n, sum[2] / n}
}
