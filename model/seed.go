package model

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/golgrid/go-life/utils"
)

// Perlin noise shape parameters. Low alpha keeps the clusters soft; three
// octaves is enough texture at terminal-sized boards.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 10.0
)

// RandomGrid creates a grid where each cell is independently alive with
// the given probability. The caller supplies the random source, so a
// seeded source reproduces the same board.
func RandomGrid(width, height int, density float64, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)
	for y := range height {
		for x := range width {
			g.cells[y][x] = rng.Float64() < density
		}
	}
	return g
}

// NoiseGrid creates a grid from thresholded Perlin noise. Unlike
// RandomGrid's independent draws, neighboring cells are correlated, so the
// board starts with organic-looking clusters. The same seed always
// produces the same board.
func NoiseGrid(width, height int, threshold float64, seed int64) *Grid {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	g := NewGrid(width, height)
	for y := range height {
		for x := range width {
			n := p.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale)
			g.cells[y][x] = n > threshold
		}
	}
	return g
}

// StartingBoard builds the initial board for an animation run: a random
// (or noise) fill with a few gliders and blinkers stamped in when the
// board is large enough to fit them.
func StartingBoard(config utils.Config, rng *rand.Rand) *Grid {
	var g *Grid
	if config.UseNoiseSeed {
		g = NoiseGrid(config.Width, config.Height, config.NoiseThreshold, config.Seed)
	} else {
		g = RandomGrid(config.Width, config.Height, config.RandomDensity, rng)
	}

	if config.Width >= 10 && config.Height >= 10 {
		g = Stamp(g, Glider(), 5, 5)
		if config.Width >= 20 && config.Height >= 15 {
			g = Stamp(g, Glider(), config.Width-8, 5)
		}

		g = Stamp(g, Blinker(), config.Width/4, config.Height/4)
		if config.Width >= 30 {
			g = Stamp(g, Blinker(), 3*config.Width/4, 3*config.Height/4)
		}
	}

	return g
}
