package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/golgrid/go-life/model"
	"github.com/golgrid/go-life/utils"
)

// newRNG builds the random source for board seeding. A zero configured
// seed means "seed from the clock"; anything else reproduces the same run.
func newRNG(config utils.Config) *rand.Rand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (
	*model.Grid,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid := model.StartingBoard(config, rng)
	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return grid, pool, renderer, stats
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Features: Memory Pool: %v, Bounded: %v\n",
		config.UseMemoryPool, config.UseBoundedGrid)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *utils.History,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Check for stagnation against recent generations, then record this one
	hash := grid.Hash()
	isStagnant := history.Stagnant(hash)
	history.Push(hash)

	// Display status
	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	grid *model.Grid,
	stats *utils.Stats,
	lastRestartGen int,
) {
	boundingInfo := ""
	if minX, minY, maxX, maxY, ok := grid.ActiveBounds(); ok {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", (maxX-minX+1)*(maxY-minY+1))
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, livingCells, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame handles the game restart logic
func restartGame(config utils.Config, rng *rand.Rand) *model.Grid {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	grid := model.StartingBoard(config, rng)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", grid.CountLivingCells())
	time.Sleep(2 * time.Second)

	return grid
}

var spark = model.Glider()

// injectLife stamps a few gliders at random positions to break stagnation.
func injectLife(grid *model.Grid, rng *rand.Rand, count int) *model.Grid {
	for range count {
		grid = model.Stamp(grid, spark, rng.Intn(grid.GetWidth()), rng.Intn(grid.GetHeight()))
	}
	return grid
}
