package model

import (
	"math/rand"
	"testing"

	"github.com/golgrid/go-life/rules"
	"github.com/golgrid/go-life/utils"
)

func stepConfigs() map[string]utils.Config {
	bounded := utils.DefaultConfig()
	bounded.UseBoundedGrid = true
	parallel := utils.DefaultConfig()
	parallel.UseBoundedGrid = false
	return map[string]utils.Config{
		"bounded":  bounded,
		"parallel": parallel,
	}
}

// ---- still lifes ----

func TestBlockIsStill(t *testing.T) {
	for name, config := range stepConfigs() {
		t.Run(name, func(t *testing.T) {
			g := Block()
			for range 5 {
				g = g.NextGeneration(config, nil)
				assertBoardsEqual(t, Block(), g)
			}
		})
	}
}

func TestBeehiveIsStill(t *testing.T) {
	for name, config := range stepConfigs() {
		t.Run(name, func(t *testing.T) {
			assertBoardsEqual(t, Beehive(), Beehive().NextGeneration(config, nil))
		})
	}
}

// ---- oscillators ----

func TestBlinkerPeriodTwo(t *testing.T) {
	for name, config := range stepConfigs() {
		t.Run(name, func(t *testing.T) {
			// The vertical bar flips to a horizontal one, then back.
			horizontal := parseBoard(t,
				".....",
				".....",
				".ooo.",
				".....",
				".....",
			)

			once := Blinker().NextGeneration(config, nil)
			assertBoardsEqual(t, horizontal, once)

			twice := once.NextGeneration(config, nil)
			assertBoardsEqual(t, Blinker(), twice)
		})
	}
}

func TestToadPeriodTwo(t *testing.T) {
	for name, config := range stepConfigs() {
		t.Run(name, func(t *testing.T) {
			g := Toad()
			g = g.NextGeneration(config, nil)
			g = g.NextGeneration(config, nil)
			assertBoardsEqual(t, Toad(), g)
		})
	}
}

func TestBeaconPeriodTwo(t *testing.T) {
	config := utils.DefaultConfig()
	g := Beacon().NextGeneration(config, nil).NextGeneration(config, nil)
	assertBoardsEqual(t, Beacon(), g)
}

func TestPulsarPeriodThree(t *testing.T) {
	config := utils.DefaultConfig()
	g := Pulsar()
	for range 3 {
		g = g.NextGeneration(config, nil)
	}
	assertBoardsEqual(t, Pulsar(), g)
}

// ---- step semantics ----

func TestNextGenerationDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := RandomGrid(20, 13, 0.4, rng)

	config := utils.DefaultConfig()
	assertBoardsEqual(t, g.NextGeneration(config, nil), g.NextGeneration(config, nil))
}

func TestBoundedMatchesParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := RandomGrid(31, 17, 0.3, rng)

	assertBoardsEqual(t, g.NextGenerationParallel(nil), g.NextGenerationBounded(nil))
}

func TestNextGenerationDoesNotMutateInput(t *testing.T) {
	g := Blinker()
	snapshot := Blinker()

	g.NextGeneration(utils.DefaultConfig(), nil)
	assertBoardsEqual(t, snapshot, g)
}

// sequentialSweep is a deliberately wrong reference: it updates the board
// in place, top-left to bottom-right, so early results feed later cells.
func sequentialSweep(g *Grid) *Grid {
	out := NewGrid(g.width, g.height)
	for y := range g.height {
		copy(out.cells[y], g.cells[y])
	}
	for y := range out.height {
		for x := range out.width {
			out.cells[y][x] = rules.ApplyConwayRules(out.CountNeighbors(x, y), out.cells[y][x])
		}
	}
	return out
}

func TestUpdateIsSimultaneous(t *testing.T) {
	// A horizontal blinker in a 3x3 field: the synchronous update yields
	// the vertical blinker, while an in-place sweep births (2,0) from the
	// freshly updated (1,0) and diverges.
	start := parseBoard(t,
		"...",
		"ooo",
		"...",
	)
	wantSync := parseBoard(t,
		".o.",
		".o.",
		".o.",
	)

	sweep := sequentialSweep(start)
	if sweep.Equal(wantSync) {
		t.Fatal("test board does not distinguish sequential from synchronous updates")
	}

	for name, config := range stepConfigs() {
		t.Run(name, func(t *testing.T) {
			got := start.NextGeneration(config, nil)
			assertBoardsEqual(t, wantSync, got)
			if got.Equal(sweep) {
				t.Fatal("engine produced the sequential-sweep board")
			}
		})
	}
}

// ---- degenerate boards ----

func TestOneByOneGrid(t *testing.T) {
	config := utils.DefaultConfig()

	alive, err := NewGridFromCells(1, 1, [][]bool{{true}})
	if err != nil {
		t.Fatal(err)
	}
	if next := alive.NextGeneration(config, nil); next.Get(0, 0) {
		t.Fatal("lone living cell must die of underpopulation")
	}

	dead := NewGrid(1, 1)
	if next := dead.NextGeneration(config, nil); next.Get(0, 0) {
		t.Fatal("lone dead cell must stay dead")
	}
}

func TestAllAliveGrid(t *testing.T) {
	g := parseBoard(t,
		"ooo",
		"ooo",
		"ooo",
	)
	// Only the corners (3 neighbors) survive; everything else is overcrowded.
	want := parseBoard(t,
		"o.o",
		"...",
		"o.o",
	)
	assertBoardsEqual(t, want, g.NextGeneration(utils.DefaultConfig(), nil))
}

// ---- multi-step driver ----

func TestEvolveYieldsAllGenerations(t *testing.T) {
	config := utils.DefaultConfig()

	gens := Evolve(Toad(), 4, config)
	if len(gens) != 5 {
		t.Fatalf("got %d generations, want 5", len(gens))
	}
	assertBoardsEqual(t, Toad(), gens[0])
	assertBoardsEqual(t, gens[0], gens[2])
	assertBoardsEqual(t, gens[1], gens[3])
	if gens[0].Equal(gens[1]) {
		t.Fatal("toad should change between generations")
	}
}

func TestEvolveZeroSteps(t *testing.T) {
	start := Block()
	gens := Evolve(start, 0, utils.DefaultConfig())
	if len(gens) != 1 {
		t.Fatalf("got %d generations, want 1", len(gens))
	}
	if gens[0] != start {
		t.Fatal("generation 0 must be the input grid itself")
	}
}

func TestGenerationsIsLazyAndRestartable(t *testing.T) {
	config := utils.DefaultConfig()
	seq := Generations(Blinker(), 3, config)

	collect := func() []*Grid {
		var out []*Grid
		for i, g := range seq {
			if i != len(out) {
				t.Fatalf("generation numbering off: got %d at position %d", i, len(out))
			}
			out = append(out, g)
		}
		return out
	}

	first := collect()
	second := collect()
	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("got %d and %d generations, want 4", len(first), len(second))
	}
	for i := range first {
		assertBoardsEqual(t, first[i], second[i])
	}

	// Early break stops the computation without running to n.
	for i := range Generations(Blinker(), 1000, config) {
		if i == 2 {
			break
		}
	}
}
