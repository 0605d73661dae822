package model

import (
	"iter"

	"github.com/golgrid/go-life/utils"
)

// Evolve advances start by n generations and returns all n+1 boards,
// starting with start itself as generation 0. Every element is an
// independent grid, so no pool is involved here.
func Evolve(start *Grid, n int, config utils.Config) []*Grid {
	generations := make([]*Grid, 0, n+1)
	generations = append(generations, start)

	current := start
	for range n {
		current = current.NextGeneration(config, nil)
		generations = append(generations, current)
	}
	return generations
}

// Generations yields (generation number, grid) pairs from start through
// generation n, computing each board lazily. Ranging over the sequence
// again restarts it from start; advancing is deterministic, so both passes
// see identical boards.
func Generations(start *Grid, n int, config utils.Config) iter.Seq2[int, *Grid] {
	return func(yield func(int, *Grid) bool) {
		current := start
		for i := 0; i <= n; i++ {
			if !yield(i, current) {
				return
			}
			if i < n {
				current = current.NextGeneration(config, nil)
			}
		}
	}
}
