package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/golgrid/go-life/rules"
	"github.com/golgrid/go-life/utils"
)

// ErrShapeMismatch is returned when a supplied board disagrees with the
// declared width/height.
var ErrShapeMismatch = errors.New("supplied cells do not match declared grid shape")

// Grid represents one generation of the board. A Grid is immutable through
// its exported API: advancing a generation always returns a new Grid.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a dead grid with the specified dimensions.
// Width and height must be positive.
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewGridFromCells adopts a caller-supplied board. The board must have
// exactly height rows of exactly width cells each, or construction fails
// with ErrShapeMismatch and no Grid is produced. The cells are copied, so
// the caller keeps ownership of its slice.
func NewGridFromCells(width, height int, cells [][]bool) (*Grid, error) {
	if len(cells) != height {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"[NewGridFromCells] got %d rows, declared height %d", len(cells), height)
	}
	g := NewGrid(width, height)
	for y, row := range cells {
		if len(row) != width {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"[NewGridFromCells] row %d has %d cells, declared width %d", y, len(row), width)
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// reset re-dimensions a recycled grid. Only the pool may call this; a grid
// is never reset while a caller still holds it.
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// clear kills all cells before a grid goes back to the pool.
func (g *Grid) clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = false
		}
	}
}

// Get returns the state of a cell. Positions outside the grid are reported
// dead: the world beyond the edge has no living cells (bounded, not
// toroidal).
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// CountNeighbors counts living cells among the up-to-8 in-bounds neighbors
// of (x, y). Column offsets are clamped by width and row offsets by height;
// out-of-bounds positions contribute nothing. The center coordinate itself
// must be in bounds.
func (g *Grid) CountNeighbors(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("model: CountNeighbors(%d, %d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}

	count := 0

	// Calculate bounds once using efficient integer min/max
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	// Count neighbors in the bounded region
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// ActiveBounds returns the bounding box of living cells as
// (minX, minY, maxX, maxY). ok is false for an all-dead grid.
func (g *Grid) ActiveBounds() (minX, minY, maxX, maxY int, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !ok {
				minX, maxX, minY, maxY = x, x, y, y
				ok = true
			} else {
				minX = min(minX, x)
				maxX = max(maxX, x)
				minY = min(minY, y)
				maxY = max(maxY, y)
			}
		}
	}
	return minX, minY, maxX, maxY, ok
}

// NextGenerationParallel computes the next generation, splitting rows
// across workers. Every cell of the result is evaluated against the
// receiver only, so the update is synchronous: no cell sees an
// already-updated neighbor.
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := nextGrid(g, pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					if rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x]) {
						next.cells[y][x] = true
					}
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait is just the join point.
	_ = eg.Wait()

	return next
}

// NextGenerationBounded computes the next generation scanning only the
// active region plus a one-cell margin. Cells further out have no living
// neighbors and stay dead, so the result is identical to a full scan.
func (g *Grid) NextGenerationBounded(pool *GridPool) *Grid {
	next := nextGrid(g, pool)

	bMinX, bMinY, bMaxX, bMaxY, ok := g.ActiveBounds()
	if !ok {
		// No active cells, next generation is dead too
		return next
	}

	minX := max(0, bMinX-1)
	maxX := min(g.width-1, bMaxX+1)
	minY := max(0, bMinY-1)
	maxY := min(g.height-1, bMaxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x]) {
				next.cells[y][x] = true
			}
		}
	}

	return next
}

// NextGeneration computes the next generation using the strategy selected
// by config. Both strategies produce the same board.
func (g *Grid) NextGeneration(config utils.Config, pool *GridPool) *Grid {
	if config.UseBoundedGrid {
		return g.NextGenerationBounded(pool)
	}
	return g.NextGenerationParallel(pool)
}

// nextGrid allocates (or recycles) a dead grid matching g's dimensions.
func nextGrid(g *Grid, pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the grid state, used for cycle detection.
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
