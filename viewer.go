package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golgrid/go-life/model"
	"github.com/golgrid/go-life/utils"
)

const viewerTPS = 60

var (
	cellColor       = color.RGBA{R: 0x66, G: 0xcc, B: 0x99, A: 0xff}
	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
)

// Viewer animates a run in a window, advancing one generation per frame
// interval. It holds only the latest grid; each retired generation goes
// back to the pool.
type Viewer struct {
	config     utils.Config
	grid       *model.Grid
	pool       *model.GridPool
	generation int
	paused     bool

	tick      int
	stepEvery int // ticks between generations
}

// NewViewer seeds the starting board and sizes the animation to the
// configured frame rate.
func NewViewer(config utils.Config) *Viewer {
	stepEvery := int(config.FrameRate.Seconds() * viewerTPS)
	if stepEvery < 1 {
		stepEvery = 1
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &Viewer{
		config:    config,
		grid:      model.StartingBoard(config, newRNG(config)),
		pool:      pool,
		stepEvery: stepEvery,
	}
}

// Update is called each tick by Ebitengine
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if v.paused {
		return nil
	}

	v.tick++
	if v.tick%v.stepEvery != 0 {
		return nil
	}

	next := v.grid.NextGeneration(v.config, v.pool)
	model.GridToPool(v.grid, v.pool)
	v.grid = next
	v.generation++

	return nil
}

// Draw is called each frame by Ebitengine
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	size := float32(v.config.CellSize)
	for y := range v.grid.GetHeight() {
		for x := range v.grid.GetWidth() {
			if v.grid.Get(x, y) {
				vector.DrawFilledRect(screen,
					float32(x)*size, float32(y)*size, size-1, size-1,
					cellColor, false)
			}
		}
	}
}

// Layout reports the logical screen size: one cell-sized square per grid cell.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.config.Width * v.config.CellSize, v.config.Height * v.config.CellSize
}

// runViewer opens the window and hands the loop to Ebitengine.
func runViewer(config utils.Config) {
	v := NewViewer(config)

	ebiten.SetWindowSize(config.Width*config.CellSize, config.Height*config.CellSize)
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(viewerTPS)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
