package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Print(r.Render(g))
}

// Render returns the grid drawn as a block-glyph string, one line per row.
func (r *TerminalRenderer) Render(g *Grid) string {
	var sb strings.Builder
	for y := range g.height {
		for x := range g.width {
			if g.Get(x, y) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderStrip draws a sequence of same-sized grids side by side, one
// column of boards per call, so a short evolution can be read left to
// right on a single screen.
func (r *TerminalRenderer) RenderStrip(grids []*Grid) string {
	if len(grids) == 0 {
		return ""
	}

	var sb strings.Builder
	height := grids[0].height
	for y := range height {
		for i, g := range grids {
			if i > 0 {
				sb.WriteString("   ")
			}
			for x := range g.width {
				if g.Get(x, y) {
					sb.WriteString(gridPosBlock)
				} else {
					sb.WriteString(gridPosEmpty)
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
