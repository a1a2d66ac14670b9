// Package overlay draws foreground boxes over an already rendered view
// without clearing the screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	Center Position = iota
	Top
	Bottom
	// At places the top-left corner at (X, Y), clamped to the viewport.
	At
)

// Config controls overlay rendering behavior.
type Config struct {
	Width    int
	Height   int
	Position Position
	PadY     int // distance from the edge for Top and Bottom
	X, Y     int // used by At
}

// Place renders fg on top of bg. Both may carry ANSI styling; fg lines
// wider than the viewport are clipped.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, "")
	}

	fgWidth := 0
	for _, l := range fgLines {
		fgWidth = max(fgWidth, ansi.StringWidth(l))
	}
	x, y := position(cfg, fgWidth, len(fgLines))

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		if cfg.Width > 0 {
			line = ansi.Truncate(line, max(cfg.Width-x, 0), "")
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the columns of bg starting at x with fg.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	end := x + ansi.StringWidth(fg)
	var right string
	if end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}

func position(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	case At:
		x, y = cfg.X, cfg.Y
		if cfg.Width > 0 && x+fgWidth > cfg.Width {
			x = cfg.Width - fgWidth
		}
		if cfg.Height > 0 && y+fgHeight > cfg.Height {
			y = cfg.Height - fgHeight
		}
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
