// Package graph renders rate histories as fixed-size character grids for the
// terminal dashboard.
package graph

import (
	"math"

	"github.com/irctrakz/netwatch/pkg/core"
)

// Glyphs for the two directions. A cell both bars reach shows the overlap
// glyph so the series stay distinguishable in a single grid.
const (
	GlyphSent    = '█'
	GlyphRecv    = '░'
	GlyphOverlap = '▓'
	GlyphBlank   = ' '
)

const (
	// DefaultWidth is the graph width in columns, one sample per column.
	DefaultWidth = 60

	// DefaultHeight is the graph height in rows.
	DefaultHeight = 6
)

// Renderer scales a rate history onto a character grid of fixed dimensions.
type Renderer struct {
	width  int
	height int
}

// New returns a renderer for the given grid size. Non-positive dimensions fall
// back to the defaults.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{width: width, height: height}
}

// Width returns the grid width in columns.
func (r *Renderer) Width() int { return r.width }

// Height returns the grid height in rows.
func (r *Renderer) Height() int { return r.height }

// Render materializes the full grid for one redraw: Height rows of exactly
// Width runes each, top row first. Histories longer than the width show only
// the most recent Width samples (a right-aligned sliding window, never a
// squeeze of all history); shorter histories are left-padded with blank
// columns rather than stretched. An empty or all-zero history renders a blank
// grid of the requested size.
func (r *Renderer) Render(samples []core.RateSample) []string {
	window := r.clip(samples)
	max := seriesMax(window)
	pad := r.width - len(window)

	grid := make([][]rune, r.height)
	for y := range grid {
		grid[y] = make([]rune, r.width)
		for x := range grid[y] {
			grid[y][x] = GlyphBlank
		}
	}
	for i, s := range window {
		x := pad + i
		sent := barHeight(s.SentPerSec, max, r.height)
		recv := barHeight(s.RecvPerSec, max, r.height)
		for y := 0; y < r.height; y++ {
			// Rows are drawn top-down; row y covers level height-y.
			level := r.height - y
			inSent := sent >= level
			inRecv := recv >= level
			switch {
			case inSent && inRecv:
				grid[y][x] = GlyphOverlap
			case inSent:
				grid[y][x] = GlyphSent
			case inRecv:
				grid[y][x] = GlyphRecv
			}
		}
	}

	rows := make([]string, r.height)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return rows
}

// Max returns the peak rate of either direction over the visible window, for
// scale captions next to the graph.
func (r *Renderer) Max(samples []core.RateSample) float64 {
	return seriesMax(r.clip(samples))
}

func (r *Renderer) clip(samples []core.RateSample) []core.RateSample {
	if len(samples) > r.width {
		return samples[len(samples)-r.width:]
	}
	return samples
}

// barHeight maps a value onto [0, height] rows. A zero max yields an empty
// baseline instead of dividing by zero.
func barHeight(v, max float64, height int) int {
	if max <= 0 || v <= 0 {
		return 0
	}
	h := int(math.Round(v / max * float64(height)))
	if h > height {
		h = height
	}
	return h
}

func seriesMax(samples []core.RateSample) float64 {
	var max float64
	for _, s := range samples {
		if s.SentPerSec > max {
			max = s.SentPerSec
		}
		if s.RecvPerSec > max {
			max = s.RecvPerSec
		}
	}
	return max
}
