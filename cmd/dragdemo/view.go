// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"draghelper.org/gesture"
)

var (
	canvasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	phaseStyles = map[gesture.Phase]lipgloss.Style{
		gesture.Idle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		gesture.Tracking: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		gesture.Dragging: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		gesture.Settling: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	}
)

type frameRunes struct {
	h, v, tl, tr, bl, br rune
}

var (
	handleFrame  = frameRunes{'━', '┃', '┏', '┓', '┗', '┛'}
	passiveFrame = frameRunes{'─', '│', '┌', '┐', '└', '┘'}
)

func (m *model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "sizing…"
	}
	grid := make([][]rune, m.height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", m.width))
	}
	for _, b := range m.host.boxes {
		drawBox(grid, b)
	}
	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		canvasStyle.Render(strings.Join(lines, "\n")),
		m.status(),
	)
}

func (m *model) status() string {
	phase := m.drag.Phase()
	rng := m.drag.Range()
	enabled := "on"
	if !m.drag.Enabled() {
		enabled = "off"
	}
	return statusStyle.Render(fmt.Sprintf("%s  range %gx%g  limit %g  intercept %s  [space] reset  [e] toggle  [q] quit",
		phaseStyles[phase].Render(phase.String()), rng.X, rng.Y, m.drag.DragLimit(), enabled))
}

func drawBox(grid [][]rune, b *box) {
	fr := passiveFrame
	if b.handle {
		fr = handleFrame
	}
	x0, y0 := round(b.rect.Min.X), round(b.rect.Min.Y)
	x1, y1 := round(b.rect.Max.X)-1, round(b.rect.Max.Y)-1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			var r rune
			switch {
			case y == y0 && x == x0:
				r = fr.tl
			case y == y0 && x == x1:
				r = fr.tr
			case y == y1 && x == x0:
				r = fr.bl
			case y == y1 && x == x1:
				r = fr.br
			case y == y0 || y == y1:
				r = fr.h
			case x == x0 || x == x1:
				r = fr.v
			default:
				r = ' '
			}
			set(grid, x, y, r)
		}
	}
	label := []rune(b.label)
	ly := (y0 + y1) / 2
	lx := x0 + (x1-x0+1-len(label))/2
	for i, r := range label {
		if x := lx + i; x > x0 && x < x1 {
			set(grid, x, ly, r)
		}
	}
}

func set(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
