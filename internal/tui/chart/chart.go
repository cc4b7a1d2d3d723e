// Package chart draws small categorical bar charts for the terminal.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Data is one series of categorical values. Labels, Values and Colors
// are parallel; extra entries in any slice are ignored.
type Data struct {
	Title  string
	Labels []string
	Values []int
	Colors []string // Color names (green, red, gray) or hex codes
}

// Len returns the number of complete categories in d.
func (d Data) Len() int {
	n := len(d.Labels)
	if len(d.Values) < n {
		n = len(d.Values)
	}
	return n
}

// Renderer draws a Data series into at most width terminal columns.
type Renderer interface {
	Render(d Data, width int) string
}

// palette maps color names onto terminal colors.
var palette = map[string]lipgloss.Color{
	"green": lipgloss.Color("#2ecc71"),
	"red":   lipgloss.Color("#e74c3c"),
	"gray":  lipgloss.Color("#95a5a6"),
}

// ColorFor resolves a color name to a terminal color. Unknown names are
// passed through, so hex codes and ANSI numbers work too.
func ColorFor(name string) lipgloss.Color {
	if c, ok := palette[strings.ToLower(name)]; ok {
		return c
	}
	return lipgloss.Color(name)
}

// HBar renders one horizontal bar per category.
type HBar struct {
	Glyph string
}

// NewHBar creates a horizontal bar renderer using full blocks.
func NewHBar() HBar {
	return HBar{Glyph: "█"}
}

// Render draws the chart.
func (h HBar) Render(d Data, width int) string {
	n := d.Len()
	if n == 0 {
		return ""
	}

	glyph := h.Glyph
	if glyph == "" {
		glyph = "█"
	}

	labelWidth := 0
	valueWidth := 0
	for i := 0; i < n; i++ {
		if w := runewidth.StringWidth(d.Labels[i]); w > labelWidth {
			labelWidth = w
		}
		if w := len(fmt.Sprint(d.Values[i])); w > valueWidth {
			valueWidth = w
		}
	}

	// label, space, bar, space, value
	barSpace := width - labelWidth - valueWidth - 2
	if barSpace < 1 {
		barSpace = 1
	}
	lengths := BarLengths(d.Values[:n], barSpace)

	var lines []string
	if d.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(d.Title))
	}
	for i := 0; i < n; i++ {
		style := lipgloss.NewStyle()
		if i < len(d.Colors) {
			style = style.Foreground(ColorFor(d.Colors[i]))
		}
		bar := strings.Repeat(glyph, lengths[i])
		pad := strings.Repeat(" ", barSpace-lengths[i])
		lines = append(lines, fmt.Sprintf("%s %s%s %*d",
			runewidth.FillRight(d.Labels[i], labelWidth),
			style.Render(bar),
			pad,
			valueWidth,
			d.Values[i],
		))
	}

	return strings.Join(lines, "\n")
}

// BarLengths scales values so the largest fills maxLen cells. Any
// positive value gets at least one cell; zero and negative values get none.
func BarLengths(values []int, maxLen int) []int {
	lengths := make([]int, len(values))
	if maxLen <= 0 {
		return lengths
	}

	peak := 0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return lengths
	}

	for i, v := range values {
		if v <= 0 {
			continue
		}
		l := (v*maxLen + peak/2) / peak
		if l < 1 {
			l = 1
		}
		lengths[i] = l
	}
	return lengths
}
