package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/brandwatch/internal/brand"
	"github.com/f3rmion/brandwatch/internal/tui/banner"
	"github.com/f3rmion/brandwatch/internal/tui/chart"
	"github.com/mattn/go-runewidth"
)

const (
	defaultResultsWidth = 60
	bannerRows          = 4
)

var (
	resultsHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#4ecdc4"))

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d"))

	readoutLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc")).
				Bold(true)

	readoutValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	resultsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2).
			MarginTop(1)
)

// ResultsView renders a sentiment result as readouts and a bar chart.
type ResultsView struct {
	chart      chart.Renderer
	width      int
	showBanner bool
}

// NewResultsView creates a results view drawing charts with renderer.
func NewResultsView(renderer chart.Renderer) ResultsView {
	return ResultsView{
		chart: renderer,
		width: defaultResultsWidth,
	}
}

// SetWidth updates the available width.
func (v *ResultsView) SetWidth(width int) {
	v.width = width
}

// SetBanner toggles the large block-art brand name above the heading.
func (v *ResultsView) SetBanner(on bool) {
	v.showBanner = on
}

// ChartData maps a result onto the three sentiment bars in display order.
func ChartData(r brand.Result) chart.Data {
	d := chart.Data{Title: "Sentiment"}
	for _, s := range brand.Sentiments {
		d.Labels = append(d.Labels, string(s))
		d.Values = append(d.Values, r.Count(s))
		d.Colors = append(d.Colors, s.Color())
	}
	return d
}

// Render draws r. A nil result renders nothing.
func (v ResultsView) Render(r *brand.Result) string {
	if r == nil {
		return ""
	}

	width := v.width
	if width <= 0 {
		width = defaultResultsWidth
	}
	// border and padding of the box
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	if v.showBanner {
		if art := banner.Cached(r.Brand, inner, bannerRows); art != "" {
			b.WriteString(bannerStyle.Render(art))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(resultsHeadingStyle.Render("Results for: " + r.Brand))
	b.WriteString("\n\n")
	b.WriteString(renderReadouts(r))
	b.WriteString("\n")

	if v.chart != nil {
		b.WriteString(v.chart.Render(ChartData(*r), inner))
	}

	return resultsBoxStyle.Render(b.String())
}

func renderReadouts(r *brand.Result) string {
	rows := [][2]string{
		{"Mentions", fmt.Sprint(r.Mentions)},
		{"Positive", fmt.Sprint(r.Positive)},
		{"Negative", fmt.Sprint(r.Negative)},
		{"Neutral", fmt.Sprint(r.Neutral)},
	}

	var b strings.Builder
	for _, row := range rows {
		label := runewidth.FillRight(row[0]+":", 10)
		b.WriteString(readoutLabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(readoutValueStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}
