package tui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/brandwatch/internal/brand"
	"github.com/f3rmion/brandwatch/internal/clipboard"
	"github.com/f3rmion/brandwatch/internal/config"
	"github.com/f3rmion/brandwatch/internal/source"
	"github.com/f3rmion/brandwatch/internal/tui/chart"
	"github.com/f3rmion/brandwatch/internal/tui/views"
)

// Title is the static page heading.
const Title = "Brand Monitoring Tool"

// minBannerWidth is the narrowest window that gets the block-art brand name.
const minBannerWidth = 70

// searchDueMsg fires when the artificial delay of a search has elapsed.
type searchDueMsg struct {
	seq   uint64
	brand string
}

// resultMsg carries the outcome of a fetch.
type resultMsg struct {
	seq    uint64
	result brand.Result
	err    error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// AppModel is the brandwatch page. It owns the current result and is
// the only writer of it.
type AppModel struct {
	// Core dependencies
	fetcher        source.Fetcher
	delay          time.Duration
	writeClipboard func(string) error
	canCopy        bool

	// Lifetime of in-flight fetches
	ctx    context.Context
	cancel context.CancelFunc

	// Sub-models
	search  views.SearchModel
	results views.ResultsView
	spinner spinner.Model

	// Page state
	result  *brand.Result
	seq     uint64
	pending string
	err     error
	copied  bool

	width  int
	height int
}

// NewApp creates the page backed by fetcher. A nil cfg uses the defaults.
func NewApp(fetcher source.Fetcher, cfg *config.Config) AppModel {
	if cfg == nil {
		cfg = config.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = LoadingStyle

	ctx, cancel := context.WithCancel(context.Background())

	return AppModel{
		fetcher:        fetcher,
		delay:          cfg.Delay,
		writeClipboard: clipboard.Write,
		canCopy:        clipboard.Available(),
		ctx:            ctx,
		cancel:         cancel,
		search:         views.NewSearchModel(),
		results:        views.NewResultsView(chart.NewHBar()),
		spinner:        sp,
	}
}

// Result returns the currently displayed result, or nil.
func (m AppModel) Result() *brand.Result {
	return m.result
}

// Init initializes the model.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// HandleSearch starts a search for brandName. After the configured
// delay the fetcher is consulted and its answer replaces the current
// result. Only the most recent search is ever applied.
func (m *AppModel) HandleSearch(brandName string) tea.Cmd {
	m.seq++
	seq := m.seq
	log.Printf("searching for %q (request %d)", brandName, seq)

	wasIdle := m.pending == ""
	m.pending = brandName

	due := tea.Tick(m.delay, func(time.Time) tea.Msg {
		return searchDueMsg{seq: seq, brand: brandName}
	})
	if wasIdle {
		return tea.Batch(due, m.spinner.Tick)
	}
	return due
}

// Shutdown cancels in-flight fetches.
func (m AppModel) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Shutdown()
			return m, tea.Quit
		case "ctrl+y":
			if m.result == nil || !m.canCopy {
				return m, nil
			}
			if err := m.writeClipboard(m.result.Summary()); err != nil {
				log.Printf("copying result: %v", err)
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := m.width - 4
		m.search.SetWidth(contentWidth)
		m.results.SetWidth(contentWidth)
		m.results.SetBanner(contentWidth >= minBannerWidth)
		return m, nil

	case views.SearchSubmittedMsg:
		return m, m.HandleSearch(msg.Brand)

	case searchDueMsg:
		if msg.seq != m.seq {
			log.Printf("dropping superseded request %d for %q", msg.seq, msg.brand)
			return m, nil
		}
		return m, m.fetch(msg.seq, msg.brand)

	case resultMsg:
		if msg.seq != m.seq {
			log.Printf("dropping stale result for request %d", msg.seq)
			return m, nil
		}
		m.pending = ""
		if msg.err != nil {
			log.Printf("search failed: %v", msg.err)
			m.err = msg.err
			return m, nil
		}
		r := msg.result
		m.result = &r
		m.err = nil
		m.copied = false
		return m, nil

	case spinner.TickMsg:
		if m.pending == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// fetch asks the fetcher for brandName in the background.
func (m AppModel) fetch(seq uint64, brandName string) tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		r, err := fetcher.Fetch(ctx, brandName)
		return resultMsg{seq: seq, result: r, err: err}
	}
}

// View renders the UI.
func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(Title))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	switch {
	case m.pending != "":
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(LoadingStyle.Render("Searching for " + m.pending + "..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if out := m.results.Render(m.result); out != "" {
		b.WriteString(out)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	content := b.String()
	if m.width > 0 {
		return ContentStyle.Width(m.width).Render(content)
	}
	return ContentStyle.Render(content)
}

func (m AppModel) renderHelp() string {
	parts := []string{"enter: search"}
	if m.result != nil && m.canCopy {
		parts = append(parts, "ctrl+y: copy")
	}
	parts = append(parts, "esc: quit")

	help := HelpStyle.Render(strings.Join(parts, " • "))
	if m.copied {
		help = lipgloss.JoinHorizontal(lipgloss.Top, help, "  ", CopiedStyle.Render("Copied!"))
	}
	return help
}
