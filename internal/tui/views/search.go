// Package views provides the building blocks of the brandwatch page.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffe66d")).
			Padding(0, 1)

	searchButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color("#007bff")).
				Padding(0, 2).
				MarginLeft(1)
)

// SearchSubmittedMsg is emitted when the user submits a non-empty brand name.
type SearchSubmittedMsg struct {
	Brand string
}

// SearchModel is a single-line brand search field.
type SearchModel struct {
	input textinput.Model
}

// NewSearchModel creates a focused, empty search field.
func NewSearchModel() SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Enter brand name..."
	ti.Focus()
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return SearchModel{input: ti}
}

// SetWidth updates the visible width of the field.
func (m *SearchModel) SetWidth(width int) {
	// border, padding, prompt and button
	w := width - 20
	if w < 10 {
		w = 10
	}
	m.input.Width = w
}

// Value returns the current field contents, untrimmed.
func (m SearchModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the field contents.
func (m *SearchModel) SetValue(s string) {
	m.input.SetValue(s)
}

// Submit validates the field and returns a command that emits
// SearchSubmittedMsg with the trimmed value. Blank input yields nil.
// The field keeps its text either way.
func (m SearchModel) Submit() tea.Cmd {
	brandName := strings.TrimSpace(m.input.Value())
	if brandName == "" {
		return nil
	}
	return func() tea.Msg {
		return SearchSubmittedMsg{Brand: brandName}
	}
}

// Update handles messages.
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		return m, m.Submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the search field and its button.
func (m SearchModel) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		searchBoxStyle.Render(m.input.View()),
		searchButtonStyle.Render("Search"),
	)
}
