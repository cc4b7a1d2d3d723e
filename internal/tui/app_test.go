package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/brandwatch/internal/brand"
	"github.com/f3rmion/brandwatch/internal/config"
	"github.com/f3rmion/brandwatch/internal/source"
	"github.com/f3rmion/brandwatch/internal/tui/views"
)

const testDelay = 20 * time.Millisecond

func newTestApp(fetcher source.Fetcher) AppModel {
	cfg := config.Default()
	cfg.Delay = testDelay
	return NewApp(fetcher, cfg)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return am, cmd
}

// collect runs cmd and any batched commands, returning every message produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findDue(t *testing.T, cmd tea.Cmd) searchDueMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if due, ok := msg.(searchDueMsg); ok {
			return due
		}
	}
	t.Fatal("no searchDueMsg produced")
	return searchDueMsg{}
}

func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

// submit presses Enter and feeds the resulting submission back into the page.
func submit(t *testing.T, m AppModel) (AppModel, tea.Cmd) {
	t.Helper()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return m, nil
	}
	msg, ok := cmd().(views.SearchSubmittedMsg)
	if !ok {
		t.Fatalf("enter produced %T, want SearchSubmittedMsg", msg)
	}
	return update(t, m, msg)
}

type brandFetcher struct {
	err   error
	calls []string
}

func (f *brandFetcher) Fetch(ctx context.Context, brandName string) (brand.Result, error) {
	f.calls = append(f.calls, brandName)
	if f.err != nil {
		return brand.Result{}, f.err
	}
	return brand.Result{Brand: brandName, Mentions: len(brandName)}, nil
}

func TestApp_InitialView(t *testing.T) {
	m := newTestApp(source.NewDemo())

	if m.Result() != nil {
		t.Fatalf("initial result = %+v, want nil", m.Result())
	}
	view := m.View()
	if !strings.Contains(view, Title) {
		t.Errorf("view missing title:\n%s", view)
	}
	if strings.Contains(view, "Results for:") {
		t.Errorf("view shows results before any search:\n%s", view)
	}
}

func TestApp_SearchEndToEnd(t *testing.T) {
	m := newTestApp(source.NewDemo())
	m = typeText(t, m, "Zomato")

	m, cmd := submit(t, m)
	if cmd == nil {
		t.Fatal("no command after submitting")
	}
	if !strings.Contains(m.View(), "Searching for Zomato") {
		t.Errorf("view missing loading line:\n%s", m.View())
	}
	if m.Result() != nil {
		t.Fatal("result set before the delay elapsed")
	}

	start := time.Now()
	due := findDue(t, cmd)
	if elapsed := time.Since(start); elapsed < testDelay {
		t.Errorf("delay fired after %s, want >= %s", elapsed, testDelay)
	}

	m, fetch := update(t, m, due)
	if fetch == nil {
		t.Fatal("no fetch command after delay")
	}
	m, _ = update(t, m, fetch())

	want := brand.Result{Brand: "Zomato", Mentions: 130, Positive: 75, Negative: 30, Neutral: 25}
	if got := m.Result(); got == nil || *got != want {
		t.Fatalf("result = %+v, want %+v", got, want)
	}

	view := m.View()
	if !strings.Contains(view, "Results for: Zomato") {
		t.Errorf("view missing results heading:\n%s", view)
	}
	if strings.Contains(view, "Searching for") {
		t.Errorf("view still loading:\n%s", view)
	}
}

func TestApp_BlankSearchIgnored(t *testing.T) {
	f := &brandFetcher{}
	m := newTestApp(f)
	m = typeText(t, m, "   ")

	m, cmd := submit(t, m)
	if cmd != nil {
		t.Errorf("blank search produced a command")
	}
	if m.seq != 0 {
		t.Errorf("seq = %d, want 0", m.seq)
	}
}

func TestApp_LatestSearchWins(t *testing.T) {
	type tc struct {
		// order in which the two delayed actions fire
		dueOrder []int
		// order in which fetched results arrive
		resultOrder []int
	}

	tests := map[string]tc{
		"in order":        {dueOrder: []int{0, 1}, resultOrder: []int{1}},
		"reversed due":    {dueOrder: []int{1, 0}, resultOrder: []int{1}},
		"stale result in": {dueOrder: []int{1}, resultOrder: []int{1, 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := &brandFetcher{}
			m := newTestApp(f)

			var dues []searchDueMsg
			for _, b := range []string{"A", "B"} {
				var cmd tea.Cmd
				m, cmd = update(t, m, views.SearchSubmittedMsg{Brand: b})
				dues = append(dues, findDue(t, cmd))
			}

			for _, i := range tt.dueOrder {
				var cmd tea.Cmd
				m, cmd = update(t, m, dues[i])
				if i == 0 && cmd != nil {
					t.Errorf("superseded search for %q still fetched", dues[i].brand)
				}
			}

			results := []resultMsg{
				{seq: dues[0].seq, result: brand.Result{Brand: "A"}},
				{seq: dues[1].seq, result: brand.Result{Brand: "B"}},
			}
			for _, i := range tt.resultOrder {
				m, _ = update(t, m, results[i])
			}

			if got := m.Result(); got == nil || got.Brand != "B" {
				t.Fatalf("result = %+v, want brand B", got)
			}
			if m.pending != "" {
				t.Errorf("pending = %q, want idle", m.pending)
			}
		})
	}
}

func TestApp_FetchError(t *testing.T) {
	f := &brandFetcher{}
	m := newTestApp(f)

	prev := brand.Result{Brand: "Old"}
	m.result = &prev

	f.err = errors.New("backend unreachable")
	m, cmd := update(t, m, views.SearchSubmittedMsg{Brand: "New"})
	m, fetch := update(t, m, findDue(t, cmd))
	m, _ = update(t, m, fetch())

	if m.Result() == nil || m.Result().Brand != "Old" {
		t.Errorf("result = %+v, want previous result kept", m.Result())
	}
	if view := m.View(); !strings.Contains(view, "backend unreachable") {
		t.Errorf("view missing error:\n%s", view)
	}

	// A successful search clears the error.
	f.err = nil
	m, cmd = update(t, m, views.SearchSubmittedMsg{Brand: "New"})
	m, fetch = update(t, m, findDue(t, cmd))
	m, _ = update(t, m, fetch())

	if m.err != nil {
		t.Errorf("err = %v, want cleared", m.err)
	}
	if m.Result().Brand != "New" {
		t.Errorf("brand = %q, want New", m.Result().Brand)
	}
}

func TestApp_CopyResult(t *testing.T) {
	var copied []string
	m := newTestApp(source.NewDemo())
	m.canCopy = true
	m.writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	// Nothing to copy yet.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if len(copied) != 0 {
		t.Fatalf("copied %d times with no result", len(copied))
	}

	r := brand.Demo().WithBrand("Acme")
	m, _ = update(t, m, resultMsg{seq: m.seq, result: r})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	if len(copied) != 1 || copied[0] != r.Summary() {
		t.Fatalf("copied = %q, want summary", copied)
	}
	if !m.copied || cmd == nil {
		t.Errorf("copied = %v, cmd = %v", m.copied, cmd)
	}

	m, _ = update(t, m, clearCopiedMsg{})
	if m.copied {
		t.Error("copied flag not cleared")
	}
}

func TestApp_QuitCancelsFetches(t *testing.T) {
	m := newTestApp(source.NewDemo())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("no quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("esc produced %T, want tea.QuitMsg", cmd())
	}
	if !errors.Is(m.ctx.Err(), context.Canceled) {
		t.Errorf("ctx.Err() = %v, want context.Canceled", m.ctx.Err())
	}
}

func TestApp_SpinnerIdle(t *testing.T) {
	m := newTestApp(source.NewDemo())

	if _, cmd := update(t, m, spinner.TickMsg{}); cmd != nil {
		t.Error("idle spinner kept ticking")
	}
}

func TestApp_WindowSize(t *testing.T) {
	m := newTestApp(source.NewDemo())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}

	r := brand.Demo()
	m.result = &r
	if view := m.View(); !strings.Contains(view, "Results for: Zomato") {
		t.Errorf("view missing results:\n%s", view)
	}
}

func TestApp_CopyHiddenWithoutClipboard(t *testing.T) {
	var copied int
	m := newTestApp(source.NewDemo())
	m.canCopy = false
	m.writeClipboard = func(string) error {
		copied++
		return nil
	}

	r := brand.Demo()
	m, _ = update(t, m, resultMsg{seq: m.seq, result: r})

	if strings.Contains(m.View(), "ctrl+y") {
		t.Errorf("copy hint shown without a clipboard tool:\n%s", m.View())
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != 0 || cmd != nil || m.copied {
		t.Errorf("copied = %d, cmd = %v, flag = %v; want nothing", copied, cmd, m.copied)
	}

	m.canCopy = true
	if !strings.Contains(m.View(), "ctrl+y: copy") {
		t.Errorf("copy hint missing with a clipboard tool:\n%s", m.View())
	}
}
