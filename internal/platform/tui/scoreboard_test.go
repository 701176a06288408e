package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/levels"
	"github.com/vovakirdan/tui-ricochet/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardPages(t *testing.T) {
	store := openStore(t)
	store.SaveScore("ricochet", 300)
	store.SaveScore("ricochet", 500)
	store.SaveRun(storage.RunRecord{LevelID: "01-first-drop", Run: 1, Outcome: "settled", Money: 200, Completed: true})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.rows) != 2 || m.rows[0][1] != "$500" {
		t.Fatalf("campaign rows = %v", m.rows)
	}

	next := tea.KeyMsg{Type: tea.KeyTab}
	model, _ := m.Update(next) // sandbox
	model, _ = model.Update(next)
	m = model.(ScoreboardModel)
	if m.pages[m.pageCursor].Kind != boardLevels {
		t.Fatalf("page = %+v, want levels", m.pages[m.pageCursor])
	}
	if len(m.rows) != 1 || m.rows[0][0] != "01-first-drop" {
		t.Errorf("level rows = %v", m.rows)
	}

	model, _ = m.Update(next)
	m = model.(ScoreboardModel)
	if len(m.rows) != 1 || m.rows[0][2] != "complete" {
		t.Errorf("run rows = %v", m.rows)
	}
	if !strings.Contains(m.View(), "Recent runs") {
		t.Error("view should name the current page")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "Nothing recorded yet") {
		t.Error("expected the empty message")
	}
}

func TestMenuListsLevelsAndSandbox(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	store := openStore(t)
	store.SaveRun(storage.RunRecord{LevelID: "02-side-step", Run: 2, Outcome: "settled", Money: 300, Completed: true})

	m := NewMenuModel(store, core.DefaultConfig(), lvls)
	if len(m.items) != len(lvls)+1 {
		t.Fatalf("menu has %d items, want %d", len(m.items), len(lvls)+1)
	}
	if m.items[1].Detail != "✓ $300 in 2 runs" {
		t.Errorf("detail = %q", m.items[1].Detail)
	}
	if last := m.items[len(m.items)-1]; last.GameID != "ricochet_sandbox" {
		t.Errorf("last item = %+v, want sandbox", last)
	}

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(MenuModel)
	if sel := m.Selected(); sel == nil || sel.LevelID != "02-side-step" {
		t.Errorf("Selected() = %+v", sel)
	}
}
