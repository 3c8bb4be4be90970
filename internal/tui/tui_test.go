package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/dragon-repeller/internal/content"
	"github.com/tatianab/dragon-repeller/internal/engine"
	"github.com/tatianab/dragon-repeller/internal/models"
	"github.com/tatianab/dragon-repeller/internal/session"
)

func newTestModel(t *testing.T, hasSave bool) (model, *session.Session) {
	t.Helper()
	eng, err := engine.New(defaultTables(t), engine.NewSource(5))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	sess := session.New(eng, models.NewFileStore(t.TempDir(), "tui"))
	m := NewModel(sess, hasSave)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(model), sess
}

func press(t *testing.T, m model, k string) model {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	m = next.(model)
	if cmd == nil {
		t.Fatalf("key %q produced no command", k)
	}
	next, _ = m.Update(cmd())
	return next.(model)
}

func TestPlayingFlow(t *testing.T) {
	m, _ := newTestModel(t, false)
	if m.state != statePlaying {
		t.Fatalf("state = %v, want playing", m.state)
	}
	if !strings.Contains(m.View(), "town square") {
		t.Fatal("view does not show the town square")
	}

	m = press(t, m, "1")
	if m.view.Location != models.LocationStore {
		t.Fatalf("location = %q, want store", m.view.Location)
	}
	if !m.keys.Sell.Enabled() {
		t.Fatal("sell key disabled in the store")
	}

	m = press(t, m, "2")
	if m.view.Player.Weapon != "dagger" {
		t.Fatalf("weapon = %q, want dagger", m.view.Player.Weapon)
	}

	m = press(t, m, "s")
	if got := m.view.Player.Inventory; len(got) != 1 || got[0] != "dagger" {
		t.Fatalf("inventory = %v, want [dagger]", got)
	}
	if len(m.entries) != 4 {
		t.Fatalf("log entries = %d, want 4", len(m.entries))
	}
	if !strings.Contains(m.renderLog(), "> Buy weapon (30 gold)") {
		t.Fatal("log does not echo the chosen action")
	}
}

func TestChooseSaveScreen(t *testing.T) {
	m, _ := newTestModel(t, true)
	if m.state != stateChooseSave {
		t.Fatalf("state = %v, want choose save", m.state)
	}
	if !strings.Contains(m.View(), "Welcome Back, Hero!") {
		t.Fatal("missing welcome back prompt")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	if cmd != nil {
		t.Fatal("choice key active before a game is chosen")
	}
	m = next.(model)

	m = press(t, m, "n")
	if m.state != statePlaying || m.view.Location != models.LocationTown {
		t.Fatalf("after new game: state %v location %q", m.state, m.view.Location)
	}
}

func TestFightShowsMonster(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = press(t, m, "2") // cave
	m = press(t, m, "1") // slime
	if m.view.Monster == nil || m.view.Monster.Name != "slime" {
		t.Fatalf("monster = %+v", m.view.Monster)
	}
	if m.keys.Egg.Enabled() {
		t.Fatal("easter egg key enabled during a fight")
	}
	if !strings.Contains(m.View(), "MONSTER") {
		t.Fatal("stats panel lacks the monster block")
	}
	m = press(t, m, "3") // run
	if m.view.Location != models.LocationTown {
		t.Fatalf("location = %q, want town", m.view.Location)
	}
}

func TestBar(t *testing.T) {
	got := bar(5, 10, 10, healthFill)
	if strings.Count(got, "░") != 5 {
		t.Fatalf("bar = %q", got)
	}
	if strings.Count(bar(-3, 10, 4, healthFill), "░") != 4 {
		t.Fatal("negative values must render empty")
	}
}

func defaultTables(t *testing.T) *content.Tables {
	t.Helper()
	tables, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	return tables
}
