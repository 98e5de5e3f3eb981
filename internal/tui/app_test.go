package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/aacboard/internal/board"
	"github.com/jask/aacboard/internal/boardfile"
	"github.com/jask/aacboard/internal/config"
	"github.com/jask/aacboard/internal/service"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, a *App, keys ...string) *App {
	t.Helper()
	for _, k := range keys {
		next, _ := a.Update(keyMsg(k))
		a = next.(*App)
	}
	return a
}

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	b := board.Starter()
	session := &service.SessionService{Board: b, Path: path, MaxDistance: 3}
	cfg := config.Config{History: config.HistoryConfig{Limit: 5}}
	a := New(context.Background(), cfg, Services{Session: session, Import: &service.ImportService{}})
	return a, path
}

func TestInitWithoutHistory(t *testing.T) {
	a, _ := newTestApp(t)
	cmd := a.Init()
	if cmd == nil {
		t.Fatal("expected history load command")
	}
	msg := cmd()
	if _, ok := msg.(historyMsg); !ok {
		t.Fatalf("init msg = %T, want historyMsg", msg)
	}
}

func TestSelectEntersAndSpeaks(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, "enter")
	if a.board().Current() != "img/food/plate.png" {
		t.Fatalf("current = %q, want food category", a.board().Current())
	}
	if !strings.Contains(a.View(), "food") {
		t.Fatalf("view missing category title:\n%s", a.View())
	}

	a = press(t, a, "right", "enter")
	if a.spoken != "watermelon" {
		t.Fatalf("spoken = %q, want watermelon", a.spoken)
	}
	if a.statusErr {
		t.Fatalf("unexpected error status %q", a.status)
	}
	if !strings.Contains(a.View(), "watermelon") {
		t.Fatal("view missing speech bar")
	}

	a = press(t, a, "esc")
	if !a.board().AtHome() {
		t.Fatal("esc should return home")
	}
	if a.spoken != "" || a.cursor != 0 {
		t.Fatalf("home reset left spoken=%q cursor=%d", a.spoken, a.cursor)
	}
}

func TestCursorBounds(t *testing.T) {
	a, _ := newTestApp(t)
	a = press(t, a, "right", "right", "right", "right")
	if a.cursor != 2 {
		t.Fatalf("cursor = %d, want 2 (three categories)", a.cursor)
	}
	a = press(t, a, "h", "h", "h")
	if a.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", a.cursor)
	}
	// width 80 fits three columns, so down has nowhere to go
	a = press(t, a, "down")
	if a.cursor != 0 {
		t.Fatalf("cursor = %d after down, want 0", a.cursor)
	}
}

func TestAddCategoryFlow(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, "a")
	if a.modal != modalAddKey {
		t.Fatalf("modal = %q, want addKey", a.modal)
	}
	a = press(t, a, "img/drinks.png", "enter")
	if a.modal != modalAddText {
		t.Fatalf("modal = %q, want addText", a.modal)
	}
	if !strings.Contains(a.View(), "Category name") {
		t.Fatal("expected category name prompt")
	}
	a = press(t, a, "cold drinks", "enter")
	if a.modal != modalNone {
		t.Fatalf("modal = %q after submit", a.modal)
	}
	if a.board().Current() != "img/drinks.png" {
		t.Fatalf("current = %q, want new category", a.board().Current())
	}
	if a.board().CategoryName() != "cold drinks" {
		t.Fatalf("category name = %q", a.board().CategoryName())
	}
	if !a.dirty {
		t.Fatal("expected dirty flag")
	}

	a = press(t, a, "a", "img/juice.png", "enter", "orange juice", "enter")
	if got := a.board().ImageLocs(); len(got) != 1 || got[0] != "img/juice.png" {
		t.Fatalf("image locs = %v", got)
	}
	a = press(t, a, "enter")
	if a.spoken != "orange juice" {
		t.Fatalf("spoken = %q", a.spoken)
	}
}

func TestAddRejectsBadKey(t *testing.T) {
	a, _ := newTestApp(t)
	a = press(t, a, "a", "img/with space.png", "enter")
	if a.modal != modalAddKey {
		t.Fatalf("modal = %q, want to stay on key input", a.modal)
	}
	a = press(t, a, "esc")
	if a.modal != modalNone {
		t.Fatal("esc should cancel the form")
	}

	a = press(t, a, "a", "img/food/plate.png", "enter")
	if a.modal != modalAddKey || !strings.Contains(a.status, "already exists") {
		t.Fatalf("modal=%q status=%q", a.modal, a.status)
	}
}

func TestSaveAndReload(t *testing.T) {
	a, path := newTestApp(t)
	a = press(t, a, "w")
	if a.statusErr {
		t.Fatalf("save failed: %s", a.status)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("board file not written: %v", err)
	}

	a = press(t, a, "a", "img/extra.png", "enter", "extra", "enter", "esc", "r")
	if a.statusErr {
		t.Fatalf("reload failed: %s", a.status)
	}
	if a.board().HasImage("img/extra.png") {
		t.Fatal("reload should drop unsaved category")
	}
	if !strings.Contains(a.status, "loaded 3 categories") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestImportMerge(t *testing.T) {
	a, _ := newTestApp(t)
	src := filepath.Join(t.TempDir(), "more.txt")
	doc := boardfile.Document{Sections: []boardfile.Section{
		{Key: "img/animals/dog.png", Name: "animals", Items: []boardfile.Item{{Key: "img/animals/cat.png", Text: "cat"}}},
	}}
	if err := boardfile.WriteFile(src, doc); err != nil {
		t.Fatal(err)
	}
	a = press(t, a, "i", src, "enter")
	if a.statusErr {
		t.Fatalf("import failed: %s", a.status)
	}
	if !a.board().HasImage("img/animals/dog.png") {
		t.Fatal("imported category missing")
	}
	if !strings.Contains(a.status, "imported 1 categories, 1 items") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestHistoryViewDisabled(t *testing.T) {
	a, _ := newTestApp(t)
	next, cmd := a.Update(keyMsg("tab"))
	a = next.(*App)
	if a.state != viewHistory {
		t.Fatalf("state = %q, want history", a.state)
	}
	if cmd == nil {
		t.Fatal("expected history load")
	}
	next, _ = a.Update(cmd())
	a = next.(*App)
	if !strings.Contains(a.View(), "nothing spoken yet") {
		t.Fatalf("view:\n%s", a.View())
	}

	a = press(t, a, "x")
	if a.modal != modalConfirmClear {
		t.Fatal("expected confirm modal")
	}
	next, cmd = a.Update(keyMsg("y"))
	a = next.(*App)
	msg := cmd()
	next, _ = a.Update(msg)
	a = next.(*App)
	if !a.statusErr || !strings.Contains(a.status, "disabled") {
		t.Fatalf("status = %q", a.status)
	}

	a = press(t, a, "tab")
	if a.state != viewBoard {
		t.Fatal("tab should return to board")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("img/food.png", 20); got != "img/food.png" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("img/food/plate.png", 8); got != "…ate.png" {
		t.Fatalf("truncate long = %q", got)
	}
}
