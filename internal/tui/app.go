package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/aacboard/internal/board"
	"github.com/jask/aacboard/internal/config"
	"github.com/jask/aacboard/internal/database/repository"
	"github.com/jask/aacboard/internal/service"
)

// App is the bubbletea model hosting one board session. The board is
// only touched from Update; commands read from the database.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	keys     keyMap

	state  appState
	modal  modalState
	cursor int
	width  int

	// add form
	input      textinput.Model
	pendingKey string

	spoken    string
	status    string
	statusErr bool
	dirty     bool

	recent     []repository.Utterance
	frequent   []repository.PhraseCount
	histCursor int
}

// Services bundles what the TUI drives. History and Maintenance may be nil
// when history is disabled.
type Services struct {
	Session     *service.SessionService
	Import      *service.ImportService
	Maintenance *service.MaintenanceService
	History     *repository.UtteranceRepo
}

type appState string

const (
	viewBoard   appState = "board"
	viewHistory appState = "history"
)

type modalState string

const (
	modalNone         modalState = ""
	modalAddKey       modalState = "addKey"
	modalAddText      modalState = "addText"
	modalImportPath   modalState = "importPath"
	modalConfirmClear modalState = "confirmClear"
)

type (
	errMsg     struct{ err error }
	historyMsg struct {
		recent   []repository.Utterance
		frequent []repository.PhraseCount
	}
	historyClearedMsg struct{}
)

func New(ctx context.Context, cfg config.Config, services Services) *App {
	in := textinput.New()
	in.CharLimit = 256
	in.Width = 48
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		services: services,
		keys:     newKeyMap(),
		state:    viewBoard,
		input:    in,
		width:    80,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadHistory()
}

func (a *App) board() *board.Board {
	return a.services.Session.Board
}

func (a *App) loadHistory() tea.Cmd {
	repo := a.services.History
	limit := a.cfg.History.Limit
	return func() tea.Msg {
		if repo == nil {
			return historyMsg{}
		}
		recent, err := repo.Recent(a.ctx, limit)
		if err != nil {
			return errMsg{err}
		}
		frequent, err := repo.Frequent(a.ctx, limit)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg{recent: recent, frequent: frequent}
	}
}

func (a *App) clearHistoryCmd() tea.Cmd {
	m := a.services.Maintenance
	return func() tea.Msg {
		if m == nil {
			return errMsg{errors.New("history is disabled")}
		}
		if err := m.ClearHistory(a.ctx); err != nil {
			return errMsg{err}
		}
		return historyClearedMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil
	case errMsg:
		a.setError(m.err)
		return a, nil
	case historyMsg:
		a.recent, a.frequent = m.recent, m.frequent
		if a.histCursor >= len(a.frequent) {
			a.histCursor = max(0, len(a.frequent)-1)
		}
		return a, nil
	case historyClearedMsg:
		a.setStatus("history cleared")
		return a, a.loadHistory()
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.state == viewHistory {
			return a.handleHistoryKey(m)
		}
		return a.handleBoardKey(m)
	}
	return a, nil
}

func (a *App) handleBoardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	locs := a.board().ImageLocs()
	if a.cursor >= len(locs) {
		a.cursor = max(0, len(locs)-1)
	}
	cols := a.columns()
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Right):
		if a.cursor < len(locs)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Up):
		if a.cursor-cols >= 0 {
			a.cursor -= cols
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor+cols < len(locs) {
			a.cursor += cols
		}
	case key.Matches(m, a.keys.Select):
		if len(locs) == 0 {
			a.setStatus("nothing to select; press a to add")
			return a, nil
		}
		return a, a.selectKey(locs[a.cursor])
	case key.Matches(m, a.keys.Home):
		a.services.Session.Reset()
		a.cursor = 0
		a.spoken = ""
		a.setStatus("")
	case key.Matches(m, a.keys.Add):
		a.openInput(modalAddKey, "img/...")
	case key.Matches(m, a.keys.Save):
		if err := a.services.Session.Save(); err != nil {
			a.setError(err)
			return a, nil
		}
		a.dirty = false
		a.setStatus("saved " + a.services.Session.Path)
	case key.Matches(m, a.keys.Reload):
		rep, err := a.services.Session.Reload()
		a.cursor = 0
		a.dirty = false
		if err != nil {
			a.setError(err)
			return a, nil
		}
		a.setStatus(loadSummary(rep))
	case key.Matches(m, a.keys.Import):
		a.openInput(modalImportPath, "path/to/board.txt")
	case key.Matches(m, a.keys.History):
		a.state = viewHistory
		a.setStatus("")
		return a, a.loadHistory()
	}
	return a, nil
}

func (a *App) selectKey(k string) tea.Cmd {
	out, err := a.services.Session.Select(a.ctx, k)
	if err != nil {
		var miss *service.MissError
		if errors.As(err, &miss) {
			a.setError(err)
			return nil
		}
		// speech or history failed after a successful selection
		a.spoken = out.Spoken
		a.setError(err)
		return nil
	}
	if out.Entered {
		a.cursor = 0
		a.spoken = ""
		a.setStatus("")
		return nil
	}
	a.spoken = out.Spoken
	a.setStatus("")
	return a.loadHistory()
}

func (a *App) handleHistoryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.History), key.Matches(m, a.keys.Home):
		a.state = viewBoard
		a.setStatus("")
	case key.Matches(m, a.keys.Up):
		if a.histCursor > 0 {
			a.histCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.histCursor < len(a.frequent)-1 {
			a.histCursor++
		}
	case key.Matches(m, a.keys.Select):
		if len(a.frequent) == 0 {
			return a, nil
		}
		out, err := a.services.Session.Repeat(a.ctx, a.frequent[a.histCursor])
		a.spoken = out.Spoken
		if err != nil {
			a.setError(err)
			return a, nil
		}
		return a, a.loadHistory()
	case key.Matches(m, a.keys.Clear):
		a.modal = modalConfirmClear
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal == modalConfirmClear {
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			return a, a.clearHistoryCmd()
		case "n", "N", "esc":
			a.modal = modalNone
		}
		return a, nil
	}

	switch m.Type {
	case tea.KeyEsc:
		a.closeInput()
		return a, nil
	case tea.KeyEnter:
		return a.submitInput()
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	return a, cmd
}

func (a *App) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(a.input.Value())
	switch a.modal {
	case modalAddKey:
		if value == "" || strings.ContainsAny(value, " \t") || strings.HasPrefix(value, ">") {
			a.setStatus("pictogram key must be a non-empty path without spaces")
			return a, nil
		}
		if a.board().HasImage(value) && a.board().AtHome() {
			a.setStatus("category already exists: " + value)
			return a, nil
		}
		a.pendingKey = value
		placeholder := "spoken text"
		if a.board().AtHome() {
			placeholder = "category name"
		}
		a.openInput(modalAddText, placeholder)
		return a, nil
	case modalAddText:
		if value == "" {
			a.setStatus("text cannot be empty")
			return a, nil
		}
		wasHome := a.board().AtHome()
		a.services.Session.Add(a.pendingKey, value)
		a.dirty = true
		if wasHome {
			a.cursor = 0
			a.setStatus("created category " + value)
		} else {
			a.cursor = max(0, len(a.board().ImageLocs())-1)
			a.setStatus("added " + a.pendingKey)
		}
		a.closeInput()
		return a, nil
	case modalImportPath:
		if value == "" {
			a.setStatus("enter a board file path")
			return a, nil
		}
		a.closeInput()
		if a.services.Import == nil {
			a.setError(errors.New("import is not configured"))
			return a, nil
		}
		res, err := a.services.Import.MergeFile(a.board(), value)
		if err != nil {
			a.setError(err)
			return a, nil
		}
		if res.Categories+res.Items > 0 {
			a.dirty = true
		}
		a.setStatus(fmt.Sprintf("imported %d categories, %d items (%d skipped, %d bad lines)", res.Categories, res.Items, res.Skipped, len(res.Errors)))
		return a, nil
	}
	return a, nil
}

func (a *App) openInput(modal modalState, placeholder string) {
	a.modal = modal
	a.input.Reset()
	a.input.Placeholder = placeholder
	a.input.Focus()
}

func (a *App) closeInput() {
	a.modal = modalNone
	a.pendingKey = ""
	a.input.Reset()
	a.input.Blur()
}

func (a *App) columns() int {
	return max(1, a.width/cellWidth)
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}

func loadSummary(rep board.LoadReport) string {
	s := fmt.Sprintf("loaded %d categories, %d items", rep.Categories, rep.Items)
	if n := len(rep.Skipped); n > 0 {
		s += fmt.Sprintf(" (%d malformed lines skipped: %v)", n, rep.Skipped[0])
	}
	return s
}
