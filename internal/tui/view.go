package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/aacboard/internal/board"
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewHistory:
		body = a.renderHistory()
	default:
		body = a.renderBoard()
	}
	if a.modal != modalNone {
		body += "\n\n" + modalStyle.Render(a.renderModal())
	}
	return body
}

func (a *App) renderBoard() string {
	b := a.board()
	title := "Home"
	if !b.AtHome() {
		title = b.CategoryName()
	}
	if a.dirty {
		title += " *"
	}
	out := titleStyle.Render(title) + "\n"

	locs := b.ImageLocs()
	if len(locs) == 0 {
		out += statusStyle.Render("(empty: press a to add a pictogram)") + "\n"
	} else {
		out += a.renderGrid(locs) + "\n"
	}

	if a.spoken != "" {
		out += speechStyle.Render("🔊 "+a.spoken) + "\n"
	}
	out += footerStyle.Render(helpLine(a.keys.boardHelp()))
	return out + a.renderStatus()
}

func (a *App) renderGrid(locs []string) string {
	cursor := min(a.cursor, len(locs)-1)
	cols := a.columns()
	var rows []string
	for start := 0; start < len(locs); start += cols {
		end := min(start+cols, len(locs))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			k := locs[i]
			label := a.label(k)
			style := cellStyle
			if i == cursor {
				style = activeCell
			}
			cells = append(cells, style.Render(label+"\n"+cellKeyStyle.Render(truncate(k, cellWidth-4))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// label is a category name on the home screen and spoken text inside one.
func (a *App) label(k string) string {
	b := a.board()
	if b.AtHome() {
		if cat, ok := b.Category(k); ok && cat.Name() != "" {
			return cat.Name()
		}
		return board.Stem(k)
	}
	if cat, ok := b.Category(b.Current()); ok {
		if text, ok := cat.Text(k); ok && text != "" {
			return text
		}
	}
	return board.Stem(k)
}

func (a *App) renderHistory() string {
	out := titleStyle.Render("History") + "\n"
	out += "Most spoken\n"
	if len(a.frequent) == 0 {
		out += statusStyle.Render("  (nothing spoken yet)") + "\n"
	}
	for i, p := range a.frequent {
		marker := " "
		line := fmt.Sprintf("%-32s x%d", p.Text, p.Count)
		if i == a.histCursor {
			marker = "▶"
			line = selectedStyle.Render(line)
		}
		out += fmt.Sprintf("%s %s\n", marker, line)
	}
	out += "\nRecent\n"
	for _, u := range a.recent {
		out += fmt.Sprintf("  %s  %s\n", u.SpokenAt.Local().Format("15:04"), u.Text)
	}
	if a.spoken != "" {
		out += speechStyle.Render("🔊 "+a.spoken) + "\n"
	}
	out += footerStyle.Render(helpLine(a.keys.historyHelp()))
	return out + a.renderStatus()
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalAddKey:
		title := "New item: pictogram key"
		if a.board().AtHome() {
			title = "New category: pictogram key"
		}
		return titleStyle.Render(title) + "\n" + a.input.View() + "\n[enter] Next  [esc] Cancel"
	case modalAddText:
		title := "Spoken text for " + a.pendingKey
		if a.board().AtHome() {
			title = "Category name for " + a.pendingKey
		}
		return titleStyle.Render(title) + "\n" + a.input.View() + "\n[enter] Save  [esc] Cancel"
	case modalImportPath:
		return titleStyle.Render("Merge board file") + "\n" + a.input.View() + "\n[enter] Import  [esc] Cancel"
	case modalConfirmClear:
		return titleStyle.Render("Clear history?") + "\nThis deletes every recorded phrase.\n[y] Yes  [n] No"
	default:
		return ""
	}
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return "\n" + errorStyle.Render(a.status)
	}
	return "\n" + statusStyle.Render(a.status)
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return "…" + string(r[len(r)-n+1:])
}
