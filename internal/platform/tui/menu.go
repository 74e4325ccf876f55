package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	positiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Menu is the game picker.
type Menu struct {
	items  []registry.GameInfo
	cursor int
	keys   MenuKeyMap
}

// MenuAction is what a key press in the menu asks for.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionSelect
	MenuActionQuit
)

// NewMenu lists every registered game.
func NewMenu() Menu {
	return Menu{
		items: registry.List(),
		keys:  DefaultMenuKeyMap(),
	}
}

// Selected returns the highlighted game.
func (m Menu) Selected() (registry.GameInfo, bool) {
	if len(m.items) == 0 {
		return registry.GameInfo{}, false
	}
	return m.items[m.cursor], true
}

// Select moves the cursor to game id if it is listed.
func (m *Menu) Select(id string) {
	for i, it := range m.items {
		if it.ID == id {
			m.cursor = i
			return
		}
	}
}

// HandleKey moves the cursor or reports a selection.
func (m *Menu) HandleKey(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			return MenuActionSelect
		}
	}
	return MenuActionNone
}

// View renders the menu centered in width.
func (m Menu) View(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P O C K E T   A R C A D E"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Select a game"), width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-12s", item.Title)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %-12s", item.Title))
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	if it, ok := m.Selected(); ok && it.Controls != "" {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(it.Controls), width))
		b.WriteString("\n")
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
