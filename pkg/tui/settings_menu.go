package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-columns/pkg/columns"
)

// settingsMenu shows the settings actions of the focused columns block.
type settingsMenu struct {
	actions []columns.SettingsAction
	cursor  int
}

func (a *App) openMenu() {
	blocks := a.engine.Blocks()
	if a.focus.block >= len(blocks) {
		return
	}
	actions := blocks[a.focus.block].RenderSettings()
	menu := &settingsMenu{actions: actions}
	for i, act := range actions {
		if act.IsActive() {
			menu.cursor = i
		}
	}
	a.menu = menu
}

func (a *App) updateMenu(msg tea.KeyMsg) tea.Cmd {
	m := a.menu
	switch {
	case key.Matches(msg, a.keys.Close):
		a.menu = nil
	case key.Matches(msg, a.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
	case key.Matches(msg, a.keys.Select):
		act := m.actions[m.cursor]
		if act.CloseOnActivate {
			a.menu = nil
		}
		if err := act.OnActivate(context.Background()); err != nil {
			return a.status("Could not switch to %s: %v", act.Label, err)
		}
		return tea.Batch(a.applyFocus(), a.status("Switched to %s", act.Label))
	}
	return nil
}

func (m *settingsMenu) view() string {
	var b strings.Builder
	for i, act := range m.actions {
		marker := "  "
		if act.IsActive() {
			marker = "✓ "
		}
		line := marker + act.Icon + " " + act.Label
		if i == m.cursor {
			line = SelectedStyle.Render(line)
		} else {
			line = NormalStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(m.actions)-1 {
			b.WriteString("\n")
		}
	}
	return MenuStyle.Render(b.String())
}
