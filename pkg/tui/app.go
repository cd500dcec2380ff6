package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-columns/pkg/columns"
	"github.com/pluqqy/pluqqy-columns/pkg/document"
	"github.com/pluqqy/pluqqy-columns/pkg/files"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// StatusMsg sets the status bar text.
type StatusMsg string

// SaveFunc persists the document hosted by the engine.
type SaveFunc func(ctx context.Context, engine *document.Engine) (*models.Document, error)

// focusable is what the app needs from a nested editor to drive it.
type focusable interface {
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
}

// focusRef names one region of one columns block.
type focusRef struct {
	block  int
	column int
}

type App struct {
	engine    *document.Engine
	save      SaveFunc
	copy      func(string) error
	keys      keyMap
	focus     focusRef
	menu      *settingsMenu
	width     int
	height    int
	statusMsg string
}

// NewApp builds the app around a rendered engine.
func NewApp(engine *document.Engine, save SaveFunc) *App {
	a := &App{
		engine: engine,
		save:   save,
		copy:   clipboard.WriteAll,
		keys:   defaultKeyMap(),
	}
	for i := range engine.Blocks() {
		if root := engine.Root(i); root != nil {
			root.UseStylesheet(ColumnsStylesheet())
		}
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return a.applyFocus()
}

// regions lists every focusable region in document order.
func (a *App) regions() []focusRef {
	var refs []focusRef
	for bi, b := range a.engine.Blocks() {
		for _, r := range b.Regions() {
			refs = append(refs, focusRef{block: bi, column: r.Index})
		}
	}
	return refs
}

func (a *App) focused() (focusable, bool) {
	blocks := a.engine.Blocks()
	if a.focus.block >= len(blocks) {
		return nil, false
	}
	r, ok := blocks[a.focus.block].Region(a.focus.column)
	if !ok {
		return nil, false
	}
	f, ok := r.Editor.(focusable)
	return f, ok
}

// applyFocus clamps the focus to a live region and focuses only that one.
func (a *App) applyFocus() tea.Cmd {
	refs := a.regions()
	if len(refs) == 0 {
		return nil
	}

	if _, ok := a.focused(); !ok {
		best := refs[0]
		for _, ref := range refs {
			if ref.block == a.focus.block && ref.column <= a.focus.column {
				best = ref
			}
		}
		a.focus = best
	}

	var cmd tea.Cmd
	for bi, b := range a.engine.Blocks() {
		for _, r := range b.Regions() {
			active := bi == a.focus.block && r.Index == a.focus.column
			r.Container.SetFocused(active)
			f, ok := r.Editor.(focusable)
			if !ok {
				continue
			}
			if active {
				cmd = f.Focus()
			} else {
				f.Blur()
			}
		}
	}
	return cmd
}

func (a *App) moveFocus(delta int) tea.Cmd {
	refs := a.regions()
	if len(refs) == 0 {
		return nil
	}
	pos := 0
	for i, ref := range refs {
		if ref == a.focus {
			pos = i
		}
	}
	pos = (pos + delta + len(refs)) % len(refs)
	a.focus = refs[pos]
	return a.applyFocus()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.menu != nil {
			return a, a.updateMenu(msg)
		}

		switch {
		case key.Matches(msg, a.keys.Next):
			return a, a.moveFocus(1)
		case key.Matches(msg, a.keys.Prev):
			return a, a.moveFocus(-1)
		case key.Matches(msg, a.keys.Save):
			return a, a.saveDocument()
		case key.Matches(msg, a.keys.Copy):
			return a, a.copyDocument()
		case key.Matches(msg, a.keys.Settings):
			a.openMenu()
			return a, nil
		}
	}

	if f, ok := a.focused(); ok {
		return a, f.Update(msg)
	}
	return a, nil
}

func (a *App) status(format string, args ...interface{}) tea.Cmd {
	text := fmt.Sprintf(format, args...)
	return func() tea.Msg { return StatusMsg(text) }
}

func (a *App) saveDocument() tea.Cmd {
	if a.save == nil {
		return a.status("Nothing to save to")
	}
	doc, err := a.save(context.Background(), a.engine)
	if err != nil {
		return a.status("Save failed: %v", err)
	}
	return a.status("Saved %s", doc.Path)
}

func (a *App) copyDocument() tea.Cmd {
	doc, err := a.engine.Save(context.Background())
	if err != nil {
		return a.status("Copy failed: %v", err)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return a.status("Copy failed: %v", err)
	}
	if err := a.copy(string(out)); err != nil {
		return a.status("Copy failed: %v", err)
	}
	return a.status("✓ Copied document JSON to clipboard")
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	doc := a.engine.Document()
	var sections []string
	if doc.Title != "" {
		sections = append(sections, HeaderStyle.Render(doc.Title))
	}

	columnsIndex := 0
	for _, rec := range doc.Blocks {
		if rec.Type == files.ColumnsBlockType {
			if root := a.engine.Root(columnsIndex); root != nil {
				sections = append(sections, root.View(a.width, columns.ColumnCountStyle))
			}
			columnsIndex++
			continue
		}
		sections = append(sections, NormalStyle.Render(wordwrap.String(blockText(rec), a.width)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if a.menu != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, a.menu.view())
	}

	var help []string
	for _, b := range a.keys.help() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}
	content = lipgloss.JoinVertical(lipgloss.Left, content, HelpStyle.Render(strings.Join(help, " • ")))

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Top, content, StatusBarStyle.Render(a.statusMsg))
	}
	return content
}

func blockText(rec models.BlockRecord) string {
	if text, ok := rec.Data["text"].(string); ok {
		return text
	}
	return fmt.Sprintf("[%s]", rec.Type)
}
