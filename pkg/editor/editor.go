// Package editor provides a textarea backed nested editor for column regions.
package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-columns/pkg/columns"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// DefaultHeight is used when the block asks for no minimum height.
const DefaultHeight = 6

// ErrDestroyed is returned by an editor used after Destroy.
var ErrDestroyed = errors.New("editor: destroyed")

// Options are editor preferences that do not come from the block.
type Options struct {
	ShowLineNumbers bool
	Placeholder     string
}

// Factory returns a constructor the columns block can use for its regions.
func Factory(opts Options) columns.EditorFactory {
	return func(cfg columns.EditorConfig) (columns.Editor, error) {
		return New(cfg, opts), nil
	}
}

// Editor is a single column's editor.
type Editor struct {
	textarea  textarea.Model
	blocks    []models.ContentBlock
	text      string
	tools     columns.ToolRegistry
	readOnly  bool
	height    int
	width     int
	onChange  func()
	destroyed bool
}

// New creates an editor seeded with cfg.Data and mounts it in cfg.Holder.
func New(cfg columns.EditorConfig, opts Options) *Editor {
	height := cfg.MinHeight
	if height <= 0 {
		height = DefaultHeight
	}

	ta := textarea.New()
	ta.ShowLineNumbers = opts.ShowLineNumbers
	ta.Prompt = ""
	ta.CharLimit = 0 // No limit
	ta.MaxHeight = 0
	ta.Placeholder = opts.Placeholder
	ta.SetHeight(height)

	e := &Editor{
		textarea: ta,
		tools:    cfg.Tools,
		readOnly: cfg.ReadOnly,
		height:   height,
		onChange: cfg.OnChange,
	}
	e.load(cfg.Data)

	if cfg.Holder != nil {
		cfg.Holder.Mount(e)
	}
	return e
}

func (e *Editor) load(blocks []models.ContentBlock) {
	e.blocks = models.CloneBlocks(blocks)
	e.text = BlocksToText(e.blocks, e.tools)
	e.textarea.SetValue(e.text)
}

// Render replaces the editor's content.
func (e *Editor) Render(ctx context.Context, blocks []models.ContentBlock) error {
	if e.destroyed {
		return ErrDestroyed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.load(blocks)
	return nil
}

// Save returns the editor's content. Untouched content comes back exactly
// as it was rendered.
func (e *Editor) Save(ctx context.Context) ([]models.ContentBlock, error) {
	if e.destroyed {
		return nil, ErrDestroyed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current := e.textarea.Value()
	if current != e.text {
		e.blocks = TextToBlocks(current, e.blocks, e.tools)
		e.text = current
	}
	return models.CloneBlocks(e.blocks), nil
}

// Destroy releases the editor. It must not be used afterwards.
func (e *Editor) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.textarea.Blur()
	e.textarea.Reset()
	e.blocks = nil
	e.onChange = nil
}

// Destroyed reports whether Destroy was called.
func (e *Editor) Destroyed() bool {
	return e.destroyed
}

// Value returns the raw textarea content.
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// Focus gives the editor keyboard focus.
func (e *Editor) Focus() tea.Cmd {
	if e.destroyed || e.readOnly {
		return nil
	}
	return e.textarea.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.textarea.Blur()
}

// Focused reports whether the editor has keyboard focus.
func (e *Editor) Focused() bool {
	return e.textarea.Focused()
}

// Update feeds a message to the textarea and notifies the block when the
// text changed.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if e.destroyed || e.readOnly {
		return nil
	}

	before := e.textarea.Value()
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)

	if e.textarea.Value() != before && e.onChange != nil {
		e.onChange()
	}
	return cmd
}

// SetSize sets the editor's size; a height of zero keeps the minimum.
func (e *Editor) SetSize(width, height int) {
	if height <= 0 {
		height = e.height
	}
	e.width = width
	e.textarea.SetWidth(width)
	e.textarea.SetHeight(height)
}

// View renders the editor.
func (e *Editor) View() string {
	if !e.readOnly {
		return e.textarea.View()
	}

	text := e.textarea.Value()
	if e.width > 0 {
		text = wordwrap.String(text, e.width)
	}
	lines := strings.Split(text, "\n")
	for len(lines) < e.height {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(e.width).Render(strings.Join(lines, "\n"))
}
