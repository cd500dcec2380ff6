package columns

import (
	"context"
	"errors"

	"github.com/pluqqy/pluqqy-columns/pkg/layout"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

var (
	// ErrNoEditorFactory is returned when no nested editor constructor is configured.
	ErrNoEditorFactory = errors.New("columns: no editor factory configured")
	// ErrNoHostAPI is returned when the block is created without a host API.
	ErrNoHostAPI = errors.New("columns: no host API")
)

// Styles carries the class names the host wants applied to its blocks.
type Styles struct {
	Block string
}

// API is the slice of the host document engine a block talks to.
type API interface {
	Styles() Styles
	// DispatchChange tells the host the block's content changed.
	DispatchChange()
	BlockID() string
}

// Editor is a nested editor instance owned by exactly one region.
type Editor interface {
	// Render replaces the editor's content with blocks.
	Render(ctx context.Context, blocks []models.ContentBlock) error
	// Save returns the editor's current content.
	Save(ctx context.Context) ([]models.ContentBlock, error)
	Destroy()
}

// ToolRegistry is handed to every nested editor untouched.
type ToolRegistry map[string]interface{}

// EditorConfig is what a nested editor is constructed with.
type EditorConfig struct {
	Holder    *layout.Container
	Data      []models.ContentBlock
	Tools     ToolRegistry
	MinHeight int
	ReadOnly  bool
	OnChange  func()
}

// EditorFactory constructs a nested editor. It returns as soon as the editor
// is usable; any further readiness work is the editor's own business.
type EditorFactory func(cfg EditorConfig) (Editor, error)
