// Package columns implements the multi-column block: a single document
// block split into side by side regions, each backed by its own nested
// editor, persisted as one flat {columns, content} record.
package columns

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/pluqqy/pluqqy-columns/pkg/layout"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// Class names and the style parameter carried by the root.
const (
	ClassWrapper     = "cdx-multicolumn"
	ClassNode        = "cdx-multicolumn_node"
	ColumnCountStyle = "--multicolumn-column-count"
)

// ErrDestroyed is returned by Render once the block has been destroyed.
var ErrDestroyed = errors.New("columns: block destroyed")

// ToolboxInfo describes the block in the host's toolbox.
type ToolboxInfo struct {
	Icon  string
	Title string
}

// Toolbox returns the toolbox entry for the block.
func Toolbox() ToolboxInfo {
	return ToolboxInfo{Icon: "▥", Title: "Multi-column"}
}

// IsReadOnlySupported reports that the block can be shown read only.
func IsReadOnlySupported() bool { return true }

// EnableLineBreaks reports that the host must pass Enter through to the block.
func EnableLineBreaks() bool { return true }

// Config is the tool configuration supplied by the host.
type Config struct {
	EditorFactory EditorFactory
	Tools         ToolRegistry
	MinHeight     int
	// DrainTimeout bounds each editor's Save; zero means no bound.
	DrainTimeout time.Duration
}

// Params are the constructor arguments supplied by the host.
type Params struct {
	Data     *models.ColumnsData
	API      API
	Config   Config
	ReadOnly bool
	Logger   *slog.Logger
}

// Block is a multi-column block instance. The host serializes calls into
// a block; it is not safe for concurrent use.
type Block struct {
	api       API
	config    Config
	readOnly  bool
	logger    *slog.Logger
	data      models.ColumnsData
	regions   *regionSet
	root      *layout.Root
	renderErr error
	destroyed bool
	drainErrs []error

	// columns whose drain failed during SetColumns; reconcile leaves
	// their editors alone
	keepLive map[int]bool
}

// New creates a block from previously saved data, which may be nil.
func New(p Params) (*Block, error) {
	if p.Config.EditorFactory == nil {
		return nil, ErrNoEditorFactory
	}
	if p.API == nil {
		return nil, ErrNoHostAPI
	}
	if p.Config.Tools == nil {
		p.Config.Tools = ToolRegistry{}
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	b := &Block{
		api:      p.API,
		config:   p.Config,
		readOnly: p.ReadOnly,
		logger:   logger.With("tool", "columns"),
	}
	b.regions = newRegionSet(p.Config.EditorFactory, EditorConfig{
		Tools:     p.Config.Tools,
		MinHeight: p.Config.MinHeight,
		ReadOnly:  p.ReadOnly,
		OnChange:  b.dispatchChange,
	})

	// No root yet, so this cannot reconcile or fail.
	_ = b.SetData(context.Background(), p.Data)
	return b, nil
}

// Render builds the block's root and its regions. Calling it again
// returns the same root, along with the error of the last reconcile if
// building a region failed.
func (b *Block) Render(ctx context.Context) (*layout.Root, error) {
	if b.destroyed {
		return nil, ErrDestroyed
	}
	if b.root != nil {
		return b.root, b.renderErr
	}

	classes := []string{ClassWrapper}
	if style := b.api.Styles().Block; style != "" {
		classes = append(classes, style)
	}
	root := layout.NewRoot(classes...)
	root.SetStyle(ColumnCountStyle, strconv.Itoa(b.data.Columns))
	b.root = root

	b.renderErr = b.reconcile(ctx)
	return root, b.renderErr
}

// Destroy tears down every region and detaches the root. Later calls that
// would reconcile are no-ops.
func (b *Block) Destroy() {
	if b.destroyed {
		return
	}
	for _, i := range b.regions.indices() {
		b.regions.teardown(i)
	}
	if b.root != nil {
		b.root.Detach()
	}
	b.destroyed = true
	b.root = nil
}

// ReadOnly reports whether the block was created read only.
func (b *Block) ReadOnly() bool {
	return b.readOnly
}

// Regions returns the live regions in ascending index order.
func (b *Block) Regions() []Region {
	out := make([]Region, 0, b.regions.count())
	for _, i := range b.regions.indices() {
		r, _ := b.regions.get(i)
		out = append(out, *r)
	}
	return out
}

// Region returns the live region at index.
func (b *Block) Region(index int) (Region, bool) {
	r, ok := b.regions.get(index)
	if !ok {
		return Region{}, false
	}
	return *r, true
}

func (b *Block) dispatchChange() {
	if b.destroyed {
		return
	}
	b.api.DispatchChange()
}
