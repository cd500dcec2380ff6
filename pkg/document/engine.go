// Package document is a small block editor host: it loads a document,
// instantiates a tool for every columns block and collects their data back
// on save.
package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-columns/pkg/columns"
	"github.com/pluqqy/pluqqy-columns/pkg/files"
	"github.com/pluqqy/pluqqy-columns/pkg/layout"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// BlockClass is the style class the host gives every block.
const BlockClass = "ce-block"

var (
	ErrBlockNotFound   = errors.New("document: block not found")
	ErrNotColumnsBlock = errors.New("document: not a columns block")
)

// Options configure how the engine builds columns blocks.
type Options struct {
	EditorFactory columns.EditorFactory
	Tools         columns.ToolRegistry
	MinHeight     int
	DrainTimeout  time.Duration
	ReadOnly      bool
	Logger        *slog.Logger
	// OnChange is called after any block reports a change.
	OnChange func(blockID string)
}

// Engine hosts the blocks of one document.
type Engine struct {
	doc     *models.Document
	opts    Options
	logger  *slog.Logger
	blocks  []*hostBlock
	version int
	dirty   bool
}

// hostBlock is the API a single columns block talks to.
type hostBlock struct {
	engine   *Engine
	position int
	id       string
	tool     *columns.Block
	root     *layout.Root
}

func (h *hostBlock) Styles() columns.Styles {
	return columns.Styles{Block: BlockClass}
}

func (h *hostBlock) DispatchChange() {
	h.engine.version++
	h.engine.dirty = true
	if h.engine.opts.OnChange != nil {
		h.engine.opts.OnChange(h.id)
	}
}

func (h *hostBlock) BlockID() string {
	return h.id
}

// New builds an engine for doc. Blocks without an id get a fresh one.
func New(doc *models.Document, opts Options) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e := &Engine{doc: doc, opts: opts, logger: logger}

	for i := range doc.Blocks {
		rec := &doc.Blocks[i]
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.Type != files.ColumnsBlockType {
			continue
		}

		hb := &hostBlock{engine: e, position: i, id: rec.ID}
		tool, err := columns.New(columns.Params{
			Data: DecodeColumns(rec.Data),
			API:  hb,
			Config: columns.Config{
				EditorFactory: opts.EditorFactory,
				Tools:         opts.Tools,
				MinHeight:     opts.MinHeight,
				DrainTimeout:  opts.DrainTimeout,
			},
			ReadOnly: opts.ReadOnly,
			Logger:   logger.With("block", rec.ID),
		})
		if err != nil {
			return nil, fmt.Errorf("document: block %s: %w", rec.ID, err)
		}
		hb.tool = tool
		e.blocks = append(e.blocks, hb)
	}

	return e, nil
}

// Document returns the hosted document.
func (e *Engine) Document() *models.Document {
	return e.doc
}

// Render renders every columns block once.
func (e *Engine) Render(ctx context.Context) error {
	for _, hb := range e.blocks {
		root, err := hb.tool.Render(ctx)
		if err != nil {
			return fmt.Errorf("document: render block %s: %w", hb.id, err)
		}
		hb.root = root
	}
	return nil
}

// Blocks returns the columns blocks in document order.
func (e *Engine) Blocks() []*columns.Block {
	out := make([]*columns.Block, 0, len(e.blocks))
	for _, hb := range e.blocks {
		out = append(out, hb.tool)
	}
	return out
}

// Root returns the rendered root of the columns block at i (see Blocks).
func (e *Engine) Root(i int) *layout.Root {
	if i < 0 || i >= len(e.blocks) {
		return nil
	}
	return e.blocks[i].root
}

// BlockID returns the id of the columns block at i (see Blocks).
func (e *Engine) BlockID(i int) string {
	if i < 0 || i >= len(e.blocks) {
		return ""
	}
	return e.blocks[i].id
}

// Find resolves ref, either a block id or a position in the document,
// to a columns block.
func (e *Engine) Find(ref string) (*columns.Block, error) {
	for _, hb := range e.blocks {
		if hb.id == ref {
			return hb.tool, nil
		}
	}

	pos, err := strconv.Atoi(ref)
	if err != nil || pos < 0 || pos >= len(e.doc.Blocks) {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, ref)
	}
	for _, hb := range e.blocks {
		if hb.position == pos {
			return hb.tool, nil
		}
	}
	return nil, fmt.Errorf("%w: block %d is %q", ErrNotColumnsBlock, pos, e.doc.Blocks[pos].Type)
}

// SetColumns changes the column count of the block named by ref.
func (e *Engine) SetColumns(ctx context.Context, ref string, count int) error {
	tool, err := e.Find(ref)
	if err != nil {
		return err
	}
	if err := tool.SetColumns(ctx, count); err != nil {
		return fmt.Errorf("document: set columns: %w", err)
	}
	e.version++
	e.dirty = true
	return nil
}

// Save collects every columns block's data into the document.
func (e *Engine) Save(ctx context.Context) (*models.Document, error) {
	for _, hb := range e.blocks {
		data := hb.tool.Save(ctx)
		for _, err := range hb.tool.DrainErrors() {
			e.logger.Warn("block saved with drain errors", "block", hb.id, "error", err)
		}

		encoded, err := EncodeColumns(data)
		if err != nil {
			return nil, fmt.Errorf("document: encode block %s: %w", hb.id, err)
		}
		e.doc.Blocks[hb.position].Data = encoded
	}
	e.dirty = false
	e.logger.Info("document saved", "blocks", len(e.doc.Blocks), "version", e.version)
	return e.doc, nil
}

// Version counts changes reported by blocks since the engine was built.
func (e *Engine) Version() int {
	return e.version
}

// Dirty reports whether a change happened since the last save.
func (e *Engine) Dirty() bool {
	return e.dirty
}

// Destroy destroys every block.
func (e *Engine) Destroy() {
	for _, hb := range e.blocks {
		hb.tool.Destroy()
		hb.root = nil
	}
}

// DecodeColumns converts a block's generic data into columns data. It is
// permissive: a column count that is not a whole number decodes as zero
// (and is normalized by the block), unreadable content decodes as nil.
func DecodeColumns(data map[string]interface{}) *models.ColumnsData {
	if data == nil {
		return nil
	}
	out := &models.ColumnsData{}
	switch n := data["columns"].(type) {
	case int:
		out.Columns = n
	case int64:
		out.Columns = int(n)
	case float64:
		if n == float64(int(n)) {
			out.Columns = int(n)
		}
	}

	if raw, ok := data["content"]; ok && raw != nil {
		encoded, err := yaml.Marshal(raw)
		if err == nil {
			// Decoding into a named map type would give nested maps that
			// type too; blocks stay plain maps below the top level.
			var content [][]map[string]interface{}
			if err := yaml.Unmarshal(encoded, &content); err == nil {
				out.Content = make([][]models.ContentBlock, len(content))
				for i, col := range content {
					out.Content[i] = make([]models.ContentBlock, len(col))
					for j, block := range col {
						out.Content[i][j] = models.ContentBlock(block)
					}
				}
			}
		}
	}
	return out
}

// EncodeColumns converts columns data into a block's generic data.
func EncodeColumns(data models.ColumnsData) (map[string]interface{}, error) {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
