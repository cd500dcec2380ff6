package models

// ContentBlock is a single record produced by a nested editor. Its shape is
// owned by the editor that wrote it; the columns block never looks inside.
type ContentBlock map[string]interface{}

// ColumnsData is the persisted form of a multi-column block.
type ColumnsData struct {
	Columns int              `yaml:"columns" json:"columns"`
	Content [][]ContentBlock `yaml:"content" json:"content"`
}

// Clone returns a copy whose outer and per-column slices are not shared
// with d. Content blocks themselves are shared since they are opaque.
func (d ColumnsData) Clone() ColumnsData {
	out := ColumnsData{
		Columns: d.Columns,
		Content: make([][]ContentBlock, len(d.Content)),
	}
	for i, col := range d.Content {
		out.Content[i] = CloneBlocks(col)
	}
	return out
}

// CloneBlocks copies a column's block slice, mapping nil to an empty slice.
func CloneBlocks(blocks []ContentBlock) []ContentBlock {
	out := make([]ContentBlock, len(blocks))
	copy(out, blocks)
	return out
}

// BlockRecord is one top level block of a document.
type BlockRecord struct {
	ID   string                 `yaml:"id" json:"id"`
	Type string                 `yaml:"type" json:"type"`
	Data map[string]interface{} `yaml:"data" json:"data"`
}

// Document is the file format handled by the host editor.
type Document struct {
	Title  string        `yaml:"title,omitempty" json:"title,omitempty"`
	Blocks []BlockRecord `yaml:"blocks" json:"blocks"`
	Path   string        `yaml:"-" json:"-"`
}
