package columns

import (
	"context"
	"strconv"

	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// DefaultColumns is used whenever a column count outside AllowedColumns is supplied.
const DefaultColumns = 2

// AllowedColumns lists the column counts a block accepts, in menu order.
var AllowedColumns = []int{2, 3}

// NormalizeColumns returns n if it is an allowed count and DefaultColumns otherwise.
func NormalizeColumns(n int) int {
	for _, allowed := range AllowedColumns {
		if n == allowed {
			return n
		}
	}
	return DefaultColumns
}

// SetData replaces the block's data. Invalid column counts are silently
// replaced by DefaultColumns and missing content becomes empty. Once the
// block is rendered, the root's column count is updated and the regions
// are reconciled; the only error returned is a failure to construct a
// nested editor.
func (b *Block) SetData(ctx context.Context, data *models.ColumnsData) error {
	next := models.ColumnsData{
		Columns: DefaultColumns,
		Content: [][]models.ContentBlock{},
	}
	if data != nil {
		next.Columns = NormalizeColumns(data.Columns)
		if data.Content != nil {
			next.Content = data.Clone().Content
		}
	}
	b.data = next

	if b.root == nil {
		return nil
	}
	b.root.SetStyle(ColumnCountStyle, strconv.Itoa(b.data.Columns))
	b.renderErr = b.reconcile(ctx)
	return b.renderErr
}

// Data returns a snapshot of the block's current model. Content may hold
// trailing columns beyond Columns left over from a larger count; Save trims
// them.
func (b *Block) Data() models.ColumnsData {
	return b.data.Clone()
}

// Columns returns the current column count.
func (b *Block) Columns() int {
	return b.data.Columns
}

// setContent stores blocks for column index, growing the content slice
// with empty columns when needed.
func (b *Block) setContent(index int, blocks []models.ContentBlock) {
	for len(b.data.Content) <= index {
		b.data.Content = append(b.data.Content, []models.ContentBlock{})
	}
	b.data.Content[index] = models.CloneBlocks(blocks)
}

// contentAt returns the stored blocks for index, or an empty column.
func (b *Block) contentAt(index int) []models.ContentBlock {
	if index < len(b.data.Content) {
		return models.CloneBlocks(b.data.Content[index])
	}
	return []models.ContentBlock{}
}
