package columns

import (
	"context"
	"fmt"
)

// reconcile converges the live regions on the model's column count.
// Indices are visited in ascending order so the rendered columns never
// have a gap. It does nothing before Render or after Destroy.
func (b *Block) reconcile(ctx context.Context) error {
	if b.root == nil || b.destroyed {
		return nil
	}

	columns := b.data.Columns
	var created, refreshed, kept, removed int

	for i := 0; i < columns; i++ {
		_, live := b.regions.get(i)
		if live && b.keepLive[i] {
			kept++
			continue
		}
		isNew, err := b.regions.ensure(ctx, b.root, i, b.contentAt(i))
		if err != nil {
			if !live {
				return fmt.Errorf("columns: create region %d: %w", i, err)
			}
			// A failed refresh leaves the editor with its previous content.
			b.logger.Warn("column refresh failed", "block", b.api.BlockID(), "column", i, "error", err)
		}
		if isNew {
			created++
		} else {
			refreshed++
		}
	}

	for _, i := range b.regions.indices() {
		if i >= columns && b.regions.teardown(i) {
			removed++
		}
	}

	b.logger.Debug("columns reconciled",
		"block", b.api.BlockID(),
		"columns", columns,
		"created", created,
		"refreshed", refreshed,
		"kept", kept,
		"removed", removed)

	return b.regions.checkContiguous()
}
