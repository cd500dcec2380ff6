package columns

import (
	"context"
	"errors"
	"fmt"

	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// DrainError records a column whose editor could not be saved.
type DrainError struct {
	Index int
	Err   error
}

func (e *DrainError) Error() string {
	return fmt.Sprintf("columns: drain column %d: %v", e.Index, e.Err)
}

func (e *DrainError) Unwrap() error {
	return e.Err
}

// Save drains every live editor into the model and returns the data
// trimmed to the current column count. It never fails: a column whose
// editor errors is saved as empty and reported through DrainErrors.
func (b *Block) Save(ctx context.Context) models.ColumnsData {
	b.drainAll(ctx, false)
	return b.finalize()
}

// DrainErrors returns the failures seen by the most recent drain.
func (b *Block) DrainErrors() []error {
	out := make([]error, len(b.drainErrs))
	copy(out, b.drainErrs)
	return out
}

// drainAll asks each live editor for its content in ascending index order
// and writes the result into the model. Every region is visited even when
// one of them fails. A failed column is stored as empty unless keepFailed
// is set, in which case the model keeps what it had. Timed out columns
// always keep their previous content. It returns the failed indices.
func (b *Block) drainAll(ctx context.Context, keepFailed bool) map[int]bool {
	b.drainErrs = nil
	failed := map[int]bool{}

	for _, i := range b.regions.indices() {
		r, ok := b.regions.get(i)
		if !ok {
			continue
		}

		blocks, err := b.drainRegion(ctx, r)
		if err == nil {
			b.setContent(i, blocks)
			continue
		}

		failed[i] = true
		b.drainErrs = append(b.drainErrs, &DrainError{Index: i, Err: err})
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			b.logger.Warn("column drain timed out, keeping previous content",
				"block", b.api.BlockID(), "column", i, "error", err)
			continue
		}
		if keepFailed {
			b.logger.Warn("column drain failed, keeping previous content",
				"block", b.api.BlockID(), "column", i, "error", err)
			continue
		}
		b.logger.Warn("column drain failed, saving column as empty",
			"block", b.api.BlockID(), "column", i, "error", err)
		b.setContent(i, nil)
	}
	return failed
}

func (b *Block) drainRegion(ctx context.Context, r *Region) (blocks []models.ContentBlock, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.config.DrainTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.config.DrainTimeout)
		defer cancel()
	}

	defer func() {
		if p := recover(); p != nil {
			blocks, err = nil, fmt.Errorf("editor panicked: %v", p)
		}
	}()

	return r.Editor.Save(ctx)
}

// finalize returns exactly Columns columns, dropping stale trailing
// content and padding missing columns with empty ones.
func (b *Block) finalize() models.ColumnsData {
	out := models.ColumnsData{
		Columns: b.data.Columns,
		Content: make([][]models.ContentBlock, b.data.Columns),
	}
	for i := range out.Content {
		out.Content[i] = b.contentAt(i)
	}
	return out
}
