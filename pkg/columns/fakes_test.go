package columns

import (
	"context"
	"errors"

	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// fakeEditor echoes back whatever it was last rendered with.
type fakeEditor struct {
	id        int
	cfg       EditorConfig
	content   []models.ContentBlock
	renders   int
	destroys  int
	saveErr   error
	savePanic bool
	saveNil   bool
	blockSave bool
}

func (e *fakeEditor) Render(ctx context.Context, blocks []models.ContentBlock) error {
	e.renders++
	e.content = models.CloneBlocks(blocks)
	return nil
}

func (e *fakeEditor) Save(ctx context.Context) ([]models.ContentBlock, error) {
	if e.destroys > 0 {
		panic("save on destroyed editor")
	}
	if e.blockSave {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if e.savePanic {
		panic("boom")
	}
	if e.saveErr != nil {
		return nil, e.saveErr
	}
	if e.saveNil {
		return nil, nil
	}
	return models.CloneBlocks(e.content), nil
}

func (e *fakeEditor) Destroy() {
	e.destroys++
}

// type something into the editor and notify the block
func (e *fakeEditor) edit(blocks ...models.ContentBlock) {
	e.content = blocks
	if e.cfg.OnChange != nil {
		e.cfg.OnChange()
	}
}

type fakeFactory struct {
	created []*fakeEditor
	err     error
}

func (f *fakeFactory) New(cfg EditorConfig) (Editor, error) {
	if f.err != nil {
		return nil, f.err
	}
	e := &fakeEditor{id: len(f.created), cfg: cfg, content: models.CloneBlocks(cfg.Data)}
	f.created = append(f.created, e)
	return e, nil
}

type fakeAPI struct {
	changes int
}

func (a *fakeAPI) Styles() Styles { return Styles{Block: "ce-block"} }
func (a *fakeAPI) DispatchChange() { a.changes++ }
func (a *fakeAPI) BlockID() string { return "block-1" }

var errSave = errors.New("save failed")

func para(text string) models.ContentBlock {
	return models.ContentBlock{"type": "paragraph", "data": map[string]interface{}{"text": text}}
}

func newTestBlock(data *models.ColumnsData) (*Block, *fakeFactory, *fakeAPI) {
	f := &fakeFactory{}
	api := &fakeAPI{}
	b, err := New(Params{
		Data:   data,
		API:    api,
		Config: Config{EditorFactory: f.New, Tools: ToolRegistry{"paragraph": true}},
	})
	if err != nil {
		panic(err)
	}
	return b, f, api
}
