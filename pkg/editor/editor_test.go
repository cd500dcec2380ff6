package editor

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-columns/pkg/columns"
	"github.com/pluqqy/pluqqy-columns/pkg/layout"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

func typeText(e *Editor, text string) {
	e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestBlocksToText(t *testing.T) {
	tools := columns.ToolRegistry{"header": true}
	blocks := []models.ContentBlock{
		Paragraph("first"),
		{"type": "header", "data": map[string]interface{}{"text": "Title", "level": 2}},
		{"type": "image", "data": map[string]interface{}{"url": "x.png"}},
		{"data": map[string]interface{}{}},
	}

	assert.Equal(t, "first\n\nTitle\n\n[image]\n\n[block]", BlocksToText(blocks, tools))
	assert.Equal(t, "", BlocksToText(nil, tools))
}

func TestBlockText(t *testing.T) {
	tests := []struct {
		name  string
		block models.ContentBlock
		want  string
		ok    bool
	}{
		{"plain map data", Paragraph("plain"), "plain", true},
		{"named map data", models.ContentBlock{"type": "paragraph", "data": models.ContentBlock{"text": "named"}}, "named", true},
		{"no text", models.ContentBlock{"type": "image", "data": map[string]interface{}{"url": "x.png"}}, "", false},
		{"no data", models.ContentBlock{"type": "paragraph"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := BlockText(tt.block)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestTextToBlocks(t *testing.T) {
	header := models.ContentBlock{"type": "header", "data": map[string]interface{}{"text": "Title", "level": 2}}
	image := models.ContentBlock{"type": "image", "data": map[string]interface{}{"url": "x.png"}}
	tools := columns.ToolRegistry{"header": true}

	tests := []struct {
		name     string
		text     string
		previous []models.ContentBlock
		want     []models.ContentBlock
	}{
		{
			name: "empty text",
			text: "",
			want: []models.ContentBlock{},
		},
		{
			name: "plain paragraphs",
			text: "one\n\ntwo\nlines",
			want: []models.ContentBlock{Paragraph("one"), Paragraph("two\nlines")},
		},
		{
			name:     "untouched blocks are reused",
			text:     "Title\n\nnew text\n\n[image]",
			previous: []models.ContentBlock{header, Paragraph("old"), image},
			want:     []models.ContentBlock{header, Paragraph("new text"), image},
		},
		{
			name:     "removed marker drops the block",
			text:     "Title",
			previous: []models.ContentBlock{header, image},
			want:     []models.ContentBlock{header},
		},
		{
			name: "extra blank lines are ignored",
			text: "\n\none\n\n\n\n\ntwo\n\n",
			want: []models.ContentBlock{Paragraph("one"), Paragraph("two")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextToBlocks(tt.text, tt.previous, tools))
		})
	}
}

func TestEditor_SaveEchoesSeededContent(t *testing.T) {
	seeded := []models.ContentBlock{
		Paragraph("a"),
		{"type": "checklist", "data": map[string]interface{}{"items": []interface{}{"x"}}},
	}
	e := New(columns.EditorConfig{Data: seeded}, Options{})

	got, err := e.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seeded, got)
}

func TestEditor_TypingNotifiesAndSaves(t *testing.T) {
	changes := 0
	e := New(columns.EditorConfig{
		Data:     []models.ContentBlock{Paragraph("hello")},
		OnChange: func() { changes++ },
	}, Options{})

	e.Focus()
	typeText(e, "!")
	assert.Equal(t, 1, changes)

	got, err := e.Save(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	text, ok := BlockText(got[0])
	require.True(t, ok)
	assert.Contains(t, text, "hello")
	assert.Contains(t, text, "!")
}

func TestEditor_NoChangeNoNotify(t *testing.T) {
	changes := 0
	e := New(columns.EditorConfig{OnChange: func() { changes++ }}, Options{})
	e.Focus()
	e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, changes)
}

func TestEditor_ReadOnlyIgnoresInput(t *testing.T) {
	changes := 0
	e := New(columns.EditorConfig{
		Data:     []models.ContentBlock{Paragraph("fixed")},
		ReadOnly: true,
		OnChange: func() { changes++ },
	}, Options{})

	assert.Nil(t, e.Focus())
	typeText(e, "x")
	assert.Equal(t, "fixed", e.Value())
	assert.Equal(t, 0, changes)

	e.SetSize(20, 0)
	view := e.View()
	assert.Contains(t, view, "fixed")
	assert.GreaterOrEqual(t, len(strings.Split(view, "\n")), DefaultHeight)
}

func TestEditor_RenderReplacesContent(t *testing.T) {
	e := New(columns.EditorConfig{Data: []models.ContentBlock{Paragraph("a")}}, Options{})
	require.NoError(t, e.Render(context.Background(), []models.ContentBlock{Paragraph("b"), Paragraph("c")}))

	assert.Equal(t, "b\n\nc", e.Value())
	got, err := e.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.ContentBlock{Paragraph("b"), Paragraph("c")}, got)
}

func TestEditor_DestroyedEditorRefusesWork(t *testing.T) {
	e := New(columns.EditorConfig{}, Options{})
	e.Destroy()
	e.Destroy()

	assert.True(t, e.Destroyed())
	_, err := e.Save(context.Background())
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.ErrorIs(t, e.Render(context.Background(), nil), ErrDestroyed)
}

func TestEditor_CancelledContext(t *testing.T) {
	e := New(columns.EditorConfig{}, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Save(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEditor_MountsInHolder(t *testing.T) {
	root := layout.NewRoot("wrap")
	holder := root.NewContainer("node")
	New(columns.EditorConfig{Holder: holder, Data: []models.ContentBlock{Paragraph("shown")}, ReadOnly: true}, Options{})

	assert.Contains(t, root.View(40, "--count"), "shown")
}

func TestFactory_WorksWithColumnsBlock(t *testing.T) {
	ctx := context.Background()
	in := models.ColumnsData{
		Columns: 2,
		Content: [][]models.ContentBlock{{Paragraph("left")}, {Paragraph("right")}},
	}
	b, err := columns.New(columns.Params{
		Data:   &in,
		API:    stubAPI{},
		Config: columns.Config{EditorFactory: Factory(Options{})},
	})
	require.NoError(t, err)
	_, err = b.Render(ctx)
	require.NoError(t, err)

	assert.Equal(t, in, b.Save(ctx))

	require.NoError(t, b.SetColumns(ctx, 3))
	saved := b.Save(ctx)
	assert.Equal(t, 3, saved.Columns)
	assert.Equal(t, []models.ContentBlock{}, saved.Content[2])
}

type stubAPI struct{}

func (stubAPI) Styles() columns.Styles { return columns.Styles{} }
func (stubAPI) DispatchChange() {}
func (stubAPI) BlockID() string { return "stub" }
