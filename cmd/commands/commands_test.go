package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-columns/internal/config"
	"github.com/pluqqy/pluqqy-columns/pkg/document"
	"github.com/pluqqy/pluqqy-columns/pkg/files"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// setupDocument isolates the settings file and writes a sample document.
func setupDocument(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.ConfigEnv, filepath.Join(dir, "settings.yaml"))

	path := filepath.Join(dir, "notes.yaml")
	_, err := files.InitDocument(path)
	require.NoError(t, err)
	return path
}

func execute(t *testing.T, cmd *cobra.Command, args []string, flags map[string]string) (string, error) {
	t.Helper()
	cmd.Flags().StringP("output", "o", "text", "")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	for key, value := range flags {
		require.NoError(t, cmd.Flags().Set(key, value))
	}
	err := cmd.Execute()
	return buf.String(), err
}

func columnsAt(t *testing.T, path string, pos int) *models.ColumnsData {
	t.Helper()
	doc, err := files.ReadDocument(path)
	require.NoError(t, err)
	require.Less(t, pos, len(doc.Blocks))
	data := document.DecodeColumns(doc.Blocks[pos].Data)
	require.NotNil(t, data)
	return data
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fresh.yaml")

	_, err := execute(t, NewInitCommand(), []string{path}, nil)
	require.NoError(t, err)

	data := columnsAt(t, path, 1)
	assert.Equal(t, 2, data.Columns)

	_, err = execute(t, NewInitCommand(), []string{path}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestShowCommand(t *testing.T) {
	tests := []struct {
		name     string
		flags    map[string]string
		contains []string
	}{
		{
			name: "text",
			contains: []string{
				"# notes",
				"── column 1/2 ──",
				"Left column",
				"── column 2/2 ──",
				"Right column",
			},
		},
		{
			name:  "summary",
			flags: map[string]string{"summary": "true"},
			contains: []string{
				"POS",
				"COLUMNS",
				"paragraph",
				"Left column | Right column",
			},
		},
		{
			name:     "json",
			flags:    map[string]string{"output": "json"},
			contains: []string{`"type": "columns"`, `"columns": 2`},
		},
		{
			name:     "yaml",
			flags:    map[string]string{"output": "yaml"},
			contains: []string{"type: columns", "columns: 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setupDocument(t)
			out, err := execute(t, NewShowCommand(), []string{path}, tt.flags)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestShowCommand_MissingFile(t *testing.T) {
	setupDocument(t)
	_, err := execute(t, NewShowCommand(), []string{"missing.yaml"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestColumnsCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    func(path string) []string
		want    int
		wantErr string
	}{
		{
			name: "grow by position",
			args: func(path string) []string { return []string{path, "1", "3"} },
			want: 3,
		},
		{
			name:    "reject count",
			args:    func(path string) []string { return []string{path, "1", "4"} },
			want:    2,
			wantErr: "invalid column count",
		},
		{
			name:    "not a columns block",
			args:    func(path string) []string { return []string{path, "0", "3"} },
			want:    2,
			wantErr: "not a columns block",
		},
		{
			name:    "unknown block",
			args:    func(path string) []string { return []string{path, "nope", "3"} },
			want:    2,
			wantErr: "block not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setupDocument(t)
			_, err := execute(t, NewColumnsCommand(), tt.args(path), nil)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			data := columnsAt(t, path, 1)
			assert.Equal(t, tt.want, data.Columns)
			assert.Len(t, data.Content, tt.want)
		})
	}
}

func TestColumnsCommand_ShrinkDropsContent(t *testing.T) {
	path := setupDocument(t)

	_, err := execute(t, NewColumnsCommand(), []string{path, "1", "3"}, nil)
	require.NoError(t, err)
	_, err = execute(t, NewColumnsCommand(), []string{path, "1", "2"}, nil)
	require.NoError(t, err)

	data := columnsAt(t, path, 1)
	assert.Equal(t, 2, data.Columns)
	require.Len(t, data.Content, 2)
	assert.Equal(t, "Left column", textOf(t, data.Content[0]))
	assert.Equal(t, "Right column", textOf(t, data.Content[1]))
}

func TestClipboardCommand(t *testing.T) {
	path := setupDocument(t)

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { writeClipboard = orig }()

	_, err := execute(t, NewClipboardCommand(), []string{path}, nil)
	require.NoError(t, err)

	var doc models.Document
	require.NoError(t, json.Unmarshal([]byte(copied), &doc))
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, files.ColumnsBlockType, doc.Blocks[1].Type)

	_, err = execute(t, NewClipboardCommand(), []string{path}, map[string]string{"format": "toml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported clipboard format")
}

func TestCommands_DoNotTouchUnrelatedFiles(t *testing.T) {
	path := setupDocument(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = execute(t, NewShowCommand(), []string{path}, nil)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "show must not rewrite the document")
}

func textOf(t *testing.T, blocks []models.ContentBlock) string {
	t.Helper()
	require.Len(t, blocks, 1)
	data, ok := blocks[0]["data"].(map[string]interface{})
	require.True(t, ok)
	text, _ := data["text"].(string)
	return text
}
