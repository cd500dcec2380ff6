package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-columns/pkg/document"
	"github.com/pluqqy/pluqqy-columns/pkg/editor"
	"github.com/pluqqy/pluqqy-columns/pkg/files"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header, each title underlined to its own width
func (t *TableFormatter) Header(columns ...string) {
	rules := make([]string, len(columns))
	for i, c := range columns {
		rules[i] = strings.Repeat("-", utf8.RuneCountInString(c))
	}
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Join(rules, "\t"))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	case FormatText:
		// For text format, we expect the caller to have already formatted
		// the data appropriately. This is a fallback.
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatColumns renders columns data as text, one section per column,
// wrapped to width.
func FormatColumns(data models.ColumnsData, width int) string {
	var b strings.Builder
	for i, col := range data.Content {
		fmt.Fprintf(&b, "── column %d/%d ──\n", i+1, data.Columns)
		text := editor.BlocksToText(col, nil)
		if text == "" {
			text = "(empty)"
		}
		if width > 0 {
			text = wordwrap.String(text, width)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// TruncateString shortens s to at most maxLen runes, marking the cut with "…"
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return string(runes[:1])
	}
	return string(runes[:maxLen-1]) + "…"
}

// WriteBlockTable lists the blocks of doc, one row per block, with the
// column count of multi-column blocks and a preview cut to previewWidth.
func WriteBlockTable(w io.Writer, doc *models.Document, previewWidth int) {
	t := NewTableFormatter(w)
	t.Header("POS", "ID", "TYPE", "COLUMNS", "PREVIEW")
	for i, rec := range doc.Blocks {
		count, preview := "-", ""
		if rec.Type == files.ColumnsBlockType {
			if data := document.DecodeColumns(rec.Data); data != nil {
				count = strconv.Itoa(data.Columns)
				parts := make([]string, 0, len(data.Content))
				for _, col := range data.Content {
					parts = append(parts, editor.BlocksToText(col, nil))
				}
				preview = strings.Join(parts, " | ")
			}
		} else if text, ok := rec.Data["text"].(string); ok {
			preview = text
		}
		preview = strings.Join(strings.Fields(preview), " ")
		t.Row(strconv.Itoa(i), rec.ID, rec.Type, count, TruncateString(preview, previewWidth))
	}
	t.Flush()
}
