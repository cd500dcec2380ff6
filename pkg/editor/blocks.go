package editor

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-columns/pkg/columns"
	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// ParagraphType is the block type written for text typed into the editor.
const ParagraphType = "paragraph"

// blockSeparator separates blocks in the textarea.
const blockSeparator = "\n\n"

// Paragraph builds a paragraph block holding text.
func Paragraph(text string) models.ContentBlock {
	return models.ContentBlock{
		"type": ParagraphType,
		"data": map[string]interface{}{"text": text},
	}
}

// BlockType returns the "type" field of a block, or "".
func BlockType(b models.ContentBlock) string {
	t, _ := b["type"].(string)
	return t
}

// BlockText returns data.text of a block and whether it was present.
func BlockText(b models.ContentBlock) (string, bool) {
	var text interface{}
	switch data := b["data"].(type) {
	case map[string]interface{}:
		text = data["text"]
	case models.ContentBlock:
		text = data["text"]
	default:
		return "", false
	}
	s, ok := text.(string)
	return s, ok
}

// renderBlock returns the text shown for a block. Text blocks of a known
// tool show their text; anything else shows a marker so it survives edits
// that leave the marker alone.
func renderBlock(b models.ContentBlock, tools columns.ToolRegistry) string {
	t := BlockType(b)
	if t == ParagraphType || tools[t] != nil {
		if text, ok := BlockText(b); ok {
			return text
		}
	}
	if t == "" {
		t = "block"
	}
	return fmt.Sprintf("[%s]", t)
}

// BlocksToText renders blocks as textarea content.
func BlocksToText(blocks []models.ContentBlock, tools columns.ToolRegistry) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, renderBlock(b, tools))
	}
	return strings.Join(parts, blockSeparator)
}

// TextToBlocks parses textarea content back into blocks. A segment that
// still renders exactly like one of the previous blocks reuses that block
// untouched; any other segment becomes a paragraph.
func TextToBlocks(text string, previous []models.ContentBlock, tools columns.ToolRegistry) []models.ContentBlock {
	unused := make(map[string][]models.ContentBlock)
	for _, b := range previous {
		key := renderBlock(b, tools)
		unused[key] = append(unused[key], b)
	}

	out := []models.ContentBlock{}
	for _, segment := range strings.Split(text, blockSeparator) {
		segment = strings.Trim(segment, "\n")
		if strings.TrimSpace(segment) == "" {
			continue
		}
		if queue := unused[segment]; len(queue) > 0 {
			out = append(out, queue[0])
			unused[segment] = queue[1:]
			continue
		}
		out = append(out, Paragraph(segment))
	}
	return out
}
