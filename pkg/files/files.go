package files

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

const (
	ColumnsBlockType   = "columns"
	ParagraphBlockType = "paragraph"
	DefaultDocument    = "document.yaml"
)

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// ReadDocument loads a document from YAML, or JSON when the extension is .json.
func ReadDocument(path string) (*models.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	var doc models.Document
	if isJSON(path) {
		err = json.Unmarshal(content, &doc)
	} else {
		err = yaml.Unmarshal(content, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	doc.Path = path
	return &doc, nil
}

// WriteDocument stores doc at path, creating parent directories.
func WriteDocument(path string, doc *models.Document) error {
	if path == "" {
		path = doc.Path
	}
	if path == "" {
		return fmt.Errorf("failed to write document: no path")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for document: %w", err)
	}

	var (
		content []byte
		err     error
	)
	if isJSON(path) {
		content, err = json.MarshalIndent(doc, "", "  ")
	} else {
		content, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	doc.Path = path
	return nil
}

// InitDocument writes a sample document with one two-column block. It
// refuses to overwrite an existing file.
func InitDocument(path string) (*models.Document, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("document %s already exists", path)
	}

	doc := &models.Document{
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Blocks: []models.BlockRecord{
			{
				Type: ParagraphBlockType,
				Data: map[string]interface{}{"text": "Multi-column blocks keep side by side notes in one block."},
			},
			{
				Type: ColumnsBlockType,
				Data: map[string]interface{}{
					"columns": 2,
					"content": []interface{}{
						[]interface{}{paragraph("Left column")},
						[]interface{}{paragraph("Right column")},
					},
				},
			},
		},
	}

	if err := WriteDocument(path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func paragraph(text string) map[string]interface{} {
	return map[string]interface{}{
		"type": ParagraphBlockType,
		"data": map[string]interface{}{"text": text},
	}
}
