package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pluqqy/pluqqy-columns/pkg/columns"
)

// ParseColumns validates a column count argument. The block itself would
// silently fall back to the default, the CLI reports it instead.
func ParseColumns(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid column count: %s", s)
	}
	for _, allowed := range columns.AllowedColumns {
		if n == allowed {
			return n, nil
		}
	}
	return 0, fmt.Errorf("invalid column count: %d (must be one of %v)", n, columns.AllowedColumns)
}

// ValidateDocumentPath validates that a document path exists and is a file
func ValidateDocumentPath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document does not exist: %s", path)
		}
		return fmt.Errorf("error accessing document: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("document path is a directory: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return nil
	default:
		return fmt.Errorf("unsupported document type: %s (use .yaml, .yml or .json)", filepath.Ext(path))
	}
}
