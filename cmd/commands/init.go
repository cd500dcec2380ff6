package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-columns/internal/cli"
	"github.com/pluqqy/pluqqy-columns/pkg/files"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Create a sample document with a multi-column block",
		Long: `Create a new document containing a paragraph and a two column block.

The document is written as YAML unless the file name ends in .json.
Existing files are never overwritten.

Examples:
  # Create document.yaml in the current directory
  pluqqy-columns init

  # Create a JSON document
  pluqqy-columns init notes.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path := files.DefaultDocument
	if len(args) == 1 {
		path = args[0]
	}

	doc, err := files.InitDocument(path)
	if err != nil {
		return fmt.Errorf("failed to initialize document: %w", err)
	}

	cli.PrintSuccess("Created %s", doc.Path)
	cli.PrintInfo("Run 'pluqqy-columns edit %s' to open it", doc.Path)
	return nil
}
