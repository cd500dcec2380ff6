package commands

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-columns/internal/cli"
)

var (
	clipboardFormat string

	// writeClipboard is replaced in tests, where no clipboard is available.
	writeClipboard = clipboard.WriteAll
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <file>",
		Short: "Copy the saved form of a document to the clipboard",
		Long: `Copy a document to the system clipboard in the form it is saved in.

Examples:
  pluqqy-columns clipboard document.yaml
  pluqqy-columns clipboard document.yaml --format yaml`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}

	cmd.Flags().StringVar(&clipboardFormat, "format", "json", "Clipboard format (json, yaml)")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	if clipboardFormat != string(cli.FormatJSON) && clipboardFormat != string(cli.FormatYAML) {
		return fmt.Errorf("unsupported clipboard format: %s", clipboardFormat)
	}

	cc, err := commandContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	engine, err := cc.OpenDocument(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer engine.Destroy()

	doc, err := engine.Save(cmd.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := cli.OutputResults(&buf, clipboardFormat, doc); err != nil {
		return err
	}
	if err := writeClipboard(buf.String()); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied %s to clipboard (%s)", args[0], clipboardFormat)
	return nil
}
