package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-columns/internal/cli"
)

// NewColumnsCommand creates the columns command
func NewColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns <file> <block> <count>",
		Short: "Change the column count of a multi-column block",
		Long: `Change how many columns a multi-column block has and save the document.

The block is given by its id or by its position in the document, starting
at 0. Growing adds empty columns. Shrinking drops the trailing columns and
their content.

Examples:
  # Switch the second block of the document to three columns
  pluqqy-columns columns document.yaml 1 3`,
		Args: cobra.ExactArgs(3),
		RunE: runColumns,
	}
	return cmd
}

func runColumns(cmd *cobra.Command, args []string) error {
	path, ref := args[0], args[1]
	count, err := cli.ParseColumns(args[2])
	if err != nil {
		return err
	}

	cc, err := commandContext(cmd)
	if err != nil {
		return err
	}
	defer cc.Close()

	engine, err := cc.OpenDocument(cmd.Context(), path)
	if err != nil {
		return err
	}
	defer engine.Destroy()

	if err := engine.SetColumns(cmd.Context(), ref, count); err != nil {
		return fmt.Errorf("failed to change columns: %w", err)
	}
	if _, err := cc.SaveDocument(cmd.Context(), engine); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	cli.PrintSuccess("Block %s now has %d columns", ref, count)
	return nil
}
