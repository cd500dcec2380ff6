package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-columns/internal/cli"
	"github.com/pluqqy/pluqqy-columns/pkg/tui"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a document in the terminal UI",
		Long: `Open a document in the interactive editor.

Each column of a multi-column block gets its own editor. Use tab to move
between columns, ctrl+o to change the column count and ctrl+s to save.

Examples:
  pluqqy-columns edit document.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	p := tea.NewProgram(tui.NewApp(engine, cc.SaveDocument), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if engine.Dirty() {
		cli.PrintWarning("Unsaved changes in %s were discarded", args[0])
	}
	return nil
}
