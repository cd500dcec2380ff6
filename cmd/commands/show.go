package commands

import (
	"fmt"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-columns/internal/cli"
	"github.com/pluqqy/pluqqy-columns/pkg/document"
	"github.com/pluqqy/pluqqy-columns/pkg/files"
)

var (
	showWidth   int
	showSummary bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Display a document",
		Long: `Display a document with each multi-column block split into its columns.

Text output lists every column of every block. JSON and YAML output print
the document exactly as it would be saved.

Examples:
  # Show as text
  pluqqy-columns show document.yaml

  # One line per block with ids and column counts
  pluqqy-columns show document.yaml --summary

  # Output as JSON
  pluqqy-columns show document.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().IntVarP(&showWidth, "width", "w", 80, "Wrap text at this width (0 disables wrapping)")
	cmd.Flags().BoolVarP(&showSummary, "summary", "s", false, "List blocks as a table instead of their content")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, doc)
	}

	out := cmd.OutOrStdout()
	if showSummary {
		preview := showWidth
		if preview <= 0 {
			preview = 40
		}
		cli.WriteBlockTable(out, doc, preview/2)
		return nil
	}
	if doc.Title != "" {
		fmt.Fprintf(out, "# %s\n\n", doc.Title)
	}
	for i, rec := range doc.Blocks {
		if rec.Type != files.ColumnsBlockType {
			text, ok := rec.Data["text"].(string)
			if !ok {
				text = fmt.Sprintf("[%s]", rec.Type)
			}
			if showWidth > 0 {
				text = wordwrap.String(text, showWidth)
			}
			fmt.Fprintf(out, "%s\n\n", text)
			continue
		}

		data := document.DecodeColumns(rec.Data)
		if data == nil {
			continue
		}
		fmt.Fprintf(out, "[block %d %s]\n", i, rec.ID)
		fmt.Fprintln(out, cli.FormatColumns(*data, showWidth))
	}
	return nil
}
