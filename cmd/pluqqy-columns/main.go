package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-columns/cmd/commands"
	"github.com/pluqqy/pluqqy-columns/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath string
	quiet      bool
	noColor    bool
	output     string
)

var rootCmd = &cobra.Command{
	Use:   "pluqqy-columns",
	Short: "Terminal editor for documents with multi-column blocks",
	Long: `Pluqqy Columns edits block documents stored as YAML or JSON. A multi-column
block holds two or three columns, each with its own nested editor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Pluqqy Columns",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Pluqqy Columns version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default ~/.config/pluqqy-columns/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable symbols in output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewColumnsCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
