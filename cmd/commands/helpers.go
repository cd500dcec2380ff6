package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-columns/internal/cli"
)

// commandContext builds the command context from the persistent --config flag.
// Commands run on their own in tests, where the flag is not registered.
func commandContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return cli.NewCommandContext(configPath)
}

func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return string(cli.FormatText)
	}
	return format
}
