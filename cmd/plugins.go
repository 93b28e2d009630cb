package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barisgit/fluxstyle/config"
	"github.com/barisgit/fluxstyle/internal/ui"
)

func PluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the plugins a configuration may activate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.PluginTable(config.DefaultPlugins().List()))
			return nil
		},
	}
}
