package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barisgit/fluxstyle/config"
	"github.com/barisgit/fluxstyle/internal/logging"
)

// NewRootCmd builds the fluxstyle command tree.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fluxstyle",
		Short:         "fluxstyle - style configuration loader and validator",
		Long:          `fluxstyle locates, validates and formats the style configuration document read by the CSS build tool.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := handleWorkDir(); err != nil {
				return err
			}
			debug, _ := cmd.Flags().GetBool("debug")
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.New(cmd.ErrOrStderr(), debug)))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("dir", ".", "Project root to search for the style configuration")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(ValidateCmd())
	rootCmd.AddCommand(ShowCmd())
	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(FmtCmd())
	rootCmd.AddCommand(WatchCmd())
	rootCmd.AddCommand(PluginsCmd())

	return rootCmd
}

// handleWorkDir changes to FLUXSTYLE_WORK_DIR if set
func handleWorkDir() error {
	workDir := os.Getenv("FLUXSTYLE_WORK_DIR")
	if workDir != "" {
		if err := os.Chdir(workDir); err != nil {
			return fmt.Errorf("failed to change to work directory %s: %w", workDir, err)
		}
	}
	return nil
}

// getConfigPath returns the explicit document path: the argument, then
// FLUXSTYLE_CONFIG. Empty means search the project root.
func getConfigPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return os.Getenv("FLUXSTYLE_CONFIG")
}

// loadOptions builds the load options shared by every command that reads the document.
func loadOptions(cmd *cobra.Command, args []string) config.ConfigLoadOptions {
	dir, _ := cmd.Flags().GetString("dir")

	options := config.DefaultLoadOptions()
	options.Path = getConfigPath(args)
	options.Dir = dir
	options.Logger = logging.FromContext(cmd.Context())
	return options
}
