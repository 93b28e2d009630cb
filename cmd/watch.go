package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/barisgit/fluxstyle/config"
	"github.com/barisgit/fluxstyle/internal/ui"
	"github.com/barisgit/fluxstyle/internal/watch"
)

func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [config-file]",
		Short: "Revalidate the configuration on every change",
		Long:  "Watch the project root and reload the style configuration whenever its document is written, created or removed",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}

	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before reloading after a change")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	debounce, _ := cmd.Flags().GetDuration("debounce")

	options := loadOptions(cmd, args)
	options.WarnOnIssues = false
	cm := config.NewConfigManager(options)

	w := watch.New(options, func(cfg *config.StyleConfig, err error) {
		stamp := time.Now().Format("15:04:05")
		if err != nil {
			fmt.Fprintf(out, "[%s] %s\n", stamp, ui.Fail("%v", err))
			return
		}
		info := config.InfoFor(cfg, options.Path, cm.Plugins())
		fmt.Fprintf(out, "[%s] %s\n", stamp, ui.Success("Configuration is valid (%d plugins, %d animations)", len(info.Plugins), len(info.Animations)))
		if len(info.Issues) > 0 {
			fmt.Fprintln(out, ui.Issues(info.Issues))
		}
	})
	w.SetDebounce(debounce)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "👀 Watching %s for configuration changes (Ctrl+C to stop)\n", w.Dir())
	return w.Run(ctx)
}
