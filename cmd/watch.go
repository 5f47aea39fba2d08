package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	logger "github.com/PolarWolf314/pigment/internal/logging"
	"github.com/PolarWolf314/pigment/internal/ui"
	"github.com/PolarWolf314/pigment/internal/workflows"
)

var (
	watchFlags  commonFlags
	watchTheme  string
	watchSource string
	WatchLogger logger.Logger

	// WatchCmd is the top-level watch command.
	WatchCmd = &cobra.Command{
		Use:   "watch [path]",
		Short: "Print the accent color whenever settings change",
		Long: `Prints the accent color for a workspace, then prints it again every time
another pigment process changes the stored settings. Stop with Ctrl-C.

Examples:
  # Follow the color of the current workspace
  pigment watch

  # In another terminal, the watcher reacts immediately
  pigment config set dark-colors "#0f766e #2563eb"`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			WatchLogger = watchFlags.logger()
			WatchLogger.Debugf("Initializing watch command with verbose=%t, debug=%t", watchFlags.verbose, watchFlags.debug)
		},
		RunE: runWatch,
	}
)

func init() {
	watchFlags.register(WatchCmd)
	WatchCmd.Flags().StringVarP(&watchTheme, "theme", "t", "light", "palette theme: light or dark")
	WatchCmd.Flags().StringVarP(&watchSource, "source", "s", "", "identity source overriding the stored hash-source")
}

// resetWatchState resets the watch command's global state for testing.
func resetWatchState() {
	watchFlags.reset()
	watchTheme = "light"
	watchSource = ""
	WatchCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
}

func runWatch(cmd *cobra.Command, args []string) error {
	WatchLogger.Infof("Starting watch command")

	opts, ok := colorOptions(args, watchTheme, watchSource)
	if !ok {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	session, err := openSession(ctx, WatchLogger, watchFlags.state)
	if err != nil {
		return WatchLogger.ErrorfAndReturn("Failed to open settings: %v", err)
	}
	fmt.Println(ui.Info.Sprint("→") + " Watching " + ui.Path.Sprint(session.StatePath) + " " + ui.Muted.Sprint("Ctrl-C to stop"))

	err = workflows.Watch(ctx, session.Store, opts, func(c workflows.ColorChange) {
		stamp := time.Now().Format("15:04:05")
		if c.Err != nil {
			fmt.Println(ui.Muted.Sprint(stamp) + " " + ui.Error.Sprint("✗") + " " + c.Err.Error())
			return
		}
		if c.Report != nil {
			WatchLogger.Infof("Settings reloaded (%s)", c.Report.Outcome)
		}
		fmt.Printf("%s %s %s %s\n", ui.Muted.Sprint(stamp), ui.Swatch(c.Result.Accent, c.Result.Identity), c.Result.Accent.Hex(), c.Result.Inactive)
	})
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, perrors.ErrPathNotFound):
		fmt.Println(ui.Error.Sprint("✗") + " Path " + ui.Path.Sprint(opts.Path) + " does not exist")
		return nil
	default:
		return WatchLogger.ErrorfAndReturn("Failed to watch settings: %v", err)
	}
}
