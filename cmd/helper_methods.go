package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	logger "github.com/PolarWolf314/pigment/internal/logging"
	"github.com/PolarWolf314/pigment/internal/palette"
	"github.com/PolarWolf314/pigment/internal/ui"
	"github.com/PolarWolf314/pigment/internal/utils"
	"github.com/PolarWolf314/pigment/internal/workflows"
)

// commonFlags are the flags every top-level command carries.
type commonFlags struct {
	verbose bool
	debug   bool
	state   string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "enable debug output")
	cmd.PersistentFlags().StringVar(&f.state, "state", "", "state file holding the settings (default: $PIGMENT_STATE_FILE or <config dir>/pigment/state.toml)")
}

func (f *commonFlags) logger() logger.Logger {
	return logger.Logger{Verbose: f.verbose, Debug: f.debug}
}

func (f *commonFlags) reset() {
	*f = commonFlags{}
}

// openSession loads the settings store, logging any fallback at info level.
func openSession(ctx context.Context, l logger.Logger, statePath string) (*workflows.Session, error) {
	session, err := workflows.Open(ctx, workflows.OpenOptions{StatePath: statePath, Logger: l})
	if err != nil {
		return nil, err
	}
	l.Infof("Using state file %s (%s)", session.StatePath, session.Report.Outcome)
	for _, fe := range session.Report.FieldErrors {
		l.Infof("Stored %s was unusable and took its default", fe.Tag.Name())
	}
	if session.Report.Upgraded {
		l.Infof("Upgraded stored settings from version %d", session.Report.Version)
	}
	return session, nil
}

// parseTheme accepts an empty theme as light.
func parseTheme(s string) (palette.Theme, error) {
	if s == "" {
		return palette.Light, nil
	}
	return palette.ParseTheme(s)
}

// startSpinner creates and starts a spinner with the given message when
// stdout is a terminal and not in verbose or debug mode. The returned cleanup
// stops it and prints FinalMSG, which does not need a trailing newline.
func startSpinner(message string, l logger.Logger) (*spinner.Spinner, func()) {
	quiet := !l.Verbose && !l.Debug && utils.IsTerminal(os.Stdout)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		l.Infof("%s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
