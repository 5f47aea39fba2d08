package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/identity"
	logger "github.com/PolarWolf314/pigment/internal/logging"
	"github.com/PolarWolf314/pigment/internal/ui"
	"github.com/PolarWolf314/pigment/internal/workflows"
)

var (
	colorFlags  commonFlags
	colorTheme  string
	colorSource string
	colorJSON   bool
	ColorLogger logger.Logger

	// ColorCmd is the top-level color command.
	ColorCmd = &cobra.Command{
		Use:   "color [path]",
		Short: "Show the accent color for a workspace",
		Long: `Derives the accent color for the workspace containing path.

The workspace root is the nearest parent directory holding one of the
configured project indicators. Its identity (name, path, name with the
day of month, or either with the Git branch) is hashed onto the current
theme's palette, so the same workspace always gets the same color.

Examples:
  # Color for the current directory
  pigment color

  # Color for another workspace in the dark theme
  pigment color ~/src/api --theme dark

  # Hash the full path with the current branch, as JSON
  pigment color --source path-branch --json`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ColorLogger = colorFlags.logger()
			ColorLogger.Debugf("Initializing color command with verbose=%t, debug=%t", colorFlags.verbose, colorFlags.debug)
		},
		RunE: runColor,
	}
)

func init() {
	colorFlags.register(ColorCmd)
	ColorCmd.Flags().StringVarP(&colorTheme, "theme", "t", "light", "palette theme: light or dark")
	ColorCmd.Flags().StringVarP(&colorSource, "source", "s", "", "identity source overriding the stored hash-source")
	ColorCmd.Flags().BoolVar(&colorJSON, "json", false, "output in JSON format")
}

// resetColorState resets the color command's global state for testing.
func resetColorState() {
	colorFlags.reset()
	colorTheme = "light"
	colorSource = ""
	colorJSON = false
	ColorCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
}

func runColor(cmd *cobra.Command, args []string) error {
	ColorLogger.Infof("Starting color command")
	ColorLogger.Debugf("Flags: theme=%s, source=%s, json=%t", colorTheme, colorSource, colorJSON)

	opts, ok := colorOptions(args, colorTheme, colorSource)
	if !ok {
		return nil
	}

	ctx := cmd.Context()
	session, err := openSession(ctx, ColorLogger, colorFlags.state)
	if err != nil {
		return ColorLogger.ErrorfAndReturn("Failed to open settings: %v", err)
	}

	result, err := workflows.Color(ctx, session.Store, opts)
	if err != nil {
		if errors.Is(err, perrors.ErrPathNotFound) {
			fmt.Println(ui.Error.Sprint("✗") + " Path " + ui.Path.Sprint(opts.Path) + " does not exist")
			return nil
		}
		return ColorLogger.ErrorfAndReturn("Failed to derive color: %v", err)
	}
	ColorLogger.Infof("Workspace root %s hashed as %q (k=%.6f)", result.Root, result.Identity, result.Scalar)

	if colorJSON {
		output, err := json.MarshalIndent(newColorOutput(result), "", "  ")
		if err != nil {
			return ColorLogger.ErrorfAndReturn("Failed to marshal color to JSON: %v", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printColorResult(result)
	return nil
}

// colorOptions parses the shared color and watch arguments, printing a
// message and reporting false when they are invalid.
func colorOptions(args []string, theme, source string) (workflows.ColorOptions, bool) {
	var opts workflows.ColorOptions
	if len(args) > 0 {
		opts.Path = args[0]
	}

	t, err := parseTheme(theme)
	if err != nil {
		fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
		return opts, false
	}
	opts.Theme = t

	if source != "" {
		s, err := identity.ParseSource(source)
		if err != nil {
			fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
			return opts, false
		}
		opts.Source = s
	}
	return opts, true
}

type colorOutput struct {
	Root          string  `json:"root"`
	Identity      string  `json:"identity"`
	Source        string  `json:"source"`
	Theme         string  `json:"theme"`
	Scalar        float64 `json:"scalar"`
	Accent        string  `json:"accent"`
	Inactive      string  `json:"inactive"`
	Foreground    string  `json:"foreground"`
	GradientStart string  `json:"gradient_start"`
	GradientEnd   string  `json:"gradient_end"`
}

func newColorOutput(r *workflows.ColorResult) colorOutput {
	return colorOutput{
		Root:          r.Root,
		Identity:      r.Identity,
		Source:        r.Source.String(),
		Theme:         r.Theme.String(),
		Scalar:        r.Scalar,
		Accent:        r.Accent.Hex(),
		Inactive:      r.Inactive,
		Foreground:    r.Foreground.Hex(),
		GradientStart: r.GradientStart.Hex(),
		GradientEnd:   r.GradientEnd.Hex(),
	}
}

func printColorResult(r *workflows.ColorResult) {
	fmt.Printf("%s %s\n", ui.Swatch(r.Accent, r.Identity), r.Accent.Hex())
	fmt.Println()
	fmt.Printf("  %-11s %s\n", "Workspace:", ui.Path.Sprint(r.Root))
	fmt.Printf("  %-11s %s %s\n", "Identity:", ui.Highlight.Sprint(r.Identity), ui.Muted.Sprint(r.Source))
	fmt.Printf("  %-11s %s\n", "Theme:", r.Theme)
	fmt.Printf("  %-11s %s\n", "Accent:", ui.Tinted(r.Accent, r.Accent.Hex()))
	fmt.Printf("  %-11s %s\n", "Inactive:", r.Inactive)
	fmt.Printf("  %-11s %s → %s\n", "Gradient:", r.GradientStart.Hex(), r.GradientEnd.Hex())
}
