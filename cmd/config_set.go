package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/pigment/internal/configs"
	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/ui"
	"github.com/PolarWolf314/pigment/internal/workflows"
)

func init() {
	ConfigCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Change a setting",
	Long: `Validates and saves a single setting.

Settings:
  show-suggestion       true or false
  stylesheet-path       path to an existing stylesheet, or "" to clear
  gradient-brightness   integer 0-100
  gradient-darkness     integer 0-100
  hash-source           name, path, name-day, name-branch or path-branch
  project-indicators    comma-separated file names, e.g. ".git,go.mod"
  light-colors          space-separated colors, e.g. "#ff0000 rgb(0,0,255)"
  dark-colors           space-separated colors

Examples:
  pigment config set gradient-brightness 70
  pigment config set project-indicators ".git,package.json,go.mod"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, value := args[0], args[1]
		ConfigLogger.Infof("Starting config set command")
		ConfigLogger.Debugf("Setting %s to %q", name, value)

		ctx := cmd.Context()
		session, err := openSession(ctx, ConfigLogger, configFlags.state)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		spinner, cleanup := startSpinner("Saving setting...", ConfigLogger)
		defer cleanup()

		result, err := workflows.SetConfig(ctx, session.Store, name, value)
		switch {
		case err == nil:
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Set " + ui.Highlight.Sprint(result.Name) + " to " + displayValue(result.Value)
			return nil

		case errors.Is(err, perrors.ErrStorageWrite):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to save " + ui.Highlight.Sprint(name)
			return ConfigLogger.ErrorfAndReturn("Failed to save settings: %v", err)

		case errors.Is(err, perrors.ErrUnknownSetting):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Unknown setting " + ui.Highlight.Sprint(name) + "\n" +
				ui.Info.Sprint("→") + " Settable: " + strings.Join(settableNames(), ", ")
			return nil

		default:
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Invalid value for " + ui.Highlight.Sprint(name) + ": " + err.Error()
			return nil
		}
	},
}

func settableNames() []string {
	var names []string
	for _, tag := range configs.Tags() {
		if tag != configs.TagVersion {
			names = append(names, tag.Name())
		}
	}
	return names
}

func displayValue(v string) string {
	if v == "" {
		return ui.Muted.Sprint("unset")
	}
	return ui.Highlight.Sprint(v)
}
