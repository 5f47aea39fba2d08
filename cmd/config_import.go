package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/ui"
	"github.com/PolarWolf314/pigment/internal/utils"
	"github.com/PolarWolf314/pigment/internal/workflows"
)

func init() {
	ConfigCmd.AddCommand(configImportCmd)
}

var configImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Replace settings from a TOML file",
	Long: `Replaces every setting with those in a TOML file written by export.
Keys that are missing or invalid take their defaults. Use - to read stdin.

Examples:
  pigment config import ~/dotfiles/pigment.toml
  cat pigment.toml | pigment config import -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config import command")

		opts := workflows.ImportOptions{Path: args[0]}
		if args[0] == "-" {
			data, err := utils.ReadStdin()
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to read settings: %v", err)
			}
			opts.Data = data
		} else if !utils.PathExists(args[0]) {
			fmt.Println(ui.Error.Sprint("✗") + " File " + ui.Path.Sprint(args[0]) + " does not exist")
			return nil
		}

		ctx := cmd.Context()
		session, err := openSession(ctx, ConfigLogger, configFlags.state)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		spinner, cleanup := startSpinner("Importing settings...", ConfigLogger)
		defer cleanup()

		result, err := workflows.ImportConfig(ctx, session.Store, opts)
		if err != nil {
			if errors.Is(err, perrors.ErrStorageWrite) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Imported settings could not be saved"
				return ConfigLogger.ErrorfAndReturn("Failed to save settings: %v", err)
			}
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to import settings"
			return ConfigLogger.ErrorfAndReturn("%v", err)
		}

		var msg strings.Builder
		for _, fe := range result.FieldErrors {
			msg.WriteString(ui.Warning.Sprint("⚠") + " " + ui.Highlight.Sprint(fe.Tag.Name()) + " was invalid and took its default: " + fe.Err.Error() + "\n")
		}
		msg.WriteString(ui.Success.Sprint("✓") + " Settings imported")
		spinner.FinalMSG = msg.String()
		return nil
	},
}
