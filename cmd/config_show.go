package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/pigment/internal/ui"
	"github.com/PolarWolf314/pigment/internal/workflows"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current settings",
	Long: `Displays every stored setting. Values still at their default are marked.

Examples:
  pigment config show
  pigment config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")

		ctx := cmd.Context()
		session, err := openSession(ctx, ConfigLogger, configFlags.state)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to open settings: %v", err)
		}

		view, err := workflows.ShowConfig(ctx, session.Store)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to read settings: %v", err)
		}

		if configShowJSON {
			ConfigLogger.Debugf("Outputting settings as JSON")
			output, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to marshal settings to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		fmt.Println(ui.Info.Sprint("Settings") + " (" + ui.Path.Sprint(session.StatePath) + "):")
		fmt.Println()
		for _, s := range view.Settings {
			value := s.Value
			if value == "" {
				value = ui.Muted.Sprint("unset")
			}
			if s.Default {
				value += " " + ui.Muted.Sprint("default")
			}
			fmt.Printf("  %-20s %s\n", s.Name, value)
		}
		return nil
	},
}
