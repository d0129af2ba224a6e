package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/lvyanru/startupradar/internal/cli/config"
	"github.com/lvyanru/startupradar/internal/cli/ui"
)

// configureCmd stores the server address and default output format
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "set the API server and default output format",
	Long: `Interactively set the API server address and the default output format.

Settings are stored in ~/.radarctl/config.json (or $RADARCTL_CONFIG).`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	answers := struct {
		Server string
		Output string
	}{}
	questions := []*survey.Question{
		{
			Name:     "server",
			Prompt:   &survey.Input{Message: "API server:", Default: cfg.Server},
			Validate: survey.Required,
		},
		{
			Name: "output",
			Prompt: &survey.Select{
				Message: "Default output:",
				Options: []string{ui.FormatTable, ui.FormatJSON, ui.FormatYAML},
				Default: cfg.Output,
			},
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	cfg.Server = answers.Server
	cfg.Output = answers.Output
	if err := cfg.Save(); err != nil {
		return err
	}

	path, _ := config.GetConfigPath()
	ui.PrintSuccess("Configuration saved to %s", path)
	return nil
}
