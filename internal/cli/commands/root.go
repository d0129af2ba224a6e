package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvyanru/startupradar/internal/cli/client"
	"github.com/lvyanru/startupradar/internal/cli/config"
	"github.com/lvyanru/startupradar/internal/cli/ui"
)

const version = "0.1.0"

const requestTimeout = 30 * time.Second

var (
	serverFlag string
	outputFlag string
)

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "radarctl",
	Short:   "StartupRadar CLI",
	Version: version,
	Long: `A command-line client for the StartupRadar API. Browse startups, funding
rounds and investors, view dashboard figures and inspect funding CSV files
locally before serving them.`,
	Example: `  # Point the CLI at a server
  $ radarctl configure

  # Largest funding rounds in Fintech
  $ radarctl rounds list --industry Fintech --sort amount --order desc

  # A startup and all of its rounds
  $ radarctl startups get 12

  # Check a CSV file without a server
  $ radarctl inspect data/startup_funding.csv`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(fmt.Sprintf("radarctl version %s\n", version))
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "API server address (overrides the configured one)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table, json or yaml")

	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(startupsCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(investorsCmd)
	rootCmd.AddCommand(industriesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(reloadCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableInheritedFlags}}` + ui.Styles.Bold.Render("GLOBAL OPTIONS") + `
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// session is what every remote command needs: a client and the output format
type session struct {
	client *client.APIClient
	output string
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	server := cfg.Server
	if serverFlag != "" {
		server = serverFlag
	}
	output := cfg.Output
	if outputFlag != "" {
		output = outputFlag
	}
	if !ui.ValidFormat(output) {
		return nil, fmt.Errorf("unsupported output format %q, use table, json or yaml", output)
	}

	apiClient, err := client.NewAPIClient(server)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &session{client: apiClient, output: output}, nil
}

// render prints v in the requested machine format, or calls table otherwise
func (s *session) render(v interface{}, table func()) error {
	if s.output == ui.FormatTable {
		table()
		return nil
	}
	return ui.Encode(ui.Out, s.output, v)
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
