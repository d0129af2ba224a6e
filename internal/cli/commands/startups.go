package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lvyanru/startupradar/internal/cli/types"
	"github.com/lvyanru/startupradar/internal/cli/ui"
)

var startupsCmd = &cobra.Command{
	Use:     "startups",
	Aliases: []string{"startup"},
	Short:   "list and show startups",
}

var startupListParams types.ListParams

var startupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "list startups",
	Example: `  $ radarctl startups list --search pay
  $ radarctl startups list --sort industry --limit 50 -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()

		page, err := s.client.ListStartups(ctx, startupListParams)
		if err != nil {
			return fmt.Errorf("failed to list startups: %w", err)
		}

		return s.render(page, func() {
			table := ui.NewTable("ID", "NAME", "INDUSTRY", "LOCATION")
			for _, st := range page.Data {
				table.Append(strconv.Itoa(st.ID), st.Name, st.Industry, st.Location)
			}
			fmt.Fprint(ui.Out, table.String())
			printPageFooter(len(page.Data), page.Total, startupListParams)
		})
	},
}

var startupsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "show a startup and its funding rounds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()

		startup, err := s.client.GetStartup(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get startup %d: %w", id, err)
		}
		rounds, err := s.client.StartupRounds(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list rounds of startup %d: %w", id, err)
		}

		view := types.StartupWithFunding{StartupResponse: *startup, FundingRounds: rounds}
		return s.render(view, func() {
			fmt.Fprintln(ui.Out, ui.RenderStartupTree(startup, rounds))
		})
	},
}

func init() {
	addListFlags(startupsListCmd, &startupListParams, "sort by name, industry or location")
	startupsListCmd.Flags().StringVarP(&startupListParams.Search, "search", "q", "", "case-insensitive name filter")

	startupsCmd.AddCommand(startupsListCmd)
	startupsCmd.AddCommand(startupsGetCmd)
}

func addListFlags(cmd *cobra.Command, p *types.ListParams, sortHelp string) {
	cmd.Flags().IntVarP(&p.Page, "page", "p", 1, "page number")
	cmd.Flags().IntVarP(&p.Limit, "limit", "l", 20, "page size (max 100)")
	cmd.Flags().StringVar(&p.Sort, "sort", "", sortHelp)
	cmd.Flags().StringVar(&p.Order, "order", "", "asc or desc")
}

func printPageFooter(shown, total int, p types.ListParams) {
	if total == 0 {
		fmt.Fprintln(ui.Out, ui.Styles.Muted.Render("no results"))
		return
	}
	fmt.Fprintln(ui.Out, ui.Styles.Muted.Render(
		fmt.Sprintf("page %d, showing %d of %s", p.Page, shown, ui.FormatCount(total)),
	))
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q, expected a positive integer", raw)
	}
	return id, nil
}
