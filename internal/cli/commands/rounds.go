package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lvyanru/startupradar/internal/cli/types"
	"github.com/lvyanru/startupradar/internal/cli/ui"
)

var roundsCmd = &cobra.Command{
	Use:     "rounds",
	Aliases: []string{"round"},
	Short:   "list funding rounds",
}

var (
	roundParams types.RoundParams
	latestCount int
)

var roundsListCmd = &cobra.Command{
	Use:   "list",
	Short: "list funding rounds with filters",
	Example: `  $ radarctl rounds list --industry Fintech --industry E-Commerce
  $ radarctl rounds list --type Seed --min 1000000 --sort amount --order desc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()

		page, err := s.client.ListRounds(ctx, roundParams)
		if err != nil {
			return fmt.Errorf("failed to list funding rounds: %w", err)
		}
		return s.render(page, func() {
			printRounds(page.Data)
			printPageFooter(len(page.Data), page.Total, roundParams.ListParams)
		})
	},
}

var roundsLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "show the most recent funding rounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()

		rounds, err := s.client.LatestRounds(ctx, latestCount)
		if err != nil {
			return fmt.Errorf("failed to list latest rounds: %w", err)
		}
		return s.render(rounds, func() { printRounds(rounds) })
	},
}

func init() {
	addListFlags(roundsListCmd, &roundParams.ListParams, "sort by amount or date")
	roundsListCmd.Flags().StringSliceVar(&roundParams.Industries, "industry", nil, "industry filter, repeatable")
	roundsListCmd.Flags().StringSliceVar(&roundParams.RoundTypes, "type", nil, "round type filter, repeatable")
	roundsListCmd.Flags().StringVar(&roundParams.MinAmount, "min", "", "minimum amount in USD")
	roundsListCmd.Flags().StringVar(&roundParams.MaxAmount, "max", "", "maximum amount in USD")

	roundsLatestCmd.Flags().IntVarP(&latestCount, "count", "n", 10, "number of rounds")

	roundsCmd.AddCommand(roundsListCmd)
	roundsCmd.AddCommand(roundsLatestCmd)
}

func printRounds(rounds []types.FundingRound) {
	table := ui.NewTable("ID", "DATE", "STARTUP", "TYPE", "AMOUNT", "LEAD INVESTORS")
	for _, r := range rounds {
		table.Append(
			strconv.Itoa(r.ID),
			r.Date,
			"#"+strconv.Itoa(r.StartupID),
			r.RoundType,
			ui.FormatAmount(r.Amount),
			ui.FormatList(r.LeadInvestors),
		)
	}
	fmt.Fprint(ui.Out, table.String())
}
