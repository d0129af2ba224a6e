package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lvyanru/startupradar/internal/cli/ui"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "funding totals per industry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()

		funding, err := s.client.FundingByIndustry(ctx)
		if err != nil {
			return fmt.Errorf("failed to get funding by industry: %w", err)
		}
		return s.render(funding, func() {
			table := ui.NewTable("INDUSTRY", "FUNDING", "DEALS")
			for _, f := range funding {
				table.Append(f.Industry, ui.FormatAmount(f.TotalFunding), strconv.Itoa(f.DealCount))
			}
			fmt.Fprint(ui.Out, table.String())
		})
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "headline figures of the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()

		summary, err := s.client.Summary(ctx)
		if err != nil {
			return fmt.Errorf("failed to get summary: %w", err)
		}
		return s.render(summary, func() {
			content := fmt.Sprintf(
				"Startups        %s\nFunding rounds  %s\nInvestors       %s\nTotal funding   %s\nAverage round   %s\nTop industry    %s (%s)",
				ui.FormatCount(summary.StartupCount),
				ui.FormatCount(summary.FundingRoundCount),
				ui.FormatCount(summary.InvestorCount),
				ui.FormatAmount(summary.TotalFunding),
				ui.FormatAmount(summary.AverageRound),
				summary.TopIndustry,
				ui.FormatAmount(summary.TopIndustryAmount),
			)
			ui.PrintSuccessBox("StartupRadar", content)
		})
	},
}
