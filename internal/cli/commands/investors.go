package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lvyanru/startupradar/internal/cli/types"
	"github.com/lvyanru/startupradar/internal/cli/ui"
)

var investorsCmd = &cobra.Command{
	Use:     "investors",
	Aliases: []string{"investor"},
	Short:   "list and show investors",
}

var investorListParams types.ListParams

var investorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "list investors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()

		page, err := s.client.ListInvestors(ctx, investorListParams)
		if err != nil {
			return fmt.Errorf("failed to list investors: %w", err)
		}
		return s.render(page, func() {
			table := ui.NewTable("ID", "NAME", "TOTAL", "DEALS")
			for _, inv := range page.Data {
				table.Append(strconv.Itoa(inv.ID), inv.Name, ui.FormatAmount(inv.TotalInvestments), strconv.Itoa(len(inv.NotableInvestments)))
			}
			fmt.Fprint(ui.Out, table.String())
			printPageFooter(len(page.Data), page.Total, investorListParams)
		})
	},
}

var investorsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "show an investor and its portfolio",
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

		inv, err := s.client.GetInvestor(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get investor %d: %w", id, err)
		}
		return s.render(inv, func() {
			fmt.Fprintln(ui.Out, ui.RenderInvestorTree(inv))
		})
	},
}

func init() {
	addListFlags(investorsListCmd, &investorListParams, "sort by name or total_investments")
	investorsListCmd.Flags().StringVarP(&investorListParams.Search, "search", "q", "", "case-insensitive name filter")

	investorsCmd.AddCommand(investorsListCmd)
	investorsCmd.AddCommand(investorsGetCmd)
}
