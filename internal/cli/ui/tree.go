package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/lvyanru/startupradar/internal/cli/types"
)

// RenderStartupTree renders a startup with its funding rounds as children
func RenderStartupTree(s *types.Startup, rounds []types.FundingRound) string {
	label := fmt.Sprintf("%s %s", Styles.Name.Render(s.Name), Styles.Muted.Render(fmt.Sprintf("#%d", s.ID)))
	root := tree.Root(label)

	root.Child(fmt.Sprintf("%s %s", Styles.Muted.Render("industry:"), s.Industry))
	root.Child(fmt.Sprintf("%s %s", Styles.Muted.Render("location:"), s.Location))

	if len(rounds) == 0 {
		root.Child(Styles.Muted.Render("(no funding rounds)"))
		return root.String()
	}

	var total float64
	roundsNode := tree.Root(Styles.Bold.Render(fmt.Sprintf("funding rounds (%d)", len(rounds))))
	for _, r := range rounds {
		total += r.Amount
		roundsNode.Child(fmt.Sprintf("%s  %-18s %s  %s",
			r.Date,
			r.RoundType,
			Styles.Amount.Render(FormatAmount(r.Amount)),
			Styles.Muted.Render(FormatList(r.LeadInvestors)),
		))
	}
	root.Child(roundsNode)
	root.Child(fmt.Sprintf("%s %s", Styles.Muted.Render("total raised:"), Styles.Amount.Render(FormatAmount(total))))
	return root.String()
}

// RenderInvestorTree renders an investor with its notable investments
func RenderInvestorTree(inv *types.Investor) string {
	root := tree.Root(fmt.Sprintf("%s %s", Styles.Name.Render(inv.Name), Styles.Muted.Render(fmt.Sprintf("#%d", inv.ID))))
	root.Child(inv.Profile)
	root.Child(fmt.Sprintf("%s %s", Styles.Muted.Render("total invested:"), Styles.Amount.Render(FormatAmount(inv.TotalInvestments))))

	portfolio := tree.Root(Styles.Bold.Render(fmt.Sprintf("notable investments (%d)", len(inv.NotableInvestments))))
	for _, name := range inv.NotableInvestments {
		portfolio.Child(name)
	}
	root.Child(portfolio)
	return root.String()
}
