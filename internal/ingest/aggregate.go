package ingest

import (
	"fmt"

	"github.com/lvyanru/startupradar/internal/domain/entity"
)

// AggregateInvestors folds rows into investors keyed by investor name.
//
// Every row naming both an investor and a startup adds its converted amount
// to the investor total and appends the startup to the notable investments
// unless it is already listed. Malformed amounts count as zero.
func AggregateInvestors(rows []entity.Row, conv Converter) ([]entity.Investor, []entity.Skip) {
	var (
		investors []entity.Investor
		skips     []entity.Skip
	)
	position := make(map[string]int)
	notable := make(map[string]map[string]struct{})

	for _, row := range rows {
		if row.InvestorsName == "" {
			skips = append(skips, entity.Skip{Line: row.Line, Stage: entity.StageInvestor, Reason: entity.ReasonMissingInvestor})
			continue
		}
		if row.Startup == "" {
			skips = append(skips, entity.Skip{Line: row.Line, Stage: entity.StageInvestor, Reason: entity.ReasonMissingStartup})
			continue
		}

		name := row.InvestorsName
		i, ok := position[name]
		if !ok {
			i = len(investors)
			position[name] = i
			notable[name] = make(map[string]struct{})
			investors = append(investors, entity.Investor{
				ID:                 i + 1,
				Name:               name,
				Profile:            fmt.Sprintf("%s is an investment firm focused on %s industries.", name, row.IndustryVertical),
				NotableInvestments: []string{},
			})
		}

		amount, _ := conv.Convert(row.Amount)
		investors[i].TotalInvestments += amount

		if _, dup := notable[name][row.Startup]; !dup {
			notable[name][row.Startup] = struct{}{}
			investors[i].NotableInvestments = append(investors[i].NotableInvestments, row.Startup)
		}
	}

	return investors, skips
}

// amountSkips reports rows whose amount is present but unusable
func amountSkips(rows []entity.Row, conv Converter) []entity.Skip {
	var skips []entity.Skip
	for _, row := range rows {
		if _, ok := conv.Convert(row.Amount); !ok {
			skips = append(skips, entity.Skip{Line: row.Line, Stage: entity.StageAmount, Reason: entity.ReasonInvalidAmount})
		}
	}
	return skips
}
