package ingest

import (
	"fmt"

	"github.com/lvyanru/startupradar/internal/domain/entity"
)

const (
	defaultIndustry  = "Uncategorized"
	defaultLocation  = "Unknown"
	defaultRoundType = "Unknown"
)

// StartupLogo is the placeholder logo every ingested startup gets
const StartupLogo = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="lucide lucide-bot-icon lucide-bot"><path d="M12 8V4H8"/><rect width="16" height="12" x="4" y="8" rx="2"/><path d="M2 14h2"/><path d="M20 14h2"/><path d="M15 13v2"/><path d="M9 13v2"/></svg>`

// BuildStartups deduplicates rows by startup name. Ids start at 1 and follow
// the order in which names first appear. Rows without a name are skipped.
func BuildStartups(rows []entity.Row) ([]entity.Startup, []entity.Skip) {
	var (
		startups []entity.Startup
		skips    []entity.Skip
	)
	seen := make(map[string]struct{})

	for _, row := range rows {
		if row.Startup == "" {
			skips = append(skips, entity.Skip{Line: row.Line, Stage: entity.StageStartup, Reason: entity.ReasonMissingStartup})
			continue
		}
		if _, ok := seen[row.Startup]; ok {
			continue
		}
		seen[row.Startup] = struct{}{}

		startups = append(startups, entity.Startup{
			ID:          len(startups) + 1,
			Name:        row.Startup,
			Description: fmt.Sprintf("%s is a company in the %s industry.", row.Startup, row.IndustryVertical),
			Industry:    orDefault(row.IndustryVertical, defaultIndustry),
			Location:    orDefault(row.City, defaultLocation),
			Logo:        StartupLogo,
		})
	}

	return startups, skips
}

// BuildFundingRounds creates one round per row that names a startup and a
// date. The startup is resolved by exact name; rows that do not resolve are
// dropped. Each round carries at most the one investor the row names.
func BuildFundingRounds(rows []entity.Row, startups []entity.Startup, conv Converter) ([]entity.FundingRound, []entity.Skip) {
	var (
		rounds []entity.FundingRound
		skips  []entity.Skip
	)
	byName := make(map[string]int, len(startups))
	for _, s := range startups {
		byName[s.Name] = s.ID
	}

	for _, row := range rows {
		var reason entity.SkipReason
		switch {
		case row.Startup == "":
			reason = entity.ReasonMissingStartup
		case row.Date == "":
			reason = entity.ReasonMissingDate
		}
		if reason != "" {
			skips = append(skips, entity.Skip{Line: row.Line, Stage: entity.StageFundingRound, Reason: reason})
			continue
		}

		startupID, ok := byName[row.Startup]
		if !ok {
			skips = append(skips, entity.Skip{Line: row.Line, Stage: entity.StageFundingRound, Reason: entity.ReasonUnresolvedStartup})
			continue
		}

		amount, _ := conv.Convert(row.Amount)

		leads := []string{}
		if row.InvestorsName != "" {
			leads = append(leads, row.InvestorsName)
		}

		rounds = append(rounds, entity.FundingRound{
			ID:            len(rounds) + 1,
			StartupID:     startupID,
			RoundType:     orDefault(row.InvestmentType, defaultRoundType),
			Amount:        amount,
			Date:          row.Date,
			LeadInvestors: leads,
			Line:          row.Line,
		})
	}

	return rounds, skips
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
