package entity

import "time"

// Row is one data line of the source file, mapped to named columns
type Row struct {
	Line             int // 1-based line number in the source
	Date             string
	Startup          string
	IndustryVertical string
	SubVertical      string
	City             string
	InvestorsName    string
	InvestmentType   string
	Amount           string // raw value of the CR column
	Year             string
	Month            string
}

// Dataset is the immutable result of one ingestion run
type Dataset struct {
	Source        string
	LoadedAt      time.Time
	Startups      []Startup
	FundingRounds []FundingRound
	Investors     []Investor
	Rows          []Row
	Report        IngestReport
}

// Empty reports whether the dataset holds no rows
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Rows) == 0
}

// SkipStage names the pipeline stage that dropped or defaulted a row
type SkipStage string

const (
	StageStartup      SkipStage = "startup"
	StageFundingRound SkipStage = "funding_round"
	StageInvestor     SkipStage = "investor"
	StageAmount       SkipStage = "amount"
)

// SkipReason explains why a row was dropped or defaulted
type SkipReason string

const (
	ReasonMissingStartup    SkipReason = "missing_startup"
	ReasonMissingDate       SkipReason = "missing_date"
	ReasonUnresolvedStartup SkipReason = "unresolved_startup"
	ReasonMissingInvestor   SkipReason = "missing_investor"
	ReasonInvalidAmount     SkipReason = "invalid_amount"
)

// Skip is the outcome of a row that did not produce a record in some stage
type Skip struct {
	Line   int
	Stage  SkipStage
	Reason SkipReason
}

// IngestReport describes how the source text was turned into a dataset
type IngestReport struct {
	TotalLines     int
	BlankLines     int
	Rows           int
	MissingColumns []string
	Skips          []Skip
	SourceError    string
}

// SkipCounts groups skips by stage and reason, keyed "stage/reason"
func (r IngestReport) SkipCounts() map[string]int {
	counts := make(map[string]int)
	for _, s := range r.Skips {
		counts[string(s.Stage)+"/"+string(s.Reason)]++
	}
	return counts
}
