package entity

// Startup represents a company derived from the funding dataset
type Startup struct {
	ID          int
	Name        string
	Description string
	Industry    string
	Location    string
	Logo        string
}

// FundingRound represents one funding event of a startup
type FundingRound struct {
	ID            int
	StartupID     int
	RoundType     string
	Amount        float64
	Date          string
	LeadInvestors []string
	Line          int // source line the round was built from
}

// Investor represents an investor aggregated over all rows naming it
type Investor struct {
	ID                 int
	Name               string
	Profile            string
	TotalInvestments   float64
	NotableInvestments []string
}

// StartupWithFunding joins a startup with its funding rounds
type StartupWithFunding struct {
	Startup
	FundingRounds []FundingRound
}

// IndustryFunding is the funding total of one industry
type IndustryFunding struct {
	Industry     string
	TotalFunding float64
	DealCount    int
}

// Trend is the funding total of one category in one month
type Trend struct {
	ID           int
	Category     string
	Period       string // YYYY-MM
	TotalFunding float64
	DealCount    int
}

// Summary holds the headline figures of the dashboard
type Summary struct {
	StartupCount      int
	FundingRoundCount int
	InvestorCount     int
	TotalFunding      float64
	AverageRound      float64
	TopIndustry       string
	TopIndustryAmount float64
}
