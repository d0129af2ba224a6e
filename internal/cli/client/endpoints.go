package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	endpointStartups          = apiV1Prefix + "/startups"
	endpointStartupByID       = apiV1Prefix + "/startups/%d"
	endpointStartupRounds     = apiV1Prefix + "/startups/%d/rounds"
	endpointIndustries        = apiV1Prefix + "/industries"
	endpointRounds            = apiV1Prefix + "/rounds"
	endpointLatestRounds      = apiV1Prefix + "/rounds/latest"
	endpointInvestors         = apiV1Prefix + "/investors"
	endpointInvestorByID      = apiV1Prefix + "/investors/%d"
	endpointFundingByIndustry = apiV1Prefix + "/insights/funding-by-industry"
	endpointSummary           = apiV1Prefix + "/insights/summary"
	endpointDatasetReport     = apiV1Prefix + "/dataset/report"
	endpointDatasetReload     = apiV1Prefix + "/dataset/reload"
)
