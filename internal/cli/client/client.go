package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/startupradar/internal/cli/types"
)

// APIError is a non-2xx answer of the API server
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// APIClient wraps Hertz Client for HTTP communication with API Server
type APIClient struct {
	client *client.Client
	server string
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// Server returns the normalized server URL
func (c *APIClient) Server() string {
	return c.server
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// do sends one request and decodes the JSON answer into out
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	uri := c.server + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	req.SetMethod(method)
	req.SetRequestURI(uri)
	req.Header.Set("Accept", "application/json")

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		apiErr := &APIError{Status: status}
		var body types.APIResponse[struct{}]
		if err := sonic.Unmarshal(resp.Body(), &body); err == nil {
			apiErr.Code, apiErr.Message = body.Code, body.Message
		}
		return apiErr
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func listQuery(p types.ListParams) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Order != "" {
		q.Set("order", p.Order)
	}
	if p.Search != "" {
		q.Set("q", p.Search)
	}
	return q
}

// ListStartups lists startups
func (c *APIClient) ListStartups(ctx context.Context, p types.ListParams) (*types.PageResponse[types.Startup], error) {
	var out types.PageResponse[types.Startup]
	if err := c.do(ctx, consts.MethodGet, endpointStartups, listQuery(p), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStartup fetches one startup
func (c *APIClient) GetStartup(ctx context.Context, id int) (*types.Startup, error) {
	var out types.APIResponse[types.Startup]
	if err := c.do(ctx, consts.MethodGet, fmt.Sprintf(endpointStartupByID, id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// StartupRounds lists the funding rounds of a startup
func (c *APIClient) StartupRounds(ctx context.Context, id int) ([]types.FundingRound, error) {
	var out types.PageResponse[types.FundingRound]
	if err := c.do(ctx, consts.MethodGet, fmt.Sprintf(endpointStartupRounds, id), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Industries lists the distinct industries
func (c *APIClient) Industries(ctx context.Context) ([]string, error) {
	var out types.PageResponse[string]
	if err := c.do(ctx, consts.MethodGet, endpointIndustries, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListRounds lists funding rounds with filters
func (c *APIClient) ListRounds(ctx context.Context, p types.RoundParams) (*types.PageResponse[types.FundingRound], error) {
	q := listQuery(p.ListParams)
	for _, industry := range p.Industries {
		q.Add("industry", industry)
	}
	for _, roundType := range p.RoundTypes {
		q.Add("round_type", roundType)
	}
	if p.MinAmount != "" {
		q.Set("min_amount", p.MinAmount)
	}
	if p.MaxAmount != "" {
		q.Set("max_amount", p.MaxAmount)
	}

	var out types.PageResponse[types.FundingRound]
	if err := c.do(ctx, consts.MethodGet, endpointRounds, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestRounds lists the n most recent funding rounds
func (c *APIClient) LatestRounds(ctx context.Context, n int) ([]types.FundingRound, error) {
	q := url.Values{}
	if n > 0 {
		q.Set("n", strconv.Itoa(n))
	}
	var out types.PageResponse[types.FundingRound]
	if err := c.do(ctx, consts.MethodGet, endpointLatestRounds, q, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListInvestors lists investors
func (c *APIClient) ListInvestors(ctx context.Context, p types.ListParams) (*types.PageResponse[types.Investor], error) {
	var out types.PageResponse[types.Investor]
	if err := c.do(ctx, consts.MethodGet, endpointInvestors, listQuery(p), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvestor fetches one investor
func (c *APIClient) GetInvestor(ctx context.Context, id int) (*types.Investor, error) {
	var out types.APIResponse[types.Investor]
	if err := c.do(ctx, consts.MethodGet, fmt.Sprintf(endpointInvestorByID, id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// FundingByIndustry fetches funding totals per industry
func (c *APIClient) FundingByIndustry(ctx context.Context) ([]types.IndustryFunding, error) {
	var out types.PageResponse[types.IndustryFunding]
	if err := c.do(ctx, consts.MethodGet, endpointFundingByIndustry, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Summary fetches the dashboard summary
func (c *APIClient) Summary(ctx context.Context) (*types.Summary, error) {
	var out types.APIResponse[types.Summary]
	if err := c.do(ctx, consts.MethodGet, endpointSummary, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DatasetReport fetches the ingest report
func (c *APIClient) DatasetReport(ctx context.Context) (*types.DatasetReport, error) {
	var out types.APIResponse[types.DatasetReport]
	if err := c.do(ctx, consts.MethodGet, endpointDatasetReport, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Reload asks the server to reload its dataset
func (c *APIClient) Reload(ctx context.Context) (*types.DatasetReport, error) {
	var out types.APIResponse[types.DatasetReport]
	if err := c.do(ctx, consts.MethodPost, endpointDatasetReload, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
