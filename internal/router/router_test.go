package router_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvyanru/startupradar/internal/config"
	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/domain/entity"
	"github.com/lvyanru/startupradar/internal/domain/mocks"
	"github.com/lvyanru/startupradar/internal/handler"
	"github.com/lvyanru/startupradar/internal/ingest"
	"github.com/lvyanru/startupradar/internal/router"
	"github.com/lvyanru/startupradar/internal/usecase"
)

const fixtureCSV = `Date,Startup,Industry Vertical,SubVertical,City,Investors Name,InvestmentnType,CR,Year,Month
01/01/2020,Acme,Fintech,,NYC,Acme Capital,Seed,10,2020,1
02/02/2020,Acme,Fintech,,NYC,Acme Capital,Seed,5,2020,2
03/03/2020,Bolt,Mobility,,Delhi,,Series A,1,2020,3
`

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Total   int             `json:"total"`
}

func newEngine(t *testing.T, repo domain.DatasetRepository) *server.Hertz {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		Server:        config.ServerConfig{CORSOrigin: "*"},
		Observability: config.ObservabilityConfig{EnableMetrics: true, MetricsPath: "/metrics"},
	}
	h := server.New(server.WithHostPorts("127.0.0.1:0"))
	router.Setup(h, cfg, router.Handlers{
		Startup:      handler.NewStartupHandler(usecase.NewStartupUsecase(repo, logger)),
		FundingRound: handler.NewFundingRoundHandler(usecase.NewFundingRoundUsecase(repo, logger)),
		Investor:     handler.NewInvestorHandler(usecase.NewInvestorUsecase(repo, logger)),
		Insight:      handler.NewInsightHandler(usecase.NewInsightUsecase(repo, logger)),
		Dataset:      handler.NewDatasetHandler(usecase.NewDatasetUsecase(repo, logger)),
		Health:       handler.NewHealthHandler(repo),
	}, logger)
	return h
}

func fixtureRepo(t *testing.T) *mocks.MockDatasetRepository {
	t.Helper()
	p, err := ingest.NewPipeline(ingest.DefaultAmountMultiplier, slog.Default())
	require.NoError(t, err)
	return &mocks.MockDatasetRepository{Data: p.Build("static://fixture", fixtureCSV)}
}

func get(t *testing.T, h *server.Hertz, url string) (int, envelope) {
	t.Helper()
	w := ut.PerformRequest(h.Engine, "GET", url, nil)
	resp := w.Result()

	var env envelope
	if strings.HasPrefix(string(resp.Header.ContentType()), "application/json") {
		require.NoError(t, sonic.Unmarshal(resp.Body(), &env), string(resp.Body()))
	}
	return resp.StatusCode(), env
}

func TestRoutes(t *testing.T) {
	h := newEngine(t, fixtureRepo(t))

	tests := []struct {
		name      string
		url       string
		wantCode  int
		wantTotal int
		wantBody  string
	}{
		{name: "list startups", url: "/api/v1/startups", wantCode: 200, wantTotal: 2, wantBody: `"name":"Acme"`},
		{name: "paged past the end", url: "/api/v1/startups?page=5&limit=1", wantCode: 200, wantTotal: 2, wantBody: `[]`},
		{name: "search", url: "/api/v1/startups?q=bol", wantCode: 200, wantTotal: 1, wantBody: `"name":"Bolt"`},
		{name: "get startup", url: "/api/v1/startups/1", wantCode: 200, wantBody: `"description":"Acme is a company in the Fintech industry."`},
		{name: "missing startup", url: "/api/v1/startups/42", wantCode: 404},
		{name: "bad id", url: "/api/v1/startups/abc", wantCode: 400},
		{name: "bad order", url: "/api/v1/startups?sort=name&order=up", wantCode: 400},
		{name: "by industry", url: "/api/v1/startups/industry/Mobility", wantCode: 200, wantTotal: 1},
		{name: "rounds of startup", url: "/api/v1/startups/1/rounds", wantCode: 200, wantTotal: 2, wantBody: `"round_type":"Seed"`},
		{name: "industries", url: "/api/v1/industries", wantCode: 200, wantTotal: 2, wantBody: `["Fintech","Mobility"]`},
		{name: "rounds filtered", url: "/api/v1/rounds?round_type=Seed&min_amount=1000000", wantCode: 200, wantTotal: 1},
		{name: "rounds multi industry", url: "/api/v1/rounds?industry=Fintech&industry=Mobility", wantCode: 200, wantTotal: 3},
		{name: "rounds bad amount", url: "/api/v1/rounds?min_amount=lots", wantCode: 400},
		{name: "latest", url: "/api/v1/rounds/latest?n=1", wantCode: 200, wantTotal: 1, wantBody: `"date":"03/03/2020"`},
		{name: "by round type", url: "/api/v1/rounds/type/Series%20A", wantCode: 200, wantTotal: 1},
		{name: "investors", url: "/api/v1/investors", wantCode: 200, wantTotal: 1, wantBody: `"notable_investments":["Acme"]`},
		{name: "top investors", url: "/api/v1/investors/top?min=2000000", wantCode: 200, wantTotal: 0},
		{name: "missing investor", url: "/api/v1/investors/9", wantCode: 404},
		{name: "startups with funding", url: "/api/v1/insights/startups-with-funding", wantCode: 200, wantTotal: 2, wantBody: `"funding_rounds":[`},
		{name: "funding by industry", url: "/api/v1/insights/funding-by-industry", wantCode: 200, wantTotal: 2, wantBody: `"dealCount":2`},
		{name: "trends", url: "/api/v1/insights/trends?category=Fintech", wantCode: 200, wantTotal: 2, wantBody: `"period":"2020-01"`},
		{name: "summary", url: "/api/v1/insights/summary", wantCode: 200, wantBody: `"top_industry":"Fintech"`},
		{name: "report", url: "/api/v1/dataset/report", wantCode: 200, wantBody: `"source":"static://fixture"`},
		{name: "ready", url: "/health/ready", wantCode: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := get(t, h, tt.url)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode != 200 {
				assert.NotEmpty(t, env.Code)
				return
			}
			assert.Equal(t, "SUCCESS", env.Code)
			assert.Equal(t, tt.wantTotal, env.Total)
			if tt.wantBody != "" {
				assert.Contains(t, string(env.Data), tt.wantBody)
			}
		})
	}
}

func TestReload(t *testing.T) {
	repo := fixtureRepo(t)
	h := newEngine(t, repo)

	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/dataset/reload", nil)
	assert.Equal(t, 200, w.Result().StatusCode())
	assert.Equal(t, 1, repo.Invalidated)
}

func TestUnavailableAndNotReady(t *testing.T) {
	repo := &mocks.MockDatasetRepository{
		DatasetFunc: func(ctx context.Context) (*entity.Dataset, error) {
			return nil, context.DeadlineExceeded
		},
	}
	h := newEngine(t, repo)

	code, env := get(t, h, "/api/v1/startups")
	assert.Equal(t, 503, code)
	assert.Equal(t, "UNAVAILABLE", env.Code)

	code, _ = get(t, h, "/health/ready")
	assert.Equal(t, 503, code)
}

func TestRequestIDAndMetrics(t *testing.T) {
	h := newEngine(t, fixtureRepo(t))

	w := ut.PerformRequest(h.Engine, "GET", "/ping", nil, ut.Header{Key: "X-Request-ID", Value: "req-42"})
	assert.Equal(t, "req-42", string(w.Result().Header.Peek("X-Request-ID")))

	w = ut.PerformRequest(h.Engine, "GET", "/api/v1/startups", nil)
	assert.NotEmpty(t, string(w.Result().Header.Peek("X-Request-ID")), "generated when absent")

	w = ut.PerformRequest(h.Engine, "GET", "/metrics", nil)
	assert.Equal(t, 200, w.Result().StatusCode())
	assert.Contains(t, string(w.Result().Body()), "startupradar_http_requests_total")
}
