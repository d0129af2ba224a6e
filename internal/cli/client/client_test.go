package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvyanru/startupradar/internal/cli/types"
)

func TestNormalizeServerURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://radar.example.com/api/", want: "https://radar.example.com"},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeServerURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewAPIClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestAPIClient_ListRoundsQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"SUCCESS","message":"success","data":[{"id":7,"startup_id":2,"round_type":"Seed","amount":1200000,"date":"01/01/2020","lead_investors":["Acme Capital"]}],"total":11}`))
	})

	page, err := c.ListRounds(context.Background(), types.RoundParams{
		ListParams: types.ListParams{Page: 2, Limit: 5, Sort: "amount", Order: "desc"},
		Industries: []string{"Fintech", "Mobility"},
		MinAmount:  "1000000",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/rounds", gotPath)
	assert.Equal(t, []string{"Fintech", "Mobility"}, gotQuery["industry"])
	assert.Equal(t, []string{"1000000"}, gotQuery["min_amount"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.NotContains(t, gotQuery, "max_amount")

	assert.Equal(t, 11, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 7, page.Data[0].ID)
	assert.Equal(t, []string{"Acme Capital"}, page.Data[0].LeadInvestors)
}

func TestAPIClient_ErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND","message":"startup 9 not found"}`))
	})

	_, err := c.GetStartup(context.Background(), 9)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "NOT_FOUND (HTTP 404): startup 9 not found", apiErr.Error())
}

func TestAPIClient_ReloadUsesPost(t *testing.T) {
	var method string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"SUCCESS","message":"success","data":{"source":"file://x.csv","startups":4,"skip_counts":{},"skips":[],"missing_columns":[]}}`))
	})

	report, err := c.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, 4, report.Startups)
	assert.Equal(t, "file://x.csv", report.Source)
}
