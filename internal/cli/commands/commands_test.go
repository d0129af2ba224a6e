package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvyanru/startupradar/internal/cli/ui"
	"github.com/lvyanru/startupradar/internal/ingest"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "12", want: 12},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseID(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInspectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funding.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"Date,Startup,Industry Vertical,SubVertical,City,Investors Name,InvestmentnType,CR,Year,Month\n"+
			"01/01/2020,Acme,Fintech,,NYC,Acme Capital,Seed,10,2020,1\n"+
			"\n"+
			",NoName,Fintech,,NYC,,Seed,1,2020,1\n"+
			"02/02/2020,Acme,Fintech,,NYC,,Seed,n/a,2020,2\n",
	), 0o644))

	pipeline, err := ingest.NewPipeline(ingest.DefaultAmountMultiplier, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	report := inspectFile(context.Background(), pipeline, path)
	assert.Empty(t, report.SourceError)
	assert.Equal(t, 4, report.TotalLines)
	assert.Equal(t, 1, report.BlankLines)
	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 2, report.Startups)
	assert.Equal(t, 1, report.Investors)
	assert.NotEmpty(t, report.SkipCounts)

	var buf bytes.Buffer
	prev := ui.Out
	ui.Out = &buf
	t.Cleanup(func() { ui.Out = prev })

	printReport(report, true)
	out := buf.String()
	assert.Contains(t, out, "STAGE/REASON")
	assert.Contains(t, out, "funding_round/missing_date")
	assert.Contains(t, out, "amount/invalid_amount")
}

func TestInspectFile_Missing(t *testing.T) {
	pipeline, err := ingest.NewPipeline(ingest.DefaultAmountMultiplier, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	report := inspectFile(context.Background(), pipeline, filepath.Join(t.TempDir(), "absent.csv"))
	assert.NotEmpty(t, report.SourceError)
	assert.Zero(t, report.Startups)
}
