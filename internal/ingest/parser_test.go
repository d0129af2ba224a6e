package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Date,Startup,Industry Vertical,SubVertical,City,Investors Name,InvestmentnType,CR,Year,Month"

func TestParseRows(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantRows    int
		wantBlank   int
		wantMissing []string
	}{
		{
			name:     "empty input",
			text:     "",
			wantRows: 0,
		},
		{
			name:     "header only",
			text:     header + "\n",
			wantRows: 0,
		},
		{
			name:      "blank lines are skipped",
			text:      header + "\n\n01/01/2020,Acme,Fintech,,NYC,Acme Capital,Seed,10,2020,1\n   \n",
			wantRows:  1,
			wantBlank: 2,
		},
		{
			name:     "no trailing newline",
			text:     header + "\n01/01/2020,Acme,Fintech,,NYC,Acme Capital,Seed,10,2020,1",
			wantRows: 1,
		},
		{
			name:     "crlf line endings",
			text:     header + "\r\n01/01/2020,Acme,Fintech,,NYC,Acme Capital,Seed,10,2020,1\r\n",
			wantRows: 1,
		},
		{
			name:        "missing columns are reported",
			text:        "Date,Startup\n01/01/2020,Acme\n",
			wantRows:    1,
			wantMissing: []string{ColumnIndustry, ColumnSubVertical, ColumnCity, ColumnInvestors, ColumnInvestmentType, ColumnAmount, ColumnYear, ColumnMonth},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, report := ParseRows(tt.text)
			assert.Len(t, rows, tt.wantRows)
			assert.Equal(t, tt.wantRows, report.Rows)
			assert.Equal(t, tt.wantBlank, report.BlankLines)
			assert.Equal(t, tt.wantMissing, report.MissingColumns)
		})
	}
}

func TestParseRows_FieldMapping(t *testing.T) {
	rows, _ := ParseRows(header + "\r\n01/01/2020,Acme,Fintech,Payments,NYC,Acme Capital,Seed,10,2020,1\r\n")
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "01/01/2020", row.Date)
	assert.Equal(t, "Acme", row.Startup)
	assert.Equal(t, "Fintech", row.IndustryVertical)
	assert.Equal(t, "Payments", row.SubVertical)
	assert.Equal(t, "NYC", row.City)
	assert.Equal(t, "Acme Capital", row.InvestorsName)
	assert.Equal(t, "Seed", row.InvestmentType)
	assert.Equal(t, "10", row.Amount)
	assert.Equal(t, "2020", row.Year)
	assert.Equal(t, "1", row.Month, "trailing carriage return must not leak into the last column")
}

func TestParseRows_ShortLineAndReorderedHeader(t *testing.T) {
	rows, report := ParseRows("\uFEFFStartup,CR,Date\nAcme,5\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0].Startup)
	assert.Equal(t, "5", rows[0].Amount)
	assert.Empty(t, rows[0].Date, "fields past the end of a short line are empty")
	assert.NotContains(t, report.MissingColumns, ColumnStartup, "byte order mark must be stripped from the header")
}

func TestParseRows_NaiveSplit(t *testing.T) {
	// quoting is not supported: the comma inside quotes shifts the columns
	rows, _ := ParseRows(header + "\n01/01/2020,\"Acme, Inc\",Fintech,,NYC,,Seed,10,2020,1\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "\"Acme", rows[0].Startup)
	assert.Equal(t, " Inc\"", rows[0].IndustryVertical)
}
