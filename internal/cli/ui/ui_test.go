package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvyanru/startupradar/internal/cli/types"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "-"},
		{950, "$950"},
		{12500, "$12.5K"},
		{1000000, "$1M"},
		{1800000, "$1.8M"},
		{180000000000, "$180B"},
		{-600000, "-$600K"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in), "amount %v", tt.in)
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "7", FormatCount(7))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "12,345,678", FormatCount(12345678))
	assert.Equal(t, "-4,200", FormatCount(-4200))
}

func TestTable_AlignsWideRunes(t *testing.T) {
	table := NewTable("ID", "NAME", "CITY")
	table.Append("1", "Acme", "Mumbai")
	table.Append("2", "字节跳动", "北京")
	table.Append("3")

	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1   Acme      Mumbai", lines[1])
	assert.Equal(t, "2   字节跳动  北京", lines[2])
	assert.Equal(t, "3", lines[3])
	assert.Equal(t, 3, table.Len())
}

func TestRenderStartupTree(t *testing.T) {
	out := RenderStartupTree(
		&types.Startup{ID: 1, Name: "Acme", Industry: "Fintech", Location: "NYC"},
		[]types.FundingRound{
			{ID: 1, StartupID: 1, RoundType: "Seed", Amount: 1200000, Date: "01/01/2020", LeadInvestors: []string{"Acme Capital"}},
			{ID: 2, StartupID: 1, RoundType: "Seed", Amount: 600000, Date: "02/02/2020", LeadInvestors: []string{}},
		},
	)

	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "funding rounds (2)")
	assert.Contains(t, out, "$1.2M")
	assert.Contains(t, out, "Acme Capital")
	assert.Contains(t, out, "total raised: $1.8M")
}

func TestEncode(t *testing.T) {
	v := types.Investor{ID: 1, Name: "Acme Capital", TotalInvestments: 1800000, NotableInvestments: []string{"Acme"}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, v))
	assert.Contains(t, buf.String(), "name: Acme Capital")
	assert.Contains(t, buf.String(), "notable_investments:\n- Acme")

	buf.Reset()
	require.NoError(t, Encode(&buf, FormatJSON, v))
	assert.Contains(t, buf.String(), `"name": "Acme Capital"`)

	assert.Error(t, Encode(&buf, "xml", v))
	assert.False(t, ValidFormat("xml"))
	assert.True(t, ValidFormat(FormatTable))
}
