package ingest

import (
	"strings"

	"github.com/lvyanru/startupradar/internal/domain/entity"
)

// Column names of the source file
const (
	ColumnDate           = "Date"
	ColumnStartup        = "Startup"
	ColumnIndustry       = "Industry Vertical"
	ColumnSubVertical    = "SubVertical"
	ColumnCity           = "City"
	ColumnInvestors      = "Investors Name"
	ColumnInvestmentType = "InvestmentnType" // sic, as spelled by the source
	ColumnAmount         = "CR"
	ColumnYear           = "Year"
	ColumnMonth          = "Month"
)

// ExpectedColumns lists the header names the parser maps onto Row fields
var ExpectedColumns = []string{
	ColumnDate,
	ColumnStartup,
	ColumnIndustry,
	ColumnSubVertical,
	ColumnCity,
	ColumnInvestors,
	ColumnInvestmentType,
	ColumnAmount,
	ColumnYear,
	ColumnMonth,
}

const utf8BOM = "\uFEFF"

// columnIndex holds the header position of each column, -1 when absent
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, []string) {
	idx := make(columnIndex, len(ExpectedColumns))
	for _, name := range ExpectedColumns {
		idx[name] = -1
	}
	// a repeated header name maps to its last position
	for i, name := range header {
		if _, ok := idx[name]; ok {
			idx[name] = i
		}
	}

	var missing []string
	for _, name := range ExpectedColumns {
		if idx[name] < 0 {
			missing = append(missing, name)
		}
	}
	return idx, missing
}

func (c columnIndex) value(values []string, column string) string {
	i := c[column]
	if i < 0 || i >= len(values) {
		return ""
	}
	return values[i]
}

// ParseRows turns the source text into rows.
//
// The first line is the header. Data lines are split on every comma; quoted
// fields are not supported. Blank lines are skipped and short lines leave the
// missing fields empty. The returned report carries line counts and the
// expected columns absent from the header.
func ParseRows(text string) ([]entity.Row, entity.IngestReport) {
	var report entity.IngestReport

	text = strings.TrimPrefix(text, utf8BOM)
	if strings.TrimSpace(text) == "" {
		return nil, report
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	idx, missing := newColumnIndex(strings.Split(trimCR(lines[0]), ","))
	report.MissingColumns = missing

	rows := make([]entity.Row, 0, len(lines)-1)
	for i, line := range lines[1:] {
		report.TotalLines++
		line = trimCR(line)
		if strings.TrimSpace(line) == "" {
			report.BlankLines++
			continue
		}

		values := strings.Split(line, ",")
		rows = append(rows, entity.Row{
			Line:             i + 2,
			Date:             idx.value(values, ColumnDate),
			Startup:          idx.value(values, ColumnStartup),
			IndustryVertical: idx.value(values, ColumnIndustry),
			SubVertical:      idx.value(values, ColumnSubVertical),
			City:             idx.value(values, ColumnCity),
			InvestorsName:    idx.value(values, ColumnInvestors),
			InvestmentType:   idx.value(values, ColumnInvestmentType),
			Amount:           idx.value(values, ColumnAmount),
			Year:             idx.value(values, ColumnYear),
			Month:            idx.value(values, ColumnMonth),
		})
	}
	report.Rows = len(rows)

	return rows, report
}

func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}
