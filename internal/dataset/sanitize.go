package dataset

import (
	"log/slog"
	"strconv"
	"strings"
)

// Source column names. Headers are matched after trimming and lowercasing, so
// "Total_Laid_Off" and " total_laid_off " both resolve.
const (
	colCompany      = "company"
	colLocation     = "location"
	colIndustry     = "industry"
	colCountry      = "country"
	colYear         = "year"
	colMonth        = "month"
	colTotalLaidOff = "total_laid_off"
	colFundsRaised  = "funds_raised"
)

// rawTable wraps a header-indexed block of string rows.
type rawTable struct {
	index map[string]int
	rows  [][]string
}

func newRawTable(header []string, rows [][]string) *rawTable {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return &rawTable{index: index, rows: rows}
}

// cell returns the trimmed value of the named column in the given row. The
// boolean is false when the column is absent from the source entirely; a
// column that exists but has no value for this row yields ("", true).
func (t *rawTable) cell(row []string, col string) (string, bool) {
	idx, ok := t.index[col]
	if !ok {
		return "", false
	}
	if idx >= len(row) {
		return "", true
	}
	return strings.TrimSpace(row[idx]), true
}

// Sanitize converts raw tabular rows into normalized Records.
//
// Text fields default to the Unknown sentinel when the column or the value is
// missing. Year is the one hard invariant: rows whose year does not parse
// numerically are dropped from the dataset rather than defaulted. Every other
// parse failure degrades to a default and never raises.
func Sanitize(header []string, rows [][]string, logger *slog.Logger) []Record {
	if logger == nil {
		logger = slog.Default()
	}

	t := newRawTable(header, rows)
	records := make([]Record, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		yearCell, _ := t.cell(row, colYear)
		year, ok := parseYear(yearCell)
		if !ok {
			dropped++
			continue
		}

		monthCell, monthPresent := t.cell(row, colMonth)

		rec := Record{
			Company:      textOrUnknown(t, row, colCompany),
			Location:     textOrUnknown(t, row, colLocation),
			Industry:     textOrUnknown(t, row, colIndustry),
			Country:      textOrUnknown(t, row, colCountry),
			Year:         year,
			Month:        NormalizeMonth(monthCell, monthPresent),
			TotalLaidOff: parseTotal(t, row),
		}

		if raw, ok := t.cell(row, colFundsRaised); ok {
			rec.FundsRaised = raw
			if clean, ok := NormalizeFunds(raw); ok {
				rec.FundsRaisedClean = &clean
			}
		}

		records = append(records, rec)
	}

	logger.Info("dataset sanitized",
		slog.Int("rows_in", len(rows)),
		slog.Int("rows_kept", len(records)),
		slog.Int("rows_dropped", dropped))

	return records
}

func textOrUnknown(t *rawTable, row []string, col string) string {
	v, ok := t.cell(row, col)
	if !ok || v == "" {
		return Unknown
	}
	return v
}

// parseYear accepts integral and fractional numeric forms ("2021", "2021.0")
// and truncates. Anything else fails, which drops the row.
func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// parseTotal defaults to 0 on missing or unparseable values and clamps
// negatives so the non-negativity invariant holds.
func parseTotal(t *rawTable, row []string) int {
	s, ok := t.cell(row, colTotalLaidOff)
	if !ok || s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	if f < 0 {
		return 0
	}
	return int(f)
}
