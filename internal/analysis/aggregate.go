package analysis

import (
	"sort"
	"strconv"

	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
)

// NoData is the sentinel reported for scalar summaries over an empty set.
const NoData = "N/A"

// GroupKey names a record dimension a grouped sum can be keyed on.
type GroupKey string

const (
	ByYear     GroupKey = "year"
	ByMonth    GroupKey = "month"
	ByIndustry GroupKey = "industry"
	ByCountry  GroupKey = "country"
)

// GroupedTotal is one row of a grouped layoff sum. Only the key columns of
// the grouping that produced it carry values.
type GroupedTotal struct {
	Year         int    `json:"year,omitempty"`
	Month        int    `json:"month,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Country      string `json:"country,omitempty"`
	TotalLaidOff int    `json:"total_laid_off"`
}

// SumBy groups records by one or two dimensions and sums TotalLaidOff. Rows
// come back in first-encounter order, which downstream tie-breaking relies
// on. Empty input yields an empty, well-shaped table, never nil.
func SumBy(records []dataset.Record, keys ...GroupKey) []GroupedTotal {
	totals := make([]GroupedTotal, 0)
	index := make(map[GroupedTotal]int)

	for _, r := range records {
		k := keyOf(r, keys)
		if i, ok := index[k]; ok {
			totals[i].TotalLaidOff += r.TotalLaidOff
			continue
		}
		row := k
		row.TotalLaidOff = r.TotalLaidOff
		index[k] = len(totals)
		totals = append(totals, row)
	}
	return totals
}

func keyOf(r dataset.Record, keys []GroupKey) GroupedTotal {
	var k GroupedTotal
	for _, key := range keys {
		switch key {
		case ByYear:
			k.Year = r.Year
		case ByMonth:
			k.Month = r.Month
		case ByIndustry:
			k.Industry = r.Industry
		case ByCountry:
			k.Country = r.Country
		}
	}
	return k
}

// YearlyTotals sums layoffs per year, ascending by year.
func YearlyTotals(records []dataset.Record) []GroupedTotal {
	totals := SumBy(records, ByYear)
	sort.Slice(totals, func(i, j int) bool { return totals[i].Year < totals[j].Year })
	return totals
}

// MonthlyHeatmap sums layoffs per (year, month), ascending by year then month.
func MonthlyHeatmap(records []dataset.Record) []GroupedTotal {
	totals := SumBy(records, ByYear, ByMonth)
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})
	return totals
}

// IndustryTrend sums layoffs per (year, industry), ascending by year then
// industry.
func IndustryTrend(records []dataset.Record) []GroupedTotal {
	totals := SumBy(records, ByYear, ByIndustry)
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Industry < totals[j].Industry
	})
	return totals
}

// TopGroups ranks single-dimension grouped sums descending by total, keeping
// at most limit rows. The sort is stable over first-encounter order so ties
// resolve to the group seen first.
func TopGroups(records []dataset.Record, key GroupKey, limit int) []GroupedTotal {
	totals := SumBy(records, key)
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalLaidOff > totals[j].TotalLaidOff
	})
	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}

// topGroupName returns the name of the group with the maximum summed layoffs,
// or NoData when the grouping is empty. Ties resolve to the first-encountered
// group.
func topGroupName(records []dataset.Record, key GroupKey) string {
	totals := SumBy(records, key)
	if len(totals) == 0 {
		return NoData
	}
	best := totals[0]
	for _, t := range totals[1:] {
		if t.TotalLaidOff > best.TotalLaidOff {
			best = t
		}
	}
	switch key {
	case ByIndustry:
		return best.Industry
	case ByCountry:
		return best.Country
	case ByYear:
		return strconv.Itoa(best.Year)
	case ByMonth:
		return strconv.Itoa(best.Month)
	}
	return NoData
}

// YearChange is the percentage change of yearly layoff totals from the
// previous year to Year.
type YearChange struct {
	Year          int     `json:"year"`
	ChangePercent float64 `json:"change_percent"`
}

// YoYChanges computes per-year percentage changes over ascending yearly
// totals. The first year has no defined change and is excluded, as is any
// step whose previous-year total is zero; the division is never performed on
// a zero denominator.
func YoYChanges(yearly []GroupedTotal) []YearChange {
	changes := make([]YearChange, 0)
	for i := 1; i < len(yearly); i++ {
		prev := yearly[i-1].TotalLaidOff
		if prev == 0 {
			continue
		}
		pct := float64(yearly[i].TotalLaidOff-prev) / float64(prev) * 100
		changes = append(changes, YearChange{Year: yearly[i].Year, ChangePercent: pct})
	}
	return changes
}

// AvgYoYChangePercent is the arithmetic mean of the defined per-year changes,
// or 0.0 when none exist.
func AvgYoYChangePercent(changes []YearChange) float64 {
	if len(changes) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, c := range changes {
		sum += c.ChangePercent
	}
	return sum / float64(len(changes))
}

// SummaryScalars are the headline numbers recomputed on every filter change.
// All fields hold defined sentinels when the filtered set is empty.
type SummaryScalars struct {
	TotalLayoffs        int     `json:"total_layoffs"`
	PeakYear            string  `json:"peak_year"`
	TopIndustry         string  `json:"top_industry"`
	TopCountry          string  `json:"top_country"`
	AvgYoYChangePercent float64 `json:"avg_yoy_change_percent"`
	YearMin             int     `json:"year_min"`
	YearMax             int     `json:"year_max"`
}

// Summarize derives the summary scalars for an already-filtered record set.
// On empty input the year bounds fall back to the requested filter range.
func Summarize(records []dataset.Record, f Filter) SummaryScalars {
	f = f.Normalized()

	if len(records) == 0 {
		return SummaryScalars{
			PeakYear:    NoData,
			TopIndustry: NoData,
			TopCountry:  NoData,
			YearMin:     f.FromYear,
			YearMax:     f.ToYear,
		}
	}

	yearly := YearlyTotals(records)

	total := 0
	yearMin, yearMax := records[0].Year, records[0].Year
	for _, r := range records {
		total += r.TotalLaidOff
		if r.Year < yearMin {
			yearMin = r.Year
		}
		if r.Year > yearMax {
			yearMax = r.Year
		}
	}

	peak := yearly[0]
	for _, y := range yearly[1:] {
		if y.TotalLaidOff > peak.TotalLaidOff {
			peak = y
		}
	}

	return SummaryScalars{
		TotalLayoffs:        total,
		PeakYear:            strconv.Itoa(peak.Year),
		TopIndustry:         topGroupName(records, ByIndustry),
		TopCountry:          topGroupName(records, ByCountry),
		AvgYoYChangePercent: AvgYoYChangePercent(YoYChanges(yearly)),
		YearMin:             yearMin,
		YearMax:             yearMax,
	}
}
