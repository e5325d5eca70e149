package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
)

func TestSumBySingleKey(t *testing.T) {
	records := []dataset.Record{
		{Year: 2020, Industry: "Tech", TotalLaidOff: 100},
		{Year: 2020, Industry: "Media", TotalLaidOff: 50},
		{Year: 2021, Industry: "Tech", TotalLaidOff: 300},
	}

	totals := SumBy(records, ByIndustry)

	require.Len(t, totals, 2)
	assert.Equal(t, GroupedTotal{Industry: "Tech", TotalLaidOff: 400}, totals[0])
	assert.Equal(t, GroupedTotal{Industry: "Media", TotalLaidOff: 50}, totals[1])
}

func TestSumByTwoKeys(t *testing.T) {
	records := []dataset.Record{
		{Year: 2020, Month: 1, TotalLaidOff: 10},
		{Year: 2020, Month: 1, TotalLaidOff: 20},
		{Year: 2020, Month: 2, TotalLaidOff: 5},
	}

	totals := MonthlyHeatmap(records)

	require.Len(t, totals, 2)
	assert.Equal(t, GroupedTotal{Year: 2020, Month: 1, TotalLaidOff: 30}, totals[0])
	assert.Equal(t, GroupedTotal{Year: 2020, Month: 2, TotalLaidOff: 5}, totals[1])
}

func TestSumByEmptyInputIsWellShaped(t *testing.T) {
	totals := SumBy(nil, ByYear)
	assert.NotNil(t, totals)
	assert.Empty(t, totals)
}

func TestYearlyTotalsOrdering(t *testing.T) {
	records := []dataset.Record{
		{Year: 2022, TotalLaidOff: 70},
		{Year: 2020, TotalLaidOff: 100},
		{Year: 2021, TotalLaidOff: 300},
	}

	yearly := YearlyTotals(records)

	require.Len(t, yearly, 3)
	assert.Equal(t, 2020, yearly[0].Year)
	assert.Equal(t, 2021, yearly[1].Year)
	assert.Equal(t, 2022, yearly[2].Year)
}

func TestYoYChanges(t *testing.T) {
	yearly := []GroupedTotal{
		{Year: 2020, TotalLaidOff: 100},
		{Year: 2021, TotalLaidOff: 300},
		{Year: 2022, TotalLaidOff: 150},
	}

	changes := YoYChanges(yearly)

	require.Len(t, changes, 2)
	assert.Equal(t, 2021, changes[0].Year)
	assert.InDelta(t, 200.0, changes[0].ChangePercent, 1e-9)
	assert.Equal(t, 2022, changes[1].Year)
	assert.InDelta(t, -50.0, changes[1].ChangePercent, 1e-9)
}

func TestYoYChangesGuardsZeroDenominator(t *testing.T) {
	yearly := []GroupedTotal{
		{Year: 2020, TotalLaidOff: 0},
		{Year: 2021, TotalLaidOff: 300},
	}

	changes := YoYChanges(yearly)
	assert.Empty(t, changes, "a zero previous-year total has no defined change")
	assert.Equal(t, 0.0, AvgYoYChangePercent(changes))
}

func TestTopGroupsStableTieBreak(t *testing.T) {
	records := []dataset.Record{
		{Industry: "Media", TotalLaidOff: 100},
		{Industry: "Tech", TotalLaidOff: 100},
	}

	top := TopGroups(records, ByIndustry, 10)

	require.Len(t, top, 2)
	assert.Equal(t, "Media", top[0].Industry, "ties resolve to the first-encountered group")
	assert.Equal(t, "Media", topGroupName(records, ByIndustry))
}

func TestTopGroupsLimit(t *testing.T) {
	records := []dataset.Record{
		{Country: "US", TotalLaidOff: 3},
		{Country: "India", TotalLaidOff: 2},
		{Country: "Germany", TotalLaidOff: 1},
	}

	top := TopGroups(records, ByCountry, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "US", top[0].Country)
	assert.Equal(t, "India", top[1].Country)
}

func TestSummarizeEmptySetSentinels(t *testing.T) {
	scalars := Summarize(nil, Filter{FromYear: 2020, ToYear: 2022})

	assert.Equal(t, 0, scalars.TotalLayoffs)
	assert.Equal(t, NoData, scalars.PeakYear)
	assert.Equal(t, NoData, scalars.TopIndustry)
	assert.Equal(t, NoData, scalars.TopCountry)
	assert.Equal(t, 0.0, scalars.AvgYoYChangePercent)
	assert.Equal(t, 2020, scalars.YearMin)
	assert.Equal(t, 2022, scalars.YearMax)
}

func TestSummarizeEmptySetReversedBounds(t *testing.T) {
	scalars := Summarize(nil, Filter{FromYear: 2022, ToYear: 2020})
	assert.Equal(t, 2020, scalars.YearMin)
	assert.Equal(t, 2022, scalars.YearMax)
}

// The end-to-end scenario from the dashboard contract: two Tech/US rows across
// 2020 and 2021.
func TestSummarizeEndToEndScenario(t *testing.T) {
	ten := 1e7
	records := []dataset.Record{
		{Year: 2020, Industry: "Tech", Country: "US", TotalLaidOff: 100, FundsRaisedClean: &ten},
		{Year: 2021, Industry: "Tech", Country: "US", TotalLaidOff: 300, FundsRaisedClean: &ten},
	}

	filtered := Apply(records, Filter{FromYear: 2020, ToYear: 2021, Industry: All, Country: All})
	require.Len(t, filtered, 2)

	yearly := YearlyTotals(filtered)
	require.Len(t, yearly, 2)
	assert.Equal(t, GroupedTotal{Year: 2020, TotalLaidOff: 100}, yearly[0])
	assert.Equal(t, GroupedTotal{Year: 2021, TotalLaidOff: 300}, yearly[1])

	scalars := Summarize(filtered, Filter{FromYear: 2020, ToYear: 2021})
	assert.Equal(t, 400, scalars.TotalLayoffs)
	assert.InDelta(t, 200.0, scalars.AvgYoYChangePercent, 1e-9)
	assert.Equal(t, "2021", scalars.PeakYear)
	assert.Equal(t, "Tech", scalars.TopIndustry)
	assert.Equal(t, "US", scalars.TopCountry)
	assert.Equal(t, 2020, scalars.YearMin)
	assert.Equal(t, 2021, scalars.YearMax)
}

func TestSummarizePeakYearFirstOnTie(t *testing.T) {
	records := []dataset.Record{
		{Year: 2021, TotalLaidOff: 100},
		{Year: 2020, TotalLaidOff: 100},
	}

	scalars := Summarize(records, Filter{FromYear: 2020, ToYear: 2021})
	assert.Equal(t, "2020", scalars.PeakYear)
}
