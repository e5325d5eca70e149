package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saibhavana-turai/layoffsanalysis/internal/analysis"
	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
)

type captureBroadcaster struct {
	messageType string
	payload     interface{}
	calls       int
}

func (c *captureBroadcaster) Broadcast(messageType string, payload interface{}) {
	c.messageType = messageType
	c.payload = payload
	c.calls++
}

func testDataset() *dataset.Dataset {
	funds := 1e7
	return &dataset.Dataset{
		Source: "test",
		Records: []dataset.Record{
			{Company: "Acme", Year: 2020, Month: 3, Industry: "Tech", Country: "US", TotalLaidOff: 100, FundsRaisedClean: &funds},
			{Company: "Beta", Year: 2021, Month: 6, Industry: "Tech", Country: "US", TotalLaidOff: 300, FundsRaisedClean: &funds},
			{Company: "Gamma", Year: 2021, Month: 1, Industry: "Media", Country: "India", TotalLaidOff: 40},
		},
	}
}

func newTestService(t *testing.T, hub Broadcaster) *DashboardService {
	t.Helper()
	corr := 0.427
	svc, err := NewDashboardService(testDataset(), &dataset.SummaryInsights{FundingCorrelation: &corr}, nil, hub, nil)
	require.NoError(t, err)
	return svc
}

func TestViewFullRange(t *testing.T) {
	svc := newTestService(t, nil)

	view := svc.View(context.Background(), analysis.Filter{})

	assert.Equal(t, "Global Layoff Trend Analysis (2020–2021)", view.Title)
	assert.Equal(t, 440, view.Scalars.TotalLayoffs)
	assert.Equal(t, "2021", view.Scalars.PeakYear)
	assert.Equal(t, "Tech", view.Scalars.TopIndustry)
	assert.Equal(t, "US", view.Scalars.TopCountry)
	assert.Equal(t, 3, view.RecordCount)
	assert.False(t, view.ComputedAt.IsZero())

	require.Len(t, view.YearlyTotals, 2)
	assert.Equal(t, 100, view.YearlyTotals[0].TotalLaidOff)
	assert.Equal(t, 340, view.YearlyTotals[1].TotalLaidOff)

	require.Len(t, view.YoYChanges, 1)
	assert.InDelta(t, 240.0, view.YoYChanges[0].ChangePercent, 1e-9)

	assert.Contains(t, view.FundingInsight, "Positive correlation (0.427)")
}

func TestViewFilteredToEmptySet(t *testing.T) {
	svc := newTestService(t, nil)

	view := svc.View(context.Background(), analysis.Filter{
		FromYear: 2020, ToYear: 2021, Industry: "Aerospace",
	})

	assert.Equal(t, 0, view.RecordCount)
	assert.Equal(t, 0, view.Scalars.TotalLayoffs)
	assert.Equal(t, analysis.NoData, view.Scalars.PeakYear)
	assert.Equal(t, analysis.NoData, view.Scalars.TopIndustry)
	assert.Equal(t, analysis.NoData, view.Scalars.TopCountry)
	assert.Equal(t, 0.0, view.Scalars.AvgYoYChangePercent)
	assert.NotNil(t, view.YearlyTotals)
	assert.Empty(t, view.YearlyTotals)
	assert.False(t, view.Correlation.Valid)
}

func TestViewReversedYearsNormalized(t *testing.T) {
	svc := newTestService(t, nil)

	ordered := svc.View(context.Background(), analysis.Filter{FromYear: 2020, ToYear: 2021})
	reversed := svc.View(context.Background(), analysis.Filter{FromYear: 2021, ToYear: 2020})

	assert.Equal(t, ordered.Scalars, reversed.Scalars)
	assert.Equal(t, ordered.YearlyTotals, reversed.YearlyTotals)
	assert.Equal(t, ordered.Title, reversed.Title)
}

func TestViewBroadcastsSummary(t *testing.T) {
	hub := &captureBroadcaster{}
	svc := newTestService(t, hub)

	svc.View(context.Background(), analysis.Filter{})

	assert.Equal(t, 1, hub.calls)
	assert.Equal(t, "summary:update", hub.messageType)
	payload, ok := hub.payload.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, payload, "title")
	assert.Contains(t, payload, "scalars")
}

func TestRecords(t *testing.T) {
	svc := newTestService(t, nil)

	records := svc.Records(context.Background(), analysis.Filter{Industry: "Media"})

	require.Len(t, records, 1)
	assert.Equal(t, "Gamma", records[0].Company)
}

func TestFilterOptions(t *testing.T) {
	svc := newTestService(t, nil)

	opts := svc.FilterOptions()

	assert.Equal(t, []int{2020, 2021}, opts.Years)
	assert.Equal(t, []string{analysis.All, "Media", "Tech"}, opts.Industries)
	assert.Equal(t, []string{analysis.All, "India", "US"}, opts.Countries)
}

func TestFundingInsightAbsentCorrelation(t *testing.T) {
	svc, err := NewDashboardService(testDataset(), &dataset.SummaryInsights{}, nil, nil, nil)
	require.NoError(t, err)

	view := svc.View(context.Background(), analysis.Filter{})
	assert.Equal(t, "Insufficient data to measure correlation between funding and layoffs.", view.FundingInsight)
}
