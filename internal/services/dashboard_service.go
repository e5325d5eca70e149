package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/saibhavana-turai/layoffsanalysis/internal/analysis"
	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
)

// DashboardTitle is the base heading the dynamic title decorates.
const DashboardTitle = "Global Layoff Trend Analysis"

// topGroupLimit caps the ranked industry/country tables, matching the
// dashboard's top-10 charts.
const topGroupLimit = 10

// Broadcaster pushes recomputed summaries to dashboard subscribers.
type Broadcaster interface {
	Broadcast(messageType string, payload interface{})
}

// DashboardService answers dashboard queries over the immutable session
// dataset. The dataset is loaded once and never mutated; every View call is
// one synchronous recomputation pass, so no locking is needed.
type DashboardService struct {
	data     *dataset.Dataset
	insights *dataset.SummaryInsights
	logger   *slog.Logger
	hub      Broadcaster

	recomputations metric.Int64Counter
}

// NewDashboardService creates the dashboard service. hub and meter are
// optional; passing nil disables broadcasting and metrics respectively.
func NewDashboardService(data *dataset.Dataset, insights *dataset.SummaryInsights, logger *slog.Logger, hub Broadcaster, meter metric.Meter) (*DashboardService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &DashboardService{
		data:     data,
		insights: insights,
		logger:   logger.With(slog.String("component", "dashboard_service")),
		hub:      hub,
	}

	if meter != nil {
		counter, err := meter.Int64Counter("dashboard.recomputations",
			metric.WithDescription("Number of full dashboard recomputation passes"))
		if err != nil {
			return nil, err
		}
		s.recomputations = counter
	}

	return s, nil
}

// DashboardView is everything the presentation layer needs for one filter
// selection.
type DashboardView struct {
	Title          string                     `json:"title"`
	Filter         analysis.Filter            `json:"filter"`
	Scalars        analysis.SummaryScalars    `json:"scalars"`
	YearlyTotals   []analysis.GroupedTotal    `json:"yearly_totals"`
	YoYChanges     []analysis.YearChange      `json:"yoy_changes"`
	IndustryTrend  []analysis.GroupedTotal    `json:"industry_trend"`
	TopIndustries  []analysis.GroupedTotal    `json:"top_industries"`
	TopCountries   []analysis.GroupedTotal    `json:"top_countries"`
	MonthlyHeatmap []analysis.GroupedTotal    `json:"monthly_heatmap"`
	Correlation    analysis.CorrelationReport `json:"correlation"`
	FundingInsight string                     `json:"funding_insight"`
	RecordCount    int                        `json:"record_count"`
	ComputedAt     time.Time                  `json:"computed_at"`
}

// View runs one full recomputation pass for the given filter and returns the
// dashboard view. Empty filtered sets are a valid state; every aggregate
// degrades to its defined sentinel.
func (s *DashboardService) View(ctx context.Context, f analysis.Filter) DashboardView {
	f = s.withDefaults(f).Normalized()

	filtered := analysis.Apply(s.data.Records, f)
	yearly := analysis.YearlyTotals(filtered)

	view := DashboardView{
		Title:          analysis.DynamicTitle(DashboardTitle, f),
		Filter:         f,
		Scalars:        analysis.Summarize(filtered, f),
		YearlyTotals:   yearly,
		YoYChanges:     analysis.YoYChanges(yearly),
		IndustryTrend:  analysis.IndustryTrend(filtered),
		TopIndustries:  analysis.TopGroups(filtered, analysis.ByIndustry, topGroupLimit),
		TopCountries:   analysis.TopGroups(filtered, analysis.ByCountry, topGroupLimit),
		MonthlyHeatmap: analysis.MonthlyHeatmap(filtered),
		Correlation:    analysis.Correlate(filtered),
		FundingInsight: analysis.FundingInsight(s.insights.FundingCorrelation),
		RecordCount:    len(filtered),
		ComputedAt:     time.Now(),
	}

	if s.recomputations != nil {
		s.recomputations.Add(ctx, 1)
	}

	if s.hub != nil {
		s.hub.Broadcast("summary:update", map[string]interface{}{
			"title":   view.Title,
			"scalars": view.Scalars,
		})
	}

	s.logger.DebugContext(ctx, "dashboard recomputed",
		slog.Int("from_year", f.FromYear),
		slog.Int("to_year", f.ToYear),
		slog.String("industry", f.Industry),
		slog.String("country", f.Country),
		slog.Int("records", len(filtered)))

	return view
}

// Records returns the filtered record set for the given selection.
func (s *DashboardService) Records(ctx context.Context, f analysis.Filter) []dataset.Record {
	f = s.withDefaults(f).Normalized()
	return analysis.Apply(s.data.Records, f)
}

// FilterOptions are the selector values offered to the user, derived from the
// normalized dataset's distinct values.
type FilterOptions struct {
	Years      []int    `json:"years"`
	Industries []string `json:"industries"`
	Countries  []string `json:"countries"`
}

// FilterOptions lists years ascending and industries/countries
// lexicographically, each group list led by the All sentinel.
func (s *DashboardService) FilterOptions() FilterOptions {
	return FilterOptions{
		Years:      s.data.Years(),
		Industries: append([]string{analysis.All}, s.data.Industries()...),
		Countries:  append([]string{analysis.All}, s.data.Countries()...),
	}
}

// RecordCount returns the size of the loaded dataset.
func (s *DashboardService) RecordCount() int {
	return len(s.data.Records)
}

// withDefaults widens unset year bounds to the dataset's full range.
func (s *DashboardService) withDefaults(f analysis.Filter) analysis.Filter {
	if f.FromYear != 0 && f.ToYear != 0 {
		return f
	}
	years := s.data.Years()
	if len(years) == 0 {
		return f
	}
	if f.FromYear == 0 {
		f.FromYear = years[0]
	}
	if f.ToYear == 0 {
		f.ToYear = years[len(years)-1]
	}
	return f
}
