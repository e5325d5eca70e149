package http

import (
	"context"

	"github.com/saibhavana-turai/layoffsanalysis/internal/analysis"
	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
	"github.com/saibhavana-turai/layoffsanalysis/internal/services"
)

// DashboardServiceInterface defines what the dashboard handler needs from the
// services layer. Kept as an interface so handler tests can stub it.
type DashboardServiceInterface interface {
	View(ctx context.Context, f analysis.Filter) services.DashboardView
	Records(ctx context.Context, f analysis.Filter) []dataset.Record
	FilterOptions() services.FilterOptions
}
