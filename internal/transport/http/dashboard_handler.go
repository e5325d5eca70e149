package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/saibhavana-turai/layoffsanalysis/internal/analysis"
	apierrors "github.com/saibhavana-turai/layoffsanalysis/internal/errors"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the dashboard routes
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetDashboard)
	r.Get("/records", h.GetRecords)
	r.Get("/filters", h.GetFilterOptions)

	return r
}

// filterQuery is the validated shape of the dashboard query string. Zero year
// bounds mean "whole dataset range"; reversed bounds are legal and swapped by
// the filter engine.
type filterQuery struct {
	FromYear int    `validate:"omitempty,gte=1000,lte=9999"`
	ToYear   int    `validate:"omitempty,gte=1000,lte=9999"`
	Industry string `validate:"omitempty,max=120"`
	Country  string `validate:"omitempty,max=120"`
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	f, err := h.parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	view := h.service.View(r.Context(), f)
	render.JSON(w, r, view)
}

// GetRecords handles GET /api/dashboard/records
func (h *DashboardHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	f, err := h.parseFilter(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	records := h.service.Records(r.Context(), f)
	render.JSON(w, r, map[string]interface{}{
		"records": records,
		"count":   len(records),
	})
}

// GetFilterOptions handles GET /api/dashboard/filters
func (h *DashboardHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.FilterOptions())
}

// parseFilter reads and validates the filter selection from the query string.
func (h *DashboardHandler) parseFilter(r *http.Request) (analysis.Filter, error) {
	q := r.URL.Query()

	var query filterQuery
	var err error

	if query.FromYear, err = yearParam(q.Get("from_year")); err != nil {
		return analysis.Filter{}, apierrors.ErrValidation("from_year", err.Error())
	}
	if query.ToYear, err = yearParam(q.Get("to_year")); err != nil {
		return analysis.Filter{}, apierrors.ErrValidation("to_year", err.Error())
	}
	query.Industry = q.Get("industry")
	query.Country = q.Get("country")

	if err := h.validate.Struct(query); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := errs[0].Field()
			return analysis.Filter{}, apierrors.ErrValidation(field, fmt.Sprintf("invalid value for %s", field))
		}
		return analysis.Filter{}, apierrors.InvalidRequestWithError(err)
	}

	return analysis.Filter{
		FromYear: query.FromYear,
		ToYear:   query.ToYear,
		Industry: query.Industry,
		Country:  query.Country,
	}, nil
}

func yearParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("must be an integer year, got %q", raw)
	}
	return year, nil
}
