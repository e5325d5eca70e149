package services

import (
	"context"
	"log/slog"
	"time"
)

// HealthService reports liveness and dataset readiness.
type HealthService struct {
	logger    *slog.Logger
	startedAt time.Time
	version   string
	dashboard *DashboardService
}

// NewHealthService creates a new health service
func NewHealthService(dashboard *DashboardService, version string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		logger:    logger.With(slog.String("component", "health_service")),
		startedAt: time.Now(),
		version:   version,
		dashboard: dashboard,
	}
}

// HealthStatus is the health check response body.
type HealthStatus struct {
	Status         string    `json:"status"`
	Version        string    `json:"version"`
	Uptime         string    `json:"uptime"`
	DatasetRecords int       `json:"dataset_records"`
	CheckedAt      time.Time `json:"checked_at"`
}

// Status reports the current health. The service is degraded when the loaded
// dataset is empty, since every dashboard view would be all sentinels.
func (s *HealthService) Status(ctx context.Context) HealthStatus {
	status := "healthy"
	records := 0
	if s.dashboard != nil {
		records = s.dashboard.RecordCount()
	}
	if records == 0 {
		status = "degraded"
	}

	return HealthStatus{
		Status:         status,
		Version:        s.version,
		Uptime:         time.Since(s.startedAt).Round(time.Second).String(),
		DatasetRecords: records,
		CheckedAt:      time.Now(),
	}
}
