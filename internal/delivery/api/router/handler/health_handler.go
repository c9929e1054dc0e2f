package handler

import (
	"net/http"

	"eventradar/internal/delivery/api/response"
	"eventradar/internal/delivery/scheduler"
	"eventradar/internal/domain/entity"
	"eventradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MetricsExporter serves collected metrics in a scrape format.
type MetricsExporter interface {
	Handler() http.Handler
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Jobs    JobRunner
	Metrics MetricsExporter
}

// HealthHandler serves the liveness counters and the metrics scrape endpoint
type HealthHandler struct {
	statsUC usecase.StatsUsecase
	jobs    JobRunner
	metrics http.Handler
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		statsUC: params.StatsUC,
		jobs:    params.Jobs,
		metrics: params.Metrics.Handler(),
	}
}

// HealthResponse reports store counts and job states
type HealthResponse struct {
	Status string                `json:"status"`
	Store  *entity.StoreStats    `json:"store"`
	Jobs   []scheduler.JobStatus `json:"jobs"`
}

// Health reports event and recipient counts. A storage failure answers 503.
func (h *HealthHandler) Health(c echo.Context) error {
	stats, err := h.statsUC.Snapshot(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HealthResponse{
		Status: "ok",
		Store:  stats,
		Jobs:   h.jobs.Statuses(),
	})
}

// Metrics serves the Prometheus exposition
func (h *HealthHandler) Metrics(c echo.Context) error {
	h.metrics.ServeHTTP(c.Response(), c.Request())

	return nil
}
