package handler

import (
	"context"
	"log/slog"
	"net/http"

	"eventradar/config"
	"eventradar/internal/delivery/api/response"
	"eventradar/internal/delivery/scheduler"
	"eventradar/internal/domain/entity"
	"eventradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobRunner exposes the scheduled jobs to the admin and health endpoints.
type JobRunner interface {
	Trigger(ctx context.Context, name string) error
	Statuses() []scheduler.JobStatus
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	ImportUC    usecase.ImportUsecase
	DispatchUC  usecase.DispatchUsecase
	RecipientUC usecase.RecipientUsecase
	Jobs        JobRunner
}

// AdminHandler serves the manual triggers and the recipient directory upsert
type AdminHandler struct {
	cfg         *config.Config
	logger      *slog.Logger
	importUC    usecase.ImportUsecase
	dispatchUC  usecase.DispatchUsecase
	recipientUC usecase.RecipientUsecase
	jobs        JobRunner
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		cfg:         params.Config,
		logger:      params.Logger,
		importUC:    params.ImportUC,
		dispatchUC:  params.DispatchUC,
		recipientUC: params.RecipientUC,
		jobs:        params.Jobs,
	}
}

// ImportRequest represents the request body for a manual import run.
// Notify defaults to true: events created here are not new to later imports,
// so skipping dispatch with "notify": false means they are never pushed.
type ImportRequest struct {
	Source     string `json:"source" validate:"required,oneof=kudago yandex_afisha"`
	City       string `json:"city" validate:"required,max=64"`
	WindowDays int    `json:"window_days" validate:"omitempty,min=1,max=365"`
	Limit      int    `json:"limit" validate:"omitempty,min=1,max=1000"`
	Notify     *bool  `json:"notify"`
}

// ImportResponse carries the import statistics and, when requested, the dispatch report
type ImportResponse struct {
	Import   *entity.ImportStats    `json:"import"`
	Dispatch *entity.DispatchReport `json:"dispatch,omitempty"`
}

// NotifyRequest represents the request body for a manual new-event dispatch
type NotifyRequest struct {
	EventIDs []uuid.UUID `json:"event_ids" validate:"required,min=1,max=500"`
}

// Import runs one import for a source and city, then dispatches the new events unless told not to
func (h *AdminHandler) Import(c echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid import input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	source := entity.Source(req.Source)

	var (
		stats *entity.ImportStats
		err   error
	)
	if req.WindowDays == 0 && req.Limit == 0 {
		stats, err = h.importUC.RunImport(ctx, source, req.City)
	} else {
		windowDays := req.WindowDays
		if windowDays == 0 {
			windowDays = h.cfg.Importer.WindowDays
		}
		limit := req.Limit
		if limit == 0 {
			limit = h.cfg.Importer.Limit
		}
		stats, err = h.importUC.Import(ctx, source, req.City, windowDays, limit)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := ImportResponse{Import: stats}
	notify := req.Notify == nil || *req.Notify
	if notify && len(stats.NewEventIDs) > 0 {
		report, err := h.dispatchUC.NotifyNewEvents(ctx, stats.NewEventIDs)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		resp.Dispatch = report
	}

	return response.Success(c, http.StatusOK, resp)
}

// Notify dispatches the given events to eligible recipients
func (h *AdminHandler) Notify(c echo.Context) error {
	var req NotifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid notify input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	report, err := h.dispatchUC.NotifyNewEvents(c.Request().Context(), req.EventIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// RunJob runs a scheduled job immediately
func (h *AdminHandler) RunJob(c echo.Context) error {
	if err := h.jobs.Trigger(c.Request().Context(), c.Param("job")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"job": c.Param("job"), "status": "finished"})
}

// SaveRecipient creates or replaces the preferences of the recipient in the path
func (h *AdminHandler) SaveRecipient(c echo.Context) error {
	var prefs usecase.RecipientPreferences
	if err := c.Bind(&prefs); err != nil {
		return response.BindingError(c, "Invalid recipient input")
	}
	prefs.AccountID = c.Param("account")

	if err := c.Validate(&prefs); err != nil {
		return response.ValidationError(c, err)
	}

	recipient, err := h.recipientUC.SavePreferences(c.Request().Context(), &prefs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipient)
}

// GetRecipient returns the recipient in the path
func (h *AdminHandler) GetRecipient(c echo.Context) error {
	recipient, err := h.recipientUC.GetRecipient(c.Request().Context(), c.Param("account"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipient)
}
