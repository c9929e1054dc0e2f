package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"eventradar/config"
	deliverycontext "eventradar/internal/delivery/context"
	"eventradar/internal/domain/repository"
	"eventradar/internal/domain/service"
	"eventradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushEnvelope is the body Pub/Sub posts to push subscriptions
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns announced imports into new-event dispatches
type PushHandler struct {
	audience   string
	validate   tokenValidator
	logger     *slog.Logger
	dispatchUC usecase.DispatchUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified
// only when an audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		audience:   params.Config.PubSub.PushAudience,
		validate:   idtoken.Validate,
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Answering 503 makes Pub/Sub redeliver; anything undeliverable is acknowledged with 200.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyToken(ctx, c.Request()); err != nil {
			h.logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Push] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		h.logger.Error("[Push] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var msg service.NewEventsMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		h.logger.Error("[Push] Failed to parse new events message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope, &msg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	ids := parseEventIDs(msg.EventIDs)
	if len(ids) == 0 {
		reqLogger.Info("[Push] No event IDs in message", slog.String("message_id", envelope.Message.MessageID))

		return c.NoContent(http.StatusOK)
	}

	report, err := h.dispatchUC.NotifyNewEvents(ctx, ids)
	if err != nil {
		retry := errors.Is(err, repository.ErrStorageUnavailable)
		reqLogger.Error("[Push] Failed to dispatch new events",
			slog.String("source", msg.Source),
			slog.String("city", msg.City),
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Push] New events dispatched",
		slog.String("source", msg.Source),
		slog.String("city", msg.City),
		slog.Int("events", report.Events),
		slog.Int("messages", report.Messages),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the
// request context, and finally generates one.
func extractRequestID(ctx context.Context, envelope *PushEnvelope, msg *service.NewEventsMessage) string {
	if requestID := envelope.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if msg.RequestID != "" {
		return msg.RequestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func parseEventIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}

// verifyToken validates the OIDC token Pub/Sub attaches to authenticated pushes.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyToken(ctx context.Context, req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}

	payload, err := h.validate(ctx, strings.TrimPrefix(authHeader, bearerPrefix), h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
