package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"neosafe/config"
	deliverycontext "neosafe/internal/delivery/context"
	"neosafe/internal/domain/constants"
	"neosafe/internal/domain/entity"
	"neosafe/internal/domain/repository"
	"neosafe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying box lifecycle events
// and fans them out as push notifications to the target account's devices.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse box event
	var event service.BoxEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse box event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing box event",
		slog.String("event_type", event.Type),
		slog.Int64("box_id", event.BoxID),
		slog.String("target_id", event.TargetID),
	)

	// Process the event
	if err := h.processBoxEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process box event",
			slog.String("event_type", event.Type),
			slog.Int64("box_id", event.BoxID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Box event processed successfully",
		slog.String("event_type", event.Type),
		slog.Int64("box_id", event.BoxID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.BoxEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processBoxEvent fans the event out to the target account's active devices
func (h *PushHandler) processBoxEvent(ctx context.Context, event *service.BoxEvent) error {
	targetID, err := uuid.Parse(event.TargetID)
	if err != nil {
		return errors.WithStack(err)
	}

	devices, err := h.deviceRepo.FindActiveDevicesByUser(ctx, targetID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		h.logger.Info("[Worker] No devices registered for target account",
			slog.String("target_id", event.TargetID),
			slog.String("event_type", event.Type),
		)

		return nil
	}

	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		deviceMap[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	title, body, data := h.prepareNotificationContent(event)

	successCount, failureCount, invalidTokens, err := h.notificationSvc.SendBatchNotification(
		ctx, tokens, title, body, data,
	)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	// Cleanup invalid tokens
	h.cleanupInvalidTokens(ctx, invalidTokens, deviceMap)

	h.logger.Info("[Worker] Box event notifications sent",
		slog.String("event_type", event.Type),
		slog.Int64("box_id", event.BoxID),
		slog.Int("total_sent", successCount),
		slog.Int("total_failed", failureCount),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// prepareNotificationContent creates the notification title, body, and data
func (h *PushHandler) prepareNotificationContent(event *service.BoxEvent) (title, body string, data map[string]string) {
	switch event.Type {
	case service.EventBoxClaimed:
		title = "箱子認領通知"
	case service.EventTransferRequested:
		title = "過戶申請通知"
	case service.EventTransferResolved:
		title = "過戶結果通知"
	case service.EventBoxUnlock:
		title = "遠端開鎖"
	default:
		title = "保管箱通知"
	}

	body = event.Detail
	if event.BoxName != "" {
		body = fmt.Sprintf("%s：%s", event.BoxName, event.Detail)
	}

	data = map[string]string{
		"event_type": event.Type,
		"box_id":     strconv.FormatInt(event.BoxID, 10),
		"actor_id":   event.ActorID,
	}
	if event.Decision != "" {
		data["decision"] = event.Decision
	}

	return title, body, data
}

// cleanupInvalidTokens removes devices with invalid FCM tokens
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string, deviceMap map[string]*entity.UserDevice) {
	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := h.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
				h.logger.Warn("[Worker] Failed to delete invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
