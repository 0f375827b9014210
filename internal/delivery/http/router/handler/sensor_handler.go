package handler

import (
	"log/slog"
	"net/http"
	"time"

	"neosafe/internal/delivery/http/middleware"
	"neosafe/internal/delivery/http/response"
	"neosafe/internal/domain/entity"
	"neosafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SensorHandlerParams holds dependencies for SensorHandler, injected by Fx.
type SensorHandlerParams struct {
	fx.In

	TelemetryUC usecase.TelemetryUsecase
	Logger      *slog.Logger
}

// SensorHandler holds dependencies for telemetry handlers
type SensorHandler struct {
	telemetryUC usecase.TelemetryUsecase
	logger      *slog.Logger
}

// NewSensorHandler is the constructor for SensorHandler
func NewSensorHandler(params SensorHandlerParams) *SensorHandler {
	return &SensorHandler{
		telemetryUC: params.TelemetryUC,
		logger:      params.Logger,
	}
}

// IngestReadingRequest represents a device-reported measurement
type IngestReadingRequest struct {
	Type       string    `json:"type" validate:"required"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

// GetLatestReadings handles retrieving the latest reading of every sensor type
func (h *SensorHandler) GetLatestReadings(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	readings, err := h.telemetryUC.LatestReadings(c.Request().Context(), principal, boxID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, readings, "Latest readings retrieved successfully")
}

// GetHistoricalReadings handles retrieving one sensor's readings within a time range
func (h *SensorHandler) GetHistoricalReadings(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	sensorType := entity.SensorType(c.QueryParam("type"))

	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TIME", "Invalid 'from' timestamp, expected RFC3339")
	}

	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TIME", "Invalid 'to' timestamp, expected RFC3339")
	}

	readings, err := h.telemetryUC.HistoricalReadings(c.Request().Context(), principal, boxID, sensorType, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, readings, "Historical readings retrieved successfully")
}

// GetCameraStream handles resolving the box's camera stream pointer
func (h *SensorHandler) GetCameraStream(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	streamURL, err := h.telemetryUC.CameraStream(c.Request().Context(), principal, boxID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"stream_url": streamURL}, "Camera stream retrieved successfully")
}

// IngestReading handles a measurement reported by a box device.
// Device ingest is authenticated by the device gateway, not by user tokens.
func (h *SensorHandler) IngestReading(c echo.Context) error {
	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	var req IngestReadingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reading input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reading, err := h.telemetryUC.IngestReading(c.Request().Context(), &usecase.ReadingInput{
		BoxID:      boxID,
		Type:       entity.SensorType(req.Type),
		Value:      req.Value,
		RecordedAt: req.RecordedAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reading, "Reading ingested successfully")
}
