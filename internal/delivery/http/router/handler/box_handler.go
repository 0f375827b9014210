package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"neosafe/internal/delivery/http/middleware"
	"neosafe/internal/delivery/http/response"
	"neosafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BoxHandlerParams holds dependencies for BoxHandler, injected by Fx.
type BoxHandlerParams struct {
	fx.In

	BoxUC  usecase.BoxUsecase
	Logger *slog.Logger
}

// BoxHandler holds dependencies for box registry and claim handlers
type BoxHandler struct {
	boxUC  usecase.BoxUsecase
	logger *slog.Logger
}

// NewBoxHandler is the constructor for BoxHandler
func NewBoxHandler(params BoxHandlerParams) *BoxHandler {
	return &BoxHandler{
		boxUC:  params.BoxUC,
		logger: params.Logger,
	}
}

// CreateBoxRequest represents the request body for registering a new box
type CreateBoxRequest struct {
	Name            string `json:"name" validate:"required"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serial_number"`
	CameraStreamURL string `json:"camera_stream_url"`
}

// ClaimBoxRequest represents the request body for claiming a box by code
type ClaimBoxRequest struct {
	ClaimCode string `json:"claim_code" validate:"required"`
}

// ClaimQRRequest represents the request body for claiming a box from a scanned QR
type ClaimQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CreateBox handles registering a new box
func (h *BoxHandler) CreateBox(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	var req CreateBoxRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid box input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	box, err := h.boxUC.CreateBox(c.Request().Context(), principal, &usecase.BoxInput{
		Name:            req.Name,
		Model:           req.Model,
		SerialNumber:    req.SerialNumber,
		CameraStreamURL: req.CameraStreamURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, box, "Box registered successfully")
}

// ListBoxes handles retrieving the boxes visible to the caller
func (h *BoxHandler) ListBoxes(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxes, err := h.boxUC.ListBoxes(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, boxes, "Boxes retrieved successfully")
}

// GetBox handles retrieving one box
func (h *BoxHandler) GetBox(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	box, err := h.boxUC.GetBox(c.Request().Context(), principal, boxID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, box, "Box retrieved successfully")
}

// DeleteBox handles removing an unclaimed box
func (h *BoxHandler) DeleteBox(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	if err := h.boxUC.DeleteBox(c.Request().Context(), principal, boxID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Box deleted"}, "Box deleted successfully")
}

// ClaimBox handles claiming a box by its claim code
func (h *BoxHandler) ClaimBox(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	var req ClaimBoxRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	box, err := h.boxUC.ClaimBox(c.Request().Context(), principal, req.ClaimCode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, box, "Box claimed successfully")
}

// ClaimBoxFromQR handles claiming a box from scanned QR data
func (h *BoxHandler) ClaimBoxFromQR(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	var req ClaimQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR claim input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	box, err := h.boxUC.ClaimBoxFromQR(c.Request().Context(), principal, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, box, "Box claimed successfully")
}

// GenerateClaimQR handles rendering the box's claim code as a printable QR image
func (h *BoxHandler) GenerateClaimQR(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	qrCode, err := h.boxUC.GenerateClaimQR(c.Request().Context(), principal, boxID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Type", "image/png")
	c.Response().Header().Set("Content-Disposition", "inline; filename=claim-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// GeneratePropertyCode handles assigning a fresh property code to a box
func (h *BoxHandler) GeneratePropertyCode(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	code, err := h.boxUC.GeneratePropertyCode(c.Request().Context(), principal, boxID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"property_code": code}, "Property code generated successfully")
}

// UnlockBox handles sending the remote unlock signal
func (h *BoxHandler) UnlockBox(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	boxID, err := parseBoxID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid box ID")
	}

	if err := h.boxUC.UnlockBox(c.Request().Context(), principal, boxID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "Unlock signal sent"}, "Unlock signal sent successfully")
}

// parseBoxID parses the :boxId path parameter.
func parseBoxID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("boxId"), 10, 64)
}
