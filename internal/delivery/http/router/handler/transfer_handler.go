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

// TransferHandlerParams holds dependencies for TransferHandler, injected by Fx.
type TransferHandlerParams struct {
	fx.In

	TransferUC usecase.TransferUsecase
	Logger     *slog.Logger
}

// TransferHandler holds dependencies for property-code transfer handlers
type TransferHandler struct {
	transferUC usecase.TransferUsecase
	logger     *slog.Logger
}

// NewTransferHandler is the constructor for TransferHandler
func NewTransferHandler(params TransferHandlerParams) *TransferHandler {
	return &TransferHandler{
		transferUC: params.TransferUC,
		logger:     params.Logger,
	}
}

// RequestTransferRequest represents the request body for opening a transfer request
type RequestTransferRequest struct {
	PropertyCode string `json:"property_code" validate:"required"`
	Notes        string `json:"notes"`
}

// RespondTransferRequest represents the request body for resolving a transfer request
type RespondTransferRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

// RequestTransfer handles opening a pending transfer request by property code
func (h *TransferHandler) RequestTransfer(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	var req RequestTransferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transfer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.transferUC.RequestTransfer(c.Request().Context(), principal, req.PropertyCode, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Transfer request created successfully")
}

// ListTransferRequests handles retrieving the requests visible to the caller
func (h *TransferHandler) ListTransferRequests(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	requests, err := h.transferUC.ListTransferRequests(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Transfer requests retrieved successfully")
}

// RespondToRequest handles approving or rejecting a pending transfer request
func (h *TransferHandler) RespondToRequest(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid transfer request ID")
	}

	var req RespondTransferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	request, err := h.transferUC.RespondToRequest(c.Request().Context(), principal, requestID, req.Approve, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Transfer request resolved successfully")
}
