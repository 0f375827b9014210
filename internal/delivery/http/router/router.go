// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"neosafe/internal/delivery/http/middleware"
	"neosafe/internal/delivery/http/router/handler"
	"neosafe/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BoxHandler      *handler.BoxHandler
	TransferHandler *handler.TransferHandler
	SensorHandler   *handler.SensorHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	boxHandler      *handler.BoxHandler
	transferHandler *handler.TransferHandler
	sensorHandler   *handler.SensorHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		boxHandler:      params.BoxHandler,
		transferHandler: params.TransferHandler,
		sensorHandler:   params.SensorHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Box registry and claim routes
	boxGroup := e.Group("/boxes")
	boxGroup.Use(r.authMiddleware.Authenticate)
	{
		boxGroup.POST("", r.boxHandler.CreateBox)
		boxGroup.GET("", r.boxHandler.ListBoxes)
		boxGroup.GET("/:boxId", r.boxHandler.GetBox)
		boxGroup.DELETE("/:boxId", r.boxHandler.DeleteBox)
		boxGroup.GET("/:boxId/claim-qr", r.boxHandler.GenerateClaimQR)
		boxGroup.POST("/:boxId/property-code", r.boxHandler.GeneratePropertyCode)
		boxGroup.POST("/:boxId/unlock", r.boxHandler.UnlockBox)

		// Telemetry reads are nested under the box they belong to
		boxGroup.GET("/:boxId/readings/latest", r.sensorHandler.GetLatestReadings)
		boxGroup.GET("/:boxId/readings", r.sensorHandler.GetHistoricalReadings)
		boxGroup.GET("/:boxId/camera", r.sensorHandler.GetCameraStream)
	}

	// Claim routes: users redeem a claim code or scanned QR
	claimGroup := e.Group("/claims")
	claimGroup.Use(r.authMiddleware.Authenticate)
	claimGroup.Use(r.authMiddleware.RequireRole(entity.RoleUser))
	{
		claimGroup.POST("", r.boxHandler.ClaimBox)
		claimGroup.POST("/qr", r.boxHandler.ClaimBoxFromQR)
	}

	// Property-code transfer workflow routes
	transferGroup := e.Group("/transfers")
	transferGroup.Use(r.authMiddleware.Authenticate)
	{
		transferGroup.POST("", r.transferHandler.RequestTransfer)
		transferGroup.GET("", r.transferHandler.ListTransferRequests)
		transferGroup.POST("/:requestId/respond", r.transferHandler.RespondToRequest)
	}

	// Device ingest endpoint, authenticated at the device gateway
	e.POST("/ingest/:boxId/readings", r.sensorHandler.IngestReading)

	// Device registration routes for push notifications
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/fcm-token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
