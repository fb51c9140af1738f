package handler

import (
	"errors"
	"net/http"
	"time"

	"shipment-ledger/internal/core/logger"
	"shipment-ledger/internal/features/shipments/domain"
	"shipment-ledger/internal/features/shipments/ports"
	"shipment-ledger/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CreateShipmentRequest represents the request body for shipment intake.
type CreateShipmentRequest struct {
	SenderName    string `json:"sender_name"`
	SenderPhone   string `json:"sender_phone"`
	SenderEmail   string `json:"sender_email"`
	SenderAddress string `json:"sender_address"`

	RecipientName    string `json:"recipient_name"`
	RecipientPhone   string `json:"recipient_phone"`
	RecipientEmail   string `json:"recipient_email"`
	RecipientAddress string `json:"recipient_address"`

	WeightKg      float64 `json:"weight_kg"`
	LengthCm      float64 `json:"length_cm"`
	WidthCm       float64 `json:"width_cm"`
	HeightCm      float64 `json:"height_cm"`
	DeclaredValue float64 `json:"declared_value"`
}

// UpdateShipmentRequest represents the partial update payload. Absent fields
// are left unchanged.
type UpdateShipmentRequest struct {
	Status                *string    `json:"status"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
	CurrentLocationName   *string    `json:"current_location_name"`
	CurrentLat            *float64   `json:"current_lat"`
	CurrentLng            *float64   `json:"current_lng"`
	AgentName             *string    `json:"agent_name"`
	AgentPhone            *string    `json:"agent_phone"`
	AgentEmail            *string    `json:"agent_email"`
	Note                  *string    `json:"note"`
}

// UpdateShipmentResponse reports what the update did.
type UpdateShipmentResponse struct {
	Changed         bool                  `json:"changed"`
	StatusChanged   bool                  `json:"status_changed"`
	LocationChanged bool                  `json:"location_changed"`
	HistoryRecorded bool                  `json:"history_recorded"`
	Event           *domain.TrackingEvent `json:"event,omitempty"`
	Shipment        *domain.Shipment      `json:"shipment"`
}

// CreateShipment godoc
// @Summary Register a new shipment
// @Description Creates a shipment in status Pending and returns its tracking number.
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment body CreateShipmentRequest true "Shipment intake data"
// @Success 201 {object} domain.Shipment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments [post]
func (h *ShipmentHandler) CreateShipment(c *fiber.Ctx) error {
	var req CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	if req.SenderName == "" || req.RecipientName == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "sender_name and recipient_name are required",
			RayID:   rayID(c),
		})
	}

	shipment, err := h.service.CreateShipment(c.Context(), ports.CreateShipmentInput{
		SenderName:       req.SenderName,
		SenderPhone:      req.SenderPhone,
		SenderEmail:      req.SenderEmail,
		SenderAddress:    req.SenderAddress,
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		RecipientEmail:   req.RecipientEmail,
		RecipientAddress: req.RecipientAddress,
		WeightKg:         req.WeightKg,
		LengthCm:         req.LengthCm,
		WidthCm:          req.WidthCm,
		HeightCm:         req.HeightCm,
		DeclaredValue:    req.DeclaredValue,
	})
	if err != nil {
		logger.Get().Error("Failed to create shipment", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusCreated).JSON(shipment)
}

// GetShipment godoc
// @Summary Get a shipment with its tracking history
// @Description Retrieves the resolved shipment, its full event history and the derived timeline.
// @Tags shipments
// @Produce json
// @Param tracking path string true "Tracking Number"
// @Success 200 {object} ports.ShipmentView
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments/{tracking} [get]
func (h *ShipmentHandler) GetShipment(c *fiber.Ctx) error {
	trackingNumber := c.Params("tracking")
	if trackingNumber == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   rayID(c),
		})
	}

	view, err := h.service.GetShipment(c.Context(), trackingNumber)
	if err != nil {
		if errors.Is(err, service.ErrShipmentNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "shipment not found",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to get shipment",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			RayID:   rayID(c),
		})
	}

	return c.JSON(view)
}

// UpdateShipment godoc
// @Summary Update a shipment's status, location or agent
// @Description Applies a partial update and appends a tracking event when the status or location changed.
// @Tags shipments
// @Accept json
// @Produce json
// @Param tracking path string true "Tracking Number"
// @Param update body UpdateShipmentRequest true "Fields to update"
// @Success 200 {object} UpdateShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments/{tracking} [patch]
func (h *ShipmentHandler) UpdateShipment(c *fiber.Ctx) error {
	trackingNumber := c.Params("tracking")

	var req UpdateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	update := ports.UpdateRequest{
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		CurrentLocationName:   req.CurrentLocationName,
		CurrentLat:            req.CurrentLat,
		CurrentLng:            req.CurrentLng,
		AgentName:             req.AgentName,
		AgentPhone:            req.AgentPhone,
		AgentEmail:            req.AgentEmail,
		Note:                  req.Note,
	}
	if req.Status != nil {
		status := domain.ShipmentStatus(*req.Status)
		update.Status = &status
	}

	result, err := h.service.UpdateShipment(c.Context(), trackingNumber, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdatableFields):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "update request must set at least one of status, estimated_delivery_date, current_location_name or note",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrShipmentNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "shipment not found",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrHistoryNotRecorded):
			// The shipment update stands; only the ledger entry is missing.
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Message: "shipment updated but history entry not recorded",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to update shipment",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			RayID:   rayID(c),
		})
	}

	return c.JSON(UpdateShipmentResponse{
		Changed:         result.Changed,
		StatusChanged:   result.Flags.StatusChanged,
		LocationChanged: result.Flags.LocationChanged,
		HistoryRecorded: result.HistoryRecorded,
		Event:           result.Event,
		Shipment:        result.Shipment,
	})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
