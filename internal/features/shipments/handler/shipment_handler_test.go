package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipment-ledger/internal/features/shipments/domain"
	"shipment-ledger/internal/features/shipments/ports"
	"shipment-ledger/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShipmentService is a mock implementation of ports.ShipmentService
type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentService) GetShipment(ctx context.Context, trackingNumber string) (*ports.ShipmentView, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ShipmentView), args.Error(1)
}

func (m *MockShipmentService) UpdateShipment(ctx context.Context, trackingNumber string, req ports.UpdateRequest) (*ports.UpdateResult, error) {
	args := m.Called(ctx, trackingNumber, req)
	var result *ports.UpdateResult
	if args.Get(0) != nil {
		result = args.Get(0).(*ports.UpdateResult)
	}
	return result, args.Error(1)
}

func setupApp(svc *MockShipmentService) *fiber.App {
	app := fiber.New()
	h := NewShipmentHandler(svc)
	app.Post("/shipments", h.CreateShipment)
	app.Get("/shipments/:tracking", h.GetShipment)
	app.Patch("/shipments/:tracking", h.UpdateShipment)
	return app
}

func TestShipmentHandler_CreateShipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		created := &domain.Shipment{
			ID:             "shp-1",
			TrackingNumber: "SL-9F3A4821CD",
			Status:         domain.StatusPending,
		}
		mockService.On("CreateShipment", mock.Anything, mock.AnythingOfType("ports.CreateShipmentInput")).Return(created, nil).Once()

		body, _ := json.Marshal(CreateShipmentRequest{
			SenderName:    "Acme Logistics",
			RecipientName: "Jane Roe",
		})
		req := httptest.NewRequest("POST", "/shipments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingNames", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		body, _ := json.Marshal(CreateShipmentRequest{})
		req := httptest.NewRequest("POST", "/shipments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "CreateShipment")
	})
}

func TestShipmentHandler_GetShipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		view := &ports.ShipmentView{
			Shipment: &domain.Shipment{TrackingNumber: "SL-9F3A4821CD", Status: domain.StatusInTransit},
			Timeline: []domain.TimelineStep{{Status: domain.StatusInTransit, IsCurrent: true}},
		}
		mockService.On("GetShipment", mock.Anything, "SL-9F3A4821CD").Return(view, nil).Once()

		req := httptest.NewRequest("GET", "/shipments/SL-9F3A4821CD", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got ports.ShipmentView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got.Timeline, 1)
		assert.True(t, got.Timeline[0].IsCurrent)
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("GetShipment", mock.Anything, "SL-MISSING000").Return(nil, service.ErrShipmentNotFound).Once()

		req := httptest.NewRequest("GET", "/shipments/SL-MISSING000", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestShipmentHandler_UpdateShipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		result := &ports.UpdateResult{
			Shipment:        &domain.Shipment{TrackingNumber: "SL-9F3A4821CD", Status: domain.StatusInTransit},
			Changed:         true,
			Flags:           domain.ChangeFlags{StatusChanged: true},
			HistoryRecorded: true,
			Event: &domain.TrackingEvent{
				Status:   domain.StatusInTransit,
				Progress: 60,
			},
		}
		mockService.On("UpdateShipment", mock.Anything, "SL-9F3A4821CD", mock.AnythingOfType("ports.UpdateRequest")).Return(result, nil).Once()

		body, _ := json.Marshal(map[string]string{"status": "In Transit"})
		req := httptest.NewRequest("PATCH", "/shipments/SL-9F3A4821CD", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got UpdateShipmentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.True(t, got.Changed)
		assert.True(t, got.StatusChanged)
		assert.True(t, got.HistoryRecorded)
		require.NotNil(t, got.Event)
		assert.Equal(t, 60, got.Event.Progress)
		mockService.AssertExpectations(t)
	})

	t.Run("NoUpdatableFields", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("UpdateShipment", mock.Anything, "SL-9F3A4821CD", mock.AnythingOfType("ports.UpdateRequest")).Return(nil, service.ErrNoUpdatableFields).Once()

		body, _ := json.Marshal(map[string]string{"agent_name": "Maria Gomez"})
		req := httptest.NewRequest("PATCH", "/shipments/SL-9F3A4821CD", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("UpdateShipment", mock.Anything, "SL-MISSING000", mock.AnythingOfType("ports.UpdateRequest")).Return(nil, service.ErrShipmentNotFound).Once()

		body, _ := json.Marshal(map[string]string{"status": "In Transit"})
		req := httptest.NewRequest("PATCH", "/shipments/SL-MISSING000", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("HistoryNotRecorded", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		result := &ports.UpdateResult{
			Shipment:        &domain.Shipment{TrackingNumber: "SL-9F3A4821CD"},
			Changed:         true,
			HistoryRecorded: false,
		}
		mockService.On("UpdateShipment", mock.Anything, "SL-9F3A4821CD", mock.AnythingOfType("ports.UpdateRequest")).
			Return(result, service.ErrHistoryNotRecorded).Once()

		body, _ := json.Marshal(map[string]string{"status": "In Transit"})
		req := httptest.NewRequest("PATCH", "/shipments/SL-9F3A4821CD", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var got ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Contains(t, got.Message, "history entry not recorded")
		mockService.AssertExpectations(t)
	})

	t.Run("StatusConversion", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		eta := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		mockService.On("UpdateShipment", mock.Anything, "SL-9F3A4821CD",
			mock.MatchedBy(func(req ports.UpdateRequest) bool {
				return req.Status != nil && *req.Status == domain.StatusOutForDelivery &&
					req.EstimatedDeliveryDate != nil && req.EstimatedDeliveryDate.Equal(eta)
			})).
			Return(&ports.UpdateResult{Changed: true, HistoryRecorded: true}, nil).Once()

		body, _ := json.Marshal(map[string]interface{}{
			"status":                  "Out for Delivery",
			"estimated_delivery_date": eta.Format(time.RFC3339),
		})
		req := httptest.NewRequest("PATCH", "/shipments/SL-9F3A4821CD", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}
