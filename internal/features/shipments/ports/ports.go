package ports

import (
	"context"
	"time"

	"shipment-ledger/internal/features/shipments/domain"
)

// CreateShipmentInput carries the intake data for a new shipment.
type CreateShipmentInput struct {
	SenderName    string
	SenderPhone   string
	SenderEmail   string
	SenderAddress string

	RecipientName    string
	RecipientPhone   string
	RecipientEmail   string
	RecipientAddress string

	WeightKg      float64
	LengthCm      float64
	WidthCm       float64
	HeightCm      float64
	DeclaredValue float64
}

// UpdateRequest is the partial update payload for a shipment. Nil means
// "leave unchanged". A request with none of Status, EstimatedDeliveryDate,
// CurrentLocationName or Note set is rejected as a no-op request.
type UpdateRequest struct {
	Status                *domain.ShipmentStatus
	EstimatedDeliveryDate *time.Time
	CurrentLocationName   *string
	CurrentLat            *float64
	CurrentLng            *float64
	AgentName             *string
	AgentPhone            *string
	AgentEmail            *string
	Note                  *string
}

// HasMutableField reports whether the request carries at least one of the
// fields that make an update request meaningful.
func (r UpdateRequest) HasMutableField() bool {
	return r.Status != nil || r.EstimatedDeliveryDate != nil ||
		r.CurrentLocationName != nil || r.Note != nil
}

// UpdateResult reports what an update actually did.
type UpdateResult struct {
	// Shipment is the post-update record.
	Shipment *domain.Shipment
	// Changed is false when every supplied field already equaled the current
	// value (the untouched signal; not an error).
	Changed bool
	// Flags are the classifier's findings for this update.
	Flags domain.ChangeFlags
	// Event is the ledger entry appended for a significant change, nil
	// otherwise.
	Event *domain.TrackingEvent
	// HistoryRecorded is false only in the partial-failure window where the
	// shipment write succeeded but the ledger append did not.
	HistoryRecorded bool
}

// ShipmentView is the full read model for one shipment: resolved fields, the
// complete ordered history, and the derived timeline.
type ShipmentView struct {
	Shipment *domain.Shipment       `json:"shipment"`
	Agent    domain.AgentInfo       `json:"agent"`
	Location domain.LocationInfo    `json:"location"`
	Events   []domain.TrackingEvent `json:"events"`
	Timeline []domain.TimelineStep  `json:"timeline"`
	// DisplayTimeline is Timeline after the first-plus-last-three truncation.
	DisplayTimeline []domain.TimelineStep `json:"display_timeline"`
}

// UpdateNotification is the payload handed to the notification collaborator
// after a successful update.
type UpdateNotification struct {
	TrackingNumber string                `json:"tracking_number"`
	RecipientEmail string                `json:"recipient_email"`
	Status         domain.ShipmentStatus `json:"status"`
	Description    string                `json:"description"`
	Location       string                `json:"location,omitempty"`
	Progress       int                   `json:"progress"`
	Timestamp      time.Time             `json:"timestamp"`
}

// ShipmentService defines the primary port for shipment operations.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	GetShipment(ctx context.Context, trackingNumber string) (*ShipmentView, error)
	UpdateShipment(ctx context.Context, trackingNumber string, req UpdateRequest) (*UpdateResult, error)
}

// ShipmentRepository defines the secondary port for shipment records.
type ShipmentRepository interface {
	// Save persists the full shipment record, replacing the previous version.
	Save(ctx context.Context, shipment *domain.Shipment) error
	// FindByTrackingNumber returns nil, nil when the shipment does not exist.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
}

// EventLedger defines the secondary port for the append-only history.
// There is no update or delete: entries are immutable once appended.
type EventLedger interface {
	Append(ctx context.Context, trackingNumber string, event *domain.TrackingEvent) error
	// ListByShipment returns all events in append order; empty when none.
	ListByShipment(ctx context.Context, trackingNumber string) ([]domain.TrackingEvent, error)
}

// Notifier defines the secondary port for the external notification
// collaborator (email dispatch). Calls are best effort; failures are logged
// by the caller and never block or roll back an update.
type Notifier interface {
	NotifyUpdate(ctx context.Context, n UpdateNotification) error
}
