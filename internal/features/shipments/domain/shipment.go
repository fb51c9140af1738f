package domain

import "time"

// ShipmentStatus represents the current delivery state of a shipment.
// The set is closed but transitions are not: operators may move a shipment
// from any status to any other, including out of Delivered or Cancelled,
// so nothing downstream may treat a status as final.
type ShipmentStatus string

const (
	StatusPending             ShipmentStatus = "Pending"
	StatusAwaitingPayment     ShipmentStatus = "Awaiting Payment"
	StatusPaymentConfirmed    ShipmentStatus = "Payment Confirmed"
	StatusProcessing          ShipmentStatus = "Processing"
	StatusReadyForPickup      ShipmentStatus = "Ready for Pickup"
	StatusDriverEnRoute       ShipmentStatus = "Driver En Route"
	StatusPickedUp            ShipmentStatus = "Picked Up"
	StatusAtWarehouse         ShipmentStatus = "At Warehouse"
	StatusInTransit           ShipmentStatus = "In Transit"
	StatusDepartedFacility    ShipmentStatus = "Departed Facility"
	StatusArrivedAtFacility   ShipmentStatus = "Arrived at Facility"
	StatusOutForDelivery      ShipmentStatus = "Out for Delivery"
	StatusDelivered           ShipmentStatus = "Delivered"
	StatusReturnedToSender    ShipmentStatus = "Returned to Sender"
	StatusCancelled           ShipmentStatus = "Cancelled"
	StatusOnHold              ShipmentStatus = "On Hold"
	StatusDelayed             ShipmentStatus = "Delayed"
	StatusWeatherDelay        ShipmentStatus = "Weather Delay"
	StatusAddressIssue        ShipmentStatus = "Address Issue"
	StatusCustomsHold         ShipmentStatus = "Customs Hold"
	StatusInspectionRequired  ShipmentStatus = "Inspection Required"
	StatusPaymentVerification ShipmentStatus = "Payment Verification Required"
	StatusLostPackage         ShipmentStatus = "Lost Package"
	StatusDamagedPackage      ShipmentStatus = "Damaged Package"
)

// Side-channel map keys. The map predates the dedicated agent/location
// columns and is still read by external reporting consumers, so writes must
// keep it in sync (see SyncSideChannel).
const (
	SideChannelAgentKey     = "agent"
	SideChannelLocationKey  = "currentLocation"
	SideChannelSignatureKey = "signature"
)

// AgentInfo describes the delivery agent assigned to a shipment.
type AgentInfo struct {
	Name   string  `json:"name,omitempty"`
	Phone  string  `json:"phone,omitempty"`
	Email  string  `json:"email,omitempty"`
	Rating float64 `json:"rating,omitempty"`
	Photo  string  `json:"photo,omitempty"`
	ID     string  `json:"id,omitempty"`
}

// LocationInfo describes the shipment's last known position. Coordinates are
// optional; the location name is free text geocoded by an external
// collaborator.
type LocationInfo struct {
	Name string   `json:"name,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// Shipment is the mutable root record for one package in transit.
// Agent and location live both in dedicated fields and, for legacy readers,
// in the SideChannel map; Resolve merges the two views.
type Shipment struct {
	ID             string         `json:"id"`
	TrackingNumber string         `json:"tracking_number"`
	Status         ShipmentStatus `json:"status"`

	SenderName    string `json:"sender_name"`
	SenderPhone   string `json:"sender_phone,omitempty"`
	SenderEmail   string `json:"sender_email,omitempty"`
	SenderAddress string `json:"sender_address,omitempty"`

	RecipientName    string `json:"recipient_name"`
	RecipientPhone   string `json:"recipient_phone,omitempty"`
	RecipientEmail   string `json:"recipient_email,omitempty"`
	RecipientAddress string `json:"recipient_address,omitempty"`

	WeightKg      float64 `json:"weight_kg,omitempty"`
	LengthCm      float64 `json:"length_cm,omitempty"`
	WidthCm       float64 `json:"width_cm,omitempty"`
	HeightCm      float64 `json:"height_cm,omitempty"`
	DeclaredValue float64 `json:"declared_value,omitempty"`

	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`

	CurrentLocationName string   `json:"current_location_name,omitempty"`
	CurrentLat          *float64 `json:"current_lat,omitempty"`
	CurrentLng          *float64 `json:"current_lng,omitempty"`

	AgentName   string  `json:"agent_name,omitempty"`
	AgentPhone  string  `json:"agent_phone,omitempty"`
	AgentEmail  string  `json:"agent_email,omitempty"`
	AgentRating float64 `json:"agent_rating,omitempty"`
	AgentPhoto  string  `json:"agent_photo,omitempty"`
	AgentID     string  `json:"agent_id,omitempty"`

	DeliveryNotes string `json:"delivery_notes,omitempty"`

	// SideChannel is the legacy loosely-typed overflow blob ("data" in the
	// persisted record). Unrelated keys must survive every write.
	SideChannel map[string]interface{} `json:"data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the shipment, including the side-channel map.
// The update flow mutates a clone so the pre-update snapshot stays intact for
// the change classifier.
func (s *Shipment) Clone() *Shipment {
	c := *s

	if s.CurrentLat != nil {
		v := *s.CurrentLat
		c.CurrentLat = &v
	}
	if s.CurrentLng != nil {
		v := *s.CurrentLng
		c.CurrentLng = &v
	}
	if s.EstimatedDelivery != nil {
		v := *s.EstimatedDelivery
		c.EstimatedDelivery = &v
	}
	if s.SideChannel != nil {
		c.SideChannel = make(map[string]interface{}, len(s.SideChannel))
		for k, v := range s.SideChannel {
			c.SideChannel[k] = v
		}
	}
	return &c
}
