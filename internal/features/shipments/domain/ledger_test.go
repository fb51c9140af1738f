package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTrackingEvent_NotSignificant verifies no event is built for
// insignificant changes.
func TestNewTrackingEvent_NotSignificant(t *testing.T) {
	e := NewTrackingEvent("evt-1", "shp-1", ResolvedShipment{}, ChangeFlags{}, "", time.Now())
	assert.Nil(t, e)
}

// TestNewTrackingEvent_StatusOnly verifies the spec scenario: Processing to
// In Transit at an unchanged location freezes progress 60 and keeps the known
// location, and the description mentions only the status.
func TestNewTrackingEvent_StatusOnly(t *testing.T) {
	at := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	after := ResolvedShipment{
		Status:   StatusInTransit,
		Location: LocationInfo{Name: "Origin Hub"},
		Agent:    AgentInfo{Name: "Maria Gomez"},
	}

	e := NewTrackingEvent("evt-1", "shp-1", after, ChangeFlags{StatusChanged: true}, "", at)

	require.NotNil(t, e)
	assert.Equal(t, "shp-1", e.ShipmentID)
	assert.Equal(t, StatusInTransit, e.Status)
	assert.Equal(t, 60, e.Progress)
	assert.Equal(t, "Origin Hub", e.Location)
	assert.Equal(t, "Maria Gomez", e.Handler)
	assert.Equal(t, at, e.Timestamp)
	assert.Equal(t, "Package is in transit", e.Description)
	assert.NotContains(t, e.Description, "location updated")
}

// TestNewTrackingEvent_LocationOnly verifies a pure location move describes
// only the location.
func TestNewTrackingEvent_LocationOnly(t *testing.T) {
	after := ResolvedShipment{
		Status:   StatusInTransit,
		Location: LocationInfo{Name: "Regional Depot", Lat: floatPtr(4.6), Lng: floatPtr(-74.1)},
	}

	e := NewTrackingEvent("evt-1", "shp-1", after, ChangeFlags{LocationChanged: true}, "", time.Now())

	require.NotNil(t, e)
	assert.Equal(t, "Package location updated to Regional Depot", e.Description)
	require.NotNil(t, e.Latitude)
	assert.Equal(t, 4.6, *e.Latitude)
	require.NotNil(t, e.Longitude)
	assert.Equal(t, -74.1, *e.Longitude)
}

// TestNewTrackingEvent_Combined verifies both aspects fold into one sentence.
func TestNewTrackingEvent_Combined(t *testing.T) {
	after := ResolvedShipment{
		Status:   StatusOutForDelivery,
		Location: LocationInfo{Name: "Last Mile Hub"},
	}

	e := NewTrackingEvent("evt-1", "shp-1", after, ChangeFlags{StatusChanged: true, LocationChanged: true}, "", time.Now())

	require.NotNil(t, e)
	assert.Equal(t, "Package is out for delivery. Package is now at Last Mile Hub", e.Description)
	assert.Equal(t, 85, e.Progress)
}

// TestNewTrackingEvent_NoteAppended verifies the operator note rides along in
// the description.
func TestNewTrackingEvent_NoteAppended(t *testing.T) {
	after := ResolvedShipment{Status: StatusOnHold, Location: LocationInfo{Name: "Customs"}}

	e := NewTrackingEvent("evt-1", "shp-1", after, ChangeFlags{StatusChanged: true}, "awaiting import papers", time.Now())

	require.NotNil(t, e)
	assert.Equal(t, "Shipment is on hold. Note: awaiting import papers", e.Description)
}

// TestNewTrackingEvent_CancelledFreezesZero verifies the spec scenario where
// a cancellation after Out for Delivery freezes progress 0 on the new event
// only.
func TestNewTrackingEvent_CancelledFreezesZero(t *testing.T) {
	pickedUp := NewTrackingEvent("evt-1", "shp-1",
		ResolvedShipment{Status: StatusPickedUp, Location: LocationInfo{Name: "Origin Hub"}},
		ChangeFlags{StatusChanged: true}, "", time.Now())
	outForDelivery := NewTrackingEvent("evt-2", "shp-1",
		ResolvedShipment{Status: StatusOutForDelivery, Location: LocationInfo{Name: "Last Mile Hub"}},
		ChangeFlags{StatusChanged: true, LocationChanged: true}, "", time.Now())
	cancelled := NewTrackingEvent("evt-3", "shp-1",
		ResolvedShipment{Status: StatusCancelled, Location: LocationInfo{Name: "Last Mile Hub"}},
		ChangeFlags{StatusChanged: true}, "", time.Now())

	require.NotNil(t, pickedUp)
	require.NotNil(t, outForDelivery)
	require.NotNil(t, cancelled)

	assert.Equal(t, 45, pickedUp.Progress)
	assert.Equal(t, 85, outForDelivery.Progress)
	assert.Equal(t, 0, cancelled.Progress)

	// Earlier events keep their frozen values.
	assert.Equal(t, 45, pickedUp.Progress)
	assert.Equal(t, 85, outForDelivery.Progress)
}
