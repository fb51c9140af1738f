package domain

import (
	"fmt"
	"time"
)

// TrackingEvent is one immutable entry in a shipment's history ledger.
// Every field is frozen at insertion time: location, coordinates, handler and
// progress capture the shipment as it was at that instant and are never
// re-derived, so later edits to the shipment or retuned catalog values cannot
// rewrite history. JSON tags are the persisted record contract; consumers
// rebuild history from these exact names.
type TrackingEvent struct {
	ID          string         `json:"id"`
	ShipmentID  string         `json:"shipment_id"`
	Status      ShipmentStatus `json:"status"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	Location    string         `json:"location"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`
	Handler     string         `json:"handler"`
	Progress    int            `json:"progress"`
}

// NewTrackingEvent constructs the single event for a significant change, or
// returns nil when the flags report nothing significant. The snapshot must be
// the resolved post-update state: any field the update did not touch carries
// the pre-update value forward, so a status-only update keeps the previously
// known location on the event.
func NewTrackingEvent(id, shipmentID string, after ResolvedShipment, flags ChangeFlags, note string, at time.Time) *TrackingEvent {
	if !flags.Significant() {
		return nil
	}

	return &TrackingEvent{
		ID:          id,
		ShipmentID:  shipmentID,
		Status:      after.Status,
		Description: eventDescription(after, flags, note),
		Timestamp:   at,
		Location:    after.Location.Name,
		Latitude:    after.Location.Lat,
		Longitude:   after.Location.Lng,
		Handler:     after.Agent.Name,
		Progress:    ProgressFor(after.Status),
	}
}

// eventDescription synthesizes the human-readable sentence for an event.
// Fixed rule: both aspects changed produces one combined sentence, a single
// aspect describes only itself. An operator note, when present, is appended.
func eventDescription(after ResolvedShipment, flags ChangeFlags, note string) string {
	var desc string
	switch {
	case flags.StatusChanged && flags.LocationChanged:
		desc = fmt.Sprintf("%s. Package is now at %s", DescriptionFor(after.Status), after.Location.Name)
	case flags.StatusChanged:
		desc = DescriptionFor(after.Status)
	default:
		desc = fmt.Sprintf("Package location updated to %s", after.Location.Name)
	}

	if note != "" {
		desc = fmt.Sprintf("%s. Note: %s", desc, note)
	}
	return desc
}
