package domain

import "time"

// TimelineStep is one UI-ready entry of a shipment's delivery timeline.
// Derived on every read, never persisted.
type TimelineStep struct {
	Status    ShipmentStatus `json:"status"`
	Location  string         `json:"location,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Completed bool           `json:"completed"`
	IsCurrent bool           `json:"is_current"`
	Handler   string         `json:"handler,omitempty"`
	Progress  int            `json:"progress"`
}

// BuildTimeline converts a shipment's event history into ordered timeline
// steps. Events map 1:1, chronological order preserved; every step is
// completed except the last, which is the current one. Per-step progress is
// read from the frozen event value, never recomputed from the catalog.
//
// With no history yet, a single current step is synthesized from the
// shipment's present state. That bootstrap step is the one place progress is
// computed fresh, because no frozen record exists.
func BuildTimeline(s *Shipment, resolved ResolvedShipment, events []TrackingEvent) []TimelineStep {
	if len(events) == 0 {
		return []TimelineStep{{
			Status:    s.Status,
			Location:  resolved.Location.Name,
			Timestamp: s.CreatedAt,
			Completed: false,
			IsCurrent: true,
			Handler:   resolved.Agent.Name,
			Progress:  ProgressFor(s.Status),
		}}
	}

	steps := make([]TimelineStep, 0, len(events))
	for i, e := range events {
		last := i == len(events)-1
		steps = append(steps, TimelineStep{
			Status:    e.Status,
			Location:  e.Location,
			Timestamp: e.Timestamp,
			Completed: !last,
			IsCurrent: last,
			Handler:   e.Handler,
			Progress:  e.Progress,
		})
	}
	return steps
}

// TruncateForDisplay applies the presentation rule that collapses long
// timelines to the first step plus the last three. Flags must already have
// been computed over the full sequence; this is layered on top and does not
// alter the data contract.
func TruncateForDisplay(steps []TimelineStep) []TimelineStep {
	if len(steps) <= 4 {
		return steps
	}

	out := make([]TimelineStep, 0, 4)
	out = append(out, steps[0])
	out = append(out, steps[len(steps)-3:]...)
	return out
}
