package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// ResolvedShipment is the authoritative merged view of a shipment's agent,
// location and signature, regardless of whether the source record stored them
// in dedicated fields or in the legacy side-channel map. All core decision
// logic (classifier, ledger, timeline) operates on this type; the raw
// side-channel blob never leaks past Resolve.
type ResolvedShipment struct {
	Status    ShipmentStatus
	Agent     AgentInfo
	Location  LocationInfo
	Signature string
}

// Resolve merges the dedicated fields and the side-channel map into one
// snapshot. Precedence per field: (1) dedicated field if non-empty,
// (2) side-channel entry, (3) empty — except the agent identifier, which is
// synthesized deterministically when absent so every assigned agent has a
// stable display ID.
func Resolve(s *Shipment) ResolvedShipment {
	r := ResolvedShipment{
		Status: s.Status,
		Agent: AgentInfo{
			Name:   s.AgentName,
			Phone:  s.AgentPhone,
			Email:  s.AgentEmail,
			Rating: s.AgentRating,
			Photo:  s.AgentPhoto,
			ID:     s.AgentID,
		},
		Location: LocationInfo{
			Name: s.CurrentLocationName,
			Lat:  s.CurrentLat,
			Lng:  s.CurrentLng,
		},
	}

	if sc := sideChannelMap(s, SideChannelAgentKey); sc != nil {
		if r.Agent.Name == "" {
			r.Agent.Name = stringField(sc, "name")
		}
		if r.Agent.Phone == "" {
			r.Agent.Phone = stringField(sc, "phone")
		}
		if r.Agent.Email == "" {
			r.Agent.Email = stringField(sc, "email")
		}
		if r.Agent.Rating == 0 {
			r.Agent.Rating = floatField(sc, "rating")
		}
		if r.Agent.Photo == "" {
			r.Agent.Photo = stringField(sc, "photo")
		}
		// The stored id belongs to the stored name. After a reassignment the
		// column name differs from the blob's, and carrying the old id over
		// would pin the previous agent's identifier on the new one.
		if r.Agent.ID == "" && r.Agent.Name == stringField(sc, "name") {
			r.Agent.ID = stringField(sc, "id")
		}
	}

	if sc := sideChannelMap(s, SideChannelLocationKey); sc != nil {
		if r.Location.Name == "" {
			r.Location.Name = stringField(sc, "name")
		}
		if r.Location.Lat == nil {
			r.Location.Lat = floatPtrField(sc, "lat")
		}
		if r.Location.Lng == nil {
			r.Location.Lng = floatPtrField(sc, "lng")
		}
	}

	if s.SideChannel != nil {
		if sig, ok := s.SideChannel[SideChannelSignatureKey].(string); ok && r.Signature == "" {
			r.Signature = sig
		}
	}

	if r.Agent.ID == "" && r.Agent.Name != "" {
		r.Agent.ID = syntheticAgentID(r.Agent.Name, s.TrackingNumber)
	}

	return r
}

// SyncSideChannel writes the resolved agent and location back into both the
// dedicated fields and the side-channel map. The map is still read by the
// empty-history timeline fallback and by reporting consumers that predate the
// dedicated fields, so it must track every write. Unrelated keys in the map
// are preserved.
func SyncSideChannel(s *Shipment, r ResolvedShipment) {
	s.AgentName = r.Agent.Name
	s.AgentPhone = r.Agent.Phone
	s.AgentEmail = r.Agent.Email
	s.AgentRating = r.Agent.Rating
	s.AgentPhoto = r.Agent.Photo
	s.AgentID = r.Agent.ID

	s.CurrentLocationName = r.Location.Name
	s.CurrentLat = r.Location.Lat
	s.CurrentLng = r.Location.Lng

	if s.SideChannel == nil {
		s.SideChannel = make(map[string]interface{})
	}

	agent := map[string]interface{}{
		"name":   r.Agent.Name,
		"phone":  r.Agent.Phone,
		"email":  r.Agent.Email,
		"rating": r.Agent.Rating,
		"photo":  r.Agent.Photo,
		"id":     r.Agent.ID,
	}
	location := map[string]interface{}{
		"name": r.Location.Name,
	}
	if r.Location.Lat != nil {
		location["lat"] = *r.Location.Lat
	}
	if r.Location.Lng != nil {
		location["lng"] = *r.Location.Lng
	}

	s.SideChannel[SideChannelAgentKey] = agent
	s.SideChannel[SideChannelLocationKey] = location
	if r.Signature != "" {
		s.SideChannel[SideChannelSignatureKey] = r.Signature
	}
}

// syntheticAgentID builds a stable identifier from the agent name's initials
// and the last four characters of the tracking number, e.g. "MG-4821".
func syntheticAgentID(agentName, trackingNumber string) string {
	var initials strings.Builder
	for _, part := range strings.Fields(agentName) {
		for _, r := range part {
			initials.WriteRune(unicode.ToUpper(r))
			break
		}
	}

	suffix := trackingNumber
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}

	return fmt.Sprintf("%s-%s", initials.String(), suffix)
}

func sideChannelMap(s *Shipment, key string) map[string]interface{} {
	if s.SideChannel == nil {
		return nil
	}
	m, _ := s.SideChannel[key].(map[string]interface{})
	return m
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func floatField(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func floatPtrField(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}
