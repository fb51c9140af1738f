package domain

// ChangeFlags reports which ledger-relevant aspects of a shipment differ
// between two resolved snapshots.
type ChangeFlags struct {
	StatusChanged   bool
	LocationChanged bool
}

// Significant reports whether the change warrants a new tracking event.
// Only status and location movements matter to the ledger: its job is telling
// customers where the package is and what is happening to it, not auditing
// every field edit.
func (f ChangeFlags) Significant() bool {
	return f.StatusChanged || f.LocationChanged
}

// Classify compares the pre- and post-update snapshots of a shipment.
// A location change is a different resolved name or a different coordinate;
// the coordinate comparison is nil-aware (nil vs set counts as a change,
// nil vs nil does not).
func Classify(before, after ResolvedShipment) ChangeFlags {
	return ChangeFlags{
		StatusChanged: before.Status != after.Status,
		LocationChanged: before.Location.Name != after.Location.Name ||
			!coordEqual(before.Location.Lat, after.Location.Lat) ||
			!coordEqual(before.Location.Lng, after.Location.Lng),
	}
}

func coordEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
