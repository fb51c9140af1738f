package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"shipment-ledger/internal/core/store"
	"shipment-ledger/internal/features/shipments/domain"
)

func ledgerKey(trackingNumber string) string {
	return "shipment:" + trackingNumber + ":events"
}

// RedisEventLedger implements ports.EventLedger on the document store's list
// operations. Append-only is enforced by construction: the store surface this
// adapter uses has no way to rewrite or remove an entry.
type RedisEventLedger struct {
	store store.Store
}

// NewRedisEventLedger creates a new RedisEventLedger.
func NewRedisEventLedger(s store.Store) *RedisEventLedger {
	return &RedisEventLedger{
		store: s,
	}
}

// Append adds one event to the end of the shipment's ledger.
func (l *RedisEventLedger) Append(ctx context.Context, trackingNumber string, event *domain.TrackingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking event: %w", err)
	}

	if err := l.store.Append(ctx, ledgerKey(trackingNumber), data); err != nil {
		return fmt.Errorf("failed to append event for %s: %w", trackingNumber, err)
	}

	return nil
}

// ListByShipment returns the full ledger in append order.
func (l *RedisEventLedger) ListByShipment(ctx context.Context, trackingNumber string) ([]domain.TrackingEvent, error) {
	entries, err := l.store.Range(ctx, ledgerKey(trackingNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger for %s: %w", trackingNumber, err)
	}

	events := make([]domain.TrackingEvent, 0, len(entries))
	for _, entry := range entries {
		var e domain.TrackingEvent
		if err := json.Unmarshal(entry, &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event for %s: %w", trackingNumber, err)
		}
		events = append(events, e)
	}

	return events, nil
}
