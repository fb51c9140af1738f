package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shipment-ledger/internal/core/store"
	"shipment-ledger/internal/features/shipments/domain"
)

func shipmentKey(trackingNumber string) string {
	return "shipment:" + trackingNumber
}

// RedisShipmentRepository implements ports.ShipmentRepository on the document
// store, keeping each shipment as one JSON document keyed by tracking number.
type RedisShipmentRepository struct {
	store store.Store
}

// NewRedisShipmentRepository creates a new RedisShipmentRepository.
func NewRedisShipmentRepository(s store.Store) *RedisShipmentRepository {
	return &RedisShipmentRepository{
		store: s,
	}
}

// Save persists the shipment record, replacing the previous version.
func (r *RedisShipmentRepository) Save(ctx context.Context, shipment *domain.Shipment) error {
	data, err := json.Marshal(shipment)
	if err != nil {
		return fmt.Errorf("failed to marshal shipment: %w", err)
	}

	if err := r.store.Put(ctx, shipmentKey(shipment.TrackingNumber), data); err != nil {
		return fmt.Errorf("failed to save shipment %s: %w", shipment.TrackingNumber, err)
	}

	return nil
}

// FindByTrackingNumber retrieves a shipment, returning nil, nil when it does
// not exist.
func (r *RedisShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	data, err := r.store.Get(ctx, shipmentKey(trackingNumber))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shipment %s: %w", trackingNumber, err)
	}

	var shipment domain.Shipment
	if err := json.Unmarshal(data, &shipment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipment %s: %w", trackingNumber, err)
	}

	return &shipment, nil
}
