package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-ledger/internal/core/logger"
	"shipment-ledger/internal/features/shipments/domain"
	"shipment-ledger/internal/features/shipments/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrShipmentNotFound is returned when the tracking number matches no
	// shipment.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrNoUpdatableFields is returned when an update request carries none of
	// status, estimated delivery date, location name or note. Rejected before
	// any read or write.
	ErrNoUpdatableFields = errors.New("update request has no updatable fields")
	// ErrHistoryNotRecorded is returned when the shipment write succeeded but
	// the ledger append did not. The shipment update stands; only the history
	// entry is missing.
	ErrHistoryNotRecorded = errors.New("shipment updated but history entry not recorded")
)

// notifyTimeout bounds one fire-and-forget dispatch attempt.
const notifyTimeout = 15 * time.Second

// ShipmentServiceImpl implements ports.ShipmentService: intake, reads with
// timeline reconstruction, and the update flow that feeds the history ledger.
type ShipmentServiceImpl struct {
	repo     ports.ShipmentRepository
	ledger   ports.EventLedger
	notifier ports.Notifier
	locks    *keyedMutex
}

// NewShipmentService creates a new ShipmentServiceImpl.
func NewShipmentService(repo ports.ShipmentRepository, ledger ports.EventLedger, notifier ports.Notifier) *ShipmentServiceImpl {
	return &ShipmentServiceImpl{
		repo:     repo,
		ledger:   ledger,
		notifier: notifier,
		locks:    newKeyedMutex(),
	}
}

// CreateShipment registers a new shipment in status Pending. No ledger entry
// is written at intake; until the first significant update, reads synthesize
// a bootstrap timeline step from the shipment itself.
func (s *ShipmentServiceImpl) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	now := time.Now().UTC()
	id := uuid.NewString()

	shipment := &domain.Shipment{
		ID:             id,
		TrackingNumber: newTrackingNumber(id),
		Status:         domain.StatusPending,

		SenderName:    input.SenderName,
		SenderPhone:   input.SenderPhone,
		SenderEmail:   input.SenderEmail,
		SenderAddress: input.SenderAddress,

		RecipientName:    input.RecipientName,
		RecipientPhone:   input.RecipientPhone,
		RecipientEmail:   input.RecipientEmail,
		RecipientAddress: input.RecipientAddress,

		WeightKg:      input.WeightKg,
		LengthCm:      input.LengthCm,
		WidthCm:       input.WidthCm,
		HeightCm:      input.HeightCm,
		DeclaredValue: input.DeclaredValue,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, shipment); err != nil {
		return nil, fmt.Errorf("service: failed to save shipment: %w", err)
	}

	return shipment, nil
}

// GetShipment returns the resolved shipment, its full ordered history and the
// derived timeline.
func (s *ShipmentServiceImpl) GetShipment(ctx context.Context, trackingNumber string) (*ports.ShipmentView, error) {
	shipment, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load shipment: %w", err)
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	events, err := s.ledger.ListByShipment(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load history: %w", err)
	}

	resolved := domain.Resolve(shipment)
	timeline := domain.BuildTimeline(shipment, resolved, events)

	return &ports.ShipmentView{
		Shipment:        shipment,
		Agent:           resolved.Agent,
		Location:        resolved.Location,
		Events:          events,
		Timeline:        timeline,
		DisplayTimeline: domain.TruncateForDisplay(timeline),
	}, nil
}

// UpdateShipment applies a partial update: read, reconcile, classify, write
// the shipment, conditionally append one ledger entry, then dispatch a
// fire-and-forget notification. Updates to the same tracking number are
// serialized so the classifier and the append always see a consistent
// before/after pair.
func (s *ShipmentServiceImpl) UpdateShipment(ctx context.Context, trackingNumber string, req ports.UpdateRequest) (*ports.UpdateResult, error) {
	if !req.HasMutableField() {
		return nil, ErrNoUpdatableFields
	}

	s.locks.Lock(trackingNumber)
	defer s.locks.Unlock(trackingNumber)

	before, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load shipment: %w", err)
	}
	if before == nil {
		return nil, ErrShipmentNotFound
	}

	beforeResolved := domain.Resolve(before)

	updated := before.Clone()
	applyUpdate(updated, req)

	afterResolved := domain.Resolve(updated)
	flags := domain.Classify(beforeResolved, afterResolved)

	if !flags.Significant() && !auxiliaryFieldsChanged(before, updated) {
		// Everything supplied already matched: success with the untouched
		// signal, no writes, no ledger growth.
		return &ports.UpdateResult{
			Shipment:        before,
			Changed:         false,
			Flags:           flags,
			HistoryRecorded: true,
		}, nil
	}

	domain.SyncSideChannel(updated, afterResolved)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("service: failed to save shipment: %w", err)
	}

	result := &ports.UpdateResult{
		Shipment:        updated,
		Changed:         true,
		Flags:           flags,
		HistoryRecorded: true,
	}

	var appendErr error
	if event := domain.NewTrackingEvent(uuid.NewString(), updated.ID, afterResolved, flags, note(req), updated.UpdatedAt); event != nil {
		if err := s.ledger.Append(ctx, trackingNumber, event); err != nil {
			// The shipment write already stands. Surface the inconsistency
			// distinctly instead of masking it or rolling back.
			logger.Get().Error("Ledger append failed after shipment write",
				zap.String("tracking_number", trackingNumber),
				zap.String("status", string(updated.Status)),
				zap.Error(err),
			)
			result.HistoryRecorded = false
			appendErr = fmt.Errorf("%w: %v", ErrHistoryNotRecorded, err)
		} else {
			result.Event = event
		}
	}

	s.dispatchNotification(updated, result.Event)

	return result, appendErr
}

// dispatchNotification hands the update to the notification collaborator in
// a detached goroutine. Failure is observed only through logging; it never
// reaches the caller and never blocks or undoes the update.
func (s *ShipmentServiceImpl) dispatchNotification(shipment *domain.Shipment, event *domain.TrackingEvent) {
	if s.notifier == nil || shipment.RecipientEmail == "" {
		return
	}

	n := ports.UpdateNotification{
		TrackingNumber: shipment.TrackingNumber,
		RecipientEmail: shipment.RecipientEmail,
		Status:         shipment.Status,
		Description:    domain.DescriptionFor(shipment.Status),
		Location:       shipment.CurrentLocationName,
		Progress:       domain.ProgressFor(shipment.Status),
		Timestamp:      shipment.UpdatedAt,
	}
	if event != nil {
		n.Description = event.Description
		n.Progress = event.Progress
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyUpdate(ctx, n); err != nil {
			logger.Get().Error("Notification dispatch failed",
				zap.String("tracking_number", n.TrackingNumber),
				zap.Error(err),
			)
		}
	}()
}

// applyUpdate copies the supplied fields onto the shipment. Nil fields are
// left untouched, so an update that only changes status cannot blank out the
// previously known location or agent.
func applyUpdate(s *domain.Shipment, req ports.UpdateRequest) {
	if req.Status != nil {
		s.Status = *req.Status
	}
	if req.EstimatedDeliveryDate != nil {
		s.EstimatedDelivery = req.EstimatedDeliveryDate
	}
	if req.CurrentLocationName != nil {
		s.CurrentLocationName = *req.CurrentLocationName
	}
	if req.CurrentLat != nil {
		s.CurrentLat = req.CurrentLat
	}
	if req.CurrentLng != nil {
		s.CurrentLng = req.CurrentLng
	}
	if req.AgentName != nil {
		s.AgentName = *req.AgentName
		// The synthetic identifier tracks the name; recompute on reassignment.
		s.AgentID = ""
	}
	if req.AgentPhone != nil {
		s.AgentPhone = *req.AgentPhone
	}
	if req.AgentEmail != nil {
		s.AgentEmail = *req.AgentEmail
	}
	if req.Note != nil {
		s.DeliveryNotes = *req.Note
	}
}

// auxiliaryFieldsChanged reports whether any non-ledger field differs between
// the two records. These changes persist but never grow the history.
func auxiliaryFieldsChanged(before, after *domain.Shipment) bool {
	if !timePtrEqual(before.EstimatedDelivery, after.EstimatedDelivery) {
		return true
	}
	return before.DeliveryNotes != after.DeliveryNotes ||
		before.AgentName != after.AgentName ||
		before.AgentPhone != after.AgentPhone ||
		before.AgentEmail != after.AgentEmail
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func note(req ports.UpdateRequest) string {
	if req.Note == nil {
		return ""
	}
	return *req.Note
}

// newTrackingNumber derives the customer-facing tracking number from the
// shipment's UUID.
func newTrackingNumber(id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	return "SL-" + compact[:10]
}
