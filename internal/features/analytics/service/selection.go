package service

import (
	"context"
	"errors"
	"fmt"

	"freight-emissions/internal/core/logger"
	shipments "freight-emissions/internal/features/shipments/domain"
	"freight-emissions/internal/features/shipments/ports"

	"go.uber.org/zap"
)

// ErrEmptySelection is returned when a bulk delete is requested with no
// shipments selected.
var ErrEmptySelection = errors.New("no shipments selected")

// Selection tracks a set of shipment ids marked for bulk deletion.
type Selection struct {
	repo ports.ShipmentRepository
	ids  map[string]struct{}
}

// NewSelection creates an empty Selection over the shipment store.
func NewSelection(repo ports.ShipmentRepository) *Selection {
	return &Selection{
		repo: repo,
		ids:  make(map[string]struct{}),
	}
}

// Toggle flips the selected state of one shipment id.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// SelectAll marks every given id as selected.
func (s *Selection) SelectAll(ids []string) {
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Has reports whether the id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// DeleteSelected removes every selected shipment in one repository call.
// On success the selection is cleared and the fresh list returned; on
// failure the selection is kept for retry.
func (s *Selection) DeleteSelected(ctx context.Context) ([]shipments.Shipment, error) {
	if len(s.ids) == 0 {
		return nil, ErrEmptySelection
	}

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}

	deleted, err := s.repo.BulkDelete(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to delete selected shipments: %w", err)
	}

	logger.Get().Info("Deleted selected shipments",
		zap.Int("selected", len(ids)),
		zap.Int64("deleted", deleted),
	)

	s.Clear()
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload shipments: %w", err)
	}
	return list, nil
}
