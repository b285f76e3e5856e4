package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"freight-emissions/internal/core/cache"
	"freight-emissions/internal/features/shipments/domain"
)

const shipmentsHashKey = "shipments"

// RedisShipmentRepository implements ports.ShipmentRepository using the
// cache port. Shipments live in one hash keyed by id; List is always a full
// fetch, callers refetch after mutations rather than patching a cached view.
type RedisShipmentRepository struct {
	cache cache.Cache
}

// NewRedisShipmentRepository creates a new RedisShipmentRepository.
func NewRedisShipmentRepository(c cache.Cache) *RedisShipmentRepository {
	return &RedisShipmentRepository{
		cache: c,
	}
}

// Create persists a finalized shipment.
func (r *RedisShipmentRepository) Create(ctx context.Context, shipment domain.Shipment) error {
	data, err := json.Marshal(shipment)
	if err != nil {
		return fmt.Errorf("failed to marshal shipment: %w", err)
	}

	if err := r.cache.HSet(ctx, shipmentsHashKey, shipment.ID, data); err != nil {
		return fmt.Errorf("failed to save shipment: %w", err)
	}
	return nil
}

// List returns every stored shipment, oldest first.
func (r *RedisShipmentRepository) List(ctx context.Context) ([]domain.Shipment, error) {
	entries, err := r.cache.HGetAll(ctx, shipmentsHashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	shipments := make([]domain.Shipment, 0, len(entries))
	for id, data := range entries {
		var shipment domain.Shipment
		if err := json.Unmarshal(data, &shipment); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shipment %s: %w", id, err)
		}
		shipments = append(shipments, shipment)
	}

	sort.Slice(shipments, func(i, j int) bool {
		if !shipments[i].CreatedAt.Equal(shipments[j].CreatedAt) {
			return shipments[i].CreatedAt.Before(shipments[j].CreatedAt)
		}
		return shipments[i].ID < shipments[j].ID
	})
	return shipments, nil
}

// BulkDelete removes the shipments with the given ids and returns how many
// were actually deleted.
func (r *RedisShipmentRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := r.cache.HDel(ctx, shipmentsHashKey, ids...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete shipments: %w", err)
	}
	return n, nil
}

// DeleteAll removes every stored shipment.
func (r *RedisShipmentRepository) DeleteAll(ctx context.Context) error {
	if err := r.cache.Delete(ctx, shipmentsHashKey); err != nil {
		return fmt.Errorf("failed to reset shipments: %w", err)
	}
	return nil
}
