package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"freight-emissions/internal/core/cache"
	"freight-emissions/internal/features/factors/domain"
	legs "freight-emissions/internal/features/legs/domain"
)

const factorsHashKey = "emission_factors"

// RedisFactorRepository implements ports.FactorRepository using the cache port.
// Factors live in one hash keyed by id; the catalog is small enough that
// (mode, vehicle type) lookups scan it.
type RedisFactorRepository struct {
	cache cache.Cache
}

// NewRedisFactorRepository creates a new RedisFactorRepository.
func NewRedisFactorRepository(c cache.Cache) *RedisFactorRepository {
	return &RedisFactorRepository{
		cache: c,
	}
}

// Save stores or replaces a factor by id.
func (r *RedisFactorRepository) Save(ctx context.Context, factor domain.Factor) error {
	data, err := json.Marshal(factor)
	if err != nil {
		return fmt.Errorf("failed to marshal factor: %w", err)
	}

	if err := r.cache.HSet(ctx, factorsHashKey, factor.ID, data); err != nil {
		return fmt.Errorf("failed to save factor: %w", err)
	}
	return nil
}

// Get retrieves a factor by id.
func (r *RedisFactorRepository) Get(ctx context.Context, id string) (domain.Factor, error) {
	data, err := r.cache.HGet(ctx, factorsHashKey, id)
	if err != nil {
		if strings.Contains(err.Error(), "field not found") {
			return domain.Factor{}, domain.ErrFactorNotFound
		}
		return domain.Factor{}, fmt.Errorf("failed to get factor: %w", err)
	}

	var factor domain.Factor
	if err := json.Unmarshal(data, &factor); err != nil {
		return domain.Factor{}, fmt.Errorf("failed to unmarshal factor: %w", err)
	}
	return factor, nil
}

// List returns every registered factor.
func (r *RedisFactorRepository) List(ctx context.Context) ([]domain.Factor, error) {
	entries, err := r.cache.HGetAll(ctx, factorsHashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list factors: %w", err)
	}

	factors := make([]domain.Factor, 0, len(entries))
	for id, data := range entries {
		var factor domain.Factor
		if err := json.Unmarshal(data, &factor); err != nil {
			return nil, fmt.Errorf("failed to unmarshal factor %s: %w", id, err)
		}
		factors = append(factors, factor)
	}
	return factors, nil
}

// Delete removes a factor by id.
func (r *RedisFactorRepository) Delete(ctx context.Context, id string) error {
	n, err := r.cache.HDel(ctx, factorsHashKey, id)
	if err != nil {
		return fmt.Errorf("failed to delete factor: %w", err)
	}
	if n == 0 {
		return domain.ErrFactorNotFound
	}
	return nil
}

// Find retrieves the factor registered for a (mode, vehicle type) pair.
func (r *RedisFactorRepository) Find(ctx context.Context, mode legs.Mode, vehicleType string) (domain.Factor, error) {
	factors, err := r.List(ctx)
	if err != nil {
		return domain.Factor{}, err
	}

	for _, f := range factors {
		if f.Mode == mode && f.VehicleType == vehicleType {
			return f, nil
		}
	}
	return domain.Factor{}, domain.ErrFactorNotFound
}

// Count returns the number of registered factors.
func (r *RedisFactorRepository) Count(ctx context.Context) (int, error) {
	entries, err := r.cache.HGetAll(ctx, factorsHashKey)
	if err != nil {
		return 0, fmt.Errorf("failed to count factors: %w", err)
	}
	return len(entries), nil
}
