package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/features/factors/domain"
	"freight-emissions/internal/features/factors/ports"
	legs "freight-emissions/internal/features/legs/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FactorService manages the emission-factor catalog. It also serves as the
// vehicle-type catalog: the types advertised for a mode are exactly the
// vehicle types with a registered factor.
type FactorService struct {
	repo ports.FactorRepository
}

// NewFactorService creates a new FactorService.
func NewFactorService(repo ports.FactorRepository) *FactorService {
	return &FactorService{
		repo: repo,
	}
}

// Create registers a new emission factor.
func (s *FactorService) Create(ctx context.Context, mode legs.Mode, vehicleType string, factor float64, unit string) (domain.Factor, error) {
	f := domain.Factor{
		ID:          uuid.NewString(),
		Mode:        mode,
		VehicleType: vehicleType,
		Factor:      factor,
		Unit:        unit,
		CreatedAt:   time.Now().UTC(),
	}
	if err := f.Validate(); err != nil {
		return domain.Factor{}, err
	}

	if err := s.repo.Save(ctx, f); err != nil {
		return domain.Factor{}, fmt.Errorf("service: failed to save factor: %w", err)
	}
	return f, nil
}

// Update replaces the factor stored under id.
func (s *FactorService) Update(ctx context.Context, id string, mode legs.Mode, vehicleType string, factor float64, unit string) (domain.Factor, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Factor{}, err
	}

	updated := domain.Factor{
		ID:          existing.ID,
		Mode:        mode,
		VehicleType: vehicleType,
		Factor:      factor,
		Unit:        unit,
		CreatedAt:   existing.CreatedAt,
	}
	if err := updated.Validate(); err != nil {
		return domain.Factor{}, err
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return domain.Factor{}, fmt.Errorf("service: failed to update factor: %w", err)
	}
	return updated, nil
}

// Delete removes the factor stored under id.
func (s *FactorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List returns every registered factor, ordered by mode then vehicle type.
func (s *FactorService) List(ctx context.Context) ([]domain.Factor, error) {
	factors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list factors: %w", err)
	}

	sort.Slice(factors, func(i, j int) bool {
		if factors[i].Mode != factors[j].Mode {
			return factors[i].Mode < factors[j].Mode
		}
		return factors[i].VehicleType < factors[j].VehicleType
	})
	return factors, nil
}

// Lookup retrieves the factor for a (mode, vehicle type) pair. Absence is
// domain.ErrFactorNotFound, never a zero factor.
func (s *FactorService) Lookup(ctx context.Context, mode legs.Mode, vehicleType string) (domain.Factor, error) {
	return s.repo.Find(ctx, mode, vehicleType)
}

// Types returns the distinct vehicle types registered for a mode, sorted.
// Implements the leg builder's vehicle catalog port.
func (s *FactorService) Types(ctx context.Context, mode legs.Mode) ([]string, error) {
	factors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load vehicle types: %w", err)
	}

	seen := make(map[string]struct{})
	var types []string
	for _, f := range factors {
		if f.Mode != mode {
			continue
		}
		if _, ok := seen[f.VehicleType]; ok {
			continue
		}
		seen[f.VehicleType] = struct{}{}
		types = append(types, f.VehicleType)
	}

	sort.Strings(types)
	return types, nil
}

// Seed registers the default factor catalog. It is a no-op when any
// factors already exist.
func (s *FactorService) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count factors: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	defaults := domain.Defaults()
	for _, f := range defaults {
		f.ID = uuid.NewString()
		f.CreatedAt = time.Now().UTC()
		if err := s.repo.Save(ctx, f); err != nil {
			return 0, fmt.Errorf("service: failed to seed factor: %w", err)
		}
	}

	logger.Get().Info("Seeded default emission factors", zap.Int("count", len(defaults)))
	return len(defaults), nil
}
