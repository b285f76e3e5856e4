package ports

import (
	"context"

	"freight-emissions/internal/features/factors/domain"
	legs "freight-emissions/internal/features/legs/domain"
)

// FactorRepository defines the secondary port for emission-factor storage.
type FactorRepository interface {
	// Save stores or replaces a factor by id.
	Save(ctx context.Context, factor domain.Factor) error
	// Get retrieves a factor by id. Returns domain.ErrFactorNotFound when absent.
	Get(ctx context.Context, id string) (domain.Factor, error)
	// List returns every registered factor.
	List(ctx context.Context) ([]domain.Factor, error)
	// Delete removes a factor by id. Returns domain.ErrFactorNotFound when absent.
	Delete(ctx context.Context, id string) error
	// Find retrieves the factor registered for a (mode, vehicle type) pair.
	// Returns domain.ErrFactorNotFound when absent.
	Find(ctx context.Context, mode legs.Mode, vehicleType string) (domain.Factor, error)
	// Count returns the number of registered factors.
	Count(ctx context.Context) (int, error)
}
