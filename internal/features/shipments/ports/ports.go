package ports

import (
	"context"

	factors "freight-emissions/internal/features/factors/domain"
	legs "freight-emissions/internal/features/legs/domain"
	"freight-emissions/internal/features/shipments/domain"
)

// ShipmentRepository defines the secondary port for shipment storage.
type ShipmentRepository interface {
	// Create persists a finalized shipment.
	Create(ctx context.Context, shipment domain.Shipment) error
	// List returns every stored shipment, oldest first.
	List(ctx context.Context) ([]domain.Shipment, error)
	// BulkDelete removes the shipments with the given ids and returns how
	// many were actually deleted.
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	// DeleteAll removes every stored shipment.
	DeleteAll(ctx context.Context) error
}

// FactorSource resolves the emission factor for a leg. Absence must surface
// as factors.ErrFactorNotFound, never as a zero factor.
type FactorSource interface {
	Lookup(ctx context.Context, mode legs.Mode, vehicleType string) (factors.Factor, error)
}
