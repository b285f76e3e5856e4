package ports

import (
	"context"

	"freight-emissions/internal/features/legs/domain"
	locations "freight-emissions/internal/features/locations/domain"
)

// DistanceResolver resolves the distance of a leg from its endpoints and mode.
// This is a Secondary Port (Driven Port).
type DistanceResolver interface {
	// Resolve returns the leg distance in kilometers.
	Resolve(ctx context.Context, from, to locations.Location, mode domain.Mode) (float64, error)
}

// VehicleCatalog advertises the vehicle types available per transport mode.
type VehicleCatalog interface {
	// Types returns the vehicle type names registered for the mode.
	Types(ctx context.Context, mode domain.Mode) ([]string, error)
}

// LegSink is the composer-side receiver of finalized legs.
type LegSink interface {
	// Len returns how many legs the sink currently holds.
	Len() int
	// Append adds a finalized leg, enforcing the capacity limit.
	Append(leg domain.TransportLeg) error
}
