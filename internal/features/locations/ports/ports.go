package ports

import (
	"context"

	"freight-emissions/internal/features/locations/domain"
)

// GeocodingProvider defines the interface for forward-geocoding services.
// This is a Secondary Port (Driven Port).
type GeocodingProvider interface {
	// Search resolves a free-text term into candidate locations,
	// ordered as returned by the service.
	Search(ctx context.Context, term string) ([]domain.Location, error)
}

// AirportProvider defines the interface for airport catalog lookups.
type AirportProvider interface {
	// Search returns airports matching the term, best matches first.
	Search(term string) []domain.Airport
}
