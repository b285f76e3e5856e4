package service

import (
	"context"
	"time"

	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/features/locations/domain"
	"freight-emissions/internal/features/locations/ports"

	"go.uber.org/zap"
)

// maxCandidates caps the candidate list handed to the caller.
const maxCandidates = 6

// SearchService resolves free-text search terms into location candidates.
// Provider failures are swallowed here: the caller always gets a list,
// possibly empty, never an error.
type SearchService struct {
	geocoder ports.GeocodingProvider
	airports ports.AirportProvider
}

// NewSearchService creates a new SearchService.
func NewSearchService(geocoder ports.GeocodingProvider, airports ports.AirportProvider) *SearchService {
	return &SearchService{
		geocoder: geocoder,
		airports: airports,
	}
}

// Search returns at most 6 candidate locations for the term.
// Kind "airport" draws from the airport catalog, anything else from the geocoder.
func (s *SearchService) Search(ctx context.Context, term string, kind domain.LocationKind) []domain.Location {
	if term == "" {
		return []domain.Location{}
	}

	if kind == domain.KindAirport {
		matches := s.airports.Search(term)
		candidates := make([]domain.Location, 0, len(matches))
		for _, a := range matches {
			candidates = append(candidates, a.Location())
		}
		return cap6(candidates)
	}

	candidates, err := s.geocoder.Search(ctx, term)
	if err != nil {
		logger.Get().Warn("Location search failed",
			zap.String("term", term),
			zap.Error(err),
		)
		return []domain.Location{}
	}

	for i := range candidates {
		candidates[i].Kind = kind
	}
	return cap6(candidates)
}

// NewField creates a debounced input field driving this service's Search.
// Each endpoint field ("from", "to") gets its own instance.
func (s *SearchService) NewField(deliver ResultFunc, quiet time.Duration) *DebouncedField {
	return NewDebouncedField(s.Search, deliver, quiet)
}

func cap6(candidates []domain.Location) []domain.Location {
	if len(candidates) > maxCandidates {
		return candidates[:maxCandidates]
	}
	return candidates
}
