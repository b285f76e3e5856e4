package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"freight-emissions/internal/features/locations/domain"
)

// maxAirportResults caps how many scored matches the index returns.
const maxAirportResults = 8

// AirportIndex implements the AirportProvider interface over an in-memory
// catalog loaded once at startup.
type AirportIndex struct {
	airports []domain.Airport
}

// NewAirportIndex loads the airport catalog from a JSON file.
func NewAirportIndex(path string) (*AirportIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read airports catalog: %w", err)
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, fmt.Errorf("failed to parse airports catalog: %w", err)
	}

	return &AirportIndex{airports: airports}, nil
}

// NewAirportIndexFromSlice builds an index from an already-loaded catalog.
func NewAirportIndexFromSlice(airports []domain.Airport) *AirportIndex {
	return &AirportIndex{airports: airports}
}

type scoredAirport struct {
	airport domain.Airport
	score   int
}

// Search returns airports matching the term, best matches first.
// Exact code matches outrank partial code matches, which outrank
// city and name matches.
func (i *AirportIndex) Search(term string) []domain.Airport {
	query := strings.ToLower(strings.TrimSpace(term))
	if query == "" {
		return nil
	}

	var matches []scoredAirport
	for _, a := range i.airports {
		name := strings.ToLower(a.Name)
		city := strings.ToLower(a.City)
		code := strings.ToLower(a.Code)
		iata := strings.ToLower(a.IATACode)

		score := 0
		switch {
		case query == code || query == iata:
			score = 100
		case strings.Contains(code, query) || strings.Contains(iata, query):
			score = 90
		case strings.HasPrefix(city, query):
			score = 80
		case strings.Contains(city, query):
			score = 70
		case strings.HasPrefix(name, query):
			score = 60
		case strings.Contains(name, query):
			score = 50
		}

		if score > 0 {
			matches = append(matches, scoredAirport{airport: a, score: score})
		}
	}

	sort.SliceStable(matches, func(x, y int) bool {
		return matches[x].score > matches[y].score
	})

	if len(matches) > maxAirportResults {
		matches = matches[:maxAirportResults]
	}

	out := make([]domain.Airport, len(matches))
	for idx, m := range matches {
		out[idx] = m.airport
	}
	return out
}
