package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"freight-emissions/internal/core/httpclient"
	"freight-emissions/internal/features/locations/domain"
)

// NominatimAdapter implements the GeocodingProvider interface using an
// OpenStreetMap Nominatim compatible API.
type NominatimAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the base URL of the geocoding service.
	baseURL string
}

// NewNominatimAdapter creates a new instance of NominatimAdapter.
func NewNominatimAdapter(baseURL string) *NominatimAdapter {
	return &NominatimAdapter{
		client:  httpclient.NewClient(10 * time.Second),
		baseURL: baseURL,
	}
}

// nominatimPlace mirrors the wire format of a Nominatim search result.
// Coordinates come back as strings.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search resolves a free-text term into candidate locations.
func (a *NominatimAdapter) Search(ctx context.Context, term string) ([]domain.Location, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=6", a.baseURL, url.QueryEscape(term))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "freight-emissions/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status: %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	locations := make([]domain.Location, 0, len(places))
	for _, p := range places {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lon, lonErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		locations = append(locations, domain.Location{
			Address:   p.DisplayName,
			Latitude:  lat,
			Longitude: lon,
			Kind:      domain.KindGeneral,
		})
	}

	return locations, nil
}
