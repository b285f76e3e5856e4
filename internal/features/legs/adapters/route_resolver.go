package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"freight-emissions/internal/core/httpclient"
	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/features/legs/domain"
	locations "freight-emissions/internal/features/locations/domain"

	"go.uber.org/zap"
)

// Detour factors applied to the great-circle distance when no routed
// distance is available. Rail routes run roughly a quarter longer than
// the straight line, sea routes roughly 40% longer.
const (
	railDetourFactor  = 1.25
	waterDetourFactor = 1.4
)

// maxPortSnapKm is how far a water-leg endpoint may be from a major port
// before routing falls back to the endpoint itself.
const maxPortSnapKm = 500

// RouteResolver implements the DistanceResolver interface. Road legs are
// routed through an OSRM-compatible API; air legs use the great-circle
// distance; rail and water legs apply mode-specific detour factors, with
// water legs snapped to the nearest major ports first.
type RouteResolver struct {
	// client is the HTTP client used for routing API requests.
	client *http.Client
	// routingURL is the base URL of the OSRM-compatible routing service.
	routingURL string
}

// NewRouteResolver creates a new instance of RouteResolver.
func NewRouteResolver(routingURL string) *RouteResolver {
	return &RouteResolver{
		client:     httpclient.NewClient(10 * time.Second),
		routingURL: routingURL,
	}
}

// Resolve returns the leg distance in kilometers.
func (r *RouteResolver) Resolve(ctx context.Context, from, to locations.Location, mode domain.Mode) (float64, error) {
	switch mode {
	case domain.ModeRoad:
		return r.roadDistance(ctx, from, to), nil
	case domain.ModeRail:
		return locations.DistanceKm(from, to) * railDetourFactor, nil
	case domain.ModeWater:
		return waterDistance(from, to), nil
	case domain.ModeAir:
		return locations.DistanceKm(from, to), nil
	default:
		return 0, fmt.Errorf("unknown transport mode: %q", mode)
	}
}

// osrmResponse mirrors the routing API wire format. Distances are meters.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// roadDistance routes via the OSRM API, falling back to the great-circle
// distance when the routing service is unavailable.
func (r *RouteResolver) roadDistance(ctx context.Context, from, to locations.Location) float64 {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		r.routingURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	routed, err := r.fetchRoute(ctx, endpoint)
	if err != nil {
		logger.Get().Warn("Road routing failed, using great-circle distance",
			zap.String("from", from.Address),
			zap.String("to", to.Address),
			zap.Error(err),
		)
		return locations.DistanceKm(from, to)
	}
	return routed
}

func (r *RouteResolver) fetchRoute(ctx context.Context, endpoint string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing API returned status: %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return 0, fmt.Errorf("routing API returned no route (code %q)", body.Code)
	}

	return body.Routes[0].Distance / 1000, nil
}

// port is an entry of the major sea port table.
type port struct {
	name string
	lat  float64
	lon  float64
}

// majorPorts lists the world's major container ports used to anchor
// water-leg routing.
var majorPorts = []port{
	{"Shanghai", 31.2304, 121.4737},
	{"Singapore", 1.2966, 103.7764},
	{"Rotterdam", 51.9225, 4.4792},
	{"Antwerp", 51.2194, 4.4025},
	{"Hamburg", 53.5511, 9.9937},
	{"Los Angeles", 33.7361, -118.2639},
	{"Long Beach", 33.7701, -118.2137},
	{"New York", 40.6700, -74.0458},
	{"Hong Kong", 22.2793, 114.1628},
	{"Busan", 35.0951, 129.0756},
	{"Guangzhou", 23.0965, 113.3212},
	{"Qingdao", 36.0671, 120.3826},
	{"Dubai", 25.2769, 55.2962},
	{"Tianjin", 39.0851, 117.1995},
	{"Port Klang", 3.0048, 101.3918},
	{"Kaohsiung", 22.6273, 120.3014},
	{"Dalian", 38.9140, 121.6147},
	{"Valencia", 39.4561, -0.3545},
	{"Yokohama", 35.4437, 139.6380},
	{"Bremen", 53.0793, 8.8017},
	{"Jawaharlal Nehru Port", 18.9647, 72.9505},
	{"Chennai Port", 13.1067, 80.3066},
	{"Kolkata Port", 22.5675, 88.3496},
	{"Cochin Port", 9.9667, 76.2667},
	{"Visakhapatnam Port", 17.6868, 83.2185},
	{"Kandla Port", 23.0333, 70.2167},
	{"Paradip Port", 20.2644, 86.6069},
}

// nearestPort returns the closest major port within maxPortSnapKm, or the
// original coordinates when none is near enough.
func nearestPort(lat, lon float64) (float64, float64) {
	bestLat, bestLon := lat, lon
	best := float64(maxPortSnapKm)

	for _, p := range majorPorts {
		d := locations.HaversineKm(lat, lon, p.lat, p.lon)
		if d <= best {
			best = d
			bestLat, bestLon = p.lat, p.lon
		}
	}
	return bestLat, bestLon
}

// waterDistance snaps both endpoints to their nearest major port, applies
// the sea detour factor to the port-to-port great-circle distance, and adds
// the overland spurs from the endpoints to their ports.
func waterDistance(from, to locations.Location) float64 {
	fromLat, fromLon := nearestPort(from.Latitude, from.Longitude)
	toLat, toLon := nearestPort(to.Latitude, to.Longitude)

	sea := locations.HaversineKm(fromLat, fromLon, toLat, toLon) * waterDetourFactor

	fromSpur := 0.0
	if snapped(fromLat, from.Latitude) || snapped(fromLon, from.Longitude) {
		fromSpur = locations.HaversineKm(from.Latitude, from.Longitude, fromLat, fromLon)
	}
	toSpur := 0.0
	if snapped(toLat, to.Latitude) || snapped(toLon, to.Longitude) {
		toSpur = locations.HaversineKm(to.Latitude, to.Longitude, toLat, toLon)
	}

	return sea + fromSpur + toSpur
}

func snapped(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d > 0.01
}
