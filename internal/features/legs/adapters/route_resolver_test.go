package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight-emissions/internal/features/legs/domain"
	locations "freight-emissions/internal/features/locations/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mumbai = locations.Location{Address: "Mumbai, India", Latitude: 19.0760, Longitude: 72.8777}
	delhi  = locations.Location{Address: "New Delhi, India", Latitude: 28.7041, Longitude: 77.1025}
)

// TestRouteResolver_Road verifies routed road distance from the OSRM API.
func TestRouteResolver_Road(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":1412000}]}`)
	}))
	defer ts.Close()

	resolver := NewRouteResolver(ts.URL)
	d, err := resolver.Resolve(context.Background(), mumbai, delhi, domain.ModeRoad)

	require.NoError(t, err)
	assert.Equal(t, 1412.0, d)
}

// TestRouteResolver_RoadFallback verifies the great-circle fallback when the
// routing service is unavailable.
func TestRouteResolver_RoadFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	resolver := NewRouteResolver(ts.URL)
	d, err := resolver.Resolve(context.Background(), mumbai, delhi, domain.ModeRoad)

	require.NoError(t, err)
	assert.InDelta(t, locations.DistanceKm(mumbai, delhi), d, 1e-9)
}

// TestRouteResolver_Rail verifies the rail detour factor.
func TestRouteResolver_Rail(t *testing.T) {
	resolver := NewRouteResolver("http://unused")
	d, err := resolver.Resolve(context.Background(), mumbai, delhi, domain.ModeRail)

	require.NoError(t, err)
	assert.InDelta(t, locations.DistanceKm(mumbai, delhi)*1.25, d, 1e-9)
}

// TestRouteResolver_Air verifies the great-circle distance for air legs.
func TestRouteResolver_Air(t *testing.T) {
	resolver := NewRouteResolver("http://unused")
	d, err := resolver.Resolve(context.Background(), mumbai, delhi, domain.ModeAir)

	require.NoError(t, err)
	assert.InDelta(t, locations.DistanceKm(mumbai, delhi), d, 1e-9)
}

// TestRouteResolver_Water verifies port snapping and the sea detour factor.
func TestRouteResolver_Water(t *testing.T) {
	resolver := NewRouteResolver("http://unused")

	// Mumbai is near Jawaharlal Nehru Port, Rotterdam is itself a port.
	rotterdam := locations.Location{Address: "Rotterdam, Netherlands", Latitude: 51.9225, Longitude: 4.4792}
	d, err := resolver.Resolve(context.Background(), mumbai, rotterdam, domain.ModeWater)

	require.NoError(t, err)
	// Sea route must exceed the straight line times the detour factor of the
	// port-to-port segment; sanity-check the magnitude.
	assert.Greater(t, d, 6000.0)
	assert.Less(t, d, 12000.0)
}

// TestRouteResolver_UnknownMode verifies the error path.
func TestRouteResolver_UnknownMode(t *testing.T) {
	resolver := NewRouteResolver("http://unused")
	_, err := resolver.Resolve(context.Background(), mumbai, delhi, domain.Mode("teleport"))

	assert.Error(t, err)
}

// TestNearestPort verifies snapping behavior at the distance cutoff.
func TestNearestPort(t *testing.T) {
	// Pune snaps to Jawaharlal Nehru Port (~120 km away).
	lat, lon := nearestPort(18.5204, 73.8567)
	assert.InDelta(t, 18.9647, lat, 1e-4)
	assert.InDelta(t, 72.9505, lon, 1e-4)

	// A mid-ocean point keeps its own coordinates.
	lat, lon = nearestPort(-40.0, -120.0)
	assert.Equal(t, -40.0, lat)
	assert.Equal(t, -120.0, lon)
}
