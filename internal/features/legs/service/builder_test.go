package service

import (
	"context"
	"errors"
	"testing"

	"freight-emissions/internal/features/legs/domain"
	locations "freight-emissions/internal/features/locations/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResolver is a mock implementation of DistanceResolver for testing.
type mockResolver struct {
	returnDistance float64
	returnError    error
	calls          int
}

// Resolve implements DistanceResolver.
func (m *mockResolver) Resolve(_ context.Context, _, _ locations.Location, _ domain.Mode) (float64, error) {
	m.calls++
	if m.returnError != nil {
		return 0, m.returnError
	}
	return m.returnDistance, nil
}

// mockCatalog is a mock implementation of VehicleCatalog for testing.
type mockCatalog struct {
	types       map[domain.Mode][]string
	returnError error
}

// Types implements VehicleCatalog.
func (m *mockCatalog) Types(_ context.Context, mode domain.Mode) ([]string, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.types[mode], nil
}

// mockSink is a mock implementation of LegSink for testing.
type mockSink struct {
	legs []domain.TransportLeg
}

// Len implements LegSink.
func (m *mockSink) Len() int { return len(m.legs) }

// Append implements LegSink.
func (m *mockSink) Append(leg domain.TransportLeg) error {
	if len(m.legs) >= domain.MaxLegs {
		return domain.ErrCapacityExceeded
	}
	m.legs = append(m.legs, leg)
	return nil
}

func roadCatalog() *mockCatalog {
	return &mockCatalog{types: map[domain.Mode][]string{
		domain.ModeRoad: {"Light Truck", "Heavy Truck"},
		domain.ModeRail: {"Freight Train"},
	}}
}

func fillDraft(t *testing.T, b *Builder) {
	t.Helper()
	require.NoError(t, b.SetMode("road"))
	b.SetFrom(locations.Location{Address: "Mumbai, India", Latitude: 19.0760, Longitude: 72.8777})
	b.SetTo(locations.Location{Address: "Pune, India", Latitude: 18.5204, Longitude: 73.8567})
	b.SetVehicleType("Heavy Truck")
	require.NoError(t, b.SetCostValue("500"))
}

// TestBuilder_Finalize_ResolvedDistance verifies the resolver path and the
// builder reset.
func TestBuilder_Finalize_ResolvedDistance(t *testing.T) {
	resolver := &mockResolver{returnDistance: 148.5}
	sink := &mockSink{}
	b := NewBuilder(resolver, roadCatalog(), sink)
	fillDraft(t, b)

	leg, err := b.Finalize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 148.5, leg.DistanceKm)
	assert.False(t, leg.ManualDistance)
	assert.Equal(t, domain.ModeRoad, leg.Mode)
	assert.Equal(t, 500.0, leg.CostValue)
	require.Len(t, sink.legs, 1)

	// Builder is back to its empty state.
	draft := b.Draft()
	assert.Nil(t, draft.From)
	assert.Nil(t, draft.To)
	assert.Empty(t, draft.VehicleType)
	assert.Nil(t, draft.CostValue)
	assert.Equal(t, domain.CostTotal, draft.CostBasis)
}

// TestBuilder_Finalize_ManualDistance verifies the manual override is used
// verbatim and the resolver is never called.
func TestBuilder_Finalize_ManualDistance(t *testing.T) {
	resolver := &mockResolver{returnDistance: 999}
	sink := &mockSink{}
	b := NewBuilder(resolver, roadCatalog(), sink)
	fillDraft(t, b)
	require.NoError(t, b.SetManualDistance("100"))

	leg, err := b.Finalize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 100.0, leg.DistanceKm)
	assert.True(t, leg.ManualDistance)
	assert.Equal(t, 0, resolver.calls)
}

// TestBuilder_Finalize_CapacityExceeded verifies the sixth leg is rejected
// before any network call and the existing legs are untouched.
func TestBuilder_Finalize_CapacityExceeded(t *testing.T) {
	resolver := &mockResolver{returnDistance: 10}
	sink := &mockSink{}
	for i := 0; i < domain.MaxLegs; i++ {
		sink.legs = append(sink.legs, domain.TransportLeg{DistanceKm: 1})
	}

	b := NewBuilder(resolver, roadCatalog(), sink)
	fillDraft(t, b)

	_, err := b.Finalize(context.Background())

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Len(t, sink.legs, domain.MaxLegs)
	assert.Equal(t, 0, resolver.calls)
}

// TestBuilder_Finalize_ValidationErrors verifies each missing field fails
// with ErrValidation and nothing reaches the sink.
func TestBuilder_Finalize_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, b *Builder)
	}{
		{"MissingOrigin", func(t *testing.T, b *Builder) {
			require.NoError(t, b.SetMode("road"))
			b.SetTo(locations.Location{Address: "Pune"})
			b.SetVehicleType("Heavy Truck")
			require.NoError(t, b.SetCostValue("10"))
		}},
		{"MissingDestination", func(t *testing.T, b *Builder) {
			require.NoError(t, b.SetMode("road"))
			b.SetFrom(locations.Location{Address: "Mumbai"})
			b.SetVehicleType("Heavy Truck")
			require.NoError(t, b.SetCostValue("10"))
		}},
		{"MissingMode", func(t *testing.T, b *Builder) {
			b.SetFrom(locations.Location{Address: "Mumbai"})
			b.SetTo(locations.Location{Address: "Pune"})
			b.SetVehicleType("Heavy Truck")
			require.NoError(t, b.SetCostValue("10"))
		}},
		{"MissingVehicleType", func(t *testing.T, b *Builder) {
			require.NoError(t, b.SetMode("road"))
			b.SetFrom(locations.Location{Address: "Mumbai"})
			b.SetTo(locations.Location{Address: "Pune"})
			require.NoError(t, b.SetCostValue("10"))
		}},
		{"MissingCost", func(t *testing.T, b *Builder) {
			require.NoError(t, b.SetMode("road"))
			b.SetFrom(locations.Location{Address: "Mumbai"})
			b.SetTo(locations.Location{Address: "Pune"})
			b.SetVehicleType("Heavy Truck")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &mockResolver{returnDistance: 10}
			sink := &mockSink{}
			b := NewBuilder(resolver, roadCatalog(), sink)
			tc.setup(t, b)

			_, err := b.Finalize(context.Background())

			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, sink.legs)
		})
	}
}

// TestBuilder_SetMode_ClearsVehicleType verifies mode changes invalidate the
// previously chosen vehicle.
func TestBuilder_SetMode_ClearsVehicleType(t *testing.T) {
	b := NewBuilder(&mockResolver{}, roadCatalog(), &mockSink{})

	require.NoError(t, b.SetMode("road"))
	b.SetVehicleType("Heavy Truck")
	require.NoError(t, b.SetMode("rail"))

	assert.Empty(t, b.Draft().VehicleType)

	// Same mode again keeps the choice.
	b.SetVehicleType("Freight Train")
	require.NoError(t, b.SetMode("rail"))
	assert.Equal(t, "Freight Train", b.Draft().VehicleType)
}

// TestBuilder_Finalize_RejectsStaleVehicleType verifies catalog membership
// is enforced, not just non-emptiness.
func TestBuilder_Finalize_RejectsStaleVehicleType(t *testing.T) {
	sink := &mockSink{}
	b := NewBuilder(&mockResolver{returnDistance: 10}, roadCatalog(), sink)
	require.NoError(t, b.SetMode("rail"))
	b.SetFrom(locations.Location{Address: "Mumbai"})
	b.SetTo(locations.Location{Address: "Pune"})
	// A road vehicle smuggled into a rail leg.
	b.SetVehicleType("Heavy Truck")
	require.NoError(t, b.SetCostValue("10"))

	_, err := b.Finalize(context.Background())

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "not available for mode rail")
	assert.Empty(t, sink.legs)
}

// TestBuilder_Finalize_DistanceResolutionError verifies a resolver failure
// aborts without touching the sink or the draft.
func TestBuilder_Finalize_DistanceResolutionError(t *testing.T) {
	resolver := &mockResolver{returnError: errors.New("routing down")}
	sink := &mockSink{}
	b := NewBuilder(resolver, roadCatalog(), sink)
	fillDraft(t, b)

	_, err := b.Finalize(context.Background())

	assert.ErrorIs(t, err, ErrDistanceResolution)
	assert.Empty(t, sink.legs)
	// Draft kept so the user can retry or enter a manual distance.
	assert.NotNil(t, b.Draft().From)
}

// TestBuilder_LocationKind verifies the airport switch for air mode.
func TestBuilder_LocationKind(t *testing.T) {
	b := NewBuilder(&mockResolver{}, roadCatalog(), &mockSink{})

	assert.Equal(t, locations.KindGeneral, b.LocationKind())
	require.NoError(t, b.SetMode("air"))
	assert.Equal(t, locations.KindAirport, b.LocationKind())
	require.NoError(t, b.SetMode("water"))
	assert.Equal(t, locations.KindGeneral, b.LocationKind())
}

// TestBuilder_SetCostValue verifies edge parsing of cost input.
func TestBuilder_SetCostValue(t *testing.T) {
	b := NewBuilder(&mockResolver{}, roadCatalog(), &mockSink{})

	assert.ErrorIs(t, b.SetCostValue("abc"), ErrValidation)
	assert.ErrorIs(t, b.SetCostValue("-1"), ErrValidation)
	require.NoError(t, b.SetCostValue("0"))
	require.NotNil(t, b.Draft().CostValue)
	require.NoError(t, b.SetCostValue(""))
	assert.Nil(t, b.Draft().CostValue)
}

// TestBuilder_SetManualDistance verifies edge parsing of the override.
func TestBuilder_SetManualDistance(t *testing.T) {
	b := NewBuilder(&mockResolver{}, roadCatalog(), &mockSink{})

	assert.ErrorIs(t, b.SetManualDistance("0"), ErrValidation)
	assert.ErrorIs(t, b.SetManualDistance("x"), ErrValidation)
	require.NoError(t, b.SetManualDistance("12.5"))
	require.NotNil(t, b.Draft().ManualDistanceKm)
	assert.Equal(t, 12.5, *b.Draft().ManualDistanceKm)
	require.NoError(t, b.SetManualDistance(""))
	assert.Nil(t, b.Draft().ManualDistanceKm)
}

// TestBuilder_Finalize_CatalogUnavailable verifies a catalog outage fails
// validation rather than silently passing.
func TestBuilder_Finalize_CatalogUnavailable(t *testing.T) {
	catalog := &mockCatalog{returnError: errors.New("redis down")}
	b := NewBuilder(&mockResolver{returnDistance: 10}, catalog, &mockSink{})
	fillDraft(t, b)

	_, err := b.Finalize(context.Background())

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "vehicle catalog unavailable")
}
