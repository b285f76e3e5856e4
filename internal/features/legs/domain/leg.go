package domain

import (
	"errors"
	"fmt"

	locations "freight-emissions/internal/features/locations/domain"
)

// MaxLegs is the maximum number of transport legs a shipment can carry.
// Hardcoded policy, not configurable.
const MaxLegs = 5

// ErrCapacityExceeded is returned when a shipment already holds MaxLegs legs.
var ErrCapacityExceeded = errors.New("maximum of 5 transport legs allowed")

// Mode represents the transport mode of a leg.
type Mode string

const (
	ModeRoad  Mode = "road"
	ModeRail  Mode = "rail"
	ModeAir   Mode = "air"
	ModeWater Mode = "water"
)

// ParseMode validates and converts a raw mode string.
func ParseMode(raw string) (Mode, error) {
	m := Mode(raw)
	if !m.Valid() {
		return "", fmt.Errorf("unknown transport mode: %q", raw)
	}
	return m, nil
}

// Valid reports whether the mode is one of the supported values.
func (m Mode) Valid() bool {
	switch m {
	case ModeRoad, ModeRail, ModeAir, ModeWater:
		return true
	}
	return false
}

// LocationKind returns the candidate pool endpoints of this mode search in.
// Air legs pick endpoints from the airport catalog, everything else geocodes.
func (m Mode) LocationKind() locations.LocationKind {
	if m == ModeAir {
		return locations.KindAirport
	}
	return locations.KindGeneral
}

// CostBasis represents how a leg's cost value is denominated.
type CostBasis string

const (
	// CostTotal means the cost value is the full cost of the leg.
	CostTotal CostBasis = "total"
	// CostPerKg means the cost value is per kilogram of the shipped good.
	CostPerKg CostBasis = "per_kg"
	// CostPerTon means the cost value is per tonne of the shipped good.
	CostPerTon CostBasis = "per_ton"
)

// ParseCostBasis validates and converts a raw cost basis string.
func ParseCostBasis(raw string) (CostBasis, error) {
	b := CostBasis(raw)
	if !b.Valid() {
		return "", fmt.Errorf("unknown cost basis: %q", raw)
	}
	return b, nil
}

// Valid reports whether the cost basis is one of the supported values.
func (b CostBasis) Valid() bool {
	switch b {
	case CostTotal, CostPerKg, CostPerTon:
		return true
	}
	return false
}

// TransportLeg is a finalized point-to-point segment of a shipment.
// It is immutable once appended to a shipment.
type TransportLeg struct {
	// From is the resolved origin of the leg.
	From locations.Location `json:"from_location"`
	// To is the resolved destination of the leg.
	To locations.Location `json:"to_location"`
	// Mode is the transport mode.
	Mode Mode `json:"transport_mode"`
	// VehicleType is the vehicle drawn from the mode's catalog.
	VehicleType string `json:"vehicle_type"`
	// CostBasis is how CostValue is denominated.
	CostBasis CostBasis `json:"cost_type"`
	// CostValue is the non-negative cost in the basis above.
	CostValue float64 `json:"cost_value"`
	// ManualDistance records whether DistanceKm was entered by hand.
	ManualDistance bool `json:"manual_distance"`
	// DistanceKm is the resolved distance. Always > 0 on a finalized leg.
	DistanceKm float64 `json:"distance_km"`
}

// Draft is a transport leg under construction. Numeric inputs are parsed
// at the edge into typed optionals rather than carried as strings.
type Draft struct {
	// From is the chosen origin, nil until selected.
	From *locations.Location
	// To is the chosen destination, nil until selected.
	To *locations.Location
	// Mode is the transport mode, empty until set.
	Mode Mode
	// VehicleType is the chosen vehicle, cleared on mode change.
	VehicleType string
	// CostBasis defaults to total.
	CostBasis CostBasis
	// CostValue is nil until a parseable cost is entered.
	CostValue *float64
	// ManualDistanceKm overrides distance resolution when present.
	ManualDistanceKm *float64
}

// NewDraft returns an empty draft with the default cost basis.
func NewDraft() Draft {
	return Draft{CostBasis: CostTotal}
}
