package domain

import (
	"errors"
	"fmt"
	"time"

	legs "freight-emissions/internal/features/legs/domain"
)

// Emission factor units understood by the emissions calculation.
const (
	// UnitKgPerTonneKm is kilograms of CO2 per tonne-kilometer.
	UnitKgPerTonneKm = "kgCO2/tonne-km"
	// UnitGPerKgKm is grams of CO2 per kilogram-kilometer.
	UnitGPerKgKm = "gCO2/kg-km"
)

// ErrFactorNotFound is returned when no factor is registered for a
// (mode, vehicle type) pair or id.
var ErrFactorNotFound = errors.New("emission factor not found")

// Factor converts distance and mass into emissions for a specific
// transport mode and vehicle type.
type Factor struct {
	// ID is the unique identifier of the factor.
	ID string `json:"id"`
	// Mode is the transport mode the factor applies to.
	Mode legs.Mode `json:"transport_mode"`
	// VehicleType is the vehicle the factor applies to.
	VehicleType string `json:"vehicle_type"`
	// Factor is the conversion coefficient in Unit.
	Factor float64 `json:"emission_factor"`
	// Unit is the denomination of Factor, e.g. kgCO2/tonne-km.
	Unit string `json:"unit"`
	// CreatedAt is when the factor was registered.
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the factor's invariants.
func (f Factor) Validate() error {
	if !f.Mode.Valid() {
		return fmt.Errorf("invalid transport mode: %q", f.Mode)
	}
	if f.VehicleType == "" {
		return errors.New("vehicle type is required")
	}
	if f.Factor < 0 {
		return errors.New("emission factor must be non-negative")
	}
	if f.Unit == "" {
		return errors.New("unit is required")
	}
	return nil
}

// EmissionsFor converts a leg's distance and the good's mass into
// kilograms of CO2, honoring the factor's unit. Unknown units fall back
// to the tonne-kilometer formula.
func (f Factor) EmissionsFor(distanceKm, massKg float64) float64 {
	switch f.Unit {
	case UnitGPerKgKm:
		return (f.Factor / 1000) * massKg * distanceKm
	case UnitKgPerTonneKm:
		return f.Factor * (massKg / 1000) * distanceKm
	default:
		return f.Factor * (massKg / 1000) * distanceKm
	}
}

// Defaults returns the seed catalog of emission factors per Indian GHG
// reporting protocols.
func Defaults() []Factor {
	return []Factor{
		// Road transport
		{Mode: legs.ModeRoad, VehicleType: "Small Car", Factor: 0.15, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeRoad, VehicleType: "Medium Car", Factor: 0.18, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeRoad, VehicleType: "Large Car", Factor: 0.22, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeRoad, VehicleType: "Light Truck", Factor: 0.65, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeRoad, VehicleType: "Heavy Truck", Factor: 0.18, Unit: UnitKgPerTonneKm},

		// Rail transport
		{Mode: legs.ModeRail, VehicleType: "Electric Train", Factor: 0.03, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeRail, VehicleType: "Diesel Train", Factor: 0.06, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeRail, VehicleType: "Freight Train", Factor: 0.04, Unit: UnitKgPerTonneKm},

		// Air transport
		{Mode: legs.ModeAir, VehicleType: "Domestic Flight", Factor: 0.85, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeAir, VehicleType: "International Flight", Factor: 0.75, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeAir, VehicleType: "Cargo Flight", Factor: 1.2, Unit: UnitKgPerTonneKm},

		// Water transport
		{Mode: legs.ModeWater, VehicleType: "Container Ship", Factor: 0.015, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeWater, VehicleType: "Bulk Carrier", Factor: 0.012, Unit: UnitKgPerTonneKm},
		{Mode: legs.ModeWater, VehicleType: "Ferry", Factor: 0.25, Unit: UnitKgPerTonneKm},
	}
}
