package domain

import (
	"errors"
	"fmt"
	"time"

	legs "freight-emissions/internal/features/legs/domain"
)

var (
	// ErrIncompleteShipment is returned when submit is attempted before the
	// shipment has a good and at least one leg.
	ErrIncompleteShipment = errors.New("shipment requires a good and at least one transport leg")
	// ErrMissingEmissionFactor is returned when a leg has no registered
	// emission factor for its (mode, vehicle type) pair. Nothing is persisted.
	ErrMissingEmissionFactor = errors.New("no emission factor registered for leg")
)

// GHGCategory is the greenhouse-gas reporting category of a shipped good.
type GHGCategory string

const (
	CategoryUpstream     GHGCategory = "upstream"
	CategoryDownstream   GHGCategory = "downstream"
	CategoryCompanyOwned GHGCategory = "company_owned"
)

// ParseGHGCategory validates and converts a raw category string.
func ParseGHGCategory(raw string) (GHGCategory, error) {
	c := GHGCategory(raw)
	if !c.Valid() {
		return "", fmt.Errorf("unknown ghg category: %q", raw)
	}
	return c, nil
}

// Valid reports whether the category is one of the supported values.
func (c GHGCategory) Valid() bool {
	switch c {
	case CategoryUpstream, CategoryDownstream, CategoryCompanyOwned:
		return true
	}
	return false
}

// MassUnit is the unit a good's quantity is denominated in.
type MassUnit string

const (
	UnitKg   MassUnit = "kg"
	UnitTons MassUnit = "tons"
)

// Good is the cargo a shipment carries.
type Good struct {
	// Name identifies the good for grouping in analytics.
	Name string `json:"name"`
	// Quantity is the amount shipped, denominated in Unit.
	Quantity float64 `json:"quantity"`
	// Unit is kg or tons.
	Unit MassUnit `json:"unit"`
	// Category is the GHG reporting category of the shipment.
	Category GHGCategory `json:"ghg_category"`
}

// Validate checks the good's invariants.
func (g Good) Validate() error {
	if g.Name == "" {
		return errors.New("good name is required")
	}
	if g.Quantity <= 0 {
		return errors.New("good quantity must be positive")
	}
	if g.Unit != UnitKg && g.Unit != UnitTons {
		return fmt.Errorf("unknown mass unit: %q", g.Unit)
	}
	if !g.Category.Valid() {
		return fmt.Errorf("unknown ghg category: %q", g.Category)
	}
	return nil
}

// MassKg returns the good's mass in kilograms. 1 ton = 1000 kg.
func (g Good) MassKg() float64 {
	if g.Unit == UnitTons {
		return g.Quantity * 1000
	}
	return g.Quantity
}

// MassTonnes returns the good's mass in metric tonnes.
func (g Good) MassTonnes() float64 {
	return g.MassKg() / 1000
}

// Shipment is a finalized, persisted multi-leg shipment with its computed
// cost and emission totals. Emissions and costs are attributed exclusively
// to the good's GHG category; the other category fields stay zero.
type Shipment struct {
	ID            string              `json:"id"`
	Good          Good                `json:"good"`
	TransportLegs []legs.TransportLeg `json:"transport_legs"`

	TotalDistance float64 `json:"total_distance"`
	TotalCost     float64 `json:"total_cost"`
	TotalEmission float64 `json:"total_emissions"`

	UpstreamEmissions     float64 `json:"upstream_emissions"`
	DownstreamEmissions   float64 `json:"downstream_emissions"`
	CompanyOwnedEmissions float64 `json:"company_owned_emissions"`
	UpstreamCost          float64 `json:"upstream_cost"`
	DownstreamCost        float64 `json:"downstream_cost"`
	CompanyOwnedCost      float64 `json:"company_owned_cost"`

	CreatedAt time.Time `json:"created_at"`
}

// LegCost normalizes a leg's cost value to the full cost of moving the good
// over that leg.
func LegCost(leg legs.TransportLeg, good Good) float64 {
	switch leg.CostBasis {
	case legs.CostPerKg:
		return leg.CostValue * good.MassKg()
	case legs.CostPerTon:
		return leg.CostValue * good.MassTonnes()
	default:
		return leg.CostValue
	}
}
