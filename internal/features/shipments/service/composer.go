package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-emissions/internal/core/logger"
	factors "freight-emissions/internal/features/factors/domain"
	legs "freight-emissions/internal/features/legs/domain"
	"freight-emissions/internal/features/shipments/domain"
	"freight-emissions/internal/features/shipments/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Composer accumulates one shipment under construction: a good plus up to
// five finalized transport legs. Submit computes costs and emissions,
// persists the shipment and resets the composer only after the store
// confirms. It is the leg sink the leg builder appends into.
type Composer struct {
	factorSource ports.FactorSource
	repo         ports.ShipmentRepository

	good *domain.Good
	legs []legs.TransportLeg
}

// NewComposer creates an empty Composer.
func NewComposer(factorSource ports.FactorSource, repo ports.ShipmentRepository) *Composer {
	return &Composer{
		factorSource: factorSource,
		repo:         repo,
	}
}

// SetGood stores the shipment's cargo. Rejected once a leg exists: the good's
// mass feeds every leg's cost and emissions, so changing it mid-composition
// would silently invalidate already-finalized legs.
func (c *Composer) SetGood(good domain.Good) error {
	if len(c.legs) > 0 {
		return fmt.Errorf("%w: good cannot change after a leg is added", domain.ErrIncompleteShipment)
	}
	if err := good.Validate(); err != nil {
		return err
	}
	c.good = &good
	return nil
}

// Good returns the current cargo, or false when none is set.
func (c *Composer) Good() (domain.Good, bool) {
	if c.good == nil {
		return domain.Good{}, false
	}
	return *c.good, true
}

// Len returns the number of legs added so far. Implements the leg sink.
func (c *Composer) Len() int {
	return len(c.legs)
}

// Append adds a finalized leg, enforcing the capacity cap. Implements the
// leg sink.
func (c *Composer) Append(leg legs.TransportLeg) error {
	if len(c.legs) >= legs.MaxLegs {
		return legs.ErrCapacityExceeded
	}
	c.legs = append(c.legs, leg)
	return nil
}

// Legs returns a snapshot of the accumulated legs.
func (c *Composer) Legs() []legs.TransportLeg {
	out := make([]legs.TransportLeg, len(c.legs))
	copy(out, c.legs)
	return out
}

// RemoveLeg removes the leg at position i. Out-of-range positions are a no-op.
func (c *Composer) RemoveLeg(i int) {
	if i < 0 || i >= len(c.legs) {
		return
	}
	c.legs = append(c.legs[:i], c.legs[i+1:]...)
}

// CanSubmit reports whether the shipment satisfies the submit gate: a good
// and at least one leg.
func (c *Composer) CanSubmit() bool {
	return c.good != nil && len(c.legs) > 0
}

// Submit computes the shipment's totals, persists it and resets the
// composer. All-or-nothing: any failure leaves both the composer and the
// store untouched.
func (c *Composer) Submit(ctx context.Context) (domain.Shipment, error) {
	if !c.CanSubmit() {
		return domain.Shipment{}, domain.ErrIncompleteShipment
	}

	good := *c.good

	var totalDistance, totalCost, totalEmissions float64
	for _, leg := range c.legs {
		totalDistance += leg.DistanceKm
		totalCost += domain.LegCost(leg, good)

		factor, err := c.factorSource.Lookup(ctx, leg.Mode, leg.VehicleType)
		if err != nil {
			if errors.Is(err, factors.ErrFactorNotFound) {
				return domain.Shipment{}, fmt.Errorf("%w: %s / %s",
					domain.ErrMissingEmissionFactor, leg.Mode, leg.VehicleType)
			}
			return domain.Shipment{}, fmt.Errorf("emission factor lookup failed: %w", err)
		}
		totalEmissions += factor.EmissionsFor(leg.DistanceKm, good.MassKg())
	}

	shipment := domain.Shipment{
		ID:            uuid.NewString(),
		Good:          good,
		TransportLegs: c.Legs(),
		TotalDistance: totalDistance,
		TotalCost:     totalCost,
		TotalEmission: totalEmissions,
		CreatedAt:     time.Now().UTC(),
	}

	switch good.Category {
	case domain.CategoryUpstream:
		shipment.UpstreamEmissions = totalEmissions
		shipment.UpstreamCost = totalCost
	case domain.CategoryDownstream:
		shipment.DownstreamEmissions = totalEmissions
		shipment.DownstreamCost = totalCost
	case domain.CategoryCompanyOwned:
		shipment.CompanyOwnedEmissions = totalEmissions
		shipment.CompanyOwnedCost = totalCost
	}

	if err := c.repo.Create(ctx, shipment); err != nil {
		return domain.Shipment{}, fmt.Errorf("failed to persist shipment: %w", err)
	}

	logger.Get().Info("Shipment submitted",
		zap.String("id", shipment.ID),
		zap.String("good", good.Name),
		zap.Int("legs", len(shipment.TransportLegs)),
		zap.Float64("total_emissions", totalEmissions),
	)

	c.good = nil
	c.legs = nil
	return shipment, nil
}
