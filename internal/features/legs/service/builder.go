package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/features/legs/domain"
	"freight-emissions/internal/features/legs/ports"
	locations "freight-emissions/internal/features/locations/domain"

	"go.uber.org/zap"
)

var (
	// ErrValidation is returned when required leg fields are missing or invalid.
	ErrValidation = errors.New("transport leg validation failed")
	// ErrDistanceResolution is returned when the distance service cannot
	// resolve the leg. The leg is not appended.
	ErrDistanceResolution = errors.New("distance resolution failed")
)

// Builder accumulates one in-progress transport leg, validates it,
// resolves its distance and hands the finalized leg to the owning sink.
type Builder struct {
	resolver ports.DistanceResolver
	catalog  ports.VehicleCatalog
	sink     ports.LegSink

	draft domain.Draft
}

// NewBuilder creates a Builder bound to the composer that owns the leg list.
func NewBuilder(resolver ports.DistanceResolver, catalog ports.VehicleCatalog, sink ports.LegSink) *Builder {
	return &Builder{
		resolver: resolver,
		catalog:  catalog,
		sink:     sink,
		draft:    domain.NewDraft(),
	}
}

// Draft returns a snapshot of the in-progress leg.
func (b *Builder) Draft() domain.Draft {
	return b.draft
}

// LocationKind returns the candidate pool the endpoints currently search in.
func (b *Builder) LocationKind() locations.LocationKind {
	return b.draft.Mode.LocationKind()
}

// SetMode replaces the current transport mode. A mode change clears any
// previously chosen vehicle type: vehicle catalogs are mode-specific and a
// stale choice is not a member of the new catalog.
func (b *Builder) SetMode(raw string) error {
	mode, err := domain.ParseMode(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if mode != b.draft.Mode {
		b.draft.VehicleType = ""
	}
	b.draft.Mode = mode
	return nil
}

// SetFrom stores the origin endpoint.
func (b *Builder) SetFrom(loc locations.Location) {
	b.draft.From = &loc
}

// SetTo stores the destination endpoint.
func (b *Builder) SetTo(loc locations.Location) {
	b.draft.To = &loc
}

// SetVehicleType stores the chosen vehicle type.
func (b *Builder) SetVehicleType(vehicleType string) {
	b.draft.VehicleType = vehicleType
}

// SetCostBasis stores the cost denomination.
func (b *Builder) SetCostBasis(raw string) error {
	basis, err := domain.ParseCostBasis(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	b.draft.CostBasis = basis
	return nil
}

// SetCostValue parses the cost input at the edge. Empty input clears the value.
func (b *Builder) SetCostValue(raw string) error {
	if raw == "" {
		b.draft.CostValue = nil
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("%w: cost value must be a non-negative number", ErrValidation)
	}
	b.draft.CostValue = &v
	return nil
}

// SetManualDistance parses the manual distance input at the edge.
// Empty input clears the override.
func (b *Builder) SetManualDistance(raw string) error {
	if raw == "" {
		b.draft.ManualDistanceKm = nil
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("%w: manual distance must be a positive number", ErrValidation)
	}
	b.draft.ManualDistanceKm = &v
	return nil
}

// Finalize validates the draft, resolves its distance and appends the
// immutable leg to the owning sink. On success the builder resets to its
// empty state; on any failure neither the builder nor the sink change.
//
// The capacity check runs before any network call to avoid wasted work.
func (b *Builder) Finalize(ctx context.Context) (domain.TransportLeg, error) {
	if b.sink.Len() >= domain.MaxLegs {
		return domain.TransportLeg{}, domain.ErrCapacityExceeded
	}

	if err := b.validate(ctx); err != nil {
		return domain.TransportLeg{}, err
	}

	distance, manual, err := b.resolveDistance(ctx)
	if err != nil {
		return domain.TransportLeg{}, err
	}

	leg := domain.TransportLeg{
		From:           *b.draft.From,
		To:             *b.draft.To,
		Mode:           b.draft.Mode,
		VehicleType:    b.draft.VehicleType,
		CostBasis:      b.draft.CostBasis,
		CostValue:      *b.draft.CostValue,
		ManualDistance: manual,
		DistanceKm:     distance,
	}

	if err := b.sink.Append(leg); err != nil {
		return domain.TransportLeg{}, err
	}

	logger.Get().Info("Transport leg finalized",
		zap.String("mode", string(leg.Mode)),
		zap.String("vehicle_type", leg.VehicleType),
		zap.Float64("distance_km", leg.DistanceKm),
	)

	b.draft = domain.NewDraft()
	return leg, nil
}

// validate checks the draft fields, including catalog membership of the
// vehicle type for the current mode. A vehicle type left over from another
// mode is rejected here even if non-empty.
func (b *Builder) validate(ctx context.Context) error {
	if b.draft.From == nil || b.draft.From.Address == "" {
		return fmt.Errorf("%w: origin location is required", ErrValidation)
	}
	if b.draft.To == nil || b.draft.To.Address == "" {
		return fmt.Errorf("%w: destination location is required", ErrValidation)
	}
	if !b.draft.Mode.Valid() {
		return fmt.Errorf("%w: transport mode is required", ErrValidation)
	}
	if b.draft.VehicleType == "" {
		return fmt.Errorf("%w: vehicle type is required", ErrValidation)
	}
	if b.draft.CostValue == nil {
		return fmt.Errorf("%w: cost value is required", ErrValidation)
	}

	types, err := b.catalog.Types(ctx, b.draft.Mode)
	if err != nil {
		return fmt.Errorf("%w: vehicle catalog unavailable for mode %s", ErrValidation, b.draft.Mode)
	}
	if !slices.Contains(types, b.draft.VehicleType) {
		return fmt.Errorf("%w: vehicle type %q is not available for mode %s", ErrValidation, b.draft.VehicleType, b.draft.Mode)
	}

	return nil
}

// resolveDistance uses the manual override verbatim when present, otherwise
// asks the distance service.
func (b *Builder) resolveDistance(ctx context.Context) (float64, bool, error) {
	if b.draft.ManualDistanceKm != nil {
		return *b.draft.ManualDistanceKm, true, nil
	}

	distance, err := b.resolver.Resolve(ctx, *b.draft.From, *b.draft.To, b.draft.Mode)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrDistanceResolution, err)
	}
	if distance <= 0 {
		return 0, false, fmt.Errorf("%w: service returned non-positive distance", ErrDistanceResolution)
	}
	return distance, false, nil
}
