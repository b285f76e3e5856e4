package handler

import (
	"errors"

	"freight-emissions/internal/features/factors/domain"
	"freight-emissions/internal/features/factors/service"
	legs "freight-emissions/internal/features/legs/domain"

	"github.com/gofiber/fiber/v2"
)

// FactorHandler handles HTTP requests for the emission-factor catalog.
type FactorHandler struct {
	factorService *service.FactorService
}

// NewFactorHandler creates a new FactorHandler.
func NewFactorHandler(factorService *service.FactorService) *FactorHandler {
	return &FactorHandler{
		factorService: factorService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// FactorRequest is the payload for creating or updating a factor.
type FactorRequest struct {
	// TransportMode is road, rail, air or water.
	TransportMode string `json:"transport_mode"`
	// VehicleType is the vehicle the factor applies to.
	VehicleType string `json:"vehicle_type"`
	// EmissionFactor is the conversion coefficient in Unit.
	EmissionFactor float64 `json:"emission_factor"`
	// Unit is the denomination, e.g. kgCO2/tonne-km.
	Unit string `json:"unit"`
}

// SeedResponse reports how many factors a seed run registered.
type SeedResponse struct {
	// Seeded is the number of factors registered by this call.
	Seeded int `json:"seeded"`
}

// CreateFactor godoc
// @Summary Register an emission factor
// @Description Registers a conversion factor for a (transport mode, vehicle type) pair.
// @Tags factors
// @Accept json
// @Produce json
// @Param factor body FactorRequest true "Factor to register"
// @Success 201 {object} domain.Factor
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /emission-factors [post]
func (h *FactorHandler) CreateFactor(c *fiber.Ctx) error {
	var req FactorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	mode, err := legs.ParseMode(req.TransportMode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	factor, err := h.factorService.Create(c.Context(), mode, req.VehicleType, req.EmissionFactor, req.Unit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(factor)
}

// ListFactors godoc
// @Summary List emission factors
// @Description Returns every registered factor, ordered by mode then vehicle type.
// @Tags factors
// @Produce json
// @Success 200 {array} domain.Factor
// @Failure 500 {object} ErrorResponse
// @Router /emission-factors [get]
func (h *FactorHandler) ListFactors(c *fiber.Ctx) error {
	factors, err := h.factorService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to list emission factors",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if factors == nil {
		factors = []domain.Factor{}
	}
	return c.JSON(factors)
}

// UpdateFactor godoc
// @Summary Update an emission factor
// @Description Replaces the factor stored under the given id.
// @Tags factors
// @Accept json
// @Produce json
// @Param id path string true "Factor id"
// @Param factor body FactorRequest true "New factor values"
// @Success 200 {object} domain.Factor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /emission-factors/{id} [put]
func (h *FactorHandler) UpdateFactor(c *fiber.Ctx) error {
	id := c.Params("id")

	var req FactorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	mode, err := legs.ParseMode(req.TransportMode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	factor, err := h.factorService.Update(c.Context(), id, mode, req.VehicleType, req.EmissionFactor, req.Unit)
	if err != nil {
		if errors.Is(err, domain.ErrFactorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(factor)
}

// DeleteFactor godoc
// @Summary Delete an emission factor
// @Description Removes the factor stored under the given id.
// @Tags factors
// @Produce json
// @Param id path string true "Factor id"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /emission-factors/{id} [delete]
func (h *FactorHandler) DeleteFactor(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.factorService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrFactorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to delete emission factor",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SeedFactors godoc
// @Summary Seed the default factor catalog
// @Description Loads the built-in emission factors. No-op when the catalog is non-empty.
// @Tags factors
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} ErrorResponse
// @Router /emission-factors/seed [post]
func (h *FactorHandler) SeedFactors(c *fiber.Ctx) error {
	n, err := h.factorService.Seed(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to seed emission factors",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(SeedResponse{Seeded: n})
}

// VehicleTypes godoc
// @Summary List vehicle types for a mode
// @Description Returns the distinct vehicle types with a registered factor for the mode.
// @Tags factors
// @Produce json
// @Param mode path string true "Transport mode (road, rail, air, water)"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /vehicle-types/{mode} [get]
func (h *FactorHandler) VehicleTypes(c *fiber.Ctx) error {
	mode, err := legs.ParseMode(c.Params("mode"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	types, err := h.factorService.Types(c.Context(), mode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to load vehicle types",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if types == nil {
		types = []string{}
	}
	return c.JSON(types)
}
