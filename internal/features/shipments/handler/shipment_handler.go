package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	legs "freight-emissions/internal/features/legs/domain"
	legports "freight-emissions/internal/features/legs/ports"
	legservice "freight-emissions/internal/features/legs/service"
	locations "freight-emissions/internal/features/locations/domain"
	"freight-emissions/internal/features/shipments/domain"
	"freight-emissions/internal/features/shipments/ports"
	"freight-emissions/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
)

// ShipmentHandler handles HTTP requests for shipment composition and storage.
// Each create request runs a fresh composer and leg builder, so the full
// finalize pipeline (validation, capacity, distance resolution) applies to
// every submitted leg.
type ShipmentHandler struct {
	resolver     legports.DistanceResolver
	catalog      legports.VehicleCatalog
	factorSource ports.FactorSource
	repo         ports.ShipmentRepository
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(resolver legports.DistanceResolver, catalog legports.VehicleCatalog, factorSource ports.FactorSource, repo ports.ShipmentRepository) *ShipmentHandler {
	return &ShipmentHandler{
		resolver:     resolver,
		catalog:      catalog,
		factorSource: factorSource,
		repo:         repo,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// LegRequest is one transport leg of a shipment create request. Distances
// are resolved server-side unless manual_distance is supplied.
type LegRequest struct {
	From           locations.Location `json:"from_location"`
	To             locations.Location `json:"to_location"`
	TransportMode  string             `json:"transport_mode"`
	VehicleType    string             `json:"vehicle_type"`
	CostType       string             `json:"cost_type"`
	CostValue      json.Number        `json:"cost_value"`
	ManualDistance json.Number        `json:"manual_distance,omitempty"`
}

// CreateShipmentRequest is the payload for creating a shipment.
type CreateShipmentRequest struct {
	Good          domain.Good  `json:"good"`
	TransportLegs []LegRequest `json:"transport_legs"`
}

// BulkDeleteRequest names the shipments to delete.
type BulkDeleteRequest struct {
	ShipmentIDs []string `json:"shipment_ids"`
}

// BulkDeleteResponse reports the outcome of a bulk delete.
type BulkDeleteResponse struct {
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message"`
}

// MessageResponse is a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateShipment godoc
// @Summary Create a shipment
// @Description Composes a shipment from a good and up to five transport legs, resolving distances, costs and emissions server-side.
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment body CreateShipmentRequest true "Good and transport legs"
// @Success 201 {object} domain.Shipment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments [post]
func (h *ShipmentHandler) CreateShipment(c *fiber.Ctx) error {
	var req CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	composer := service.NewComposer(h.factorSource, h.repo)
	if err := composer.SetGood(req.Good); err != nil {
		return badRequest(c, err.Error())
	}

	builder := legservice.NewBuilder(h.resolver, h.catalog, composer)
	for i, legReq := range req.TransportLegs {
		if err := h.finalizeLeg(c, builder, legReq); err != nil {
			return badRequest(c, fmt.Sprintf("leg %d: %s", i+1, err.Error()))
		}
	}

	shipment, err := composer.Submit(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrIncompleteShipment) || errors.Is(err, domain.ErrMissingEmissionFactor) {
			return badRequest(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to create shipment",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(shipment)
}

// finalizeLeg feeds one request leg through the builder pipeline.
func (h *ShipmentHandler) finalizeLeg(c *fiber.Ctx, builder *legservice.Builder, req LegRequest) error {
	if err := builder.SetMode(req.TransportMode); err != nil {
		return err
	}
	builder.SetFrom(req.From)
	builder.SetTo(req.To)
	builder.SetVehicleType(req.VehicleType)

	costType := req.CostType
	if costType == "" {
		costType = string(legs.CostTotal)
	}
	if err := builder.SetCostBasis(costType); err != nil {
		return err
	}
	if err := builder.SetCostValue(req.CostValue.String()); err != nil {
		return err
	}
	if err := builder.SetManualDistance(req.ManualDistance.String()); err != nil {
		return err
	}

	_, err := builder.Finalize(c.Context())
	return err
}

// ListShipments godoc
// @Summary List shipments
// @Description Returns every stored shipment, oldest first.
// @Tags shipments
// @Produce json
// @Success 200 {array} domain.Shipment
// @Failure 500 {object} ErrorResponse
// @Router /shipments [get]
func (h *ShipmentHandler) ListShipments(c *fiber.Ctx) error {
	shipments, err := h.repo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to list shipments",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if shipments == nil {
		shipments = []domain.Shipment{}
	}
	return c.JSON(shipments)
}

// BulkDeleteShipments godoc
// @Summary Delete shipments in bulk
// @Description Removes the named shipments in one call and reports the deleted count.
// @Tags shipments
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "Shipment ids to delete"
// @Success 200 {object} BulkDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments/bulk [delete]
func (h *ShipmentHandler) BulkDeleteShipments(c *fiber.Ctx) error {
	var req BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.ShipmentIDs) == 0 {
		return badRequest(c, "shipment_ids is required")
	}

	n, err := h.repo.BulkDelete(c.Context(), req.ShipmentIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to delete shipments",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(BulkDeleteResponse{
		DeletedCount: n,
		Message:      fmt.Sprintf("Successfully deleted %d shipments", n),
	})
}

// ResetShipments godoc
// @Summary Reset all shipment data
// @Description Removes every stored shipment.
// @Tags shipments
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments/reset [post]
func (h *ShipmentHandler) ResetShipments(c *fiber.Ctx) error {
	if err := h.repo.DeleteAll(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to reset shipment data",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(MessageResponse{Message: "All data has been reset successfully"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
		RayID:   c.Locals("requestid").(string),
	})
}
