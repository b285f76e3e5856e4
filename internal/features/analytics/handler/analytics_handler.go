package handler

import (
	"errors"

	"freight-emissions/internal/features/analytics/domain"
	"freight-emissions/internal/features/analytics/service"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles HTTP requests for shipment analytics.
type AnalyticsHandler struct {
	aggregator *service.Aggregator
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(aggregator *service.Aggregator) *AnalyticsHandler {
	return &AnalyticsHandler{
		aggregator: aggregator,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// AnalyticsRequest names the reporting period.
type AnalyticsRequest struct {
	// TimePeriod is one of 7days, 30days, 2months, 6months, 1year.
	TimePeriod string `json:"time_period"`
}

// TripAnalytics godoc
// @Summary Aggregate shipments over a period
// @Description Returns totals, averages and a per-good breakdown for shipments created within the period.
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body AnalyticsRequest true "Reporting period"
// @Success 200 {object} domain.Report
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments/analytics [post]
func (h *AnalyticsHandler) TripAnalytics(c *fiber.Ctx) error {
	var req AnalyticsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	report, err := h.aggregator.Report(c.Context(), req.TimePeriod)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to compute analytics",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(report)
}

// ScatterAnalytics godoc
// @Summary Scatter analytics per GHG category
// @Description Plots each shipment's cost against its emissions, partitioned by GHG category.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.ScatterReport
// @Failure 500 {object} ErrorResponse
// @Router /shipments/scatter-analytics [get]
func (h *AnalyticsHandler) ScatterAnalytics(c *fiber.Ctx) error {
	report, err := h.aggregator.Scatter(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to compute scatter analytics",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(report)
}
