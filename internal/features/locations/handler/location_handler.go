package handler

import (
	"freight-emissions/internal/features/locations/domain"
	"freight-emissions/internal/features/locations/ports"
	"freight-emissions/internal/features/locations/service"

	"github.com/gofiber/fiber/v2"
)

// LocationHandler handles HTTP requests for location searches.
type LocationHandler struct {
	searchService *service.SearchService
	airports      ports.AirportProvider
	debounceMs    int
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(searchService *service.SearchService, airports ports.AirportProvider, debounceMs int) *LocationHandler {
	return &LocationHandler{
		searchService: searchService,
		airports:      airports,
		debounceMs:    debounceMs,
	}
}

// SearchConfigResponse tells clients how to pace their search requests.
type SearchConfigResponse struct {
	// DebounceMs is the quiet period clients should wait after a keystroke
	// before searching.
	DebounceMs int `json:"debounce_ms"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// SearchLocations godoc
// @Summary Search candidate locations
// @Description Resolves a free-text term into at most 6 candidate locations. Kind "airport" draws from the airport catalog.
// @Tags locations
// @Produce json
// @Param query query string true "Search term"
// @Param kind query string false "Location kind (general or airport)" default(general)
// @Success 200 {array} domain.Location
// @Failure 400 {object} ErrorResponse
// @Router /locations/search [get]
func (h *LocationHandler) SearchLocations(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "query parameter is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	kind := domain.LocationKind(c.Query("kind", string(domain.KindGeneral)))

	results := h.searchService.Search(c.Context(), query, kind)
	return c.JSON(results)
}

// SearchAirports godoc
// @Summary Search the airport catalog
// @Description Returns airports matching the term, best matches first.
// @Tags locations
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {array} domain.Airport
// @Failure 400 {object} ErrorResponse
// @Router /airports/search [get]
func (h *LocationHandler) SearchAirports(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "query parameter is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	matches := h.airports.Search(query)
	if matches == nil {
		matches = []domain.Airport{}
	}
	return c.JSON(matches)
}

// SearchConfig godoc
// @Summary Location search client settings
// @Description Returns the debounce quiet period search clients should apply.
// @Tags locations
// @Produce json
// @Success 200 {object} SearchConfigResponse
// @Router /locations/search-config [get]
func (h *LocationHandler) SearchConfig(c *fiber.Ctx) error {
	return c.JSON(SearchConfigResponse{DebounceMs: h.debounceMs})
}
