package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"freight-emissions/internal/core/cache"
	"freight-emissions/internal/features/factors/adapters"
	"freight-emissions/internal/features/factors/domain"
	"freight-emissions/internal/features/factors/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	h := NewFactorHandler(service.NewFactorService(adapters.NewRedisFactorRepository(c)))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/emission-factors", h.CreateFactor)
	app.Get("/emission-factors", h.ListFactors)
	app.Put("/emission-factors/:id", h.UpdateFactor)
	app.Delete("/emission-factors/:id", h.DeleteFactor)
	app.Post("/emission-factors/seed", h.SeedFactors)
	app.Get("/vehicle-types/:mode", h.VehicleTypes)
	return app
}

// TestFactorHandler_CreateAndList verifies the create and list routes.
func TestFactorHandler_CreateAndList(t *testing.T) {
	app := newApp(t)

	payload, _ := json.Marshal(FactorRequest{
		TransportMode:  "road",
		VehicleType:    "Heavy Truck",
		EmissionFactor: 0.18,
		Unit:           domain.UnitKgPerTonneKm,
	})
	req := httptest.NewRequest("POST", "/emission-factors", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created domain.Factor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Heavy Truck", created.VehicleType)

	resp, err = app.Test(httptest.NewRequest("GET", "/emission-factors", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var factors []domain.Factor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&factors))
	require.Len(t, factors, 1)
	assert.Equal(t, created.ID, factors[0].ID)
}

// TestFactorHandler_Create_InvalidMode verifies mode validation.
func TestFactorHandler_Create_InvalidMode(t *testing.T) {
	app := newApp(t)

	payload, _ := json.Marshal(FactorRequest{
		TransportMode:  "pipeline",
		VehicleType:    "Pipe",
		EmissionFactor: 0.1,
		Unit:           domain.UnitKgPerTonneKm,
	})
	req := httptest.NewRequest("POST", "/emission-factors", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestFactorHandler_UpdateAndDelete verifies update, delete and 404 handling.
func TestFactorHandler_UpdateAndDelete(t *testing.T) {
	app := newApp(t)

	payload, _ := json.Marshal(FactorRequest{
		TransportMode:  "water",
		VehicleType:    "Ferry",
		EmissionFactor: 0.25,
		Unit:           domain.UnitKgPerTonneKm,
	})
	req := httptest.NewRequest("POST", "/emission-factors", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var created domain.Factor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	payload, _ = json.Marshal(FactorRequest{
		TransportMode:  "water",
		VehicleType:    "Ferry",
		EmissionFactor: 0.3,
		Unit:           domain.UnitKgPerTonneKm,
	})
	req = httptest.NewRequest("PUT", "/emission-factors/"+created.ID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated domain.Factor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, 0.3, updated.Factor)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/emission-factors/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/emission-factors/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// TestFactorHandler_SeedAndVehicleTypes verifies seeding and the type catalog.
func TestFactorHandler_SeedAndVehicleTypes(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/emission-factors/seed", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var seeded SeedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&seeded))
	assert.Equal(t, len(domain.Defaults()), seeded.Seeded)

	// Repeat runs are a no-op.
	resp, err = app.Test(httptest.NewRequest("POST", "/emission-factors/seed", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&seeded))
	assert.Zero(t, seeded.Seeded)

	resp, err = app.Test(httptest.NewRequest("GET", "/vehicle-types/road", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var types []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&types))
	assert.Contains(t, types, "Heavy Truck")
	assert.Contains(t, types, "Light Truck")

	resp, err = app.Test(httptest.NewRequest("GET", "/vehicle-types/submarine", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
