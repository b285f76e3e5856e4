package adapters

import (
	"context"
	"testing"
	"time"

	"freight-emissions/internal/core/cache"
	"freight-emissions/internal/features/factors/domain"
	legs "freight-emissions/internal/features/legs/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisFactorRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewRedisFactorRepository(c)
}

func testFactor(id string) domain.Factor {
	return domain.Factor{
		ID:          id,
		Mode:        legs.ModeRoad,
		VehicleType: "Heavy Truck",
		Factor:      0.18,
		Unit:        domain.UnitKgPerTonneKm,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestRedisFactorRepository_SaveAndGet verifies round-tripping a factor.
func TestRedisFactorRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	want := testFactor("f-1")
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx, "f-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestRedisFactorRepository_Get_NotFound verifies the sentinel error.
func TestRedisFactorRepository_Get_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrFactorNotFound)
}

// TestRedisFactorRepository_Find verifies lookup by mode and vehicle type.
func TestRedisFactorRepository_Find(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	truck := testFactor("f-1")
	ferry := domain.Factor{
		ID:          "f-2",
		Mode:        legs.ModeWater,
		VehicleType: "Ferry",
		Factor:      0.25,
		Unit:        domain.UnitKgPerTonneKm,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, truck))
	require.NoError(t, repo.Save(ctx, ferry))

	got, err := repo.Find(ctx, legs.ModeWater, "Ferry")
	require.NoError(t, err)
	assert.Equal(t, ferry, got)

	_, err = repo.Find(ctx, legs.ModeAir, "Ferry")
	assert.ErrorIs(t, err, domain.ErrFactorNotFound)
}

// TestRedisFactorRepository_Delete verifies removal and the missing-id error.
func TestRedisFactorRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testFactor("f-1")))
	require.NoError(t, repo.Delete(ctx, "f-1"))

	_, err := repo.Get(ctx, "f-1")
	assert.ErrorIs(t, err, domain.ErrFactorNotFound)

	err = repo.Delete(ctx, "f-1")
	assert.ErrorIs(t, err, domain.ErrFactorNotFound)
}

// TestRedisFactorRepository_ListAndCount verifies the full-catalog reads.
func TestRedisFactorRepository_ListAndCount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Save(ctx, testFactor("f-1")))
	second := testFactor("f-2")
	second.VehicleType = "Light Truck"
	require.NoError(t, repo.Save(ctx, second))

	factors, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, factors, 2)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
