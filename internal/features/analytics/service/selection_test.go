package service

import (
	"context"
	"errors"
	"testing"
	"time"

	shipments "freight-emissions/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelection_Toggle verifies toggling flips membership.
func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection(&mockShipmentRepo{})

	sel.Toggle("s-1")
	assert.True(t, sel.Has("s-1"))
	assert.Equal(t, 1, sel.Len())

	sel.Toggle("s-1")
	assert.False(t, sel.Has("s-1"))
	assert.Zero(t, sel.Len())
}

// TestSelection_SelectAllAndClear verifies bulk selection management.
func TestSelection_SelectAllAndClear(t *testing.T) {
	sel := NewSelection(&mockShipmentRepo{})

	sel.SelectAll([]string{"s-1", "s-2", "s-3"})
	assert.Equal(t, 3, sel.Len())

	sel.Clear()
	assert.Zero(t, sel.Len())
}

// TestSelection_DeleteSelected verifies the delete-and-refetch flow.
func TestSelection_DeleteSelected(t *testing.T) {
	now := time.Now().UTC()
	repo := &mockShipmentRepo{shipments: []shipments.Shipment{
		shipmentAt("s-1", "Steel", shipments.CategoryUpstream, 100, 10, 50, now),
		shipmentAt("s-2", "Grain", shipments.CategoryDownstream, 200, 20, 100, now),
	}}
	sel := NewSelection(repo)

	sel.Toggle("s-1")
	list, err := sel.DeleteSelected(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "s-2", list[0].ID)
	assert.Zero(t, sel.Len())
}

// TestSelection_DeleteSelected_Empty verifies the empty-selection error.
func TestSelection_DeleteSelected_Empty(t *testing.T) {
	sel := NewSelection(&mockShipmentRepo{})

	_, err := sel.DeleteSelected(context.Background())
	assert.ErrorIs(t, err, ErrEmptySelection)
}

// TestSelection_DeleteSelected_FailureKeepsSelection verifies the selection
// survives a repository failure for retry.
func TestSelection_DeleteSelected_FailureKeepsSelection(t *testing.T) {
	repo := &mockShipmentRepo{bulkError: errors.New("redis down")}
	sel := NewSelection(repo)

	sel.Toggle("s-1")
	_, err := sel.DeleteSelected(context.Background())
	assert.Error(t, err)
	assert.True(t, sel.Has("s-1"))
}
