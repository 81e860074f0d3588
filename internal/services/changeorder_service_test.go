package services

import (
	"testing"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderLifecycle(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Pool house", Phase: "active"})
	require.NoError(t, err)

	order, err := CreateChangeOrder(db, project.ID, ChangeOrderInput{
		Description:  "Upgrade tile",
		AmountCents:  250000,
		AffectsLoops: []string{"loop-a", "loop-b"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ChangeOrderPending, order.Status)
	assert.Equal(t, models.ChangeOrderCustomer, order.Type)
	assert.Nil(t, order.ResolvedAt)
	assert.ElementsMatch(t, []string{"loop-a", "loop-b"}, order.LoopIDs())

	approved, err := ResolveChangeOrder(db, order.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeOrderApproved, approved.Status)
	require.NotNil(t, approved.ResolvedAt)

	// Resolution is final.
	_, err = ResolveChangeOrder(db, order.ID, false)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.ErrorIs(t, DeleteChangeOrder(db, order.ID), ErrNotPending)
}

func TestChangeOrderInvalidType(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Patio"})
	require.NoError(t, err)

	_, err = CreateChangeOrder(db, project.ID, ChangeOrderInput{
		Type:        "wishlist",
		Description: "nope",
	})
	assert.Error(t, err)
}

func TestChangeOrderUnknownProject(t *testing.T) {
	db := testDB(t)

	_, err := CreateChangeOrder(db, "missing", ChangeOrderInput{Description: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePendingChangeOrder(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Porch"})
	require.NoError(t, err)

	order, err := CreateChangeOrder(db, project.ID, ChangeOrderInput{
		Type:        models.ChangeOrderNoCost,
		Description: "Swap fixture",
	})
	require.NoError(t, err)

	require.NoError(t, DeleteChangeOrder(db, order.ID))

	_, err = GetChangeOrder(db, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListChangeOrdersNewestFirst(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Dock"})
	require.NoError(t, err)

	for _, desc := range []string{"first", "second", "third"} {
		_, err := CreateChangeOrder(db, project.ID, ChangeOrderInput{Description: desc})
		require.NoError(t, err)
	}

	orders, err := ListChangeOrders(db, project.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
}
