package services

import (
	"testing"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateOpenPhases(t *testing.T) {
	db := testDB(t)

	for _, phase := range []string{"intake", "estimating", "approval", "punch_list"} {
		project, err := CreateProject(db, ProjectInput{Name: "P " + phase, Phase: phase})
		require.NoError(t, err)

		loop, err := CreateLoop(db, project.ID, LoopInput{Name: "Demo"})
		require.NoError(t, err)

		decision, err := CanModifyLoop(db, project, loop.ID)
		require.NoError(t, err)
		assert.True(t, decision.CanModify, "phase %s should not gate", phase)
		assert.Empty(t, decision.Reason)
	}
}

func TestGateLockedPhaseWithoutOrder(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Addition", Phase: "active"})
	require.NoError(t, err)

	loop, err := CreateLoop(db, project.ID, LoopInput{Name: "Electrical"})
	require.NoError(t, err)

	decision, err := CanModifyLoop(db, project, loop.ID)
	require.NoError(t, err)
	assert.False(t, decision.CanModify)
	assert.Equal(t, ReasonLockedPhase, decision.Reason)
}

func TestGateApprovedOrderUnlocksCoveredLoop(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Basement", Phase: "active"})
	require.NoError(t, err)

	covered, err := CreateLoop(db, project.ID, LoopInput{Name: "Plumbing"})
	require.NoError(t, err)
	uncovered, err := CreateLoop(db, project.ID, LoopInput{Name: "Drywall"})
	require.NoError(t, err)

	order, err := CreateChangeOrder(db, project.ID, ChangeOrderInput{
		Description:  "Move rough-in",
		AffectsLoops: []string{covered.ID},
	})
	require.NoError(t, err)

	// A pending order does not open the gate.
	decision, err := CanModifyLoop(db, project, covered.ID)
	require.NoError(t, err)
	assert.False(t, decision.CanModify)

	_, err = ResolveChangeOrder(db, order.ID, true)
	require.NoError(t, err)

	decision, err = CanModifyLoop(db, project, covered.ID)
	require.NoError(t, err)
	assert.True(t, decision.CanModify)
	assert.Equal(t, ReasonApprovedOrder, decision.Reason)

	// The approval only covers its listed loops.
	decision, err = CanModifyLoop(db, project, uncovered.ID)
	require.NoError(t, err)
	assert.False(t, decision.CanModify)
	assert.Equal(t, ReasonLockedPhase, decision.Reason)
}

func TestGateRejectedOrderStaysLocked(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Garage", Phase: "contract"})
	require.NoError(t, err)

	loop, err := CreateLoop(db, project.ID, LoopInput{Name: "Slab"})
	require.NoError(t, err)

	order, err := CreateChangeOrder(db, project.ID, ChangeOrderInput{
		Description:  "Thicker pour",
		AffectsLoops: []string{loop.ID},
	})
	require.NoError(t, err)

	_, err = ResolveChangeOrder(db, order.ID, false)
	require.NoError(t, err)

	decision, err := CanModifyLoop(db, project, loop.ID)
	require.NoError(t, err)
	assert.False(t, decision.CanModify)

	resolved, err := GetChangeOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeOrderRejected, resolved.Status)
}
