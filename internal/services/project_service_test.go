package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectDefaultsToIntake(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Deck build"})
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "intake", project.Phase)
	assert.Equal(t, "pre_contract", project.PhaseGroup)
}

func TestCreateProjectNormalizesAlias(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Sunroom", Phase: "quote_sent"})
	require.NoError(t, err)
	assert.Equal(t, "estimating", project.Phase)
	assert.Equal(t, "pre_contract", project.PhaseGroup)
}

func TestTransitionPhaseStampsOnce(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Roof"})
	require.NoError(t, err)

	moved, err := TransitionPhase(db, project.ID, "active", PhaseMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "active", moved.Phase)
	assert.Equal(t, "post_contract", moved.PhaseGroup)
	require.NotNil(t, moved.ActualStart)
	firstStart := *moved.ActualStart

	// Leaving and re-entering the phase must not move the original stamp.
	_, err = TransitionPhase(db, project.ID, "punch_list", PhaseMetadata{})
	require.NoError(t, err)

	again, err := TransitionPhase(db, project.ID, "active", PhaseMetadata{})
	require.NoError(t, err)
	require.NotNil(t, again.ActualStart)
	assert.True(t, again.ActualStart.Equal(firstStart), "re-entry overwrote the original stamp")
}

func TestTransitionPhaseExplicitMetadataWins(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Fence"})
	require.NoError(t, err)

	signed := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	moved, err := TransitionPhase(db, project.ID, "contract", PhaseMetadata{ContractSignedAt: &signed})
	require.NoError(t, err)
	require.NotNil(t, moved.ContractSignedAt)
	assert.True(t, moved.ContractSignedAt.Equal(signed))
}

func TestTransitionPhaseBackwardAllowed(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Shed", Phase: "active"})
	require.NoError(t, err)

	moved, err := TransitionPhase(db, project.ID, "estimating", PhaseMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "estimating", moved.Phase)
	assert.Equal(t, "pre_contract", moved.PhaseGroup)
}

func TestTransitionPhaseUnknownProject(t *testing.T) {
	db := testDB(t)

	_, err := TransitionPhase(db, "missing", "active", PhaseMetadata{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProjectKeepsPhase(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Old name", Phase: "contract"})
	require.NoError(t, err)

	updated, err := UpdateProject(db, project.ID, ProjectInput{Name: "New name", Phase: "intake"})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, "contract", updated.Phase)
}

func TestDeleteProjectTombstones(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Gone"})
	require.NoError(t, err)

	require.NoError(t, DeleteProject(db, project.ID))

	_, err = GetProject(db, project.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	projects, err := ListProjects(db)
	require.NoError(t, err)
	assert.Empty(t, projects)

	// The row survives under the tombstone.
	var count int64
	require.NoError(t, db.Unscoped().Table("projects").Where("id = ?", project.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	assert.ErrorIs(t, DeleteProject(db, project.ID), ErrNotFound)
}
