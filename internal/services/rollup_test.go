package services

import (
	"testing"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRollup(t *testing.T) {
	c := models.TaskComplete
	ip := models.TaskInProgress
	p := models.TaskPending
	b := models.TaskBlocked

	cases := []struct {
		name       string
		statuses   []string
		wantStatus string
		wantScore  int
		wantColor  string
	}{
		{"no tasks", nil, models.LoopPending, 0, models.HealthGray},
		{"all complete", []string{c, c, c}, models.LoopComplete, 100, models.HealthGray},
		{"one blocked wins", []string{c, ip, p, b}, models.LoopBlocked, 25, models.HealthRed},
		{"majority complete", []string{c, c, c, ip, p}, models.LoopInProgress, 60, models.HealthYellow},
		{"high score green", []string{c, c, c, p}, models.LoopInProgress, 75, models.HealthGreen},
		{"untouched stays gray", []string{p, p, p}, models.LoopPending, 0, models.HealthGray},
		{"progress without completions", []string{ip, p, p}, models.LoopInProgress, 0, models.HealthYellow},
		{"single blocked", []string{b}, models.LoopBlocked, 0, models.HealthRed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, score, color := computeRollup(tc.statuses)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantScore, score)
			assert.Equal(t, tc.wantColor, color)
		})
	}
}

func TestRecalculateLoopStatus(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Kitchen reno"})
	require.NoError(t, err)

	loop, err := CreateLoop(db, project.ID, LoopInput{Name: "Framing", Trade: "carpentry"})
	require.NoError(t, err)

	// A new loop with no tasks is pending and gray.
	assert.Equal(t, models.LoopPending, loop.Status)
	assert.Equal(t, models.HealthGray, loop.HealthColor)

	t1, err := CreateTask(db, loop.ID, TaskInput{Name: "Studs"})
	require.NoError(t, err)
	t2, err := CreateTask(db, loop.ID, TaskInput{Name: "Headers"})
	require.NoError(t, err)

	_, err = UpdateTaskStatus(db, t1.ID, models.TaskComplete)
	require.NoError(t, err)

	got, err := GetLoop(db, loop.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoopInProgress, got.Status)
	assert.Equal(t, 50, got.HealthScore)
	assert.Equal(t, models.HealthYellow, got.HealthColor)

	_, err = UpdateTaskStatus(db, t2.ID, models.TaskComplete)
	require.NoError(t, err)

	got, err = GetLoop(db, loop.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoopComplete, got.Status)
	assert.Equal(t, 100, got.HealthScore)
	assert.Equal(t, models.HealthGray, got.HealthColor)

	// Deleting the last incomplete task recomputes from what remains.
	require.NoError(t, DeleteTask(db, t2.ID))

	got, err = GetLoop(db, loop.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoopComplete, got.Status)
	assert.Equal(t, 100, got.HealthScore)
}

func TestRecalculateLoopStatusMissingLoop(t *testing.T) {
	db := testDB(t)

	_, err := RecalculateLoopStatus(db, "no-such-loop")
	assert.ErrorIs(t, err, ErrNotFound)
}
