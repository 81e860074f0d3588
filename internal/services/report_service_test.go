package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProjectWorkbook(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Export me", ClientName: "Client"})
	require.NoError(t, err)

	loop, err := CreateLoop(db, project.ID, LoopInput{Name: "Windows", Trade: "glazing"})
	require.NoError(t, err)
	_, err = CreateTask(db, loop.ID, TaskInput{Name: "Measure"})
	require.NoError(t, err)

	_, err = CreateChangeOrder(db, project.ID, ChangeOrderInput{
		Description: "Triple glazing",
		AmountCents: 90000,
	})
	require.NoError(t, err)

	f, err := BuildProjectWorkbook(db, project.ID)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Overview", "Loops", "Tasks", "Change Orders"}, f.GetSheetList())

	name, err := f.GetCellValue("Overview", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Export me", name)

	loopName, err := f.GetCellValue("Loops", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Windows", loopName)

	taskName, err := f.GetCellValue("Tasks", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Measure", taskName)
}

func TestBuildProjectWorkbookMissingProject(t *testing.T) {
	db := testDB(t)

	_, err := BuildProjectWorkbook(db, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
