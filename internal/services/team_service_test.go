package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMemberRoleValidation(t *testing.T) {
	db := testDB(t)

	_, err := CreateTeamMember(db, TeamMemberInput{Name: "Pat", Role: "wizard"})
	assert.Error(t, err)

	member, err := CreateTeamMember(db, TeamMemberInput{Name: "Pat", Role: "foreman"})
	require.NoError(t, err)
	assert.Equal(t, "foreman", member.Role)
}

func TestTimeEntryRequiresKnownMemberAndProject(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Tracked"})
	require.NoError(t, err)

	member, err := CreateTeamMember(db, TeamMemberInput{Name: "Sam", Role: "labourer"})
	require.NoError(t, err)

	_, err = CreateTimeEntry(db, project.ID, TimeEntryInput{
		TeamMemberID: "missing",
		Minutes:      480,
		WorkDay:      "2026-08-20",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = CreateTimeEntry(db, project.ID, TimeEntryInput{
		TeamMemberID: member.ID,
		Minutes:      480,
		WorkDay:      "not-a-date",
	})
	assert.Error(t, err)

	entry, err := CreateTimeEntry(db, project.ID, TimeEntryInput{
		TeamMemberID: member.ID,
		Minutes:      480,
		WorkDay:      "2026-08-20",
		Notes:        "Demo day",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 480, entry.Minutes)

	entries, err := ListTimeEntries(db, project.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExpenseLifecycle(t *testing.T) {
	db := testDB(t)

	project, err := CreateProject(db, ProjectInput{Name: "Costed"})
	require.NoError(t, err)

	expense, err := CreateExpense(db, project.ID, ExpenseInput{
		AmountCents: 15500,
		Category:    "materials",
		Description: "Lumber",
		SpentOn:     "2026-08-18",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 15500, expense.AmountCents)

	expenses, err := ListExpenses(db, project.ID)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestDeleteTeamMemberTombstones(t *testing.T) {
	db := testDB(t)

	member, err := CreateTeamMember(db, TeamMemberInput{Name: "Lee", Role: "administrator"})
	require.NoError(t, err)

	require.NoError(t, DeleteTeamMember(db, member.ID))

	_, err = GetTeamMember(db, member.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, DeleteTeamMember(db, member.ID), ErrNotFound)
}
