package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/roles"
	"gorm.io/gorm"
)

// TeamMemberInput carries the writable team member fields.
type TeamMemberInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// CreateTeamMember creates an employee record. The role must be one of the
// registry roles.
func CreateTeamMember(db *gorm.DB, input TeamMemberInput) (*models.TeamMember, error) {
	if !roles.Valid(roles.ID(input.Role)) {
		return nil, fmt.Errorf("unknown role: %s", input.Role)
	}

	member := &models.TeamMember{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Role:  input.Role,
	}
	if err := db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// GetTeamMember fetches a team member.
func GetTeamMember(db *gorm.DB, id string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := db.Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// ListTeamMembers returns all active team members.
func ListTeamMembers(db *gorm.DB) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := db.Order("name").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateTeamMember updates a team member's fields.
func UpdateTeamMember(db *gorm.DB, id string, input TeamMemberInput) (*models.TeamMember, error) {
	member, err := GetTeamMember(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Email != "" {
		updates["email"] = input.Email
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Role != "" {
		if !roles.Valid(roles.ID(input.Role)) {
			return nil, fmt.Errorf("unknown role: %s", input.Role)
		}
		updates["role"] = input.Role
	}
	if len(updates) > 0 {
		if err := db.Model(member).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return member, nil
}

// DeleteTeamMember tombstones a team member record.
func DeleteTeamMember(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.TeamMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TimeEntryInput carries the writable time entry fields. Minutes arrive as
// a number or string depending on the client form control.
type TimeEntryInput struct {
	TeamMemberID string `json:"team_member_id"`
	Minutes      uint64 `json:"minutes"`
	WorkDay      string `json:"work_day"` // YYYY-MM-DD
	Notes        string `json:"notes"`
}

// CreateTimeEntry records time against a project.
func CreateTimeEntry(db *gorm.DB, projectID string, input TimeEntryInput) (*models.TimeEntry, error) {
	if _, err := GetProject(db, projectID); err != nil {
		return nil, err
	}
	if _, err := GetTeamMember(db, input.TeamMemberID); err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", input.WorkDay)
	if err != nil {
		return nil, fmt.Errorf("invalid work_day %q: %w", input.WorkDay, err)
	}

	entry := &models.TimeEntry{
		ProjectID:    projectID,
		TeamMemberID: input.TeamMemberID,
		Minutes:      input.Minutes,
		WorkDay:      day,
		Notes:        input.Notes,
	}
	if err := db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListTimeEntries returns a project's time entries, newest work day first.
func ListTimeEntries(db *gorm.DB, projectID string) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := db.Where("project_id = ?", projectID).Order("work_day DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ExpenseInput carries the writable expense fields.
type ExpenseInput struct {
	AmountCents int64  `json:"amount_cents"`
	Category    string `json:"category"`
	Description string `json:"description"`
	SpentOn     string `json:"spent_on"` // YYYY-MM-DD
}

// CreateExpense records a cost against a project.
func CreateExpense(db *gorm.DB, projectID string, input ExpenseInput) (*models.Expense, error) {
	if _, err := GetProject(db, projectID); err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", input.SpentOn)
	if err != nil {
		return nil, fmt.Errorf("invalid spent_on %q: %w", input.SpentOn, err)
	}

	expense := &models.Expense{
		ProjectID:   projectID,
		AmountCents: input.AmountCents,
		Category:    input.Category,
		Description: input.Description,
		SpentOn:     day,
	}
	if err := db.Create(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns a project's expenses, newest first.
func ListExpenses(db *gorm.DB, projectID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := db.Where("project_id = ?", projectID).Order("spent_on DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
