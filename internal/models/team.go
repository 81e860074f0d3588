package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is an employee or partner record. Role must be one of the
// registry roles; the services layer validates it.
type TeamMember struct {
	ID    string `gorm:"type:char(36);primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;uniqueIndex" json:"email"`
	Phone string `gorm:"size:64" json:"phone"`
	Role  string `gorm:"size:32;not null;index" json:"role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TimeEntry records hours worked against a project by a team member.
type TimeEntry struct {
	ID           string `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectID    string `gorm:"type:char(36);not null;index" json:"project_id"`
	TeamMemberID string `gorm:"type:char(36);not null;index" json:"team_member_id"`

	Minutes uint64    `gorm:"not null" json:"minutes"`
	WorkDay time.Time `gorm:"not null;index" json:"work_day"`
	Notes   string    `gorm:"size:1024" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expense records a cost against a project.
type Expense struct {
	ID        string `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectID string `gorm:"type:char(36);not null;index" json:"project_id"`

	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	Category    string    `gorm:"size:128" json:"category"`
	Description string    `gorm:"size:1024" json:"description"`
	SpentOn     time.Time `gorm:"not null;index" json:"spent_on"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when none was supplied.
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a UUID when none was supplied.
func (e *TimeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a UUID when none was supplied.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// TableName overrides the table name for TimeEntry
func (TimeEntry) TableName() string {
	return "time_entries"
}

// TableName overrides the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
