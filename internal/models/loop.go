package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task status values.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskComplete   = "complete"
	TaskBlocked    = "blocked"
)

// Loop status values. Loop status and health are derived from child task
// statuses by the rollup service and are never hand-set.
const (
	LoopPending    = "pending"
	LoopInProgress = "in_progress"
	LoopComplete   = "complete"
	LoopBlocked    = "blocked"
)

// Loop health colors.
const (
	HealthGray   = "gray"
	HealthRed    = "red"
	HealthYellow = "yellow"
	HealthGreen  = "green"
)

// Loop is a trade-scoped grouping of tasks within a project, e.g.
// "Electrical".
type Loop struct {
	ID        string `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectID string `gorm:"type:char(36);not null;index" json:"project_id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Trade     string `gorm:"size:128" json:"trade"`

	Status      string `gorm:"size:32;not null;default:pending" json:"status"`
	HealthScore int    `gorm:"not null;default:0" json:"health_score"` // 0-100
	HealthColor string `gorm:"size:16;not null;default:gray" json:"health_color"`

	Tasks []Task `gorm:"foreignKey:LoopID" json:"tasks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Task is a unit of work inside a loop.
type Task struct {
	ID     string `gorm:"type:char(36);primaryKey" json:"id"`
	LoopID string `gorm:"type:char(36);not null;index" json:"loop_id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Status string `gorm:"size:32;not null;default:pending" json:"status"`

	AssigneeID string `gorm:"type:char(36);index" json:"assignee_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when none was supplied.
func (l *Loop) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a UUID when none was supplied.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ValidTaskStatus reports whether s is a recognized task status.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskComplete, TaskBlocked:
		return true
	}
	return false
}

// TableName overrides the table name for Loop
func (Loop) TableName() string {
	return "loops"
}

// TableName overrides the table name for Task
func (Task) TableName() string {
	return "tasks"
}
