package services

import (
	"errors"
	"fmt"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"gorm.io/gorm"
)

// TaskInput carries the writable task fields.
type TaskInput struct {
	Name       string `json:"name"`
	Status     string `json:"status,omitempty"`
	AssigneeID string `json:"assignee_id,omitempty"`
}

// CreateTask creates a task under a loop and recalculates the loop's
// derived status.
func CreateTask(db *gorm.DB, loopID string, input TaskInput) (*models.Task, error) {
	if _, err := GetLoop(db, loopID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.TaskPending
	}
	if !models.ValidTaskStatus(status) {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}

	task := &models.Task{
		LoopID:     loopID,
		Name:       input.Name,
		Status:     status,
		AssigneeID: input.AssigneeID,
	}
	if err := db.Create(task).Error; err != nil {
		return nil, err
	}

	if _, err := RecalculateLoopStatus(db, loopID); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask fetches a task.
func GetTask(db *gorm.DB, id string) (*models.Task, error) {
	var task models.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus sets a task's status and recalculates the owning
// loop's derived fields in the same call.
func UpdateTaskStatus(db *gorm.DB, id string, status string) (*models.Task, error) {
	if !models.ValidTaskStatus(status) {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}

	task, err := GetTask(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(task).Update("status", status).Error; err != nil {
		return nil, err
	}

	if _, err := RecalculateLoopStatus(db, task.LoopID); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task and recalculates the owning loop's derived
// fields.
func DeleteTask(db *gorm.DB, id string) error {
	task, err := GetTask(db, id)
	if err != nil {
		return err
	}

	if err := db.Delete(task).Error; err != nil {
		return err
	}

	_, err = RecalculateLoopStatus(db, task.LoopID)
	return err
}
