package services

import (
	"errors"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"gorm.io/gorm"
)

// LoopInput carries the writable loop fields. Status and health are
// derived by the rollup and cannot be set directly.
type LoopInput struct {
	Name  string `json:"name"`
	Trade string `json:"trade"`
}

// CreateLoop creates a loop under a project.
func CreateLoop(db *gorm.DB, projectID string, input LoopInput) (*models.Loop, error) {
	if _, err := GetProject(db, projectID); err != nil {
		return nil, err
	}

	loop := &models.Loop{
		ProjectID:   projectID,
		Name:        input.Name,
		Trade:       input.Trade,
		Status:      models.LoopPending,
		HealthColor: models.HealthGray,
	}
	if err := db.Create(loop).Error; err != nil {
		return nil, err
	}
	return loop, nil
}

// GetLoop fetches a loop with its tasks.
func GetLoop(db *gorm.DB, id string) (*models.Loop, error) {
	var loop models.Loop
	err := db.Preload("Tasks").Where("id = ?", id).First(&loop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &loop, nil
}

// ListLoops returns a project's loops.
func ListLoops(db *gorm.DB, projectID string) ([]models.Loop, error) {
	var loops []models.Loop
	err := db.Where("project_id = ?", projectID).Order("created_at").Find(&loops).Error
	if err != nil {
		return nil, err
	}
	return loops, nil
}

// UpdateLoop updates a loop's descriptive fields. The change-order gate is
// consulted by the handler before this runs.
func UpdateLoop(db *gorm.DB, id string, input LoopInput) (*models.Loop, error) {
	loop, err := GetLoop(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Trade != "" {
		updates["trade"] = input.Trade
	}
	if len(updates) > 0 {
		if err := db.Model(loop).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return loop, nil
}
