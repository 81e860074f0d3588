// rollup.go
//
// Hooomz OS — back-office data service for the Hooomz construction management application
// Copyright (c) 2026 Hooomz
//
// This file is part of hooomz-os.
// hooomz-os is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// hooomz-os is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with hooomz-os.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"errors"
	"math"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"gorm.io/gorm"
)

// RecalculateLoopStatus recomputes a loop's derived status, health score,
// and health color from its child task statuses and writes them back.
// It runs synchronously after every task mutation, never on a schedule.
func RecalculateLoopStatus(db *gorm.DB, loopID string) (*models.Loop, error) {
	var loop models.Loop
	if err := db.Where("id = ?", loopID).First(&loop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var tasks []models.Task
	if err := db.Where("loop_id = ?", loopID).Find(&tasks).Error; err != nil {
		return nil, err
	}

	statuses := make([]string, len(tasks))
	for i, t := range tasks {
		statuses[i] = t.Status
	}

	status, score, color := computeRollup(statuses)

	loop.Status = status
	loop.HealthScore = score
	loop.HealthColor = color

	err := db.Model(&loop).
		Select("status", "health_score", "health_color").
		Updates(map[string]interface{}{
			"status":       status,
			"health_score": score,
			"health_color": color,
		}).Error
	if err != nil {
		return nil, err
	}

	return &loop, nil
}

// computeRollup derives loop status and health from task statuses.
func computeRollup(statuses []string) (status string, score int, color string) {
	if len(statuses) == 0 {
		return models.LoopPending, 0, models.HealthGray
	}

	var completed, inProgress, blocked int
	for _, s := range statuses {
		switch s {
		case models.TaskComplete:
			completed++
		case models.TaskInProgress:
			inProgress++
		case models.TaskBlocked:
			blocked++
		}
	}

	switch {
	case completed == len(statuses):
		status = models.LoopComplete
	case blocked > 0:
		status = models.LoopBlocked
	case inProgress > 0 || completed > 0:
		status = models.LoopInProgress
	default:
		status = models.LoopPending
	}

	score = int(math.Round(100 * float64(completed) / float64(len(statuses))))

	// A blocked task overrides the score-based color.
	switch {
	case status == models.LoopComplete:
		color = models.HealthGray
	case blocked > 0:
		color = models.HealthRed
	case score >= 70:
		color = models.HealthGreen
	case score >= 40 || inProgress > 0 || completed > 0:
		color = models.HealthYellow
	default:
		color = models.HealthGray
	}

	return status, score, color
}
