// gate.go
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
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/phases"
	"gorm.io/gorm"
)

// Gate denial and grant reasons, surfaced verbatim to the client.
const (
	ReasonLockedPhase   = "Project is in locked phase. Create a change order to modify."
	ReasonApprovedOrder = "Approved change order exists"
)

// ModifyDecision is the change-order gate's answer for one loop.
type ModifyDecision struct {
	CanModify bool   `json:"canModify"`
	Reason    string `json:"reason,omitempty"`
}

// CanModifyLoop decides whether a project's loop may be edited. Projects
// in a non-locked phase are always editable. In a locked phase, an
// approved change order covering the loop unlocks it. The check is
// advisory: callers consult it before mutating, the gate itself blocks
// nothing.
func CanModifyLoop(db *gorm.DB, project *models.Project, loopID string) (ModifyDecision, error) {
	if !phases.Locked(phases.Phase(project.Phase)) {
		return ModifyDecision{CanModify: true}, nil
	}

	// Affected-loop containment is evaluated here rather than in SQL: the
	// JSON operators for array containment differ across the four
	// supported drivers, and a project's change-order count is small.
	var orders []models.ChangeOrder
	err := db.Where("project_id = ? AND status = ?", project.ID, models.ChangeOrderApproved).
		Find(&orders).Error
	if err != nil {
		return ModifyDecision{}, err
	}

	for _, order := range orders {
		for _, id := range order.LoopIDs() {
			if id == loopID {
				return ModifyDecision{CanModify: true, Reason: ReasonApprovedOrder}, nil
			}
		}
	}

	return ModifyDecision{CanModify: false, Reason: ReasonLockedPhase}, nil
}
