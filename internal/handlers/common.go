// common.go
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

package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/services"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/utils"
	"gorm.io/gorm"
)

// serviceErrorResponse maps service-layer errors to the response envelope:
// absent records become 404s, lifecycle violations 412s, the rest 500s.
func serviceErrorResponse(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, services.ErrNotPending):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusPreconditionFailed, errorType)
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
	}
}

// gateCheck consults the change-order gate for the loop's project. A nil
// return with ok=false means the denial response has already been written.
func gateCheck(c *fiber.Ctx, db *gorm.DB, loopID string) (ok bool, err error) {
	var loop models.Loop
	if err := db.Where("id = ?", loopID).First(&loop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, utils.NotFoundResponse(c, fmt.Sprintf("Loop '%s' not found", loopID))
		}
		return false, utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "changeorder.gate")
	}

	project, err := services.GetProject(db, loop.ProjectID)
	if err != nil {
		return false, serviceErrorResponse(c, err, "changeorder.gate")
	}

	decision, err := services.CanModifyLoop(db, project, loopID)
	if err != nil {
		return false, utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "changeorder.gate")
	}
	if !decision.CanModify {
		return false, utils.LockedResponse(c, decision.Reason)
	}

	return true, nil
}
