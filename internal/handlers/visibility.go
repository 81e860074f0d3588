// visibility.go
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

	"github.com/gofiber/fiber/v2"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/navigation"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/roles"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/utils"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/visibility"
)

// VisibilityHandler handles the role visibility matrix routes
type VisibilityHandler struct {
	Resolver *visibility.Resolver
}

// GetMatrix handles GET /api/visibility
// @Summary Get the visibility matrix
// @Description Return the effective role-to-section visibility matrix
// @Tags Visibility
// @Produce json
// @Success 200 {object} visibility.Settings
// @Router /visibility [get]
func (h *VisibilityHandler) GetMatrix(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Resolver.Matrix(c.UserContext()))
}

// UpdateMatrix handles PATCH /api/visibility
// @Summary Update a visibility entry
// @Description Set one role/section visibility flag; the admin settings entry cannot be turned off
// @Tags Visibility
// @Accept json
// @Produce json
// @Param body body object true "Role, section and visibility flag"
// @Success 200 {object} visibility.Settings
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /visibility [patch]
func (h *VisibilityHandler) UpdateMatrix(c *fiber.Ctx) error {
	var body struct {
		Role    string `json:"role"`
		Section string `json:"section"`
		Visible *bool  `json:"visible"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "visibility.validation.input")
	}
	if body.Visible == nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "visibility.validation.input")
	}

	err := h.Resolver.Update(c.UserContext(), roles.ID(body.Role), navigation.SectionID(body.Section), *body.Visible)
	if err != nil {
		if errors.Is(err, visibility.ErrPolicyViolation) {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "visibility.policy")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "visibility.validation.input")
	}
	return c.Status(fiber.StatusOK).JSON(h.Resolver.Matrix(c.UserContext()))
}

// ResetMatrix handles POST /api/visibility/reset
// @Summary Reset the visibility matrix
// @Description Discard all overrides and restore the authority-level defaults
// @Tags Visibility
// @Produce json
// @Success 200 {object} visibility.Settings
// @Router /visibility/reset [post]
func (h *VisibilityHandler) ResetMatrix(c *fiber.Ctx) error {
	h.Resolver.ResetToDefaults(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(h.Resolver.Matrix(c.UserContext()))
}
