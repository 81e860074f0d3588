// loops.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/services"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/utils"
	"gorm.io/gorm"
)

// LoopHandler handles loop routes
type LoopHandler struct {
	DB *gorm.DB
}

// ListLoops handles GET /api/projects/:id/loops
// @Summary List loops
// @Description List the loops of a project
// @Tags Loops
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.Loop
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/loops [get]
func (h *LoopHandler) ListLoops(c *fiber.Ctx) error {
	loops, err := services.ListLoops(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "listLoops")
	}
	return c.Status(fiber.StatusOK).JSON(loops)
}

// CreateLoop handles POST /api/projects/:id/loops
// @Summary Create a loop
// @Description Create a loop under a project
// @Tags Loops
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body services.LoopInput true "Loop fields"
// @Success 201 {object} models.Loop
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/loops [post]
func (h *LoopHandler) CreateLoop(c *fiber.Ctx) error {
	var input services.LoopInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "loop.validation.input")
	}
	if input.Name == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "loop.validation.input")
	}

	loop, err := services.CreateLoop(h.DB, c.Params("id"), input)
	if err != nil {
		return serviceErrorResponse(c, err, "createLoop")
	}
	return c.Status(fiber.StatusCreated).JSON(loop)
}

// GetLoop handles GET /api/loops/:id
// @Summary Get a loop
// @Description Get a loop with its tasks
// @Tags Loops
// @Produce json
// @Param id path string true "Loop ID"
// @Success 200 {object} models.Loop
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /loops/{id} [get]
func (h *LoopHandler) GetLoop(c *fiber.Ctx) error {
	loop, err := services.GetLoop(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getLoop")
	}
	return c.Status(fiber.StatusOK).JSON(loop)
}

// UpdateLoop handles PATCH /api/loops/:id
// @Summary Update a loop
// @Description Update a loop's descriptive fields, subject to the change-order gate
// @Tags Loops
// @Accept json
// @Produce json
// @Param id path string true "Loop ID"
// @Param body body services.LoopInput true "Fields to update"
// @Success 200 {object} models.Loop
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 423 {object} utils.ErrorResponseStruct
// @Router /loops/{id} [patch]
func (h *LoopHandler) UpdateLoop(c *fiber.Ctx) error {
	var input services.LoopInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "loop.validation.input")
	}

	if ok, err := gateCheck(c, h.DB, c.Params("id")); !ok {
		return err
	}

	loop, err := services.UpdateLoop(h.DB, c.Params("id"), input)
	if err != nil {
		return serviceErrorResponse(c, err, "updateLoop")
	}
	return c.Status(fiber.StatusOK).JSON(loop)
}

// CanModify handles GET /api/loops/:id/can-modify
// @Summary Check the change-order gate
// @Description Report whether a loop may be modified and why, without modifying anything
// @Tags Loops
// @Produce json
// @Param id path string true "Loop ID"
// @Success 200 {object} services.ModifyDecision
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /loops/{id}/can-modify [get]
func (h *LoopHandler) CanModify(c *fiber.Ctx) error {
	loop, err := services.GetLoop(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "canModifyLoop")
	}

	project, err := services.GetProject(h.DB, loop.ProjectID)
	if err != nil {
		return serviceErrorResponse(c, err, "canModifyLoop")
	}

	decision, err := services.CanModifyLoop(h.DB, project, loop.ID)
	if err != nil {
		return serviceErrorResponse(c, err, "canModifyLoop")
	}
	return c.Status(fiber.StatusOK).JSON(decision)
}
