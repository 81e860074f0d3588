// projects.go
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
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/navigation"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/notify"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/phases"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/services"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/utils"
	"gorm.io/gorm"
)

// ProjectHandler handles project routes
type ProjectHandler struct {
	DB      *gorm.DB
	Webhook *notify.Webhook
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description List all projects, excluding tombstoned ones
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := services.ListProjects(h.DB)
	if err != nil {
		return serviceErrorResponse(c, err, "listProjects")
	}
	return c.Status(fiber.StatusOK).JSON(projects)
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Description Create a project; it starts in the intake phase unless a phase is supplied
// @Tags Projects
// @Accept json
// @Produce json
// @Param body body services.ProjectInput true "Project fields"
// @Success 201 {object} models.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "project.validation.input")
	}
	if input.Name == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "project.validation.input")
	}

	project, err := services.CreateProject(h.DB, input)
	if err != nil {
		return serviceErrorResponse(c, err, "createProject")
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetProject handles GET /api/projects/:id
// @Summary Get a project
// @Description Get a project with its loops and the phase-derived navigation target
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	project, err := services.GetProject(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getProject")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"project":    project,
		"nav_target": navigation.TargetForPhase(phases.Phase(project.Phase)),
	})
}

// UpdateProject handles PATCH /api/projects/:id
// @Summary Update a project
// @Description Update descriptive fields; phase changes go through the phase endpoint
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body services.ProjectInput true "Fields to update"
// @Success 200 {object} models.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "project.validation.input")
	}

	project, err := services.UpdateProject(h.DB, c.Params("id"), input)
	if err != nil {
		return serviceErrorResponse(c, err, "updateProject")
	}
	return c.Status(fiber.StatusOK).JSON(project)
}

// DeleteProject handles DELETE /api/projects/:id
// @Summary Delete a project
// @Description Tombstone a project; the record is never hard-removed
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	if err := services.DeleteProject(h.DB, c.Params("id")); err != nil {
		return serviceErrorResponse(c, err, "deleteProject")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// TransitionPhase handles POST /api/projects/:id/phase
// @Summary Transition a project's phase
// @Description Set the phase and derived group together, stamping the entry timestamp once
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body object true "Target phase and optional metadata"
// @Success 200 {object} models.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/phase [post]
func (h *ProjectHandler) TransitionPhase(c *fiber.Ctx) error {
	var body struct {
		Phase    string                 `json:"phase"`
		Metadata services.PhaseMetadata `json:"metadata"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "project.validation.input")
	}
	if body.Phase == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "project.validation.input")
	}

	project, err := services.TransitionPhase(h.DB, c.Params("id"), body.Phase, body.Metadata)
	if err != nil {
		return serviceErrorResponse(c, err, "transitionPhase")
	}

	h.Webhook.PhaseChanged(project.ID, project.Phase, project.PhaseGroup)

	return c.Status(fiber.StatusOK).JSON(project)
}
