// team.go
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
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/types"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/utils"
	"gorm.io/gorm"
)

// TeamHandler handles team member, time entry and expense routes
type TeamHandler struct {
	DB *gorm.DB
}

// ListTeamMembers handles GET /api/team
// @Summary List team members
// @Tags Team
// @Produce json
// @Success 200 {array} models.TeamMember
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /team [get]
func (h *TeamHandler) ListTeamMembers(c *fiber.Ctx) error {
	members, err := services.ListTeamMembers(h.DB)
	if err != nil {
		return serviceErrorResponse(c, err, "listTeamMembers")
	}
	return c.Status(fiber.StatusOK).JSON(members)
}

// CreateTeamMember handles POST /api/team
// @Summary Create a team member
// @Description Create an employee record; the role must be one of the registry roles
// @Tags Team
// @Accept json
// @Produce json
// @Param body body services.TeamMemberInput true "Team member fields"
// @Success 201 {object} models.TeamMember
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /team [post]
func (h *TeamHandler) CreateTeamMember(c *fiber.Ctx) error {
	var input services.TeamMemberInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "team.validation.input")
	}
	if input.Name == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "team.validation.input")
	}

	member, err := services.CreateTeamMember(h.DB, input)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "team.validation.role")
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// GetTeamMember handles GET /api/team/:id
// @Summary Get a team member
// @Tags Team
// @Produce json
// @Param id path string true "Team member ID"
// @Success 200 {object} models.TeamMember
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /team/{id} [get]
func (h *TeamHandler) GetTeamMember(c *fiber.Ctx) error {
	member, err := services.GetTeamMember(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getTeamMember")
	}
	return c.Status(fiber.StatusOK).JSON(member)
}

// UpdateTeamMember handles PATCH /api/team/:id
// @Summary Update a team member
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Team member ID"
// @Param body body services.TeamMemberInput true "Fields to update"
// @Success 200 {object} models.TeamMember
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /team/{id} [patch]
func (h *TeamHandler) UpdateTeamMember(c *fiber.Ctx) error {
	var input services.TeamMemberInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "team.validation.input")
	}

	member, err := services.UpdateTeamMember(h.DB, c.Params("id"), input)
	if err != nil {
		return serviceErrorResponse(c, err, "updateTeamMember")
	}
	return c.Status(fiber.StatusOK).JSON(member)
}

// DeleteTeamMember handles DELETE /api/team/:id
// @Summary Delete a team member
// @Description Tombstone a team member; their time entries remain
// @Tags Team
// @Produce json
// @Param id path string true "Team member ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /team/{id} [delete]
func (h *TeamHandler) DeleteTeamMember(c *fiber.Ctx) error {
	if err := services.DeleteTeamMember(h.DB, c.Params("id")); err != nil {
		return serviceErrorResponse(c, err, "deleteTeamMember")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// timeEntryBody tolerates minutes arriving as a string from form controls.
type timeEntryBody struct {
	TeamMemberID string           `json:"team_member_id"`
	Minutes      types.FlexUint64 `json:"minutes"`
	WorkDay      string           `json:"work_day"`
	Notes        string           `json:"notes"`
}

// CreateTimeEntry handles POST /api/projects/:id/time
// @Summary Record time
// @Description Record minutes worked by a team member against a project
// @Tags Time
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body object true "Time entry fields"
// @Success 201 {object} models.TimeEntry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/time [post]
func (h *TeamHandler) CreateTimeEntry(c *fiber.Ctx) error {
	var body timeEntryBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "time.validation.input")
	}

	entry, err := services.CreateTimeEntry(h.DB, c.Params("id"), services.TimeEntryInput{
		TeamMemberID: body.TeamMemberID,
		Minutes:      body.Minutes.Uint64(),
		WorkDay:      body.WorkDay,
		Notes:        body.Notes,
	})
	if err != nil {
		return serviceErrorResponse(c, err, "createTimeEntry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListTimeEntries handles GET /api/projects/:id/time
// @Summary List time entries
// @Tags Time
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.TimeEntry
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/time [get]
func (h *TeamHandler) ListTimeEntries(c *fiber.Ctx) error {
	entries, err := services.ListTimeEntries(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "listTimeEntries")
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// CreateExpense handles POST /api/projects/:id/expenses
// @Summary Record an expense
// @Tags Costs
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body services.ExpenseInput true "Expense fields"
// @Success 201 {object} models.Expense
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/expenses [post]
func (h *TeamHandler) CreateExpense(c *fiber.Ctx) error {
	var input services.ExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "expense.validation.input")
	}

	expense, err := services.CreateExpense(h.DB, c.Params("id"), input)
	if err != nil {
		return serviceErrorResponse(c, err, "createExpense")
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// ListExpenses handles GET /api/projects/:id/expenses
// @Summary List expenses
// @Tags Costs
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.Expense
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/expenses [get]
func (h *TeamHandler) ListExpenses(c *fiber.Ctx) error {
	expenses, err := services.ListExpenses(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "listExpenses")
	}
	return c.Status(fiber.StatusOK).JSON(expenses)
}
