// change_orders.go
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

// ChangeOrderHandler handles change order routes
type ChangeOrderHandler struct {
	DB *gorm.DB
}

// changeOrderBody tolerates the SPA's loose field encodings: a bare loop id
// instead of an array, an amount as a string instead of a number.
type changeOrderBody struct {
	Type         string                 `json:"type"`
	Description  string                 `json:"description"`
	AmountCents  types.FlexUint64       `json:"amount_cents"`
	AffectsLoops types.FlexList[string] `json:"affects_loops"`
}

// ListChangeOrders handles GET /api/projects/:id/change-orders
// @Summary List change orders
// @Description List the change orders of a project, newest first
// @Tags ChangeOrders
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.ChangeOrder
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/change-orders [get]
func (h *ChangeOrderHandler) ListChangeOrders(c *fiber.Ctx) error {
	orders, err := services.ListChangeOrders(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "listChangeOrders")
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

// CreateChangeOrder handles POST /api/projects/:id/change-orders
// @Summary Create a change order
// @Description Create a pending change order against a project
// @Tags ChangeOrders
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body object true "Change order fields"
// @Success 201 {object} models.ChangeOrder
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/change-orders [post]
func (h *ChangeOrderHandler) CreateChangeOrder(c *fiber.Ctx) error {
	var body changeOrderBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "changeorder.validation.input")
	}
	if body.Description == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "changeorder.validation.input")
	}

	order, err := services.CreateChangeOrder(h.DB, c.Params("id"), services.ChangeOrderInput{
		Type:         body.Type,
		Description:  body.Description,
		AmountCents:  int64(body.AmountCents.Uint64()),
		AffectsLoops: body.AffectsLoops.Slice(),
	})
	if err != nil {
		return serviceErrorResponse(c, err, "createChangeOrder")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetChangeOrder handles GET /api/change-orders/:id
// @Summary Get a change order
// @Tags ChangeOrders
// @Produce json
// @Param id path string true "Change order ID"
// @Success 200 {object} models.ChangeOrder
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /change-orders/{id} [get]
func (h *ChangeOrderHandler) GetChangeOrder(c *fiber.Ctx) error {
	order, err := services.GetChangeOrder(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "getChangeOrder")
	}
	return c.Status(fiber.StatusOK).JSON(order)
}

// ApproveChangeOrder handles POST /api/change-orders/:id/approve
// @Summary Approve a change order
// @Description Move a pending change order to approved; approval opens the gate for its loops
// @Tags ChangeOrders
// @Produce json
// @Param id path string true "Change order ID"
// @Success 200 {object} models.ChangeOrder
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 412 {object} utils.ErrorResponseStruct
// @Router /change-orders/{id}/approve [post]
func (h *ChangeOrderHandler) ApproveChangeOrder(c *fiber.Ctx) error {
	order, err := services.ResolveChangeOrder(h.DB, c.Params("id"), true)
	if err != nil {
		return serviceErrorResponse(c, err, "approveChangeOrder")
	}
	return c.Status(fiber.StatusOK).JSON(order)
}

// RejectChangeOrder handles POST /api/change-orders/:id/reject
// @Summary Reject a change order
// @Description Move a pending change order to rejected
// @Tags ChangeOrders
// @Produce json
// @Param id path string true "Change order ID"
// @Success 200 {object} models.ChangeOrder
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 412 {object} utils.ErrorResponseStruct
// @Router /change-orders/{id}/reject [post]
func (h *ChangeOrderHandler) RejectChangeOrder(c *fiber.Ctx) error {
	order, err := services.ResolveChangeOrder(h.DB, c.Params("id"), false)
	if err != nil {
		return serviceErrorResponse(c, err, "rejectChangeOrder")
	}
	return c.Status(fiber.StatusOK).JSON(order)
}

// DeleteChangeOrder handles DELETE /api/change-orders/:id
// @Summary Delete a change order
// @Description Remove a change order; only pending orders may be deleted
// @Tags ChangeOrders
// @Produce json
// @Param id path string true "Change order ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 412 {object} utils.ErrorResponseStruct
// @Router /change-orders/{id} [delete]
func (h *ChangeOrderHandler) DeleteChangeOrder(c *fiber.Ctx) error {
	if err := services.DeleteChangeOrder(h.DB, c.Params("id")); err != nil {
		return serviceErrorResponse(c, err, "deleteChangeOrder")
	}
	return utils.MutationSuccessResponse(c, 1)
}
