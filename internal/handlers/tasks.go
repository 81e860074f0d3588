package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/services"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/utils"
	"gorm.io/gorm"
)

// TaskHandler handles task routes
type TaskHandler struct {
	DB *gorm.DB
}

// CreateTask handles POST /api/loops/:id/tasks
// @Summary Create a task
// @Description Create a task under a loop, subject to the change-order gate; recalculates the loop rollup
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Loop ID"
// @Param body body services.TaskInput true "Task fields"
// @Success 201 {object} models.Task
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 423 {object} utils.ErrorResponseStruct
// @Router /loops/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var input services.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "task.validation.input")
	}
	if input.Name == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "task.validation.input")
	}

	if ok, err := gateCheck(c, h.DB, c.Params("id")); !ok {
		return err
	}

	task, err := services.CreateTask(h.DB, c.Params("id"), input)
	if err != nil {
		return serviceErrorResponse(c, err, "createTask")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status
// @Summary Update a task's status
// @Description Set the task status and recalculate the owning loop's rollup
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param body body object true "New status"
// @Success 200 {object} models.Task
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 423 {object} utils.ErrorResponseStruct
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "task.validation.input")
	}
	if !models.ValidTaskStatus(body.Status) {
		return utils.ErrorResponse(c, "Invalid task status", fiber.StatusBadRequest, "task.validation.status")
	}

	existing, err := services.GetTask(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "updateTaskStatus")
	}

	if ok, err := gateCheck(c, h.DB, existing.LoopID); !ok {
		return err
	}

	task, err := services.UpdateTaskStatus(h.DB, c.Params("id"), body.Status)
	if err != nil {
		return serviceErrorResponse(c, err, "updateTaskStatus")
	}
	return c.Status(fiber.StatusOK).JSON(task)
}

// DeleteTask handles DELETE /api/tasks/:id
// @Summary Delete a task
// @Description Remove a task, subject to the change-order gate; recalculates the loop rollup
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 423 {object} utils.ErrorResponseStruct
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	existing, err := services.GetTask(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "deleteTask")
	}

	if ok, err := gateCheck(c, h.DB, existing.LoopID); !ok {
		return err
	}

	if err := services.DeleteTask(h.DB, c.Params("id")); err != nil {
		return serviceErrorResponse(c, err, "deleteTask")
	}
	return utils.MutationSuccessResponse(c, 1)
}
