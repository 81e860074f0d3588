package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/services"
	"gorm.io/gorm"
)

// ReportHandler handles spreadsheet export routes
type ReportHandler struct {
	DB *gorm.DB
}

// ProjectWorkbook handles GET /api/projects/:id/report
// @Summary Export a project workbook
// @Description Build an xlsx workbook with the project's loops, tasks, change orders and cost totals
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Project ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id}/report [get]
func (h *ReportHandler) ProjectWorkbook(c *fiber.Ctx) error {
	f, err := services.BuildProjectWorkbook(h.DB, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "projectWorkbook")
	}
	defer f.Close()

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="project-%s.xlsx"`, c.Params("id")))

	return f.Write(c.Response().BodyWriter())
}
