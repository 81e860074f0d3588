package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/middleware"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/navigation"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/utils"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/visibility"
)

// NavigationHandler handles navigation routes for the acting role
type NavigationHandler struct {
	Resolver *visibility.Resolver
}

// Sections handles GET /api/navigation/sections
// @Summary List visible sections
// @Description List the navigation sections visible to the acting role, in display order
// @Tags Navigation
// @Produce json
// @Success 200 {array} navigation.Section
// @Router /navigation/sections [get]
func (h *NavigationHandler) Sections(c *fiber.Ctx) error {
	role := middleware.ActingRole(c)
	return c.Status(fiber.StatusOK).JSON(h.Resolver.VisibleSections(c.UserContext(), role))
}

// CheckRoute handles GET /api/navigation/route-access
// @Summary Check route access
// @Description Report whether the acting role may open a client route; unmodeled routes are allowed
// @Tags Navigation
// @Produce json
// @Param route query string true "Client route path"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /navigation/route-access [get]
func (h *NavigationHandler) CheckRoute(c *fiber.Ctx) error {
	route := c.Query("route")
	if route == "" {
		return utils.ErrorResponse(c, "Missing route parameter", fiber.StatusBadRequest, "navigation.validation.input")
	}

	role := middleware.ActingRole(c)
	match := navigation.MatchRoute(route)

	resp := fiber.Map{
		"route":   route,
		"allowed": h.Resolver.CanAccessRoute(c.UserContext(), role, route),
	}
	if match.Unmatched {
		resp["section"] = nil
	} else {
		resp["section"] = match.Section
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
