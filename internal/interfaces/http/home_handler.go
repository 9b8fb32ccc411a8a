package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain/authz"
)

// HomeHandler resuelve la pantalla inicial del rol autenticado.
type HomeHandler struct{}

// NewHomeHandler construye el handler.
func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

// Home godoc
// @Summary      Pantalla inicial del rol
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/home [get]
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	path, err := authz.DashboardFor(GetRole(c))
	if err != nil {
		// Rol sin dashboard: error de configuración, no de autenticación.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DASHBOARD", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"dashboard": path})
}
