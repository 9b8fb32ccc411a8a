package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
)

// DashboardHandler sirve las pantallas iniciales de los roles sin dashboard
// propio de productos: los datos de filtro (tiendas y sectores) que la UI
// necesita para armar sus formularios.
type DashboardHandler struct {
	stores      *usecase.StoreUseCase
	departments *usecase.DepartmentUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(stores *usecase.StoreUseCase, departments *usecase.DepartmentUseCase) *DashboardHandler {
	return &DashboardHandler{stores: stores, departments: departments}
}

// GeneralManager godoc
// @Summary      Dashboard de gerencia general (filtros de reporte)
// @Tags         dashboards
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/dashboards/general-manager [get]
func (h *DashboardHandler) GeneralManager(c *fiber.Ctx) error {
	return h.reportFilters(c)
}

// Exchange godoc
// @Summary      Dashboard de gerencia de trocas (filtros de reporte)
// @Tags         dashboards
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/dashboards/exchange [get]
func (h *DashboardHandler) Exchange(c *fiber.Ctx) error {
	return h.reportFilters(c)
}

// Assistant godoc
// @Summary      Dashboard de auxiliar administrativo (formulario de registro)
// @Tags         dashboards
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/dashboards/assistant [get]
func (h *DashboardHandler) Assistant(c *fiber.Ctx) error {
	departments, err := h.departments.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"departments": departments.Items})
}

func (h *DashboardHandler) reportFilters(c *fiber.Ctx) error {
	stores, err := h.stores.List()
	if err != nil {
		return respondError(c, err)
	}
	departments, err := h.departments.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"stores":      stores.Items,
		"departments": departments.Items,
	})
}
