package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
)

// CatalogHandler maneja la consulta de códigos de barras (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Lookup godoc
// @Summary      Resolver código de barras (catálogo interno + fuente externa)
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200  {object}  dto.LookupResponse
// @Router       /api/catalog/lookup/{barcode} [get]
func (h *CatalogHandler) Lookup(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	if barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_BARCODE", Message: "barcode es requerido"})
	}
	out, err := h.uc.Lookup(c.Context(), barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
