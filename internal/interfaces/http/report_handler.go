package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
	"github.com/jhoicas/rebaixa-api/pkg/validator"
)

// ReportHandler maneja las consultas de reportes y vencidos (protegido).
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	pdf *usecase.ReportPDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, pdf *usecase.ReportPDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Query godoc
// @Summary      Reporte de productos registrados por ventana de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date     query  string  true   "YYYY-MM-DD"
// @Param        end_date       query  string  true   "YYYY-MM-DD"
// @Param        store_id       query  string  false  "Filtro de tienda o 'all'"
// @Param        department_id  query  string  false  "Filtro de sector o 'all'"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/products [get]
func (h *ReportHandler) Query(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	out, err := h.uc.Query(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QueryPDF godoc
// @Summary      Reporte de productos registrados en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date     query  string  true   "YYYY-MM-DD"
// @Param        end_date       query  string  true   "YYYY-MM-DD"
// @Param        store_id       query  string  false  "Filtro de tienda o 'all'"
// @Param        department_id  query  string  false  "Filtro de sector o 'all'"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/products/pdf [get]
func (h *ReportHandler) QueryPDF(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	raw, err := h.pdf.Generate(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="relatorio_produtos.pdf"`)
	return c.Send(raw)
}

// Expired godoc
// @Summary      Productos vencidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        store_id       query  string  false  "Filtro de tienda o 'all'"
// @Param        department_id  query  string  false  "Filtro de sector o 'all'"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/expired [get]
func (h *ReportHandler) Expired(c *fiber.Ctx) error {
	var in dto.ExpiredRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Expired(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
