package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
	"github.com/jhoicas/rebaixa-api/pkg/validator"
)

// DepartmentHandler maneja las peticiones HTTP para sectores (protegido).
type DepartmentHandler struct {
	uc *usecase.DepartmentUseCase
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(uc *usecase.DepartmentUseCase) *DepartmentHandler {
	return &DepartmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sector
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepartmentRequest  true  "Datos del sector"
// @Success      201   {object}  dto.DepartmentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/departments [post]
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar sectores
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DepartmentListResponse
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sector
// @Tags         departments
// @Security     Bearer
// @Param        id  path  string  true  "ID del sector"
// @Success      204
// @Router       /api/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
