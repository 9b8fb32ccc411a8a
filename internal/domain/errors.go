package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: validación (input), autorización (rol/alcance), no encontrado,
// integridad (unicidad / relaciones). Todos son síncronos y se reportan al
// llamador sin dejar escrituras parciales.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrIntegrity          = errors.New("violación de integridad")
	ErrNoDashboard        = errors.New("el rol no tiene dashboard asignado")
)
