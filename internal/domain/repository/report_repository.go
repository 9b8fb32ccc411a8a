package repository

import (
	"context"
	"time"

	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
)

// RegistrationFilter acota la consulta de reportes por ventana de registro.
// Start y End llegan ya expandidos a inicio y fin de día (inclusive).
type RegistrationFilter struct {
	Start        time.Time
	End          time.Time
	StoreID      string // vacío = todas las tiendas
	DepartmentID string // vacío = todos los sectores
	// ByRegistrationOnly ordena solo por fecha de registro (alcance forzado a
	// una sola tienda+sector); si es false el orden es tienda, sector, registro.
	ByRegistrationOnly bool
}

// RegistrationRow es la fila cruda del reporte: producto + login del creador.
type RegistrationRow struct {
	CreatorLogin string
	RegisteredAt time.Time
	ProductName  string
	Expiry       time.Time
	Status       entity.ProductStatus
}

// ExpiredFilter acota el listado de vencidos: validad estrictamente anterior a Today.
type ExpiredFilter struct {
	Today        time.Time
	StoreID      string
	DepartmentID string
	// ByStore antepone la tienda al orden por validad descendente (roles sin
	// tienda propia).
	ByStore bool
}

// ReportRepository consultas de solo lectura para reportes (con contexto:
// son los únicos accesos potencialmente largos del sistema).
type ReportRepository interface {
	RegisteredBetween(ctx context.Context, filter RegistrationFilter) ([]RegistrationRow, error)
	Expired(ctx context.Context, filter ExpiredFilter) ([]*entity.Product, error)
}
