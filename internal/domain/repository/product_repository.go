package repository

import (
	"time"

	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
)

// ActiveFilter acota los listados de dashboard: productos no vencidos de una
// tienda (y opcionalmente un sector y un estado), ordenados por validad.
type ActiveFilter struct {
	StoreID      string
	DepartmentID string // vacío = todos los sectores
	Status       entity.ProductStatus
	HasStatus    bool // false = cualquier estado
	Today        time.Time
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// Update sobreescribe solo los campos mutables (nombre, PLU, cantidad,
	// validad, motivo). RegisteredAt, tienda, sector, creador y estado no
	// cambian por esta vía.
	Update(product *entity.Product) error
	UpdateStatus(id string, status entity.ProductStatus) error
	ListActive(filter ActiveFilter) ([]*entity.Product, error)
	// Delete es eliminación física, sin soft-delete ni cascadas.
	Delete(id string) error
}
