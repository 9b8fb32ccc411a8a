package entity

import (
	"time"

	"github.com/jhoicas/rebaixa-api/internal/domain"
)

// ProductStatus es la máquina de estados de rebaixa: dos estados, transiciones
// bidireccionales (solo gerente de tienda), sin estado terminal. El producto
// existe hasta que se elimina físicamente, sin importar su estado.
type ProductStatus string

const (
	// StatusPendingMarkdown estado inicial: marcado para rebaixa.
	StatusPendingMarkdown ProductStatus = "para_rebaixa"
	// StatusInMarkdown el producto ya está con precio rebajado.
	StatusInMarkdown ProductStatus = "em_rebaixa"
)

// ParseStatus valida un valor recibido por la API.
func ParseStatus(s string) (ProductStatus, error) {
	switch ProductStatus(s) {
	case StatusPendingMarkdown, StatusInMarkdown:
		return ProductStatus(s), nil
	}
	return "", domain.ErrInvalidInput
}

// Label devuelve la etiqueta visible en pantallas y reportes (portugués,
// contrato del render de PDF).
func (s ProductStatus) Label() string {
	switch s {
	case StatusInMarkdown:
		return "Em Rebaixa"
	default:
		return "Para Rebaixa"
	}
}

// Product es un producto perecedero registrado para seguimiento de validad y
// rebaixa. RegisteredAt, Store, Department y CreatedBy son inmutables tras la
// creación; Status solo cambia vía ChangeStatus.
type Product struct {
	ID             string
	Name           string
	PLU            string // código de consulta de precio, distinto del barcode
	Quantity       int    // siempre > 0
	Expiry         time.Time
	Status         ProductStatus
	RegisteredAt   time.Time
	MarkdownReason string // texto libre, opcional
	StoreID        string
	DepartmentID   string
	CreatedByID    string
}

// Scope devuelve el alcance organizacional del producto (tienda + sector).
func (p *Product) Scope() Scope {
	return StoreDepartmentScope(p.StoreID, p.DepartmentID)
}
