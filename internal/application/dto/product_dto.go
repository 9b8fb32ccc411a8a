package dto

import "time"

// CreateProductRequest registro de un producto perecedero. La tienda nunca se
// recibe del cliente: se fuerza desde el alcance del actor. DepartmentID se
// ignora si el actor es encargado de sector (se usa el suyo).
type CreateProductRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	PLU            string `json:"plu" validate:"required,min=1,max=50"`
	Barcode        string `json:"barcode" validate:"max=50"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	Expiry         string `json:"expiry" validate:"required"` // YYYY-MM-DD
	MarkdownReason string `json:"markdown_reason" validate:"max=255"`
	DepartmentID   string `json:"department_id"`
}

// UpdateProductRequest edición de campos mutables (sobreescritura completa,
// como el formulario original). Tienda, sector, creador, estado y fecha de
// registro no se tocan por esta vía.
type UpdateProductRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	PLU            string `json:"plu" validate:"required,min=1,max=50"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	Expiry         string `json:"expiry" validate:"required"` // YYYY-MM-DD
	MarkdownReason string `json:"markdown_reason" validate:"max=255"`
}

// ChangeStatusRequest transición de estado de rebaixa.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"` // para_rebaixa | em_rebaixa
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PLU            string    `json:"plu"`
	Quantity       int       `json:"quantity"`
	Expiry         string    `json:"expiry"` // YYYY-MM-DD
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	RegisteredAt   time.Time `json:"registered_at"`
	MarkdownReason string    `json:"markdown_reason,omitempty"`
	StoreID        string    `json:"store_id"`
	DepartmentID   string    `json:"department_id"`
	CreatedByID    string    `json:"created_by_id"`
}

// ProductListResponse listado simple de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// StoreDashboardResponse dashboard del gerente de tienda: productos vigentes
// separados por estado, ordenados por vencimiento.
type StoreDashboardResponse struct {
	PendingMarkdown []ProductResponse `json:"pending_markdown"`
	InMarkdown      []ProductResponse `json:"in_markdown"`
}
