package dto

import "time"

// CreateStoreRequest alta de tienda.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	TaxID   string `json:"tax_id" validate:"max=18"`
	Address string `json:"address" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=2"`
}

// UpdateStoreRequest edición de tienda (sobreescritura completa).
type UpdateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	TaxID   string `json:"tax_id" validate:"max=18"`
	Address string `json:"address" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=2"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse listado de tiendas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
}
