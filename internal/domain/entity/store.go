package entity

import "time"

// Store representa una tienda de la cadena. El nombre es único; no puede
// eliminarse mientras tenga usuarios vinculados.
type Store struct {
	ID        string
	Name      string
	TaxID     string // CNPJ, opcional
	Address   string
	City      string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
