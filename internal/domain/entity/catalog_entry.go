package entity

import "time"

// CatalogEntry memoiza el nombre y PLU canónicos de un código de barras.
// Se crea o refresca al registrar productos con barcode; nunca se elimina.
type CatalogEntry struct {
	ID        string
	Barcode   string
	Name      string
	PLU       string
	UpdatedAt time.Time
}
