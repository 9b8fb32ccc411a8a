package repository

import "github.com/jhoicas/rebaixa-api/internal/domain/entity"

// CatalogRepository define el puerto del catálogo interno barcode → nombre/PLU.
type CatalogRepository interface {
	// Upsert inserta la entrada o sobreescribe nombre y PLU si el barcode ya existe.
	Upsert(entry *entity.CatalogEntry) error
	// GetByBarcode devuelve (nil, nil) si no hay entrada: el miss es un
	// resultado normal, no un error.
	GetByBarcode(barcode string) (*entity.CatalogEntry, error)
}
