package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador del catálogo interno.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Upsert inserta o sobreescribe la entrada por barcode.
func (r *CatalogRepo) Upsert(entry *entity.CatalogEntry) error {
	query := `
		INSERT INTO catalog_entries (id, barcode, name, plu, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (barcode) DO UPDATE
		SET name = EXCLUDED.name, plu = EXCLUDED.plu, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Barcode, entry.Name, nullable(entry.PLU), entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert catalog entry: %w", err)
	}
	return nil
}

// GetByBarcode obtiene una entrada por barcode. Miss -> (nil, nil).
func (r *CatalogRepo) GetByBarcode(barcode string) (*entity.CatalogEntry, error) {
	var e entity.CatalogEntry
	var plu *string
	err := r.q.QueryRow(context.Background(),
		`SELECT id, barcode, name, plu, updated_at FROM catalog_entries WHERE barcode = $1`,
		barcode,
	).Scan(&e.ID, &e.Barcode, &e.Name, &plu, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog entry: %w", err)
	}
	e.PLU = deref(plu)
	return &e, nil
}
