package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, name, tax_id, city, state, address, created_at, updated_at`

// Create persiste una nueva tienda. Nombre duplicado -> ErrDuplicate.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, tax_id, city, state, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, nullable(store.TaxID), nullable(store.City),
		nullable(store.State), nullable(store.Address), store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.getOne(`SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
}

// GetByName obtiene una tienda por nombre (único).
func (r *StoreRepo) GetByName(name string) (*entity.Store, error) {
	return r.getOne(`SELECT `+storeColumns+` FROM stores WHERE name = $1`, name)
}

func (r *StoreRepo) getOne(query string, arg any) (*entity.Store, error) {
	var s entity.Store
	var taxID, city, state, address *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &taxID, &city, &state, &address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	s.TaxID, s.City, s.State, s.Address = deref(taxID), deref(city), deref(state), deref(address)
	return &s, nil
}

// Update sobreescribe los datos de la tienda.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, tax_id = $3, city = $4, state = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, nullable(store.TaxID), nullable(store.City),
		nullable(store.State), nullable(store.Address), store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// List lista las tiendas ordenadas por nombre.
func (r *StoreRepo) List() ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+storeColumns+` FROM stores ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		var taxID, city, state, address *string
		if err := rows.Scan(&s.ID, &s.Name, &taxID, &city, &state, &address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		s.TaxID, s.City, s.State, s.Address = deref(taxID), deref(city), deref(state), deref(address)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}
