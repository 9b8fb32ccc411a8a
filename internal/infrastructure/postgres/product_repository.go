package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, plu, quantity, expiry, status, registered_at, markdown_reason, store_id, department_id, created_by_id`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, plu, quantity, expiry, status, registered_at, markdown_reason, store_id, department_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullable(product.PLU), product.Quantity,
		product.Expiry, string(product.Status), product.RegisteredAt,
		nullable(product.MarkdownReason), product.StoreID, product.DepartmentID, product.CreatedByID,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Update sobreescribe solo los campos mutables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, plu = $3, quantity = $4, expiry = $5, markdown_reason = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullable(product.PLU), product.Quantity,
		product.Expiry, nullable(product.MarkdownReason),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado del producto.
func (r *ProductRepo) UpdateStatus(id string, status entity.ProductStatus) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update product status: %w", err)
	}
	return nil
}

// ListActive lista los productos no vencidos de una tienda ordenados por validad.
func (r *ProductRepo) ListActive(filter repository.ActiveFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 AND expiry >= $2`
	args := []any{filter.StoreID, filter.Today}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		query += fmt.Sprintf(" AND department_id = $%d", len(args))
	}
	if filter.HasStatus {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY expiry"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, product)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(scan func(dest ...any) error) (*entity.Product, error) {
	var p entity.Product
	var status string
	var plu, reason *string
	if err := scan(&p.ID, &p.Name, &plu, &p.Quantity, &p.Expiry, &status,
		&p.RegisteredAt, &reason, &p.StoreID, &p.DepartmentID, &p.CreatedByID); err != nil {
		return nil, err
	}
	p.Status = entity.ProductStatus(status)
	p.PLU, p.MarkdownReason = deref(plu), deref(reason)
	return &p, nil
}
