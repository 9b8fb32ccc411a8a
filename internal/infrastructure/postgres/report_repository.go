package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes. Las ordenaciones por
// tienda y sector usan los nombres (vía join), no los UUID.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de consultas de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// RegisteredBetween devuelve las filas de productos registrados dentro de la
// ventana [Start, End], ya expandida a inicio y fin de día por el caso de uso.
func (r *ReportRepo) RegisteredBetween(ctx context.Context, filter repository.RegistrationFilter) ([]repository.RegistrationRow, error) {
	query := `
		SELECT u.email, p.registered_at, p.name, p.expiry, p.status
		FROM products p
		JOIN users u ON u.id = p.created_by_id
		JOIN stores s ON s.id = p.store_id
		JOIN departments d ON d.id = p.department_id
		WHERE p.registered_at BETWEEN $1 AND $2`
	args := []any{filter.Start, filter.End}
	if filter.StoreID != "" {
		args = append(args, filter.StoreID)
		query += fmt.Sprintf(" AND p.store_id = $%d", len(args))
	}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		query += fmt.Sprintf(" AND p.department_id = $%d", len(args))
	}
	if filter.ByRegistrationOnly {
		query += " ORDER BY p.registered_at"
	} else {
		query += " ORDER BY s.name, d.name, p.registered_at"
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query registrations: %w", err)
	}
	defer rows.Close()
	var result []repository.RegistrationRow
	for rows.Next() {
		var row repository.RegistrationRow
		var status string
		if err := rows.Scan(&row.CreatorLogin, &row.RegisteredAt, &row.ProductName, &row.Expiry, &status); err != nil {
			return nil, fmt.Errorf("scan registration row: %w", err)
		}
		row.Status = entity.ProductStatus(status)
		result = append(result, row)
	}
	return result, rows.Err()
}

// Expired lista productos con validad estrictamente anterior a Today, los más
// recientes primero.
func (r *ReportRepo) Expired(ctx context.Context, filter repository.ExpiredFilter) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.plu, p.quantity, p.expiry, p.status, p.registered_at, p.markdown_reason, p.store_id, p.department_id, p.created_by_id
		FROM products p
		JOIN stores s ON s.id = p.store_id
		WHERE p.expiry < $1`
	args := []any{filter.Today}
	if filter.StoreID != "" {
		args = append(args, filter.StoreID)
		query += fmt.Sprintf(" AND p.store_id = $%d", len(args))
	}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		query += fmt.Sprintf(" AND p.department_id = $%d", len(args))
	}
	if filter.ByStore {
		query += " ORDER BY s.name, p.expiry DESC"
	} else {
		query += " ORDER BY p.expiry DESC"
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expired products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan expired product: %w", err)
		}
		list = append(list, product)
	}
	return list, rows.Err()
}
