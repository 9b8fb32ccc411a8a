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

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de persistencia para sectores.
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste un nuevo sector. Nombre duplicado -> ErrDuplicate.
func (r *DepartmentRepo) Create(department *entity.Department) error {
	query := `
		INSERT INTO departments (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		department.ID, department.Name, department.CreatedAt, department.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un sector por ID.
func (r *DepartmentRepo) GetByID(id string) (*entity.Department, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM departments WHERE id = $1`, id)
}

// GetByName obtiene un sector por nombre (único).
func (r *DepartmentRepo) GetByName(name string) (*entity.Department, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM departments WHERE name = $1`, name)
}

func (r *DepartmentRepo) getOne(query string, arg any) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// List lista los sectores ordenados por nombre.
func (r *DepartmentRepo) List() ([]*entity.Department, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un sector por ID.
func (r *DepartmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
