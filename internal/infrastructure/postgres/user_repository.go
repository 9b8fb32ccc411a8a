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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El alcance (unión etiquetada) se mapea a columnas anulables store_id /
// department_id; la variante se reconstruye desde el rol al escanear.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, password_hash, role, store_id, department_id, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, role, store_id, department_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, string(user.Role),
		nullable(user.Scope.StoreID), nullable(user.Scope.DepartmentID),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (login único).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	user, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update actualiza un usuario (incluido su alcance normalizado).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, role = $4, store_id = $5, department_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, string(user.Role),
		nullable(user.Scope.StoreID), nullable(user.Scope.DepartmentID), user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListStaff lista el personal excluyendo gerencias generales, ordenado por tienda.
func (r *UserRepo) ListStaff() ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE role <> $1 ORDER BY store_id NULLS FIRST, email`
	rows, err := r.q.Query(context.Background(), query, string(entity.RoleGeneralManager))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, user)
	}
	return list, rows.Err()
}

// CountByStore cuenta usuarios vinculados a una tienda.
func (r *UserRepo) CountByStore(storeID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE store_id = $1`, storeID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users by store: %w", err)
	}
	return n, nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// scanUser escanea una fila de users reconstruyendo la variante de alcance
// desde el rol persistido.
func scanUser(scan func(dest ...any) error) (*entity.User, error) {
	var u entity.User
	var role string
	var storeID, departmentID *string
	if err := scan(&u.ID, &u.Email, &u.PasswordHash, &role, &storeID, &departmentID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	u.Scope = entity.Scope{
		Kind:         entity.RequiredScopeKind(u.Role),
		StoreID:      deref(storeID),
		DepartmentID: deref(departmentID),
	}
	return &u, nil
}
