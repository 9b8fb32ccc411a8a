package repository

import "github.com/jhoicas/rebaixa-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// ListStaff lista el personal administrable (excluye gerentes generales),
	// ordenado por tienda.
	ListStaff() ([]*entity.User, error)
	// CountByStore cuenta usuarios vinculados a una tienda (regla de
	// integridad al eliminar tiendas).
	CountByStore(storeID string) (int, error)
	Delete(id string) error
}
