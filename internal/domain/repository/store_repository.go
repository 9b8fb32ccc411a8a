package repository

import "github.com/jhoicas/rebaixa-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	GetByName(name string) (*entity.Store, error)
	Update(store *entity.Store) error
	List() ([]*entity.Store, error)
	Delete(id string) error
}
