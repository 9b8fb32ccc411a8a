package repository

import "github.com/jhoicas/rebaixa-api/internal/domain/entity"

// DepartmentRepository define el puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(department *entity.Department) error
	GetByID(id string) (*entity.Department, error)
	GetByName(name string) (*entity.Department, error)
	List() ([]*entity.Department, error)
	Delete(id string) error
}
