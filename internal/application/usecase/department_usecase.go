package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/authz"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

// DepartmentUseCase administración de sectores.
type DepartmentUseCase struct {
	departments repository.DepartmentRepository
	now         func() time.Time
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(departments repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{departments: departments, now: time.Now}
}

// Create crea un sector; el nombre es único.
func (uc *DepartmentUseCase) Create(actor entity.Actor, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := authz.Authorize(actor, authz.ActionManageStores, entity.Scope{}); err != nil {
		return nil, err
	}
	existing, err := uc.departments.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := uc.now()
	dept := &entity.Department{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.departments.Create(dept); err != nil {
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

// List lista los sectores (formularios de registro y filtros de reporte).
func (uc *DepartmentUseCase) List() (*dto.DepartmentListResponse, error) {
	list, err := uc.departments.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDepartmentResponse(d))
	}
	return &dto.DepartmentListResponse{Items: items}, nil
}

// Delete elimina un sector.
func (uc *DepartmentUseCase) Delete(actor entity.Actor, id string) error {
	if err := authz.Authorize(actor, authz.ActionManageStores, entity.Scope{}); err != nil {
		return err
	}
	dept, err := uc.departments.GetByID(id)
	if err != nil {
		return err
	}
	if dept == nil {
		return domain.ErrNotFound
	}
	return uc.departments.Delete(id)
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartmentResponse{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt}
}
