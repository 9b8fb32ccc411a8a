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

// StoreUseCase administración de tiendas (solo gerencia general, salvo el
// listado que alimenta los filtros de reporte).
type StoreUseCase struct {
	stores repository.StoreRepository
	users  repository.UserRepository
	now    func() time.Time
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(stores repository.StoreRepository, users repository.UserRepository) *StoreUseCase {
	return &StoreUseCase{stores: stores, users: users, now: time.Now}
}

// Create crea una tienda; el nombre es único.
func (uc *StoreUseCase) Create(actor entity.Actor, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if err := authz.Authorize(actor, authz.ActionManageStores, entity.Scope{}); err != nil {
		return nil, err
	}
	existing, err := uc.stores.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := uc.now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.stores.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Update sobreescribe los datos de la tienda.
func (uc *StoreUseCase) Update(actor entity.Actor, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if err := authz.Authorize(actor, authz.ActionManageStores, entity.Scope{}); err != nil {
		return nil, err
	}
	store, err := uc.stores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	store.Name = in.Name
	store.TaxID = in.TaxID
	store.Address = in.Address
	store.City = in.City
	store.State = in.State
	store.UpdatedAt = uc.now()
	if err := uc.stores.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete elimina la tienda solo si no tiene usuarios vinculados; de lo
// contrario la operación aborta con violación de integridad y la tienda sigue
// consultable.
func (uc *StoreUseCase) Delete(actor entity.Actor, id string) error {
	if err := authz.Authorize(actor, authz.ActionManageStores, entity.Scope{}); err != nil {
		return err
	}
	store, err := uc.stores.GetByID(id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	linked, err := uc.users.CountByStore(id)
	if err != nil {
		return err
	}
	if linked > 0 {
		return domain.ErrIntegrity
	}
	return uc.stores.Delete(id)
}

// List lista las tiendas (alimenta formularios y filtros; cualquier actor
// autenticado).
func (uc *StoreUseCase) List() (*dto.StoreListResponse, error) {
	list, err := uc.stores.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{Items: items}, nil
}

// GetByID obtiene una tienda.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toStoreResponse(store), nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		TaxID:     s.TaxID,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
