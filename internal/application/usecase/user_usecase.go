package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/authz"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de personal (solo gerencia general). El
// invariante rol↔alcance se fuerza en cada create y update, no solo en la
// construcción.
type UserUseCase struct {
	users repository.UserRepository
	now   func() time.Time
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users, now: time.Now}
}

// Create da de alta un usuario. El alcance se normaliza según el rol: tienda y
// sector que el rol no admite se descartan, y los que exige son obligatorios.
func (uc *UserUseCase) Create(actor entity.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := authz.Authorize(actor, authz.ActionManageUsers, entity.Scope{}); err != nil {
		return nil, err
	}
	role := entity.Role(in.Role)
	scope, err := entity.ScopeForRole(role, in.StoreID, in.DepartmentID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Scope:        scope,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update edita un usuario, re-normalizando el alcance contra el rol nuevo.
// Password vacío conserva el hash actual.
func (uc *UserUseCase) Update(actor entity.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := authz.Authorize(actor, authz.ActionManageUsers, entity.Scope{}); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	role := entity.Role(in.Role)
	scope, err := entity.ScopeForRole(role, in.StoreID, in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if in.Email != user.Email {
		existing, err := uc.users.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.Email = in.Email
	user.Role = role
	user.Scope = scope
	user.UpdatedAt = uc.now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(actor entity.Actor, id string) error {
	if err := authz.Authorize(actor, authz.ActionManageUsers, entity.Scope{}); err != nil {
		return err
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.Delete(id)
}

// List lista el personal administrable (excluye gerencias generales).
func (uc *UserUseCase) List(actor entity.Actor) (*dto.UserListResponse, error) {
	if err := authz.Authorize(actor, authz.ActionManageUsers, entity.Scope{}); err != nil {
		return nil, err
	}
	list, err := uc.users.ListStaff()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName(),
		Role:         string(u.Role),
		StoreID:      u.Scope.StoreID,
		DepartmentID: u.Scope.DepartmentID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
