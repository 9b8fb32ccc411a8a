package auth

import (
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/authz"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
	"github.com/jhoicas/rebaixa-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login con bcrypt + JWT con rol y alcance.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera el JWT y resuelve el dashboard del
// rol. Un rol sin dashboard configurado no bloquea el login: se reporta con
// campo vacío y el cliente decide qué mostrar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID,
		string(user.Role),
		user.Scope.StoreID,
		user.Scope.DepartmentID,
		uc.jwtCfg.Issuer,
		uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}

	dashboard, err := authz.DashboardFor(user.Role)
	if err != nil {
		// Error de configuración, no de autenticación.
		dashboard = ""
	}

	return &dto.LoginResponse{
		Token:     token,
		Dashboard: dashboard,
		User: dto.UserResponse{
			ID:           user.ID,
			Email:        user.Email,
			DisplayName:  user.DisplayName(),
			Role:         string(user.Role),
			StoreID:      user.Scope.StoreID,
			DepartmentID: user.Scope.DepartmentID,
			CreatedAt:    user.CreatedAt,
			UpdatedAt:    user.UpdatedAt,
		},
	}, nil
}
