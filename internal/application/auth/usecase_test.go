package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rebaixa-api/internal/application/auth"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/rebaixa-api/pkg/jwt"
)

// fakeUserRepo solo implementa lo que Login necesita.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (f *fakeUserRepo) Create(*entity.User) error            { return nil }
func (f *fakeUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) Update(*entity.User) error          { return nil }
func (f *fakeUserRepo) ListStaff() ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) CountByStore(string) (int, error)   { return 0, nil }
func (f *fakeUserRepo) Delete(string) error                { return nil }

const testSecret = "test-secret-key-for-unit-tests"

func newAuthFixture(t *testing.T, role entity.Role, scope entity.Scope) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{byEmail: map[string]*entity.User{
		"gerente@mercado.com.br": {
			ID: "u-1", Email: "gerente@mercado.com.br",
			PasswordHash: string(hash), Role: role, Scope: scope,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "rebaixa-test"})
}

func TestLogin_TokenConRolYAlcance(t *testing.T) {
	uc := newAuthFixture(t, entity.RoleStoreManager, entity.StoreScope("store-1"))

	out, err := uc.Login(dto.LoginRequest{Email: "gerente@mercado.com.br", Password: "segredo123"})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "store_manager", claims.Role)
	assert.Equal(t, "store-1", claims.StoreID)
	assert.Empty(t, claims.DepartmentID)

	assert.Equal(t, "/api/dashboards/store-manager", out.Dashboard)
	assert.Equal(t, "Gerente", out.User.DisplayName)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthFixture(t, entity.RoleStoreManager, entity.StoreScope("store-1"))
	_, err := uc.Login(dto.LoginRequest{Email: "gerente@mercado.com.br", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthFixture(t, entity.RoleStoreManager, entity.StoreScope("store-1"))
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@mercado.com.br", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_RolSinDashboard_NoBloquea(t *testing.T) {
	uc := newAuthFixture(t, entity.Role("practicante"), entity.Unscoped())

	out, err := uc.Login(dto.LoginRequest{Email: "gerente@mercado.com.br", Password: "segredo123"})
	require.NoError(t, err, "un rol sin dashboard configurado sigue pudiendo autenticarse")
	assert.Empty(t, out.Dashboard)
	assert.NotEmpty(t, out.Token)
}
