package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ScopeForRole: normalización por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestScopeForRole_RolesSinAlcance_DescartanTiendaYSector(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleGeneralManager, entity.RoleExchangeManager} {
		scope, err := entity.ScopeForRole(role, "store-1", "dept-1")
		require.NoError(t, err)
		assert.Equal(t, entity.ScopeUnscoped, scope.Kind)
		assert.Empty(t, scope.StoreID, "rol %s no debe conservar tienda", role)
		assert.Empty(t, scope.DepartmentID)
	}
}

func TestScopeForRole_RolesDeTienda_ExigenTienda(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleStoreManager, entity.RoleManagementAssistant} {
		scope, err := entity.ScopeForRole(role, "store-1", "dept-1")
		require.NoError(t, err)
		assert.Equal(t, entity.ScopeStore, scope.Kind)
		assert.Equal(t, "store-1", scope.StoreID)
		// El sector recibido se descarta: este rol no lleva sector.
		assert.Empty(t, scope.DepartmentID)

		_, err = entity.ScopeForRole(role, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol %s sin tienda debe fallar", role)
	}
}

func TestScopeForRole_Encargado_ExigeTiendaYSector(t *testing.T) {
	scope, err := entity.ScopeForRole(entity.RoleDepartmentSupervisor, "store-1", "dept-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ScopeStoreDepartment, scope.Kind)
	assert.Equal(t, "store-1", scope.StoreID)
	assert.Equal(t, "dept-1", scope.DepartmentID)

	_, err = entity.ScopeForRole(entity.RoleDepartmentSupervisor, "store-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = entity.ScopeForRole(entity.RoleDepartmentSupervisor, "", "dept-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScopeForRole_RolInvalido(t *testing.T) {
	_, err := entity.ScopeForRole(entity.Role("practicante"), "store-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Covers / SameStore
// ──────────────────────────────────────────────────────────────────────────────

func TestScope_Covers(t *testing.T) {
	target := entity.StoreDepartmentScope("store-1", "dept-1")

	assert.True(t, entity.Unscoped().Covers(target))
	assert.True(t, entity.StoreScope("store-1").Covers(target))
	assert.False(t, entity.StoreScope("store-2").Covers(target))
	assert.True(t, entity.StoreDepartmentScope("store-1", "dept-1").Covers(target))
	assert.False(t, entity.StoreDepartmentScope("store-1", "dept-2").Covers(target))
	assert.False(t, entity.StoreDepartmentScope("store-2", "dept-1").Covers(target))
}

func TestScope_SameStore_VacioNuncaCoincide(t *testing.T) {
	// Dos alcances sin tienda no comparten tienda: evita el falso positivo "" == "".
	assert.False(t, entity.Unscoped().SameStore(entity.Unscoped()))
	assert.True(t, entity.StoreScope("store-1").SameStore(entity.StoreScope("store-1")))
}
