package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type productFixture struct {
	uc       *usecase.ProductUseCase
	products *fakeProductRepo
	catalog  *fakeCatalogRepo
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	products := newFakeProductRepo()
	catalog := newFakeCatalogRepo()
	departments := newFakeDepartmentRepo(
		&entity.Department{ID: "dept-1", Name: "Frios"},
		&entity.Department{ID: "dept-2", Name: "Padaria"},
	)
	uc := usecase.NewProductUseCase(&fakeTxRunner{products: products, catalog: catalog}, products, departments)
	return &productFixture{uc: uc, products: products, catalog: catalog}
}

var (
	assistantActor = entity.Actor{ID: "user-aux", Role: entity.RoleManagementAssistant, Scope: entity.StoreScope("store-1")}
	managerActor   = entity.Actor{ID: "user-ger", Role: entity.RoleStoreManager, Scope: entity.StoreScope("store-1")}
	encargadoActor = entity.Actor{ID: "user-enc", Role: entity.RoleDepartmentSupervisor, Scope: entity.StoreDepartmentScope("store-1", "dept-1")}
	gerenciaActor  = entity.Actor{ID: "user-gg", Role: entity.RoleGeneralManager, Scope: entity.Unscoped()}
)

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:         "Queijo Minas 500g",
		PLU:          "4011",
		Quantity:     12,
		Expiry:       "2026-09-15",
		DepartmentID: "dept-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_DefaultsYAlcance(t *testing.T) {
	fx := newProductFixture(t)

	out, err := fx.uc.Create(context.Background(), assistantActor, validCreate())
	require.NoError(t, err)

	assert.Equal(t, "para_rebaixa", out.Status, "el estado inicial siempre es para rebaixa")
	assert.Equal(t, "Para Rebaixa", out.StatusLabel)
	assert.Equal(t, "store-1", out.StoreID, "la tienda es la del actor, nunca la del cliente")
	assert.Equal(t, "user-aux", out.CreatedByID)
	assert.WithinDuration(t, time.Now(), out.RegisteredAt, 2*time.Second)
}

func TestProductCreate_EncargadoIgnoraSectorDelCliente(t *testing.T) {
	fx := newProductFixture(t)

	in := validCreate()
	in.DepartmentID = "dept-2" // intento de registrar fuera del sector propio

	out, err := fx.uc.Create(context.Background(), encargadoActor, in)
	require.NoError(t, err)
	assert.Equal(t, "dept-1", out.DepartmentID, "el sector del encargado se fuerza al suyo")
}

func TestProductCreate_RolesSinPermiso(t *testing.T) {
	fx := newProductFixture(t)

	for _, actor := range []entity.Actor{gerenciaActor, {ID: "user-tr", Role: entity.RoleExchangeManager, Scope: entity.Unscoped()}} {
		_, err := fx.uc.Create(context.Background(), actor, validCreate())
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %s no registra productos", actor.Role)
	}
	assert.Empty(t, fx.products.products, "un deny no deja escrituras")
}

func TestProductCreate_ValidacionDeEntrada(t *testing.T) {
	fx := newProductFixture(t)
	ctx := context.Background()

	cases := []func(*dto.CreateProductRequest){
		func(in *dto.CreateProductRequest) { in.Name = "" },
		func(in *dto.CreateProductRequest) { in.PLU = "" },
		func(in *dto.CreateProductRequest) { in.Quantity = 0 },
		func(in *dto.CreateProductRequest) { in.Quantity = -3 },
		func(in *dto.CreateProductRequest) { in.Expiry = "15/09/2026" }, // formato inválido
		func(in *dto.CreateProductRequest) { in.DepartmentID = "" },
	}
	for i, mutate := range cases {
		in := validCreate()
		mutate(&in)
		_, err := fx.uc.Create(ctx, assistantActor, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}

	in := validCreate()
	in.DepartmentID = "dept-inexistente"
	_, err := fx.uc.Create(ctx, assistantActor, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_ConBarcode_RefrescaCatalogo(t *testing.T) {
	fx := newProductFixture(t)

	in := validCreate()
	in.Barcode = "7891000100103"

	_, err := fx.uc.Create(context.Background(), assistantActor, in)
	require.NoError(t, err)

	entry, err := fx.catalog.GetByBarcode("7891000100103")
	require.NoError(t, err)
	require.NotNil(t, entry, "el registro memoiza el barcode en el catálogo")
	assert.Equal(t, "Queijo Minas 500g", entry.Name)
	assert.Equal(t, "4011", entry.PLU)
}

func TestProductCreate_FalloEnTransaccion_NoDejaEscrituras(t *testing.T) {
	fx := newProductFixture(t)
	fx.products.failCreate = errors.New("disco lleno")

	in := validCreate()
	in.Barcode = "7891000100103"

	_, err := fx.uc.Create(context.Background(), assistantActor, in)
	require.Error(t, err)

	// Atómico: ni producto ni entrada de catálogo.
	assert.Empty(t, fx.products.products)
	entry, _ := fx.catalog.GetByBarcode("7891000100103")
	assert.Nil(t, entry)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Edit
// ──────────────────────────────────────────────────────────────────────────────

func seedProduct(t *testing.T, fx *productFixture) string {
	t.Helper()
	out, err := fx.uc.Create(context.Background(), encargadoActor, validCreate())
	require.NoError(t, err)
	return out.ID
}

func TestProductEdit_SoloEncargadoDelSector(t *testing.T) {
	fx := newProductFixture(t)
	id := seedProduct(t, fx)

	update := dto.UpdateProductRequest{
		Name: "Queijo Minas 1kg", PLU: "4012", Quantity: 5,
		Expiry: "2026-09-20", MarkdownReason: "validade próxima",
	}

	out, err := fx.uc.Edit(context.Background(), encargadoActor, id, update)
	require.NoError(t, err)
	assert.Equal(t, "Queijo Minas 1kg", out.Name)
	assert.Equal(t, 5, out.Quantity)
	assert.Equal(t, "validade próxima", out.MarkdownReason)
	// Los campos inmutables no cambian.
	assert.Equal(t, "store-1", out.StoreID)
	assert.Equal(t, "para_rebaixa", out.Status)
}

func TestProductEdit_FueraDeAlcance_ProductoIntacto(t *testing.T) {
	fx := newProductFixture(t)
	id := seedProduct(t, fx)

	otherSupervisor := entity.Actor{ID: "user-x", Role: entity.RoleDepartmentSupervisor, Scope: entity.StoreDepartmentScope("store-2", "dept-1")}
	_, err := fx.uc.Edit(context.Background(), otherSupervisor, id, dto.UpdateProductRequest{
		Name: "hackeado", PLU: "1", Quantity: 1, Expiry: "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := fx.products.GetByID(id)
	assert.Equal(t, "Queijo Minas 500g", stored.Name, "un deny no modifica el producto")
}

func TestProductEdit_NoEncontrado(t *testing.T) {
	fx := newProductFixture(t)
	_, err := fx.uc.Edit(context.Background(), encargadoActor, "nope", dto.UpdateProductRequest{
		Name: "x", PLU: "1", Quantity: 1, Expiry: "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ChangeStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeStatus_GerenteDeLaTienda(t *testing.T) {
	fx := newProductFixture(t)
	id := seedProduct(t, fx)
	ctx := context.Background()

	out, err := fx.uc.ChangeStatus(ctx, managerActor, id, "em_rebaixa")
	require.NoError(t, err)
	assert.Equal(t, "em_rebaixa", out.Status)
	assert.Equal(t, "Em Rebaixa", out.StatusLabel)

	// Transición de vuelta: ambos estados son alcanzables desde ambos.
	out, err = fx.uc.ChangeStatus(ctx, managerActor, id, "para_rebaixa")
	require.NoError(t, err)
	assert.Equal(t, "para_rebaixa", out.Status)

	// No-op: fijar el estado actual es válido.
	out, err = fx.uc.ChangeStatus(ctx, managerActor, id, "para_rebaixa")
	require.NoError(t, err)
	assert.Equal(t, "para_rebaixa", out.Status)
}

func TestChangeStatus_OtraTiendaYOtrosRoles_Deny(t *testing.T) {
	fx := newProductFixture(t)
	id := seedProduct(t, fx)
	ctx := context.Background()

	otherManager := entity.Actor{ID: "user-y", Role: entity.RoleStoreManager, Scope: entity.StoreScope("store-2")}
	_, err := fx.uc.ChangeStatus(ctx, otherManager, id, "em_rebaixa")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = fx.uc.ChangeStatus(ctx, encargadoActor, id, "em_rebaixa")
	assert.ErrorIs(t, err, domain.ErrForbidden, "el encargado no transiciona estados")

	stored, _ := fx.products.GetByID(id)
	assert.Equal(t, entity.StatusPendingMarkdown, stored.Status)
}

func TestChangeStatus_EstadoInvalido(t *testing.T) {
	fx := newProductFixture(t)
	id := seedProduct(t, fx)

	_, err := fx.uc.ChangeStatus(context.Background(), managerActor, id, "vendido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_Reglas(t *testing.T) {
	fx := newProductFixture(t)
	ctx := context.Background()

	// Gerencia general elimina en cualquier tienda.
	id := seedProduct(t, fx)
	require.NoError(t, fx.uc.Delete(ctx, gerenciaActor, id))
	stored, _ := fx.products.GetByID(id)
	assert.Nil(t, stored)

	// El encargado solo dentro de su sector.
	id = seedProduct(t, fx)
	require.NoError(t, fx.uc.Delete(ctx, encargadoActor, id))

	// El gerente de tienda no elimina.
	id = seedProduct(t, fx)
	err := fx.uc.Delete(ctx, managerActor, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	stored, _ = fx.products.GetByID(id)
	assert.NotNil(t, stored)
}

func TestProductDelete_NoEncontrado(t *testing.T) {
	fx := newProductFixture(t)
	err := fx.uc.Delete(context.Background(), gerenciaActor, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests dashboards de producto
// ──────────────────────────────────────────────────────────────────────────────

func TestStoreDashboard_SeparaPorEstadoYExcluyeVencidos(t *testing.T) {
	fx := newProductFixture(t)
	ctx := context.Background()

	seedProduct(t, fx)
	id2 := seedProduct(t, fx)
	_, err := fx.uc.ChangeStatus(ctx, managerActor, id2, "em_rebaixa")
	require.NoError(t, err)

	out, err := fx.uc.StoreDashboard(ctx, managerActor)
	require.NoError(t, err)
	assert.Len(t, out.PendingMarkdown, 1)
	assert.Len(t, out.InMarkdown, 1)

	// Solo el gerente de tienda tiene este dashboard.
	_, err = fx.uc.StoreDashboard(ctx, encargadoActor)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDepartmentProducts_SoloEncargado(t *testing.T) {
	fx := newProductFixture(t)
	ctx := context.Background()
	seedProduct(t, fx)

	out, err := fx.uc.DepartmentProducts(ctx, encargadoActor)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)

	// El filtro enviado al repo lleva tienda y sector del encargado.
	last := fx.products.lastActiveFilters[len(fx.products.lastActiveFilters)-1]
	assert.Equal(t, "store-1", last.StoreID)
	assert.Equal(t, "dept-1", last.DepartmentID)

	_, err = fx.uc.DepartmentProducts(ctx, managerActor)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
