package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/authz"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

// dateLayout formato de fechas de entrada (validad, rangos de reporte).
const dateLayout = "2006-01-02"

// TxRunner ejecuta un callback con repos atados a una transacción: el upsert
// de catálogo y el insert del producto commitean o ruedan atrás juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		catalog repository.CatalogRepository,
	) error) error
}

// ProductUseCase motor de ciclo de vida del producto: registro, edición,
// transición de estado y eliminación, con autorización por rol/alcance
// evaluada antes de cualquier mutación.
type ProductUseCase struct {
	tx          TxRunner
	products    repository.ProductRepository
	departments repository.DepartmentRepository
	now         func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx TxRunner, products repository.ProductRepository, departments repository.DepartmentRepository) *ProductUseCase {
	return &ProductUseCase{tx: tx, products: products, departments: departments, now: time.Now}
}

// Create registra un producto. La tienda siempre es la del actor; si el actor
// es encargado de sector, el sector también se fuerza al suyo (cualquier valor
// del cliente se ignora). El estado inicial es "para rebaixa" y la fecha de
// registro queda fijada ahora. Si viene barcode, el catálogo se refresca en la
// misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := authz.Authorize(actor, authz.ActionCreateProduct, entity.Scope{}); err != nil {
		return nil, err
	}

	departmentID := in.DepartmentID
	if actor.Role == entity.RoleDepartmentSupervisor {
		departmentID = actor.Scope.DepartmentID
	}
	if in.Name == "" || in.PLU == "" || in.Expiry == "" || departmentID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.ParseInLocation(dateLayout, in.Expiry, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dept, err := uc.departments.GetByID(departmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}

	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		PLU:            in.PLU,
		Quantity:       in.Quantity,
		Expiry:         expiry,
		Status:         entity.StatusPendingMarkdown,
		RegisteredAt:   uc.now(),
		MarkdownReason: in.MarkdownReason,
		StoreID:        actor.Scope.StoreID,
		DepartmentID:   departmentID,
		CreatedByID:    actor.ID,
	}

	err = uc.tx.Run(ctx, func(products repository.ProductRepository, catalog repository.CatalogRepository) error {
		if in.Barcode != "" {
			entry := &entity.CatalogEntry{
				ID:        uuid.New().String(),
				Barcode:   in.Barcode,
				Name:      in.Name,
				PLU:       in.PLU,
				UpdatedAt: uc.now(),
			}
			if err := catalog.Upsert(entry); err != nil {
				return err
			}
		}
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Edit sobreescribe los campos mutables. Solo el encargado del sector del
// producto (misma tienda y mismo sector) puede editar; cualquier otro actor
// recibe deny sin que el producto cambie.
func (uc *ProductUseCase) Edit(ctx context.Context, actor entity.Actor, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Authorize(actor, authz.ActionEditProduct, product.Scope()); err != nil {
		return nil, err
	}
	if in.Name == "" || in.PLU == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.ParseInLocation(dateLayout, in.Expiry, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	product.Name = in.Name
	product.PLU = in.PLU
	product.Quantity = in.Quantity
	product.Expiry = expiry
	product.MarkdownReason = in.MarkdownReason

	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ChangeStatus transiciona el estado de rebaixa. Solo el gerente de la tienda
// dueña; ambos estados son alcanzables desde ambos, incluido el no-op (fijar
// el estado actual es válido y no toca ningún otro campo).
func (uc *ProductUseCase) ChangeStatus(ctx context.Context, actor entity.Actor, productID, newStatus string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Authorize(actor, authz.ActionChangeStatus, product.Scope()); err != nil {
		return nil, err
	}
	status, err := entity.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}
	if err := uc.products.UpdateStatus(product.ID, status); err != nil {
		return nil, err
	}
	product.Status = status
	return toProductResponse(product), nil
}

// Delete elimina físicamente el producto. Encargado del sector dueño o
// gerencia general (esta última sin restricción de alcance).
func (uc *ProductUseCase) Delete(ctx context.Context, actor entity.Actor, productID string) error {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := authz.Authorize(actor, authz.ActionDeleteProduct, product.Scope()); err != nil {
		return err
	}
	return uc.products.Delete(product.ID)
}

// StoreDashboard lista los productos vigentes de la tienda del gerente,
// separados por estado y ordenados por validad.
func (uc *ProductUseCase) StoreDashboard(ctx context.Context, actor entity.Actor) (*dto.StoreDashboardResponse, error) {
	if actor.Role != entity.RoleStoreManager {
		return nil, domain.ErrForbidden
	}
	today := startOfDay(uc.now())

	pending, err := uc.products.ListActive(repository.ActiveFilter{
		StoreID:   actor.Scope.StoreID,
		Status:    entity.StatusPendingMarkdown,
		HasStatus: true,
		Today:     today,
	})
	if err != nil {
		return nil, err
	}
	inMarkdown, err := uc.products.ListActive(repository.ActiveFilter{
		StoreID:   actor.Scope.StoreID,
		Status:    entity.StatusInMarkdown,
		HasStatus: true,
		Today:     today,
	})
	if err != nil {
		return nil, err
	}
	return &dto.StoreDashboardResponse{
		PendingMarkdown: toProductResponses(pending),
		InMarkdown:      toProductResponses(inMarkdown),
	}, nil
}

// DepartmentProducts lista los productos vigentes del sector del encargado,
// ordenados por validad.
func (uc *ProductUseCase) DepartmentProducts(ctx context.Context, actor entity.Actor) (*dto.ProductListResponse, error) {
	if actor.Role != entity.RoleDepartmentSupervisor {
		return nil, domain.ErrForbidden
	}
	list, err := uc.products.ListActive(repository.ActiveFilter{
		StoreID:      actor.Scope.StoreID,
		DepartmentID: actor.Scope.DepartmentID,
		Today:        startOfDay(uc.now()),
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: toProductResponses(list)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		PLU:            p.PLU,
		Quantity:       p.Quantity,
		Expiry:         p.Expiry.Format(dateLayout),
		Status:         string(p.Status),
		StatusLabel:    p.Status.Label(),
		RegisteredAt:   p.RegisteredAt,
		MarkdownReason: p.MarkdownReason,
		StoreID:        p.StoreID,
		DepartmentID:   p.DepartmentID,
		CreatedByID:    p.CreatedByID,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

// startOfDay trunca un instante al inicio de su día calendario local.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
