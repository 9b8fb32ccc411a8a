package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product

	lastActiveFilters []repository.ActiveFilter
	failCreate        error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.products[p.ID]
	if !ok {
		return errors.New("producto inexistente")
	}
	stored.Name = p.Name
	stored.PLU = p.PLU
	stored.Quantity = p.Quantity
	stored.Expiry = p.Expiry
	stored.MarkdownReason = p.MarkdownReason
	return nil
}

func (f *fakeProductRepo) UpdateStatus(id string, status entity.ProductStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.products[id]
	if !ok {
		return errors.New("producto inexistente")
	}
	stored.Status = status
	return nil
}

func (f *fakeProductRepo) ListActive(filter repository.ActiveFilter) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastActiveFilters = append(f.lastActiveFilters, filter)
	var out []*entity.Product
	for _, p := range f.products {
		if p.StoreID != filter.StoreID || p.Expiry.Before(filter.Today) {
			continue
		}
		if filter.DepartmentID != "" && p.DepartmentID != filter.DepartmentID {
			continue
		}
		if filter.HasStatus && p.Status != filter.Status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

type fakeCatalogRepo struct {
	mu      sync.Mutex
	entries map[string]*entity.CatalogEntry

	failUpsert error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{entries: map[string]*entity.CatalogEntry{}}
}

func (f *fakeCatalogRepo) Upsert(e *entity.CatalogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpsert != nil {
		return f.failUpsert
	}
	cp := *e
	f.entries[e.Barcode] = &cp
	return nil
}

func (f *fakeCatalogRepo) GetByBarcode(barcode string) (*entity.CatalogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[barcode]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

// fakeTxRunner simula la transacción: si el callback falla, descarta las
// escrituras hechas dentro (restaurando los mapas previos).
type fakeTxRunner struct {
	products *fakeProductRepo
	catalog  *fakeCatalogRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	catalog repository.CatalogRepository,
) error) error {
	prevProducts := map[string]*entity.Product{}
	for k, v := range f.products.products {
		cp := *v
		prevProducts[k] = &cp
	}
	prevEntries := map[string]*entity.CatalogEntry{}
	for k, v := range f.catalog.entries {
		cp := *v
		prevEntries[k] = &cp
	}
	if err := fn(f.products, f.catalog); err != nil {
		f.products.products = prevProducts
		f.catalog.entries = prevEntries
		return err
	}
	return nil
}

type fakeDepartmentRepo struct {
	departments map[string]*entity.Department
}

func newFakeDepartmentRepo(depts ...*entity.Department) *fakeDepartmentRepo {
	f := &fakeDepartmentRepo{departments: map[string]*entity.Department{}}
	for _, d := range depts {
		f.departments[d.ID] = d
	}
	return f
}

func (f *fakeDepartmentRepo) Create(d *entity.Department) error {
	f.departments[d.ID] = d
	return nil
}

func (f *fakeDepartmentRepo) GetByID(id string) (*entity.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (f *fakeDepartmentRepo) GetByName(name string) (*entity.Department, error) {
	for _, d := range f.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDepartmentRepo) List() ([]*entity.Department, error) {
	var out []*entity.Department
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) Delete(id string) error {
	delete(f.departments, id)
	return nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	f := &fakeStoreRepo{stores: map[string]*entity.Store{}}
	for _, s := range stores {
		f.stores[s.ID] = s
	}
	return f
}

func (f *fakeStoreRepo) Create(s *entity.Store) error {
	f.stores[s.ID] = s
	return nil
}

func (f *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStoreRepo) GetByName(name string) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) Update(s *entity.Store) error {
	f.stores[s.ID] = s
	return nil
}

func (f *fakeStoreRepo) List() ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range f.stores {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStoreRepo) Delete(id string) error {
	delete(f.stores, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) ListStaff() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == entity.RoleGeneralManager {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) CountByStore(storeID string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.Scope.StoreID == storeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

// fakeReportRepo captura los filtros recibidos y devuelve filas preparadas.
type fakeReportRepo struct {
	rows    []repository.RegistrationRow
	expired []*entity.Product

	lastRegistrationFilter repository.RegistrationFilter
	lastExpiredFilter      repository.ExpiredFilter
}

func (f *fakeReportRepo) RegisteredBetween(_ context.Context, filter repository.RegistrationFilter) ([]repository.RegistrationRow, error) {
	f.lastRegistrationFilter = filter
	return f.rows, nil
}

func (f *fakeReportRepo) Expired(_ context.Context, filter repository.ExpiredFilter) ([]*entity.Product, error) {
	f.lastExpiredFilter = filter
	return f.expired, nil
}
