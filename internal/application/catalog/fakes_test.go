package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
)

// memoryStore is a map-backed shared.Repository used by the service
// tests. The id function extracts the key from a stored entity.
type memoryStore[T any] struct {
	mu    sync.Mutex
	items map[uuid.UUID]*T
	id    func(*T) uuid.UUID
}

func newMemoryStore[T any](id func(*T) uuid.UUID) *memoryStore[T] {
	return &memoryStore[T]{items: make(map[uuid.UUID]*T), id: id}
}

func (s *memoryStore[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (s *memoryStore[T]) FindAll(_ context.Context, _ shared.Filter) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]T, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, *item)
	}
	return result, nil
}

func (s *memoryStore[T]) Save(_ context.Context, entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[s.id(entity)] = entity
	return nil
}

func (s *memoryStore[T]) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memoryStore[T]) Count(_ context.Context, _ shared.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.items)), nil
}

func (s *memoryStore[T]) find(match func(*T) bool) (*T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if match(item) {
			return item, true
		}
	}
	return nil, false
}

type memoryProductRepo struct {
	*memoryStore[catalog.Product]
}

func (r *memoryProductRepo) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	if product, ok := r.find(func(p *catalog.Product) bool { return p.Code == code }); ok {
		return product, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryProductRepo) FindSellable(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	all, err := r.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	var result []catalog.Product
	for _, product := range all {
		if product.Sell {
			result = append(result, product)
		}
	}
	return result, nil
}

var _ catalog.ProductRepository = (*memoryProductRepo)(nil)

type memoryMaterialRepo struct {
	*memoryStore[catalog.Material]
}

func (r *memoryMaterialRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*catalog.Material, error) {
	if material, ok := r.find(func(m *catalog.Material) bool { return m.ProductID == productID }); ok {
		return material, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryMaterialRepo) FindBelowMinStock(_ context.Context) ([]catalog.Material, error) {
	return nil, nil
}

var _ catalog.MaterialRepository = (*memoryMaterialRepo)(nil)

type memoryFurnitureRepo struct {
	*memoryStore[catalog.Furniture]
}

func (r *memoryFurnitureRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*catalog.Furniture, error) {
	if furniture, ok := r.find(func(f *catalog.Furniture) bool { return f.ProductID == productID }); ok {
		return furniture, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryFurnitureRepo) FindByIDHydrated(ctx context.Context, id uuid.UUID) (*catalog.Furniture, error) {
	return r.FindByID(ctx, id)
}

var _ catalog.FurnitureRepository = (*memoryFurnitureRepo)(nil)

type memorySetRepo struct {
	*memoryStore[catalog.Set]
}

func (r *memorySetRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*catalog.Set, error) {
	if set, ok := r.find(func(s *catalog.Set) bool { return s.ProductID == productID }); ok {
		return set, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memorySetRepo) FindByIDHydrated(ctx context.Context, id uuid.UUID) (*catalog.Set, error) {
	return r.FindByID(ctx, id)
}

var _ catalog.SetRepository = (*memorySetRepo)(nil)

type memoryColorRepo struct {
	*memoryStore[catalog.Color]
}

func (r *memoryColorRepo) FindByName(_ context.Context, name string) (*catalog.Color, error) {
	if color, ok := r.find(func(c *catalog.Color) bool { return c.Name == name }); ok {
		return color, nil
	}
	return nil, shared.ErrNotFound
}

var _ catalog.ColorRepository = (*memoryColorRepo)(nil)

type memoryLaborRepo struct {
	*memoryStore[catalog.Labor]
}

var _ catalog.LaborRepository = (*memoryLaborRepo)(nil)

type memoryMaterialTypeRepo struct {
	*memoryStore[catalog.MaterialType]
}

func (r *memoryMaterialTypeRepo) FindByName(_ context.Context, name string) (*catalog.MaterialType, error) {
	if materialType, ok := r.find(func(t *catalog.MaterialType) bool { return t.Name == name }); ok {
		return materialType, nil
	}
	return nil, shared.ErrNotFound
}

var _ catalog.MaterialTypeRepository = (*memoryMaterialTypeRepo)(nil)

// memoryStockView serves canned stock rows keyed by product ID
type memoryStockView struct {
	rows map[uuid.UUID][]inventory.ProductStock
}

func newMemoryStockView() *memoryStockView {
	return &memoryStockView{rows: make(map[uuid.UUID][]inventory.ProductStock)}
}

func (v *memoryStockView) All(_ context.Context) ([]inventory.ProductStock, error) {
	var result []inventory.ProductStock
	for _, rows := range v.rows {
		result = append(result, rows...)
	}
	return result, nil
}

func (v *memoryStockView) ForProduct(_ context.Context, productID uuid.UUID) ([]inventory.ProductStock, error) {
	return v.rows[productID], nil
}

func (v *memoryStockView) ForProducts(_ context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]inventory.ProductStock, error) {
	result := make(map[uuid.UUID][]inventory.ProductStock, len(productIDs))
	for _, id := range productIDs {
		result[id] = v.rows[id]
	}
	return result, nil
}

var _ inventory.StockViewRepository = (*memoryStockView)(nil)

// testEnv bundles the fakes behind a NoOpTransactionScope
type testEnv struct {
	scope         *NoOpTransactionScope
	products      *memoryProductRepo
	materials     *memoryMaterialRepo
	furnitures    *memoryFurnitureRepo
	sets          *memorySetRepo
	colors        *memoryColorRepo
	labors        *memoryLaborRepo
	materialTypes *memoryMaterialTypeRepo
	stocks        *memoryStockView
}

func newTestEnv() *testEnv {
	env := &testEnv{
		products:      &memoryProductRepo{newMemoryStore(func(p *catalog.Product) uuid.UUID { return p.ID })},
		materials:     &memoryMaterialRepo{newMemoryStore(func(m *catalog.Material) uuid.UUID { return m.ID })},
		furnitures:    &memoryFurnitureRepo{newMemoryStore(func(f *catalog.Furniture) uuid.UUID { return f.ID })},
		sets:          &memorySetRepo{newMemoryStore(func(s *catalog.Set) uuid.UUID { return s.ID })},
		colors:        &memoryColorRepo{newMemoryStore(func(c *catalog.Color) uuid.UUID { return c.ID })},
		labors:        &memoryLaborRepo{newMemoryStore(func(l *catalog.Labor) uuid.UUID { return l.ID })},
		materialTypes: &memoryMaterialTypeRepo{newMemoryStore(func(t *catalog.MaterialType) uuid.UUID { return t.ID })},
		stocks:        newMemoryStockView(),
	}
	env.scope = NewNoOpTransactionScope(
		env.products, env.materials, env.furnitures, env.sets,
		env.colors, env.labors, env.materialTypes,
	)
	return env
}
