package trade

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/finance"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/trade"
)

// In-memory fakes backing the NoOpTransactionScope in service tests.

type memoryOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*trade.Order
	serial int
}

func newMemoryOrderRepo() *memoryOrderRepo {
	return &memoryOrderRepo{orders: make(map[uuid.UUID]*trade.Order)}
}

func (r *memoryOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return order, nil
}

func (r *memoryOrderRepo) FindByCode(_ context.Context, code string) (*trade.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.Code == code {
			return order, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]trade.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]trade.Order, 0, len(r.orders))
	for _, order := range r.orders {
		result = append(result, *order)
	}
	return result, nil
}

func (r *memoryOrderRepo) Save(_ context.Context, order *trade.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return nil
}

func (r *memoryOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *memoryOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *memoryOrderRepo) GenerateCode(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serial++
	return fmt.Sprintf("ORD%07d", r.serial), nil
}

var _ trade.OrderRepository = (*memoryOrderRepo)(nil)

type memoryPaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*trade.Payment
}

func newMemoryPaymentRepo() *memoryPaymentRepo {
	return &memoryPaymentRepo{payments: make(map[uuid.UUID]*trade.Payment)}
}

func (r *memoryPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return payment, nil
}

func (r *memoryPaymentRepo) FindAll(_ context.Context, _ shared.Filter) ([]trade.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]trade.Payment, 0, len(r.payments))
	for _, payment := range r.payments {
		result = append(result, *payment)
	}
	return result, nil
}

func (r *memoryPaymentRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) ([]trade.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []trade.Payment
	for _, payment := range r.payments {
		if payment.OrderID == orderID {
			result = append(result, *payment)
		}
	}
	return result, nil
}

func (r *memoryPaymentRepo) Save(_ context.Context, payment *trade.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = payment
	return nil
}

func (r *memoryPaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.payments, id)
	return nil
}

func (r *memoryPaymentRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.payments)), nil
}

var _ trade.PaymentRepository = (*memoryPaymentRepo)(nil)

type memoryPurchaseRepo struct {
	mu        sync.Mutex
	purchases map[uuid.UUID]*trade.Purchase
}

func newMemoryPurchaseRepo() *memoryPurchaseRepo {
	return &memoryPurchaseRepo{purchases: make(map[uuid.UUID]*trade.Purchase)}
}

func (r *memoryPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	purchase, ok := r.purchases[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return purchase, nil
}

func (r *memoryPurchaseRepo) FindByCode(_ context.Context, code string) (*trade.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, purchase := range r.purchases {
		if purchase.Code == code {
			return purchase, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryPurchaseRepo) FindAll(_ context.Context, _ shared.Filter) ([]trade.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]trade.Purchase, 0, len(r.purchases))
	for _, purchase := range r.purchases {
		result = append(result, *purchase)
	}
	return result, nil
}

func (r *memoryPurchaseRepo) Save(_ context.Context, purchase *trade.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *memoryPurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.purchases[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.purchases, id)
	return nil
}

func (r *memoryPurchaseRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.purchases)), nil
}

func (r *memoryPurchaseRepo) DeleteItems(_ context.Context, purchaseID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if purchase, ok := r.purchases[purchaseID]; ok {
		purchase.Items = nil
	}
	return nil
}

var _ trade.PurchaseRepository = (*memoryPurchaseRepo)(nil)

type memoryMovementRepo struct {
	mu        sync.Mutex
	movements map[uuid.UUID]*inventory.ProductMovement
}

func newMemoryMovementRepo() *memoryMovementRepo {
	return &memoryMovementRepo{movements: make(map[uuid.UUID]*inventory.ProductMovement)}
}

func (r *memoryMovementRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.ProductMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	movement, ok := r.movements[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return movement, nil
}

func (r *memoryMovementRepo) FindAll(_ context.Context, _ shared.Filter) ([]inventory.ProductMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]inventory.ProductMovement, 0, len(r.movements))
	for _, movement := range r.movements {
		result = append(result, *movement)
	}
	return result, nil
}

func (r *memoryMovementRepo) FindBySource(_ context.Context, source inventory.MovementSource) ([]inventory.ProductMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []inventory.ProductMovement
	for _, movement := range r.movements {
		if movement.Source == source {
			result = append(result, *movement)
		}
	}
	return result, nil
}

func (r *memoryMovementRepo) Create(_ context.Context, movement *inventory.ProductMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements[movement.ID] = movement
	return nil
}

func (r *memoryMovementRepo) CreateBatch(ctx context.Context, movements []*inventory.ProductMovement) error {
	for _, movement := range movements {
		if err := r.Create(ctx, movement); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryMovementRepo) DeleteBySource(_ context.Context, source inventory.MovementSource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, movement := range r.movements {
		if movement.Source == source {
			delete(r.movements, id)
		}
	}
	return nil
}

func (r *memoryMovementRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.movements, id)
	return nil
}

func (r *memoryMovementRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.movements)), nil
}

func (r *memoryMovementRepo) all() []inventory.ProductMovement {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]inventory.ProductMovement, 0, len(r.movements))
	for _, movement := range r.movements {
		result = append(result, *movement)
	}
	return result
}

var _ inventory.ProductMovementRepository = (*memoryMovementRepo)(nil)

type memoryInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[uuid.UUID]*finance.Invoice
}

func newMemoryInvoiceRepo() *memoryInvoiceRepo {
	return &memoryInvoiceRepo{invoices: make(map[uuid.UUID]*finance.Invoice)}
}

func (r *memoryInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return invoice, nil
}

func (r *memoryInvoiceRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*finance.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, invoice := range r.invoices {
		if invoice.OrderID == orderID {
			return invoice, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryInvoiceRepo) NextNumber(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for _, invoice := range r.invoices {
		if invoice.Number > max {
			max = invoice.Number
		}
	}
	return max + 1, nil
}

func (r *memoryInvoiceRepo) Create(_ context.Context, invoice *finance.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invoices {
		if existing.Number == invoice.Number || existing.OrderID == invoice.OrderID {
			return shared.ErrAlreadyExists
		}
	}
	r.invoices[invoice.ID] = invoice
	return nil
}

var _ finance.InvoiceRepository = (*memoryInvoiceRepo)(nil)

type memoryProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*catalog.Product
}

func newMemoryProductRepo() *memoryProductRepo {
	return &memoryProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *memoryProductRepo) add(product *catalog.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
}

func (r *memoryProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

func (r *memoryProductRepo) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range r.products {
		if product.Code == code {
			return product, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]catalog.Product, 0, len(r.products))
	for _, product := range r.products {
		result = append(result, *product)
	}
	return result, nil
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

func (r *memoryProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return nil
}

func (r *memoryProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memoryProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

var _ catalog.ProductRepository = (*memoryProductRepo)(nil)

type memorySetRepo struct {
	mu   sync.Mutex
	sets map[uuid.UUID]*catalog.Set // keyed by product ID
}

func newMemorySetRepo() *memorySetRepo {
	return &memorySetRepo{sets: make(map[uuid.UUID]*catalog.Set)}
}

func (r *memorySetRepo) add(set *catalog.Set) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[set.ProductID] = set
}

func (r *memorySetRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, set := range r.sets {
		if set.ID == id {
			return set, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memorySetRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*catalog.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sets[productID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return set, nil
}

func (r *memorySetRepo) FindByIDHydrated(ctx context.Context, id uuid.UUID) (*catalog.Set, error) {
	return r.FindByID(ctx, id)
}

func (r *memorySetRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]catalog.Set, 0, len(r.sets))
	for _, set := range r.sets {
		result = append(result, *set)
	}
	return result, nil
}

func (r *memorySetRepo) Save(_ context.Context, set *catalog.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[set.ProductID] = set
	return nil
}

func (r *memorySetRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for productID, set := range r.sets {
		if set.ID == id {
			delete(r.sets, productID)
		}
	}
	return nil
}

func (r *memorySetRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sets)), nil
}

var _ catalog.SetRepository = (*memorySetRepo)(nil)

// testEnv bundles the fakes behind a NoOpTransactionScope
type testEnv struct {
	scope     *NoOpTransactionScope
	orders    *memoryOrderRepo
	payments  *memoryPaymentRepo
	purchases *memoryPurchaseRepo
	movements *memoryMovementRepo
	invoices  *memoryInvoiceRepo
	products  *memoryProductRepo
	sets      *memorySetRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		orders:    newMemoryOrderRepo(),
		payments:  newMemoryPaymentRepo(),
		purchases: newMemoryPurchaseRepo(),
		movements: newMemoryMovementRepo(),
		invoices:  newMemoryInvoiceRepo(),
		products:  newMemoryProductRepo(),
		sets:      newMemorySetRepo(),
	}
	env.scope = NewNoOpTransactionScope(env.orders, env.payments, env.purchases, env.movements, env.invoices)
	return env
}
