package finance

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/finance"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
	"github.com/muebleria/backend/internal/domain/trade"
)

// In-memory fakes for invoice and exchange rate tests. The trade-side
// repositories not touched by invoicing stay nil in the scope.

type memoryOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*trade.Order
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
	delete(r.orders, id)
	return nil
}

func (r *memoryOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *memoryOrderRepo) GenerateCode(_ context.Context) (string, error) {
	return "ORD0000001", nil
}

var _ trade.OrderRepository = (*memoryOrderRepo)(nil)

type memoryInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[uuid.UUID]*finance.Invoice

	// pending Create calls that fail as if a concurrent transaction
	// had taken the allocated number first
	createConflicts int
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
	if r.createConflicts > 0 {
		r.createConflicts--
		return shared.ErrAlreadyExists
	}
	for _, existing := range r.invoices {
		if existing.Number == invoice.Number || existing.OrderID == invoice.OrderID {
			return shared.ErrAlreadyExists
		}
	}
	r.invoices[invoice.ID] = invoice
	return nil
}

var _ finance.InvoiceRepository = (*memoryInvoiceRepo)(nil)

type memoryRateRepo struct {
	mu    sync.Mutex
	rates map[valueobject.Currency]*finance.ExchangeRate
}

func newMemoryRateRepo() *memoryRateRepo {
	return &memoryRateRepo{rates: make(map[valueobject.Currency]*finance.ExchangeRate)}
}

func (r *memoryRateRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.ExchangeRate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rate := range r.rates {
		if rate.ID == id {
			return rate, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRateRepo) FindAll(_ context.Context, _ shared.Filter) ([]finance.ExchangeRate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]finance.ExchangeRate, 0, len(r.rates))
	for _, rate := range r.rates {
		result = append(result, *rate)
	}
	return result, nil
}

func (r *memoryRateRepo) Save(_ context.Context, rate *finance.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates[rate.Currency] = rate
	return nil
}

func (r *memoryRateRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for currency, rate := range r.rates {
		if rate.ID == id {
			delete(r.rates, currency)
		}
	}
	return nil
}

func (r *memoryRateRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rates)), nil
}

func (r *memoryRateRepo) FindByCurrency(_ context.Context, currency valueobject.Currency) (*finance.ExchangeRate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rate, ok := r.rates[currency]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return rate, nil
}

func (r *memoryRateRepo) FindBase(_ context.Context) (*finance.ExchangeRate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rate := range r.rates {
		if rate.IsBase {
			return rate, nil
		}
	}
	return nil, shared.ErrNotFound
}

var _ finance.ExchangeRateRepository = (*memoryRateRepo)(nil)

// mapRateCache is a RateCache backed by a plain map, recording hits
type mapRateCache struct {
	mu    sync.Mutex
	rates map[valueobject.Currency]decimal.Decimal
	hits  int
}

func newMapRateCache() *mapRateCache {
	return &mapRateCache{rates: make(map[valueobject.Currency]decimal.Decimal)}
}

func (c *mapRateCache) Get(_ context.Context, currency valueobject.Currency) (decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rate, ok := c.rates[currency]
	if !ok {
		return decimal.Zero, shared.ErrNotFound
	}
	c.hits++
	return rate, nil
}

func (c *mapRateCache) Set(_ context.Context, currency valueobject.Currency, rate decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates[currency] = rate
	return nil
}

func (c *mapRateCache) Invalidate(_ context.Context, currency valueobject.Currency) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rates, currency)
	return nil
}

var _ RateCache = (*mapRateCache)(nil)
