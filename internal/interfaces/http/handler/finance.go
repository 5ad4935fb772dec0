package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	financeapp "github.com/muebleria/backend/internal/application/finance"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
)

// FinanceHandler exposes exchange rates and invoices
type FinanceHandler struct {
	BaseHandler
	exchangeService *financeapp.ExchangeService
	invoiceService  *financeapp.InvoiceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(
	exchangeService *financeapp.ExchangeService,
	invoiceService *financeapp.InvoiceService,
) *FinanceHandler {
	return &FinanceHandler{
		exchangeService: exchangeService,
		invoiceService:  invoiceService,
	}
}

func parseCurrency(c *gin.Context) (valueobject.Currency, bool) {
	code := strings.ToUpper(c.Param("currency"))
	if len(code) != 3 {
		return "", false
	}
	return valueobject.Currency(code), true
}

// RateRequest carries a currency's conversion rate
type RateRequest struct {
	Currency string          `json:"currency" binding:"required,currencycode"`
	Rate     decimal.Decimal `json:"rate" binding:"required"`
}

// ListRates returns all exchange rates
func (h *FinanceHandler) ListRates(c *gin.Context) {
	rates, err := h.exchangeService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rates)
}

// GetRate returns the current conversion rate for one currency
func (h *FinanceHandler) GetRate(c *gin.Context) {
	currency, ok := parseCurrency(c)
	if !ok {
		h.BadRequest(c, "Invalid currency code")
		return
	}

	rate, err := h.exchangeService.Rate(c.Request.Context(), currency)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"currency": currency, "rate": rate})
}

// CreateRate registers a conversion rate for a new currency
func (h *FinanceHandler) CreateRate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.exchangeService.CreateRate(c.Request.Context(),
		valueobject.Currency(strings.ToUpper(req.Currency)), req.Rate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, rate)
}

// UpdateRateRequest carries the new conversion rate
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// UpdateRate changes a currency's conversion rate. The base currency
// rate is immutable.
func (h *FinanceHandler) UpdateRate(c *gin.Context) {
	currency, ok := parseCurrency(c)
	if !ok {
		h.BadRequest(c, "Invalid currency code")
		return
	}

	var req UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.exchangeService.UpdateRate(c.Request.Context(), currency, req.Rate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rate)
}

// GetInvoice returns one invoice
func (h *FinanceHandler) GetInvoice(c *gin.Context) {
	invoiceID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// GetInvoiceByOrder returns the invoice issued for an order
func (h *FinanceHandler) GetInvoiceByOrder(c *gin.Context) {
	orderID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	invoice, err := h.invoiceService.GetByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}
