package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/muebleria/backend/internal/application/trade"
	"github.com/muebleria/backend/internal/interfaces/http/dto"
)

// OrderHandler exposes order placement and the payment review flow
type OrderHandler struct {
	BaseHandler
	orderService   *tradeapp.OrderService
	paymentService *tradeapp.PaymentService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(
	orderService *tradeapp.OrderService,
	paymentService *tradeapp.PaymentService,
) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		paymentService: paymentService,
	}
}

// Create places an order, expanding sets into component movements
func (h *OrderHandler) Create(c *gin.Context) {
	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// Get returns one order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List returns a paginated order listing
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Cancel cancels a pending order and reverses its ledger entries
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete removes an order together with its movements and payments
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), orderID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SubmitPayment attaches a payment to an order for review
func (h *OrderHandler) SubmitPayment(c *gin.Context) {
	orderID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req tradeapp.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Submit(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, payment)
}

// ListPayments returns an order's payments in submission order
func (h *OrderHandler) ListPayments(c *gin.Context) {
	orderID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	payments, err := h.paymentService.ListForOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// VerifyPaymentRequest carries the reviewer's decision
type VerifyPaymentRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// VerifyPayment approves or rejects a pending payment, moving the
// order's status accordingly.
func (h *OrderHandler) VerifyPayment(c *gin.Context) {
	paymentID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.paymentService.Verify(c.Request.Context(), paymentID, *req.Approved)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
