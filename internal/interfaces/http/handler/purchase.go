package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tradeapp "github.com/muebleria/backend/internal/application/trade"
	"github.com/muebleria/backend/internal/interfaces/http/dto"
)

// PurchaseHandler exposes supplier purchases
type PurchaseHandler struct {
	BaseHandler
	purchaseService *tradeapp.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchaseService *tradeapp.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create records a purchase and its restocking movements
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req tradeapp.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, purchase)
}

// Update replaces a purchase's lines and rebuilds its movements
func (h *PurchaseHandler) Update(c *gin.Context) {
	purchaseID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID format")
		return
	}

	var req tradeapp.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchase, err := h.purchaseService.Update(c.Request.Context(), purchaseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, purchase)
}

// Delete removes a purchase together with its movements
func (h *PurchaseHandler) Delete(c *gin.Context) {
	purchaseID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID format")
		return
	}

	if err := h.purchaseService.Delete(c.Request.Context(), purchaseID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Get returns one purchase with its items
func (h *PurchaseHandler) Get(c *gin.Context) {
	purchaseID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID format")
		return
	}

	purchase, err := h.purchaseService.Get(c.Request.Context(), purchaseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, purchase)
}

// List returns a paginated purchase listing
func (h *PurchaseHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		id, err := uuid.Parse(supplierID)
		if err != nil {
			h.BadRequest(c, "Invalid supplier_id filter")
			return
		}
		filter.Filters["supplier_id"] = id
	}

	page, err := h.purchaseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
