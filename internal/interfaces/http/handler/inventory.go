package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/muebleria/backend/internal/application/inventory"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/interfaces/http/dto"
)

// InventoryHandler exposes the derived stock view and the movement ledger
type InventoryHandler struct {
	BaseHandler
	stockService    *inventoryapp.StockService
	movementService *inventoryapp.MovementService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(
	stockService *inventoryapp.StockService,
	movementService *inventoryapp.MovementService,
) *InventoryHandler {
	return &InventoryHandler{
		stockService:    stockService,
		movementService: movementService,
	}
}

// StockOverview returns current stock per (product, color) pair
func (h *InventoryHandler) StockOverview(c *gin.Context) {
	stock, err := h.stockService.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// ProductStock returns the per-color stock rows of one product
func (h *InventoryHandler) ProductStock(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	stock, err := h.stockService.ForProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// LowStockAlerts lists materials at or below their advisory minimum
func (h *InventoryHandler) LowStockAlerts(c *gin.Context) {
	alerts, err := h.stockService.BelowMinimum(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, alerts)
}

// ListMovements returns a paginated slice of the movement ledger
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if productID := c.Query("product_id"); productID != "" {
		id, err := uuid.Parse(productID)
		if err != nil {
			h.BadRequest(c, "Invalid product_id filter")
			return
		}
		filter.Filters["product_id"] = id
	}
	if colorID := c.Query("color_id"); colorID != "" {
		id, err := uuid.Parse(colorID)
		if err != nil {
			h.BadRequest(c, "Invalid color_id filter")
			return
		}
		filter.Filters["color_id"] = id
	}
	if sourceType := c.Query("source_type"); sourceType != "" {
		filter.Filters["source_type"] = strings.ToUpper(sourceType)
	}

	page, err := h.movementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetMovement returns one ledger entry
func (h *InventoryHandler) GetMovement(c *gin.Context) {
	movementID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid movement ID format")
		return
	}

	movement, err := h.movementService.Get(c.Request.Context(), movementID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movement)
}

// MovementsBySource returns all ledger entries owned by one document
func (h *InventoryHandler) MovementsBySource(c *gin.Context) {
	sourceType := inventory.SourceType(strings.ToUpper(c.Param("type")))
	if !sourceType.IsValid() {
		h.BadRequest(c, "Invalid source type")
		return
	}

	sourceID, err := uuid.Parse(c.Param("source_id"))
	if err != nil {
		h.BadRequest(c, "Invalid source ID format")
		return
	}

	movements, err := h.movementService.ListBySource(c.Request.Context(), inventory.MovementSource{
		Type: sourceType,
		ID:   sourceID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movements)
}

// CreateAdjustment appends a manual correction entry to the ledger
func (h *InventoryHandler) CreateAdjustment(c *gin.Context) {
	var req inventoryapp.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movement, err := h.movementService.CreateAdjustment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// ReverseAdjustment appends a mirror entry undoing an adjustment
func (h *InventoryHandler) ReverseAdjustment(c *gin.Context) {
	movementID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid movement ID format")
		return
	}

	movement, err := h.movementService.ReverseAdjustment(c.Request.Context(), movementID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}
