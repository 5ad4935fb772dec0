package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/muebleria/backend/internal/application/catalog"
)

// PricingHandler exposes price quotes and color availability
type PricingHandler struct {
	BaseHandler
	pricingService      *catalogapp.PricingService
	availabilityService *catalogapp.AvailabilityService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(
	pricingService *catalogapp.PricingService,
	availabilityService *catalogapp.AvailabilityService,
) *PricingHandler {
	return &PricingHandler{
		pricingService:      pricingService,
		availabilityService: availabilityService,
	}
}

// QuoteFurniture prices a furniture from its recipe
func (h *PricingHandler) QuoteFurniture(c *gin.Context) {
	furnitureID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid furniture ID format")
		return
	}

	quote, err := h.pricingService.QuoteFurniture(c.Request.Context(), furnitureID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}

// QuoteSet prices a set from its component recipes
func (h *PricingHandler) QuoteSet(c *gin.Context) {
	setID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid set ID format")
		return
	}

	quote, err := h.pricingService.QuoteSet(c.Request.Context(), setID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}

// QuoteProduct prices whatever the product is sold as
func (h *PricingHandler) QuoteProduct(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	quote, err := h.pricingService.QuoteProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}

// ProductAvailability returns the per-color availability of a product
func (h *PricingHandler) ProductAvailability(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	availability, err := h.availabilityService.ForProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, availability)
}

// SetAvailability returns the per-color bottleneck availability of a set
func (h *PricingHandler) SetAvailability(c *gin.Context) {
	setID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid set ID format")
		return
	}

	availability, err := h.availabilityService.ForSet(c.Request.Context(), setID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, availability)
}
