package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/muebleria/backend/internal/application/catalog"
	"github.com/muebleria/backend/internal/interfaces/http/dto"
)

// CatalogHandler exposes the product catalog: materials, furnitures,
// sets and the products they are sold under.
type CatalogHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(productService *catalogapp.ProductService) *CatalogHandler {
	return &CatalogHandler{productService: productService}
}

// CreateMaterial registers a material with its product identity
func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	var req catalogapp.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	material, err := h.productService.CreateMaterial(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, material)
}

// CreateFurniture registers a furniture with its recipe
func (h *CatalogHandler) CreateFurniture(c *gin.Context) {
	var req catalogapp.CreateFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	furniture, err := h.productService.CreateFurniture(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, furniture)
}

// UpdateFurnitureRecipe replaces a furniture's recipe and percentages
func (h *CatalogHandler) UpdateFurnitureRecipe(c *gin.Context) {
	furnitureID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid furniture ID format")
		return
	}

	var req catalogapp.CreateFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	furniture, err := h.productService.UpdateFurnitureRecipe(c.Request.Context(), furnitureID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, furniture)
}

// CreateSet registers a set of furnitures
func (h *CatalogHandler) CreateSet(c *gin.Context) {
	var req catalogapp.CreateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	set, err := h.productService.CreateSet(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, set)
}

// UpdateSetComponents replaces a set's component furnitures
func (h *CatalogHandler) UpdateSetComponents(c *gin.Context) {
	setID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid set ID format")
		return
	}

	var req catalogapp.CreateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	set, err := h.productService.UpdateSetComponents(c.Request.Context(), setID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, set)
}

// GetProduct returns one product
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ListProducts returns a paginated product listing
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if kind := c.Query("kind"); kind != "" {
		filter.Filters["kind"] = kind
	}

	page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListSellable returns products currently offered for sale
func (h *CatalogHandler) ListSellable(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.productService.ListSellable(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// UpdateProduct updates a product's shared attributes
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ReplaceColorsRequest carries the full color id list for a product
type ReplaceColorsRequest struct {
	ColorIDs []uuid.UUID `json:"color_ids" binding:"required"`
}

// ReplaceColors replaces the set of colors a product is offered in
func (h *CatalogHandler) ReplaceColors(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req ReplaceColorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.ReplaceColors(c.Request.Context(), productID, req.ColorIDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// DeleteProduct removes a product and its catalog entry
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
