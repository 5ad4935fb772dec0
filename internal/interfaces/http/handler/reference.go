package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/muebleria/backend/internal/application/catalog"
	"github.com/muebleria/backend/internal/interfaces/http/dto"
)

// ReferenceHandler exposes the catalog's reference data: colors, labor
// entries and material type tags.
type ReferenceHandler struct {
	BaseHandler
	referenceService *catalogapp.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(referenceService *catalogapp.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// CreateColor registers a new color
func (h *ReferenceHandler) CreateColor(c *gin.Context) {
	var req catalogapp.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	color, err := h.referenceService.CreateColor(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, color)
}

// UpdateColor updates a color's attributes
func (h *ReferenceHandler) UpdateColor(c *gin.Context) {
	colorID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid color ID format")
		return
	}

	var req catalogapp.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	color, err := h.referenceService.UpdateColor(c.Request.Context(), colorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, color)
}

// DeleteColor removes a color
func (h *ReferenceHandler) DeleteColor(c *gin.Context) {
	colorID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid color ID format")
		return
	}

	if err := h.referenceService.DeleteColor(c.Request.Context(), colorID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListColors returns all colors, optionally filtered by search
func (h *ReferenceHandler) ListColors(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	colors, err := h.referenceService.ListColors(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, colors)
}

// CreateLabor registers a new labor entry
func (h *ReferenceHandler) CreateLabor(c *gin.Context) {
	var req catalogapp.LaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	labor, err := h.referenceService.CreateLabor(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, labor)
}

// UpdateLabor updates a labor entry
func (h *ReferenceHandler) UpdateLabor(c *gin.Context) {
	laborID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid labor ID format")
		return
	}

	var req catalogapp.LaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	labor, err := h.referenceService.UpdateLabor(c.Request.Context(), laborID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, labor)
}

// DeleteLabor removes a labor entry
func (h *ReferenceHandler) DeleteLabor(c *gin.Context) {
	laborID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid labor ID format")
		return
	}

	if err := h.referenceService.DeleteLabor(c.Request.Context(), laborID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListLabors returns all labor entries
func (h *ReferenceHandler) ListLabors(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	labors, err := h.referenceService.ListLabors(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, labors)
}

// MaterialTypeRequest carries a material type's name
type MaterialTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateMaterialType registers a new material type tag
func (h *ReferenceHandler) CreateMaterialType(c *gin.Context) {
	var req MaterialTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	materialType, err := h.referenceService.CreateMaterialType(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, materialType)
}

// DeleteMaterialType removes a material type tag
func (h *ReferenceHandler) DeleteMaterialType(c *gin.Context) {
	typeID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid material type ID format")
		return
	}

	if err := h.referenceService.DeleteMaterialType(c.Request.Context(), typeID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListMaterialTypes returns all material type tags
func (h *ReferenceHandler) ListMaterialTypes(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	types, err := h.referenceService.ListMaterialTypes(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}
