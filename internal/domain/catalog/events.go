package catalog

import (
	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeProduct   = "Product"
	AggregateTypeFurniture = "Furniture"
)

// Event type constants
const (
	EventTypeProductCreated         = "ProductCreated"
	EventTypeProductUpdated         = "ProductUpdated"
	EventTypeFurnitureRecipeChanged = "FurnitureRecipeChanged"
)

// ProductCreatedEvent is raised when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID   `json:"product_id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Kind      ProductKind `json:"kind"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Code:            product.Code,
		Name:            product.Name,
		Kind:            product.Kind,
	}
}

// EventType returns the event type name
func (e *ProductCreatedEvent) EventType() string {
	return EventTypeProductCreated
}

// ProductUpdatedEvent is raised when a product's attributes change
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Code:            product.Code,
		Name:            product.Name,
	}
}

// EventType returns the event type name
func (e *ProductUpdatedEvent) EventType() string {
	return EventTypeProductUpdated
}

// FurnitureRecipeChangedEvent is raised when a furniture's BOM is replaced.
// Price quotes computed before this event are stale.
type FurnitureRecipeChangedEvent struct {
	shared.BaseDomainEvent
	FurnitureID   uuid.UUID `json:"furniture_id"`
	ProductID     uuid.UUID `json:"product_id"`
	MaterialLines int       `json:"material_lines"`
	LaborLines    int       `json:"labor_lines"`
}

// NewFurnitureRecipeChangedEvent creates a new FurnitureRecipeChangedEvent
func NewFurnitureRecipeChangedEvent(furniture *Furniture) *FurnitureRecipeChangedEvent {
	return &FurnitureRecipeChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFurnitureRecipeChanged, AggregateTypeFurniture, furniture.ID),
		FurnitureID:     furniture.ID,
		ProductID:       furniture.ProductID,
		MaterialLines:   len(furniture.Materials),
		LaborLines:      len(furniture.Labors),
	}
}

// EventType returns the event type name
func (e *FurnitureRecipeChangedEvent) EventType() string {
	return EventTypeFurnitureRecipeChanged
}
