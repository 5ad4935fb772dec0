package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// FurnitureMaterial is the BOM line joining a furniture to one of its
// materials. Quantity is the amount of material consumed per unit built.
// ColorID optionally pins the line to a specific finish of the material.
type FurnitureMaterial struct {
	FurnitureID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MaterialID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ColorID     *uuid.UUID      `gorm:"type:uuid"`
	Material    *Material       `gorm:"foreignKey:MaterialID"`
}

// TableName returns the table name for GORM
func (FurnitureMaterial) TableName() string {
	return "furnitures_materials"
}

// FurnitureLabor is the BOM line joining a furniture to a labor task.
// Days is the labor-days consumed per unit built.
type FurnitureLabor struct {
	FurnitureID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LaborID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Days        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Labor       *Labor          `gorm:"foreignKey:LaborID"`
}

// TableName returns the table name for GORM
func (FurnitureLabor) TableName() string {
	return "furnitures_labors"
}

// Furniture is a manufactured item composed of materials and labor.
// The three percentages drive the pricing formulas; absent means zero.
type Furniture struct {
	shared.BaseAggregateRoot
	ProductID   uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	ProfitPer   decimal.Decimal     `gorm:"type:decimal(5,2);not null;default:0"`
	PaintPer    decimal.Decimal     `gorm:"type:decimal(5,2);not null;default:0"`
	LaborFabPer decimal.Decimal     `gorm:"type:decimal(5,2);not null;default:0"`
	Materials   []FurnitureMaterial `gorm:"foreignKey:FurnitureID"`
	Labors      []FurnitureLabor    `gorm:"foreignKey:FurnitureID"`
	Product     *Product            `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Furniture) TableName() string {
	return "furnitures"
}

// NewFurniture creates a new furniture for the given product identity
func NewFurniture(productID uuid.UUID) (*Furniture, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Furniture requires a product identity")
	}

	return &Furniture{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		ProfitPer:         decimal.Zero,
		PaintPer:          decimal.Zero,
		LaborFabPer:       decimal.Zero,
	}, nil
}

// SetMarkups sets the pricing percentages
func (f *Furniture) SetMarkups(profitPer, paintPer, laborFabPer decimal.Decimal) error {
	if err := validatePercent("profit_per", profitPer); err != nil {
		return err
	}
	if err := validatePercent("paint_per", paintPer); err != nil {
		return err
	}
	if err := validatePercent("labor_fab_per", laborFabPer); err != nil {
		return err
	}

	f.ProfitPer = profitPer
	f.PaintPer = paintPer
	f.LaborFabPer = laborFabPer
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// AddMaterial appends a BOM line for the given material
func (f *Furniture) AddMaterial(materialID uuid.UUID, quantity decimal.Decimal, colorID *uuid.UUID) error {
	if materialID == uuid.Nil {
		return shared.NewDomainError("INVALID_MATERIAL", "Material ID is required")
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Material quantity must be positive")
	}
	for _, line := range f.Materials {
		if line.MaterialID == materialID {
			return shared.NewDomainError("DUPLICATE_MATERIAL", "Material already present in the recipe")
		}
	}

	f.Materials = append(f.Materials, FurnitureMaterial{
		FurnitureID: f.ID,
		MaterialID:  materialID,
		Quantity:    quantity,
		ColorID:     colorID,
	})
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// AddLabor appends a BOM line for the given labor task
func (f *Furniture) AddLabor(laborID uuid.UUID, days decimal.Decimal) error {
	if laborID == uuid.Nil {
		return shared.NewDomainError("INVALID_LABOR", "Labor ID is required")
	}
	if !days.IsPositive() {
		return shared.NewDomainError("INVALID_DAYS", "Labor days must be positive")
	}
	for _, line := range f.Labors {
		if line.LaborID == laborID {
			return shared.NewDomainError("DUPLICATE_LABOR", "Labor already present in the recipe")
		}
	}

	f.Labors = append(f.Labors, FurnitureLabor{
		FurnitureID: f.ID,
		LaborID:     laborID,
		Days:        days,
	})
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// ReplaceRecipe replaces the full BOM in one step
func (f *Furniture) ReplaceRecipe(materials []FurnitureMaterial, labors []FurnitureLabor) error {
	for _, line := range materials {
		if !line.Quantity.IsPositive() {
			return shared.NewDomainError("INVALID_QUANTITY", "Material quantity must be positive")
		}
	}
	for _, line := range labors {
		if !line.Days.IsPositive() {
			return shared.NewDomainError("INVALID_DAYS", "Labor days must be positive")
		}
	}

	for i := range materials {
		materials[i].FurnitureID = f.ID
	}
	for i := range labors {
		labors[i].FurnitureID = f.ID
	}

	f.Materials = materials
	f.Labors = labors
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	f.AddDomainEvent(NewFurnitureRecipeChangedEvent(f))

	return nil
}

func validatePercent(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_PERCENT", field+" cannot be negative")
	}
	return nil
}
