package persistence

import (
	"context"

	"gorm.io/gorm"

	catalogapp "github.com/muebleria/backend/internal/application/catalog"
	"github.com/muebleria/backend/internal/domain/catalog"
)

// GormCatalogTransactionScope implements the catalog TransactionScope by
// wrapping a gorm transaction and handing the callback repositories
// bound to the transaction connection.
type GormCatalogTransactionScope struct {
	db *gorm.DB
}

// NewGormCatalogTransactionScope creates a new GormCatalogTransactionScope
func NewGormCatalogTransactionScope(db *gorm.DB) *GormCatalogTransactionScope {
	return &GormCatalogTransactionScope{db: db}
}

// Execute runs the function within a database transaction
func (s *GormCatalogTransactionScope) Execute(ctx context.Context, fn func(repos catalogapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCatalogRepositories{tx: tx})
	})
}

// gormCatalogRepositories provides repositories bound to one transaction
type gormCatalogRepositories struct {
	tx *gorm.DB
}

func (r *gormCatalogRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormCatalogRepositories) MaterialRepo() catalog.MaterialRepository {
	return NewGormMaterialRepository(r.tx)
}

func (r *gormCatalogRepositories) FurnitureRepo() catalog.FurnitureRepository {
	return NewGormFurnitureRepository(r.tx)
}

func (r *gormCatalogRepositories) SetRepo() catalog.SetRepository {
	return NewGormSetRepository(r.tx)
}

func (r *gormCatalogRepositories) ColorRepo() catalog.ColorRepository {
	return NewGormColorRepository(r.tx)
}

func (r *gormCatalogRepositories) LaborRepo() catalog.LaborRepository {
	return NewGormLaborRepository(r.tx)
}

func (r *gormCatalogRepositories) MaterialTypeRepo() catalog.MaterialTypeRepository {
	return NewGormMaterialTypeRepository(r.tx)
}

// Interface conformance assertions
var (
	_ catalogapp.TransactionScope          = (*GormCatalogTransactionScope)(nil)
	_ catalogapp.TransactionalRepositories = (*gormCatalogRepositories)(nil)
)
