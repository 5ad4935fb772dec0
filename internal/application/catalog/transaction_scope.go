package catalog

import (
	"context"

	"github.com/muebleria/backend/internal/domain/catalog"
)

// TransactionScope provides transactional access to the catalog
// repositories. Creating a product together with its kind row must
// commit as one unit so no product ever exists without its backing
// material, furniture or set.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all catalog repositories
// within a transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// MaterialRepo returns the material repository scoped to the current transaction
	MaterialRepo() catalog.MaterialRepository
	// FurnitureRepo returns the furniture repository scoped to the current transaction
	FurnitureRepo() catalog.FurnitureRepository
	// SetRepo returns the set repository scoped to the current transaction
	SetRepo() catalog.SetRepository
	// ColorRepo returns the color repository scoped to the current transaction
	ColorRepo() catalog.ColorRepository
	// LaborRepo returns the labor repository scoped to the current transaction
	LaborRepo() catalog.LaborRepository
	// MaterialTypeRepo returns the material type repository scoped to the current transaction
	MaterialTypeRepo() catalog.MaterialTypeRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	productRepo      catalog.ProductRepository
	materialRepo     catalog.MaterialRepository
	furnitureRepo    catalog.FurnitureRepository
	setRepo          catalog.SetRepository
	colorRepo        catalog.ColorRepository
	laborRepo        catalog.LaborRepository
	materialTypeRepo catalog.MaterialTypeRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	materialRepo catalog.MaterialRepository,
	furnitureRepo catalog.FurnitureRepository,
	setRepo catalog.SetRepository,
	colorRepo catalog.ColorRepository,
	laborRepo catalog.LaborRepository,
	materialTypeRepo catalog.MaterialTypeRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:      productRepo,
		materialRepo:     materialRepo,
		furnitureRepo:    furnitureRepo,
		setRepo:          setRepo,
		colorRepo:        colorRepo,
		laborRepo:        laborRepo,
		materialTypeRepo: materialTypeRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// MaterialRepo returns the material repository
func (s *NoOpTransactionScope) MaterialRepo() catalog.MaterialRepository {
	return s.materialRepo
}

// FurnitureRepo returns the furniture repository
func (s *NoOpTransactionScope) FurnitureRepo() catalog.FurnitureRepository {
	return s.furnitureRepo
}

// SetRepo returns the set repository
func (s *NoOpTransactionScope) SetRepo() catalog.SetRepository {
	return s.setRepo
}

// ColorRepo returns the color repository
func (s *NoOpTransactionScope) ColorRepo() catalog.ColorRepository {
	return s.colorRepo
}

// LaborRepo returns the labor repository
func (s *NoOpTransactionScope) LaborRepo() catalog.LaborRepository {
	return s.laborRepo
}

// MaterialTypeRepo returns the material type repository
func (s *NoOpTransactionScope) MaterialTypeRepo() catalog.MaterialTypeRepository {
	return s.materialTypeRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
