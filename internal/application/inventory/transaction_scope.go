package inventory

import (
	"context"

	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/inventory"
	"github.com/Daninc24/myshop/internal/domain/ordering"
	"github.com/Daninc24/myshop/internal/domain/pos"
)

// TransactionScope provides transactional access to the repositories that
// participate in stock mutations. When a function is executed within a
// transaction scope, all repository operations share one database
// transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories involved in
// a stock mutation, all scoped to the same transaction.
//
// A sale, a return, an order or a manual adjustment always touches the
// product row and the inventory log together; orders and sales additionally
// persist their own aggregate. Wrapping them in one scope keeps stock, log
// and document consistent.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// LogRepo returns the inventory log repository scoped to the current transaction
	LogRepo() inventory.LogRepository
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() ordering.OrderRepository
	// SaleRepo returns the sale repository scoped to the current transaction
	SaleRepo() pos.SaleRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	productRepo catalog.ProductRepository
	logRepo     inventory.LogRepository
	orderRepo   ordering.OrderRepository
	saleRepo    pos.SaleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	logRepo inventory.LogRepository,
	orderRepo ordering.OrderRepository,
	saleRepo pos.SaleRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo: productRepo,
		logRepo:     logRepo,
		orderRepo:   orderRepo,
		saleRepo:    saleRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// LogRepo returns the inventory log repository.
func (s *NoOpTransactionScope) LogRepo() inventory.LogRepository {
	return s.logRepo
}

// OrderRepo returns the order repository.
func (s *NoOpTransactionScope) OrderRepo() ordering.OrderRepository {
	return s.orderRepo
}

// SaleRepo returns the sale repository.
func (s *NoOpTransactionScope) SaleRepo() pos.SaleRepository {
	return s.saleRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
