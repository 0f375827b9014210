package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so multi-step transfer resolutions mutate the request and the
// box under one commit.
type RepositoryFactory interface {
	// NewBoxRepository returns a BoxRepository instance bound to the current transaction.
	NewBoxRepository() BoxRepository

	// NewTransferRequestRepository returns a TransferRequestRepository bound to the current transaction.
	NewTransferRequestRepository() TransferRequestRepository
}
