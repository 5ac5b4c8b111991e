package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to group writes without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction when the store supports one.
	// Repository calls made with the ctx passed to fn take part in it; an error
	// returned by fn aborts the transaction. Without transaction support the
	// calls inside fn run sequentially and each commits on its own.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
