package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories obtained after Begin
// run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active. It is safe to
	// defer after Commit.
	Rollback(ctx context.Context) error

	HangerRepository() HangerRepository
	PackageRepository() PackageRepository
	InventoryRepository() InventoryRepository
	TeamRepository() TeamRepository
	AssignmentRepository() AssignmentRepository
	ExceptionRepository() ExceptionRepository
	AuditRepository() AuditRepository
}
