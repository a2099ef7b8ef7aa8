// Package queries contains the read side: each handler opens a unit of work,
// reads through the repositories and always rolls back.
package queries

import (
	"context"

	"hangerflow/internal/core/ports"
)

type (
	// UoW is the read view a query handler works against.
	UoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
		HangerRepository() ports.HangerRepository
		PackageRepository() ports.PackageRepository
		InventoryRepository() ports.InventoryRepository
		TeamRepository() ports.TeamRepository
		AssignmentRepository() ports.AssignmentRepository
		ExceptionRepository() ports.ExceptionRepository
		AuditRepository() ports.AuditRepository
	}

	UoWFactory interface {
		Create() UoW
	}
)

// read runs fn inside a unit of work that is never committed.
func read[T any](ctx context.Context, factory UoWFactory, fn func(uow UoW) (T, error)) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}
