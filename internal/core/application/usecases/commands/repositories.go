// Package commands contains the operations that change shop-floor state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load aggregates, call domain methods, persist, append one audit record
// per mutated primary entity, commit.
package commands

import (
	"context"

	"hangerflow/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	HangerRepoFactory interface {
		HangerRepository() ports.HangerRepository
	}

	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	TeamRepoFactory interface {
		TeamRepository() ports.TeamRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	ExceptionRepoFactory interface {
		ExceptionRepository() ports.ExceptionRepository
	}

	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// UoW gives a handler every repository inside one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   pkg, err := uow.PackageRepository().Get(ctx, id)
	//   // ... mutate, persist, append audit
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		HangerRepoFactory
		PackageRepoFactory
		InventoryRepoFactory
		TeamRepoFactory
		AssignmentRepoFactory
		ExceptionRepoFactory
		AuditRepoFactory
	}

	// UoWFactory creates a fresh unit of work per command.
	UoWFactory interface {
		Create() UoW
	}
)
