package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/kernel"
)

// mutateAssignment runs change against one assignment in its own unit of
// work and appends the audit record under action.
func mutateAssignment(
	ctx context.Context,
	uowFactory UoWFactory,
	id kernel.UUID,
	actor, action string,
	change func(a *assignment.Assignment) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	a, err := assignmentRepo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}
	before := a.Snapshot()

	if err = change(a); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, a); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      actor,
		action:     action,
		entityType: audit.EntityAssignment,
		entityID:   a.ID().String(),
		before:     before,
		after:      a.Snapshot(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
