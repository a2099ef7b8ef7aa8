package commands

import (
	"context"
	"time"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/kernel"
)

// ExceptionWorkflowCommandHandler moves exceptions through
// Open -> InProgress -> Resolved -> Closed.
type ExceptionWorkflowCommandHandler struct {
	uowFactory UoWFactory
}

func NewExceptionWorkflowCommandHandler(uowFactory UoWFactory) ExceptionWorkflowCommandHandler {
	return ExceptionWorkflowCommandHandler{uowFactory: uowFactory}
}

func (h ExceptionWorkflowCommandHandler) Assign(ctx context.Context, command AssignExceptionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, command.ExceptionID(), command.Actor(), ActionExceptionAssigned,
		func(e *exception.Exception) error {
			return e.Assign(command.Assignee())
		})
}

func (h ExceptionWorkflowCommandHandler) Resolve(ctx context.Context, command ResolveExceptionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	now := time.Now()
	return h.mutate(ctx, command.ExceptionID(), command.Actor(), ActionExceptionResolved,
		func(e *exception.Exception) error {
			return e.Resolve(command.Notes(), now)
		})
}

func (h ExceptionWorkflowCommandHandler) Close(ctx context.Context, command CloseExceptionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	now := time.Now()
	return h.mutate(ctx, command.ExceptionID(), command.Actor(), ActionExceptionClosed,
		func(e *exception.Exception) error {
			return e.Close(now)
		})
}

func (h ExceptionWorkflowCommandHandler) mutate(
	ctx context.Context,
	id kernel.UUID,
	actor, action string,
	change func(e *exception.Exception) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exceptionRepo := uow.ExceptionRepository()

	exc, err := exceptionRepo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}
	before := exc.Snapshot()

	if err = change(exc); err != nil {
		return err
	}

	if err = exceptionRepo.Update(ctx, exc); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      actor,
		action:     action,
		entityType: audit.EntityException,
		entityID:   exc.ID().String(),
		before:     before,
		after:      exc.Snapshot(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
