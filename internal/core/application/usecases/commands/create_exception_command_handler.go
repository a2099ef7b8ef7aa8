package commands

import (
	"context"
	"errors"
	"time"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

type CreateExceptionCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateExceptionCommandHandler(uowFactory UoWFactory) CreateExceptionCommandHandler {
	return CreateExceptionCommandHandler{uowFactory: uowFactory}
}

// Handle returns the new exception id. The ref must name an existing
// entity; otherwise the error is NotFound.
func (h CreateExceptionCommandHandler) Handle(ctx context.Context, command CreateExceptionCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	kind, err := resolveRef(ctx, uow, command.RefKind(), command.Ref())
	if err != nil {
		return kernel.UUID{}, err
	}

	exc, err := exception.New(kernel.NewUUID(), command.Type(), command.Severity(),
		exception.Ref{Kind: kind, ID: command.Ref()}, command.Description(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.ExceptionRepository().Add(ctx, exc); err != nil {
		return kernel.UUID{}, err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      command.Actor(),
		action:     ActionExceptionCreated,
		entityType: audit.EntityException,
		entityID:   exc.ID().String(),
		after:      exc.Snapshot(),
	}); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return exc.ID(), nil
}

// resolveRef checks that ref exists. Without a kind it tries package, then
// hanger, then assignment.
func resolveRef(ctx context.Context, uow UoW, kind exception.RefKind, ref string) (exception.RefKind, error) {
	if kind != "" {
		return kind, refExists(ctx, uow, kind, ref)
	}
	for _, k := range []exception.RefKind{exception.RefPackage, exception.RefHanger, exception.RefAssignment} {
		err := refExists(ctx, uow, k, ref)
		if err == nil {
			return k, nil
		}
		if !errs.IsNotFound(err) && !errs.IsValidation(err) {
			return "", err
		}
	}
	return "", errs.NewObjectNotFoundError("ref", ref)
}

func refExists(ctx context.Context, uow UoW, kind exception.RefKind, ref string) error {
	switch kind {
	case exception.RefAssignment:
		id, err := kernel.UUIDFromString(ref)
		if err != nil {
			return errs.NewObjectNotFoundErrorWithCause("assignment", ref, err)
		}
		_, err = uow.AssignmentRepository().Get(ctx, id)
		return err
	case exception.RefHanger:
		_, err := uow.HangerRepository().Get(ctx, kernel.Code(ref))
		return err
	case exception.RefPackage:
		_, err := uow.PackageRepository().Get(ctx, kernel.Code(ref))
		return err
	default:
		return errors.New("unsupported ref kind " + string(kind))
	}
}
