package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/workpackage"
)

type RejectPackageCommandHandler struct {
	uowFactory UoWFactory
	validate   workpackage.TransitionValidator
}

func NewRejectPackageCommandHandler(uowFactory UoWFactory, validate workpackage.TransitionValidator) RejectPackageCommandHandler {
	return RejectPackageCommandHandler{uowFactory: uowFactory, validate: validate}
}

// Handle returns a ValidationError for a blank reason and InvalidTransition
// when the package is past Planned.
func (h RejectPackageCommandHandler) Handle(ctx context.Context, command RejectPackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()

	pkg, err := packageRepo.GetForUpdate(ctx, command.PackageID())
	if err != nil {
		return err
	}
	before := pkg.Snapshot()

	if err = pkg.Reject(command.Reason(), h.validate); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      command.Actor(),
		action:     ActionPackageRejected,
		entityType: audit.EntityPackage,
		entityID:   pkg.ID().String(),
		before:     before,
		after:      pkg.Snapshot(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
