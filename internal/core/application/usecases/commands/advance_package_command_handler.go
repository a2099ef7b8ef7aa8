package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/workpackage"
)

// AdvancePackageCommandHandler applies unconditional package transitions,
// restricted only by the optional validator.
type AdvancePackageCommandHandler struct {
	uowFactory UoWFactory
	validate   workpackage.TransitionValidator
}

func NewAdvancePackageCommandHandler(uowFactory UoWFactory, validate workpackage.TransitionValidator) AdvancePackageCommandHandler {
	return AdvancePackageCommandHandler{uowFactory: uowFactory, validate: validate}
}

func (h AdvancePackageCommandHandler) Handle(ctx context.Context, command AdvancePackageCommand) error {
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
	wasOpen := pkg.IsOpen()

	if err = pkg.Advance(command.Status(), h.validate); err != nil {
		return err
	}

	if !wasOpen && pkg.IsOpen() {
		if err = reclaimHangers(ctx, uow, pkg); err != nil {
			return err
		}
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      command.Actor(),
		action:     ActionPackageAdvanced,
		entityType: audit.EntityPackage,
		entityID:   pkg.ID().String(),
		before:     before,
		after:      pkg.Snapshot(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
