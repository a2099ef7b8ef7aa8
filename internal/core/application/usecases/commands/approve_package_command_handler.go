package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/domain/services"
)

// ApprovePackageCommandHandler approves packages and records whether the
// package was short of material at that moment, using the same join as
// CheckInventory.
type ApprovePackageCommandHandler struct {
	uowFactory UoWFactory
	validate   workpackage.TransitionValidator
	calculator services.DemandCalculator
}

func NewApprovePackageCommandHandler(uowFactory UoWFactory, validate workpackage.TransitionValidator) ApprovePackageCommandHandler {
	return ApprovePackageCommandHandler{
		uowFactory: uowFactory,
		validate:   validate,
		calculator: services.NewDemandCalculator(),
	}
}

func (h ApprovePackageCommandHandler) Handle(ctx context.Context, command ApprovePackageCommand) error {
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

	lines, err := checkPackageInventory(ctx, uow, h.calculator, pkg)
	if err != nil {
		return err
	}

	if err = pkg.Approve(inventory.HasShortfall(lines), h.validate); err != nil {
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
		action:     ActionPackageApproved,
		entityType: audit.EntityPackage,
		entityID:   pkg.ID().String(),
		before:     before,
		after:      pkg.Snapshot(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
