package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/domain/services"
	"hangerflow/internal/pkg/errs"
)

// CreatePackageCommandHandler creates packages. It refuses unknown hangers and
// hangers already claimed by another open package.
type CreatePackageCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreatePackageCommandHandler(uowFactory UoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{uowFactory: uowFactory}
}

func (h CreatePackageCommandHandler) Handle(ctx context.Context, command CreatePackageCommand) error {
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

	_, err := packageRepo.Get(ctx, command.PackageID())
	if err == nil {
		return errs.NewValueIsInvalidErrorWithCause("package id",
			fmt.Errorf("package %s already exists", command.PackageID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	hangers, err := uow.HangerRepository().LockMany(ctx, command.HangerIDs())
	if err != nil {
		return err
	}
	for _, id := range command.HangerIDs() {
		if _, ok := hangers[id]; !ok {
			return errs.NewObjectNotFoundError("hanger", id.String())
		}
	}

	open, err := packageRepo.ListOpenContaining(ctx, command.HangerIDs())
	if err != nil {
		return err
	}
	if err = services.CheckHangerExclusivity(command.PackageID(), command.HangerIDs(), open); err != nil {
		return err
	}

	pkg, err := workpackage.NewPackage(command.PackageID(), command.ProjectID(), command.Name(),
		command.Level(), command.Zone(), command.HangerIDs(), time.Now())
	if err != nil {
		return err
	}

	if err = packageRepo.Add(ctx, pkg); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      command.Actor(),
		action:     ActionPackageCreated,
		entityType: audit.EntityPackage,
		entityID:   pkg.ID().String(),
		after:      pkg.Snapshot(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
