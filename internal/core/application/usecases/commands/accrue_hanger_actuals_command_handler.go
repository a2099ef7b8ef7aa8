package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/audit"
)

type AccrueHangerActualsCommandHandler struct {
	uowFactory UoWFactory
}

func NewAccrueHangerActualsCommandHandler(uowFactory UoWFactory) AccrueHangerActualsCommandHandler {
	return AccrueHangerActualsCommandHandler{uowFactory: uowFactory}
}

func (h AccrueHangerActualsCommandHandler) Handle(ctx context.Context, command AccrueHangerActualsCommand) error {
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

	hangerRepo := uow.HangerRepository()

	hgr, err := hangerRepo.GetForUpdate(ctx, command.HangerID())
	if err != nil {
		return err
	}
	before := hgr.Snapshot()

	hgr.AccrueActuals(command.Hours(), command.Cost())

	if err = hangerRepo.Update(ctx, hgr); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      command.Actor(),
		action:     ActionHangerActualsAdded,
		entityType: audit.EntityHanger,
		entityID:   hgr.ID().String(),
		before:     before,
		after:      hgr.Snapshot(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
