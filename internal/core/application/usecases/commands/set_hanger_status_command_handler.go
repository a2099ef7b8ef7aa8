package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/hanger"
)

// SetHangerStatusCommandHandler overwrites a hanger's status. With a nil
// validator every target is accepted.
type SetHangerStatusCommandHandler struct {
	uowFactory UoWFactory
	validate   hanger.TransitionValidator
}

func NewSetHangerStatusCommandHandler(uowFactory UoWFactory, validate hanger.TransitionValidator) SetHangerStatusCommandHandler {
	return SetHangerStatusCommandHandler{uowFactory: uowFactory, validate: validate}
}

func (h SetHangerStatusCommandHandler) Handle(ctx context.Context, command SetHangerStatusCommand) error {
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

	if err = hgr.SetStatus(command.Status(), h.validate); err != nil {
		return err
	}

	if err = hangerRepo.Update(ctx, hgr); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      command.Actor(),
		action:     ActionHangerStatusSet,
		entityType: audit.EntityHanger,
		entityID:   hgr.ID().String(),
		before:     before,
		after:      hgr.Snapshot(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
