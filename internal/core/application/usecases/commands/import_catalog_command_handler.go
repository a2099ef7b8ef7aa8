package commands

import (
	"context"
	"errors"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/pkg/errs"
)

// ImportResult counts what an import changed.
type ImportResult struct {
	HangersInserted   int `json:"hangersInserted"`
	HangersSuperseded int `json:"hangersSuperseded"`
	HangersIgnored    int `json:"hangersIgnored"`
	Teams             int `json:"teams"`
	Items             int `json:"items"`
}

// ImportCatalogCommandHandler loads a catalog in one unit of work. A hanger
// with a higher revision than the stored one supersedes it; an equal or lower
// revision is ignored. Teams and stock records are upserted.
type ImportCatalogCommandHandler struct {
	uowFactory UoWFactory
}

func NewImportCatalogCommandHandler(uowFactory UoWFactory) ImportCatalogCommandHandler {
	return ImportCatalogCommandHandler{uowFactory: uowFactory}
}

func (h ImportCatalogCommandHandler) Handle(ctx context.Context, command ImportCatalogCommand) (ImportResult, error) {
	if err := command.Validate(); err != nil {
		return ImportResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ImportResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var result ImportResult
	for _, incoming := range command.Hangers() {
		outcome, err := h.importHanger(ctx, uow, command.Actor(), incoming)
		if err != nil {
			return ImportResult{}, err
		}
		switch outcome {
		case hangerInserted:
			result.HangersInserted++
		case hangerSuperseded:
			result.HangersSuperseded++
		default:
			result.HangersIgnored++
		}
	}

	teamRepo := uow.TeamRepository()
	for _, t := range command.Teams() {
		if err := teamRepo.Upsert(ctx, t); err != nil {
			return ImportResult{}, err
		}
		if err := appendAudit(ctx, uow, auditEntry{
			actor:      command.Actor(),
			action:     ActionTeamImported,
			entityType: audit.EntityTeam,
			entityID:   t.ID().String(),
			after:      t.Snapshot(),
		}); err != nil {
			return ImportResult{}, err
		}
		result.Teams++
	}

	inventoryRepo := uow.InventoryRepository()
	for _, item := range command.Items() {
		if err := inventoryRepo.Upsert(ctx, item); err != nil {
			return ImportResult{}, err
		}
		if err := appendAudit(ctx, uow, auditEntry{
			actor:      command.Actor(),
			action:     ActionInventoryImported,
			entityType: audit.EntityInventory,
			entityID:   item.SKU().String(),
			after:      item.Snapshot(),
		}); err != nil {
			return ImportResult{}, err
		}
		result.Items++
	}

	if err := uow.Commit(ctx); err != nil {
		return ImportResult{}, err
	}

	return result, nil
}

type hangerOutcome int

const (
	hangerIgnored hangerOutcome = iota
	hangerInserted
	hangerSuperseded
)

func (h ImportCatalogCommandHandler) importHanger(
	ctx context.Context,
	uow UoW,
	actor string,
	incoming *hanger.Hanger,
) (hangerOutcome, error) {
	hangerRepo := uow.HangerRepository()

	existing, err := hangerRepo.GetForUpdate(ctx, incoming.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		if err = hangerRepo.Add(ctx, incoming); err != nil {
			return hangerIgnored, err
		}
		return hangerInserted, appendAudit(ctx, uow, auditEntry{
			actor:      actor,
			action:     ActionHangerImported,
			entityType: audit.EntityHanger,
			entityID:   incoming.ID().String(),
			after:      incoming.Snapshot(),
		})
	}
	if err != nil {
		return hangerIgnored, err
	}

	if !incoming.Supersedes(existing) {
		return hangerIgnored, nil
	}

	before := existing.Snapshot()
	if err = existing.ReplaceRevision(incoming); err != nil {
		return hangerIgnored, err
	}
	if err = hangerRepo.Update(ctx, existing); err != nil {
		return hangerIgnored, err
	}
	return hangerSuperseded, appendAudit(ctx, uow, auditEntry{
		actor:      actor,
		action:     ActionHangerSuperseded,
		entityType: audit.EntityHanger,
		entityID:   existing.ID().String(),
		before:     before,
		after:      existing.Snapshot(),
	})
}
