package commands

import (
	"context"
	"time"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/domain/services"
)

// ReserveInventoryCommandHandler kits a package: it takes what stock there is
// for the package demand, records a pick list and moves the package to Kitted.
type ReserveInventoryCommandHandler struct {
	uowFactory UoWFactory
	validate   workpackage.TransitionValidator
	calculator services.DemandCalculator
}

func NewReserveInventoryCommandHandler(uowFactory UoWFactory, validate workpackage.TransitionValidator) ReserveInventoryCommandHandler {
	return ReserveInventoryCommandHandler{
		uowFactory: uowFactory,
		validate:   validate,
		calculator: services.NewDemandCalculator(),
	}
}

type reservationAudit struct {
	Package  workpackage.Snapshot       `json:"package"`
	PickList inventory.PickListSnapshot `json:"pickList"`
	Stock    []inventory.ItemSnapshot   `json:"stock"`
}

// Handle returns the id of the new pick list. Stock is never driven below
// zero; the missing remainder is recorded as backordered.
func (h ReserveInventoryCommandHandler) Handle(ctx context.Context, command ReserveInventoryCommand) (kernel.UUID, error) {
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

	packageRepo := uow.PackageRepository()
	inventoryRepo := uow.InventoryRepository()

	pkg, err := packageRepo.GetForUpdate(ctx, command.PackageID())
	if err != nil {
		return kernel.UUID{}, err
	}
	before := pkg.Snapshot()

	hangers, err := packageHangers(ctx, uow, pkg)
	if err != nil {
		return kernel.UUID{}, err
	}
	demand := h.calculator.ComputeDemand(hangers)

	stock, err := inventoryRepo.LockMany(ctx, services.DemandSKUs(demand))
	if err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now()
	lines := make([]inventory.PickLine, 0, len(demand))
	touched := make([]inventory.ItemSnapshot, 0, len(stock))
	for _, d := range demand {
		line := inventory.PickLine{SKU: d.SKU, Required: d.Required, Backordered: d.Required}
		if item, ok := stock[d.SKU]; ok {
			line.Reserved, line.Backordered = item.Reserve(d.Required)
			if err = inventoryRepo.Update(ctx, item); err != nil {
				return kernel.UUID{}, err
			}
			touched = append(touched, item.Snapshot())
		}
		lines = append(lines, line)
	}

	pickList, err := inventory.NewPickList(kernel.NewUUID(), pkg.ID(), now, lines)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = inventoryRepo.AddPickList(ctx, pickList); err != nil {
		return kernel.UUID{}, err
	}

	if err = pkg.Kit(pickList.ID(), h.validate); err != nil {
		return kernel.UUID{}, err
	}
	if err = packageRepo.Update(ctx, pkg); err != nil {
		return kernel.UUID{}, err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      command.Actor(),
		action:     ActionPackageKitted,
		entityType: audit.EntityPackage,
		entityID:   pkg.ID().String(),
		before:     before,
		after: reservationAudit{
			Package:  pkg.Snapshot(),
			PickList: pickList.Snapshot(),
			Stock:    touched,
		},
	}); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return pickList.ID(), nil
}
