package queries

import (
	"context"

	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/services"
	"hangerflow/internal/pkg/errs"
)

// InventoryQueryHandler computes package demand and joins it with stock.
// Nothing is reserved or locked.
type InventoryQueryHandler struct {
	uowFactory UoWFactory
	calculator services.DemandCalculator
}

func NewInventoryQueryHandler(uowFactory UoWFactory) InventoryQueryHandler {
	return InventoryQueryHandler{uowFactory: uowFactory, calculator: services.NewDemandCalculator()}
}

// ComputeDemand sums BOM quantities per SKU in order of first appearance.
func (h InventoryQueryHandler) ComputeDemand(ctx context.Context, query PackageInventoryQuery) ([]inventory.DemandLine, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow UoW) ([]inventory.DemandLine, error) {
		return h.demand(ctx, uow, query)
	})
}

// CheckInventory reports on-hand and shortfall per demanded SKU. A SKU
// without a stock record has nothing on hand.
func (h InventoryQueryHandler) CheckInventory(ctx context.Context, query PackageInventoryQuery) ([]inventory.Line, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow UoW) ([]inventory.Line, error) {
		demand, err := h.demand(ctx, uow, query)
		if err != nil {
			return nil, err
		}
		stock, err := uow.InventoryRepository().GetMany(ctx, services.DemandSKUs(demand))
		if err != nil {
			return nil, err
		}
		return h.calculator.CheckInventory(demand, stock), nil
	})
}

// ShortageReport is CheckInventory narrowed to lines with a shortfall.
func (h InventoryQueryHandler) ShortageReport(ctx context.Context, query PackageInventoryQuery) ([]inventory.Line, error) {
	lines, err := h.CheckInventory(ctx, query)
	if err != nil {
		return nil, err
	}
	return inventory.Shortages(lines), nil
}

func (h InventoryQueryHandler) demand(ctx context.Context, uow UoW, query PackageInventoryQuery) ([]inventory.DemandLine, error) {
	pkg, err := uow.PackageRepository().Get(ctx, query.PackageID())
	if err != nil {
		return nil, err
	}
	ids := pkg.HangerIDs()
	byID, err := uow.HangerRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	hangers := make([]*hanger.Hanger, 0, len(ids))
	for _, id := range ids {
		hgr, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("hanger", id.String())
		}
		hangers = append(hangers, hgr)
	}
	return h.calculator.ComputeDemand(hangers), nil
}
