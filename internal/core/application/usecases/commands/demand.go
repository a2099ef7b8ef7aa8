package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/domain/services"
	"hangerflow/internal/pkg/errs"
)

type demandSource interface {
	HangerRepoFactory
	InventoryRepoFactory
}

// packageHangers loads the package's hangers in package order. A hanger the
// store no longer returns is a NotFound error.
func packageHangers(ctx context.Context, uow HangerRepoFactory, pkg *workpackage.Package) ([]*hanger.Hanger, error) {
	ids := pkg.HangerIDs()
	byID, err := uow.HangerRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*hanger.Hanger, 0, len(ids))
	for _, id := range ids {
		h, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("hanger", id.String())
		}
		out = append(out, h)
	}
	return out, nil
}

func checkPackageInventory(
	ctx context.Context,
	uow demandSource,
	calc services.DemandCalculator,
	pkg *workpackage.Package,
) ([]inventory.Line, error) {
	hangers, err := packageHangers(ctx, uow, pkg)
	if err != nil {
		return nil, err
	}
	demand := calc.ComputeDemand(hangers)
	stock, err := uow.InventoryRepository().GetMany(ctx, services.DemandSKUs(demand))
	if err != nil {
		return nil, err
	}
	return calc.CheckInventory(demand, stock), nil
}
