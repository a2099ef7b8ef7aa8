package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/domain/services"
)

type claimSource interface {
	HangerRepoFactory
	PackageRepoFactory
}

// reclaimHangers is called when a closed package moves back to an open
// status. It locks the package's hangers and refuses the move if another open
// package claimed any of them in the meantime.
func reclaimHangers(ctx context.Context, uow claimSource, pkg *workpackage.Package) error {
	ids := pkg.HangerIDs()
	if _, err := uow.HangerRepository().LockMany(ctx, ids); err != nil {
		return err
	}
	open, err := uow.PackageRepository().ListOpenContaining(ctx, ids)
	if err != nil {
		return err
	}
	return services.CheckHangerExclusivity(pkg.ID(), ids, open)
}
