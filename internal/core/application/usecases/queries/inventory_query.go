package queries

import (
	"errors"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrPackageInventoryQueryIsNotConstructed = errors.New(
	"PackageInventoryQuery must be created via NewPackageInventoryQuery constructor",
)

// PackageInventoryQuery selects the package whose material demand is read by
// ComputeDemand, CheckInventory and ShortageReport.
type PackageInventoryQuery struct {
	packageID kernel.Code
	guard     guard.ConstructorGuard
}

func NewPackageInventoryQuery(packageID string) (PackageInventoryQuery, error) {
	id, err := kernel.NewCode(packageID)
	if err != nil {
		return PackageInventoryQuery{}, err
	}
	return PackageInventoryQuery{packageID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q PackageInventoryQuery) Validate() error {
	return q.guard.Validate(ErrPackageInventoryQueryIsNotConstructed)
}

func (q PackageInventoryQuery) PackageID() kernel.Code { return q.packageID }
