package queries

import (
	"errors"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrGetPackageTimelineQueryIsNotConstructed = errors.New(
	"GetPackageTimelineQuery must be created via NewGetPackageTimelineQuery constructor",
)

type GetPackageTimelineQuery struct {
	packageID kernel.Code
	guard     guard.ConstructorGuard
}

func NewGetPackageTimelineQuery(packageID string) (GetPackageTimelineQuery, error) {
	id, err := kernel.NewCode(packageID)
	if err != nil {
		return GetPackageTimelineQuery{}, err
	}
	return GetPackageTimelineQuery{packageID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackageTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageTimelineQueryIsNotConstructed)
}

func (q GetPackageTimelineQuery) PackageID() kernel.Code { return q.packageID }
