package queries

import (
	"errors"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var (
	ErrGetPackageQueryIsNotConstructed = errors.New(
		"GetPackageQuery must be created via NewGetPackageQuery constructor",
	)
	ErrListPackagesByProjectQueryIsNotConstructed = errors.New(
		"ListPackagesByProjectQuery must be created via NewListPackagesByProjectQuery constructor",
	)
)

type GetPackageQuery struct {
	packageID kernel.Code
	guard     guard.ConstructorGuard
}

func NewGetPackageQuery(packageID string) (GetPackageQuery, error) {
	id, err := kernel.NewCode(packageID)
	if err != nil {
		return GetPackageQuery{}, err
	}
	return GetPackageQuery{packageID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

func (q GetPackageQuery) PackageID() kernel.Code { return q.packageID }

type ListPackagesByProjectQuery struct {
	projectID kernel.Code
	guard     guard.ConstructorGuard
}

func NewListPackagesByProjectQuery(projectID string) (ListPackagesByProjectQuery, error) {
	id, err := kernel.NewCode(projectID)
	if err != nil {
		return ListPackagesByProjectQuery{}, err
	}
	return ListPackagesByProjectQuery{projectID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPackagesByProjectQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesByProjectQueryIsNotConstructed)
}

func (q ListPackagesByProjectQuery) ProjectID() kernel.Code { return q.projectID }
