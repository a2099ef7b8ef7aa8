package queries

import (
	"context"

	"hangerflow/internal/core/domain/model/workpackage"
)

// PackageQueryHandler answers GetPackage and ListPackagesByProject.
type PackageQueryHandler struct {
	uowFactory UoWFactory
}

func NewPackageQueryHandler(uowFactory UoWFactory) PackageQueryHandler {
	return PackageQueryHandler{uowFactory: uowFactory}
}

func (h PackageQueryHandler) Get(ctx context.Context, query GetPackageQuery) (workpackage.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return workpackage.Snapshot{}, err
	}
	return read(ctx, h.uowFactory, func(uow UoW) (workpackage.Snapshot, error) {
		pkg, err := uow.PackageRepository().Get(ctx, query.PackageID())
		if err != nil {
			return workpackage.Snapshot{}, err
		}
		return pkg.Snapshot(), nil
	})
}

// ListByProject returns the project's packages ordered by id.
func (h PackageQueryHandler) ListByProject(ctx context.Context, query ListPackagesByProjectQuery) ([]workpackage.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow UoW) ([]workpackage.Snapshot, error) {
		list, err := uow.PackageRepository().ListByProject(ctx, query.ProjectID())
		if err != nil {
			return nil, err
		}
		out := make([]workpackage.Snapshot, 0, len(list))
		for _, p := range list {
			out = append(out, p.Snapshot())
		}
		return out, nil
	})
}
