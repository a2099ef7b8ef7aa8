package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/pkg/errs"
)

type packageRepository struct {
	uow *UnitOfWork
}

func (r *packageRepository) Add(_ context.Context, p *workpackage.Package) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.packages[p.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("package id", fmt.Errorf("package %s already exists", p.ID()))
	}
	st.packages[p.ID()] = p.Snapshot()
	return nil
}

func (r *packageRepository) Update(_ context.Context, p *workpackage.Package) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.packages[p.ID()]; !ok {
		return errs.NewObjectNotFoundError("package", p.ID().String())
	}
	st.packages[p.ID()] = p.Snapshot()
	return nil
}

func (r *packageRepository) Get(_ context.Context, id kernel.Code) (*workpackage.Package, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snap, ok := st.packages[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("package", id.String())
	}
	return workpackage.Restore(snap)
}

func (r *packageRepository) GetForUpdate(ctx context.Context, id kernel.Code) (*workpackage.Package, error) {
	if _, err := r.uow.writer(); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *packageRepository) ListByProject(_ context.Context, projectID kernel.Code) ([]*workpackage.Package, error) {
	return r.list(func(s workpackage.Snapshot) bool {
		return s.ProjectID == projectID.String()
	})
}

func (r *packageRepository) ListByStatus(_ context.Context, statuses ...workpackage.Status) ([]*workpackage.Package, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return r.list(func(s workpackage.Snapshot) bool {
		return slices.Contains(names, s.Status)
	})
}

func (r *packageRepository) ListOpenContaining(_ context.Context, hangerIDs []kernel.Code) ([]*workpackage.Package, error) {
	wanted := kernel.CodeStrings(hangerIDs)
	return r.list(func(s workpackage.Snapshot) bool {
		if s.Status == workpackage.Rejected.String() || s.Status == workpackage.Delivered.String() {
			return false
		}
		return slices.ContainsFunc(s.HangerIDs, func(id string) bool {
			return slices.Contains(wanted, id)
		})
	})
}

// list returns the matching packages ordered by id.
func (r *packageRepository) list(match func(workpackage.Snapshot) bool) ([]*workpackage.Package, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snaps := make([]workpackage.Snapshot, 0)
	for _, s := range st.packages {
		if match(s) {
			snaps = append(snaps, s)
		}
	}
	slices.SortFunc(snaps, func(a, b workpackage.Snapshot) int {
		return strings.Compare(a.ID, b.ID)
	})

	out := make([]*workpackage.Package, 0, len(snaps))
	for _, s := range snaps {
		p, err := workpackage.Restore(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
