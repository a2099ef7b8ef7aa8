package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

type assignmentRepository struct {
	uow *UnitOfWork
}

func (r *assignmentRepository) Add(_ context.Context, a *assignment.Assignment) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.assignments[a.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("assignment id", fmt.Errorf("assignment %s already exists", a.ID()))
	}
	st.assignments[a.ID()] = a.Snapshot()
	return nil
}

func (r *assignmentRepository) Update(_ context.Context, a *assignment.Assignment) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.assignments[a.ID()]; !ok {
		return errs.NewObjectNotFoundError("assignment", a.ID().String())
	}
	st.assignments[a.ID()] = a.Snapshot()
	return nil
}

func (r *assignmentRepository) Get(_ context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snap, ok := st.assignments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("assignment", id.String())
	}
	return assignment.Restore(snap)
}

func (r *assignmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if _, err := r.uow.writer(); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *assignmentRepository) ListByPackage(_ context.Context, packageID kernel.Code) ([]*assignment.Assignment, error) {
	return r.list(func(s assignment.Snapshot) bool {
		return s.PackageID == packageID.String()
	})
}

func (r *assignmentRepository) ListByHangers(_ context.Context, hangerIDs []kernel.Code) ([]*assignment.Assignment, error) {
	wanted := kernel.CodeStrings(hangerIDs)
	return r.list(func(s assignment.Snapshot) bool {
		return slices.Contains(wanted, s.HangerID)
	})
}

func (r *assignmentRepository) ListByTeam(_ context.Context, teamID kernel.Code) ([]*assignment.Assignment, error) {
	return r.list(func(s assignment.Snapshot) bool {
		return s.TeamID != nil && *s.TeamID == teamID.String()
	})
}

// list returns the matching assignments in creation order.
func (r *assignmentRepository) list(match func(assignment.Snapshot) bool) ([]*assignment.Assignment, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snaps := make([]assignment.Snapshot, 0)
	for _, s := range st.assignments {
		if match(s) {
			snaps = append(snaps, s)
		}
	}
	slices.SortFunc(snaps, func(a, b assignment.Snapshot) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	out := make([]*assignment.Assignment, 0, len(snaps))
	for _, s := range snaps {
		a, err := assignment.Restore(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
