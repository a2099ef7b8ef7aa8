package memory

import (
	"context"
	"maps"
	"slices"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/pkg/errs"
)

type teamRepository struct {
	uow *UnitOfWork
}

func (r *teamRepository) Upsert(_ context.Context, t *team.Team) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	st.teams[t.ID()] = t.Snapshot()
	return nil
}

func (r *teamRepository) Get(_ context.Context, id kernel.Code) (*team.Team, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snap, ok := st.teams[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("team", id.String())
	}
	return team.Restore(snap)
}

func (r *teamRepository) List(_ context.Context) ([]*team.Team, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snaps := slices.Collect(maps.Values(st.teams))
	slices.SortFunc(snaps, func(a, b team.Snapshot) int { return strings.Compare(a.ID, b.ID) })

	out := make([]*team.Team, 0, len(snaps))
	for _, s := range snaps {
		t, err := team.Restore(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
