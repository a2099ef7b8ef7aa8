package memory

import (
	"context"
	"fmt"

	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

type hangerRepository struct {
	uow *UnitOfWork
}

func (r *hangerRepository) Add(_ context.Context, h *hanger.Hanger) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.hangers[h.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("hanger id", fmt.Errorf("hanger %s already exists", h.ID()))
	}
	st.hangers[h.ID()] = h.Snapshot()
	return nil
}

func (r *hangerRepository) Update(_ context.Context, h *hanger.Hanger) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.hangers[h.ID()]; !ok {
		return errs.NewObjectNotFoundError("hanger", h.ID().String())
	}
	st.hangers[h.ID()] = h.Snapshot()
	return nil
}

func (r *hangerRepository) Get(_ context.Context, id kernel.Code) (*hanger.Hanger, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snap, ok := st.hangers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("hanger", id.String())
	}
	return hanger.Restore(snap)
}

// GetForUpdate is Get on a writing unit of work, which already holds the
// store lock.
func (r *hangerRepository) GetForUpdate(ctx context.Context, id kernel.Code) (*hanger.Hanger, error) {
	if _, err := r.uow.writer(); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *hangerRepository) GetMany(_ context.Context, ids []kernel.Code) (map[kernel.Code]*hanger.Hanger, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	out := make(map[kernel.Code]*hanger.Hanger, len(ids))
	for _, id := range ids {
		snap, ok := st.hangers[id]
		if !ok {
			continue
		}
		h, err := hanger.Restore(snap)
		if err != nil {
			return nil, err
		}
		out[id] = h
	}
	return out, nil
}

func (r *hangerRepository) LockMany(ctx context.Context, ids []kernel.Code) (map[kernel.Code]*hanger.Hanger, error) {
	if _, err := r.uow.writer(); err != nil {
		return nil, err
	}
	return r.GetMany(ctx, ids)
}
