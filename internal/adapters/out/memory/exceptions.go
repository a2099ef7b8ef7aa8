package memory

import (
	"context"
	"fmt"

	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

type exceptionRepository struct {
	uow *UnitOfWork
}

func (r *exceptionRepository) Add(_ context.Context, e *exception.Exception) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.exceptions[e.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("exception id", fmt.Errorf("exception %s already exists", e.ID()))
	}
	st.exceptions[e.ID()] = e.Snapshot()
	return nil
}

func (r *exceptionRepository) Update(_ context.Context, e *exception.Exception) error {
	st, err := r.uow.writer()
	if err != nil {
		return err
	}
	if _, ok := st.exceptions[e.ID()]; !ok {
		return errs.NewObjectNotFoundError("exception", e.ID().String())
	}
	st.exceptions[e.ID()] = e.Snapshot()
	return nil
}

func (r *exceptionRepository) Get(_ context.Context, id kernel.UUID) (*exception.Exception, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	snap, ok := st.exceptions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("exception", id.String())
	}
	return exception.Restore(snap)
}

func (r *exceptionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	if _, err := r.uow.writer(); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// List returns matches in no particular order; callers sort.
func (r *exceptionRepository) List(_ context.Context, filter exception.Filter) ([]*exception.Exception, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	out := make([]*exception.Exception, 0)
	for _, snap := range st.exceptions {
		e, err := exception.Restore(snap)
		if err != nil {
			return nil, err
		}
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}
