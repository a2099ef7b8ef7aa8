package memory

import (
	"context"
	"sort"

	"hangerflow/internal/core/domain/model/audit"
)

type auditRepository struct {
	uow *UnitOfWork
}

// Append numbers records from 1. Sequence order is commit order because
// writers are serialized.
func (r *auditRepository) Append(_ context.Context, rec *audit.Record) (*audit.Record, error) {
	st, err := r.uow.writer()
	if err != nil {
		return nil, err
	}
	if err = rec.Validate(); err != nil {
		return nil, err
	}
	stored := rec.WithSeq(int64(len(st.audit)) + 1)
	st.audit = append(st.audit, stored)
	return stored, nil
}

func (r *auditRepository) ListAfter(_ context.Context, afterSeq int64, limit int) ([]*audit.Record, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	start := sort.Search(len(st.audit), func(i int) bool { return st.audit[i].Seq() > afterSeq })
	end := len(st.audit)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	out := make([]*audit.Record, end-start)
	copy(out, st.audit[start:end])
	return out, nil
}

func (r *auditRepository) ListByEntity(_ context.Context, entityType, entityID string) ([]*audit.Record, error) {
	st, err := r.uow.reader()
	if err != nil {
		return nil, err
	}
	out := make([]*audit.Record, 0)
	for _, rec := range st.audit {
		if rec.EntityType() == entityType && rec.EntityID() == entityID {
			out = append(out, rec)
		}
	}
	return out, nil
}
