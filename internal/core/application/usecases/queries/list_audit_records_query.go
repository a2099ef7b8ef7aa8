package queries

import (
	"errors"

	"hangerflow/internal/pkg/errs"
	"hangerflow/internal/pkg/guard"
)

const (
	DefaultAuditPageSize = 100
	MaxAuditPageSize     = 1000
)

var ErrListAuditRecordsQueryIsNotConstructed = errors.New(
	"ListAuditRecordsQuery must be created via NewListAuditRecordsQuery constructor",
)

// ListAuditRecordsQuery polls the audit log from a cursor.
type ListAuditRecordsQuery struct {
	afterSeq int64
	limit    int
	guard    guard.ConstructorGuard
}

// NewListAuditRecordsQuery uses DefaultAuditPageSize for a zero limit.
func NewListAuditRecordsQuery(afterSeq int64, limit int) (ListAuditRecordsQuery, error) {
	if afterSeq < 0 {
		return ListAuditRecordsQuery{}, errs.NewValueIsOutOfRangeError("afterSeq", afterSeq, 0, "unbounded")
	}
	if limit == 0 {
		limit = DefaultAuditPageSize
	}
	if limit < 0 || limit > MaxAuditPageSize {
		return ListAuditRecordsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxAuditPageSize)
	}
	return ListAuditRecordsQuery{afterSeq: afterSeq, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAuditRecordsQuery) Validate() error {
	return q.guard.Validate(ErrListAuditRecordsQueryIsNotConstructed)
}

func (q ListAuditRecordsQuery) AfterSeq() int64 { return q.afterSeq }
func (q ListAuditRecordsQuery) Limit() int      { return q.limit }
