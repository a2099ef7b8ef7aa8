package queries

import (
	"context"

	"hangerflow/internal/core/domain/model/exception"
)

type ListExceptionsQueryHandler struct {
	uowFactory UoWFactory
}

func NewListExceptionsQueryHandler(uowFactory UoWFactory) ListExceptionsQueryHandler {
	return ListExceptionsQueryHandler{uowFactory: uowFactory}
}

// Handle returns matching exceptions, most severe first and then newest first.
func (h ListExceptionsQueryHandler) Handle(ctx context.Context, query ListExceptionsQuery) ([]exception.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow UoW) ([]exception.Snapshot, error) {
		list, err := uow.ExceptionRepository().List(ctx, query.Filter())
		if err != nil {
			return nil, err
		}
		exception.SortBySeverity(list)

		out := make([]exception.Snapshot, 0, len(list))
		for _, e := range list {
			out = append(out, e.Snapshot())
		}
		return out, nil
	})
}
