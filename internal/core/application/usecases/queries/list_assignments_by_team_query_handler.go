package queries

import (
	"context"

	"hangerflow/internal/core/domain/model/assignment"
)

type ListAssignmentsByTeamQueryHandler struct {
	uowFactory UoWFactory
}

func NewListAssignmentsByTeamQueryHandler(uowFactory UoWFactory) ListAssignmentsByTeamQueryHandler {
	return ListAssignmentsByTeamQueryHandler{uowFactory: uowFactory}
}

// Handle returns the crew's queue in work order.
func (h ListAssignmentsByTeamQueryHandler) Handle(
	ctx context.Context,
	query ListAssignmentsByTeamQuery,
) ([]assignment.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow UoW) ([]assignment.Snapshot, error) {
		list, err := uow.AssignmentRepository().ListByTeam(ctx, query.TeamID())
		if err != nil {
			return nil, err
		}

		queue := make([]*assignment.Assignment, 0, len(list))
		for _, a := range list {
			if a.IsOpen() || query.IncludeDone() {
				queue = append(queue, a)
			}
		}
		assignment.SortQueue(queue)

		out := make([]assignment.Snapshot, 0, len(queue))
		for _, a := range queue {
			out = append(out, a.Snapshot())
		}
		return out, nil
	})
}
