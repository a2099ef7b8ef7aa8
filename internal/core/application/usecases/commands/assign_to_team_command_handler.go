package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/kernel"
)

// AssignToTeamCommandHandler reassigns each id in its own unit of work. When
// the crew does not exist every id fails with the same NotFound error.
type AssignToTeamCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignToTeamCommandHandler(uowFactory UoWFactory) AssignToTeamCommandHandler {
	return AssignToTeamCommandHandler{uowFactory: uowFactory}
}

func (h AssignToTeamCommandHandler) Handle(ctx context.Context, command AssignToTeamCommand) (BulkResult, error) {
	if err := command.Validate(); err != nil {
		return BulkResult{}, err
	}

	var result BulkResult
	ids := command.AssignmentIDs()

	if err := h.teamExists(ctx, command.TeamID()); err != nil {
		for _, id := range ids {
			result.record(id, err)
		}
		return result, nil
	}

	for _, raw := range ids {
		result.record(raw, h.assignOne(ctx, command, raw))
	}
	return result, nil
}

func (h AssignToTeamCommandHandler) teamExists(ctx context.Context, teamID kernel.Code) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.TeamRepository().Get(ctx, teamID)
	return err
}

func (h AssignToTeamCommandHandler) assignOne(ctx context.Context, command AssignToTeamCommand, raw string) error {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return err
	}
	return mutateAssignment(ctx, h.uowFactory, id, command.Actor(), ActionAssignmentRouted,
		func(a *assignment.Assignment) error {
			return a.AssignTeam(command.TeamID())
		})
}
