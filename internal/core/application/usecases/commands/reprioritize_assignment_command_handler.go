package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/assignment"
)

type ReprioritizeAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

func NewReprioritizeAssignmentCommandHandler(uowFactory UoWFactory) ReprioritizeAssignmentCommandHandler {
	return ReprioritizeAssignmentCommandHandler{uowFactory: uowFactory}
}

func (h ReprioritizeAssignmentCommandHandler) Handle(ctx context.Context, command ReprioritizeAssignmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return mutateAssignment(ctx, h.uowFactory, command.AssignmentID(), command.Actor(), ActionReprioritized,
		func(a *assignment.Assignment) error {
			return a.Reprioritize(command.Priority(), command.Expedite(), command.Order())
		})
}
