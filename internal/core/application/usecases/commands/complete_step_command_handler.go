package commands

import (
	"context"
	"time"

	"hangerflow/internal/core/domain/model/assignment"
)

// CompleteStepCommandHandler never changes the assignment status.
type CompleteStepCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteStepCommandHandler(uowFactory UoWFactory) CompleteStepCommandHandler {
	return CompleteStepCommandHandler{uowFactory: uowFactory}
}

func (h CompleteStepCommandHandler) Handle(ctx context.Context, command CompleteStepCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := time.Now()
	return mutateAssignment(ctx, h.uowFactory, command.AssignmentID(), command.Actor(), ActionStepCompleted,
		func(a *assignment.Assignment) error {
			return a.CompleteStep(command.StepKey(), command.Data(), now)
		})
}
