package commands

import (
	"context"
	"time"

	"hangerflow/internal/core/domain/model/assignment"
)

type PushToolEventCommandHandler struct {
	uowFactory UoWFactory
}

func NewPushToolEventCommandHandler(uowFactory UoWFactory) PushToolEventCommandHandler {
	return PushToolEventCommandHandler{uowFactory: uowFactory}
}

func (h PushToolEventCommandHandler) Handle(ctx context.Context, command PushToolEventCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	ev := assignment.NewToolEvent(command.Station(), command.ToolID(), command.Event(), command.Value(), time.Now())

	return mutateAssignment(ctx, h.uowFactory, command.AssignmentID(), command.Actor(), ActionToolEvent,
		func(a *assignment.Assignment) error {
			a.RecordToolEvent(ev)
			return nil
		})
}
