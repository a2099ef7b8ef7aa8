package commands

import (
	"context"
	"time"

	"hangerflow/internal/core/domain/model/assignment"
)

// TransitionAssignmentCommandHandler drives Queued -> InProgress ->
// (Paused <-> InProgress) -> QA -> Done.
type TransitionAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

func NewTransitionAssignmentCommandHandler(uowFactory UoWFactory) TransitionAssignmentCommandHandler {
	return TransitionAssignmentCommandHandler{uowFactory: uowFactory}
}

func (h TransitionAssignmentCommandHandler) Handle(ctx context.Context, command TransitionAssignmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	action, change := transitionFor(command.Transition(), time.Now())

	return mutateAssignment(ctx, h.uowFactory, command.AssignmentID(), command.Actor(), action, change)
}

func transitionFor(t AssignmentTransition, now time.Time) (string, func(a *assignment.Assignment) error) {
	switch t {
	case TransitionPause:
		return ActionAssignmentPaused, (*assignment.Assignment).Pause
	case TransitionResume:
		return ActionAssignmentResumed, (*assignment.Assignment).Resume
	case TransitionSubmitForQA:
		return ActionAssignmentSubmitted, (*assignment.Assignment).SubmitForQA
	case TransitionFinish:
		return ActionAssignmentFinished, func(a *assignment.Assignment) error { return a.Finish(now) }
	default:
		return ActionAssignmentStarted, func(a *assignment.Assignment) error { return a.Start(now) }
	}
}
