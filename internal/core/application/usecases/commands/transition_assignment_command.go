package commands

import (
	"errors"
	"fmt"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
	"hangerflow/internal/pkg/guard"
)

var ErrTransitionAssignmentCommandIsNotConstructed = errors.New(
	"TransitionAssignmentCommand must be created via NewTransitionAssignmentCommand constructor",
)

// AssignmentTransition names a state change of the assignment workflow.
type AssignmentTransition string

const (
	TransitionStart       AssignmentTransition = "start"
	TransitionPause       AssignmentTransition = "pause"
	TransitionResume      AssignmentTransition = "resume"
	TransitionSubmitForQA AssignmentTransition = "submit-qa"
	TransitionFinish      AssignmentTransition = "finish"
)

func (t AssignmentTransition) Validate() error {
	switch t {
	case TransitionStart, TransitionPause, TransitionResume, TransitionSubmitForQA, TransitionFinish:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transition", fmt.Errorf("unknown transition %q", string(t)))
	}
}

type TransitionAssignmentCommand struct { //nolint:recvcheck //using for validation
	actor        string
	assignmentID kernel.UUID
	transition   AssignmentTransition
	guard        guard.ConstructorGuard
}

func NewTransitionAssignmentCommand(actor, assignmentID string, transition AssignmentTransition) (TransitionAssignmentCommand, error) {
	c := TransitionAssignmentCommand{
		actor:      strings.TrimSpace(actor),
		transition: transition,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setAssignmentID(assignmentID), transition.Validate()); err != nil {
		return TransitionAssignmentCommand{}, err
	}

	return c, nil
}

func (c TransitionAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionAssignmentCommandIsNotConstructed)
}

func (c TransitionAssignmentCommand) Actor() string                    { return c.actor }
func (c TransitionAssignmentCommand) AssignmentID() kernel.UUID        { return c.assignmentID }
func (c TransitionAssignmentCommand) Transition() AssignmentTransition { return c.transition }

func (c *TransitionAssignmentCommand) setAssignmentID(id string) error {
	uid, err := kernel.UUIDFromString(id)
	if err != nil {
		return err
	}
	c.assignmentID = uid
	return nil
}
