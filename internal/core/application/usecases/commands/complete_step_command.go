package commands

import (
	"errors"
	"maps"
	"strings"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
	"hangerflow/internal/pkg/guard"
)

var ErrCompleteStepCommandIsNotConstructed = errors.New(
	"CompleteStepCommand must be created via NewCompleteStepCommand constructor",
)

// CompleteStepCommand records a finished station with its captured inputs.
// Whether the key belongs to the assignment is decided by the assignment.
type CompleteStepCommand struct { //nolint:recvcheck //using for validation
	actor        string
	assignmentID kernel.UUID
	stepKey      assignment.StepKey
	data         map[string]any
	guard        guard.ConstructorGuard
}

func NewCompleteStepCommand(actor, assignmentID, stepKey string, data map[string]any) (CompleteStepCommand, error) {
	c := CompleteStepCommand{
		actor: strings.TrimSpace(actor),
		data:  maps.Clone(data),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setAssignmentID(assignmentID), c.setStepKey(stepKey)); err != nil {
		return CompleteStepCommand{}, err
	}

	return c, nil
}

func (c CompleteStepCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStepCommandIsNotConstructed)
}

func (c CompleteStepCommand) Actor() string               { return c.actor }
func (c CompleteStepCommand) AssignmentID() kernel.UUID   { return c.assignmentID }
func (c CompleteStepCommand) StepKey() assignment.StepKey { return c.stepKey }
func (c CompleteStepCommand) Data() map[string]any        { return maps.Clone(c.data) }

func (c *CompleteStepCommand) setAssignmentID(id string) error {
	uid, err := kernel.UUIDFromString(id)
	if err != nil {
		return err
	}
	c.assignmentID = uid
	return nil
}

func (c *CompleteStepCommand) setStepKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("stepKey")
	}
	c.stepKey = assignment.StepKey(key)
	return nil
}
