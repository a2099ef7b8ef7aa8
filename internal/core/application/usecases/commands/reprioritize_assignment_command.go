package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrReprioritizeAssignmentCommandIsNotConstructed = errors.New(
	"ReprioritizeAssignmentCommand must be created via NewReprioritizeAssignmentCommand constructor",
)

// ReprioritizeAssignmentCommand moves an assignment in its crew queue. A nil
// order clears the explicit position.
type ReprioritizeAssignmentCommand struct { //nolint:recvcheck //using for validation
	actor        string
	assignmentID kernel.UUID
	priority     assignment.Priority
	expedite     bool
	order        *int
	guard        guard.ConstructorGuard
}

func NewReprioritizeAssignmentCommand(
	actor, assignmentID, priority string,
	expedite bool,
	order *int,
) (ReprioritizeAssignmentCommand, error) {
	c := ReprioritizeAssignmentCommand{
		actor:    strings.TrimSpace(actor),
		expedite: expedite,
		guard:    guard.NewConstructorGuard(),
	}
	if order != nil {
		o := *order
		c.order = &o
	}

	if err := errors.Join(c.setAssignmentID(assignmentID), c.setPriority(priority)); err != nil {
		return ReprioritizeAssignmentCommand{}, err
	}

	return c, nil
}

func (c ReprioritizeAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrReprioritizeAssignmentCommandIsNotConstructed)
}

func (c ReprioritizeAssignmentCommand) Actor() string                 { return c.actor }
func (c ReprioritizeAssignmentCommand) AssignmentID() kernel.UUID     { return c.assignmentID }
func (c ReprioritizeAssignmentCommand) Priority() assignment.Priority { return c.priority }
func (c ReprioritizeAssignmentCommand) Expedite() bool                { return c.expedite }
func (c ReprioritizeAssignmentCommand) Order() *int                   { return c.order }

func (c *ReprioritizeAssignmentCommand) setAssignmentID(id string) error {
	uid, err := kernel.UUIDFromString(id)
	if err != nil {
		return err
	}
	c.assignmentID = uid
	return nil
}

func (c *ReprioritizeAssignmentCommand) setPriority(priority string) error {
	p, err := assignment.ParsePriority(priority)
	if err != nil {
		return err
	}
	c.priority = p
	return nil
}
