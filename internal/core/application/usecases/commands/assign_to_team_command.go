package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
	"hangerflow/internal/pkg/guard"
)

var ErrAssignToTeamCommandIsNotConstructed = errors.New(
	"AssignToTeamCommand must be created via NewAssignToTeamCommand constructor",
)

// AssignToTeamCommand reassigns many assignments to one crew. Assignment ids
// stay raw so a malformed id fails alone.
type AssignToTeamCommand struct { //nolint:recvcheck //using for validation
	actor         string
	assignmentIDs []string
	teamID        kernel.Code
	guard         guard.ConstructorGuard
}

func NewAssignToTeamCommand(actor string, assignmentIDs []string, teamID string) (AssignToTeamCommand, error) {
	c := AssignToTeamCommand{
		actor: strings.TrimSpace(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setAssignmentIDs(assignmentIDs), c.setTeamID(teamID)); err != nil {
		return AssignToTeamCommand{}, err
	}

	return c, nil
}

func (c AssignToTeamCommand) Validate() error {
	return c.guard.Validate(ErrAssignToTeamCommandIsNotConstructed)
}

func (c AssignToTeamCommand) Actor() string { return c.actor }

func (c AssignToTeamCommand) AssignmentIDs() []string {
	return append([]string(nil), c.assignmentIDs...)
}

func (c AssignToTeamCommand) TeamID() kernel.Code { return c.teamID }

func (c *AssignToTeamCommand) setAssignmentIDs(ids []string) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("assignmentIds")
	}
	c.assignmentIDs = append([]string(nil), ids...)
	return nil
}

func (c *AssignToTeamCommand) setTeamID(id string) error {
	code, err := kernel.NewCode(id)
	if err != nil {
		return err
	}
	c.teamID = code
	return nil
}
