package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrCreateAssignmentsCommandIsNotConstructed = errors.New(
	"CreateAssignmentsCommand must be created via NewCreateAssignmentsCommand constructor",
)

// CreateAssignmentsCommand routes a package to a crew.
type CreateAssignmentsCommand struct { //nolint:recvcheck //using for validation
	actor     string
	packageID kernel.Code
	teamID    kernel.Code
	priority  assignment.Priority
	expedite  bool
	guard     guard.ConstructorGuard
}

// NewCreateAssignmentsCommand treats an empty priority as Normal.
func NewCreateAssignmentsCommand(actor, packageID, teamID, priority string, expedite bool) (CreateAssignmentsCommand, error) {
	c := CreateAssignmentsCommand{
		actor:    strings.TrimSpace(actor),
		expedite: expedite,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setPackageID(packageID),
		c.setTeamID(teamID),
		c.setPriority(priority),
	); err != nil {
		return CreateAssignmentsCommand{}, err
	}

	return c, nil
}

func (c CreateAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentsCommandIsNotConstructed)
}

func (c CreateAssignmentsCommand) Actor() string                 { return c.actor }
func (c CreateAssignmentsCommand) PackageID() kernel.Code        { return c.packageID }
func (c CreateAssignmentsCommand) TeamID() kernel.Code           { return c.teamID }
func (c CreateAssignmentsCommand) Priority() assignment.Priority { return c.priority }
func (c CreateAssignmentsCommand) Expedite() bool                { return c.expedite }

func (c *CreateAssignmentsCommand) setPackageID(id string) error {
	code, err := kernel.NewCode(id)
	if err != nil {
		return err
	}
	c.packageID = code
	return nil
}

func (c *CreateAssignmentsCommand) setTeamID(id string) error {
	code, err := kernel.NewCode(id)
	if err != nil {
		return err
	}
	c.teamID = code
	return nil
}

func (c *CreateAssignmentsCommand) setPriority(priority string) error {
	p, err := assignment.ParsePriority(priority)
	if err != nil {
		return err
	}
	c.priority = p
	return nil
}
