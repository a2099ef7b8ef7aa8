package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand groups existing hangers into a new Submitted package.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	actor     string
	packageID kernel.Code
	projectID kernel.Code
	name      string
	level     string
	zone      string
	hangerIDs []kernel.Code
	guard     guard.ConstructorGuard
}

func NewCreatePackageCommand(
	actor, packageID, projectID, name, level, zone string,
	hangerIDs []string,
) (CreatePackageCommand, error) {
	c := CreatePackageCommand{
		actor: strings.TrimSpace(actor),
		name:  strings.TrimSpace(name),
		level: strings.TrimSpace(level),
		zone:  strings.TrimSpace(zone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setPackageID(packageID),
		c.setProjectID(projectID),
		c.setHangerIDs(hangerIDs),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return c, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) Actor() string            { return c.actor }
func (c CreatePackageCommand) PackageID() kernel.Code   { return c.packageID }
func (c CreatePackageCommand) ProjectID() kernel.Code   { return c.projectID }
func (c CreatePackageCommand) Name() string             { return c.name }
func (c CreatePackageCommand) Level() string            { return c.level }
func (c CreatePackageCommand) Zone() string             { return c.zone }
func (c CreatePackageCommand) HangerIDs() []kernel.Code { return c.hangerIDs }

func (c *CreatePackageCommand) setPackageID(id string) error {
	code, err := kernel.NewCode(id)
	if err != nil {
		return err
	}
	c.packageID = code
	return nil
}

func (c *CreatePackageCommand) setProjectID(id string) error {
	code, err := kernel.NewCode(id)
	if err != nil {
		return err
	}
	c.projectID = code
	return nil
}

func (c *CreatePackageCommand) setHangerIDs(ids []string) error {
	codes, err := kernel.NewCodes(ids)
	if err != nil {
		return err
	}
	c.hangerIDs = codes
	return nil
}
