package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/pkg/guard"
)

var ErrAdvancePackageCommandIsNotConstructed = errors.New(
	"AdvancePackageCommand must be created via NewAdvancePackageCommand constructor",
)

// AdvancePackageCommand moves a package to a new status.
type AdvancePackageCommand struct { //nolint:recvcheck //using for validation
	actor     string
	packageID kernel.Code
	status    workpackage.Status
	guard     guard.ConstructorGuard
}

func NewAdvancePackageCommand(actor, packageID, status string) (AdvancePackageCommand, error) {
	c := AdvancePackageCommand{
		actor: strings.TrimSpace(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setPackageID(packageID), c.setStatus(status)); err != nil {
		return AdvancePackageCommand{}, err
	}

	return c, nil
}

func (c AdvancePackageCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePackageCommandIsNotConstructed)
}

func (c AdvancePackageCommand) Actor() string              { return c.actor }
func (c AdvancePackageCommand) PackageID() kernel.Code     { return c.packageID }
func (c AdvancePackageCommand) Status() workpackage.Status { return c.status }

func (c *AdvancePackageCommand) setPackageID(id string) error {
	code, err := kernel.NewCode(id)
	if err != nil {
		return err
	}
	c.packageID = code
	return nil
}

func (c *AdvancePackageCommand) setStatus(status string) error {
	st, err := workpackage.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = st
	return nil
}
