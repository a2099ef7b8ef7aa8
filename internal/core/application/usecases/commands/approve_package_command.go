package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrApprovePackageCommandIsNotConstructed = errors.New(
	"ApprovePackageCommand must be created via NewApprovePackageCommand constructor",
)

// ApprovePackageCommand approves a package for fabrication. Shortfall does not
// block approval; it is recorded on the package.
type ApprovePackageCommand struct { //nolint:recvcheck //using for validation
	actor     string
	packageID kernel.Code
	guard     guard.ConstructorGuard
}

func NewApprovePackageCommand(actor, packageID string) (ApprovePackageCommand, error) {
	id, err := kernel.NewCode(packageID)
	if err != nil {
		return ApprovePackageCommand{}, err
	}
	return ApprovePackageCommand{
		actor:     strings.TrimSpace(actor),
		packageID: id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ApprovePackageCommand) Validate() error {
	return c.guard.Validate(ErrApprovePackageCommandIsNotConstructed)
}

func (c ApprovePackageCommand) Actor() string          { return c.actor }
func (c ApprovePackageCommand) PackageID() kernel.Code { return c.packageID }
