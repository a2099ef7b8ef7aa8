package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrRejectPackageCommandIsNotConstructed = errors.New(
	"RejectPackageCommand must be created via NewRejectPackageCommand constructor",
)

// RejectPackageCommand terminates a Submitted or Planned package. The reason
// is checked by the package itself so a blank reason surfaces from Handle.
type RejectPackageCommand struct { //nolint:recvcheck //using for validation
	actor     string
	packageID kernel.Code
	reason    string
	guard     guard.ConstructorGuard
}

func NewRejectPackageCommand(actor, packageID, reason string) (RejectPackageCommand, error) {
	id, err := kernel.NewCode(packageID)
	if err != nil {
		return RejectPackageCommand{}, err
	}
	return RejectPackageCommand{
		actor:     strings.TrimSpace(actor),
		packageID: id,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RejectPackageCommand) Validate() error {
	return c.guard.Validate(ErrRejectPackageCommandIsNotConstructed)
}

func (c RejectPackageCommand) Actor() string          { return c.actor }
func (c RejectPackageCommand) PackageID() kernel.Code { return c.packageID }
func (c RejectPackageCommand) Reason() string         { return c.reason }
