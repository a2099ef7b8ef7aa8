package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrReserveInventoryCommandIsNotConstructed = errors.New(
	"ReserveInventoryCommand must be created via NewReserveInventoryCommand constructor",
)

type ReserveInventoryCommand struct { //nolint:recvcheck //using for validation
	actor     string
	packageID kernel.Code
	guard     guard.ConstructorGuard
}

func NewReserveInventoryCommand(actor, packageID string) (ReserveInventoryCommand, error) {
	id, err := kernel.NewCode(packageID)
	if err != nil {
		return ReserveInventoryCommand{}, err
	}
	return ReserveInventoryCommand{
		actor:     strings.TrimSpace(actor),
		packageID: id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReserveInventoryCommand) Validate() error {
	return c.guard.Validate(ErrReserveInventoryCommandIsNotConstructed)
}

func (c ReserveInventoryCommand) Actor() string          { return c.actor }
func (c ReserveInventoryCommand) PackageID() kernel.Code { return c.packageID }
