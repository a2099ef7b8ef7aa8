package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/pkg/errs"
	"hangerflow/internal/pkg/guard"
)

var ErrBulkAdvancePackagesCommandIsNotConstructed = errors.New(
	"BulkAdvancePackagesCommand must be created via NewBulkAdvancePackagesCommand constructor",
)

// BulkAdvancePackagesCommand advances many packages to one status. Package
// ids are kept as raw strings so a malformed id fails alone.
type BulkAdvancePackagesCommand struct { //nolint:recvcheck //using for validation
	actor      string
	packageIDs []string
	status     workpackage.Status
	guard      guard.ConstructorGuard
}

func NewBulkAdvancePackagesCommand(actor string, packageIDs []string, status string) (BulkAdvancePackagesCommand, error) {
	c := BulkAdvancePackagesCommand{
		actor: strings.TrimSpace(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setPackageIDs(packageIDs), c.setStatus(status)); err != nil {
		return BulkAdvancePackagesCommand{}, err
	}

	return c, nil
}

func (c BulkAdvancePackagesCommand) Validate() error {
	return c.guard.Validate(ErrBulkAdvancePackagesCommandIsNotConstructed)
}

func (c BulkAdvancePackagesCommand) Actor() string { return c.actor }

func (c BulkAdvancePackagesCommand) PackageIDs() []string {
	return append([]string(nil), c.packageIDs...)
}

func (c BulkAdvancePackagesCommand) Status() workpackage.Status { return c.status }

func (c *BulkAdvancePackagesCommand) setPackageIDs(ids []string) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("packageIds")
	}
	c.packageIDs = append([]string(nil), ids...)
	return nil
}

func (c *BulkAdvancePackagesCommand) setStatus(status string) error {
	st, err := workpackage.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = st
	return nil
}
