package commands

import (
	"context"

	"hangerflow/internal/core/domain/model/workpackage"
)

// BulkAdvancePackagesCommandHandler runs AdvancePackage once per id, each in
// its own unit of work, and never stops at the first failure.
type BulkAdvancePackagesCommandHandler struct {
	advance AdvancePackageCommandHandler
}

func NewBulkAdvancePackagesCommandHandler(uowFactory UoWFactory, validate workpackage.TransitionValidator) BulkAdvancePackagesCommandHandler {
	return BulkAdvancePackagesCommandHandler{advance: NewAdvancePackageCommandHandler(uowFactory, validate)}
}

func (h BulkAdvancePackagesCommandHandler) Handle(ctx context.Context, command BulkAdvancePackagesCommand) (BulkResult, error) {
	if err := command.Validate(); err != nil {
		return BulkResult{}, err
	}

	var result BulkResult
	for _, id := range command.PackageIDs() {
		if err := ctx.Err(); err != nil {
			result.record(id, err)
			continue
		}
		cmd, err := NewAdvancePackageCommand(command.Actor(), id, command.Status().String())
		if err == nil {
			err = h.advance.Handle(ctx, cmd)
		}
		result.record(id, err)
	}
	return result, nil
}
