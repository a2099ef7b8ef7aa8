package commands

import (
	"errors"

	"hangerflow/internal/pkg/guard"
)

// ScanShortagesCommand asks for one pass over kitted and in-fabrication
// packages that are still short of material.
//
// Example:
//
//	cmd := NewScanShortagesCommand()
//	handler := NewScanShortagesCommandHandler(uowFactory)
//	opened, err := handler.Handle(ctx, cmd)
type ScanShortagesCommand struct {
	guard guard.ConstructorGuard
}

var ErrScanShortagesCommandIsNotConstructed = errors.New(
	"ScanShortagesCommand must be created via NewScanShortagesCommand constructor",
)

func NewScanShortagesCommand() ScanShortagesCommand {
	return ScanShortagesCommand{guard: guard.NewConstructorGuard()}
}

func (c ScanShortagesCommand) Validate() error {
	return c.guard.Validate(ErrScanShortagesCommandIsNotConstructed)
}
