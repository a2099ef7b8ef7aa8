package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrSetHangerStatusCommandIsNotConstructed = errors.New(
	"SetHangerStatusCommand must be created via NewSetHangerStatusCommand constructor",
)

type SetHangerStatusCommand struct { //nolint:recvcheck //using for validation
	actor    string
	hangerID kernel.Code
	status   hanger.Status
	guard    guard.ConstructorGuard
}

func NewSetHangerStatusCommand(actor, hangerID, status string) (SetHangerStatusCommand, error) {
	c := SetHangerStatusCommand{
		actor: strings.TrimSpace(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setHangerID(hangerID), c.setStatus(status)); err != nil {
		return SetHangerStatusCommand{}, err
	}

	return c, nil
}

func (c SetHangerStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetHangerStatusCommandIsNotConstructed)
}

func (c SetHangerStatusCommand) Actor() string         { return c.actor }
func (c SetHangerStatusCommand) HangerID() kernel.Code { return c.hangerID }
func (c SetHangerStatusCommand) Status() hanger.Status { return c.status }

func (c *SetHangerStatusCommand) setHangerID(id string) error {
	code, err := kernel.NewCode(id)
	if err != nil {
		return err
	}
	c.hangerID = code
	return nil
}

func (c *SetHangerStatusCommand) setStatus(status string) error {
	st, err := hanger.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = st
	return nil
}
