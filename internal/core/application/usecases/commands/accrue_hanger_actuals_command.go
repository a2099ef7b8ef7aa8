package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrAccrueHangerActualsCommandIsNotConstructed = errors.New(
	"AccrueHangerActualsCommand must be created via NewAccrueHangerActualsCommand constructor",
)

// AccrueHangerActualsCommand adds labor hours and material cost to a hanger.
type AccrueHangerActualsCommand struct { //nolint:recvcheck //using for validation
	actor    string
	hangerID kernel.Code
	hours    kernel.Quantity
	cost     kernel.Quantity
	guard    guard.ConstructorGuard
}

func NewAccrueHangerActualsCommand(actor, hangerID string, hours, cost decimal.Decimal) (AccrueHangerActualsCommand, error) {
	c := AccrueHangerActualsCommand{
		actor: strings.TrimSpace(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setHangerID(hangerID), c.setHours(hours), c.setCost(cost)); err != nil {
		return AccrueHangerActualsCommand{}, err
	}

	return c, nil
}

func (c AccrueHangerActualsCommand) Validate() error {
	return c.guard.Validate(ErrAccrueHangerActualsCommandIsNotConstructed)
}

func (c AccrueHangerActualsCommand) Actor() string          { return c.actor }
func (c AccrueHangerActualsCommand) HangerID() kernel.Code  { return c.hangerID }
func (c AccrueHangerActualsCommand) Hours() kernel.Quantity { return c.hours }
func (c AccrueHangerActualsCommand) Cost() kernel.Quantity  { return c.cost }

func (c *AccrueHangerActualsCommand) setHangerID(id string) error {
	code, err := kernel.NewCode(id)
	if err != nil {
		return err
	}
	c.hangerID = code
	return nil
}

func (c *AccrueHangerActualsCommand) setHours(hours decimal.Decimal) error {
	q, err := kernel.NewQuantity(hours)
	if err != nil {
		return fmt.Errorf("hours: %w", err)
	}
	c.hours = q
	return nil
}

func (c *AccrueHangerActualsCommand) setCost(cost decimal.Decimal) error {
	q, err := kernel.NewQuantity(cost)
	if err != nil {
		return fmt.Errorf("cost: %w", err)
	}
	c.cost = q
	return nil
}
