package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var (
	ErrAssignExceptionCommandIsNotConstructed = errors.New(
		"AssignExceptionCommand must be created via NewAssignExceptionCommand constructor",
	)
	ErrResolveExceptionCommandIsNotConstructed = errors.New(
		"ResolveExceptionCommand must be created via NewResolveExceptionCommand constructor",
	)
	ErrCloseExceptionCommandIsNotConstructed = errors.New(
		"CloseExceptionCommand must be created via NewCloseExceptionCommand constructor",
	)
)

// AssignExceptionCommand hands an exception to someone. A blank assignee is
// rejected by the exception itself.
type AssignExceptionCommand struct { //nolint:recvcheck //using for validation
	actor       string
	exceptionID kernel.UUID
	assignee    string
	guard       guard.ConstructorGuard
}

func NewAssignExceptionCommand(actor, exceptionID, assignee string) (AssignExceptionCommand, error) {
	id, err := kernel.UUIDFromString(exceptionID)
	if err != nil {
		return AssignExceptionCommand{}, err
	}
	return AssignExceptionCommand{
		actor:       strings.TrimSpace(actor),
		exceptionID: id,
		assignee:    assignee,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AssignExceptionCommand) Validate() error {
	return c.guard.Validate(ErrAssignExceptionCommandIsNotConstructed)
}

func (c AssignExceptionCommand) Actor() string            { return c.actor }
func (c AssignExceptionCommand) ExceptionID() kernel.UUID { return c.exceptionID }
func (c AssignExceptionCommand) Assignee() string         { return c.assignee }

type ResolveExceptionCommand struct { //nolint:recvcheck //using for validation
	actor       string
	exceptionID kernel.UUID
	notes       string
	guard       guard.ConstructorGuard
}

func NewResolveExceptionCommand(actor, exceptionID, notes string) (ResolveExceptionCommand, error) {
	id, err := kernel.UUIDFromString(exceptionID)
	if err != nil {
		return ResolveExceptionCommand{}, err
	}
	return ResolveExceptionCommand{
		actor:       strings.TrimSpace(actor),
		exceptionID: id,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveExceptionCommand) Validate() error {
	return c.guard.Validate(ErrResolveExceptionCommandIsNotConstructed)
}

func (c ResolveExceptionCommand) Actor() string            { return c.actor }
func (c ResolveExceptionCommand) ExceptionID() kernel.UUID { return c.exceptionID }
func (c ResolveExceptionCommand) Notes() string            { return c.notes }

type CloseExceptionCommand struct { //nolint:recvcheck //using for validation
	actor       string
	exceptionID kernel.UUID
	guard       guard.ConstructorGuard
}

func NewCloseExceptionCommand(actor, exceptionID string) (CloseExceptionCommand, error) {
	id, err := kernel.UUIDFromString(exceptionID)
	if err != nil {
		return CloseExceptionCommand{}, err
	}
	return CloseExceptionCommand{
		actor:       strings.TrimSpace(actor),
		exceptionID: id,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CloseExceptionCommand) Validate() error {
	return c.guard.Validate(ErrCloseExceptionCommandIsNotConstructed)
}

func (c CloseExceptionCommand) Actor() string            { return c.actor }
func (c CloseExceptionCommand) ExceptionID() kernel.UUID { return c.exceptionID }
