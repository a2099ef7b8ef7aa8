package commands

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/pkg/errs"
	"hangerflow/internal/pkg/guard"
)

var ErrCreateExceptionCommandIsNotConstructed = errors.New(
	"CreateExceptionCommand must be created via NewCreateExceptionCommand constructor",
)

// CreateExceptionCommand opens an exception against a package, hanger or
// assignment. An empty ref kind is resolved by looking the ref up.
type CreateExceptionCommand struct { //nolint:recvcheck //using for validation
	actor         string
	exceptionType exception.Type
	severity      exception.Severity
	refKind       exception.RefKind
	ref           string
	description   string
	guard         guard.ConstructorGuard
}

func NewCreateExceptionCommand(
	actor, exceptionType, severity, refKind, ref, description string,
) (CreateExceptionCommand, error) {
	c := CreateExceptionCommand{
		actor:       strings.TrimSpace(actor),
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setType(exceptionType),
		c.setSeverity(severity),
		c.setRefKind(refKind),
		c.setRef(ref),
	); err != nil {
		return CreateExceptionCommand{}, err
	}

	return c, nil
}

func (c CreateExceptionCommand) Validate() error {
	return c.guard.Validate(ErrCreateExceptionCommandIsNotConstructed)
}

func (c CreateExceptionCommand) Actor() string                { return c.actor }
func (c CreateExceptionCommand) Type() exception.Type         { return c.exceptionType }
func (c CreateExceptionCommand) Severity() exception.Severity { return c.severity }
func (c CreateExceptionCommand) RefKind() exception.RefKind   { return c.refKind }
func (c CreateExceptionCommand) Ref() string                  { return c.ref }
func (c CreateExceptionCommand) Description() string          { return c.description }

func (c *CreateExceptionCommand) setType(t string) error {
	parsed, err := exception.ParseType(t)
	if err != nil {
		return err
	}
	c.exceptionType = parsed
	return nil
}

func (c *CreateExceptionCommand) setSeverity(s string) error {
	parsed, err := exception.ParseSeverity(s)
	if err != nil {
		return err
	}
	c.severity = parsed
	return nil
}

func (c *CreateExceptionCommand) setRefKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return nil
	}
	parsed, err := exception.ParseRefKind(kind)
	if err != nil {
		return err
	}
	c.refKind = parsed
	return nil
}

func (c *CreateExceptionCommand) setRef(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errs.NewValueIsRequiredError("ref")
	}
	c.ref = ref
	return nil
}
