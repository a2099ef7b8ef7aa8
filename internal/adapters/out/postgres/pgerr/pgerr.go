// Package pgerr translates PostgreSQL failures into the error kinds the
// application understands.
package pgerr

import (
	"errors"
	"fmt"

	"hangerflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
	lockNotAvailable     = "55P03"
	queryCanceled        = "57014"
	uniqueViolation      = "23505"
	checkViolation       = "23514"
)

// OpenAssignmentIndex allows at most one assignment per hanger that is not
// Done. Two writers routing the same hanger at once collide on it.
const OpenAssignmentIndex = "uq_assignments_open_hanger"

// Classify maps contention to a ConcurrencyConflictError, duplicate keys and
// check violations to validation errors. A collision on OpenAssignmentIndex is
// contention. Other errors are returned as is.
func Classify(resource string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case serializationFailure, deadlockDetected, lockNotAvailable, queryCanceled:
		return errs.NewConcurrencyConflictError(resource, err)
	case uniqueViolation:
		if pgErr.ConstraintName == OpenAssignmentIndex {
			return errs.NewConcurrencyConflictError(resource, err)
		}
		return errs.NewValueIsInvalidErrorWithCause(resource,
			fmt.Errorf("%s already exists: %s", resource, pgErr.Detail))
	case checkViolation:
		return errs.NewValueIsOutOfRangeErrorWithCause(resource, pgErr.ConstraintName, "0", "unbounded", err)
	default:
		return err
	}
}
