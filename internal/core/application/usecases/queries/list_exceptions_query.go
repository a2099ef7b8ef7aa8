package queries

import (
	"errors"
	"strings"

	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/pkg/guard"
)

var ErrListExceptionsQueryIsNotConstructed = errors.New(
	"ListExceptionsQuery must be created via NewListExceptionsQuery constructor",
)

type ListExceptionsQuery struct {
	filter exception.Filter
	guard  guard.ConstructorGuard
}

// NewListExceptionsQuery parses the optional filter fields. Empty strings
// match everything.
func NewListExceptionsQuery(state, severity, exceptionType, ref string) (ListExceptionsQuery, error) {
	var (
		filter  exception.Filter
		errList []error
		err     error
	)
	if strings.TrimSpace(state) != "" {
		filter.State, err = exception.ParseState(state)
		errList = append(errList, err)
	}
	if strings.TrimSpace(severity) != "" {
		filter.Severity, err = exception.ParseSeverity(severity)
		errList = append(errList, err)
	}
	if strings.TrimSpace(exceptionType) != "" {
		filter.Type, err = exception.ParseType(exceptionType)
		errList = append(errList, err)
	}
	filter.Ref = strings.TrimSpace(ref)

	if err = errors.Join(errList...); err != nil {
		return ListExceptionsQuery{}, err
	}
	return ListExceptionsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListExceptionsQuery) Validate() error {
	return q.guard.Validate(ErrListExceptionsQueryIsNotConstructed)
}

func (q ListExceptionsQuery) Filter() exception.Filter { return q.filter }
