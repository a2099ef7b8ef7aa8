package queries

import (
	"errors"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/guard"
)

var ErrListAssignmentsByTeamQueryIsNotConstructed = errors.New(
	"ListAssignmentsByTeamQuery must be created via NewListAssignmentsByTeamQuery constructor",
)

type ListAssignmentsByTeamQuery struct {
	teamID      kernel.Code
	includeDone bool
	guard       guard.ConstructorGuard
}

// NewListAssignmentsByTeamQuery builds a crew queue query. Done assignments
// are left out unless includeDone is set.
func NewListAssignmentsByTeamQuery(teamID string, includeDone bool) (ListAssignmentsByTeamQuery, error) {
	id, err := kernel.NewCode(teamID)
	if err != nil {
		return ListAssignmentsByTeamQuery{}, err
	}
	return ListAssignmentsByTeamQuery{
		teamID:      id,
		includeDone: includeDone,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListAssignmentsByTeamQuery) Validate() error {
	return q.guard.Validate(ErrListAssignmentsByTeamQueryIsNotConstructed)
}

func (q ListAssignmentsByTeamQuery) TeamID() kernel.Code { return q.teamID }
func (q ListAssignmentsByTeamQuery) IncludeDone() bool   { return q.includeDone }
