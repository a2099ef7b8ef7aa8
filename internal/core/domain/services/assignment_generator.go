package services

import (
	"errors"
	"time"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/pkg/errs"
)

// AssignmentGenerator turns a routable package into assignments, one per
// hanger that is not already covered by an open assignment.
type AssignmentGenerator struct {
	newID func() kernel.UUID
}

func NewAssignmentGenerator() AssignmentGenerator {
	return AssignmentGenerator{newID: kernel.NewUUID}
}

// RoutingInput is everything Generate needs about the current state.
type RoutingInput struct {
	Package *workpackage.Package
	Team    *team.Team
	// Hangers of the package keyed by id.
	Hangers map[kernel.Code]*hanger.Hanger
	// Existing assignments of the package's hangers, any status.
	Existing []*assignment.Assignment
	// OpenPackages that may claim the same hangers.
	OpenPackages []*workpackage.Package
	Priority     assignment.Priority
	Expedite     bool
	Now          time.Time
}

// Generate returns the new assignments in package hanger order. A second
// call over the same state returns none.
func (g AssignmentGenerator) Generate(in RoutingInput) ([]*assignment.Assignment, error) {
	if err := errors.Join(in.Package.Validate(), in.Team.Validate()); err != nil {
		return nil, err
	}
	if err := in.Package.ValidateRouting(); err != nil {
		return nil, err
	}
	hangerIDs := in.Package.HangerIDs()
	if err := CheckHangerExclusivity(in.Package.ID(), hangerIDs, in.OpenPackages); err != nil {
		return nil, err
	}

	covered := make(map[kernel.Code]struct{}, len(in.Existing))
	for _, a := range in.Existing {
		if a.IsOpen() {
			covered[a.HangerID()] = struct{}{}
		}
	}

	teamID := in.Team.ID()
	created := make([]*assignment.Assignment, 0, len(hangerIDs))
	for _, hangerID := range hangerIDs {
		if _, ok := covered[hangerID]; ok {
			continue
		}
		h, ok := in.Hangers[hangerID]
		if !ok || h == nil {
			return nil, errs.NewObjectNotFoundError("hanger", hangerID.String())
		}
		steps, err := assignment.StepsFor(h.Type())
		if err != nil {
			return nil, err
		}
		a, err := assignment.New(g.newID(), in.Package.ID(), hangerID, &teamID, in.Priority, in.Expedite, steps, in.Now)
		if err != nil {
			return nil, err
		}
		created = append(created, a)
		covered[hangerID] = struct{}{}
	}
	return created, nil
}
