package workpackage

import "hangerflow/internal/pkg/errs"

// TransitionValidator decides whether a status change is legal. A nil
// validator allows every change.
type TransitionValidator func(from, to Status) error

// Graph is an allowed-edge set keyed by the source status.
type Graph map[Status][]Status

// NewGraphValidator builds a validator that accepts only the edges in g.
// Staying in the same status is always accepted.
func NewGraphValidator(g Graph) TransitionValidator {
	allowed := make(map[Status]map[Status]struct{}, len(g))
	for from, tos := range g {
		set := make(map[Status]struct{}, len(tos))
		for _, to := range tos {
			set[to] = struct{}{}
		}
		allowed[from] = set
	}

	return func(from, to Status) error {
		if from == to {
			return nil
		}
		if _, ok := allowed[from][to]; ok {
			return nil
		}
		return errs.NewInvalidTransitionError("package", from.String(), to.String())
	}
}

// DefaultGraph is the forward shop flow plus the rework edges QA needs:
// QAInspection back to InFabrication and Packaging back to QAInspection.
func DefaultGraph() Graph {
	return Graph{
		Submitted:      {Planned, ApprovedForFab, Rejected},
		Planned:        {ApprovedForFab, Rejected},
		ApprovedForFab: {Kitted},
		Kitted:         {InFabrication},
		InFabrication:  {QAInspection},
		QAInspection:   {Packaging, InFabrication},
		Packaging:      {Staged, QAInspection},
		Staged:         {Shipping},
		Shipping:       {Shipped},
		Shipped:        {Delivered},
	}
}
