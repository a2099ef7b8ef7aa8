package commands

import (
	"context"
	"time"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/services"
)

// CreateAssignmentsCommandHandler creates one Queued assignment per hanger of
// the package that has no open assignment yet. Calling it twice is harmless.
type CreateAssignmentsCommandHandler struct {
	uowFactory UoWFactory
	generator  services.AssignmentGenerator
}

func NewCreateAssignmentsCommandHandler(uowFactory UoWFactory) CreateAssignmentsCommandHandler {
	return CreateAssignmentsCommandHandler{
		uowFactory: uowFactory,
		generator:  services.NewAssignmentGenerator(),
	}
}

type assignmentsCreatedAudit struct {
	TeamID      string                `json:"teamId"`
	Assignments []assignment.Snapshot `json:"assignments"`
}

// Handle returns the ids of the assignments created by this call only.
func (h CreateAssignmentsCommandHandler) Handle(ctx context.Context, command CreateAssignmentsCommand) ([]kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().GetForUpdate(ctx, command.PackageID())
	if err != nil {
		return nil, err
	}
	if err = pkg.ValidateRouting(); err != nil {
		return nil, err
	}

	crew, err := uow.TeamRepository().Get(ctx, command.TeamID())
	if err != nil {
		return nil, err
	}

	hangerIDs := pkg.HangerIDs()
	hangers, err := uow.HangerRepository().LockMany(ctx, hangerIDs)
	if err != nil {
		return nil, err
	}

	assignmentRepo := uow.AssignmentRepository()
	existing, err := assignmentRepo.ListByHangers(ctx, hangerIDs)
	if err != nil {
		return nil, err
	}

	open, err := uow.PackageRepository().ListOpenContaining(ctx, hangerIDs)
	if err != nil {
		return nil, err
	}

	created, err := h.generator.Generate(services.RoutingInput{
		Package:      pkg,
		Team:         crew,
		Hangers:      hangers,
		Existing:     existing,
		OpenPackages: open,
		Priority:     command.Priority(),
		Expedite:     command.Expedite(),
		Now:          time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if len(created) == 0 {
		return []kernel.UUID{}, nil
	}

	ids := make([]kernel.UUID, 0, len(created))
	snapshots := make([]assignment.Snapshot, 0, len(created))
	for _, a := range created {
		if err = assignmentRepo.Add(ctx, a); err != nil {
			return nil, err
		}
		ids = append(ids, a.ID())
		snapshots = append(snapshots, a.Snapshot())
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      command.Actor(),
		action:     ActionAssignmentsCreated,
		entityType: audit.EntityPackage,
		entityID:   pkg.ID().String(),
		after: assignmentsCreatedAudit{
			TeamID:      crew.ID().String(),
			Assignments: snapshots,
		},
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
