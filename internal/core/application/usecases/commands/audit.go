package commands

import (
	"context"
	"time"

	"hangerflow/internal/core/domain/model/audit"
)

// Audit action labels.
const (
	ActionHangerImported      = "hanger.imported"
	ActionHangerSuperseded    = "hanger.superseded"
	ActionHangerStatusSet     = "hanger.status_set"
	ActionHangerActualsAdded  = "hanger.actuals_accrued"
	ActionTeamImported        = "team.imported"
	ActionInventoryImported   = "inventory.imported"
	ActionPackageCreated      = "package.created"
	ActionPackageAdvanced     = "package.advanced"
	ActionPackageApproved     = "package.approved"
	ActionPackageRejected     = "package.rejected"
	ActionPackageKitted       = "package.kitted"
	ActionAssignmentsCreated  = "assignments.created"
	ActionAssignmentRouted    = "assignment.routed"
	ActionAssignmentStarted   = "assignment.started"
	ActionAssignmentPaused    = "assignment.paused"
	ActionAssignmentResumed   = "assignment.resumed"
	ActionAssignmentSubmitted = "assignment.submitted_for_qa"
	ActionAssignmentFinished  = "assignment.finished"
	ActionStepCompleted       = "assignment.step_completed"
	ActionReprioritized       = "assignment.reprioritized"
	ActionToolEvent           = "assignment.tool_event"
	ActionExceptionCreated    = "exception.created"
	ActionExceptionAssigned   = "exception.assigned"
	ActionExceptionResolved   = "exception.resolved"
	ActionExceptionClosed     = "exception.closed"
)

type auditEntry struct {
	actor      string
	action     string
	entityType string
	entityID   string
	before     any
	after      any
}

// appendAudit writes one record through the unit of work's audit repository.
func appendAudit(ctx context.Context, uow AuditRepoFactory, e auditEntry) error {
	record, err := audit.NewRecord(time.Now(), e.actor, e.action, e.entityType, e.entityID, e.before, e.after)
	if err != nil {
		return err
	}
	_, err = uow.AuditRepository().Append(ctx, record)
	return err
}
