package http

import (
	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/team"

	"github.com/shopspring/decimal"
)

type (
	ImportCatalogRequest struct {
		Hangers []hanger.Snapshot        `json:"hangers"`
		Teams   []team.Snapshot          `json:"teams"`
		Items   []inventory.ItemSnapshot `json:"items"`
	}

	CreatePackageRequest struct {
		ID        string   `json:"id"`
		ProjectID string   `json:"projectId"`
		Name      string   `json:"name"`
		Level     string   `json:"level"`
		Zone      string   `json:"zone"`
		HangerIDs []string `json:"hangerIds"`
	}

	AdvancePackageRequest struct {
		Status string `json:"status"`
	}

	RejectPackageRequest struct {
		Reason string `json:"reason"`
	}

	BulkAdvanceRequest struct {
		IDs    []string `json:"ids"`
		Status string   `json:"status"`
	}

	CreateAssignmentsRequest struct {
		TeamID   string `json:"teamId"`
		Priority string `json:"priority"`
		Expedite bool   `json:"expedite"`
	}

	SetHangerStatusRequest struct {
		Status string `json:"status"`
	}

	AccrueActualsRequest struct {
		Hours decimal.Decimal `json:"hours"`
		Cost  decimal.Decimal `json:"cost"`
	}

	AssignToTeamRequest struct {
		AssignmentIDs []string `json:"assignmentIds"`
		TeamID        string   `json:"teamId"`
	}

	CompleteStepRequest struct {
		Data map[string]any `json:"data"`
	}

	ReprioritizeRequest struct {
		Priority string `json:"priority"`
		Expedite bool   `json:"expedite"`
		Order    *int   `json:"order"`
	}

	ToolEventRequest struct {
		Station string  `json:"station"`
		ToolID  string  `json:"toolId"`
		Event   string  `json:"event"`
		Value   *string `json:"value"`
	}

	CreateExceptionRequest struct {
		Type        string `json:"type"`
		Severity    string `json:"severity"`
		RefKind     string `json:"refKind"`
		Ref         string `json:"ref"`
		Description string `json:"description"`
	}

	AssignExceptionRequest struct {
		Assignee string `json:"assignee"`
	}

	ResolveExceptionRequest struct {
		Notes string `json:"notes"`
	}
)

type (
	IDResponse struct {
		ID string `json:"id"`
	}

	PickListResponse struct {
		PickListID string `json:"pickListId"`
	}

	AssignmentIDsResponse struct {
		AssignmentIDs []string `json:"assignmentIds"`
	}

	BulkFailure struct {
		ID    string `json:"id"`
		Error Error  `json:"error"`
	}

	BulkResponse struct {
		Succeeded []string      `json:"succeeded"`
		Failed    []BulkFailure `json:"failed"`
	}
)

func newBulkResponse(r commands.BulkResult) BulkResponse {
	resp := BulkResponse{
		Succeeded: make([]string, 0, len(r.Succeeded)),
		Failed:    make([]BulkFailure, 0, len(r.Failed)),
	}
	resp.Succeeded = append(resp.Succeeded, r.Succeeded...)
	for _, f := range r.Failed {
		resp.Failed = append(resp.Failed, BulkFailure{ID: f.ID, Error: classify(f.Err)})
	}
	return resp
}
