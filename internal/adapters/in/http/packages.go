package http

import (
	"net/http"

	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(c echo.Context) error {
	var req CreatePackageRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePackageCommand(actor(c), req.ID, req.ProjectID, req.Name, req.Level, req.Zone, req.HangerIDs)
	if err != nil {
		return err
	}
	if err = s.h.CreatePackage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: req.ID})
}

// GetPackage handles GET /api/v1/packages/{id}.
func (s *Server) GetPackage(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetPackageQuery(id)
	if err != nil {
		return err
	}

	pkg, err := s.h.Packages.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pkg)
}

// GetPackageTimeline handles GET /api/v1/packages/{id}/timeline.
func (s *Server) GetPackageTimeline(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetPackageTimelineQuery(id)
	if err != nil {
		return err
	}

	timeline, err := s.h.PackageTimeline.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, timeline)
}

// ListPackagesByProject handles GET /api/v1/projects/{projectId}/packages.
func (s *Server) ListPackagesByProject(c echo.Context) error {
	projectID, err := pathParam(c, "projectId")
	if err != nil {
		return err
	}
	query, err := queries.NewListPackagesByProjectQuery(projectID)
	if err != nil {
		return err
	}

	list, err := s.h.Packages.ListByProject(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// AdvancePackage handles POST /api/v1/packages/{id}/advance.
func (s *Server) AdvancePackage(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req AdvancePackageRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAdvancePackageCommand(actor(c), id, req.Status)
	if err != nil {
		return err
	}
	if err = s.h.AdvancePackage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ApprovePackage handles POST /api/v1/packages/{id}/approve.
func (s *Server) ApprovePackage(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewApprovePackageCommand(actor(c), id)
	if err != nil {
		return err
	}
	if err = s.h.ApprovePackage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RejectPackage handles POST /api/v1/packages/{id}/reject.
func (s *Server) RejectPackage(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req RejectPackageRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRejectPackageCommand(actor(c), id, req.Reason)
	if err != nil {
		return err
	}
	if err = s.h.RejectPackage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// BulkAdvancePackages handles POST /api/v1/packages/bulk-advance. It answers
// 200 with per-id results even when every item failed.
func (s *Server) BulkAdvancePackages(c echo.Context) error {
	var req BulkAdvanceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewBulkAdvancePackagesCommand(actor(c), req.IDs, req.Status)
	if err != nil {
		return err
	}
	result, err := s.h.BulkAdvance.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newBulkResponse(result))
}

// ComputeDemand handles GET /api/v1/packages/{id}/demand.
func (s *Server) ComputeDemand(c echo.Context) error {
	query, err := s.inventoryQuery(c)
	if err != nil {
		return err
	}
	lines, err := s.h.Inventory.ComputeDemand(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// CheckInventory handles GET /api/v1/packages/{id}/inventory.
func (s *Server) CheckInventory(c echo.Context) error {
	query, err := s.inventoryQuery(c)
	if err != nil {
		return err
	}
	lines, err := s.h.Inventory.CheckInventory(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// ShortageReport handles GET /api/v1/packages/{id}/shortages.
func (s *Server) ShortageReport(c echo.Context) error {
	query, err := s.inventoryQuery(c)
	if err != nil {
		return err
	}
	lines, err := s.h.Inventory.ShortageReport(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// ReserveInventory handles POST /api/v1/packages/{id}/reserve.
func (s *Server) ReserveInventory(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewReserveInventoryCommand(actor(c), id)
	if err != nil {
		return err
	}
	pickListID, err := s.h.ReserveInventory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, PickListResponse{PickListID: pickListID.String()})
}

// CreateAssignments handles POST /api/v1/packages/{id}/assignments. Calling
// it again for the same package creates nothing and returns an empty list.
func (s *Server) CreateAssignments(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req CreateAssignmentsRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateAssignmentsCommand(actor(c), id, req.TeamID, req.Priority, req.Expedite)
	if err != nil {
		return err
	}
	ids, err := s.h.CreateAssignments.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	resp := AssignmentIDsResponse{AssignmentIDs: make([]string, len(ids))}
	for i, assignmentID := range ids {
		resp.AssignmentIDs[i] = assignmentID.String()
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) inventoryQuery(c echo.Context) (queries.PackageInventoryQuery, error) {
	id, err := pathParam(c, "id")
	if err != nil {
		return queries.PackageInventoryQuery{}, err
	}
	return queries.NewPackageInventoryQuery(id)
}
