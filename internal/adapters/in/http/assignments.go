package http

import (
	"net/http"

	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// SetHangerStatus handles POST /api/v1/hangers/{id}/status.
func (s *Server) SetHangerStatus(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req SetHangerStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetHangerStatusCommand(actor(c), id, req.Status)
	if err != nil {
		return err
	}
	if err = s.h.SetHangerStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AccrueHangerActuals handles POST /api/v1/hangers/{id}/actuals.
func (s *Server) AccrueHangerActuals(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req AccrueActualsRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAccrueHangerActualsCommand(actor(c), id, req.Hours, req.Cost)
	if err != nil {
		return err
	}
	if err = s.h.AccrueActuals.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignToTeam handles POST /api/v1/assignments/assign.
func (s *Server) AssignToTeam(c echo.Context) error {
	var req AssignToTeamRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignToTeamCommand(actor(c), req.AssignmentIDs, req.TeamID)
	if err != nil {
		return err
	}
	result, err := s.h.AssignToTeam.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newBulkResponse(result))
}

// ListAssignmentsByTeam handles GET /api/v1/teams/{teamId}/assignments.
func (s *Server) ListAssignmentsByTeam(c echo.Context) error {
	teamID, err := pathParam(c, "teamId")
	if err != nil {
		return err
	}
	includeDone, err := queryParam[bool](c, "includeDone")
	if err != nil {
		return err
	}

	query, err := queries.NewListAssignmentsByTeamQuery(teamID, valueOr(includeDone, false))
	if err != nil {
		return err
	}
	list, err := s.h.TeamAssignments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// TransitionAssignment returns the handler for POST
// /api/v1/assignments/{id}/{transition}.
func (s *Server) TransitionAssignment(t commands.AssignmentTransition) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParam(c, "id")
		if err != nil {
			return err
		}

		cmd, err := commands.NewTransitionAssignmentCommand(actor(c), id, t)
		if err != nil {
			return err
		}
		if err = s.h.TransitionAssign.Handle(c.Request().Context(), cmd); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// CompleteStep handles POST /api/v1/assignments/{id}/steps/{stepKey}.
func (s *Server) CompleteStep(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	stepKey, err := pathParam(c, "stepKey")
	if err != nil {
		return err
	}
	var req CompleteStepRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteStepCommand(actor(c), id, stepKey, req.Data)
	if err != nil {
		return err
	}
	if err = s.h.CompleteStep.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReprioritizeAssignment handles POST /api/v1/assignments/{id}/priority.
func (s *Server) ReprioritizeAssignment(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req ReprioritizeRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReprioritizeAssignmentCommand(actor(c), id, req.Priority, req.Expedite, req.Order)
	if err != nil {
		return err
	}
	if err = s.h.Reprioritize.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// PushToolEvent handles POST /api/v1/assignments/{id}/tool-events.
func (s *Server) PushToolEvent(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req ToolEventRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewPushToolEventCommand(actor(c), id, req.Station, req.ToolID, req.Event, req.Value)
	if err != nil {
		return err
	}
	if err = s.h.PushToolEvent.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}
