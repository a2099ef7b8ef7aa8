package http

import (
	"net/http"

	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateException handles POST /api/v1/exceptions.
func (s *Server) CreateException(c echo.Context) error {
	var req CreateExceptionRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateExceptionCommand(actor(c), req.Type, req.Severity, req.RefKind, req.Ref, req.Description)
	if err != nil {
		return err
	}
	id, err := s.h.CreateException.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// ListExceptions handles GET /api/v1/exceptions?state=&severity=&type=&ref=.
func (s *Server) ListExceptions(c echo.Context) error {
	filter := make(map[string]string, 4)
	for _, name := range []string{"state", "severity", "type", "ref"} {
		value, err := queryParam[string](c, name)
		if err != nil {
			return err
		}
		filter[name] = valueOr(value, "")
	}

	query, err := queries.NewListExceptionsQuery(filter["state"], filter["severity"], filter["type"], filter["ref"])
	if err != nil {
		return err
	}
	list, err := s.h.Exceptions.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// AssignException handles POST /api/v1/exceptions/{id}/assign.
func (s *Server) AssignException(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req AssignExceptionRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignExceptionCommand(actor(c), id, req.Assignee)
	if err != nil {
		return err
	}
	if err = s.h.ExceptionWorkflow.Assign(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ResolveException handles POST /api/v1/exceptions/{id}/resolve.
func (s *Server) ResolveException(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}
	var req ResolveExceptionRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewResolveExceptionCommand(actor(c), id, req.Notes)
	if err != nil {
		return err
	}
	if err = s.h.ExceptionWorkflow.Resolve(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CloseException handles POST /api/v1/exceptions/{id}/close.
func (s *Server) CloseException(c echo.Context) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCloseExceptionCommand(actor(c), id)
	if err != nil {
		return err
	}
	if err = s.h.ExceptionWorkflow.Close(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
