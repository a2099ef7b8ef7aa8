package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ImportCatalog handles POST /api/v1/catalog/import. Hangers without a status
// enter the catalog as Planned.
func (s *Server) ImportCatalog(c echo.Context) error {
	var req ImportCatalogRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	hangers, teams, items, err := req.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewImportCatalogCommand(actor(c), hangers, teams, items)
	if err != nil {
		return err
	}
	result, err := s.h.ImportCatalog.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (r ImportCatalogRequest) toDomain() ([]*hanger.Hanger, []*team.Team, []*inventory.Item, error) {
	var errList []error

	hangers := make([]*hanger.Hanger, 0, len(r.Hangers))
	for i, snap := range r.Hangers {
		if strings.TrimSpace(snap.Status) == "" {
			snap.Status = hanger.Planned.String()
		}
		h, err := hanger.Restore(snap)
		if err != nil {
			errList = append(errList, indexed("hangers", i, err))
			continue
		}
		hangers = append(hangers, h)
	}

	teams := make([]*team.Team, 0, len(r.Teams))
	for i, snap := range r.Teams {
		t, err := team.Restore(snap)
		if err != nil {
			errList = append(errList, indexed("teams", i, err))
			continue
		}
		teams = append(teams, t)
	}

	items := make([]*inventory.Item, 0, len(r.Items))
	for i, snap := range r.Items {
		item, err := inventory.RestoreItem(snap)
		if err != nil {
			errList = append(errList, indexed("items", i, err))
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, nil, nil, err
	}
	return hangers, teams, items, nil
}

func indexed(field string, i int, err error) error {
	if errs.IsValidation(err) {
		return fmt.Errorf("%s[%d]: %w", field, i, err)
	}
	return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("%s[%d]", field, i), err)
}
