package http

import (
	"net/http"

	"hangerflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListAuditRecords handles GET /api/v1/audit?afterSeq=&limit=.
func (s *Server) ListAuditRecords(c echo.Context) error {
	afterSeq, err := queryParam[int64](c, "afterSeq")
	if err != nil {
		return err
	}
	limit, err := queryParam[int](c, "limit")
	if err != nil {
		return err
	}

	query, err := queries.NewListAuditRecordsQuery(valueOr(afterSeq, 0), valueOr(limit, 0))
	if err != nil {
		return err
	}
	records, err := s.h.AuditRecords.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
