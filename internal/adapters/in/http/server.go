package http

import (
	"log/slog"
	"net/http"

	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers bundles every use case the HTTP adapter exposes.
type Handlers struct {
	// Command handlers
	ImportCatalog     commands.ImportCatalogCommandHandler
	CreatePackage     commands.CreatePackageCommandHandler
	AdvancePackage    commands.AdvancePackageCommandHandler
	ApprovePackage    commands.ApprovePackageCommandHandler
	RejectPackage     commands.RejectPackageCommandHandler
	BulkAdvance       commands.BulkAdvancePackagesCommandHandler
	ReserveInventory  commands.ReserveInventoryCommandHandler
	CreateAssignments commands.CreateAssignmentsCommandHandler
	SetHangerStatus   commands.SetHangerStatusCommandHandler
	AccrueActuals     commands.AccrueHangerActualsCommandHandler
	AssignToTeam      commands.AssignToTeamCommandHandler
	TransitionAssign  commands.TransitionAssignmentCommandHandler
	CompleteStep      commands.CompleteStepCommandHandler
	Reprioritize      commands.ReprioritizeAssignmentCommandHandler
	PushToolEvent     commands.PushToolEventCommandHandler
	CreateException   commands.CreateExceptionCommandHandler
	ExceptionWorkflow commands.ExceptionWorkflowCommandHandler

	// Query handlers
	Packages        queries.PackageQueryHandler
	PackageTimeline queries.GetPackageTimelineQueryHandler
	Inventory       queries.InventoryQueryHandler
	TeamAssignments queries.ListAssignmentsByTeamQueryHandler
	Exceptions      queries.ListExceptionsQueryHandler
	AuditRecords    queries.ListAuditRecordsQueryHandler
}

// Server translates HTTP requests into commands and queries. It holds no
// state of its own.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http")}
}

// NewEcho builds the echo instance with middleware, API description and all
// routes registered.
func (s *Server) NewEcho() (*echo.Echo, error) {
	doc, err := LoadDocument()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(s.logger))

	if err = registerDocs(e, doc); err != nil {
		return nil, err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	s.RegisterRoutes(e.Group("/api/v1", validator))
	return e, nil
}

// RegisterRoutes mounts the API on g.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/catalog/import", s.ImportCatalog)

	g.POST("/packages", s.CreatePackage)
	g.POST("/packages/bulk-advance", s.BulkAdvancePackages)
	g.GET("/packages/:id", s.GetPackage)
	g.GET("/packages/:id/timeline", s.GetPackageTimeline)
	g.GET("/projects/:projectId/packages", s.ListPackagesByProject)
	g.POST("/packages/:id/advance", s.AdvancePackage)
	g.POST("/packages/:id/approve", s.ApprovePackage)
	g.POST("/packages/:id/reject", s.RejectPackage)
	g.GET("/packages/:id/demand", s.ComputeDemand)
	g.GET("/packages/:id/inventory", s.CheckInventory)
	g.GET("/packages/:id/shortages", s.ShortageReport)
	g.POST("/packages/:id/reserve", s.ReserveInventory)
	g.POST("/packages/:id/assignments", s.CreateAssignments)

	g.POST("/hangers/:id/status", s.SetHangerStatus)
	g.POST("/hangers/:id/actuals", s.AccrueHangerActuals)

	g.POST("/assignments/assign", s.AssignToTeam)
	g.GET("/teams/:teamId/assignments", s.ListAssignmentsByTeam)
	for _, t := range []commands.AssignmentTransition{
		commands.TransitionStart,
		commands.TransitionPause,
		commands.TransitionResume,
		commands.TransitionSubmitForQA,
		commands.TransitionFinish,
	} {
		g.POST("/assignments/:id/"+string(t), s.TransitionAssignment(t))
	}
	g.POST("/assignments/:id/steps/:stepKey", s.CompleteStep)
	g.POST("/assignments/:id/priority", s.ReprioritizeAssignment)
	g.POST("/assignments/:id/tool-events", s.PushToolEvent)

	g.POST("/exceptions", s.CreateException)
	g.GET("/exceptions", s.ListExceptions)
	g.POST("/exceptions/:id/assign", s.AssignException)
	g.POST("/exceptions/:id/resolve", s.ResolveException)
	g.POST("/exceptions/:id/close", s.CloseException)

	g.GET("/audit", s.ListAuditRecords)
}
