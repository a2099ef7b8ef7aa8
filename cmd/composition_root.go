package cmd

import (
	"log/slog"

	httpapi "hangerflow/internal/adapters/in/http"
	"hangerflow/internal/adapters/out/memory"
	"hangerflow/internal/adapters/out/postgres"
	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/application/usecases/queries"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/ports"
	"hangerflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	logger       *slog.Logger
	writeUoW     func() ports.UnitOfWork
	readUoW      func() ports.UnitOfWork
	packageRules workpackage.TransitionValidator
	hangerRules  hanger.TransitionValidator
}

// NewCompositionRoot wires the postgres store when gormDB is set and the
// in-memory store otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{config: config, logger: logger}

	if gormDB != nil {
		factory := postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithLockTimeout(config.DBLockTimeout))
		root.writeUoW = factory.Create
		root.readUoW = factory.Create
	} else {
		store := memory.NewStore()
		root.writeUoW = store.Create
		root.readUoW = store.CreateReadOnly
	}

	if config.StrictTransitions {
		root.packageRules = workpackage.NewGraphValidator(workpackage.DefaultGraph())
		root.hangerRules = hanger.ForwardWithRework
	}

	return root
}

func (c *CompositionRoot) commandFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.writeUoW()
	})
}

func (c *CompositionRoot) queryFactory() queries.UoWFactory {
	return FuncQueryUoWFactory(func() queries.UoW {
		return c.readUoW()
	})
}

func (c *CompositionRoot) CreateHandlers() httpapi.Handlers {
	cf := c.commandFactory()
	qf := c.queryFactory()

	return httpapi.Handlers{
		ImportCatalog:     commands.NewImportCatalogCommandHandler(cf),
		CreatePackage:     commands.NewCreatePackageCommandHandler(cf),
		AdvancePackage:    commands.NewAdvancePackageCommandHandler(cf, c.packageRules),
		ApprovePackage:    commands.NewApprovePackageCommandHandler(cf, c.packageRules),
		RejectPackage:     commands.NewRejectPackageCommandHandler(cf, c.packageRules),
		BulkAdvance:       commands.NewBulkAdvancePackagesCommandHandler(cf, c.packageRules),
		ReserveInventory:  commands.NewReserveInventoryCommandHandler(cf, c.packageRules),
		CreateAssignments: commands.NewCreateAssignmentsCommandHandler(cf),
		SetHangerStatus:   commands.NewSetHangerStatusCommandHandler(cf, c.hangerRules),
		AccrueActuals:     commands.NewAccrueHangerActualsCommandHandler(cf),
		AssignToTeam:      commands.NewAssignToTeamCommandHandler(cf),
		TransitionAssign:  commands.NewTransitionAssignmentCommandHandler(cf),
		CompleteStep:      commands.NewCompleteStepCommandHandler(cf),
		Reprioritize:      commands.NewReprioritizeAssignmentCommandHandler(cf),
		PushToolEvent:     commands.NewPushToolEventCommandHandler(cf),
		CreateException:   commands.NewCreateExceptionCommandHandler(cf),
		ExceptionWorkflow: commands.NewExceptionWorkflowCommandHandler(cf),

		Packages:        queries.NewPackageQueryHandler(qf),
		PackageTimeline: queries.NewGetPackageTimelineQueryHandler(qf),
		Inventory:       queries.NewInventoryQueryHandler(qf),
		TeamAssignments: queries.NewListAssignmentsByTeamQueryHandler(qf),
		Exceptions:      queries.NewListExceptionsQueryHandler(qf),
		AuditRecords:    queries.NewListAuditRecordsQueryHandler(qf),
	}
}

func (c *CompositionRoot) CreateServer() *httpapi.Server {
	return httpapi.NewServer(c.CreateHandlers(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	shortages := jobs.NewShortageWatchJob(
		commands.NewScanShortagesCommandHandler(c.commandFactory()),
		c.config.ShortageScanSchedule,
		c.logger,
	)
	relay := jobs.NewAuditRelayJob(
		queries.NewListAuditRecordsQueryHandler(c.queryFactory()),
		jobs.NewSlogAuditSink(c.logger),
		c.config.AuditRelaySchedule,
		c.logger,
	)
	return jobs.NewJobManager(shortages, relay)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncQueryUoWFactory func() queries.UoW

func (f FuncQueryUoWFactory) Create() queries.UoW {
	return f()
}
