package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "hangerflow/internal/adapters/out/postgres"
	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/kernel/kerneltest"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/ports"
	"hangerflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// commandFactory lets command handlers run against the postgres unit of work.
type commandFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f commandFactory) Create() commands.UoW { return f.factory.Create() }

// UnitOfWorkIntegrationTestSuite runs the repositories and the command side
// against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE hangers, hanger_bom_lines, packages, inventory_items, pick_lists,
		teams, assignments, exceptions, audit_records`).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newHanger(id string, revision int, bom ...hanger.BOMLine) *hanger.Hanger {
	loc, err := kernel.NewLocation("L2", "C-4", "East", "12'-0\"")
	suite.Require().NoError(err)
	h, err := hanger.NewHanger(kerneltest.Code(id), kerneltest.Code("PRJ-1"), hanger.Clevis, "Plumbing",
		loc, revision, bom, hanger.Estimate{LaborHours: kerneltest.Quantity("1.5"), MaterialCost: kerneltest.Quantity("40")})
	suite.Require().NoError(err)
	return h
}

func (suite *UnitOfWorkIntegrationTestSuite) bomLine(sku, qty string) hanger.BOMLine {
	line, err := hanger.NewBOMLine(kerneltest.Code(sku), sku, "ea", qty)
	suite.Require().NoError(err)
	return line
}

func (suite *UnitOfWorkIntegrationTestSuite) newItem(sku, onHand string) *inventory.Item {
	item, err := inventory.NewItem(kerneltest.Code(sku), sku, "ea",
		kerneltest.Quantity(onHand), kerneltest.Quantity("2"), kerneltest.Quantity("20"))
	suite.Require().NoError(err)
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) newPackage(id string, hangerIDs ...string) *workpackage.Package {
	ids, err := kernel.NewCodes(hangerIDs)
	suite.Require().NoError(err)
	p, err := workpackage.NewPackage(kerneltest.Code(id), kerneltest.Code("PRJ-1"), id, "L2", "East", ids, time.Now())
	suite.Require().NoError(err)
	return p
}

// write runs fn in a committed unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) write(fn func(ctx context.Context, uow ports.UnitOfWork)) {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	fn(ctx, uow)
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllRepositories() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.HangerRepository().Add(ctx, suite.newHanger("H-1", 1)))
	suite.Require().NoError(uow.InventoryRepository().Upsert(ctx, suite.newItem("ROD-3/8", "6")))
	rec, err := audit.NewRecord(time.Now(), "alice", "hanger.imported", audit.EntityHanger, "H-1", nil, nil)
	suite.Require().NoError(err)
	_, err = uow.AuditRepository().Append(ctx, rec)
	suite.Require().NoError(err)

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs()
	suite.Equal([]string{"H-1", "ROD-3/8"}, tracked)

	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	suite.Require().NoError(check.Begin(ctx))
	defer func() { _ = check.Rollback(ctx) }()

	_, err = check.HangerRepository().Get(ctx, "H-1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = check.InventoryRepository().Get(ctx, "ROD-3/8")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	records, err := check.AuditRepository().ListAfter(ctx, 0, 0)
	suite.Require().NoError(err)
	suite.Empty(records)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestHangerRepository_UpdateReplacesBOM() {
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		suite.Require().NoError(uow.HangerRepository().Add(ctx,
			suite.newHanger("H-1", 1, suite.bomLine("ROD-3/8", "2"), suite.bomLine("NUT-3/8", "4"))))
	})

	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		stored, err := uow.HangerRepository().Get(ctx, "H-1")
		suite.Require().NoError(err)
		suite.Require().NoError(stored.SetStatus(hanger.InFabrication, nil))
		stored.AccrueActuals(kerneltest.Quantity("2.25"), kerneltest.Quantity("10"))
		suite.Require().NoError(stored.ReplaceRevision(suite.newHanger("H-1", 2, suite.bomLine("CLAMP-2", "1"))))
		suite.Require().NoError(uow.HangerRepository().Update(ctx, stored))
	})

	uow := suite.factory.Create()
	ctx := suite.T().Context()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	many, err := uow.HangerRepository().GetMany(ctx, []kernel.Code{"H-1", "H-404"})
	suite.Require().NoError(err)
	suite.Require().Len(many, 1)
	h := many["H-1"]
	suite.Equal(2, h.Revision())
	suite.Equal(hanger.InFabrication, h.Status())
	suite.True(h.ActualHours().Equal(kerneltest.Quantity("2.25")))
	suite.Require().Len(h.BOM(), 1)
	suite.Equal(kernel.Code("CLAMP-2"), h.BOM()[0].SKU())

	err = uow.HangerRepository().Update(ctx, suite.newHanger("H-404", 1))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPackageRepository_DuplicateAdd() {
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		suite.Require().NoError(uow.PackageRepository().Add(ctx, suite.newPackage("PKG-1", "H-1")))
	})

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.PackageRepository().Add(ctx, suite.newPackage("PKG-1", "H-9"))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPackageRepository_Queries() {
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		repo := uow.PackageRepository()
		suite.Require().NoError(repo.Add(ctx, suite.newPackage("PKG-1", "H-1", "H-2")))
		rejected := suite.newPackage("PKG-2", "H-2")
		suite.Require().NoError(rejected.Reject("wrong level", nil))
		suite.Require().NoError(repo.Add(ctx, rejected))
		suite.Require().NoError(repo.Add(ctx, suite.newPackage("PKG-3", "H-3")))
	})

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	repo := uow.PackageRepository()

	open, err := repo.ListOpenContaining(ctx, []kernel.Code{"H-2", "H-7"})
	suite.Require().NoError(err)
	suite.Require().Len(open, 1)
	suite.Equal(kernel.Code("PKG-1"), open[0].ID())

	byStatus, err := repo.ListByStatus(ctx, workpackage.Rejected)
	suite.Require().NoError(err)
	suite.Require().Len(byStatus, 1)
	suite.Equal("wrong level", byStatus[0].RejectionReason())

	byProject, err := repo.ListByProject(ctx, "PRJ-1")
	suite.Require().NoError(err)
	suite.Len(byProject, 3)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReserveInventory_ConcurrentReservationsNeverGoNegative() {
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		suite.Require().NoError(uow.HangerRepository().Add(ctx, suite.newHanger("H-1", 1, suite.bomLine("ROD-3/8", "4"))))
		suite.Require().NoError(uow.HangerRepository().Add(ctx, suite.newHanger("H-2", 1, suite.bomLine("ROD-3/8", "4"))))
		suite.Require().NoError(uow.PackageRepository().Add(ctx, suite.newPackage("PKG-A", "H-1")))
		suite.Require().NoError(uow.PackageRepository().Add(ctx, suite.newPackage("PKG-B", "H-2")))
		suite.Require().NoError(uow.InventoryRepository().Upsert(ctx, suite.newItem("ROD-3/8", "6")))
	})

	handler := commands.NewReserveInventoryCommandHandler(commandFactory{factory: suite.factory}, nil)
	var wg sync.WaitGroup
	errList := make([]error, 2)
	for i, id := range []string{"PKG-A", "PKG-B"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewReserveInventoryCommand("kitter", id)
			if err == nil {
				_, err = handler.Handle(suite.T().Context(), cmd)
			}
			errList[i] = err
		}()
	}
	wg.Wait()
	suite.Require().NoError(errList[0])
	suite.Require().NoError(errList[1])

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	item, err := uow.InventoryRepository().Get(ctx, "ROD-3/8")
	suite.Require().NoError(err)
	suite.True(item.OnHand().IsZero())

	pkg, err := uow.PackageRepository().Get(ctx, "PKG-B")
	suite.Require().NoError(err)
	suite.Equal(workpackage.Kitted, pkg.Status())
	suite.Require().NotNil(pkg.PickListID())
	pl, err := uow.InventoryRepository().GetPickList(ctx, *pkg.PickListID())
	suite.Require().NoError(err)
	suite.Require().Len(pl.Lines(), 1)
	suite.True(pl.Lines()[0].Required.Equal(kerneltest.Quantity("4")))
}

// concurrently runs fn once per argument at the same time and collects the errors.
func concurrently(args []string, fn func(arg string) error) []error {
	var wg sync.WaitGroup
	errList := make([]error, len(args))
	for i, arg := range args {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errList[i] = fn(arg)
		}()
	}
	wg.Wait()
	return errList
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateAssignments_ConcurrentCallsRouteEachHangerOnce() {
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		suite.Require().NoError(uow.HangerRepository().Add(ctx, suite.newHanger("H-1", 1)))
		suite.Require().NoError(uow.HangerRepository().Add(ctx, suite.newHanger("H-2", 1)))
		pkg := suite.newPackage("PKG-A", "H-1", "H-2")
		suite.Require().NoError(pkg.Advance(workpackage.ApprovedForFab, nil))
		suite.Require().NoError(uow.PackageRepository().Add(ctx, pkg))
		for _, id := range []string{"T-1", "T-2"} {
			crew, err := team.NewTeam(kerneltest.Code(id), id, []string{"ana"}, nil, kerneltest.Quantity("8"))
			suite.Require().NoError(err)
			suite.Require().NoError(uow.TeamRepository().Upsert(ctx, crew))
		}
	})

	handler := commands.NewCreateAssignmentsCommandHandler(commandFactory{factory: suite.factory})
	var mu sync.Mutex
	created := 0
	errList := concurrently([]string{"T-1", "T-2"}, func(teamID string) error {
		cmd, err := commands.NewCreateAssignmentsCommand("planner", "PKG-A", teamID, "", false)
		if err != nil {
			return err
		}
		ids, err := handler.Handle(suite.T().Context(), cmd)
		mu.Lock()
		created += len(ids)
		mu.Unlock()
		return err
	})
	for _, err := range errList {
		if err != nil {
			suite.ErrorIs(err, errs.ErrConcurrencyConflict)
		}
	}
	suite.Equal(2, created)

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	stored, err := uow.AssignmentRepository().ListByPackage(ctx, "PKG-A")
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	suite.NotEqual(stored[0].HangerID(), stored[1].HangerID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreatePackage_ConcurrentClaimsOfOneHanger() {
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		suite.Require().NoError(uow.HangerRepository().Add(ctx, suite.newHanger("H-1", 1)))
	})

	handler := commands.NewCreatePackageCommandHandler(commandFactory{factory: suite.factory})
	errList := concurrently([]string{"PKG-A", "PKG-B"}, func(id string) error {
		cmd, err := commands.NewCreatePackageCommand("planner", id, "PRJ-1", id, "L2", "East", []string{"H-1"})
		if err != nil {
			return err
		}
		return handler.Handle(suite.T().Context(), cmd)
	})

	failed := 0
	for _, err := range errList {
		if err != nil {
			failed++
			suite.True(errs.IsValidation(err), err.Error())
		}
	}
	suite.Equal(1, failed)

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	open, err := uow.PackageRepository().ListOpenContaining(ctx, []kernel.Code{"H-1"})
	suite.Require().NoError(err)
	suite.Len(open, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignmentRepository_OneOpenAssignmentPerHanger() {
	steps, err := assignment.StepsFor(hanger.Clevis)
	suite.Require().NoError(err)
	first, err := assignment.New(kernel.NewUUID(), "PKG-1", "H-1", nil, assignment.Normal, false, steps, time.Now())
	suite.Require().NoError(err)
	second, err := assignment.New(kernel.NewUUID(), "PKG-2", "H-1", nil, assignment.Normal, false, steps, time.Now())
	suite.Require().NoError(err)

	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		suite.Require().NoError(uow.AssignmentRepository().Add(ctx, first))
	})

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err = uow.AssignmentRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_GetForUpdateBlocksOtherWriters() {
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		suite.Require().NoError(uow.HangerRepository().Add(ctx, suite.newHanger("H-1", 1)))
		suite.Require().NoError(uow.PackageRepository().Add(ctx, suite.newPackage("PKG-A", "H-1")))
	})

	ctx := suite.T().Context()
	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	_, err := holder.PackageRepository().GetForUpdate(ctx, "PKG-A")
	suite.Require().NoError(err)
	_, err = holder.HangerRepository().LockMany(ctx, []kernel.Code{"H-1"})
	suite.Require().NoError(err)

	impatient := postgres_adapter.NewGormUnitOfWorkFactory(suite.db,
		postgres_adapter.WithLockTimeout(200*time.Millisecond)).Create()
	suite.Require().NoError(impatient.Begin(ctx))
	defer func() { _ = impatient.Rollback(ctx) }()

	_, err = impatient.PackageRepository().GetForUpdate(ctx, "PKG-A")
	suite.True(errs.IsRetryable(err), "package lock: %v", err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInventoryRepository_LockTimeoutIsRetryable() {
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		suite.Require().NoError(uow.InventoryRepository().Upsert(ctx, suite.newItem("ROD-3/8", "6")))
	})

	ctx := suite.T().Context()
	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	_, err := holder.InventoryRepository().LockMany(ctx, []kernel.Code{"ROD-3/8"})
	suite.Require().NoError(err)

	impatient := postgres_adapter.NewGormUnitOfWorkFactory(suite.db,
		postgres_adapter.WithLockTimeout(200*time.Millisecond)).Create()
	suite.Require().NoError(impatient.Begin(ctx))
	defer func() { _ = impatient.Rollback(ctx) }()

	_, err = impatient.InventoryRepository().LockMany(ctx, []kernel.Code{"ROD-3/8"})
	suite.Require().Error(err)
	suite.True(errs.IsRetryable(err))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTeamAndAssignmentRepositories() {
	teamID := kerneltest.Code("T-1")
	steps, err := assignment.StepsFor(hanger.Clevis)
	suite.Require().NoError(err)
	a, err := assignment.New(kernel.NewUUID(), "PKG-1", "H-1", &teamID, assignment.High, true, steps, time.Now())
	suite.Require().NoError(err)

	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		crew, err := team.NewTeam(teamID, "Crew 1", []string{"ana"}, []string{"RodCut"}, kerneltest.Quantity("8"))
		suite.Require().NoError(err)
		suite.Require().NoError(uow.TeamRepository().Upsert(ctx, crew))

		renamed, err := team.NewTeam(teamID, "Crew One", []string{"ana", "ben"}, nil, kerneltest.Quantity("7.5"))
		suite.Require().NoError(err)
		suite.Require().NoError(uow.TeamRepository().Upsert(ctx, renamed))

		suite.Require().NoError(uow.AssignmentRepository().Add(ctx, a))
	})

	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		stored, err := uow.AssignmentRepository().Get(ctx, a.ID())
		suite.Require().NoError(err)
		suite.Require().NoError(stored.Start(time.Now()))
		suite.Require().NoError(stored.CompleteStep(assignment.RodCut, map[string]any{"length": "36in"}, time.Now()))
		stored.RecordToolEvent(assignment.NewToolEvent("saw-1", "T-9", "cut", nil, time.Now()))
		suite.Require().NoError(uow.AssignmentRepository().Update(ctx, stored))
	})

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	teams, err := uow.TeamRepository().List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal("Crew One", teams[0].Name())
	suite.Equal([]string{"ana", "ben"}, teams[0].Members())

	byTeam, err := uow.AssignmentRepository().ListByTeam(ctx, teamID)
	suite.Require().NoError(err)
	suite.Require().Len(byTeam, 1)
	got := byTeam[0]
	suite.Equal(assignment.InProgress, got.Status())
	suite.True(got.Steps()[0].Completed())
	suite.Equal("36in", got.Steps()[0].Data()["length"])
	suite.Len(got.ToolEvents(), 1)

	byHanger, err := uow.AssignmentRepository().ListByHangers(ctx, []kernel.Code{"H-1"})
	suite.Require().NoError(err)
	suite.Len(byHanger, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestExceptionRepository_Filter() {
	var openID kernel.UUID
	suite.write(func(ctx context.Context, uow ports.UnitOfWork) {
		open, err := exception.New(kernel.NewUUID(), exception.InventoryShort, exception.High,
			exception.Ref{Kind: exception.RefPackage, ID: "PKG-1"}, "rods", time.Now())
		suite.Require().NoError(err)
		openID = open.ID()
		suite.Require().NoError(uow.ExceptionRepository().Add(ctx, open))

		resolved, err := exception.New(kernel.NewUUID(), exception.QAFail, exception.Low,
			exception.Ref{Kind: exception.RefHanger, ID: "H-1"}, "", time.Now())
		suite.Require().NoError(err)
		suite.Require().NoError(resolved.Resolve("rewelded", time.Now()))
		suite.Require().NoError(uow.ExceptionRepository().Add(ctx, resolved))
	})

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	list, err := uow.ExceptionRepository().List(ctx, exception.Filter{State: exception.Open, Ref: "PKG-1"})
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.True(list[0].ID().IsEqual(openID))

	all, err := uow.ExceptionRepository().List(ctx, exception.Filter{})
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAuditRepository_SequenceIsGapFree() {
	handler := commands.NewImportCatalogCommandHandler(commandFactory{factory: suite.factory})

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := suite.newItem("SKU-"+string(rune('A'+i)), "1")
			cmd, err := commands.NewImportCatalogCommand("planner", nil, nil, []*inventory.Item{item})
			if err != nil {
				return
			}
			_, _ = handler.Handle(suite.T().Context(), cmd)
		}()
	}
	wg.Wait()

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	records, err := uow.AuditRepository().ListAfter(ctx, 0, 0)
	suite.Require().NoError(err)
	suite.Require().Len(records, 8)
	for i, r := range records {
		suite.Equal(int64(i+1), r.Seq())
	}

	page, err := uow.AuditRepository().ListAfter(ctx, 6, 10)
	suite.Require().NoError(err)
	suite.Len(page, 2)

	byEntity, err := uow.AuditRepository().ListByEntity(ctx, audit.EntityInventory, "SKU-C")
	suite.Require().NoError(err)
	suite.Require().Len(byEntity, 1)
	suite.JSONEq(`null`, string(byEntity[0].Before()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
