package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hangerflow/internal/adapters/out/memory"
	"hangerflow/internal/core/application/usecases/queries"
	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/kernel/kerneltest"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/ports"
	"hangerflow/internal/pkg/errs"
)

type readFactory struct {
	store *memory.Store
}

func (f readFactory) Create() queries.UoW { return f.store.CreateReadOnly() }

// seed runs fn in a committed read-write unit of work.
func seed(t *testing.T, store *memory.Store, fn func(uow ports.UnitOfWork)) {
	t.Helper()
	uow := store.Create()
	require.NoError(t, uow.Begin(t.Context()))
	fn(uow)
	require.NoError(t, uow.Commit(t.Context()))
}

func newHanger(t *testing.T, id string, bom ...hanger.BOMLine) *hanger.Hanger {
	t.Helper()
	loc, err := kernel.NewLocation("L2", "C-4", "East", "")
	require.NoError(t, err)
	h, err := hanger.NewHanger(kerneltest.Code(id), kerneltest.Code("PRJ-1"), hanger.Trapeze, "Mechanical",
		loc, 1, bom, hanger.Estimate{LaborHours: kerneltest.Quantity("1"), MaterialCost: kerneltest.Quantity("10")})
	require.NoError(t, err)
	return h
}

func bomLine(t *testing.T, sku, qty string) hanger.BOMLine {
	t.Helper()
	line, err := hanger.NewBOMLine(kerneltest.Code(sku), sku, "ea", qty)
	require.NoError(t, err)
	return line
}

func newPackage(t *testing.T, id, project string, hangerIDs ...string) *workpackage.Package {
	t.Helper()
	ids, err := kernel.NewCodes(hangerIDs)
	require.NoError(t, err)
	p, err := workpackage.NewPackage(kerneltest.Code(id), kerneltest.Code(project), id, "L2", "East", ids, time.Now())
	require.NoError(t, err)
	return p
}

func newItem(t *testing.T, sku, onHand string) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(kerneltest.Code(sku), sku, "ea",
		kerneltest.Quantity(onHand), kerneltest.Quantity("0"), kerneltest.Quantity("0"))
	require.NoError(t, err)
	return item
}

func seedInventoryScenario(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	seed(t, store, func(uow ports.UnitOfWork) {
		ctx := t.Context()
		require.NoError(t, uow.HangerRepository().Add(ctx,
			newHanger(t, "H-1", bomLine(t, "ROD-3/8", "4"), bomLine(t, "NUT-3/8", "8"))))
		require.NoError(t, uow.HangerRepository().Add(ctx,
			newHanger(t, "H-2", bomLine(t, "ROD-3/8", "6"), bomLine(t, "CLAMP-2", "1"))))
		require.NoError(t, uow.HangerRepository().Add(ctx, newHanger(t, "H-3")))
		require.NoError(t, uow.PackageRepository().Add(ctx, newPackage(t, "PKG-001", "PRJ-1", "H-1", "H-2")))
		require.NoError(t, uow.PackageRepository().Add(ctx, newPackage(t, "PKG-002", "PRJ-2", "H-3")))
		require.NoError(t, uow.InventoryRepository().Upsert(ctx, newItem(t, "ROD-3/8", "6")))
		require.NoError(t, uow.InventoryRepository().Upsert(ctx, newItem(t, "NUT-3/8", "100")))
	})
	return store
}

func TestInventoryQueryHandler(t *testing.T) {
	store := seedInventoryScenario(t)
	handler := queries.NewInventoryQueryHandler(readFactory{store: store})
	query, err := queries.NewPackageInventoryQuery("PKG-001")
	require.NoError(t, err)

	t.Run("demand in order of first appearance", func(t *testing.T) {
		demand, err := handler.ComputeDemand(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, demand, 3)
		assert.Equal(t, kernel.Code("ROD-3/8"), demand[0].SKU)
		assert.True(t, demand[0].Required.Equal(kerneltest.Quantity("10")))
		assert.Equal(t, kernel.Code("NUT-3/8"), demand[1].SKU)
		assert.Equal(t, kernel.Code("CLAMP-2"), demand[2].SKU)
	})

	t.Run("check joins stock", func(t *testing.T) {
		lines, err := handler.CheckInventory(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.True(t, lines[0].OnHand.Equal(kerneltest.Quantity("6")))
		assert.True(t, lines[0].Shortfall.Equal(kerneltest.Quantity("4")))
		assert.True(t, lines[1].Shortfall.IsZero())
		assert.True(t, lines[2].OnHand.IsZero())
		assert.True(t, lines[2].Shortfall.Equal(kerneltest.Quantity("1")))
	})

	t.Run("shortage report", func(t *testing.T) {
		lines, err := handler.ShortageReport(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, kernel.Code("ROD-3/8"), lines[0].SKU)
		assert.Equal(t, kernel.Code("CLAMP-2"), lines[1].SKU)
	})

	t.Run("package without material", func(t *testing.T) {
		empty, err := queries.NewPackageInventoryQuery("PKG-002")
		require.NoError(t, err)
		demand, err := handler.ComputeDemand(t.Context(), empty)
		require.NoError(t, err)
		assert.Empty(t, demand)
	})

	t.Run("unknown package", func(t *testing.T) {
		missing, err := queries.NewPackageInventoryQuery("PKG-404")
		require.NoError(t, err)
		_, err = handler.CheckInventory(t.Context(), missing)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("nothing reserved", func(t *testing.T) {
		uow := store.CreateReadOnly()
		require.NoError(t, uow.Begin(t.Context()))
		defer func() { _ = uow.Rollback(t.Context()) }()
		item, err := uow.InventoryRepository().Get(t.Context(), kerneltest.Code("ROD-3/8"))
		require.NoError(t, err)
		assert.True(t, item.OnHand().Equal(kerneltest.Quantity("6")))
	})
}

func TestPackageQueryHandler(t *testing.T) {
	store := seedInventoryScenario(t)
	handler := queries.NewPackageQueryHandler(readFactory{store: store})

	get, err := queries.NewGetPackageQuery("PKG-001")
	require.NoError(t, err)
	snap, err := handler.Get(t.Context(), get)
	require.NoError(t, err)
	assert.Equal(t, []string{"H-1", "H-2"}, snap.HangerIDs)
	assert.Equal(t, "Submitted", snap.Status)

	list, err := queries.NewListPackagesByProjectQuery("PRJ-2")
	require.NoError(t, err)
	snaps, err := handler.ListByProject(t.Context(), list)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "PKG-002", snaps[0].ID)

	_, err = queries.NewGetPackageQuery(" ")
	assert.True(t, errs.IsValidation(err))
	_, err = handler.Get(t.Context(), queries.GetPackageQuery{})
	assert.ErrorIs(t, err, queries.ErrGetPackageQueryIsNotConstructed)
}

func TestListAssignmentsByTeamQueryHandler(t *testing.T) {
	store := memory.NewStore()
	teamID := kerneltest.Code("T-1")
	steps, err := assignment.StepsFor(hanger.Clevis)
	require.NoError(t, err)

	created := time.Now()
	add := func(uow ports.UnitOfWork, hangerID string, priority assignment.Priority, expedite bool, status string) {
		a, err := assignment.New(kernel.NewUUID(), "PKG-1", kerneltest.Code(hangerID), &teamID,
			priority, expedite, steps, created)
		require.NoError(t, err)
		if status != "" {
			snap := a.Snapshot()
			snap.Status = status
			a, err = assignment.Restore(snap)
			require.NoError(t, err)
		}
		require.NoError(t, uow.AssignmentRepository().Add(t.Context(), a))
	}
	seed(t, store, func(uow ports.UnitOfWork) {
		add(uow, "H-1", assignment.Low, false, "")
		add(uow, "H-2", assignment.Normal, true, "")
		add(uow, "H-3", assignment.Urgent, false, "")
		add(uow, "H-4", assignment.Urgent, false, "Done")
	})

	handler := queries.NewListAssignmentsByTeamQueryHandler(readFactory{store: store})

	open, err := queries.NewListAssignmentsByTeamQuery("T-1", false)
	require.NoError(t, err)
	queue, err := handler.Handle(t.Context(), open)
	require.NoError(t, err)
	hangers := make([]string, 0, len(queue))
	for _, a := range queue {
		hangers = append(hangers, a.HangerID)
	}
	assert.Equal(t, []string{"H-2", "H-3", "H-1"}, hangers)

	all, err := queries.NewListAssignmentsByTeamQuery("T-1", true)
	require.NoError(t, err)
	queue, err = handler.Handle(t.Context(), all)
	require.NoError(t, err)
	assert.Len(t, queue, 4)

	other, err := queries.NewListAssignmentsByTeamQuery("T-9", true)
	require.NoError(t, err)
	queue, err = handler.Handle(t.Context(), other)
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestListExceptionsQueryHandler(t *testing.T) {
	store := memory.NewStore()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	seed(t, store, func(uow ports.UnitOfWork) {
		for i, sev := range []exception.Severity{exception.Low, exception.Critical, exception.High} {
			e, err := exception.New(kernel.NewUUID(), exception.QAFail, sev,
				exception.Ref{Kind: exception.RefPackage, ID: "PKG-1"}, "", base.Add(time.Duration(i)*time.Minute))
			require.NoError(t, err)
			require.NoError(t, uow.ExceptionRepository().Add(t.Context(), e))
		}
		e, err := exception.New(kernel.NewUUID(), exception.InventoryShort, exception.High,
			exception.Ref{Kind: exception.RefPackage, ID: "PKG-2"}, "", base)
		require.NoError(t, err)
		require.NoError(t, uow.ExceptionRepository().Add(t.Context(), e))
	})

	handler := queries.NewListExceptionsQueryHandler(readFactory{store: store})

	all, err := queries.NewListExceptionsQuery("", "", "", "")
	require.NoError(t, err)
	list, err := handler.Handle(t.Context(), all)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Critical", list[0].Severity)
	assert.Equal(t, "Low", list[3].Severity)

	byRef, err := queries.NewListExceptionsQuery("Open", "", "InventoryShort", "PKG-2")
	require.NoError(t, err)
	list, err = handler.Handle(t.Context(), byRef)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "PKG-2", list[0].Ref.ID)

	_, err = queries.NewListExceptionsQuery("Sleeping", "Huge", "", "")
	assert.True(t, errs.IsValidation(err))
}

func TestListAuditRecordsQueryHandler(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, func(uow ports.UnitOfWork) {
		for range 5 {
			r, err := audit.NewRecord(time.Now(), "alice", "package.advanced", audit.EntityPackage, "PKG-1",
				nil, map[string]string{"status": "Approved"})
			require.NoError(t, err)
			_, err = uow.AuditRepository().Append(t.Context(), r)
			require.NoError(t, err)
		}
	})

	handler := queries.NewListAuditRecordsQueryHandler(readFactory{store: store})

	query, err := queries.NewListAuditRecordsQuery(2, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultAuditPageSize, query.Limit())
	records, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(3), records[0].Seq)
	assert.JSONEq(t, `{"status":"Approved"}`, string(records[0].After))
	assert.JSONEq(t, `null`, string(records[0].Before))

	_, err = queries.NewListAuditRecordsQuery(-1, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	_, err = queries.NewListAuditRecordsQuery(0, queries.MaxAuditPageSize+1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
