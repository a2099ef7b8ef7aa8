package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel/kerneltest"
	"hangerflow/internal/pkg/errs"
)

func TestImportCatalog_Supersede(t *testing.T) {
	factory, store := newStoreFactory()
	handler := commands.NewImportCatalogCommandHandler(factory)

	first, err := commands.NewImportCatalogCommand("planner",
		[]*hanger.Hanger{newHanger(t, "H-1", hanger.Trapeze, 2, bomLine(t, "ROD-3/8", "2"))},
		nil,
		[]*inventory.Item{newItem(t, "ROD-3/8", "6")})
	require.NoError(t, err)
	res, err := handler.Handle(t.Context(), first)
	require.NoError(t, err)
	assert.Equal(t, commands.ImportResult{HangersInserted: 1, Items: 1}, res)

	setStatus, err := commands.NewSetHangerStatusCommand("shop", "H-1", "InFabrication")
	require.NoError(t, err)
	require.NoError(t, commands.NewSetHangerStatusCommandHandler(factory, nil).Handle(t.Context(), setStatus))

	older, err := commands.NewImportCatalogCommand("planner",
		[]*hanger.Hanger{
			newHanger(t, "H-1", hanger.Trapeze, 1),
			newHanger(t, "H-1", hanger.Trapeze, 2),
		}, nil, nil)
	require.NoError(t, err)
	res, err = handler.Handle(t.Context(), older)
	require.NoError(t, err)
	assert.Equal(t, 2, res.HangersIgnored)

	newer, err := commands.NewImportCatalogCommand("planner",
		[]*hanger.Hanger{newHanger(t, "H-1", hanger.Seismic, 3, bomLine(t, "ROD-1/2", "1"))},
		nil,
		[]*inventory.Item{newItem(t, "ROD-3/8", "9")})
	require.NoError(t, err)
	res, err = handler.Handle(t.Context(), newer)
	require.NoError(t, err)
	assert.Equal(t, 1, res.HangersSuperseded)

	uow := store.CreateReadOnly()
	require.NoError(t, uow.Begin(t.Context()))
	h, err := uow.HangerRepository().Get(t.Context(), kerneltest.Code("H-1"))
	require.NoError(t, uow.Rollback(t.Context()))
	require.NoError(t, err)
	assert.Equal(t, 3, h.Revision())
	assert.Equal(t, hanger.Seismic, h.Type())
	assert.Equal(t, hanger.InFabrication, h.Status())
	assert.True(t, readItem(t, store, "ROD-3/8").OnHand().Equal(kerneltest.Quantity("9")))

	actions := make([]string, 0)
	for _, r := range readAudit(t, store, audit.EntityHanger, "H-1") {
		actions = append(actions, r.Action())
	}
	assert.Equal(t, []string{
		commands.ActionHangerImported,
		commands.ActionHangerStatusSet,
		commands.ActionHangerSuperseded,
	}, actions)
}

func TestAccrueHangerActuals(t *testing.T) {
	factory, store := newStoreFactory()
	seedCatalog(t, factory, []*hanger.Hanger{newHanger(t, "H-1", hanger.Clevis, 1)}, nil, nil)

	_, err := commands.NewAccrueHangerActualsCommand("shop", "H-1", decimal.NewFromInt(-1), decimal.Zero)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	handler := commands.NewAccrueHangerActualsCommandHandler(factory)
	for range 2 {
		cmd, err := commands.NewAccrueHangerActualsCommand("shop", "H-1",
			decimal.RequireFromString("1.25"), decimal.RequireFromString("10.50"))
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), cmd))
	}

	uow := store.CreateReadOnly()
	require.NoError(t, uow.Begin(t.Context()))
	h, err := uow.HangerRepository().Get(t.Context(), kerneltest.Code("H-1"))
	require.NoError(t, uow.Rollback(t.Context()))
	require.NoError(t, err)
	assert.True(t, h.ActualHours().Equal(kerneltest.Quantity("2.5")))
	assert.True(t, h.ActualCost().Equal(kerneltest.Quantity("21")))
}

func TestExceptionWorkflow(t *testing.T) {
	factory, store := newStoreFactory()
	seedCatalog(t, factory, []*hanger.Hanger{newHanger(t, "H-1", hanger.Clevis, 1)}, nil, nil)
	createPackage(t, factory, "PKG-1", "H-1")

	create := commands.NewCreateExceptionCommandHandler(factory)
	workflow := commands.NewExceptionWorkflowCommandHandler(factory)

	missing, err := commands.NewCreateExceptionCommand("qa", "QAFail", "High", "", "PKG-404", "weld crack")
	require.NoError(t, err)
	_, err = create.Handle(t.Context(), missing)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	cmd, err := commands.NewCreateExceptionCommand("qa", "QAFail", "High", "", "H-1", "weld crack")
	require.NoError(t, err)
	id, err := create.Handle(t.Context(), cmd)
	require.NoError(t, err)

	uow := store.CreateReadOnly()
	require.NoError(t, uow.Begin(t.Context()))
	exc, err := uow.ExceptionRepository().Get(t.Context(), id)
	require.NoError(t, uow.Rollback(t.Context()))
	require.NoError(t, err)
	assert.Equal(t, exception.Open, exc.State())
	assert.Equal(t, exception.RefHanger, exc.Ref().Kind)

	closeEarly, _ := commands.NewCloseExceptionCommand("qa", id.String())
	assert.ErrorIs(t, workflow.Close(t.Context(), closeEarly), errs.ErrInvalidTransition)

	blankAssignee, _ := commands.NewAssignExceptionCommand("qa", id.String(), " ")
	assert.ErrorIs(t, workflow.Assign(t.Context(), blankAssignee), errs.ErrValueIsRequired)
	assign, _ := commands.NewAssignExceptionCommand("qa", id.String(), "maria")
	require.NoError(t, workflow.Assign(t.Context(), assign))

	blankNotes, _ := commands.NewResolveExceptionCommand("qa", id.String(), "")
	assert.ErrorIs(t, workflow.Resolve(t.Context(), blankNotes), errs.ErrValueIsRequired)
	resolve, _ := commands.NewResolveExceptionCommand("qa", id.String(), "rewelded")
	require.NoError(t, workflow.Resolve(t.Context(), resolve))
	assert.ErrorIs(t, workflow.Resolve(t.Context(), resolve), errs.ErrInvalidTransition)
	assert.ErrorIs(t, workflow.Assign(t.Context(), assign), errs.ErrInvalidTransition)

	closeCmd, _ := commands.NewCloseExceptionCommand("qa", id.String())
	require.NoError(t, workflow.Close(t.Context(), closeCmd))

	assert.Len(t, readAudit(t, store, audit.EntityException, id.String()), 4)
}

func TestCreateException_ExplicitRefKind(t *testing.T) {
	factory, _ := newStoreFactory()
	seedCatalog(t, factory, []*hanger.Hanger{newHanger(t, "H-1", hanger.Clevis, 1)}, nil, nil)

	cmd, err := commands.NewCreateExceptionCommand("qa", "Other", "Low", "package", "H-1", "")
	require.NoError(t, err)
	_, err = commands.NewCreateExceptionCommandHandler(factory).Handle(t.Context(), cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = commands.NewCreateExceptionCommand("qa", "Nope", "Low", "", "H-1", "")
	assert.True(t, errs.IsValidation(err))
}
