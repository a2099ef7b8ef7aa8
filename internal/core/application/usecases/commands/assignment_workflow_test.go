package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hangerflow/internal/adapters/out/memory"
	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/kernel/kerneltest"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/pkg/errs"
)

func readAssignment(t *testing.T, store *memory.Store, id kernel.UUID) *assignment.Assignment {
	t.Helper()
	uow := store.CreateReadOnly()
	require.NoError(t, uow.Begin(t.Context()))
	defer func() { _ = uow.Rollback(t.Context()) }()
	a, err := uow.AssignmentRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return a
}

// routablePackage seeds two hangers, a crew and an approved package.
func routablePackage(t *testing.T) (storeFactory, *memory.Store) {
	t.Helper()
	factory, store := newStoreFactory()
	seedCatalog(t, factory,
		[]*hanger.Hanger{
			newHanger(t, "H-1", hanger.Clevis, 1),
			newHanger(t, "H-2", hanger.Seismic, 1),
		},
		[]*team.Team{newTeam(t, "T-1"), newTeam(t, "T-2")},
		nil)
	createPackage(t, factory, "PKG-1", "H-1", "H-2")
	approve, err := commands.NewApprovePackageCommand("pm", "PKG-1")
	require.NoError(t, err)
	require.NoError(t, commands.NewApprovePackageCommandHandler(factory, nil).Handle(t.Context(), approve))
	return factory, store
}

func createAssignments(t *testing.T, factory commands.UoWFactory, teamID string) ([]kernel.UUID, error) {
	t.Helper()
	cmd, err := commands.NewCreateAssignmentsCommand("lead", "PKG-1", teamID, "High", false)
	require.NoError(t, err)
	return commands.NewCreateAssignmentsCommandHandler(factory).Handle(t.Context(), cmd)
}

func transition(t *testing.T, factory commands.UoWFactory, id kernel.UUID, tr commands.AssignmentTransition) error {
	t.Helper()
	cmd, err := commands.NewTransitionAssignmentCommand("ana", id.String(), tr)
	require.NoError(t, err)
	return commands.NewTransitionAssignmentCommandHandler(factory).Handle(t.Context(), cmd)
}

func completeStep(t *testing.T, factory commands.UoWFactory, id kernel.UUID, key string, data map[string]any) error {
	t.Helper()
	cmd, err := commands.NewCompleteStepCommand("ana", id.String(), key, data)
	require.NoError(t, err)
	return commands.NewCompleteStepCommandHandler(factory).Handle(t.Context(), cmd)
}

func TestCreateAssignments_IsIdempotent(t *testing.T) {
	factory, store := routablePackage(t)

	ids, err := createAssignments(t, factory, "T-1")
	require.NoError(t, err)
	require.Len(t, ids, 2)

	first := readAssignment(t, store, ids[0])
	assert.Equal(t, assignment.Queued, first.Status())
	assert.Equal(t, assignment.High, first.Priority())
	require.NotNil(t, first.TeamID())
	assert.Equal(t, kerneltest.Code("T-1"), *first.TeamID())
	assert.Len(t, first.Steps(), 3)
	assert.Len(t, readAssignment(t, store, ids[1]).Steps(), 5)

	again, err := createAssignments(t, factory, "T-1")
	require.NoError(t, err)
	assert.Empty(t, again)

	records := readAudit(t, store, audit.EntityPackage, "PKG-1")
	count := 0
	for _, r := range records {
		if r.Action() == commands.ActionAssignmentsCreated {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCreateAssignments_RequiresRoutablePackage(t *testing.T) {
	factory, _ := newStoreFactory()
	seedCatalog(t, factory, []*hanger.Hanger{newHanger(t, "H-1", hanger.Clevis, 1)}, []*team.Team{newTeam(t, "T-1")}, nil)
	createPackage(t, factory, "PKG-1", "H-1")

	_, err := createAssignments(t, factory, "T-1")
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestCreateAssignments_UnknownTeam(t *testing.T) {
	factory, _ := routablePackage(t)

	_, err := createAssignments(t, factory, "T-404")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignmentLifecycle(t *testing.T) {
	factory, store := routablePackage(t)
	ids, err := createAssignments(t, factory, "T-1")
	require.NoError(t, err)
	id := ids[0]

	assert.ErrorIs(t, transition(t, factory, id, commands.TransitionPause), errs.ErrInvalidTransition)
	require.NoError(t, transition(t, factory, id, commands.TransitionStart))
	assert.NotNil(t, readAssignment(t, store, id).StartedAt())
	assert.ErrorIs(t, transition(t, factory, id, commands.TransitionStart), errs.ErrInvalidTransition)

	require.NoError(t, transition(t, factory, id, commands.TransitionPause))
	assert.ErrorIs(t, transition(t, factory, id, commands.TransitionSubmitForQA), errs.ErrInvalidTransition)
	require.NoError(t, transition(t, factory, id, commands.TransitionResume))

	err = completeStep(t, factory, id, "RodCut", map[string]any{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	err = completeStep(t, factory, id, "BraceCut", map[string]any{"length": "12in"})
	assert.True(t, errs.IsValidation(err))

	require.NoError(t, completeStep(t, factory, id, "RodCut", map[string]any{"length": "24in"}))
	assert.Equal(t, assignment.InProgress, readAssignment(t, store, id).Status())

	require.NoError(t, transition(t, factory, id, commands.TransitionSubmitForQA))

	err = transition(t, factory, id, commands.TransitionFinish)
	var incomplete *errs.IncompleteStepsError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"Assembly", "QA"}, incomplete.Missing)

	require.NoError(t, completeStep(t, factory, id, "Assembly", map[string]any{"torqueVerified": true}))
	require.NoError(t, completeStep(t, factory, id, "QA", map[string]any{"inspector": "qa-1"}))
	require.NoError(t, transition(t, factory, id, commands.TransitionFinish))

	done := readAssignment(t, store, id)
	assert.Equal(t, assignment.Done, done.Status())
	assert.NotNil(t, done.FinishedAt())

	assert.ErrorIs(t, transition(t, factory, id, commands.TransitionFinish), errs.ErrInvalidTransition)
	err = completeStep(t, factory, id, "QA", map[string]any{"inspector": "qa-2"})
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestAssignToTeam_CollectsPerIDFailures(t *testing.T) {
	factory, store := routablePackage(t)
	ids, err := createAssignments(t, factory, "T-1")
	require.NoError(t, err)

	missing := kernel.NewUUID().String()
	cmd, err := commands.NewAssignToTeamCommand("lead", []string{ids[0].String(), missing, "not-a-uuid"}, "T-2")
	require.NoError(t, err)
	result, err := commands.NewAssignToTeamCommandHandler(factory).Handle(t.Context(), cmd)
	require.NoError(t, err)

	assert.Equal(t, []string{ids[0].String()}, result.Succeeded)
	require.Len(t, result.Failed, 2)
	assert.ErrorIs(t, result.Failed[0].Err, errs.ErrObjectNotFound)
	assert.True(t, errs.IsValidation(result.Failed[1].Err))
	assert.Equal(t, kerneltest.Code("T-2"), *readAssignment(t, store, ids[0]).TeamID())
}

func TestAssignToTeam_UnknownTeamFailsEveryID(t *testing.T) {
	factory, _ := routablePackage(t)
	ids, err := createAssignments(t, factory, "T-1")
	require.NoError(t, err)

	cmd, err := commands.NewAssignToTeamCommand("lead", kernel.CodeStrings(nil), "T-9")
	require.Error(t, err)

	raw := []string{ids[0].String(), ids[1].String()}
	cmd, err = commands.NewAssignToTeamCommand("lead", raw, "T-9")
	require.NoError(t, err)
	result, err := commands.NewAssignToTeamCommandHandler(factory).Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Empty(t, result.Succeeded)
	require.Len(t, result.Failed, 2)
	for _, f := range result.Failed {
		assert.ErrorIs(t, f.Err, errs.ErrObjectNotFound)
	}
}

func TestReprioritizeAndToolEvents(t *testing.T) {
	factory, store := routablePackage(t)
	ids, err := createAssignments(t, factory, "T-1")
	require.NoError(t, err)

	order := 2
	cmd, err := commands.NewReprioritizeAssignmentCommand("lead", ids[1].String(), "Urgent", true, &order)
	require.NoError(t, err)
	require.NoError(t, commands.NewReprioritizeAssignmentCommandHandler(factory).Handle(t.Context(), cmd))

	a := readAssignment(t, store, ids[1])
	assert.Equal(t, assignment.Urgent, a.Priority())
	assert.True(t, a.Expedite())
	require.NotNil(t, a.Order())
	assert.Equal(t, 2, *a.Order())

	value := "42.5"
	ev, err := commands.NewPushToolEventCommand("saw-7", ids[1].String(), "cut", "SAW-7", "cut.complete", &value)
	require.NoError(t, err)
	require.NoError(t, commands.NewPushToolEventCommandHandler(factory).Handle(t.Context(), ev))
	require.Len(t, readAssignment(t, store, ids[1]).ToolEvents(), 1)

	unknown, err := commands.NewPushToolEventCommand("saw-7", kernel.NewUUID().String(), "cut", "SAW-7", "cut.complete", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, commands.NewPushToolEventCommandHandler(factory).Handle(t.Context(), unknown), errs.ErrObjectNotFound)

	assert.Len(t, readAudit(t, store, audit.EntityAssignment, ids[1].String()), 2)
}
