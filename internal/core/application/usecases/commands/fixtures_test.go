package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hangerflow/internal/adapters/out/memory"
	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/kernel/kerneltest"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/core/domain/model/workpackage"
)

func bomLine(t *testing.T, sku, qty string) hanger.BOMLine {
	t.Helper()
	line, err := hanger.NewBOMLine(kerneltest.Code(sku), sku+" stock", "ea", qty)
	require.NoError(t, err)
	return line
}

func newHanger(t *testing.T, id string, typ hanger.Type, revision int, bom ...hanger.BOMLine) *hanger.Hanger {
	t.Helper()
	loc, err := kernel.NewLocation("L2", "C-4", "East", "12'-0\"")
	require.NoError(t, err)
	h, err := hanger.NewHanger(kerneltest.Code(id), kerneltest.Code("PRJ-1"), typ, "Plumbing/Domestic Water",
		loc, revision, bom, hanger.Estimate{LaborHours: kerneltest.Quantity("1.5"), MaterialCost: kerneltest.Quantity("40")})
	require.NoError(t, err)
	return h
}

func newPackage(t *testing.T, id string, hangerIDs ...string) *workpackage.Package {
	t.Helper()
	ids, err := kernel.NewCodes(hangerIDs)
	require.NoError(t, err)
	p, err := workpackage.NewPackage(kerneltest.Code(id), kerneltest.Code("PRJ-1"), id, "L2", "East", ids, time.Now())
	require.NoError(t, err)
	return p
}

func newItem(t *testing.T, sku, onHand string) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(kerneltest.Code(sku), sku+" stock", "ea",
		kerneltest.Quantity(onHand), kerneltest.Quantity("0"), kerneltest.Quantity("0"))
	require.NoError(t, err)
	return item
}

func newTeam(t *testing.T, id string) *team.Team {
	t.Helper()
	crew, err := team.NewTeam(kerneltest.Code(id), "Crew "+id, []string{"ana", "ben"}, nil, kerneltest.Quantity("8"))
	require.NoError(t, err)
	return crew
}

// seedCatalog imports the given entities through the import handler.
func seedCatalog(t *testing.T, factory commands.UoWFactory, hangers []*hanger.Hanger, teams []*team.Team, items []*inventory.Item) {
	t.Helper()
	cmd, err := commands.NewImportCatalogCommand("planner", hangers, teams, items)
	require.NoError(t, err)
	_, err = commands.NewImportCatalogCommandHandler(factory).Handle(t.Context(), cmd)
	require.NoError(t, err)
}

func createPackage(t *testing.T, factory commands.UoWFactory, id string, hangerIDs ...string) {
	t.Helper()
	cmd, err := commands.NewCreatePackageCommand("planner", id, "PRJ-1", id, "L2", "East", hangerIDs)
	require.NoError(t, err)
	require.NoError(t, commands.NewCreatePackageCommandHandler(factory).Handle(t.Context(), cmd))
}

func newStoreFactory() (storeFactory, *memory.Store) {
	store := memory.NewStore()
	return storeFactory{store: store}, store
}
