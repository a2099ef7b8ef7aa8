package commands_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"hangerflow/internal/adapters/out/memory"
	"hangerflow/internal/core/application/usecases/commands"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/ports"
)

var errNotMocked = errors.New("not implemented in mock")

type MockHangerRepository struct{ mock.Mock }

func (m *MockHangerRepository) Add(_ context.Context, _ *hanger.Hanger) error { return errNotMocked }
func (m *MockHangerRepository) Update(ctx context.Context, h *hanger.Hanger) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
func (m *MockHangerRepository) Get(ctx context.Context, id kernel.Code) (*hanger.Hanger, error) {
	args := m.Called(ctx, id)
	h, _ := args.Get(0).(*hanger.Hanger)
	return h, args.Error(1)
}
func (m *MockHangerRepository) GetForUpdate(ctx context.Context, id kernel.Code) (*hanger.Hanger, error) {
	args := m.Called(ctx, id)
	h, _ := args.Get(0).(*hanger.Hanger)
	return h, args.Error(1)
}
func (m *MockHangerRepository) GetMany(_ context.Context, _ []kernel.Code) (map[kernel.Code]*hanger.Hanger, error) {
	return nil, errNotMocked
}
func (m *MockHangerRepository) LockMany(_ context.Context, _ []kernel.Code) (map[kernel.Code]*hanger.Hanger, error) {
	return nil, errNotMocked
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(_ context.Context, _ *workpackage.Package) error {
	return errNotMocked
}

func (m *MockPackageRepository) Update(ctx context.Context, p *workpackage.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPackageRepository) Get(ctx context.Context, id kernel.Code) (*workpackage.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*workpackage.Package)
	return p, args.Error(1)
}
func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id kernel.Code) (*workpackage.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*workpackage.Package)
	return p, args.Error(1)
}
func (m *MockPackageRepository) ListByProject(_ context.Context, _ kernel.Code) ([]*workpackage.Package, error) {
	return nil, errNotMocked
}
func (m *MockPackageRepository) ListByStatus(_ context.Context, _ ...workpackage.Status) ([]*workpackage.Package, error) {
	return nil, errNotMocked
}
func (m *MockPackageRepository) ListOpenContaining(_ context.Context, _ []kernel.Code) ([]*workpackage.Package, error) {
	return nil, errNotMocked
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, r *audit.Record) (*audit.Record, error) {
	args := m.Called(ctx, r)
	return r.WithSeq(1), args.Error(0)
}
func (m *MockAuditRepository) ListAfter(_ context.Context, _ int64, _ int) ([]*audit.Record, error) {
	return nil, errNotMocked
}
func (m *MockAuditRepository) ListByEntity(_ context.Context, _, _ string) ([]*audit.Record, error) {
	return nil, errNotMocked
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) HangerRepository() ports.HangerRepository {
	args := m.Called()
	return args.Get(0).(ports.HangerRepository)
}
func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}
func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}
func (m *MockUoW) TeamRepository() ports.TeamRepository {
	args := m.Called()
	return args.Get(0).(ports.TeamRepository)
}
func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}
func (m *MockUoW) ExceptionRepository() ports.ExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExceptionRepository)
}
func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// storeFactory runs handlers against a real in-memory store.
type storeFactory struct {
	store *memory.Store
}

func (f storeFactory) Create() commands.UoW { return f.store.Create() }
