// Package memory is an in-process implementation of the persistence ports.
// A Store holds committed state; a unit of work takes the store lock at
// Begin and releases it at Commit or Rollback. Writers work on a private copy
// that replaces the committed state on Commit, so a rolled back unit of work
// leaves no trace. Read-only units of work share the lock with each other.
package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/ports"
)

var (
	ErrNoTransaction = errors.New("memory: no active transaction")
	ErrReadOnly      = errors.New("memory: unit of work is read-only")
)

type state struct {
	hangers     map[kernel.Code]hanger.Snapshot
	packages    map[kernel.Code]workpackage.Snapshot
	items       map[kernel.Code]inventory.ItemSnapshot
	pickLists   map[kernel.UUID]inventory.PickListSnapshot
	teams       map[kernel.Code]team.Snapshot
	assignments map[kernel.UUID]assignment.Snapshot
	exceptions  map[kernel.UUID]exception.Snapshot
	audit       []*audit.Record
}

func newState() *state {
	return &state{
		hangers:     make(map[kernel.Code]hanger.Snapshot),
		packages:    make(map[kernel.Code]workpackage.Snapshot),
		items:       make(map[kernel.Code]inventory.ItemSnapshot),
		pickLists:   make(map[kernel.UUID]inventory.PickListSnapshot),
		teams:       make(map[kernel.Code]team.Snapshot),
		assignments: make(map[kernel.UUID]assignment.Snapshot),
		exceptions:  make(map[kernel.UUID]exception.Snapshot),
	}
}

// clone copies the maps. Stored snapshots are replaced, never mutated, so
// their contents can be shared.
func (s *state) clone() *state {
	return &state{
		hangers:     maps.Clone(s.hangers),
		packages:    maps.Clone(s.packages),
		items:       maps.Clone(s.items),
		pickLists:   maps.Clone(s.pickLists),
		teams:       maps.Clone(s.teams),
		assignments: maps.Clone(s.assignments),
		exceptions:  maps.Clone(s.exceptions),
		audit:       slices.Clip(s.audit),
	}
}

// Store is the committed state shared by all units of work.
type Store struct {
	mu    sync.RWMutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// Create returns a read-write unit of work.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// CreateReadOnly returns a unit of work whose repositories refuse writes.
// Any number of them may be open at once.
func (s *Store) CreateReadOnly() ports.UnitOfWork {
	return &UnitOfWork{store: s, readOnly: true}
}

// UnitOfWork is one transaction against a Store.
type UnitOfWork struct {
	store    *Store
	readOnly bool
	tx       *state
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if uow.readOnly {
		uow.store.mu.RLock()
		uow.tx = uow.store.state
		return nil
	}

	uow.store.mu.Lock()
	uow.tx = uow.store.state.clone()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	if uow.readOnly {
		uow.tx = nil
		uow.store.mu.RUnlock()
		return nil
	}

	uow.store.state = uow.tx
	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}

	uow.tx = nil
	if uow.readOnly {
		uow.store.mu.RUnlock()
		return nil
	}
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) HangerRepository() ports.HangerRepository {
	return &hangerRepository{uow: uow}
}

func (uow *UnitOfWork) PackageRepository() ports.PackageRepository {
	return &packageRepository{uow: uow}
}

func (uow *UnitOfWork) InventoryRepository() ports.InventoryRepository {
	return &inventoryRepository{uow: uow}
}

func (uow *UnitOfWork) TeamRepository() ports.TeamRepository {
	return &teamRepository{uow: uow}
}

func (uow *UnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return &assignmentRepository{uow: uow}
}

func (uow *UnitOfWork) ExceptionRepository() ports.ExceptionRepository {
	return &exceptionRepository{uow: uow}
}

func (uow *UnitOfWork) AuditRepository() ports.AuditRepository {
	return &auditRepository{uow: uow}
}

func (uow *UnitOfWork) reader() (*state, error) {
	if uow.tx == nil {
		return nil, ErrNoTransaction
	}
	return uow.tx, nil
}

func (uow *UnitOfWork) writer() (*state, error) {
	if uow.tx == nil {
		return nil, ErrNoTransaction
	}
	if uow.readOnly {
		return nil, ErrReadOnly
	}
	return uow.tx, nil
}
