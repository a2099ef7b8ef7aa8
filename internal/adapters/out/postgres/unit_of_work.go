// Package postgres provides the GORM-based Unit of Work over the hangerflow
// schema. A unit of work owns one database transaction; every repository it
// hands out runs inside that transaction.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, postgres.WithLockTimeout(5*time.Second))
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	items, err := uow.InventoryRepository().LockMany(ctx, skus)
//	if err != nil {
//	    return err // ConcurrencyConflictError when lock_timeout expires
//	}
//	...
//	return uow.Commit(ctx)
//
// Concurrency:
//   - Inventory rows are locked FOR UPDATE in ascending SKU order.
//   - lock_timeout is set per transaction with SET LOCAL.
//   - Audit appends serialize on a transaction-scoped advisory lock.
//   - Each UnitOfWork belongs to one goroutine.
package postgres

import (
	"context"
	"fmt"
	"time"

	"hangerflow/internal/adapters/out/postgres/assignmentrepo"
	"hangerflow/internal/adapters/out/postgres/auditrepo"
	"hangerflow/internal/adapters/out/postgres/exceptionrepo"
	"hangerflow/internal/adapters/out/postgres/hangerrepo"
	"hangerflow/internal/adapters/out/postgres/inventoryrepo"
	"hangerflow/internal/adapters/out/postgres/packagerepo"
	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/adapters/out/postgres/teamrepo"
	"hangerflow/internal/core/ports"

	"gorm.io/gorm"
)

// DefaultLockTimeout bounds how long a transaction waits for a row lock.
const DefaultLockTimeout = 5 * time.Second

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

type FactoryOption func(*GormUnitOfWorkFactory)

// WithLockTimeout overrides DefaultLockTimeout. Zero disables the limit.
func WithLockTimeout(d time.Duration) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.lockTimeout = d
	}
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db, lockTimeout: DefaultLockTimeout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a fresh unit of work with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		lockTimeout:       f.lockTimeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates its repositories wrote.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	lockTimeout       time.Duration
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Classify("transaction", tx.Error)
	}

	if uow.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. Serialization failures surface as
// ConcurrencyConflictError.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerr.Classify("transaction", err)
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// nothing is open, which lets callers defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) HangerRepository() ports.HangerRepository {
	return hangerrepo.NewGormHangerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return packagerepo.NewGormPackageRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TeamRepository() ports.TeamRepository {
	return teamrepo.NewGormTeamRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ExceptionRepository() ports.ExceptionRepository {
	return exceptionrepo.NewGormExceptionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AuditRepository() ports.AuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn())
}

// TrackAggregate registers an aggregate written by one of the repositories.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs lists the ids written so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []string {
	ids := make([]string, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

// conn is the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
