// Package ports defines the persistence contracts of the shop-floor domain.
// Adapters (postgres, memory) implement them; command and query handlers
// depend only on these interfaces.
//
// Get methods return an errs.ObjectNotFoundError when the entity is absent.
// GetForUpdate and LockMany hold row locks until the unit of work ends; read
// them before any check whose outcome the write depends on.
// List methods return an empty slice, never an error, when nothing matches.
package ports

import (
	"context"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/core/domain/model/workpackage"
)

type HangerRepository interface {
	Add(ctx context.Context, h *hanger.Hanger) error
	Update(ctx context.Context, h *hanger.Hanger) error
	Get(ctx context.Context, id kernel.Code) (*hanger.Hanger, error)

	// GetForUpdate is Get that also locks the row until the unit of work ends.
	GetForUpdate(ctx context.Context, id kernel.Code) (*hanger.Hanger, error)

	// GetMany returns the hangers that exist among ids, keyed by id.
	GetMany(ctx context.Context, ids []kernel.Code) (map[kernel.Code]*hanger.Hanger, error)

	// LockMany is GetMany that also locks the rows until the unit of work
	// ends. Rows are locked in ascending id order.
	LockMany(ctx context.Context, ids []kernel.Code) (map[kernel.Code]*hanger.Hanger, error)
}

type PackageRepository interface {
	Add(ctx context.Context, p *workpackage.Package) error
	Update(ctx context.Context, p *workpackage.Package) error
	Get(ctx context.Context, id kernel.Code) (*workpackage.Package, error)
	GetForUpdate(ctx context.Context, id kernel.Code) (*workpackage.Package, error)
	ListByProject(ctx context.Context, projectID kernel.Code) ([]*workpackage.Package, error)
	ListByStatus(ctx context.Context, statuses ...workpackage.Status) ([]*workpackage.Package, error)

	// ListOpenContaining returns open packages sharing at least one of hangerIDs.
	ListOpenContaining(ctx context.Context, hangerIDs []kernel.Code) ([]*workpackage.Package, error)
}

type InventoryRepository interface {
	// Upsert inserts the item or replaces its stock record.
	Upsert(ctx context.Context, item *inventory.Item) error
	Update(ctx context.Context, item *inventory.Item) error
	Get(ctx context.Context, sku kernel.Code) (*inventory.Item, error)

	// GetMany returns the stock records that exist among skus, keyed by sku.
	GetMany(ctx context.Context, skus []kernel.Code) (map[kernel.Code]*inventory.Item, error)

	// LockMany is GetMany that also locks the rows until the unit of work
	// ends. Rows are locked in ascending SKU order.
	LockMany(ctx context.Context, skus []kernel.Code) (map[kernel.Code]*inventory.Item, error)

	AddPickList(ctx context.Context, pl *inventory.PickList) error
	GetPickList(ctx context.Context, id kernel.UUID) (*inventory.PickList, error)
}

type TeamRepository interface {
	Upsert(ctx context.Context, t *team.Team) error
	Get(ctx context.Context, id kernel.Code) (*team.Team, error)
	List(ctx context.Context) ([]*team.Team, error)
}

type AssignmentRepository interface {
	Add(ctx context.Context, a *assignment.Assignment) error
	Update(ctx context.Context, a *assignment.Assignment) error
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)
	ListByPackage(ctx context.Context, packageID kernel.Code) ([]*assignment.Assignment, error)
	ListByHangers(ctx context.Context, hangerIDs []kernel.Code) ([]*assignment.Assignment, error)
	ListByTeam(ctx context.Context, teamID kernel.Code) ([]*assignment.Assignment, error)
}

type ExceptionRepository interface {
	Add(ctx context.Context, e *exception.Exception) error
	Update(ctx context.Context, e *exception.Exception) error
	Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*exception.Exception, error)
	List(ctx context.Context, filter exception.Filter) ([]*exception.Exception, error)
}

type AuditRepository interface {
	// Append assigns the next sequence number and stores the record.
	// Sequence order equals commit order.
	Append(ctx context.Context, r *audit.Record) (*audit.Record, error)

	// ListAfter returns up to limit records with seq > afterSeq in ascending order.
	ListAfter(ctx context.Context, afterSeq int64, limit int) ([]*audit.Record, error)

	// ListByEntity returns the records of one entity in ascending order.
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*audit.Record, error)
}
