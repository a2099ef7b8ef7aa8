package postgres

import (
	"context"
	"fmt"

	"hangerflow/internal/adapters/out/postgres/assignmentrepo"
	"hangerflow/internal/adapters/out/postgres/auditrepo"
	"hangerflow/internal/adapters/out/postgres/exceptionrepo"
	"hangerflow/internal/adapters/out/postgres/hangerrepo"
	"hangerflow/internal/adapters/out/postgres/inventoryrepo"
	"hangerflow/internal/adapters/out/postgres/packagerepo"
	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/adapters/out/postgres/teamrepo"

	"gorm.io/gorm"
)

// Models lists every table of the schema in dependency order.
func Models() []any {
	return []any{
		&hangerrepo.HangerDTO{},
		&hangerrepo.BOMLineDTO{},
		&packagerepo.PackageDTO{},
		&inventoryrepo.ItemDTO{},
		&inventoryrepo.PickListDTO{},
		&teamrepo.TeamDTO{},
		&assignmentrepo.AssignmentDTO{},
		&exceptionrepo.ExceptionDTO{},
		&auditrepo.RecordDTO{},
	}
}

// Migrate creates or alters the tables, then adds the partial unique index
// that keeps a hanger on at most one open assignment.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	openAssignment := fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON assignments (hanger_id) WHERE status <> 'Done'",
		pgerr.OpenAssignmentIndex)
	if err := db.Exec(openAssignment).Error; err != nil {
		return fmt.Errorf("create %s: %w", pgerr.OpenAssignmentIndex, err)
	}
	return nil
}
