package auditrepo

import (
	"context"

	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// appendLockKey is the pg_advisory_xact_lock key that serializes appends.
const appendLockKey = 0x68616e67

// GormAuditRepository implements ports.AuditRepository using GORM.
//
// Append holds a transaction-scoped advisory lock from the moment it picks a
// sequence number until commit, so numbers are handed out in commit order
// without gaps and a reader polling with afterSeq never skips a record.
type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

func (r *GormAuditRepository) Append(ctx context.Context, rec *audit.Record) (*audit.Record, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("SELECT pg_advisory_xact_lock(?)", appendLockKey).Error; err != nil {
		return nil, pgerr.Classify("audit log", err)
	}

	var last int64
	if err := db.Model(&RecordDTO{}).Select("COALESCE(MAX(seq), 0)").Scan(&last).Error; err != nil {
		return nil, err
	}

	stored := rec.WithSeq(last + 1)
	dto := fromDomain(stored)
	if err := db.Create(&dto).Error; err != nil {
		return nil, pgerr.Classify("audit log", err)
	}

	return stored, nil
}

func (r *GormAuditRepository) ListAfter(ctx context.Context, afterSeq int64, limit int) ([]*audit.Record, error) {
	query := r.db.WithContext(ctx).Where("seq > ?", afterSeq).Order("seq")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return find(query)
}

func (r *GormAuditRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*audit.Record, error) {
	return find(r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("seq"))
}

func find(query *gorm.DB) ([]*audit.Record, error) {
	var dtos []RecordDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*audit.Record, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
