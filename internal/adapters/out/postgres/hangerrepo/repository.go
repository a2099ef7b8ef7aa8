package hangerrepo

import (
	"context"
	"errors"
	"slices"

	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHangerRepository implements ports.HangerRepository using GORM.
type GormHangerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormHangerRepository(db *gorm.DB, tracker aggregateTracker) *GormHangerRepository {
	return &GormHangerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the hanger together with its bill of materials.
func (r *GormHangerRepository) Add(ctx context.Context, aggregate *hanger.Hanger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("hanger", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update rewrites the hanger row and replaces its BOM rows, since a new
// revision may drop lines.
func (r *GormHangerRepository) Update(ctx context.Context, aggregate *hanger.Hanger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&HangerDTO{}).Where("id = ?", dto.ID).Select("*").Omit("BOM").Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("hanger", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("hanger", dto.ID)
	}

	if err := db.Where("hanger_id = ?", dto.ID).Delete(&BOMLineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.BOM) > 0 {
		if err := db.Create(&dto.BOM).Error; err != nil {
			return pgerr.Classify("hanger", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormHangerRepository) Get(ctx context.Context, id kernel.Code) (*hanger.Hanger, error) {
	return r.get(r.withBOM(ctx), id)
}

// GetForUpdate locks the hanger row. BOM rows are not locked; they only change
// together with the hanger row.
func (r *GormHangerRepository) GetForUpdate(ctx context.Context, id kernel.Code) (*hanger.Hanger, error) {
	return r.get(r.withBOM(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormHangerRepository) GetMany(ctx context.Context, ids []kernel.Code) (map[kernel.Code]*hanger.Hanger, error) {
	return r.getMany(r.withBOM(ctx), ids)
}

// LockMany takes FOR UPDATE row locks in ascending id order. Waiting longer
// than the session lock_timeout surfaces as a ConcurrencyConflictError.
func (r *GormHangerRepository) LockMany(ctx context.Context, ids []kernel.Code) (map[kernel.Code]*hanger.Hanger, error) {
	return r.getMany(r.withBOM(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), ids)
}

func (r *GormHangerRepository) get(query *gorm.DB, id kernel.Code) (*hanger.Hanger, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HangerDTO
	if err := query.First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hanger", id.String())
		}
		return nil, pgerr.Classify("hanger", err)
	}

	return toDomain(dto)
}

func (r *GormHangerRepository) getMany(query *gorm.DB, ids []kernel.Code) (map[kernel.Code]*hanger.Hanger, error) {
	out := make(map[kernel.Code]*hanger.Hanger, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := kernel.CodeStrings(ids)
	slices.Sort(keys)

	var dtos []HangerDTO
	if err := query.Where("id IN ?", slices.Compact(keys)).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Classify("hanger", err)
	}

	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out[h.ID()] = h
	}

	return out, nil
}

func (r *GormHangerRepository) withBOM(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("BOM", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
