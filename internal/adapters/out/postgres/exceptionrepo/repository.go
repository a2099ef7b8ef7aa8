package exceptionrepo

import (
	"context"
	"errors"

	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExceptionRepository implements ports.ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormExceptionRepository {
	return &GormExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormExceptionRepository) Add(ctx context.Context, aggregate *exception.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("exception", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormExceptionRepository) Update(ctx context.Context, aggregate *exception.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ExceptionDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("exception", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("exception", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate takes a FOR UPDATE row lock held until the transaction ends.
func (r *GormExceptionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormExceptionRepository) get(query *gorm.DB, id kernel.UUID) (*exception.Exception, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExceptionDTO
	if err := query.First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("exception", id.String())
		}
		return nil, pgerr.Classify("exception", err)
	}

	return toDomain(dto)
}

// List applies the non-zero filter fields. Ordering is left to the caller.
func (r *GormExceptionRepository) List(ctx context.Context, filter exception.Filter) ([]*exception.Exception, error) {
	query := r.db.WithContext(ctx)
	if filter.State != exception.UnknownState {
		query = query.Where("state = ?", filter.State.String())
	}
	if filter.Severity != exception.UnknownSeverity {
		query = query.Where("severity = ?", filter.Severity.String())
	}
	if filter.Type != exception.UnknownType {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Ref != "" {
		query = query.Where("ref_id = ?", filter.Ref)
	}

	var dtos []ExceptionDTO
	if err := query.Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	list := make([]*exception.Exception, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}

	return list, nil
}
