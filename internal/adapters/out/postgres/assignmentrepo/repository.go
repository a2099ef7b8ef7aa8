package assignmentrepo

import (
	"context"
	"errors"

	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository implements ports.AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("assignment", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("assignment", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate takes a FOR UPDATE row lock held until the transaction ends.
func (r *GormAssignmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormAssignmentRepository) get(query *gorm.DB, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := query.First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, pgerr.Classify("assignment", err)
	}

	return toDomain(dto)
}

func (r *GormAssignmentRepository) ListByPackage(ctx context.Context, packageID kernel.Code) ([]*assignment.Assignment, error) {
	return r.find(r.db.WithContext(ctx).Where("package_id = ?", packageID.String()))
}

func (r *GormAssignmentRepository) ListByHangers(ctx context.Context, hangerIDs []kernel.Code) ([]*assignment.Assignment, error) {
	if len(hangerIDs) == 0 {
		return []*assignment.Assignment{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where("hanger_id IN ?", kernel.CodeStrings(hangerIDs)))
}

func (r *GormAssignmentRepository) ListByTeam(ctx context.Context, teamID kernel.Code) ([]*assignment.Assignment, error) {
	return r.find(r.db.WithContext(ctx).Where("team_id = ?", teamID.String()))
}

// find returns rows in creation order.
func (r *GormAssignmentRepository) find(query *gorm.DB) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := query.Order("created_at").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
