package packagerepo

import (
	"context"
	"errors"

	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPackageRepository) Add(ctx context.Context, aggregate *workpackage.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("package", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormPackageRepository) Update(ctx context.Context, aggregate *workpackage.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("package", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormPackageRepository) Get(ctx context.Context, id kernel.Code) (*workpackage.Package, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate takes a FOR UPDATE row lock held until the transaction ends.
func (r *GormPackageRepository) GetForUpdate(ctx context.Context, id kernel.Code) (*workpackage.Package, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPackageRepository) get(query *gorm.DB, id kernel.Code) (*workpackage.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := query.First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, pgerr.Classify("package", err)
	}

	return toDomain(dto)
}

func (r *GormPackageRepository) ListByProject(ctx context.Context, projectID kernel.Code) ([]*workpackage.Package, error) {
	return r.find(r.db.WithContext(ctx).Where("project_id = ?", projectID.String()))
}

func (r *GormPackageRepository) ListByStatus(ctx context.Context, statuses ...workpackage.Status) ([]*workpackage.Package, error) {
	if len(statuses) == 0 {
		return []*workpackage.Package{}, nil
	}
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return r.find(r.db.WithContext(ctx).Where("status IN ?", names))
}

// ListOpenContaining uses the && overlap operator on hanger_ids.
func (r *GormPackageRepository) ListOpenContaining(ctx context.Context, hangerIDs []kernel.Code) ([]*workpackage.Package, error) {
	if len(hangerIDs) == 0 {
		return []*workpackage.Package{}, nil
	}
	return r.find(r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{workpackage.Rejected.String(), workpackage.Delivered.String()}).
		Where("hanger_ids && ?", pq.Array(kernel.CodeStrings(hangerIDs))))
}

func (r *GormPackageRepository) find(query *gorm.DB) ([]*workpackage.Package, error) {
	var dtos []PackageDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]*workpackage.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}
