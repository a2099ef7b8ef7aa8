package teamrepo

import (
	"context"
	"errors"

	"hangerflow/internal/adapters/out/postgres/pgerr"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/team"
	"hangerflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTeamRepository implements ports.TeamRepository using GORM.
type GormTeamRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormTeamRepository(db *gorm.DB, tracker aggregateTracker) *GormTeamRepository {
	return &GormTeamRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTeamRepository) Upsert(ctx context.Context, t *team.Team) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto).Error
	if err != nil {
		return pgerr.Classify("team", err)
	}

	r.tracker.TrackAggregate(t.ID().String(), t)
	return nil
}

func (r *GormTeamRepository) Get(ctx context.Context, id kernel.Code) (*team.Team, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TeamDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("team", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTeamRepository) List(ctx context.Context) ([]*team.Team, error) {
	var dtos []TeamDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	teams := make([]*team.Team, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	return teams, nil
}
