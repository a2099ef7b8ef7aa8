// Package teamrepo persists crews.
package teamrepo

import (
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/team"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type TeamDTO struct {
	ID         string          `gorm:"type:varchar(64);primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Members    pq.StringArray  `gorm:"type:text[];not null"`
	Stations   pq.StringArray  `gorm:"type:text[];not null"`
	DailyHours decimal.Decimal `gorm:"type:numeric(6,2);not null"`
}

func (TeamDTO) TableName() string {
	return "teams"
}

func fromDomain(t *team.Team) TeamDTO {
	s := t.Snapshot()
	return TeamDTO{
		ID:         s.ID,
		Name:       s.Name,
		Members:    pq.StringArray(s.Members),
		Stations:   pq.StringArray(s.Stations),
		DailyHours: s.DailyHours.Decimal(),
	}
}

func toDomain(dto TeamDTO) (*team.Team, error) {
	hours, err := kernel.NewQuantity(dto.DailyHours)
	if err != nil {
		return nil, err
	}
	return team.Restore(team.Snapshot{
		ID:         dto.ID,
		Name:       dto.Name,
		Members:    []string(dto.Members),
		Stations:   []string(dto.Stations),
		DailyHours: hours,
	})
}
