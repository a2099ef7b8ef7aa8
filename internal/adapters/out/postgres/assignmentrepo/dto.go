// Package assignmentrepo persists assignments. Steps and tool events are
// stored as JSON documents on the assignment row.
package assignmentrepo

import (
	"time"

	"hangerflow/internal/core/domain/model/assignment"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssignmentDTO struct {
	ID         uuid.UUID                                    `gorm:"type:uuid;primaryKey"`
	PackageID  string                                       `gorm:"type:varchar(64);not null;index"`
	HangerID   string                                       `gorm:"type:varchar(64);not null;index"`
	TeamID     *string                                      `gorm:"type:varchar(64);index"`
	Priority   string                                       `gorm:"type:varchar(16);not null"`
	Expedite   bool                                         `gorm:"not null"`
	Order      *int                                         `gorm:"column:queue_order"`
	Steps      datatypes.JSONSlice[assignment.StepSnapshot] `gorm:"type:jsonb;not null"`
	Status     string                                       `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time                                    `gorm:"not null"`
	StartedAt  *time.Time
	FinishedAt *time.Time
	ToolEvents datatypes.JSONSlice[assignment.ToolEvent] `gorm:"type:jsonb;not null"`
}

func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	s := a.Snapshot()
	return AssignmentDTO{
		ID:         a.ID().Value(),
		PackageID:  s.PackageID,
		HangerID:   s.HangerID,
		TeamID:     s.TeamID,
		Priority:   s.Priority,
		Expedite:   s.Expedite,
		Order:      s.Order,
		Steps:      datatypes.NewJSONSlice(s.Steps),
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		ToolEvents: datatypes.NewJSONSlice(s.ToolEvents),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	return assignment.Restore(assignment.Snapshot{
		ID:         dto.ID.String(),
		PackageID:  dto.PackageID,
		HangerID:   dto.HangerID,
		TeamID:     dto.TeamID,
		Priority:   dto.Priority,
		Expedite:   dto.Expedite,
		Order:      dto.Order,
		Steps:      []assignment.StepSnapshot(dto.Steps),
		Status:     dto.Status,
		CreatedAt:  dto.CreatedAt.UTC(),
		StartedAt:  utc(dto.StartedAt),
		FinishedAt: utc(dto.FinishedAt),
		ToolEvents: []assignment.ToolEvent(dto.ToolEvents),
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
