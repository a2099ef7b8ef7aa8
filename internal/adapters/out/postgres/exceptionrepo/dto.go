// Package exceptionrepo persists shop-floor exceptions.
package exceptionrepo

import (
	"time"

	"hangerflow/internal/core/domain/model/exception"

	"github.com/google/uuid"
)

type ExceptionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type            string    `gorm:"type:varchar(32);not null;index"`
	Severity        string    `gorm:"type:varchar(16);not null;index"`
	RefKind         string    `gorm:"type:varchar(16);not null"`
	RefID           string    `gorm:"type:varchar(64);not null;index"`
	Description     string    `gorm:"type:text"`
	State           string    `gorm:"type:varchar(16);not null;index"`
	Assignee        string    `gorm:"type:varchar(255)"`
	ResolutionNotes string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	ResolvedAt      *time.Time
	ClosedAt        *time.Time
}

func (ExceptionDTO) TableName() string {
	return "exceptions"
}

func fromDomain(e *exception.Exception) ExceptionDTO {
	s := e.Snapshot()
	return ExceptionDTO{
		ID:              e.ID().Value(),
		Type:            s.Type,
		Severity:        s.Severity,
		RefKind:         string(s.Ref.Kind),
		RefID:           s.Ref.ID,
		Description:     s.Description,
		State:           s.State,
		Assignee:        s.Assignee,
		ResolutionNotes: s.ResolutionNotes,
		CreatedAt:       s.CreatedAt,
		ResolvedAt:      s.ResolvedAt,
		ClosedAt:        s.ClosedAt,
	}
}

func toDomain(dto ExceptionDTO) (*exception.Exception, error) {
	return exception.Restore(exception.Snapshot{
		ID:              dto.ID.String(),
		Type:            dto.Type,
		Severity:        dto.Severity,
		Ref:             exception.Ref{Kind: exception.RefKind(dto.RefKind), ID: dto.RefID},
		Description:     dto.Description,
		State:           dto.State,
		Assignee:        dto.Assignee,
		ResolutionNotes: dto.ResolutionNotes,
		CreatedAt:       dto.CreatedAt.UTC(),
		ResolvedAt:      dto.ResolvedAt,
		ClosedAt:        dto.ClosedAt,
	})
}
