// Package auditrepo stores the append-only audit log.
package auditrepo

import (
	"encoding/json"
	"time"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RecordDTO struct {
	Seq        int64          `gorm:"primaryKey;autoIncrement:false"`
	ID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	At         time.Time      `gorm:"not null"`
	Actor      string         `gorm:"type:varchar(255);not null"`
	Action     string         `gorm:"type:varchar(64);not null"`
	EntityType string         `gorm:"type:varchar(32);not null;index:idx_audit_entity"`
	EntityID   string         `gorm:"type:varchar(64);not null;index:idx_audit_entity"`
	Before     datatypes.JSON `gorm:"type:jsonb"`
	After      datatypes.JSON `gorm:"type:jsonb"`
}

func (RecordDTO) TableName() string {
	return "audit_records"
}

func fromDomain(r *audit.Record) RecordDTO {
	return RecordDTO{
		Seq:        r.Seq(),
		ID:         r.ID().Value(),
		At:         r.At(),
		Actor:      r.Actor(),
		Action:     r.Action(),
		EntityType: r.EntityType(),
		EntityID:   r.EntityID(),
		Before:     datatypes.JSON(r.Before()),
		After:      datatypes.JSON(r.After()),
	}
}

func toDomain(dto RecordDTO) (*audit.Record, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}
	return audit.RestoreRecord(dto.Seq, id, dto.At, dto.Actor, dto.Action, dto.EntityType, dto.EntityID,
		json.RawMessage(dto.Before), json.RawMessage(dto.After))
}
