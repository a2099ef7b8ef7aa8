// Package hangerrepo persists hanger aggregates. The bill of materials lives
// in a child table ordered by position.
package hangerrepo

import (
	"errors"

	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type HangerDTO struct {
	ID                    string          `gorm:"type:varchar(64);primaryKey"`
	ProjectID             string          `gorm:"type:varchar(64);not null;index"`
	Type                  string          `gorm:"type:varchar(32);not null"`
	System                string          `gorm:"type:varchar(255)"`
	Location              LocationDTO     `gorm:"embedded;embeddedPrefix:location_"`
	Revision              int             `gorm:"not null"`
	EstimatedLaborHours   decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	ActualLaborHours      decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	EstimatedMaterialCost decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	ActualMaterialCost    decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Status                string          `gorm:"type:varchar(32);not null"`
	BOM                   []BOMLineDTO    `gorm:"foreignKey:HangerID;constraint:OnDelete:CASCADE"`
}

func (HangerDTO) TableName() string {
	return "hangers"
}

type LocationDTO struct {
	Level     string `gorm:"type:varchar(64)"`
	Grid      string `gorm:"type:varchar(64)"`
	Zone      string `gorm:"type:varchar(64)"`
	Elevation string `gorm:"type:varchar(64)"`
}

// BOMLineDTO keeps the catalog quantity text as supplied; demand parsing is
// lenient and happens in the domain.
type BOMLineDTO struct {
	HangerID    string `gorm:"type:varchar(64);primaryKey"`
	Position    int    `gorm:"primaryKey"`
	SKU         string `gorm:"type:varchar(64);not null;index"`
	Description string `gorm:"type:varchar(255)"`
	UOM         string `gorm:"type:varchar(16)"`
	Quantity    string `gorm:"type:varchar(32)"`
}

func (BOMLineDTO) TableName() string {
	return "hanger_bom_lines"
}

func fromDomain(h *hanger.Hanger) HangerDTO {
	s := h.Snapshot()
	bom := make([]BOMLineDTO, 0, len(s.BOM))
	for i, l := range s.BOM {
		bom = append(bom, BOMLineDTO{
			HangerID:    s.ID,
			Position:    i,
			SKU:         l.SKU,
			Description: l.Description,
			UOM:         l.UOM,
			Quantity:    l.Quantity,
		})
	}

	return HangerDTO{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Type:      s.Type,
		System:    s.System,
		Location: LocationDTO{
			Level:     s.Location.Level,
			Grid:      s.Location.Grid,
			Zone:      s.Location.Zone,
			Elevation: s.Location.Elevation,
		},
		Revision:              s.Revision,
		EstimatedLaborHours:   s.EstimatedLaborHours.Decimal(),
		ActualLaborHours:      s.ActualLaborHours.Decimal(),
		EstimatedMaterialCost: s.EstimatedMaterialCost.Decimal(),
		ActualMaterialCost:    s.ActualMaterialCost.Decimal(),
		Status:                s.Status,
		BOM:                   bom,
	}
}

// toDomain expects BOM rows to be loaded in position order.
func toDomain(dto HangerDTO) (*hanger.Hanger, error) {
	estHours, errEstHours := kernel.NewQuantity(dto.EstimatedLaborHours)
	actHours, errActHours := kernel.NewQuantity(dto.ActualLaborHours)
	estCost, errEstCost := kernel.NewQuantity(dto.EstimatedMaterialCost)
	actCost, errActCost := kernel.NewQuantity(dto.ActualMaterialCost)
	if err := errors.Join(errEstHours, errActHours, errEstCost, errActCost); err != nil {
		return nil, err
	}

	bom := make([]hanger.BOMLineSnapshot, 0, len(dto.BOM))
	for _, l := range dto.BOM {
		bom = append(bom, hanger.BOMLineSnapshot{
			SKU:         l.SKU,
			Description: l.Description,
			UOM:         l.UOM,
			Quantity:    l.Quantity,
		})
	}

	return hanger.Restore(hanger.Snapshot{
		ID:        dto.ID,
		ProjectID: dto.ProjectID,
		Type:      dto.Type,
		System:    dto.System,
		Location: hanger.LocationSnapshot{
			Level:     dto.Location.Level,
			Grid:      dto.Location.Grid,
			Zone:      dto.Location.Zone,
			Elevation: dto.Location.Elevation,
		},
		Revision:              dto.Revision,
		BOM:                   bom,
		EstimatedLaborHours:   estHours,
		ActualLaborHours:      actHours,
		EstimatedMaterialCost: estCost,
		ActualMaterialCost:    actCost,
		Status:                dto.Status,
	})
}
