package hanger

import (
	"errors"

	"hangerflow/internal/core/domain/model/kernel"
)

// Snapshot is the serializable state of a Hanger. It is written into audit
// records and used by adapters that store aggregates by value.
type Snapshot struct {
	ID                    string            `json:"id"`
	ProjectID             string            `json:"projectId"`
	Type                  string            `json:"type"`
	System                string            `json:"system"`
	Location              LocationSnapshot  `json:"location"`
	Revision              int               `json:"revision"`
	BOM                   []BOMLineSnapshot `json:"bom"`
	EstimatedLaborHours   kernel.Quantity   `json:"estimatedLaborHours"`
	ActualLaborHours      kernel.Quantity   `json:"actualLaborHours"`
	EstimatedMaterialCost kernel.Quantity   `json:"estimatedMaterialCost"`
	ActualMaterialCost    kernel.Quantity   `json:"actualMaterialCost"`
	Status                string            `json:"status"`
}

type LocationSnapshot struct {
	Level     string `json:"level"`
	Grid      string `json:"grid"`
	Zone      string `json:"zone"`
	Elevation string `json:"elevation"`
}

type BOMLineSnapshot struct {
	SKU         string `json:"sku"`
	Description string `json:"description"`
	UOM         string `json:"uom"`
	Quantity    string `json:"quantity"`
}

// Snapshot captures the current state.
func (h *Hanger) Snapshot() Snapshot {
	bom := make([]BOMLineSnapshot, len(h.bom))
	for i, l := range h.bom {
		bom[i] = BOMLineSnapshot{
			SKU:         l.sku.String(),
			Description: l.description,
			UOM:         l.uom,
			Quantity:    l.rawQuantity,
		}
	}
	return Snapshot{
		ID:        h.id.String(),
		ProjectID: h.projectID.String(),
		Type:      h.hangerType.String(),
		System:    h.system,
		Location: LocationSnapshot{
			Level:     h.location.Level(),
			Grid:      h.location.Grid(),
			Zone:      h.location.Zone(),
			Elevation: h.location.Elevation(),
		},
		Revision:              h.revision,
		BOM:                   bom,
		EstimatedLaborHours:   h.estimate.LaborHours,
		ActualLaborHours:      h.actualHours,
		EstimatedMaterialCost: h.estimate.MaterialCost,
		ActualMaterialCost:    h.actualCost,
		Status:                h.status.String(),
	}
}

// Restore rebuilds a Hanger from a snapshot, validating every field.
func Restore(s Snapshot) (*Hanger, error) {
	id, idErr := kernel.NewCode(s.ID)
	projectID, projectErr := kernel.NewCode(s.ProjectID)
	hangerType, typeErr := ParseType(s.Type)
	status, statusErr := ParseStatus(s.Status)
	loc, locErr := kernel.NewLocation(s.Location.Level, s.Location.Grid, s.Location.Zone, s.Location.Elevation)
	if err := errors.Join(idErr, projectErr, typeErr, statusErr, locErr); err != nil {
		return nil, err
	}

	bom := make([]BOMLine, 0, len(s.BOM))
	for _, l := range s.BOM {
		sku, err := kernel.NewCode(l.SKU)
		if err != nil {
			return nil, err
		}
		line, err := NewBOMLine(sku, l.Description, l.UOM, l.Quantity)
		if err != nil {
			return nil, err
		}
		bom = append(bom, line)
	}

	h, err := NewHanger(id, projectID, hangerType, s.System, loc, s.Revision, bom, Estimate{
		LaborHours:   s.EstimatedLaborHours,
		MaterialCost: s.EstimatedMaterialCost,
	})
	if err != nil {
		return nil, err
	}
	h.actualHours = s.ActualLaborHours
	h.actualCost = s.ActualMaterialCost
	h.status = status
	return h, nil
}
