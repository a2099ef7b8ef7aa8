package hanger

import (
	"errors"
	"fmt"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"
)

// ErrHangerIsNotConstructed is returned when a Hanger was not created through NewHanger or Restore.
var ErrHangerIsNotConstructed = errors.New("Hanger must be created via NewHanger constructor")

// Estimate holds the planned labor and material figures for a hanger.
type Estimate struct {
	LaborHours   kernel.Quantity
	MaterialCost kernel.Quantity
}

// Hanger is the aggregate root of a single fabricable support assembly.
//
// Invariants:
//   - id and projectID are valid codes
//   - revision is at least 1
//   - actual hours and cost never decrease
type Hanger struct {
	id            kernel.Code
	projectID     kernel.Code
	hangerType    Type
	system        string
	location      kernel.Location
	revision      int
	bom           []BOMLine
	estimate      Estimate
	actualHours   kernel.Quantity
	actualCost    kernel.Quantity
	status        Status
	isConstructed bool
}

// NewHanger creates a hanger in the Planned status with zero actuals.
//
// Example:
//
//	loc, _ := kernel.NewLocation("L2", "C-4", "East", "12'-0\"")
//	rod, _ := hanger.NewBOMLine("ROD-3/8", "3/8\" threaded rod", "ft", "10")
//	h, err := hanger.NewHanger("H-001", "PRJ-1", hanger.Trapeze, "Plumbing/Domestic Water",
//	    loc, 1, []hanger.BOMLine{rod}, hanger.Estimate{})
func NewHanger(
	id, projectID kernel.Code,
	hangerType Type,
	system string,
	location kernel.Location,
	revision int,
	bom []BOMLine,
	estimate Estimate,
) (*Hanger, error) {
	h := &Hanger{
		system:        strings.TrimSpace(system),
		estimate:      estimate,
		status:        Planned,
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setProjectID(projectID),
		h.setType(hangerType),
		h.setLocation(location),
		h.setRevision(revision),
		h.setBOM(bom),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// Validate ensures the Hanger was constructed properly.
func (h *Hanger) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHangerIsNotConstructed
	}
	return nil
}

func (h *Hanger) ID() kernel.Code              { return h.id }
func (h *Hanger) ProjectID() kernel.Code       { return h.projectID }
func (h *Hanger) Type() Type                   { return h.hangerType }
func (h *Hanger) System() string               { return h.system }
func (h *Hanger) Location() kernel.Location    { return h.location }
func (h *Hanger) Revision() int                { return h.revision }
func (h *Hanger) Estimate() Estimate           { return h.estimate }
func (h *Hanger) ActualHours() kernel.Quantity { return h.actualHours }
func (h *Hanger) ActualCost() kernel.Quantity  { return h.actualCost }
func (h *Hanger) Status() Status               { return h.status }

// BOM returns a copy of the bill of material in catalog order.
func (h *Hanger) BOM() []BOMLine {
	out := make([]BOMLine, len(h.bom))
	copy(out, h.bom)
	return out
}

// SetStatus overwrites the status. When validate is non-nil it is consulted
// first and its error is returned unchanged.
func (h *Hanger) SetStatus(to Status, validate TransitionValidator) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if validate != nil {
		if err := validate(h.status, to); err != nil {
			return err
		}
	}
	h.status = to
	return nil
}

// AccrueActuals adds labor hours and material cost to the running actuals.
func (h *Hanger) AccrueActuals(hours, cost kernel.Quantity) {
	h.actualHours = h.actualHours.Add(hours)
	h.actualCost = h.actualCost.Add(cost)
}

// Supersedes reports whether h is a newer revision of existing.
func (h *Hanger) Supersedes(existing *Hanger) bool {
	return existing != nil && h.id == existing.id && h.revision > existing.revision
}

// ReplaceRevision copies the catalog data of a newer revision onto h while
// keeping the accrued actuals and the shop status.
func (h *Hanger) ReplaceRevision(newer *Hanger) error {
	if !newer.Supersedes(h) {
		return errs.NewValueIsInvalidErrorWithCause("revision",
			fmt.Errorf("revision %d does not supersede %d", newer.revision, h.revision))
	}
	h.projectID = newer.projectID
	h.hangerType = newer.hangerType
	h.system = newer.system
	h.location = newer.location
	h.revision = newer.revision
	h.bom = newer.BOM()
	h.estimate = newer.estimate
	return nil
}

func (h *Hanger) setID(id kernel.Code) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("hanger id: %w", err)
	}
	h.id = id
	return nil
}

func (h *Hanger) setProjectID(id kernel.Code) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("project id: %w", err)
	}
	h.projectID = id
	return nil
}

func (h *Hanger) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	h.hangerType = t
	return nil
}

func (h *Hanger) setLocation(loc kernel.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	h.location = loc
	return nil
}

func (h *Hanger) setRevision(revision int) error {
	if revision < 1 {
		return errs.NewValueIsOutOfRangeError("revision", revision, 1, "unbounded")
	}
	h.revision = revision
	return nil
}

func (h *Hanger) setBOM(bom []BOMLine) error {
	for i, line := range bom {
		if err := line.SKU().Validate(); err != nil {
			return fmt.Errorf("bom line %d: %w", i, err)
		}
	}
	h.bom = make([]BOMLine, len(bom))
	copy(h.bom, bom)
	return nil
}
