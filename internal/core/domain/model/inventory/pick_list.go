package inventory

import (
	"errors"
	"fmt"
	"time"

	"hangerflow/internal/core/domain/model/kernel"
)

// ErrPickListIsNotConstructed is returned when a PickList was not created through NewPickList.
var ErrPickListIsNotConstructed = errors.New("PickList must be created via NewPickList constructor")

// PickLine records what one reservation took for a SKU.
type PickLine struct {
	SKU         kernel.Code     `json:"sku"`
	Required    kernel.Quantity `json:"required"`
	Reserved    kernel.Quantity `json:"reserved"`
	Backordered kernel.Quantity `json:"backordered"`
}

// PickList is the kitting record produced by ReserveInventory.
type PickList struct {
	id            kernel.UUID
	packageID     kernel.Code
	createdAt     time.Time
	lines         []PickLine
	isConstructed bool
}

func NewPickList(id kernel.UUID, packageID kernel.Code, createdAt time.Time, lines []PickLine) (*PickList, error) {
	if err := errors.Join(id.Validate(), packageID.Validate()); err != nil {
		return nil, fmt.Errorf("pick list: %w", err)
	}
	pl := &PickList{
		id:            id,
		packageID:     packageID,
		createdAt:     createdAt.UTC(),
		lines:         make([]PickLine, len(lines)),
		isConstructed: true,
	}
	copy(pl.lines, lines)
	return pl, nil
}

func (pl *PickList) Validate() error {
	if pl == nil || !pl.isConstructed {
		return ErrPickListIsNotConstructed
	}
	return nil
}

func (pl *PickList) ID() kernel.UUID        { return pl.id }
func (pl *PickList) PackageID() kernel.Code { return pl.packageID }
func (pl *PickList) CreatedAt() time.Time   { return pl.createdAt }

func (pl *PickList) Lines() []PickLine {
	out := make([]PickLine, len(pl.lines))
	copy(out, pl.lines)
	return out
}

// PickListSnapshot is the serializable state of a PickList.
type PickListSnapshot struct {
	ID        string     `json:"id"`
	PackageID string     `json:"packageId"`
	CreatedAt time.Time  `json:"createdAt"`
	Lines     []PickLine `json:"lines"`
}

func (pl *PickList) Snapshot() PickListSnapshot {
	return PickListSnapshot{
		ID:        pl.id.String(),
		PackageID: pl.packageID.String(),
		CreatedAt: pl.createdAt,
		Lines:     pl.Lines(),
	}
}

func RestorePickList(s PickListSnapshot) (*PickList, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.NewCode(s.PackageID)
	if err != nil {
		return nil, err
	}
	return NewPickList(id, packageID, s.CreatedAt, s.Lines)
}
