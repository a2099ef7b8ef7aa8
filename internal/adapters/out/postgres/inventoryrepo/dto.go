// Package inventoryrepo persists stock records and pick lists.
package inventoryrepo

import (
	"errors"
	"time"

	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ItemDTO carries a database CHECK on on_hand, so stock cannot go negative
// even if domain arithmetic were bypassed.
type ItemDTO struct {
	SKU          string          `gorm:"type:varchar(64);primaryKey"`
	Description  string          `gorm:"type:varchar(255)"`
	UOM          string          `gorm:"type:varchar(16)"`
	OnHand       decimal.Decimal `gorm:"type:numeric(14,4);not null;check:chk_inventory_on_hand,on_hand >= 0"`
	MinThreshold decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	ReorderTo    decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

func (ItemDTO) TableName() string {
	return "inventory_items"
}

type PickListDTO struct {
	ID        uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	PackageID string                                  `gorm:"type:varchar(64);not null;index"`
	CreatedAt time.Time                               `gorm:"not null"`
	Lines     datatypes.JSONSlice[inventory.PickLine] `gorm:"type:jsonb;not null"`
}

func (PickListDTO) TableName() string {
	return "pick_lists"
}

func itemFromDomain(item *inventory.Item) ItemDTO {
	s := item.Snapshot()
	return ItemDTO{
		SKU:          s.SKU,
		Description:  s.Description,
		UOM:          s.UOM,
		OnHand:       s.OnHand.Decimal(),
		MinThreshold: s.MinThreshold.Decimal(),
		ReorderTo:    s.ReorderTo.Decimal(),
	}
}

func itemToDomain(dto ItemDTO) (*inventory.Item, error) {
	onHand, errOnHand := kernel.NewQuantity(dto.OnHand)
	minThreshold, errMin := kernel.NewQuantity(dto.MinThreshold)
	reorderTo, errReorder := kernel.NewQuantity(dto.ReorderTo)
	if err := errors.Join(errOnHand, errMin, errReorder); err != nil {
		return nil, err
	}

	return inventory.RestoreItem(inventory.ItemSnapshot{
		SKU:          dto.SKU,
		Description:  dto.Description,
		UOM:          dto.UOM,
		OnHand:       onHand,
		MinThreshold: minThreshold,
		ReorderTo:    reorderTo,
	})
}

func pickListFromDomain(pl *inventory.PickList) PickListDTO {
	s := pl.Snapshot()
	return PickListDTO{
		ID:        pl.ID().Value(),
		PackageID: s.PackageID,
		CreatedAt: s.CreatedAt,
		Lines:     datatypes.NewJSONSlice(s.Lines),
	}
}

func pickListToDomain(dto PickListDTO) (*inventory.PickList, error) {
	return inventory.RestorePickList(inventory.PickListSnapshot{
		ID:        dto.ID.String(),
		PackageID: dto.PackageID,
		CreatedAt: dto.CreatedAt.UTC(),
		Lines:     []inventory.PickLine(dto.Lines),
	})
}
