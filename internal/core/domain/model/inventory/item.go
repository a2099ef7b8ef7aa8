package inventory

import (
	"errors"
	"fmt"
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the stock record of one SKU.
type Item struct {
	sku           kernel.Code
	description   string
	uom           string
	onHand        kernel.Quantity
	minThreshold  kernel.Quantity
	reorderTo     kernel.Quantity
	isConstructed bool
}

// NewItem creates a stock record. Quantities are non-negative by type.
func NewItem(sku kernel.Code, description, uom string, onHand, minThreshold, reorderTo kernel.Quantity) (*Item, error) {
	if err := sku.Validate(); err != nil {
		return nil, fmt.Errorf("sku: %w", err)
	}
	return &Item{
		sku:           sku,
		description:   strings.TrimSpace(description),
		uom:           strings.TrimSpace(uom),
		onHand:        onHand,
		minThreshold:  minThreshold,
		reorderTo:     reorderTo,
		isConstructed: true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) SKU() kernel.Code              { return i.sku }
func (i *Item) Description() string           { return i.description }
func (i *Item) UOM() string                   { return i.uom }
func (i *Item) OnHand() kernel.Quantity       { return i.onHand }
func (i *Item) MinThreshold() kernel.Quantity { return i.minThreshold }
func (i *Item) ReorderTo() kernel.Quantity    { return i.reorderTo }

// Reserve takes min(onHand, required) out of stock and returns the reserved
// and backordered amounts.
func (i *Item) Reserve(required kernel.Quantity) (reserved, backordered kernel.Quantity) {
	reserved = i.onHand.Min(required)
	i.onHand = i.onHand.SubFloor(reserved)
	return reserved, required.SubFloor(reserved)
}

// BelowThreshold reports whether stock has fallen under the minimum.
func (i *Item) BelowThreshold() bool {
	return i.onHand.Cmp(i.minThreshold) < 0
}

// ReorderQuantity is the amount needed to bring stock back to the reorder-to target.
func (i *Item) ReorderQuantity() kernel.Quantity {
	return i.reorderTo.SubFloor(i.onHand)
}

// ItemSnapshot is the serializable state of an Item.
type ItemSnapshot struct {
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	UOM          string          `json:"uom"`
	OnHand       kernel.Quantity `json:"onHand"`
	MinThreshold kernel.Quantity `json:"minThreshold"`
	ReorderTo    kernel.Quantity `json:"reorderTo"`
}

func (i *Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		SKU:          i.sku.String(),
		Description:  i.description,
		UOM:          i.uom,
		OnHand:       i.onHand,
		MinThreshold: i.minThreshold,
		ReorderTo:    i.reorderTo,
	}
}

// RestoreItem rebuilds an Item from a snapshot.
func RestoreItem(s ItemSnapshot) (*Item, error) {
	sku, err := kernel.NewCode(s.SKU)
	if err != nil {
		return nil, err
	}
	return NewItem(sku, s.Description, s.UOM, s.OnHand, s.MinThreshold, s.ReorderTo)
}
