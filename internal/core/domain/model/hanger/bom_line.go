package hanger

import (
	"strings"

	"hangerflow/internal/core/domain/model/kernel"
)

// BOMLine is one material line of a hanger's bill of material. The quantity
// keeps the text supplied by the catalog.
type BOMLine struct {
	sku         kernel.Code
	description string
	uom         string
	rawQuantity string
}

// NewBOMLine requires a valid SKU; the other fields are taken as given.
func NewBOMLine(sku kernel.Code, description, uom, rawQuantity string) (BOMLine, error) {
	if err := sku.Validate(); err != nil {
		return BOMLine{}, err
	}
	return BOMLine{
		sku:         sku,
		description: strings.TrimSpace(description),
		uom:         strings.TrimSpace(uom),
		rawQuantity: rawQuantity,
	}, nil
}

func (l BOMLine) SKU() kernel.Code    { return l.sku }
func (l BOMLine) Description() string { return l.description }
func (l BOMLine) UOM() string         { return l.uom }
func (l BOMLine) RawQuantity() string { return l.rawQuantity }

// Quantity parses the raw quantity; missing or non-numeric text is zero.
func (l BOMLine) Quantity() kernel.Quantity {
	return kernel.ParseQuantity(l.rawQuantity)
}
