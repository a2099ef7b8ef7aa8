package services

import (
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
)

// DemandCalculator expands bills of material into demand and joins demand
// against current stock. It is pure and safe for concurrent use.
type DemandCalculator struct{}

func NewDemandCalculator() DemandCalculator {
	return DemandCalculator{}
}

// ComputeDemand sums BOM quantities per SKU over hangers. SKUs appear in order
// of first mention; description and unit come from that first mention.
// Quantities that do not parse count as zero.
func (DemandCalculator) ComputeDemand(hangers []*hanger.Hanger) []inventory.DemandLine {
	index := make(map[kernel.Code]int)
	lines := make([]inventory.DemandLine, 0)

	for _, h := range hangers {
		if h == nil {
			continue
		}
		for _, bom := range h.BOM() {
			i, seen := index[bom.SKU()]
			if !seen {
				index[bom.SKU()] = len(lines)
				lines = append(lines, inventory.DemandLine{
					SKU:         bom.SKU(),
					Description: bom.Description(),
					UOM:         bom.UOM(),
					Required:    bom.Quantity(),
				})
				continue
			}
			lines[i].Required = lines[i].Required.Add(bom.Quantity())
		}
	}
	return lines
}

// CheckInventory joins demand with stock. A SKU without a stock record has
// zero on hand. shortfall = max(0, required - onHand).
func (DemandCalculator) CheckInventory(demand []inventory.DemandLine, stock map[kernel.Code]*inventory.Item) []inventory.Line {
	lines := make([]inventory.Line, 0, len(demand))
	for _, d := range demand {
		onHand := kernel.ZeroQuantity
		if item, ok := stock[d.SKU]; ok && item != nil {
			onHand = item.OnHand()
		}
		lines = append(lines, inventory.Line{
			DemandLine: d,
			OnHand:     onHand,
			Shortfall:  d.Required.SubFloor(onHand),
		})
	}
	return lines
}

// DemandSKUs returns the SKUs of demand in their listed order.
func DemandSKUs(demand []inventory.DemandLine) []kernel.Code {
	skus := make([]kernel.Code, len(demand))
	for i, d := range demand {
		skus[i] = d.SKU
	}
	return skus
}
