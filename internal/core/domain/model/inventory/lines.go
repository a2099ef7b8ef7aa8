package inventory

import "hangerflow/internal/core/domain/model/kernel"

// DemandLine is the total quantity of one SKU a package needs.
type DemandLine struct {
	SKU         kernel.Code     `json:"sku"`
	Description string          `json:"description"`
	UOM         string          `json:"uom"`
	Required    kernel.Quantity `json:"required"`
}

// Line is a demand line joined with current stock.
type Line struct {
	DemandLine
	OnHand    kernel.Quantity `json:"onHand"`
	Shortfall kernel.Quantity `json:"shortfall"`
}

// Shortages keeps only the lines with a positive shortfall.
func Shortages(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Shortfall.IsPositive() {
			out = append(out, l)
		}
	}
	return out
}

// HasShortfall reports whether any line is short.
func HasShortfall(lines []Line) bool {
	for _, l := range lines {
		if l.Shortfall.IsPositive() {
			return true
		}
	}
	return false
}
