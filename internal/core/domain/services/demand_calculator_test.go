package services_test

import (
	"testing"

	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/kernel/kerneltest"
	"hangerflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bom struct{ sku, desc, uom, qty string }

func newHanger(t *testing.T, id string, typ hanger.Type, lines ...bom) *hanger.Hanger {
	t.Helper()
	loc, err := kernel.NewLocation("L2", "C-4", "East", "")
	require.NoError(t, err)
	bomLines := make([]hanger.BOMLine, 0, len(lines))
	for _, l := range lines {
		line, err := hanger.NewBOMLine(kernel.Code(l.sku), l.desc, l.uom, l.qty)
		require.NoError(t, err)
		bomLines = append(bomLines, line)
	}
	h, err := hanger.NewHanger(kernel.Code(id), "PRJ-1", typ, "Plumbing", loc, 1, bomLines, hanger.Estimate{})
	require.NoError(t, err)
	return h
}

func newItem(t *testing.T, sku, onHand string) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(kernel.Code(sku), sku, "ea", kerneltest.Quantity(onHand),
		kernel.ZeroQuantity, kernel.ZeroQuantity)
	require.NoError(t, err)
	return item
}

func TestDemandCalculator_ComputeDemand(t *testing.T) {
	calc := services.NewDemandCalculator()

	t.Run("should sum per sku in order of first appearance", func(t *testing.T) {
		h1 := newHanger(t, "H-1", hanger.Trapeze,
			bom{"ROD-3/8", "3/8 rod", "ft", "4"},
			bom{"STRUT-12", "strut", "ft", "2"})
		h2 := newHanger(t, "H-2", hanger.Trapeze,
			bom{"NUT-3/8", "nut", "ea", "8"},
			bom{"ROD-3/8", "other text", "in", "6"})

		demand := calc.ComputeDemand([]*hanger.Hanger{h1, h2})

		require.Len(t, demand, 3)
		assert.Equal(t, []kernel.Code{"ROD-3/8", "STRUT-12", "NUT-3/8"}, services.DemandSKUs(demand))
		assert.Equal(t, "10", demand[0].Required.String())
		assert.Equal(t, "3/8 rod", demand[0].Description)
		assert.Equal(t, "ft", demand[0].UOM)
	})

	t.Run("should treat bad quantities as zero", func(t *testing.T) {
		h := newHanger(t, "H-1", hanger.Clevis,
			bom{"ROD-3/8", "rod", "ft", "TBD"},
			bom{"ROD-3/8", "rod", "ft", ""},
			bom{"ROD-3/8", "rod", "ft", "1.5"})

		demand := calc.ComputeDemand([]*hanger.Hanger{h})

		require.Len(t, demand, 1)
		assert.Equal(t, "1.5", demand[0].Required.String())
	})

	t.Run("empty input yields empty demand", func(t *testing.T) {
		assert.Empty(t, calc.ComputeDemand(nil))
	})
}

func TestDemandCalculator_CheckInventory(t *testing.T) {
	calc := services.NewDemandCalculator()
	h := newHanger(t, "H-1", hanger.Trapeze,
		bom{"ROD-3/8", "rod", "ft", "10"},
		bom{"STRUT-12", "strut", "ft", "2"},
		bom{"CLAMP", "clamp", "ea", "3"})
	demand := calc.ComputeDemand([]*hanger.Hanger{h})

	lines := calc.CheckInventory(demand, map[kernel.Code]*inventory.Item{
		"ROD-3/8":  newItem(t, "ROD-3/8", "6"),
		"STRUT-12": newItem(t, "STRUT-12", "20"),
	})

	require.Len(t, lines, 3)
	assert.Equal(t, "4", lines[0].Shortfall.String())
	assert.Equal(t, "6", lines[0].OnHand.String())
	assert.True(t, lines[1].Shortfall.IsZero())
	assert.True(t, lines[2].OnHand.IsZero())
	assert.Equal(t, "3", lines[2].Shortfall.String())

	short := inventory.Shortages(lines)
	assert.Equal(t, []kernel.Code{"ROD-3/8", "CLAMP"}, []kernel.Code{short[0].SKU, short[1].SKU})
}
