package kernel_test

import (
	"encoding/json"
	"strings"
	"testing"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/kernel/kerneltest"
	"hangerflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("should create unique valid UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
		assert.False(t, id1.IsZero())
	})

	t.Run("should parse canonical and braced forms", func(t *testing.T) {
		validUUID := "550e8400-e29b-41d4-a716-446655440000"

		id, err := kernel.UUIDFromString(validUUID)
		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())

		braced, err := kernel.UUIDFromString("{" + validUUID + "}")
		require.NoError(t, err)
		assert.True(t, id.IsEqual(braced))
	})

	t.Run("should reject garbage and the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		assert.True(t, errs.IsValidation(err))

		_, err = kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.UUID
		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
		assert.True(t, id.IsZero())
	})

	t.Run("should round trip through JSON", func(t *testing.T) {
		id := kernel.NewUUID()

		data, err := json.Marshal(struct {
			ID kernel.UUID `json:"id"`
		}{ID: id})
		require.NoError(t, err)

		var out struct {
			ID kernel.UUID `json:"id"`
		}
		require.NoError(t, json.Unmarshal(data, &out))
		assert.True(t, id.IsEqual(out.ID))
	})
}

func TestNewCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    kernel.Code
		wantErr bool
	}{
		{name: "plain", input: "PKG-001", want: "PKG-001"},
		{name: "sku with slash", input: "ROD-3/8", want: "ROD-3/8"},
		{name: "trimmed", input: "  H-12 ", want: "H-12"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "control character", input: "A\x00B", wantErr: true},
		{name: "too long", input: strings.Repeat("x", kernel.CodeMaxLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kernel.NewCode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCodes(t *testing.T) {
	codes, err := kernel.NewCodes([]string{"H-1", " H-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"H-1", "H-2"}, kernel.CodeStrings(codes))

	_, err = kernel.NewCodes([]string{"H-1", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
}

func TestQuantity(t *testing.T) {
	t.Run("should reject negative values", func(t *testing.T) {
		_, err := kernel.NewQuantity(decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("lenient parse treats bad input as zero", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "-3", "1..2"} {
			assert.True(t, kernel.ParseQuantity(raw).IsZero(), raw)
		}
		assert.True(t, kernel.ParseQuantity(" 2.5 ").Equal(kerneltest.Quantity("2.5")))
	})

	t.Run("strict parse reports errors", func(t *testing.T) {
		_, err := kernel.ParseQuantityStrict("ten")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("sub floor never goes negative", func(t *testing.T) {
		six := kerneltest.Quantity("6")
		ten := kerneltest.Quantity("10")

		assert.True(t, ten.SubFloor(six).Equal(kerneltest.Quantity("4")))
		assert.True(t, six.SubFloor(ten).IsZero())
	})

	t.Run("min and add", func(t *testing.T) {
		a := kerneltest.Quantity("1.25")
		b := kerneltest.Quantity("3")

		assert.True(t, a.Min(b).Equal(a))
		assert.True(t, b.Min(a).Equal(a))
		assert.Equal(t, "4.25", a.Add(b).String())
		assert.Equal(t, -1, a.Cmp(b))
	})

	t.Run("json rejects negative values", func(t *testing.T) {
		var q kernel.Quantity
		require.NoError(t, json.Unmarshal([]byte(`"7.5"`), &q))
		assert.Equal(t, "7.5", q.String())

		assert.Error(t, json.Unmarshal([]byte(`-2`), &q))
	})
}

func TestNewLocation(t *testing.T) {
	loc, err := kernel.NewLocation(" L2 ", "C-4", "East", "12'-6\"")
	require.NoError(t, err)
	assert.Equal(t, "L2", loc.Level())
	assert.True(t, loc.InArea("l2", "east"))
	assert.True(t, loc.InArea("L2", ""))
	assert.False(t, loc.InArea("L3", "East"))

	_, err = kernel.NewLocation("", "C-4", "East", "")
	assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}
