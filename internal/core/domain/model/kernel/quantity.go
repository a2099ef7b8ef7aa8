package kernel

import (
	"fmt"
	"strings"

	"hangerflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quantity is a non-negative decimal amount. It carries material quantities,
// on-hand stock, labor hours and material cost. Arithmetic that could go below
// zero is expressed through SubFloor, so a Quantity never holds a negative value.
type Quantity struct {
	d decimal.Decimal
}

// ZeroQuantity is the additive identity.
var ZeroQuantity = Quantity{}

// NewQuantity wraps d, rejecting negative values.
func NewQuantity(d decimal.Decimal) (Quantity, error) {
	if d.IsNegative() {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", d.String(), "0", "unbounded")
	}
	return Quantity{d: d}, nil
}

// QuantityFromInt is a convenience for whole amounts. Negative input yields an error.
func QuantityFromInt(n int64) (Quantity, error) {
	return NewQuantity(decimal.NewFromInt(n))
}

// ParseQuantityStrict parses a decimal string and fails when it is malformed or negative.
func ParseQuantityStrict(s string) (Quantity, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%q is not a number: %w", s, err))
	}
	return NewQuantity(d)
}

// ParseQuantity reads a catalog-supplied quantity leniently: empty, non-numeric
// and negative text counts as zero. Partial BOM data must never block demand
// computation.
func ParseQuantity(s string) Quantity {
	q, err := ParseQuantityStrict(s)
	if err != nil {
		return ZeroQuantity
	}
	return q
}

// Decimal returns the underlying value.
func (q Quantity) Decimal() decimal.Decimal {
	return q.d
}

func (q Quantity) String() string {
	return q.d.String()
}

// Add returns q + other.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{d: q.d.Add(other.d)}
}

// SubFloor returns max(0, q - other).
func (q Quantity) SubFloor(other Quantity) Quantity {
	diff := q.d.Sub(other.d)
	if diff.IsNegative() {
		return ZeroQuantity
	}
	return Quantity{d: diff}
}

// Min returns the smaller of q and other.
func (q Quantity) Min(other Quantity) Quantity {
	if other.d.LessThan(q.d) {
		return other
	}
	return q
}

// Cmp compares q with other like decimal.Decimal.Cmp.
func (q Quantity) Cmp(other Quantity) int {
	return q.d.Cmp(other.d)
}

// IsZero reports whether q equals zero.
func (q Quantity) IsZero() bool {
	return q.d.IsZero()
}

// IsPositive reports whether q is greater than zero.
func (q Quantity) IsPositive() bool {
	return q.d.IsPositive()
}

// Equal compares by value, so 1.50 equals 1.5.
func (q Quantity) Equal(other Quantity) bool {
	return q.d.Equal(other.d)
}

// MarshalJSON writes the quantity as a JSON string to keep full precision.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.d.MarshalJSON()
}

// UnmarshalJSON accepts a JSON number or string and rejects negative values.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	parsed, err := NewQuantity(d)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
