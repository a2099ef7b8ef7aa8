package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"hangerflow/internal/pkg/errs"
)

// CodeMaxLength is the longest identifier accepted from the catalog.
const CodeMaxLength = 64

// ErrCodeIsNotConstructed is returned when validating an empty Code.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError("code must be created via NewCode")

// Code identifies entities the catalog supplies: hangers, packages, teams,
// projects and inventory SKUs (for example "PKG-001" or "ROD-3/8").
//
// A Code is a trimmed, non-empty string with no control characters.
type Code string

// NewCode trims s and validates it as an identifier.
func NewCode(s string) (Code, error) {
	c := Code(strings.TrimSpace(s))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks the Code invariants.
func (c Code) Validate() error {
	s := string(c)
	if s == "" {
		return ErrCodeIsNotConstructed
	}
	if s != strings.TrimSpace(s) {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q has surrounding whitespace", s))
	}
	if n := utf8.RuneCountInString(s); n > CodeMaxLength {
		return errs.NewValueIsOutOfRangeError("code length", n, 1, CodeMaxLength)
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q contains control characters", s))
		}
	}
	return nil
}

func (c Code) String() string {
	return string(c)
}

// IsEqual reports whether both codes are identical.
func (c Code) IsEqual(other Code) bool {
	return c == other
}

// NewCodes converts and validates a list of raw identifiers, preserving order.
func NewCodes(raw []string) ([]Code, error) {
	codes := make([]Code, 0, len(raw))
	for i, s := range raw {
		c, err := NewCode(s)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// CodeStrings converts codes back to plain strings.
func CodeStrings(codes []Code) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return out
}
