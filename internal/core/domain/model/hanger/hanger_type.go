package hanger

import (
	"fmt"
	"strings"

	"hangerflow/internal/pkg/errs"
)

// Type is the family of support assembly. It selects the fabrication step template.
type Type int

const (
	UnknownType Type = iota
	Trapeze
	Clevis
	Seismic
	Rack
)

var typeNames = map[Type]string{
	Trapeze: "Trapeze",
	Clevis:  "Clevis",
	Seismic: "Seismic",
	Rack:    "Rack",
}

// ParseType accepts the type name case-insensitively.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("hanger type", fmt.Errorf("%q is not a valid type", s))
}

func (t Type) Validate() error {
	if _, ok := typeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("hanger type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}
