package exception

import (
	"fmt"
	"strings"

	"hangerflow/internal/pkg/errs"
)

type Type int

const (
	UnknownType Type = iota
	QAFail
	InventoryShort
	ShippingMisscan
	ModelChange
	EquipmentDown
	Other
)

var typeNames = map[Type]string{
	QAFail:          "QAFail",
	InventoryShort:  "InventoryShort",
	ShippingMisscan: "ShippingMisscan",
	ModelChange:     "ModelChange",
	EquipmentDown:   "EquipmentDown",
	Other:           "Other",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Unknown"
}

func ParseType(s string) (Type, error) {
	return parseEnum(typeNames, "exception type", s, UnknownType)
}

// Severity ranks exceptions. Higher values are more severe.
type Severity int

const (
	UnknownSeverity Severity = iota
	Low
	Med
	High
	Critical
)

var severityNames = map[Severity]string{
	Low:      "Low",
	Med:      "Med",
	High:     "High",
	Critical: "Critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "Unknown"
}

func ParseSeverity(s string) (Severity, error) {
	return parseEnum(severityNames, "severity", s, UnknownSeverity)
}

type State int

const (
	UnknownState State = iota
	Open
	InProgress
	Resolved
	Closed
)

var stateNames = map[State]string{
	Open:       "Open",
	InProgress: "InProgress",
	Resolved:   "Resolved",
	Closed:     "Closed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

func ParseState(s string) (State, error) {
	return parseEnum(stateNames, "exception state", s, UnknownState)
}

// IsActive reports whether the exception still needs attention.
func (s State) IsActive() bool {
	return s == Open || s == InProgress
}

// RefKind names the kind of entity an exception references.
type RefKind string

const (
	RefPackage    RefKind = "package"
	RefHanger     RefKind = "hanger"
	RefAssignment RefKind = "assignment"
)

func ParseRefKind(s string) (RefKind, error) {
	switch k := RefKind(strings.ToLower(strings.TrimSpace(s))); k {
	case RefPackage, RefHanger, RefAssignment:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("ref kind", fmt.Errorf("%q is not a valid ref kind", s))
	}
}

func parseEnum[T comparable](names map[T]string, param, s string, unknown T) (T, error) {
	s = strings.TrimSpace(s)
	for v, name := range names {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}
	return unknown, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not valid", s))
}
