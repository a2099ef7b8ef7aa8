package assignment

import (
	"fmt"
	"strings"

	"hangerflow/internal/pkg/errs"
)

// Priority orders assignments inside the expedite tier. Higher values sort first.
type Priority int

const (
	UnknownPriority Priority = iota
	Low
	Normal
	High
	Urgent
)

var priorityNames = map[Priority]string{
	Low:    "Low",
	Normal: "Normal",
	High:   "High",
	Urgent: "Urgent",
}

// ParsePriority accepts the priority name case-insensitively. An empty string is Normal.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Normal, nil
	}
	for p, name := range priorityNames {
		if strings.EqualFold(name, s) {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

func (p Priority) Validate() error {
	if _, ok := priorityNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "Unknown"
}
