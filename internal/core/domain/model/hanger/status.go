package hanger

import (
	"fmt"
	"strings"

	"hangerflow/internal/pkg/errs"
)

// Status is the shop-floor lifecycle of a hanger.
//
//	Planned -> ApprovedForFab -> Kitted -> InFabrication -> Assembled
//	        -> ShopQAPassed -> Staged -> Loaded -> Delivered
//
// InProduction is a visualization sub-state of InFabrication; Phase maps it back.
type Status int

const (
	Unknown Status = iota
	Planned
	ApprovedForFab
	Kitted
	InFabrication
	InProduction
	Assembled
	ShopQAPassed
	Staged
	Loaded
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Planned:        "Planned",
		ApprovedForFab: "ApprovedForFab",
		Kitted:         "Kitted",
		InFabrication:  "InFabrication",
		InProduction:   "InProduction",
		Assembled:      "Assembled",
		ShopQAPassed:   "ShopQAPassed",
		Staged:         "Staged",
		Loaded:         "Loaded",
		Delivered:      "Delivered",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		Planned, ApprovedForFab, Kitted, InFabrication, InProduction,
		Assembled, ShopQAPassed, Staged, Loaded, Delivered,
	}
}

// ParseStatus accepts the status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if strings.EqualFold(st.String(), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("hanger status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("hanger status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Phase folds shop sub-states into the lifecycle stage they belong to.
func (s Status) Phase() Status {
	if s == InProduction {
		return InFabrication
	}
	return s
}

// TransitionValidator decides whether a status change is legal. A nil
// validator allows every change.
type TransitionValidator func(from, to Status) error

// ForwardWithRework allows any forward move along the lifecycle (sub-states
// count as their phase) and backward moves into InFabrication from the
// assembly and QA stages, which is how QA rework sends a hanger back.
func ForwardWithRework(from, to Status) error {
	if to.Phase() >= from.Phase() {
		return nil
	}
	if to.Phase() == InFabrication && (from == Assembled || from == ShopQAPassed) {
		return nil
	}
	return errs.NewInvalidTransitionError("hanger", from.String(), to.String())
}
