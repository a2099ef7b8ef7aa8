package workpackage

import (
	"fmt"
	"strings"

	"hangerflow/internal/pkg/errs"
)

// Status is the package lifecycle.
//
//	Submitted -> Planned -> ApprovedForFab -> Kitted -> InFabrication -> QAInspection
//	          -> Packaging -> Staged -> Shipping -> Shipped -> Delivered
//
// Rejected is terminal and only reachable from Submitted or Planned.
type Status int

const (
	Unknown Status = iota
	Submitted
	Planned
	ApprovedForFab
	Kitted
	InFabrication
	QAInspection
	Packaging
	Staged
	Shipping
	Shipped
	Delivered
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Submitted:      "Submitted",
		Planned:        "Planned",
		ApprovedForFab: "ApprovedForFab",
		Kitted:         "Kitted",
		InFabrication:  "InFabrication",
		QAInspection:   "QAInspection",
		Packaging:      "Packaging",
		Staged:         "Staged",
		Shipping:       "Shipping",
		Shipped:        "Shipped",
		Delivered:      "Delivered",
		Rejected:       "Rejected",
	}
}

// Statuses lists every valid status, the forward flow first and Rejected last.
func Statuses() []Status {
	return []Status{
		Submitted, Planned, ApprovedForFab, Kitted, InFabrication, QAInspection,
		Packaging, Staged, Shipping, Shipped, Delivered, Rejected,
	}
}

// ParseStatus accepts the status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if strings.EqualFold(st.String(), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("package status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("package status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsOpen reports whether a package in this status still claims its hangers.
func (s Status) IsOpen() bool {
	return s != Rejected && s != Delivered
}

// CanReject reports whether RejectPackage is allowed from this status.
func (s Status) CanReject() bool {
	return s == Submitted || s == Planned
}

// CanRoute reports whether assignments may be generated in this status.
func (s Status) CanRoute() bool {
	switch s {
	case ApprovedForFab, Kitted, InFabrication, QAInspection:
		return true
	default:
		return false
	}
}
