package assignment

import (
	"fmt"
	"strings"

	"hangerflow/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Queued
	InProgress
	Paused
	QA
	Done
)

var statusNames = map[Status]string{
	Queued:     "Queued",
	InProgress: "InProgress",
	Paused:     "Paused",
	QA:         "QA",
	Done:       "Done",
}

func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("assignment status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsOpen reports whether the assignment still covers its hanger.
func (s Status) IsOpen() bool {
	return s != Done
}
