package exception

import (
	"slices"
	"strings"
)

// SortBySeverity orders Critical > High > Med > Low, then most recent first.
func SortBySeverity(list []*Exception) {
	slices.SortStableFunc(list, func(a, b *Exception) int {
		if a.severity != b.severity {
			return int(b.severity) - int(a.severity)
		}
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})
}

// Filter selects exceptions in ListExceptions. Zero fields match everything.
type Filter struct {
	State    State
	Severity Severity
	Type     Type
	Ref      string
}

func (f Filter) Matches(e *Exception) bool {
	if f.State != UnknownState && e.state != f.State {
		return false
	}
	if f.Severity != UnknownSeverity && e.severity != f.Severity {
		return false
	}
	if f.Type != UnknownType && e.exceptionType != f.Type {
		return false
	}
	if f.Ref != "" && e.ref.ID != f.Ref {
		return false
	}
	return true
}
