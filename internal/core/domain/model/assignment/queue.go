package assignment

import (
	"slices"
	"strings"
)

// SortQueue orders assignments the way shop terminals display them: expedited
// first, then higher priority, then explicit order ascending (set before
// unset), then earliest createdAt, then id.
func SortQueue(queue []*Assignment) {
	slices.SortStableFunc(queue, compareQueue)
}

func compareQueue(a, b *Assignment) int {
	if a.expedite != b.expedite {
		if a.expedite {
			return -1
		}
		return 1
	}
	if a.priority != b.priority {
		if a.priority > b.priority {
			return -1
		}
		return 1
	}
	switch {
	case a.order != nil && b.order != nil:
		if *a.order != *b.order {
			return *a.order - *b.order
		}
	case a.order != nil:
		return -1
	case b.order != nil:
		return 1
	}
	if c := a.createdAt.Compare(b.createdAt); c != 0 {
		return c
	}
	return strings.Compare(a.id.String(), b.id.String())
}
