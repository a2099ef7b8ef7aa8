package assignment_test

import (
	"testing"
	"time"

	"hangerflow/internal/core/domain/model/assignment"
	"hangerflow/internal/core/domain/model/hanger"
	"hangerflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queued(t *testing.T, name string, createdAt time.Time, priority assignment.Priority, expedite bool, order *int) *assignment.Assignment {
	t.Helper()
	steps, err := assignment.StepsFor(hanger.Clevis)
	require.NoError(t, err)
	a, err := assignment.New(kernel.NewUUID(), "PKG-001", kernel.Code(name), nil, priority, expedite, steps, createdAt)
	require.NoError(t, err)
	if order != nil {
		require.NoError(t, a.Reprioritize(priority, expedite, order))
	}
	return a
}

func TestSortQueue(t *testing.T) {
	one, two := 1, 2

	normalLate := queued(t, "normal-late", t0.Add(time.Hour), assignment.Normal, false, nil)
	normalEarly := queued(t, "normal-early", t0, assignment.Normal, false, nil)
	normalOrdered2 := queued(t, "normal-order-2", t0.Add(2*time.Hour), assignment.Normal, false, &two)
	normalOrdered1 := queued(t, "normal-order-1", t0.Add(3*time.Hour), assignment.Normal, false, &one)
	urgent := queued(t, "urgent", t0.Add(4*time.Hour), assignment.Urgent, false, nil)
	expeditedLow := queued(t, "expedited-low", t0.Add(5*time.Hour), assignment.Low, true, nil)

	queue := []*assignment.Assignment{normalLate, normalEarly, urgent, normalOrdered2, expeditedLow, normalOrdered1}
	assignment.SortQueue(queue)

	got := make([]string, len(queue))
	for i, a := range queue {
		got[i] = a.HangerID().String()
	}
	assert.Equal(t, []string{
		"expedited-low",
		"urgent",
		"normal-order-1",
		"normal-order-2",
		"normal-early",
		"normal-late",
	}, got)
}
