package exception_test

import (
	"testing"
	"time"

	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)

func newException(t *testing.T, severity exception.Severity, createdAt time.Time) *exception.Exception {
	t.Helper()
	e, err := exception.New(kernel.NewUUID(), exception.QAFail, severity,
		exception.Ref{Kind: exception.RefPackage, ID: "PKG-001"}, "weld porosity", createdAt)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	e := newException(t, exception.High, t0)
	assert.Equal(t, exception.Open, e.State())

	_, err := exception.New(kernel.NewUUID(), exception.QAFail, exception.High,
		exception.Ref{Kind: "truck", ID: "T-1"}, "", t0)
	assert.True(t, errs.IsValidation(err))

	_, err = exception.New(kernel.NewUUID(), exception.UnknownType, exception.High,
		exception.Ref{Kind: exception.RefHanger, ID: "H-1"}, "", t0)
	assert.True(t, errs.IsValidation(err))

	_, err = exception.New(kernel.NewUUID(), exception.Other, exception.Low,
		exception.Ref{Kind: exception.RefHanger, ID: " "}, "", t0)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestException_Workflow(t *testing.T) {
	t.Run("should assign, resolve and close", func(t *testing.T) {
		e := newException(t, exception.High, t0)

		require.NoError(t, e.Assign("qa.lead"))
		assert.Equal(t, exception.InProgress, e.State())
		require.NoError(t, e.Assign("qa.second"))
		assert.Equal(t, "qa.second", e.Assignee())

		require.NoError(t, e.Resolve("re-welded and re-inspected", t0.Add(time.Hour)))
		assert.Equal(t, exception.Resolved, e.State())
		require.NotNil(t, e.ResolvedAt())

		require.NoError(t, e.Close(t0.Add(2*time.Hour)))
		assert.Equal(t, exception.Closed, e.State())
	})

	t.Run("resolve requires notes", func(t *testing.T) {
		e := newException(t, exception.High, t0)
		assert.True(t, errs.IsValidation(e.Resolve("  ", t0)))
		assert.Equal(t, exception.Open, e.State())
	})

	t.Run("resolving twice is an invalid transition", func(t *testing.T) {
		e := newException(t, exception.High, t0)
		require.NoError(t, e.Resolve("done", t0))

		assert.ErrorIs(t, e.Resolve("again", t0), errs.ErrInvalidTransition)
		assert.ErrorIs(t, e.Assign("someone"), errs.ErrInvalidTransition)
	})

	t.Run("close requires resolved", func(t *testing.T) {
		e := newException(t, exception.High, t0)
		assert.ErrorIs(t, e.Close(t0), errs.ErrInvalidTransition)
	})

	t.Run("assign requires an assignee", func(t *testing.T) {
		e := newException(t, exception.High, t0)
		assert.ErrorIs(t, e.Assign(""), errs.ErrValueIsRequired)
	})
}

func TestSortBySeverity(t *testing.T) {
	lowNew := newException(t, exception.Low, t0.Add(3*time.Hour))
	highOld := newException(t, exception.High, t0)
	highNew := newException(t, exception.High, t0.Add(time.Hour))
	critical := newException(t, exception.Critical, t0)
	med := newException(t, exception.Med, t0.Add(5*time.Hour))

	list := []*exception.Exception{lowNew, highOld, med, critical, highNew}
	exception.SortBySeverity(list)

	assert.Equal(t, []*exception.Exception{critical, highNew, highOld, med, lowNew}, list)
}

func TestFilter(t *testing.T) {
	e := newException(t, exception.High, t0)

	assert.True(t, exception.Filter{}.Matches(e))
	assert.True(t, exception.Filter{State: exception.Open, Ref: "PKG-001"}.Matches(e))
	assert.False(t, exception.Filter{Severity: exception.Low}.Matches(e))
	assert.False(t, exception.Filter{Type: exception.InventoryShort}.Matches(e))
	assert.False(t, exception.Filter{Ref: "PKG-002"}.Matches(e))
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := newException(t, exception.Critical, t0)
	require.NoError(t, e.Assign("lead"))
	require.NoError(t, e.Resolve("fixed", t0))

	restored, err := exception.Restore(e.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, e.Snapshot(), restored.Snapshot())
}
