package audit_test

import (
	"testing"
	"time"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("should marshal snapshots", func(t *testing.T) {
		r, err := audit.NewRecord(at, "alice", "package.advanced", audit.EntityPackage, "PKG-001",
			map[string]string{"status": "Planned"}, map[string]string{"status": "Kitted"})

		require.NoError(t, err)
		assert.Zero(t, r.Seq())
		assert.Equal(t, "alice", r.Actor())
		assert.JSONEq(t, `{"status":"Planned"}`, string(r.Before()))
		assert.JSONEq(t, `{"status":"Kitted"}`, string(r.After()))
	})

	t.Run("nil snapshots become null and actor defaults to system", func(t *testing.T) {
		r, err := audit.NewRecord(at, " ", "catalog.imported", audit.EntityHanger, "H-1", nil, struct{}{})

		require.NoError(t, err)
		assert.Equal(t, audit.SystemActor, r.Actor())
		assert.Equal(t, "null", string(r.Before()))
		assert.JSONEq(t, `{}`, string(r.After()))
	})

	t.Run("should require action and entity", func(t *testing.T) {
		_, err := audit.NewRecord(at, "a", "", audit.EntityHanger, "H-1", nil, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = audit.NewRecord(at, "a", "x", audit.EntityHanger, "", nil, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unmarshalable snapshots", func(t *testing.T) {
		_, err := audit.NewRecord(at, "a", "x", audit.EntityHanger, "H-1", nil, make(chan int))
		assert.Error(t, err)
	})

	t.Run("with seq copies the record", func(t *testing.T) {
		r, err := audit.NewRecord(at, "a", "x", audit.EntityHanger, "H-1", nil, nil)
		require.NoError(t, err)

		sequenced := r.WithSeq(7)
		assert.Equal(t, int64(7), sequenced.Seq())
		assert.Zero(t, r.Seq())
		assert.True(t, r.ID().IsEqual(sequenced.ID()))
	})
}

func TestRestoreRecord(t *testing.T) {
	_, err := audit.RestoreRecord(0, kernel.NewUUID(), time.Now(), "a", "x", "hanger", "H-1", nil, nil)
	assert.True(t, errs.IsValidation(err))

	r, err := audit.RestoreRecord(3, kernel.NewUUID(), time.Now(), "a", "x", "hanger", "H-1", nil, []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "null", string(r.Before()))
	assert.JSONEq(t, `{"a":1}`, string(r.After()))
}
