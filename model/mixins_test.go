package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftDeleteSetsFlagAndTimestamp(t *testing.T) {
	var fields SoftDeleteFields
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

	fields.SoftDelete(42, now)

	assert.True(t, fields.IsDeleted)
	require.NotNil(t, fields.DeletedAt)
	assert.Equal(t, now, *fields.DeletedAt)
	require.NotNil(t, fields.DeletedBy)
	assert.Equal(t, int64(42), *fields.DeletedBy)
	assert.False(t, fields.Alive())
}

func TestRestoreReversesSoftDelete(t *testing.T) {
	var fields SoftDeleteFields
	deletedAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	restoredAt := deletedAt.Add(time.Hour)

	fields.SoftDelete(42, deletedAt)
	fields.Restore(7, restoredAt)

	assert.False(t, fields.IsDeleted)
	assert.True(t, fields.Alive())
	require.NotNil(t, fields.RestoredAt)
	assert.Equal(t, restoredAt, *fields.RestoredAt)
	require.NotNil(t, fields.RestoredBy)
	assert.Equal(t, int64(7), *fields.RestoredBy)
	// The deletion record is kept for audit.
	assert.NotNil(t, fields.DeletedAt)
	assert.NotNil(t, fields.DeletedBy)
}

func TestSoftDeleteWithoutActor(t *testing.T) {
	var fields SoftDeleteFields
	fields.SoftDelete(0, time.Now())

	assert.True(t, fields.IsDeleted)
	assert.Nil(t, fields.DeletedBy)
}

func TestTimestampsTouch(t *testing.T) {
	var ts Timestamps
	first := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	ts.Touch(first)
	assert.Equal(t, first, ts.CreatedAt)
	assert.Equal(t, first, ts.UpdatedAt)

	ts.Touch(second)
	assert.Equal(t, first, ts.CreatedAt)
	assert.Equal(t, second, ts.UpdatedAt)
}

func TestAuditFieldsRecordActor(t *testing.T) {
	var audit AuditFields

	audit.RecordActor(1)
	require.NotNil(t, audit.CreatedBy)
	assert.Equal(t, int64(1), *audit.CreatedBy)

	audit.RecordActor(2)
	assert.Equal(t, int64(1), *audit.CreatedBy)
	assert.Equal(t, int64(2), *audit.UpdatedBy)
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "pharmacy_prescription", TableName("Pharmacy", "Prescription"))
	assert.Equal(t, "billing_invoice", TableName(" billing ", " Invoice "))
}

func TestScopeClauses(t *testing.T) {
	assert.Equal(t, "is_deleted = FALSE", AliveClause(""))
	assert.Equal(t, "p.is_deleted = FALSE", AliveClause("p"))
	assert.Equal(t, "p.is_deleted = TRUE", DeadClause("p"))
}

func TestDeleteModeString(t *testing.T) {
	assert.Equal(t, "soft", DeleteSoft.String())
	assert.Equal(t, "deactivate", DeleteDeactivate.String())
	assert.Equal(t, "unsupported", DeleteUnsupported.String())
}
