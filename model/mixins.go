// Package model provides embeddable field sets for persisted entities:
// creation/update timestamps, audit actor references, and soft-delete
// lifecycle fields with their invariants.
package model

import "time"

// Timestamps records when an entity was created and last updated.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch refreshes UpdatedAt, initialising CreatedAt on first use.
func (t *Timestamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// AuditFields records which user created and last updated an entity.
type AuditFields struct {
	CreatedBy *int64 `json:"created_by,omitempty"`
	UpdatedBy *int64 `json:"updated_by,omitempty"`
}

// RecordActor sets the audit actors, keeping the original creator.
func (a *AuditFields) RecordActor(actorID int64) {
	if a.CreatedBy == nil {
		a.CreatedBy = &actorID
	}
	a.UpdatedBy = &actorID
}

// SoftDeleteFields adds soft-delete lifecycle state to an entity.
// Invariant: IsDeleted implies DeletedAt is set; restoring clears the flag
// and sets RestoredAt.
type SoftDeleteFields struct {
	IsDeleted  bool       `json:"is_deleted"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	RestoredAt *time.Time `json:"restored_at,omitempty"`
	DeletedBy  *int64     `json:"deleted_by,omitempty"`
	RestoredBy *int64     `json:"restored_by,omitempty"`
}

// SoftDelete marks the record deleted at the given instant, recording the
// acting user.
func (f *SoftDeleteFields) SoftDelete(actorID int64, at time.Time) {
	f.IsDeleted = true
	f.DeletedAt = &at
	if actorID != 0 {
		f.DeletedBy = &actorID
	}
}

// Restore reverses a soft delete, recording the acting user.
func (f *SoftDeleteFields) Restore(actorID int64, at time.Time) {
	f.IsDeleted = false
	f.RestoredAt = &at
	if actorID != 0 {
		f.RestoredBy = &actorID
	}
}

// Alive reports whether the record is visible in the default query view.
func (f *SoftDeleteFields) Alive() bool {
	return !f.IsDeleted
}

// ActiveFlag marks entities that are deactivated instead of soft-deleted.
type ActiveFlag struct {
	IsActive bool `json:"is_active"`
}

// Deactivate hides the entity from active listings.
func (a *ActiveFlag) Deactivate() {
	a.IsActive = false
}
