package model

import (
	"fmt"
	"strings"
)

// DeleteMode declares how an entity type supports destruction. Stores state
// their mode explicitly instead of being probed for capabilities at runtime.
type DeleteMode int

const (
	// DeleteUnsupported means destroy requests must be rejected.
	DeleteUnsupported DeleteMode = iota
	// DeleteSoft marks records deleted via SoftDeleteFields.
	DeleteSoft
	// DeleteDeactivate clears an active flag instead of deleting.
	DeleteDeactivate
)

// String returns the mode name for logs.
func (m DeleteMode) String() string {
	switch m {
	case DeleteSoft:
		return "soft"
	case DeleteDeactivate:
		return "deactivate"
	default:
		return "unsupported"
	}
}

// TableName derives the conventional table name for an entity owned by a
// module: "<module>_<entity>", lowercase.
func TableName(module, entity string) string {
	return strings.ToLower(strings.TrimSpace(module)) + "_" + strings.ToLower(strings.TrimSpace(entity))
}

// AliveClause returns the SQL predicate selecting non-deleted rows.
func AliveClause(alias string) string {
	return fmt.Sprintf("%sis_deleted = FALSE", columnPrefix(alias))
}

// DeadClause returns the SQL predicate selecting soft-deleted rows.
func DeadClause(alias string) string {
	return fmt.Sprintf("%sis_deleted = TRUE", columnPrefix(alias))
}

func columnPrefix(alias string) string {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return ""
	}
	return alias + "."
}
