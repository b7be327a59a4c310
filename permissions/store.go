package permissions

import "context"

// Store provides group-based permission lookups. Implementations read
// authorization data only; this layer never mutates users, groups or
// permissions.
type Store interface {
	// HasGroupPermission reports whether any of the user's groups holds the
	// permission code.
	HasGroupPermission(ctx context.Context, userID int64, code string) (bool, error)
	// UserPermissionCodes returns the deduplicated union of the user's group
	// permission codes.
	UserPermissionCodes(ctx context.Context, userID int64) ([]string, error)
	// AllPermissionCodes returns every permission code in the catalog.
	AllPermissionCodes(ctx context.Context) ([]string, error)
	// UserEntityPermissionCodes returns the user's group permission codes for
	// one entity type.
	UserEntityPermissionCodes(ctx context.Context, userID int64, entity string) ([]string, error)
	// EntityPermissionCodes returns every permission code for an entity type.
	EntityPermissionCodes(ctx context.Context, entity string) ([]string, error)
	// Catalog returns all permissions grouped by entity type.
	Catalog(ctx context.Context) (map[string][]Permission, error)
}
