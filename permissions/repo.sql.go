package permissions

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLStore implements Store against PostgreSQL. Expected schema:
//
//	auth_permission(id, name, codename, entity)
//	auth_group(id, name)
//	auth_group_permissions(group_id, permission_id)
//	auth_user_groups(user_id, group_id)
type SQLStore struct {
	pool *pgxpool.Pool
}

// NewSQLStore constructs a store backed by the provided pool.
func NewSQLStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{pool: pool}
}

// HasGroupPermission runs a single membership scan across the user's groups.
func (s *SQLStore) HasGroupPermission(ctx context.Context, userID int64, code string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM auth_user_groups ug
			JOIN auth_group_permissions gp ON gp.group_id = ug.group_id
			JOIN auth_permission p ON p.id = gp.permission_id
			WHERE ug.user_id = $1 AND p.codename = $2
		)`
	var allowed bool
	if err := s.pool.QueryRow(ctx, query, userID, code).Scan(&allowed); err != nil {
		return false, fmt.Errorf("permissions: group permission scan: %w", err)
	}
	return allowed, nil
}

// UserPermissionCodes returns the union of the user's group permissions.
func (s *SQLStore) UserPermissionCodes(ctx context.Context, userID int64) ([]string, error) {
	const query = `
		SELECT DISTINCT p.codename
		FROM auth_user_groups ug
		JOIN auth_group_permissions gp ON gp.group_id = ug.group_id
		JOIN auth_permission p ON p.id = gp.permission_id
		WHERE ug.user_id = $1
		ORDER BY p.codename`
	return s.queryCodes(ctx, query, userID)
}

// AllPermissionCodes returns the full permission set.
func (s *SQLStore) AllPermissionCodes(ctx context.Context) ([]string, error) {
	return s.queryCodes(ctx, `SELECT codename FROM auth_permission ORDER BY codename`)
}

// UserEntityPermissionCodes narrows the user's permissions to one entity type.
func (s *SQLStore) UserEntityPermissionCodes(ctx context.Context, userID int64, entity string) ([]string, error) {
	const query = `
		SELECT DISTINCT p.codename
		FROM auth_user_groups ug
		JOIN auth_group_permissions gp ON gp.group_id = ug.group_id
		JOIN auth_permission p ON p.id = gp.permission_id
		WHERE ug.user_id = $1 AND p.entity = $2
		ORDER BY p.codename`
	return s.queryCodes(ctx, query, userID, strings.ToLower(entity))
}

// EntityPermissionCodes returns every permission defined for an entity type.
func (s *SQLStore) EntityPermissionCodes(ctx context.Context, entity string) ([]string, error) {
	return s.queryCodes(ctx, `SELECT codename FROM auth_permission WHERE entity = $1 ORDER BY codename`, strings.ToLower(entity))
}

// Catalog returns all permissions grouped by entity type.
func (s *SQLStore) Catalog(ctx context.Context) (map[string][]Permission, error) {
	const query = `SELECT id, name, codename, entity FROM auth_permission ORDER BY entity, codename`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("permissions: catalog: %w", err)
	}
	defer rows.Close()

	catalog := make(map[string][]Permission)
	for rows.Next() {
		var p Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Entity); err != nil {
			return nil, fmt.Errorf("permissions: catalog scan: %w", err)
		}
		catalog[p.Entity] = append(catalog[p.Entity], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("permissions: catalog rows: %w", err)
	}
	return catalog, nil
}

func (s *SQLStore) queryCodes(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("permissions: query codes: %w", err)
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("permissions: scan code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("permissions: code rows: %w", err)
	}
	return codes, nil
}
