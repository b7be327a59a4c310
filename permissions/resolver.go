package permissions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dolphin-labs/corekit/cache"
)

const (
	// PermissionTTL bounds how long a cached single-action decision lives.
	PermissionTTL = 5 * time.Minute
	// CatalogTTL bounds how long the grouped permission catalog lives.
	CatalogTTL = time.Hour

	catalogCacheKey = "all_permissions"
)

// Resolver answers "may this user perform this action on this entity type"
// using group membership, with cache-first lookups. The cache is a
// performance optimization only: read and write failures degrade to direct
// computation and never change the authorization outcome.
type Resolver struct {
	store      Store
	cache      cache.Client
	logger     *slog.Logger
	ttl        time.Duration
	catalogTTL time.Duration
	catalogSF  singleflight.Group
}

// NewResolver constructs a Resolver. The cache client may be nil, in which
// case every check computes directly against the store.
func NewResolver(store Store, cacheClient cache.Client, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		store:      store,
		cache:      cacheClient,
		logger:     logger,
		ttl:        PermissionTTL,
		catalogTTL: CatalogTTL,
	}
}

// CacheKey builds the deterministic key for a single-action decision.
func CacheKey(userID int64, entity string, action Action) string {
	return fmt.Sprintf("user_perm:%d:%s:%s", userID, strings.ToLower(strings.TrimSpace(entity)), action)
}

// Has reports whether the principal may perform action on the entity type.
// Superusers are always allowed without touching cache or store. A nil
// principal is denied.
func (r *Resolver) Has(ctx context.Context, p Principal, entity string, action Action) (bool, error) {
	if !action.Valid() {
		return false, fmt.Errorf("%w: %q (valid: view, add, change, delete)", ErrInvalidAction, action)
	}
	if p == nil {
		return false, nil
	}
	if p.IsSuperUser() {
		return true, nil
	}

	key := CacheKey(p.GetID(), entity, action)
	if cached, ok := r.cacheGetBool(ctx, key); ok {
		return cached, nil
	}

	allowed, err := r.store.HasGroupPermission(ctx, p.GetID(), Code(action, entity))
	if err != nil {
		return false, err
	}
	r.cacheSetBool(ctx, key, allowed)
	return allowed, nil
}

// UserPermissions returns every permission code granted to the principal:
// the union of its group permissions, or the full catalog for superusers.
func (r *Resolver) UserPermissions(ctx context.Context, p Principal) ([]string, error) {
	if p == nil {
		return nil, errors.New("permissions: principal required")
	}
	if p.IsSuperUser() {
		return r.store.AllPermissionCodes(ctx)
	}
	return r.store.UserPermissionCodes(ctx, p.GetID())
}

// EntityPermissions returns the principal's permission codes for one entity
// type.
func (r *Resolver) EntityPermissions(ctx context.Context, p Principal, entity string) ([]string, error) {
	if p == nil {
		return nil, errors.New("permissions: principal required")
	}
	if p.IsSuperUser() {
		return r.store.EntityPermissionCodes(ctx, strings.ToLower(entity))
	}
	return r.store.UserEntityPermissionCodes(ctx, p.GetID(), strings.ToLower(entity))
}

// AvailableActions iterates the four actions through Has and returns those
// granted on the entity type.
func (r *Resolver) AvailableActions(ctx context.Context, p Principal, entity string) ([]Action, error) {
	available := make([]Action, 0, 4)
	for _, action := range Actions() {
		allowed, err := r.Has(ctx, p, entity, action)
		if err != nil {
			return nil, err
		}
		if allowed {
			available = append(available, action)
		}
	}
	return available, nil
}

// Catalog returns all permissions grouped by entity type, cached with the
// longer catalog TTL. Concurrent misses share a single recomputation.
func (r *Resolver) Catalog(ctx context.Context) (map[string][]Permission, error) {
	if r.cache != nil {
		raw, err := r.cache.Get(ctx, catalogCacheKey)
		if err == nil {
			var catalog map[string][]Permission
			if jsonErr := json.Unmarshal([]byte(raw), &catalog); jsonErr == nil {
				return catalog, nil
			}
			r.logger.Debug("permission catalog cache entry unreadable", slog.String("key", catalogCacheKey))
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Debug("permission catalog cache read failed", slog.Any("error", err))
		}
	}

	result, err, _ := r.catalogSF.Do(catalogCacheKey, func() (any, error) {
		return r.RefreshCatalog(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string][]Permission), nil
}

// RefreshCatalog recomputes the catalog from the store and repopulates the
// cache entry, bypassing any cached value.
func (r *Resolver) RefreshCatalog(ctx context.Context) (map[string][]Permission, error) {
	catalog, err := r.store.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		payload, jsonErr := json.Marshal(catalog)
		if jsonErr == nil {
			if setErr := r.cache.Set(ctx, catalogCacheKey, string(payload), r.catalogTTL); setErr != nil {
				r.logger.Debug("permission catalog cache write failed", slog.Any("error", setErr))
			}
		}
	}
	return catalog, nil
}

// cacheGetBool reads a cached decision. Any failure, miss included, reports
// not-found so the caller recomputes; absence is never treated as a denial.
func (r *Resolver) cacheGetBool(ctx context.Context, key string) (value, ok bool) {
	if r.cache == nil {
		return false, false
	}
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Debug("permission cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return false, false
	}
	switch raw {
	case "1":
		return true, true
	case "0":
		return false, true
	default:
		return false, false
	}
}

// cacheSetBool persists a decision; write failures must never fail the
// authorization path.
func (r *Resolver) cacheSetBool(ctx context.Context, key string, allowed bool) {
	if r.cache == nil {
		return
	}
	value := "0"
	if allowed {
		value = "1"
	}
	if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
		r.logger.Debug("permission cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
