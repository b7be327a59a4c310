package permissions

import (
	"log/slog"
	"net/http"

	"github.com/dolphin-labs/corekit/respond"
)

// methodActions maps request methods onto the four recognized actions.
var methodActions = map[string]Action{
	http.MethodGet:    ActionView,
	http.MethodPost:   ActionAdd,
	http.MethodPut:    ActionChange,
	http.MethodPatch:  ActionChange,
	http.MethodDelete: ActionDelete,
}

// Gate is the per-request authorization check mounted as chi middleware.
type Gate struct {
	Resolver *Resolver
	Logger   *slog.Logger
}

// Require gates every request on the resolver's decision for the entity
// type. Pre-flight methods pass unconditionally; superusers pass without a
// resolver call; unmapped methods are rejected. An empty entity name is a
// deployment defect and is reported distinctly from a denial so operators
// can tell misconfiguration apart from legitimate authorization failures.
func (g Gate) Require(entity string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if entity == "" {
				if g.Logger != nil {
					g.Logger.Error("authorization gate misconfigured: empty entity type", slog.String("path", r.URL.Path))
				}
				respond.FailStatus(w, respond.KindInternal, "authorization gate misconfigured: entity type required", nil)
				return
			}
			if r.Method == http.MethodOptions || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			principal := PrincipalFromContext(r.Context())
			if principal == nil {
				respond.FailStatus(w, respond.KindUnauthorized, "", nil)
				return
			}
			if principal.IsSuperUser() {
				next.ServeHTTP(w, r)
				return
			}

			action, ok := methodActions[r.Method]
			if !ok {
				respond.FailStatus(w, respond.KindMethodNotAllowed, "", nil)
				return
			}

			allowed, err := g.Resolver.Has(r.Context(), principal, entity, action)
			if err != nil {
				if g.Logger != nil {
					g.Logger.Error("authorization check failed",
						slog.String("entity", entity),
						slog.String("action", string(action)),
						slog.Any("error", err))
				}
				respond.Fail(w, err)
				return
			}
			if !allowed {
				respond.FailStatus(w, respond.KindPermission, "", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
