// Package crud provides a generic CRUD resource handler. A Resource mounts
// list/create/retrieve/update/destroy routes behind the authorization gate
// and normalizes every outcome through the response envelope.
package crud

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dolphin-labs/corekit/model"
	"github.com/dolphin-labs/corekit/pagination"
	"github.com/dolphin-labs/corekit/permissions"
	"github.com/dolphin-labs/corekit/respond"
)

// Store is the persistence surface a Resource drives. T is the entity as
// serialized in responses; In is the validated input shape for create and
// update. The store declares its delete strategy via DeleteMode instead of
// being probed for capabilities.
type Store[T any, In any] interface {
	// List returns one page of visible records and the total visible count.
	// A zero PerPage requests the full set.
	List(ctx context.Context, p pagination.Params) ([]T, int, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, in In, actorID int64) (T, error)
	// Update applies in to the record. Partial updates skip struct-level
	// validation; the store interprets zero values accordingly.
	Update(ctx context.Context, id int64, in In, partial bool, actorID int64) (T, error)
	DeleteMode() model.DeleteMode
	SoftDelete(ctx context.Context, id, actorID int64) error
	Deactivate(ctx context.Context, id int64) error
}

// Resource orchestrates CRUD requests for one entity type. Collaborators
// are held as fields rather than inherited.
type Resource[T any, In any] struct {
	Entity   string
	Store    Store[T, In]
	Resolver *permissions.Resolver
	Logger   *slog.Logger
	Validate *validator.Validate

	// PerPage enables pagination when positive; zero lists everything.
	PerPage    int
	MaxPerPage int
}

// NewResource builds a Resource with default pagination and a fresh
// validator.
func NewResource[T any, In any](entity string, store Store[T, In], resolver *permissions.Resolver, logger *slog.Logger) *Resource[T, In] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resource[T, In]{
		Entity:     entity,
		Store:      store,
		Resolver:   resolver,
		Logger:     logger,
		Validate:   validator.New(),
		PerPage:    pagination.DefaultPerPage,
		MaxPerPage: pagination.MaxPerPage,
	}
}

// Routes mounts the CRUD endpoints behind the authorization gate.
func (rs *Resource[T, In]) Routes() chi.Router {
	r := chi.NewRouter()
	gate := permissions.Gate{Resolver: rs.Resolver, Logger: rs.Logger}
	r.Use(gate.Require(rs.Entity))
	r.Get("/", rs.list)
	r.Post("/", rs.create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", rs.retrieve)
		r.Put("/", rs.updateFull)
		r.Patch("/", rs.updatePartial)
		r.Delete("/", rs.destroy)
	})
	return r
}

func (rs *Resource[T, In]) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := permissions.PrincipalFromContext(ctx)

	if rs.PerPage <= 0 {
		items, _, err := rs.Store.List(ctx, pagination.Params{Page: 1})
		if err != nil {
			rs.logError(r, "list", err)
			respond.Fail(w, err)
			return
		}
		respond.OK(w, rs.annotate(ctx, principal, items))
		return
	}

	params := pagination.ParseParams(r, rs.PerPage, rs.MaxPerPage)
	items, total, err := rs.Store.List(ctx, params)
	if err != nil {
		rs.logError(r, "list", err)
		respond.Fail(w, err)
		return
	}
	respond.Paginated(w, rs.annotate(ctx, principal, items), params.Meta(total))
}

func (rs *Resource[T, In]) create(w http.ResponseWriter, r *http.Request) {
	var in In
	if err := respond.DecodeJSON(r, &in); err != nil {
		respond.Fail(w, err)
		return
	}
	// Validation failures return before anything is persisted.
	if err := rs.Validate.Struct(in); err != nil {
		respond.Fail(w, err)
		return
	}

	created, err := rs.Store.Create(r.Context(), in, rs.actorID(r))
	if err != nil {
		rs.logError(r, "create", err)
		respond.Fail(w, err)
		return
	}
	respond.Created(w, fmt.Sprintf("%s created successfully", rs.Entity), created)
}

func (rs *Resource[T, In]) retrieve(w http.ResponseWriter, r *http.Request) {
	id, err := rs.recordID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	record, err := rs.Store.Get(r.Context(), id)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	respond.Success(w, http.StatusOK, fmt.Sprintf("%s retrieved successfully", rs.Entity), record)
}

func (rs *Resource[T, In]) updateFull(w http.ResponseWriter, r *http.Request) {
	rs.update(w, r, false)
}

func (rs *Resource[T, In]) updatePartial(w http.ResponseWriter, r *http.Request) {
	rs.update(w, r, true)
}

func (rs *Resource[T, In]) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, err := rs.recordID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}
	var in In
	if err := respond.DecodeJSON(r, &in); err != nil {
		respond.Fail(w, err)
		return
	}
	if !partial {
		if err := rs.Validate.Struct(in); err != nil {
			respond.Fail(w, err)
			return
		}
	}

	updated, err := rs.Store.Update(r.Context(), id, in, partial, rs.actorID(r))
	if err != nil {
		rs.logError(r, "update", err)
		respond.Fail(w, err)
		return
	}
	respond.Success(w, http.StatusOK, fmt.Sprintf("%s updated successfully", rs.Entity), updated)
}

func (rs *Resource[T, In]) destroy(w http.ResponseWriter, r *http.Request) {
	id, err := rs.recordID(r)
	if err != nil {
		respond.Fail(w, err)
		return
	}

	switch rs.Store.DeleteMode() {
	case model.DeleteSoft:
		err = rs.Store.SoftDelete(r.Context(), id, rs.actorID(r))
	case model.DeleteDeactivate:
		err = rs.Store.Deactivate(r.Context(), id)
	default:
		respond.FailStatus(w, respond.KindValidation, fmt.Sprintf("%s cannot be deleted", rs.Entity), nil)
		return
	}
	if err != nil {
		rs.logError(r, "destroy", err)
		respond.Fail(w, err)
		return
	}
	respond.Success(w, http.StatusOK, fmt.Sprintf("%s deleted successfully", rs.Entity), nil)
}

// annotate attaches the caller's available actions to each listed item.
// Items that do not serialize to JSON objects are passed through untouched.
func (rs *Resource[T, In]) annotate(ctx context.Context, principal permissions.Principal, items []T) []any {
	out := make([]any, 0, len(items))
	actions, err := rs.Resolver.AvailableActions(ctx, principal, rs.Entity)
	if err != nil {
		rs.Logger.Warn("available actions lookup failed", slog.String("entity", rs.Entity), slog.Any("error", err))
		for _, item := range items {
			out = append(out, item)
		}
		return out
	}

	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			out = append(out, item)
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			out = append(out, item)
			continue
		}
		obj["actions"] = actions
		out = append(out, obj)
	}
	return out
}

func (rs *Resource[T, In]) recordID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, respond.E(respond.KindNotFound, "")
	}
	return id, nil
}

func (rs *Resource[T, In]) actorID(r *http.Request) int64 {
	if principal := permissions.PrincipalFromContext(r.Context()); principal != nil {
		return principal.GetID()
	}
	return 0
}

func (rs *Resource[T, In]) logError(r *http.Request, op string, err error) {
	rs.Logger.Error("crud operation failed",
		slog.String("entity", rs.Entity),
		slog.String("op", op),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
}
