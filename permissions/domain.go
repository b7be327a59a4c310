// Package permissions resolves group-based authorization with cache-first
// lookups and provides an HTTP authorization gate.
//
// Permission codes follow the `<action>_<entitytype>` convention, with the
// four actions view, add, change and delete. Results are cached per
// (user, entity, action) with a short TTL; invalidation is TTL-only, so a
// revoked permission can remain effective for up to the TTL window.
package permissions

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Action is one of the four recognized operations on an entity type.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionChange Action = "change"
	ActionDelete Action = "delete"
)

// ErrInvalidAction indicates an action outside the recognized set.
var ErrInvalidAction = errors.New("permissions: invalid action")

// Actions returns the four recognized actions in checking order.
func Actions() []Action {
	return []Action{ActionView, ActionAdd, ActionChange, ActionDelete}
}

// Valid reports whether the action is one of the recognized four.
func (a Action) Valid() bool {
	switch a {
	case ActionView, ActionAdd, ActionChange, ActionDelete:
		return true
	default:
		return false
	}
}

// Code builds the permission code for an action on an entity type.
func Code(action Action, entity string) string {
	return fmt.Sprintf("%s_%s", action, strings.ToLower(strings.TrimSpace(entity)))
}

// Permission is an atomic capability targeting one entity type.
type Permission struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Entity string `json:"entity"`
}

// Group is a named collection of permissions assigned to users.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Principal describes the authenticated actor.
type Principal interface {
	GetID() int64
	IsSuperUser() bool
}

type principalContextKey struct{}

// ContextWithPrincipal stores the authenticated principal in context.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the principal, or nil when unauthenticated.
func PrincipalFromContext(ctx context.Context) Principal {
	p, _ := ctx.Value(principalContextKey{}).(Principal)
	return p
}
