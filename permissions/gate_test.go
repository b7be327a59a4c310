package permissions_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolphin-labs/corekit/permissions"
)

func gateHandler(t *testing.T, resolver *permissions.Resolver, entity string) http.Handler {
	t.Helper()
	gate := permissions.Gate{Resolver: resolver}
	return gate.Require(entity)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
}

func doGated(handler http.Handler, method string, principal permissions.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/invoices", nil)
	if principal != nil {
		req = req.WithContext(permissions.ContextWithPrincipal(context.Background(), principal))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func envelopeOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGatePreflightAllowed(t *testing.T) {
	handler := gateHandler(t, permissions.NewResolver(grantedStore(1), nil, nil), "invoice")

	assert.Equal(t, http.StatusOK, doGated(handler, http.MethodOptions, nil).Code)
	assert.Equal(t, http.StatusOK, doGated(handler, http.MethodHead, nil).Code)
}

func TestGateAnonymousDenied(t *testing.T) {
	handler := gateHandler(t, permissions.NewResolver(grantedStore(1), nil, nil), "invoice")

	rec := doGated(handler, http.MethodGet, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, envelopeOf(t, rec)["success"])
}

func TestGateSuperuserAllowed(t *testing.T) {
	// A failing store proves the resolver is never consulted for superusers.
	store := grantedStore(1)
	store.err = assert.AnError
	handler := gateHandler(t, permissions.NewResolver(store, nil, nil), "invoice")

	rec := doGated(handler, http.MethodDelete, testUser{id: 1, super: true})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateMethodActionMapping(t *testing.T) {
	store := grantedStore(7,
		permissions.Code(permissions.ActionView, "invoice"),
		permissions.Code(permissions.ActionAdd, "invoice"),
	)
	handler := gateHandler(t, permissions.NewResolver(store, nil, nil), "invoice")
	user := testUser{id: 7}

	assert.Equal(t, http.StatusOK, doGated(handler, http.MethodGet, user).Code)
	assert.Equal(t, http.StatusOK, doGated(handler, http.MethodPost, user).Code)
	assert.Equal(t, http.StatusForbidden, doGated(handler, http.MethodPut, user).Code)
	assert.Equal(t, http.StatusForbidden, doGated(handler, http.MethodPatch, user).Code)
	assert.Equal(t, http.StatusForbidden, doGated(handler, http.MethodDelete, user).Code)
}

func TestGateUnmappedMethodDenied(t *testing.T) {
	handler := gateHandler(t, permissions.NewResolver(grantedStore(7), nil, nil), "invoice")

	rec := doGated(handler, "TRACE", testUser{id: 7})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGateMisconfiguredEntityDistinctFromDenial(t *testing.T) {
	handler := gateHandler(t, permissions.NewResolver(grantedStore(7), nil, nil), "")

	rec := doGated(handler, http.MethodGet, testUser{id: 7, super: true})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := envelopeOf(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "misconfigured")
}

func TestGateResolverErrorNormalized(t *testing.T) {
	store := grantedStore(7)
	store.err = assert.AnError
	handler := gateHandler(t, permissions.NewResolver(store, nil, nil), "invoice")

	rec := doGated(handler, http.MethodGet, testUser{id: 7})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, envelopeOf(t, rec)["success"])
}
