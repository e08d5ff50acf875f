package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/freshfest/gateway-api/internal/api/shared"
	"github.com/freshfest/gateway-api/internal/dto"
)

const testUserID = "user-1"

// authedRequest builds a request carrying an authenticated credential, the
// way the auth middleware would leave it.
func authedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, body)
	ctx := shared.SetCredential(r.Context(), dto.TokenPayload{UserID: testUserID, Role: "user"})
	return r.WithContext(ctx)
}

// route mounts a handler on a chi pattern and executes the request against
// it, so URL params resolve like they do in the real router.
func route(t *testing.T, method, pattern string, handler http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	mux.MethodFunc(method, pattern, handler)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}
