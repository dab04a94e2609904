package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/veloracommerce/velora-backend/pkg/config"
	"github.com/veloracommerce/velora-backend/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10},
	}
	return NewRouter(Deps{
		Config: cfg,
		Logger: logger.New(logger.Options{ServiceName: "router-test"}),
	})
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterPublicRoutesAreMounted(t *testing.T) {
	router := newTestRouter(t)

	// Services are nil here, so any mounted route answers 500 instead of 404.
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/auth/register"},
		{http.MethodPost, "/v1/auth/login"},
		{http.MethodGet, "/v1/products"},
		{http.MethodGet, "/v1/products/9d1f8c1e-0000-0000-0000-000000000000"},
		{http.MethodGet, "/v1/category"},
		{http.MethodGet, "/v1/category/9d1f8c1e-0000-0000-0000-000000000000"},
		{http.MethodGet, "/v1/reviews/9d1f8c1e-0000-0000-0000-000000000000"},
		{http.MethodPost, "/v1/reviews"},
	}
	for _, tc := range cases {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(tc.method, tc.path, nil))
		if resp.Code == http.StatusNotFound || resp.Code == http.StatusMethodNotAllowed {
			t.Fatalf("expected %s %s to be mounted, got %d", tc.method, tc.path, resp.Code)
		}
	}
}

func TestRouterProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/auth/logout"},
		{http.MethodGet, "/v1/cart"},
		{http.MethodPost, "/v1/cart"},
		{http.MethodPut, "/v1/cart/9d1f8c1e-0000-0000-0000-000000000000"},
		{http.MethodDelete, "/v1/cart/9d1f8c1e-0000-0000-0000-000000000000"},
		{http.MethodGet, "/v1/wishlist"},
		{http.MethodPost, "/v1/wishlist"},
		{http.MethodDelete, "/v1/wishlist/9d1f8c1e-0000-0000-0000-000000000000"},
	}
	for _, tc := range cases {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(tc.method, tc.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s %s, got %d", tc.method, tc.path, resp.Code)
		}
	}
}
