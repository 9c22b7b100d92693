package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

// newOAuthConfig points the token endpoint at a fake token server.
func newOAuthConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "test_client_id",
		ClientSecret: "test_client_secret",
		RedirectURL:  "http://127.0.0.1:8080/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  tokenURL + "/authorize",
			TokenURL: tokenURL + "/token",
		},
	}
}

func newTokenServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "issued_access_token",
			"refresh_token": "issued_refresh_token",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func callbackRequest(state, code string) *http.Request {
	values := url.Values{}
	if state != "" {
		values.Set("state", state)
	}
	if code != "" {
		values.Set("code", code)
	}
	return httptest.NewRequest("GET", "/callback?"+values.Encode(), nil)
}

func TestOAuthHandler(t *testing.T) {
	t.Run("successful callback exchanges the code", func(t *testing.T) {
		tokenServer := newTokenServer(t)
		handler := NewOAuthHandler(newOAuthConfig(tokenServer.URL), "expected_state")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, callbackRequest("expected_state", "auth_code"))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Authorization Successful") {
			t.Error("expected success page in response")
		}

		result := <-handler.Result()
		if result.Error() != nil {
			t.Fatalf("expected no error, got %v", result.Error())
		}
		if result.Token == nil || result.Token.AccessToken != "issued_access_token" {
			t.Errorf("unexpected token: %+v", result.Token)
		}
	})

	t.Run("state mismatch is rejected", func(t *testing.T) {
		tokenServer := newTokenServer(t)
		handler := NewOAuthHandler(newOAuthConfig(tokenServer.URL), "expected_state")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, callbackRequest("wrong_state", "auth_code"))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Error() == nil {
			t.Error("expected error for state mismatch")
		}
	})

	t.Run("missing code reports authorization failure", func(t *testing.T) {
		tokenServer := newTokenServer(t)
		handler := NewOAuthHandler(newOAuthConfig(tokenServer.URL), "expected_state")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, callbackRequest("expected_state", ""))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Error() == nil {
			t.Error("expected error for missing code")
		}
	})

	t.Run("second callback is rejected", func(t *testing.T) {
		tokenServer := newTokenServer(t)
		handler := NewOAuthHandler(newOAuthConfig(tokenServer.URL), "expected_state")

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, callbackRequest("expected_state", "auth_code"))

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, callbackRequest("expected_state", "auth_code"))

		if second.Code != http.StatusBadRequest {
			t.Errorf("expected replay to be rejected with 400, got %d", second.Code)
		}
	})
}

func TestBasicRouter(t *testing.T) {
	t.Run("method filtering", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle("GET", "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("POST", "/ping", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405 for wrong method, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("middleware wraps in reverse order", func(t *testing.T) {
		var order []string
		mw := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(mw("outer"), mw("inner"))
		router.Handle("GET", "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ping", nil))

		if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
			t.Errorf("unexpected middleware order: %v", order)
		}
	})

	t.Run("Handler registers all routes", func(t *testing.T) {
		tokenServer := newTokenServer(t)
		handler := NewOAuthHandler(newOAuthConfig(tokenServer.URL), "s")

		router := NewBasicRouter()
		router.Handler(handler)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, callbackRequest("wrong", ""))
		if rec.Code == http.StatusNotFound {
			t.Error("expected /callback route to be registered")
		}
	})
}
