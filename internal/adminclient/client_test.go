package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
)

// fakeAPI emulates the auth surface: cookie session, session-bound CSRF
// token, logout requiring the token header.
type fakeAPI struct {
	sessionID      string
	csrfToken      string
	csrfFetches    int
	logoutSawToken string
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Password != "letmein-123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "invalid username or password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "nursery_session", Value: f.sessionID, Path: "/"})
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    &domain.Principal{UserID: 1, Username: body.Username, Role: domain.RoleSuperAdmin},
		})
	})

	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    &domain.Principal{UserID: 1, Role: domain.RoleSuperAdmin},
		})
	})

	mux.HandleFunc("/api/v1/auth/csrf-token", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.csrfFetches++
		json.NewEncoder(w).Encode(map[string]string{"csrfToken": f.csrfToken})
	})

	mux.HandleFunc("/api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.logoutSawToken = r.Header.Get(HeaderCsrfToken)
		if f.authed(r) && f.logoutSawToken != f.csrfToken {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	return mux
}

func (f *fakeAPI) authed(r *http.Request) bool {
	cookie, err := r.Cookie("nursery_session")
	return err == nil && cookie.Value == f.sessionID
}

func newClientFixture(t *testing.T) (*Client, *fakeAPI, func()) {
	t.Helper()

	api := &fakeAPI{sessionID: "session-123", csrfToken: "token-abc"}
	srv := httptest.NewServer(api.handler())

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client, api, srv.Close
}

func TestClientLoginAndMe(t *testing.T) {
	client, _, cleanup := newClientFixture(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := client.Me(ctx); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("Me() before login error = %v, want ErrUnauthenticated", err)
	}

	principal, err := client.Login(ctx, "admin", "letmein-123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if principal == nil || principal.Role != domain.RoleSuperAdmin {
		t.Fatalf("Login() principal = %+v, want super_admin", principal)
	}

	// The cookie jar must carry the session on subsequent calls.
	got, err := client.Me(ctx)
	if err != nil {
		t.Fatalf("Me() after login error = %v", err)
	}
	if got.UserID != 1 {
		t.Errorf("Me() user id = %d, want 1", got.UserID)
	}
}

func TestClientLoginRejected(t *testing.T) {
	client, _, cleanup := newClientFixture(t)
	defer cleanup()

	_, err := client.Login(context.Background(), "admin", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestClientCsrfTokenCached(t *testing.T) {
	client, api, cleanup := newClientFixture(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := client.Login(ctx, "admin", "letmein-123"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		token, err := client.FetchCsrfToken(ctx)
		if err != nil {
			t.Fatalf("FetchCsrfToken() error = %v", err)
		}
		if token != api.csrfToken {
			t.Fatalf("token = %q, want %q", token, api.csrfToken)
		}
	}
	if api.csrfFetches != 1 {
		t.Errorf("server saw %d token fetches, want 1", api.csrfFetches)
	}
}

func TestClientLogoutSendsCsrfToken(t *testing.T) {
	client, api, cleanup := newClientFixture(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := client.Login(ctx, "admin", "letmein-123"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := client.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if api.logoutSawToken != api.csrfToken {
		t.Errorf("logout carried token %q, want %q", api.logoutSawToken, api.csrfToken)
	}

	// Logging out with no session still succeeds.
	if err := client.Logout(ctx); err != nil {
		t.Fatalf("second Logout() error = %v", err)
	}
}
