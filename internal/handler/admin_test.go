package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/dinespot/table-reservation/internal/middleware"
)

const (
	testSecret   = "test-secret"
	testUser     = "admin"
	testPassword = "s3cret"
)

func newAdminHandler() *AdminHandler {
	// MinCost keeps the hashing in tests fast.
	return NewAdminHandler(testUser, testPassword, testSecret, bcrypt.MinCost, 60, "test")
}

func postLogin(t *testing.T, h *AdminHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestAdminLogin(t *testing.T) {
	h := newAdminHandler()

	t.Run("Valid Credentials Issue Token", func(t *testing.T) {
		rec := postLogin(t, h, `{"username":"admin","password":"s3cret"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Token     string `json:"token"`
			ExpiresAt string `json:"expiresAt"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if resp.Token == "" || resp.ExpiresAt == "" {
			t.Errorf("expected token and expiry, got %+v", resp)
		}
	})

	t.Run("Wrong Password Is Rejected", func(t *testing.T) {
		rec := postLogin(t, h, `{"username":"admin","password":"wrong"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Unknown Username Is Rejected", func(t *testing.T) {
		rec := postLogin(t, h, `{"username":"root","password":"s3cret"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Missing Fields", func(t *testing.T) {
		rec := postLogin(t, h, `{"username":"admin"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestJWTAuthGuardsIssuedTokens(t *testing.T) {
	h := newAdminHandler()
	e := echo.New()
	guarded := middleware.JWTAuth(testSecret)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"admin": c.Get("admin")})
	})

	issue := func(t *testing.T) string {
		t.Helper()
		rec := postLogin(t, h, `{"username":"admin","password":"s3cret"}`)
		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad login response: %v", err)
		}
		return resp.Token
	}

	t.Run("Issued Token Is Accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t))
		rec := httptest.NewRecorder()
		if err := guarded(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), testUser) {
			t.Errorf("expected subject in response, got %s", rec.Body.String())
		}
	})

	t.Run("Missing Header Is Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		if err := guarded(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		if err := guarded(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("Token Signed With Another Secret Is Rejected", func(t *testing.T) {
		other := NewAdminHandler(testUser, testPassword, "other-secret", bcrypt.MinCost, 60, "test")
		rec := postLogin(t, other, `{"username":"admin","password":"s3cret"}`)
		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad login response: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		rec2 := httptest.NewRecorder()
		if err := guarded(e.NewContext(req, rec2)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec2.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec2.Code)
		}
	})
}
