package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dinespot/table-reservation/internal/utils"
)

// AdminHandler issues the JWT that guards the admin reservation listing.
// There is a single configured admin account; the password is bcrypt-hashed
// once at startup so the plain value never lives beyond construction.
type AdminHandler struct {
	username  string
	passHash  string
	jwtSecret string
	tokenTTL  int
	Env       string
}

// NewAdminHandler hashes the configured admin password and returns the
// handler. A hashing failure is a programming error (invalid bcrypt cost)
// and panics.
func NewAdminHandler(username, password, jwtSecret string, bcryptCost, tokenTTLMin int, env string) *AdminHandler {
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		panic("admin password hash: " + err.Error())
	}
	return &AdminHandler{
		username:  username,
		passHash:  hash,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTLMin,
		Env:       env,
	}
}

// Login handles POST /admin/login. It exchanges the admin credentials for a
// short-lived bearer token. Invalid credentials get a uniform 401 so the
// username cannot be probed separately from the password.
func (h *AdminHandler) Login(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, h.Env, http.StatusBadRequest, "Invalid request body", err)
	}
	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" || body.Password == "" {
		return fail(c, h.Env, http.StatusBadRequest, "Missing required fields", nil)
	}
	if body.Username != h.username || !utils.VerifyPassword(h.passHash, body.Password) {
		return fail(c, h.Env, http.StatusUnauthorized, "Invalid credentials", nil)
	}

	tok, err := utils.NewAccessToken(h.jwtSecret, h.username, h.tokenTTL)
	if err != nil {
		return fail(c, h.Env, http.StatusInternalServerError, "Error issuing token", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token":     tok.Token,
		"expiresAt": tok.Exp.Format(time.RFC3339),
	})
}
