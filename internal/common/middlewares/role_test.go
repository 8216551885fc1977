package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/klinik-backend/pkg/utils"
)

func newContextWithRole(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(ContextKeyClaims), &utils.Claims{IDProfile: 1, Role: role})
	return c, rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireRole_RoleSesuai(t *testing.T) {
	c, rec := newContextWithRole("admin")

	err := RequireRole("admin")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_MultiRole(t *testing.T) {
	c, rec := newContextWithRole("owner")

	err := RequireRole("admin", "owner")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_RoleDitolak(t *testing.T) {
	c, rec := newContextWithRole("dokter")

	err := RequireRole("admin")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_TanpaClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequireRole("admin")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_TokenValid(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "kunci-rahasia-test")

	token, err := utils.GenerateJWTToken(3, "dokter", "dr. Sari", "dokter@klinik.test", time.Now().Add(time.Hour))
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *utils.Claims
	handler := func(c echo.Context) error {
		got = c.Get(string(ContextKeyClaims)).(*utils.Claims)
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, JWTMiddleware()(handler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "dokter", got.Role)
}

func TestJWTMiddleware_TanpaHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, JWTMiddleware()(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_TokenRusak(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "kunci-rahasia-test")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bukan.token.valid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, JWTMiddleware()(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
