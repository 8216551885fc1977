package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-backend/pkg/utils"
)

// RequireRole membatasi akses grup route ke role tertentu.
// Dipasang setelah JWTMiddleware; peta route ke role dideklarasikan di routes.Init
// sehingga otorisasi tidak tersebar di tiap handler.
func RequireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawClaims := c.Get(string(ContextKeyClaims))
			if rawClaims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Missing or invalid JWT claims",
					"data":    nil,
				})
			}
			claims, ok := rawClaims.(*utils.Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Invalid JWT claims format",
					"data":    nil,
				})
			}

			for _, role := range allowed {
				if claims.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": "Anda tidak memiliki hak akses untuk halaman ini",
				"data":    nil,
			})
		}
	}
}
