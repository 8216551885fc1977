package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-backend/internal/manajemen/models"
	"github.com/c14220110/klinik-backend/internal/manajemen/services"
	"github.com/c14220110/klinik-backend/pkg/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// Login memverifikasi kredensial staf dan mengembalikan token JWT berisi role.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "email dan password harus diisi",
			"data":    nil,
		})
	}

	staf, err := ac.Service.AuthenticateStaf(req.Email, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"status":  http.StatusUnauthorized,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memproses login: " + err.Error(),
			"data":    nil,
		})
	}

	token, err := utils.GenerateJWTToken(
		staf.IDProfile, staf.Role, staf.FullName, staf.Email,
		time.Now().Add(8*time.Hour),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal membuat token: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Login berhasil",
		"data": map[string]interface{}{
			"token":        token,
			"id_profile":   staf.IDProfile,
			"role":         staf.Role,
			"nama_lengkap": staf.FullName,
		},
	})
}
