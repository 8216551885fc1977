package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-backend/internal/manajemen/models"
	"github.com/c14220110/klinik-backend/internal/manajemen/services"
)

type StafController struct {
	Service *services.StafService
}

func NewStafController(service *services.StafService) *StafController {
	return &StafController{Service: service}
}

// TambahStaf membuat akun staf baru (admin/dokter/apoteker/owner).
func (sc *StafController) TambahStaf(c echo.Context) error {
	var req models.StafRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.Email == "" || req.Password == "" || req.Role == "" || req.FullName == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "email, password, role, dan full_name harus diisi",
			"data":    nil,
		})
	}

	idProfile, err := sc.Service.TambahStaf(req)
	if err != nil {
		switch err {
		case services.ErrRoleTidakValid:
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrEmailTerdaftar:
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Gagal menambahkan staf: " + err.Error(),
				"data":    nil,
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Staf berhasil ditambahkan",
		"data": map[string]interface{}{
			"id_profile": idProfile,
		},
	})
}

// UpdateStaf mengubah sebagian field akun staf.
func (sc *StafController) UpdateStaf(c echo.Context) error {
	var req models.StafUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.IDProfile == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_profile harus diisi",
			"data":    nil,
		})
	}

	if err := sc.Service.UpdateStaf(req); err != nil {
		switch err {
		case services.ErrStafNotFound:
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrRoleTidakValid, services.ErrTidakAdaPerubahan:
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Gagal mengupdate staf: " + err.Error(),
				"data":    nil,
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Staf berhasil diupdate",
		"data":    nil,
	})
}

// HapusStaf menghapus akun staf.
func (sc *StafController) HapusStaf(c echo.Context) error {
	idProfile, err := strconv.Atoi(c.QueryParam("id_profile"))
	if err != nil || idProfile == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter id_profile wajib diisi dan berupa angka",
			"data":    nil,
		})
	}

	if err := sc.Service.HapusStaf(idProfile); err != nil {
		if err == services.ErrStafNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus staf: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Staf berhasil dihapus",
		"data":    nil,
	})
}

// GetStafList menampilkan semua akun staf.
func (sc *StafController) GetStafList(c echo.Context) error {
	list, err := sc.Service.GetStafList()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve staf list: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Staf list retrieved successfully",
		"data":    list,
	})
}
