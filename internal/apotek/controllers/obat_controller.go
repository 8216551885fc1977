package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-backend/internal/apotek/models"
	"github.com/c14220110/klinik-backend/internal/apotek/services"
)

type ObatController struct {
	Service *services.ObatService
}

func NewObatController(service *services.ObatService) *ObatController {
	return &ObatController{Service: service}
}

// GetObatList menampilkan daftar obat terurut nama dengan pencarian opsional.
func (oc *ObatController) GetObatList(c echo.Context) error {
	q := c.QueryParam("nama")
	list, err := oc.Service.GetObatList(q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve obat list: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Obat list retrieved successfully",
		"data":    list,
	})
}

// TambahObat menambahkan record obat baru.
func (oc *ObatController) TambahObat(c echo.Context) error {
	var req models.ObatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if msg := validateObatRequest(req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": msg,
			"data":    nil,
		})
	}

	idObat, err := oc.Service.TambahObat(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menambahkan obat: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Obat berhasil ditambahkan",
		"data": map[string]interface{}{
			"id_obat": idObat,
		},
	})
}

// UpdateObat mengganti seluruh field record obat.
func (oc *ObatController) UpdateObat(c echo.Context) error {
	var req models.ObatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.IDObat == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_obat harus diisi",
			"data":    nil,
		})
	}
	if msg := validateObatRequest(req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": msg,
			"data":    nil,
		})
	}

	if err := oc.Service.UpdateObat(req); err != nil {
		if err == services.ErrObatNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengupdate obat: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Obat berhasil diupdate",
		"data":    nil,
	})
}

// HapusObat menghapus record obat yang tidak dirujuk resep.
func (oc *ObatController) HapusObat(c echo.Context) error {
	idObat, err := strconv.Atoi(c.QueryParam("id_obat"))
	if err != nil || idObat == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter id_obat wajib diisi dan berupa angka",
			"data":    nil,
		})
	}

	if err := oc.Service.HapusObat(idObat); err != nil {
		switch err {
		case services.ErrObatNotFound:
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrObatDipakaiResep:
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Gagal menghapus obat: " + err.Error(),
				"data":    nil,
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Obat berhasil dihapus",
		"data":    nil,
	})
}

func validateObatRequest(req models.ObatRequest) string {
	if req.Name == "" || req.Unit == "" {
		return "name dan unit harus diisi"
	}
	if req.Stock < 0 {
		return "stock tidak boleh negatif"
	}
	if req.UnitPrice < 0 {
		return "unit_price tidak boleh negatif"
	}
	if req.ExpiryDate != "" {
		if _, err := time.Parse("2006-01-02", req.ExpiryDate); err != nil {
			return "Format expiry_date tidak valid. Gunakan format YYYY-MM-DD"
		}
	}
	return ""
}
