package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-backend/internal/pendaftaran/models"
	"github.com/c14220110/klinik-backend/internal/pendaftaran/services"
)

type PasienController struct {
	Service *services.PendaftaranService
}

func NewPasienController(service *services.PendaftaranService) *PasienController {
	return &PasienController{Service: service}
}

// RegisterPasien mendaftarkan pasien baru dari form publik. Pasien masuk dengan
// status menunggu verifikasi admin.
func (pc *PasienController) RegisterPasien(c echo.Context) error {
	var req models.PasienRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.FullName == "" || req.Nik == "" || req.Phone == "" || req.DateOfBirth == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "full_name, nik, phone, dan date_of_birth harus diisi",
			"data":    nil,
		})
	}
	parsedDate, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Format date_of_birth tidak valid. Gunakan format YYYY-MM-DD",
			"data":    nil,
		})
	}

	p := models.Pasien{
		FullName:    req.FullName,
		NIK:         req.Nik,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: parsedDate,
		Address:     req.Address,
		Senin:       req.Senin,
		Selasa:      req.Selasa,
		Rabu:        req.Rabu,
		Kamis:       req.Kamis,
		Jumat:       req.Jumat,
	}

	idPasien, err := pc.Service.RegisterPasien(p)
	if err != nil {
		if err == services.ErrNIKTerdaftar {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": "NIK sudah terdaftar",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mendaftarkan pasien: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil didaftarkan, menunggu verifikasi admin",
		"data": map[string]interface{}{
			"id_pasien": idPasien,
		},
	})
}

// GetPasienList menampilkan daftar pasien dengan pencarian nama dan pagination.
func (pc *PasienController) GetPasienList(c echo.Context) error {
	namaFilter := c.QueryParam("nama")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := pc.Service.GetPasienList(namaFilter, page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve pasien data: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data pasien retrieved successfully",
		"data":    list,
	})
}

// GetPasienBelumVerifikasi menampilkan pasien yang masih menunggu verifikasi.
func (pc *PasienController) GetPasienBelumVerifikasi(c echo.Context) error {
	list, err := pc.Service.GetPasienBelumVerifikasi()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve pasien data: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Daftar pasien belum verifikasi retrieved successfully",
		"data":    list,
	})
}

// VerifikasiPasien menyetujui pendaftaran pasien baru.
func (pc *PasienController) VerifikasiPasien(c echo.Context) error {
	idPasien, err := strconv.Atoi(c.QueryParam("id_pasien"))
	if err != nil || idPasien == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter id_pasien wajib diisi dan berupa angka",
			"data":    nil,
		})
	}

	if err := pc.Service.VerifikasiPasien(idPasien); err != nil {
		switch err {
		case services.ErrPasienNotFound:
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrSudahVerifikasi:
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Gagal memverifikasi pasien: " + err.Error(),
				"data":    nil,
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil diverifikasi",
		"data":    nil,
	})
}

// UpdatePasien mengedit data demografi pasien.
func (pc *PasienController) UpdatePasien(c echo.Context) error {
	var req models.PasienRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.IDPasien == 0 || req.FullName == "" || req.Nik == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_pasien, full_name, dan nik harus diisi",
			"data":    nil,
		})
	}
	parsedDate, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Format date_of_birth tidak valid. Gunakan format YYYY-MM-DD",
			"data":    nil,
		})
	}

	p := models.Pasien{
		IDPasien:    req.IDPasien,
		FullName:    req.FullName,
		NIK:         req.Nik,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: parsedDate,
		Address:     req.Address,
		Senin:       req.Senin,
		Selasa:      req.Selasa,
		Rabu:        req.Rabu,
		Kamis:       req.Kamis,
		Jumat:       req.Jumat,
	}

	if err := pc.Service.UpdatePasien(p); err != nil {
		if err == services.ErrPasienNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengupdate pasien: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data pasien berhasil diupdate",
		"data":    nil,
	})
}

// DeletePasien menghapus data pasien.
func (pc *PasienController) DeletePasien(c echo.Context) error {
	idPasien, err := strconv.Atoi(c.QueryParam("id_pasien"))
	if err != nil || idPasien == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter id_pasien wajib diisi dan berupa angka",
			"data":    nil,
		})
	}

	if err := pc.Service.DeletePasien(idPasien); err != nil {
		if err == services.ErrPasienNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus pasien: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil dihapus",
		"data":    nil,
	})
}
