package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-backend/internal/antrian/models"
	"github.com/c14220110/klinik-backend/internal/antrian/services"
	"github.com/c14220110/klinik-backend/ws"
)

type AntrianController struct {
	Service *services.AntrianService
}

func NewAntrianController(service *services.AntrianService) *AntrianController {
	return &AntrianController{Service: service}
}

// BuatJanji membuat janji temu baru untuk pasien terverifikasi.
func (ac *AntrianController) BuatJanji(c echo.Context) error {
	var req models.JanjiRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.IDPasien == 0 || req.IDDokter == 0 || req.Tanggal == "" || req.Jam == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_pasien, id_dokter, tanggal, dan jam harus diisi",
			"data":    nil,
		})
	}
	if _, err := time.Parse("2006-01-02", req.Tanggal); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Format tanggal tidak valid. Gunakan format YYYY-MM-DD",
			"data":    nil,
		})
	}
	if _, err := time.Parse("15:04", req.Jam); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Format jam tidak valid. Gunakan format HH:MM",
			"data":    nil,
		})
	}

	idAntrian, nomorAntrian, err := ac.Service.BuatJanji(req)
	if err != nil {
		switch err {
		case services.ErrPasienNotFound:
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrPasienBelumVerifikasi, services.ErrSudahPunyaJanji:
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Gagal membuat janji: " + err.Error(),
				"data":    nil,
			})
		}
	}

	ws.BroadcastAntrianUpdate(map[string]interface{}{
		"id_antrian":    idAntrian,
		"id_pasien":     req.IDPasien,
		"nomor_antrian": nomorAntrian,
		"tanggal":       req.Tanggal,
		"status":        models.StatusMenunggu,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Janji temu berhasil dibuat",
		"data": map[string]interface{}{
			"id_antrian":    idAntrian,
			"nomor_antrian": nomorAntrian,
		},
	})
}

// GetKandidatPasien menampilkan pasien terverifikasi yang belum terjadwal minggu ini.
func (ac *AntrianController) GetKandidatPasien(c echo.Context) error {
	list, err := ac.Service.GetKandidatPasien()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve kandidat pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Kandidat pasien retrieved successfully",
		"data":    list,
	})
}

// PanggilPasien dipakai dokter untuk memanggil pasien berikutnya.
func (ac *AntrianController) PanggilPasien(c echo.Context) error {
	idAntrian, err := strconv.Atoi(c.QueryParam("id_antrian"))
	if err != nil || idAntrian == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter id_antrian wajib diisi dan berupa angka",
			"data":    nil,
		})
	}

	detail, err := ac.Service.PanggilPasien(idAntrian)
	if err != nil {
		if err == services.ErrAntrianNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		if errors.Is(err, services.ErrAntrianBukanMenunggu) {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memanggil pasien: " + err.Error(),
			"data":    nil,
		})
	}

	ws.BroadcastAntrianUpdate(detail)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil dipanggil",
		"data":    detail,
	})
}

// UpdateStatus adalah override manual admin atas status antrian.
func (ac *AntrianController) UpdateStatus(c echo.Context) error {
	idAntrian, err := strconv.Atoi(c.QueryParam("id_antrian"))
	if err != nil || idAntrian == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter id_antrian wajib diisi dan berupa angka",
			"data":    nil,
		})
	}
	status := c.QueryParam("status")
	if status == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter status wajib diisi",
			"data":    nil,
		})
	}

	if err := ac.Service.UpdateStatusAntrian(idAntrian, status); err != nil {
		switch err {
		case services.ErrStatusTidakValid:
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrAntrianNotFound:
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrStatusTerminal:
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Gagal mengubah status antrian: " + err.Error(),
				"data":    nil,
			})
		}
	}

	ws.BroadcastAntrianUpdate(map[string]interface{}{
		"id_antrian": idAntrian,
		"status":     status,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Status antrian berhasil diubah",
		"data":    nil,
	})
}

// BatalkanAntrian membatalkan sebuah antrian.
func (ac *AntrianController) BatalkanAntrian(c echo.Context) error {
	idAntrian, err := strconv.Atoi(c.QueryParam("id_antrian"))
	if err != nil || idAntrian == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter id_antrian wajib diisi dan berupa angka",
			"data":    nil,
		})
	}

	if err := ac.Service.BatalkanAntrian(idAntrian); err != nil {
		switch err {
		case services.ErrAntrianNotFound:
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrStatusTerminal:
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Gagal membatalkan antrian: " + err.Error(),
				"data":    nil,
			})
		}
	}

	ws.BroadcastAntrianUpdate(map[string]interface{}{
		"id_antrian": idAntrian,
		"status":     models.StatusBatal,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Antrian berhasil dibatalkan",
		"data":    nil,
	})
}

// GetAntrianToday menampilkan antrian hari ini untuk display publik.
func (ac *AntrianController) GetAntrianToday(c echo.Context) error {
	statusFilter := c.QueryParam("status")
	list, err := ac.Service.GetAntrianToday(statusFilter)
	if err != nil {
		if err == services.ErrStatusTidakValid {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve antrian: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Antrian retrieved successfully",
		"data":    list,
	})
}
