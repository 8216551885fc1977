package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	antrianmodels "github.com/c14220110/klinik-backend/internal/antrian/models"
	common "github.com/c14220110/klinik-backend/internal/common/middlewares"
	"github.com/c14220110/klinik-backend/internal/dokter/models"
	"github.com/c14220110/klinik-backend/internal/dokter/services"
	jwtUtils "github.com/c14220110/klinik-backend/pkg/utils"
	"github.com/c14220110/klinik-backend/ws"
)

type KonsultasiController struct {
	Service *services.KonsultasiService
}

func NewKonsultasiController(service *services.KonsultasiService) *KonsultasiController {
	return &KonsultasiController{Service: service}
}

// SimpanKonsultasi menangani aksi "simpan & selesai" dokter.
func (kc *KonsultasiController) SimpanKonsultasi(c echo.Context) error {
	var req models.KonsultasiRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.IDAntrian == 0 || req.Symptoms == "" || req.Diagnosis == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_antrian, symptoms, dan diagnosis harus diisi",
			"data":    nil,
		})
	}
	for _, item := range req.Resep {
		if item.IDObat == 0 || item.Jumlah <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "setiap baris resep harus memiliki id_obat dan jumlah lebih dari 0",
				"data":    nil,
			})
		}
	}

	idKonsultasi, err := kc.Service.SimpanKonsultasi(req)
	if err != nil {
		switch err {
		case services.ErrAntrianNotFound:
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrAntrianBukanKonsultasi, services.ErrKonsultasiSudahAda:
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		case services.ErrObatDuplikat:
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": err.Error(),
				"data":    nil,
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Gagal menyimpan konsultasi: " + err.Error(),
				"data":    nil,
			})
		}
	}

	ws.BroadcastAntrianUpdate(map[string]interface{}{
		"id_antrian": req.IDAntrian,
		"status":     antrianmodels.StatusSelesai,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Konsultasi berhasil disimpan",
		"data": map[string]interface{}{
			"id_konsultasi": idKonsultasi,
			"jumlah_resep":  len(req.Resep),
		},
	})
}

// GetAntrianSaya menampilkan antrian berjalan milik dokter yang sedang login.
func (kc *KonsultasiController) GetAntrianSaya(c echo.Context) error {
	claims := c.Get(string(common.ContextKeyClaims)).(*jwtUtils.Claims)

	list, err := kc.Service.GetAntrianDokter(claims.IDProfile)
	if err != nil {
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

// GetRiwayatKonsultasi menampilkan riwayat kunjungan satu pasien.
func (kc *KonsultasiController) GetRiwayatKonsultasi(c echo.Context) error {
	idPasien, err := strconv.Atoi(c.QueryParam("id_pasien"))
	if err != nil || idPasien == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "parameter id_pasien wajib diisi dan berupa angka",
			"data":    nil,
		})
	}

	list, err := kc.Service.GetRiwayatKonsultasi(idPasien)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve riwayat konsultasi: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Riwayat konsultasi retrieved successfully",
		"data":    list,
	})
}
