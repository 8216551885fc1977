package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/klinik-backend/internal/manajemen/services"
)

type LaporanController struct {
	Service *services.LaporanService
}

func NewLaporanController(service *services.LaporanService) *LaporanController {
	return &LaporanController{Service: service}
}

// GetPendapatanHarian menampilkan pendapatan per hari pada rentang tanggal.
// Default: 30 hari terakhir.
func (lc *LaporanController) GetPendapatanHarian(c echo.Context) error {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if v := c.QueryParam("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "Format start tidak valid. Gunakan format YYYY-MM-DD",
				"data":    nil,
			})
		}
		start = parsed
	}
	if v := c.QueryParam("end"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "Format end tidak valid. Gunakan format YYYY-MM-DD",
				"data":    nil,
			})
		}
		end = parsed
	}

	list, err := lc.Service.GetPendapatanHarian(start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve laporan pendapatan: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Laporan pendapatan retrieved successfully",
		"data":    list,
	})
}

// GetKonsultasiPerDokter menampilkan jumlah konsultasi per dokter.
func (lc *LaporanController) GetKonsultasiPerDokter(c echo.Context) error {
	list, err := lc.Service.GetKonsultasiPerDokter()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve laporan konsultasi: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Laporan konsultasi per dokter retrieved successfully",
		"data":    list,
	})
}

// GetObatTerlaris menampilkan obat dengan frekuensi peresepan tertinggi.
func (lc *LaporanController) GetObatTerlaris(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := lc.Service.GetObatTerlaris(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve obat terlaris: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Obat terlaris retrieved successfully",
		"data":    list,
	})
}

// GetDashboard menampilkan ringkasan hari berjalan.
func (lc *LaporanController) GetDashboard(c echo.Context) error {
	d, err := lc.Service.GetDashboard()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve dashboard: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Dashboard retrieved successfully",
		"data":    d,
	})
}
