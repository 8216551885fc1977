package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	antrianmodels "github.com/c14220110/klinik-backend/internal/antrian/models"
	"github.com/c14220110/klinik-backend/internal/apotek/services"
	"github.com/c14220110/klinik-backend/ws"
)

type PenebusanController struct {
	Service *services.PenebusanService
}

func NewPenebusanController(service *services.PenebusanService) *PenebusanController {
	return &PenebusanController{Service: service}
}

// GetResepPending menampilkan resep pending dikelompokkan per konsultasi.
func (pc *PenebusanController) GetResepPending(c echo.Context) error {
	list, err := pc.Service.GetResepPending()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to retrieve resep pending: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Resep pending retrieved successfully",
		"data":    list,
	})
}

// TebusResep menangani aksi "bayar" apoteker untuk satu konsultasi.
func (pc *PenebusanController) TebusResep(c echo.Context) error {
	var req struct {
		IDKonsultasi int `json:"id_konsultasi"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.IDKonsultasi == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_konsultasi harus diisi",
			"data":    nil,
		})
	}

	trx, err := pc.Service.TebusResep(req.IDKonsultasi)
	if err != nil {
		if err == services.ErrResepTidakAda {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		if errors.Is(err, services.ErrStokKurang) {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menebus resep: " + err.Error(),
			"data":    nil,
		})
	}

	ws.BroadcastAntrianUpdate(map[string]interface{}{
		"id_antrian": trx.IDAntrian,
		"status":     antrianmodels.StatusSelesai,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Resep berhasil ditebus dan transaksi tercatat",
		"data":    trx,
	})
}
