package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	antrianControllers "github.com/c14220110/klinik-backend/internal/antrian/controllers"
	antrianServices "github.com/c14220110/klinik-backend/internal/antrian/services"
	apotekControllers "github.com/c14220110/klinik-backend/internal/apotek/controllers"
	apotekServices "github.com/c14220110/klinik-backend/internal/apotek/services"
	"github.com/c14220110/klinik-backend/internal/common/middlewares"
	dokterControllers "github.com/c14220110/klinik-backend/internal/dokter/controllers"
	dokterServices "github.com/c14220110/klinik-backend/internal/dokter/services"
	manajemenControllers "github.com/c14220110/klinik-backend/internal/manajemen/controllers"
	manajemenModels "github.com/c14220110/klinik-backend/internal/manajemen/models"
	manajemenServices "github.com/c14220110/klinik-backend/internal/manajemen/services"
	pendaftaranControllers "github.com/c14220110/klinik-backend/internal/pendaftaran/controllers"
	pendaftaranServices "github.com/c14220110/klinik-backend/internal/pendaftaran/services"
	"github.com/c14220110/klinik-backend/ws"
)

// Init menginisialisasi semua routes. Peta route ke role dideklarasikan di
// sini sehingga otorisasi tidak tersebar per handler.
func Init(e *echo.Echo, db *sql.DB) {
	// Inisialisasi service
	pendaftaranService := pendaftaranServices.NewPendaftaranService(db)
	antrianService := antrianServices.NewAntrianService(db)
	konsultasiService := dokterServices.NewKonsultasiService(db)
	obatService := apotekServices.NewObatService(db)
	penebusanService := apotekServices.NewPenebusanService(db)
	authService := manajemenServices.NewAuthService(db)
	stafService := manajemenServices.NewStafService(db)
	laporanService := manajemenServices.NewLaporanService(db)

	// Inisialisasi controller
	pasienController := pendaftaranControllers.NewPasienController(pendaftaranService)
	antrianController := antrianControllers.NewAntrianController(antrianService)
	konsultasiController := dokterControllers.NewKonsultasiController(konsultasiService)
	obatController := apotekControllers.NewObatController(obatService)
	penebusanController := apotekControllers.NewPenebusanController(penebusanService)
	authController := manajemenControllers.NewAuthController(authService)
	stafController := manajemenControllers.NewStafController(stafService)
	laporanController := manajemenControllers.NewLaporanController(laporanService)

	api := e.Group("/api")

	// Publik: form pendaftaran, display antrian, login
	api.POST("/login", authController.Login)
	api.POST("/pendaftaran/pasien", pasienController.RegisterPasien)
	api.GET("/antrian/today", antrianController.GetAntrianToday)
	e.GET("/ws/antrian", ws.ServeWS(ws.HubInstance))

	// Grup admin: registri pasien, verifikasi, override antrian
	admin := api.Group("/admin",
		middlewares.JWTMiddleware(),
		middlewares.RequireRole(manajemenModels.RoleAdmin),
	)
	admin.GET("/pasien", pasienController.GetPasienList)
	admin.GET("/pasien/verifikasi", pasienController.GetPasienBelumVerifikasi)
	admin.PUT("/pasien/verifikasi", pasienController.VerifikasiPasien)
	admin.PUT("/pasien", pasienController.UpdatePasien)
	admin.DELETE("/pasien", pasienController.DeletePasien)
	admin.PUT("/antrian/status", antrianController.UpdateStatus)
	admin.PUT("/antrian/batal", antrianController.BatalkanAntrian)

	// Grup dokter: penjadwalan, panggil pasien, konsultasi
	dokter := api.Group("/dokter",
		middlewares.JWTMiddleware(),
		middlewares.RequireRole(manajemenModels.RoleDokter),
	)
	dokter.GET("/pasien/kandidat", antrianController.GetKandidatPasien)
	dokter.POST("/janji", antrianController.BuatJanji)
	dokter.PUT("/antrian/panggil", antrianController.PanggilPasien)
	dokter.GET("/antrian", konsultasiController.GetAntrianSaya)
	dokter.POST("/konsultasi", konsultasiController.SimpanKonsultasi)
	dokter.GET("/riwayat", konsultasiController.GetRiwayatKonsultasi)

	// Grup apotek: stok obat dan penebusan resep
	apotek := api.Group("/apotek",
		middlewares.JWTMiddleware(),
		middlewares.RequireRole(manajemenModels.RoleApoteker),
	)
	apotek.GET("/obat", obatController.GetObatList)
	apotek.POST("/obat", obatController.TambahObat)
	apotek.PUT("/obat", obatController.UpdateObat)
	apotek.DELETE("/obat", obatController.HapusObat)
	apotek.GET("/resep/pending", penebusanController.GetResepPending)
	apotek.POST("/tebus", penebusanController.TebusResep)

	// Grup manajemen: akun staf dan laporan owner
	manajemen := api.Group("/manajemen",
		middlewares.JWTMiddleware(),
		middlewares.RequireRole(manajemenModels.RoleOwner),
	)
	manajemen.GET("/staf", stafController.GetStafList)
	manajemen.POST("/staf", stafController.TambahStaf)
	manajemen.PUT("/staf", stafController.UpdateStaf)
	manajemen.DELETE("/staf", stafController.HapusStaf)
	manajemen.GET("/laporan/pendapatan", laporanController.GetPendapatanHarian)
	manajemen.GET("/laporan/konsultasi-dokter", laporanController.GetKonsultasiPerDokter)
	manajemen.GET("/laporan/obat-terlaris", laporanController.GetObatTerlaris)

	// Dashboard ringkasan dipakai admin dan owner.
	api.GET("/dashboard", laporanController.GetDashboard,
		middlewares.JWTMiddleware(),
		middlewares.RequireRole(manajemenModels.RoleAdmin, manajemenModels.RoleOwner),
	)
}
