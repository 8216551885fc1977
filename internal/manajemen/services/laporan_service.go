package services

import (
	"database/sql"
	"time"

	antrianmodels "github.com/c14220110/klinik-backend/internal/antrian/models"
	"github.com/c14220110/klinik-backend/internal/manajemen/models"
)

// LaporanService menangani agregasi read-only untuk dashboard dan laporan.
// Semua pengelompokan dilakukan di database (GROUP BY), bukan di memori.
type LaporanService struct {
	DB *sql.DB
}

func NewLaporanService(db *sql.DB) *LaporanService {
	return &LaporanService{DB: db}
}

// GetPendapatanHarian menjumlahkan transaksi per tanggal pada rentang inklusif.
func (s *LaporanService) GetPendapatanHarian(start, end time.Time) ([]models.PendapatanHarian, error) {
	// Rentang diperluas sampai akhir hari terakhir.
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	rows, err := s.DB.Query(`
		SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS tanggal, SUM(total_amount)
		FROM transactions
		WHERE created_at BETWEEN ? AND ?
		GROUP BY tanggal
		ORDER BY tanggal ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.PendapatanHarian
	for rows.Next() {
		var p models.PendapatanHarian
		if err := rows.Scan(&p.Tanggal, &p.Total); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetKonsultasiPerDokter menghitung jumlah konsultasi per dokter.
func (s *LaporanService) GetKonsultasiPerDokter() ([]models.KonsultasiDokter, error) {
	rows, err := s.DB.Query(`
		SELECT d.id, d.full_name, COUNT(c.id) AS jumlah
		FROM consultations c
		JOIN appointments a ON c.appointment_id = a.id
		JOIN profiles d ON a.doctor_id = d.id
		GROUP BY d.id, d.full_name
		ORDER BY jumlah DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.KonsultasiDokter
	for rows.Next() {
		var k models.KonsultasiDokter
		if err := rows.Scan(&k.IDDokter, &k.NamaDokter, &k.Jumlah); err != nil {
			return nil, err
		}
		list = append(list, k)
	}
	return list, rows.Err()
}

// GetObatTerlaris mengambil N obat dengan frekuensi peresepan tertinggi.
func (s *LaporanService) GetObatTerlaris(limit int) ([]models.ObatTerlaris, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := s.DB.Query(`
		SELECT m.id, m.name, COUNT(pr.id) AS jumlah
		FROM prescriptions pr
		JOIN medications m ON pr.medication_id = m.id
		GROUP BY m.id, m.name
		ORDER BY jumlah DESC, m.name ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.ObatTerlaris
	for rows.Next() {
		var o models.ObatTerlaris
		if err := rows.Scan(&o.IDObat, &o.NamaObat, &o.Jumlah); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// GetDashboard mengambil ringkasan hari berjalan: jumlah antrian per status
// dan pendapatan hari ini.
func (s *LaporanService) GetDashboard() (models.Dashboard, error) {
	var d models.Dashboard

	countByStatus := func(status string) (int, error) {
		var cnt int
		err := s.DB.QueryRow(
			"SELECT COUNT(*) FROM appointments WHERE appointment_date = CURDATE() AND status = ?",
			status,
		).Scan(&cnt)
		return cnt, err
	}

	var err error
	if d.Menunggu, err = countByStatus(antrianmodels.StatusMenunggu); err != nil {
		return d, err
	}
	if d.SedangKonsultasi, err = countByStatus(antrianmodels.StatusSedangKonsultasi); err != nil {
		return d, err
	}
	if d.Selesai, err = countByStatus(antrianmodels.StatusSelesai); err != nil {
		return d, err
	}
	if d.Batal, err = countByStatus(antrianmodels.StatusBatal); err != nil {
		return d, err
	}
	d.TotalAntrian = d.Menunggu + d.SedangKonsultasi + d.Selesai + d.Batal

	err = s.DB.QueryRow(
		"SELECT COALESCE(SUM(total_amount), 0) FROM transactions WHERE DATE(created_at) = CURDATE()",
	).Scan(&d.PendapatanHariIni)
	if err != nil {
		return d, err
	}

	return d, nil
}
