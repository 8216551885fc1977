package services

import (
	"database/sql"
	"errors"
	"fmt"

	antrianmodels "github.com/c14220110/klinik-backend/internal/antrian/models"
	"github.com/c14220110/klinik-backend/internal/dokter/models"
)

var (
	ErrAntrianNotFound        = errors.New("antrian tidak ditemukan")
	ErrAntrianBukanKonsultasi = errors.New("antrian tidak dalam status 'sedang_konsultasi'")
	ErrKonsultasiSudahAda     = errors.New("konsultasi untuk antrian ini sudah tercatat")
	ErrObatDuplikat           = errors.New("obat yang sama dipilih lebih dari sekali")
)

type KonsultasiService struct {
	DB *sql.DB
}

func NewKonsultasiService(db *sql.DB) *KonsultasiService {
	return &KonsultasiService{DB: db}
}

// SimpanKonsultasi menjalankan pipeline "simpan & selesai" dalam satu transaksi:
//   - memastikan antrian ada dan berstatus sedang_konsultasi,
//   - insert satu baris consultations (maksimal satu per antrian),
//   - bulk-insert baris prescriptions berstatus pending,
//   - update antrian menjadi selesai.
// Kegagalan di langkah mana pun membatalkan seluruh pipeline.
func (s *KonsultasiService) SimpanKonsultasi(req models.KonsultasiRequest) (int64, error) {
	// Duplikat obat ditolak sebelum menyentuh database.
	seen := make(map[int]bool)
	for _, item := range req.Resep {
		if seen[item.IDObat] {
			return 0, ErrObatDuplikat
		}
		seen[item.IDObat] = true
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return 0, err
	}

	// 1. Validasi status antrian.
	var status string
	if err := tx.QueryRow("SELECT status FROM appointments WHERE id = ? FOR UPDATE", req.IDAntrian).Scan(&status); err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return 0, ErrAntrianNotFound
		}
		return 0, err
	}
	if status != antrianmodels.StatusSedangKonsultasi {
		tx.Rollback()
		return 0, ErrAntrianBukanKonsultasi
	}

	// 2. Maksimal satu konsultasi per antrian.
	var dummy int
	err = tx.QueryRow("SELECT 1 FROM consultations WHERE appointment_id = ?", req.IDAntrian).Scan(&dummy)
	if err != sql.ErrNoRows {
		tx.Rollback()
		if err != nil {
			return 0, err
		}
		return 0, ErrKonsultasiSudahAda
	}

	// 3. Insert konsultasi.
	res, err := tx.Exec(`
		INSERT INTO consultations (appointment_id, symptoms, diagnosis, doctor_notes)
		VALUES (?, ?, ?, ?)`,
		req.IDAntrian, req.Symptoms, req.Diagnosis, req.DoctorNotes,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("gagal menyimpan konsultasi: %v", err)
	}
	idKonsultasi, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	// 4. Bulk insert resep, status pending.
	for _, item := range req.Resep {
		if _, err := tx.Exec(`
			INSERT INTO prescriptions (consultation_id, medication_id, quantity, dosage_instructions, status)
			VALUES (?, ?, ?, ?, 'pending')`,
			idKonsultasi, item.IDObat, item.Jumlah, item.Dosis,
		); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("gagal menyimpan resep: %v", err)
		}
	}

	// 5. Antrian selesai.
	if _, err := tx.Exec("UPDATE appointments SET status = ?, updated_at = NOW() WHERE id = ?",
		antrianmodels.StatusSelesai, req.IDAntrian); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return idKonsultasi, nil
}

// GetAntrianDokter mengambil antrian hari ini milik satu dokter yang masih
// berjalan (menunggu atau sedang konsultasi), terurut nomor antrian.
func (s *KonsultasiService) GetAntrianDokter(idDokter int) ([]map[string]interface{}, error) {
	rows, err := s.DB.Query(`
		SELECT a.id, a.queue_number, a.appointment_time, a.status, p.id, p.full_name
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		WHERE a.doctor_id = ? AND a.appointment_date = CURDATE() AND a.status IN (?, ?)
		ORDER BY a.queue_number ASC`,
		idDokter, antrianmodels.StatusMenunggu, antrianmodels.StatusSedangKonsultasi,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []map[string]interface{}
	for rows.Next() {
		var idAntrian, nomorAntrian, idPasien int
		var jam, status, namaPasien string
		if err := rows.Scan(&idAntrian, &nomorAntrian, &jam, &status, &idPasien, &namaPasien); err != nil {
			return nil, err
		}
		list = append(list, map[string]interface{}{
			"id_antrian":    idAntrian,
			"nomor_antrian": nomorAntrian,
			"jam":           jam,
			"status":        status,
			"id_pasien":     idPasien,
			"nama_pasien":   namaPasien,
		})
	}
	return list, rows.Err()
}

// GetRiwayatKonsultasi mengambil riwayat kunjungan satu pasien beserta resepnya.
// Baris hasil join flat dikelompokkan per konsultasi sambil di-scan.
func (s *KonsultasiService) GetRiwayatKonsultasi(idPasien int) ([]models.RiwayatKonsultasi, error) {
	rows, err := s.DB.Query(`
		SELECT c.id, c.created_at, c.symptoms, c.diagnosis, c.doctor_notes,
		       d.full_name,
		       pr.id, m.name, pr.quantity, pr.dosage_instructions, pr.status
		FROM consultations c
		JOIN appointments a ON c.appointment_id = a.id
		JOIN profiles d ON a.doctor_id = d.id
		LEFT JOIN prescriptions pr ON pr.consultation_id = c.id
		LEFT JOIN medications m ON pr.medication_id = m.id
		WHERE a.patient_id = ?
		ORDER BY c.id DESC, pr.id ASC`, idPasien)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.RiwayatKonsultasi
	var current *models.RiwayatKonsultasi
	var lastID int

	for rows.Next() {
		var (
			idKonsultasi int
			createdAt    sql.NullTime
			symptoms     string
			diagnosis    string
			doctorNotes  sql.NullString
			namaDokter   string
			idResep      sql.NullInt64
			namaObat     sql.NullString
			jumlah       sql.NullInt64
			dosis        sql.NullString
			statusResep  sql.NullString
		)
		if err := rows.Scan(&idKonsultasi, &createdAt, &symptoms, &diagnosis, &doctorNotes,
			&namaDokter, &idResep, &namaObat, &jumlah, &dosis, &statusResep); err != nil {
			return nil, err
		}

		if current == nil || idKonsultasi != lastID {
			if current != nil {
				result = append(result, *current)
			}
			current = &models.RiwayatKonsultasi{
				IDKonsultasi: idKonsultasi,
				Symptoms:     symptoms,
				Diagnosis:    diagnosis,
				DoctorNotes:  doctorNotes.String,
				NamaDokter:   namaDokter,
			}
			if createdAt.Valid {
				current.Tanggal = createdAt.Time.Format("02/01/2006")
			}
			lastID = idKonsultasi
		}

		if idResep.Valid {
			current.Resep = append(current.Resep, models.ResepItem{
				IDResep:  int(idResep.Int64),
				NamaObat: namaObat.String,
				Jumlah:   int(jumlah.Int64),
				Dosis:    dosis.String,
				Status:   statusResep.String,
			})
		}
	}
	if current != nil {
		result = append(result, *current)
	}
	return result, rows.Err()
}
