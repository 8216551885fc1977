package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/c14220110/klinik-backend/internal/antrian/models"
)

var (
	ErrAntrianNotFound       = errors.New("antrian tidak ditemukan")
	ErrAntrianBukanMenunggu  = errors.New("antrian tidak dalam status 'menunggu'")
	ErrPasienNotFound        = errors.New("pasien tidak ditemukan")
	ErrPasienBelumVerifikasi = errors.New("pasien belum diverifikasi")
	ErrSudahPunyaJanji       = errors.New("pasien sudah memiliki janji aktif pada tanggal tersebut")
	ErrStatusTerminal        = errors.New("antrian sudah berada pada status akhir")
	ErrStatusTidakValid      = errors.New("status antrian tidak valid")
)

type AntrianService struct {
	DB *sql.DB
}

func NewAntrianService(db *sql.DB) *AntrianService {
	return &AntrianService{DB: db}
}

// BuatJanji membuat janji temu baru dengan status "menunggu".
// Nomor antrian diambil dari MAX(queue_number)+1 untuk tanggal tersebut, di
// dalam transaksi supaya dua pendaftaran bersamaan tidak mendapat nomor sama.
func (s *AntrianService) BuatJanji(req models.JanjiRequest) (int64, int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, 0, err
	}

	// 1. Pasien harus ada dan sudah diverifikasi.
	var isVerified bool
	if err := tx.QueryRow("SELECT is_verified FROM patients WHERE id = ?", req.IDPasien).Scan(&isVerified); err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return 0, 0, ErrPasienNotFound
		}
		return 0, 0, err
	}
	if !isVerified {
		tx.Rollback()
		return 0, 0, ErrPasienBelumVerifikasi
	}

	// 2. Satu janji aktif per pasien per tanggal.
	var existing int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM appointments
		WHERE patient_id = ? AND appointment_date = ? AND status <> ?`,
		req.IDPasien, req.Tanggal, models.StatusBatal,
	).Scan(&existing)
	if err != nil {
		tx.Rollback()
		return 0, 0, err
	}
	if existing > 0 {
		tx.Rollback()
		return 0, 0, ErrSudahPunyaJanji
	}

	// 3. Nomor antrian berikutnya untuk tanggal tersebut.
	var nomorAntrian int
	err = tx.QueryRow(`
		SELECT COALESCE(MAX(queue_number), 0) + 1 FROM appointments
		WHERE appointment_date = ? FOR UPDATE`,
		req.Tanggal,
	).Scan(&nomorAntrian)
	if err != nil {
		tx.Rollback()
		return 0, 0, err
	}

	res, err := tx.Exec(`
		INSERT INTO appointments
			(patient_id, doctor_id, appointment_date, appointment_time, queue_number, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		req.IDPasien, req.IDDokter, req.Tanggal, req.Jam, nomorAntrian, models.StatusMenunggu,
	)
	if err != nil {
		tx.Rollback()
		return 0, 0, fmt.Errorf("gagal membuat janji: %v", err)
	}
	idAntrian, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return idAntrian, nomorAntrian, nil
}

// GetKandidatPasien mengambil pasien terverifikasi yang belum punya janji aktif
// pada minggu berjalan (kandidat penjadwalan dokter).
func (s *AntrianService) GetKandidatPasien() ([]map[string]interface{}, error) {
	rows, err := s.DB.Query(`
		SELECT p.id, p.full_name, p.phone,
		       p.senin, p.selasa, p.rabu, p.kamis, p.jumat
		FROM patients p
		WHERE p.is_verified = 1
		  AND NOT EXISTS (
			SELECT 1 FROM appointments a
			WHERE a.patient_id = p.id
			  AND YEARWEEK(a.appointment_date, 1) = YEARWEEK(CURDATE(), 1)
			  AND a.status <> ?
		  )
		ORDER BY p.full_name`, models.StatusBatal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []map[string]interface{}
	for rows.Next() {
		var id int
		var fullName, phone string
		var senin, selasa, rabu, kamis, jumat sql.NullString
		if err := rows.Scan(&id, &fullName, &phone, &senin, &selasa, &rabu, &kamis, &jumat); err != nil {
			return nil, err
		}
		list = append(list, map[string]interface{}{
			"id_pasien": id,
			"full_name": fullName,
			"phone":     phone,
			"ketersediaan": map[string]string{
				"senin":  senin.String,
				"selasa": selasa.String,
				"rabu":   rabu.String,
				"kamis":  kamis.String,
				"jumat":  jumat.String,
			},
		})
	}
	return list, rows.Err()
}

// PanggilPasien memindahkan antrian dari "menunggu" ke "sedang_konsultasi".
// Update dijaga klausa status supaya antrian yang sudah dipanggil atau selesai
// tidak bisa dipanggil ulang.
func (s *AntrianService) PanggilPasien(idAntrian int) (map[string]interface{}, error) {
	res, err := s.DB.Exec(`
		UPDATE appointments SET status = ?, updated_at = NOW()
		WHERE id = ? AND status = ?`,
		models.StatusSedangKonsultasi, idAntrian, models.StatusMenunggu,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		var current string
		if err := s.DB.QueryRow("SELECT status FROM appointments WHERE id = ?", idAntrian).Scan(&current); err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrAntrianNotFound
			}
			return nil, err
		}
		return nil, fmt.Errorf("%w (status sekarang: %s)", ErrAntrianBukanMenunggu, current)
	}

	// Ambil detail untuk broadcast display antrian.
	var nomorAntrian int
	var namaPasien string
	err = s.DB.QueryRow(`
		SELECT a.queue_number, p.full_name
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		WHERE a.id = ?`, idAntrian,
	).Scan(&nomorAntrian, &namaPasien)
	if err != nil {
		return nil, fmt.Errorf("failed to get detail antrian: %v", err)
	}

	return map[string]interface{}{
		"id_antrian":    idAntrian,
		"nomor_antrian": nomorAntrian,
		"nama_pasien":   namaPasien,
		"status":        models.StatusSedangKonsultasi,
	}, nil
}

// UpdateStatusAntrian adalah override manual admin ke status mana pun.
// Status akhir (selesai/batal) tidak boleh ditimpa lagi.
func (s *AntrianService) UpdateStatusAntrian(idAntrian int, status string) error {
	if !models.IsValidStatus(status) {
		return ErrStatusTidakValid
	}

	var current string
	if err := s.DB.QueryRow("SELECT status FROM appointments WHERE id = ?", idAntrian).Scan(&current); err != nil {
		if err == sql.ErrNoRows {
			return ErrAntrianNotFound
		}
		return err
	}
	if models.IsTerminalStatus(current) {
		return ErrStatusTerminal
	}

	_, err := s.DB.Exec("UPDATE appointments SET status = ?, updated_at = NOW() WHERE id = ?", status, idAntrian)
	return err
}

// BatalkanAntrian membatalkan antrian yang belum mencapai status akhir.
func (s *AntrianService) BatalkanAntrian(idAntrian int) error {
	res, err := s.DB.Exec(`
		UPDATE appointments SET status = ?, updated_at = NOW()
		WHERE id = ? AND status IN (?, ?)`,
		models.StatusBatal, idAntrian, models.StatusMenunggu, models.StatusSedangKonsultasi,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var dummy int
		err := s.DB.QueryRow("SELECT 1 FROM appointments WHERE id = ?", idAntrian).Scan(&dummy)
		if err == sql.ErrNoRows {
			return ErrAntrianNotFound
		}
		if err != nil {
			return err
		}
		return ErrStatusTerminal
	}
	return nil
}

// GetAntrianToday mengambil antrian hari ini beserta nama pasien, terurut nomor
// antrian, untuk display publik. Filter status opsional.
func (s *AntrianService) GetAntrianToday(statusFilter string) ([]map[string]interface{}, error) {
	query := `
		SELECT a.id, a.queue_number, a.appointment_time, a.status,
		       p.id, p.full_name, pr.full_name
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN profiles pr ON a.doctor_id = pr.id
		WHERE a.appointment_date = CURDATE()
	`
	params := []interface{}{}
	if statusFilter != "" {
		if !models.IsValidStatus(statusFilter) {
			return nil, ErrStatusTidakValid
		}
		query += " AND a.status = ?"
		params = append(params, statusFilter)
	}
	query += " ORDER BY a.queue_number ASC"

	rows, err := s.DB.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []map[string]interface{}
	for rows.Next() {
		var idAntrian, nomorAntrian, idPasien int
		var jam, status, namaPasien, namaDokter string
		if err := rows.Scan(&idAntrian, &nomorAntrian, &jam, &status, &idPasien, &namaPasien, &namaDokter); err != nil {
			return nil, err
		}
		list = append(list, map[string]interface{}{
			"id_antrian":    idAntrian,
			"nomor_antrian": nomorAntrian,
			"jam":           jam,
			"status":        status,
			"id_pasien":     idPasien,
			"nama_pasien":   namaPasien,
			"nama_dokter":   namaDokter,
		})
	}
	return list, rows.Err()
}
