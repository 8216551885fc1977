package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/c14220110/klinik-backend/internal/pendaftaran/models"
)

var (
	ErrNIKTerdaftar    = errors.New("NIK sudah terdaftar")
	ErrPasienNotFound  = errors.New("pasien tidak ditemukan")
	ErrSudahVerifikasi = errors.New("pasien sudah diverifikasi")
)

type PendaftaranService struct {
	DB *sql.DB
}

func NewPendaftaranService(db *sql.DB) *PendaftaranService {
	return &PendaftaranService{DB: db}
}

// RegisterPasien mendaftarkan pasien baru dengan flag is_verified = false.
// Pasien baru menunggu verifikasi admin sebelum bisa dijadwalkan.
func (s *PendaftaranService) RegisterPasien(p models.Pasien) (int64, error) {
	var existing int
	err := s.DB.QueryRow("SELECT id FROM patients WHERE nik = ?", p.NIK).Scan(&existing)
	if err != sql.ErrNoRows {
		if err != nil {
			return 0, err
		}
		return 0, ErrNIKTerdaftar
	}

	res, err := s.DB.Exec(`
		INSERT INTO patients
			(full_name, nik, phone, email, date_of_birth, address,
			 senin, selasa, rabu, kamis, jumat, is_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		p.FullName, p.NIK, p.Phone, p.Email, p.DateOfBirth, p.Address,
		p.Senin, p.Selasa, p.Rabu, p.Kamis, p.Jumat,
	)
	if err != nil {
		return 0, fmt.Errorf("gagal mendaftarkan pasien: %v", err)
	}
	return res.LastInsertId()
}

// GetPasienList mengambil daftar pasien dengan pencarian nama (case-insensitive,
// substring) dan pagination, terbaru lebih dulu.
func (s *PendaftaranService) GetPasienList(nama string, page, limit int) ([]models.Pasien, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	query := `
		SELECT id, full_name, nik, phone, email, date_of_birth, address,
		       senin, selasa, rabu, kamis, jumat, is_verified, created_at
		FROM patients
	`
	params := []interface{}{}
	if nama != "" {
		query += " WHERE LOWER(full_name) LIKE ?"
		params = append(params, "%"+strings.ToLower(nama)+"%")
	}
	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := s.DB.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPasienRows(rows)
}

// GetPasienBelumVerifikasi mengambil daftar pasien yang masih menunggu verifikasi admin.
func (s *PendaftaranService) GetPasienBelumVerifikasi() ([]models.Pasien, error) {
	rows, err := s.DB.Query(`
		SELECT id, full_name, nik, phone, email, date_of_birth, address,
		       senin, selasa, rabu, kamis, jumat, is_verified, created_at
		FROM patients
		WHERE is_verified = 0
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPasienRows(rows)
}

// VerifikasiPasien menghapus flag pending verification sehingga pasien muncul
// di daftar kandidat penjadwalan dokter.
func (s *PendaftaranService) VerifikasiPasien(idPasien int) error {
	res, err := s.DB.Exec("UPDATE patients SET is_verified = 1 WHERE id = ? AND is_verified = 0", idPasien)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var dummy int
		err := s.DB.QueryRow("SELECT 1 FROM patients WHERE id = ?", idPasien).Scan(&dummy)
		if err == sql.ErrNoRows {
			return ErrPasienNotFound
		}
		if err != nil {
			return err
		}
		return ErrSudahVerifikasi
	}
	return nil
}

// UpdatePasien mengganti seluruh data demografi pasien yang diedit admin.
func (s *PendaftaranService) UpdatePasien(p models.Pasien) error {
	var dummy int
	if err := s.DB.QueryRow("SELECT 1 FROM patients WHERE id = ?", p.IDPasien).Scan(&dummy); err != nil {
		if err == sql.ErrNoRows {
			return ErrPasienNotFound
		}
		return err
	}

	_, err := s.DB.Exec(`
		UPDATE patients
		SET full_name = ?, nik = ?, phone = ?, email = ?, date_of_birth = ?, address = ?,
		    senin = ?, selasa = ?, rabu = ?, kamis = ?, jumat = ?
		WHERE id = ?`,
		p.FullName, p.NIK, p.Phone, p.Email, p.DateOfBirth, p.Address,
		p.Senin, p.Selasa, p.Rabu, p.Kamis, p.Jumat, p.IDPasien,
	)
	if err != nil {
		return fmt.Errorf("gagal mengupdate pasien: %v", err)
	}
	return nil
}

// DeletePasien menghapus data pasien.
func (s *PendaftaranService) DeletePasien(idPasien int) error {
	res, err := s.DB.Exec("DELETE FROM patients WHERE id = ?", idPasien)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPasienNotFound
	}
	return nil
}

func scanPasienRows(rows *sql.Rows) ([]models.Pasien, error) {
	var list []models.Pasien
	for rows.Next() {
		var p models.Pasien
		var email, address, senin, selasa, rabu, kamis, jumat sql.NullString
		if err := rows.Scan(
			&p.IDPasien, &p.FullName, &p.NIK, &p.Phone, &email, &p.DateOfBirth, &address,
			&senin, &selasa, &rabu, &kamis, &jumat, &p.IsVerified, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Email = email.String
		p.Address = address.String
		p.Senin = senin.String
		p.Selasa = selasa.String
		p.Rabu = rabu.String
		p.Kamis = kamis.String
		p.Jumat = jumat.String
		list = append(list, p)
	}
	return list, rows.Err()
}
