package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/c14220110/klinik-backend/internal/manajemen/models"
)

var (
	ErrEmailTerdaftar    = errors.New("email sudah terdaftar")
	ErrStafNotFound      = errors.New("staf tidak ditemukan")
	ErrRoleTidakValid    = errors.New("role tidak valid")
	ErrTidakAdaPerubahan = errors.New("tidak ada field yang diupdate")
)

// StafService menangani operasi akun staf yang di sistem asal dijalankan oleh
// fungsi server-side dengan kredensial elevated.
type StafService struct {
	DB *sql.DB
}

func NewStafService(db *sql.DB) *StafService {
	return &StafService{DB: db}
}

// TambahStaf membuat akun staf baru: identitas + profil dalam satu baris profiles.
func (s *StafService) TambahStaf(req models.StafRequest) (int64, error) {
	if !models.IsValidRole(req.Role) {
		return 0, ErrRoleTidakValid
	}

	var existing int
	err := s.DB.QueryRow("SELECT id FROM profiles WHERE email = ?", req.Email).Scan(&existing)
	if err != sql.ErrNoRows {
		if err != nil {
			return 0, err
		}
		return 0, ErrEmailTerdaftar
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	res, err := s.DB.Exec(`
		INSERT INTO profiles (email, password, full_name, role, phone_number, address)
		VALUES (?, ?, ?, ?, ?, ?)`,
		req.Email, string(hash), req.FullName, req.Role, req.PhoneNumber, req.Address,
	)
	if err != nil {
		return 0, fmt.Errorf("gagal menambahkan staf: %v", err)
	}
	return res.LastInsertId()
}

// UpdateStaf mengubah sebagian field akun staf. Password di-hash ulang bila dikirim.
func (s *StafService) UpdateStaf(req models.StafUpdateRequest) error {
	var dummy int
	if err := s.DB.QueryRow("SELECT 1 FROM profiles WHERE id = ?", req.IDProfile).Scan(&dummy); err != nil {
		if err == sql.ErrNoRows {
			return ErrStafNotFound
		}
		return err
	}

	sets := []string{}
	params := []interface{}{}

	if req.Email != nil {
		sets = append(sets, "email = ?")
		params = append(params, *req.Email)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		sets = append(sets, "password = ?")
		params = append(params, string(hash))
	}
	if req.Role != nil {
		if !models.IsValidRole(*req.Role) {
			return ErrRoleTidakValid
		}
		sets = append(sets, "role = ?")
		params = append(params, *req.Role)
	}
	if req.FullName != nil {
		sets = append(sets, "full_name = ?")
		params = append(params, *req.FullName)
	}
	if req.PhoneNumber != nil {
		sets = append(sets, "phone_number = ?")
		params = append(params, *req.PhoneNumber)
	}
	if req.Address != nil {
		sets = append(sets, "address = ?")
		params = append(params, *req.Address)
	}

	if len(sets) == 0 {
		return ErrTidakAdaPerubahan
	}

	query := "UPDATE profiles SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	params = append(params, req.IDProfile)

	if _, err := s.DB.Exec(query, params...); err != nil {
		return fmt.Errorf("gagal mengupdate staf: %v", err)
	}
	return nil
}

// HapusStaf menghapus akun staf. Di sistem asal penghapusan baris profil
// mengandalkan cascading delete; di sini baris dihapus langsung.
func (s *StafService) HapusStaf(idProfile int) error {
	res, err := s.DB.Exec("DELETE FROM profiles WHERE id = ?", idProfile)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStafNotFound
	}
	return nil
}

// GetStafList mengambil semua akun staf tanpa kolom password.
func (s *StafService) GetStafList() ([]models.Staf, error) {
	rows, err := s.DB.Query(`
		SELECT id, email, full_name, role, phone_number, address, created_at
		FROM profiles
		ORDER BY full_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Staf
	for rows.Next() {
		var st models.Staf
		var phone, address sql.NullString
		if err := rows.Scan(&st.IDProfile, &st.Email, &st.FullName, &st.Role, &phone, &address, &st.CreatedAt); err != nil {
			return nil, err
		}
		st.PhoneNumber = phone.String
		st.Address = address.String
		list = append(list, st)
	}
	return list, rows.Err()
}
