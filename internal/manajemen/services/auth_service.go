package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/c14220110/klinik-backend/internal/manajemen/models"
)

var ErrInvalidCredentials = errors.New("email atau password salah")

type AuthService struct {
	DB *sql.DB
}

func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{DB: db}
}

// AuthenticateStaf memverifikasi pasangan email+password terhadap tabel profiles.
// Profil yang tidak ditemukan dan password salah dikembalikan sebagai error yang
// sama supaya tidak membocorkan email mana yang terdaftar.
func (s *AuthService) AuthenticateStaf(email, password string) (*models.Staf, error) {
	var staf models.Staf
	var hash string
	var phone, address sql.NullString

	query := `
		SELECT id, email, password, full_name, role, phone_number, address, created_at
		FROM profiles
		WHERE email = ?
	`
	err := s.DB.QueryRow(query, email).Scan(
		&staf.IDProfile, &staf.Email, &hash, &staf.FullName, &staf.Role, &phone, &address, &staf.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	staf.PhoneNumber = phone.String
	staf.Address = address.String
	return &staf, nil
}
