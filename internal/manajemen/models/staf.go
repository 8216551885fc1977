package models

import "time"

// Role staf yang dikenal aplikasi.
const (
	RoleAdmin    = "admin"
	RoleDokter   = "dokter"
	RoleApoteker = "apoteker"
	RoleOwner    = "owner"
)

// IsValidRole memeriksa apakah sebuah string adalah role staf yang dikenal.
func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleDokter, RoleApoteker, RoleOwner:
		return true
	}
	return false
}

// Staf merepresentasikan satu baris tabel profiles (tanpa password).
type Staf struct {
	IDProfile   int       `json:"id_profile"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

// StafRequest adalah payload pembuatan akun staf oleh owner.
type StafRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// StafUpdateRequest adalah payload update parsial akun staf.
// Field nil berarti tidak diubah.
type StafUpdateRequest struct {
	IDProfile   int     `json:"id_profile"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// LoginRequest adalah payload login semua role staf.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
