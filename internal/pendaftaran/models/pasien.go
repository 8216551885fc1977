package models

import "time"

// Pasien merepresentasikan satu baris tabel patients.
type Pasien struct {
	IDPasien    int       `json:"id_pasien"`
	FullName    string    `json:"full_name"`
	NIK         string    `json:"nik"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Address     string    `json:"address"`
	// Ketersediaan mingguan: teks bebas per hari, kosong berarti tidak tersedia.
	Senin      string    `json:"senin"`
	Selasa     string    `json:"selasa"`
	Rabu       string    `json:"rabu"`
	Kamis      string    `json:"kamis"`
	Jumat      string    `json:"jumat"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// PasienRequest adalah payload pendaftaran/update pasien dari form publik maupun admin.
type PasienRequest struct {
	IDPasien    int    `json:"id_pasien"`
	FullName    string `json:"full_name"`
	Nik         string `json:"nik"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"` // format YYYY-MM-DD
	Address     string `json:"address"`
	Senin       string `json:"senin"`
	Selasa      string `json:"selasa"`
	Rabu        string `json:"rabu"`
	Kamis       string `json:"kamis"`
	Jumat       string `json:"jumat"`
}
