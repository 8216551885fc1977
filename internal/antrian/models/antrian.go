package models

import "time"

// Status antrian mengikuti label domain klinik.
const (
	StatusMenunggu         = "menunggu"
	StatusSedangKonsultasi = "sedang_konsultasi"
	StatusSelesai          = "selesai"
	StatusBatal            = "batal"
)

// IsValidStatus memeriksa apakah sebuah string adalah status antrian yang dikenal.
func IsValidStatus(s string) bool {
	switch s {
	case StatusMenunggu, StatusSedangKonsultasi, StatusSelesai, StatusBatal:
		return true
	}
	return false
}

// IsTerminalStatus menandai status akhir yang tidak boleh ditimpa lagi.
func IsTerminalStatus(s string) bool {
	return s == StatusSelesai || s == StatusBatal
}

// Antrian merepresentasikan satu baris tabel appointments.
type Antrian struct {
	IDAntrian       int       `json:"id_antrian"`
	IDPasien        int       `json:"id_pasien"`
	IDDokter        int       `json:"id_dokter"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	QueueNumber     int       `json:"queue_number"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JanjiRequest adalah payload pembuatan janji temu oleh dokter.
type JanjiRequest struct {
	IDPasien int    `json:"id_pasien"`
	IDDokter int    `json:"id_dokter"`
	Tanggal  string `json:"tanggal"` // format YYYY-MM-DD
	Jam      string `json:"jam"`     // format HH:MM
}
