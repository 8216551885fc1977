package models

import "time"

// Konsultasi merepresentasikan satu baris tabel consultations,
// paling banyak satu per janji temu.
type Konsultasi struct {
	IDKonsultasi int       `json:"id_konsultasi"`
	IDAntrian    int       `json:"id_antrian"`
	Symptoms     string    `json:"symptoms"`
	Diagnosis    string    `json:"diagnosis"`
	DoctorNotes  string    `json:"doctor_notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResepItemRequest adalah satu baris obat pada form konsultasi.
type ResepItemRequest struct {
	IDObat int    `json:"id_obat"`
	Jumlah int    `json:"jumlah"`
	Dosis  string `json:"dosis"`
}

// KonsultasiRequest adalah payload "simpan & selesai" dari dokter.
type KonsultasiRequest struct {
	IDAntrian   int                `json:"id_antrian"`
	Symptoms    string             `json:"symptoms"`
	Diagnosis   string             `json:"diagnosis"`
	DoctorNotes string             `json:"doctor_notes"`
	Resep       []ResepItemRequest `json:"resep"`
}

// RiwayatKonsultasi adalah satu kunjungan pada riwayat pasien,
// beserta daftar obat yang diresepkan.
type RiwayatKonsultasi struct {
	IDKonsultasi int          `json:"id_konsultasi"`
	Tanggal      string       `json:"tanggal"`
	Diagnosis    string       `json:"diagnosis"`
	Symptoms     string       `json:"symptoms"`
	DoctorNotes  string       `json:"doctor_notes"`
	NamaDokter   string       `json:"nama_dokter"`
	Resep        []ResepItem  `json:"resep"`
}

// ResepItem adalah satu baris resep pada riwayat konsultasi.
type ResepItem struct {
	IDResep  int    `json:"id_resep"`
	NamaObat string `json:"nama_obat"`
	Jumlah   int    `json:"jumlah"`
	Dosis    string `json:"dosis"`
	Status   string `json:"status"`
}
