package models

import "time"

// ResepItemPending adalah satu baris resep yang belum ditebus.
type ResepItemPending struct {
	IDResep     int     `json:"id_resep"`
	IDObat      int     `json:"id_obat"`
	NamaObat    string  `json:"nama_obat"`
	Jumlah      int     `json:"jumlah"`
	Dosis       string  `json:"dosis"`
	HargaSatuan float64 `json:"harga_satuan"`
	Satuan      string  `json:"satuan"`
	Subtotal    float64 `json:"subtotal"`
}

// ResepGroup mengelompokkan resep pending per konsultasi, bentuk yang dilihat
// apoteker pada layar pengambilan obat.
type ResepGroup struct {
	IDKonsultasi int                `json:"id_konsultasi"`
	IDAntrian    int                `json:"id_antrian"`
	IDPasien     int                `json:"id_pasien"`
	NamaPasien   string             `json:"nama_pasien"`
	Symptoms     string             `json:"symptoms"`
	Diagnosis    string             `json:"diagnosis"`
	DoctorNotes  string             `json:"doctor_notes"`
	Items        []ResepItemPending `json:"items"`
	Total        float64            `json:"total"`
}

// Transaksi merepresentasikan satu baris tabel transactions (append-only).
type Transaksi struct {
	IDTransaksi int       `json:"id_transaksi"`
	Reference   string    `json:"reference"`
	IDAntrian   int       `json:"id_antrian"`
	IDPasien    int       `json:"id_pasien"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
