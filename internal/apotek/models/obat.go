package models

import "time"

// Obat merepresentasikan satu baris tabel medications.
type Obat struct {
	IDObat     int       `json:"id_obat"`
	Name       string    `json:"name"`
	Stock      int       `json:"stock"`
	UnitPrice  float64   `json:"unit_price"`
	Unit       string    `json:"unit"`
	Category   string    `json:"category"`
	ExpiryDate string    `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// ObatRequest adalah payload insert/update stok obat.
type ObatRequest struct {
	IDObat     int     `json:"id_obat"`
	Name       string  `json:"name"`
	Stock      int     `json:"stock"`
	UnitPrice  float64 `json:"unit_price"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	ExpiryDate string  `json:"expiry_date"` // format YYYY-MM-DD
}
