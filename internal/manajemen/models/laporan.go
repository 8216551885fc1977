package models

// PendapatanHarian adalah satu bucket pendapatan per tanggal.
type PendapatanHarian struct {
	Tanggal string  `json:"tanggal"`
	Total   float64 `json:"total"`
}

// KonsultasiDokter adalah jumlah konsultasi per dokter.
type KonsultasiDokter struct {
	IDDokter   int    `json:"id_dokter"`
	NamaDokter string `json:"nama_dokter"`
	Jumlah     int    `json:"jumlah"`
}

// ObatTerlaris adalah frekuensi peresepan satu obat.
type ObatTerlaris struct {
	IDObat   int    `json:"id_obat"`
	NamaObat string `json:"nama_obat"`
	Jumlah   int    `json:"jumlah"`
}

// Dashboard memuat ringkasan hari berjalan untuk dashboard admin/owner.
type Dashboard struct {
	Menunggu         int     `json:"menunggu"`
	SedangKonsultasi int     `json:"sedang_konsultasi"`
	Selesai          int     `json:"selesai"`
	Batal            int     `json:"batal"`
	TotalAntrian     int     `json:"total_antrian"`
	PendapatanHariIni float64 `json:"pendapatan_hari_ini"`
}
