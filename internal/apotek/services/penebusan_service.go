package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	antrianmodels "github.com/c14220110/klinik-backend/internal/antrian/models"
	"github.com/c14220110/klinik-backend/internal/apotek/models"
)

var (
	ErrResepTidakAda = errors.New("tidak ada resep pending untuk konsultasi ini")
	ErrStokKurang    = errors.New("stok obat tidak mencukupi")
)

type PenebusanService struct {
	DB *sql.DB
}

func NewPenebusanService(db *sql.DB) *PenebusanService {
	return &PenebusanService{DB: db}
}

// GetResepPending mengambil semua resep berstatus pending, dikelompokkan per
// konsultasi. Satu query join terurut id konsultasi, dikelompokkan sambil
// di-scan; subtotal dan total dihitung dari jumlah kali harga satuan.
func (s *PenebusanService) GetResepPending() ([]models.ResepGroup, error) {
	rows, err := s.DB.Query(`
		SELECT c.id, a.id, p.id, p.full_name,
		       c.symptoms, c.diagnosis, c.doctor_notes,
		       pr.id, m.id, m.name, pr.quantity, pr.dosage_instructions, m.unit_price, m.unit
		FROM prescriptions pr
		JOIN medications m ON pr.medication_id = m.id
		JOIN consultations c ON pr.consultation_id = c.id
		JOIN appointments a ON c.appointment_id = a.id
		JOIN patients p ON a.patient_id = p.id
		WHERE pr.status = 'pending'
		ORDER BY c.id ASC, pr.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ResepGroup
	var current *models.ResepGroup
	var lastID int

	for rows.Next() {
		var (
			idKonsultasi, idAntrian, idPasien int
			namaPasien, symptoms, diagnosis   string
			doctorNotes                       sql.NullString
			idResep, idObat, jumlah           int
			namaObat, satuan                  string
			dosis                             sql.NullString
			hargaSatuan                       float64
		)
		if err := rows.Scan(&idKonsultasi, &idAntrian, &idPasien, &namaPasien,
			&symptoms, &diagnosis, &doctorNotes,
			&idResep, &idObat, &namaObat, &jumlah, &dosis, &hargaSatuan, &satuan); err != nil {
			return nil, err
		}

		if current == nil || idKonsultasi != lastID {
			if current != nil {
				result = append(result, *current)
			}
			current = &models.ResepGroup{
				IDKonsultasi: idKonsultasi,
				IDAntrian:    idAntrian,
				IDPasien:     idPasien,
				NamaPasien:   namaPasien,
				Symptoms:     symptoms,
				Diagnosis:    diagnosis,
				DoctorNotes:  doctorNotes.String,
			}
			lastID = idKonsultasi
		}

		subtotal := float64(jumlah) * hargaSatuan
		current.Items = append(current.Items, models.ResepItemPending{
			IDResep:     idResep,
			IDObat:      idObat,
			NamaObat:    namaObat,
			Jumlah:      jumlah,
			Dosis:       dosis.String,
			HargaSatuan: hargaSatuan,
			Satuan:      satuan,
			Subtotal:    subtotal,
		})
		current.Total += subtotal
	}
	if current != nil {
		result = append(result, *current)
	}
	return result, rows.Err()
}

// TebusResep menjalankan pipeline pembayaran dalam satu transaksi:
//   - kunci dan baca semua resep pending milik konsultasi tersebut,
//   - tandai resep itu (dan hanya itu) sebagai dispensed,
//   - kurangi stok tiap obat, gagal total bila ada stok yang tidak cukup,
//   - tandai antrian selesai,
//   - catat tepat satu transaksi dengan total seluruh item.
// Tidak ada langkah yang tersisa setengah jalan: gagal berarti rollback semua.
func (s *PenebusanService) TebusResep(idKonsultasi int) (*models.Transaksi, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}

	// 1. Baca dan kunci resep pending konsultasi ini.
	rows, err := tx.Query(`
		SELECT pr.id, pr.medication_id, pr.quantity, m.name, m.unit_price
		FROM prescriptions pr
		JOIN medications m ON pr.medication_id = m.id
		WHERE pr.consultation_id = ? AND pr.status = 'pending'
		FOR UPDATE`, idKonsultasi)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	type lineItem struct {
		idResep     int
		idObat      int
		jumlah      int
		namaObat    string
		hargaSatuan float64
	}
	var items []lineItem
	for rows.Next() {
		var it lineItem
		if err := rows.Scan(&it.idResep, &it.idObat, &it.jumlah, &it.namaObat, &it.hargaSatuan); err != nil {
			rows.Close()
			tx.Rollback()
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		tx.Rollback()
		return nil, err
	}
	rows.Close()

	if len(items) == 0 {
		tx.Rollback()
		return nil, ErrResepTidakAda
	}

	var total float64
	for _, it := range items {
		total += float64(it.jumlah) * it.hargaSatuan
	}

	// 2. Tandai dispensed, hanya grup ini.
	res, err := tx.Exec(`
		UPDATE prescriptions SET status = 'dispensed'
		WHERE consultation_id = ? AND status = 'pending'`, idKonsultasi)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if affected != int64(len(items)) {
		tx.Rollback()
		return nil, fmt.Errorf("jumlah resep yang diupdate tidak sesuai (%d dari %d)", affected, len(items))
	}

	// 3. Kurangi stok. Klausa stock >= jumlah menjaga stok tidak pernah negatif.
	for _, it := range items {
		res, err := tx.Exec(`
			UPDATE medications SET stock = stock - ?
			WHERE id = ? AND stock >= ?`, it.jumlah, it.idObat, it.jumlah)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if affected == 0 {
			tx.Rollback()
			return nil, fmt.Errorf("%w: %s", ErrStokKurang, it.namaObat)
		}
	}

	// 4. Antrian milik konsultasi ini selesai. Antrian yang sudah selesai dari
	// langkah dokter dibiarkan; yang batal tidak disentuh.
	var idAntrian, idPasien int
	err = tx.QueryRow(`
		SELECT a.id, a.patient_id
		FROM consultations c
		JOIN appointments a ON c.appointment_id = a.id
		WHERE c.id = ?`, idKonsultasi,
	).Scan(&idAntrian, &idPasien)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if _, err := tx.Exec(`
		UPDATE appointments SET status = ?, updated_at = NOW()
		WHERE id = ? AND status <> ?`,
		antrianmodels.StatusSelesai, idAntrian, antrianmodels.StatusBatal); err != nil {
		tx.Rollback()
		return nil, err
	}

	// 5. Tepat satu transaksi untuk pipeline run ini.
	reference := uuid.NewString()
	resTx, err := tx.Exec(`
		INSERT INTO transactions (reference, appointment_id, patient_id, total_amount)
		VALUES (?, ?, ?, ?)`,
		reference, idAntrian, idPasien, total,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("gagal mencatat transaksi: %v", err)
	}
	idTransaksi, err := resTx.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &models.Transaksi{
		IDTransaksi: int(idTransaksi),
		Reference:   reference,
		IDAntrian:   idAntrian,
		IDPasien:    idPasien,
		TotalAmount: total,
	}, nil
}
