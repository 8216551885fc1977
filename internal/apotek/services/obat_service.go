package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/c14220110/klinik-backend/internal/apotek/models"
)

var (
	ErrObatNotFound     = errors.New("obat tidak ditemukan")
	ErrObatDipakaiResep = errors.New("obat tidak dapat dihapus karena dirujuk oleh resep")
)

type ObatService struct {
	DB *sql.DB
}

func NewObatService(db *sql.DB) *ObatService {
	return &ObatService{DB: db}
}

// GetObatList menampilkan daftar obat terurut nama dengan pencarian opsional.
func (s *ObatService) GetObatList(q string) ([]models.Obat, error) {
	query := `
		SELECT id, name, stock, unit_price, unit, category,
		       DATE_FORMAT(expiry_date, '%Y-%m-%d'), created_at
		FROM medications
	`
	params := []interface{}{}
	if q != "" {
		query += " WHERE LOWER(name) LIKE ?"
		params = append(params, "%"+strings.ToLower(q)+"%")
	}
	query += " ORDER BY name ASC"

	rows, err := s.DB.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Obat
	for rows.Next() {
		var o models.Obat
		var category, expiry sql.NullString
		if err := rows.Scan(&o.IDObat, &o.Name, &o.Stock, &o.UnitPrice, &o.Unit, &category, &expiry, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Category = category.String
		o.ExpiryDate = expiry.String
		list = append(list, o)
	}
	return list, rows.Err()
}

// TambahObat menambahkan record obat baru.
func (s *ObatService) TambahObat(req models.ObatRequest) (int64, error) {
	res, err := s.DB.Exec(`
		INSERT INTO medications (name, stock, unit_price, unit, category, expiry_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		req.Name, req.Stock, req.UnitPrice, req.Unit, req.Category, nullIfEmpty(req.ExpiryDate),
	)
	if err != nil {
		return 0, fmt.Errorf("gagal menambahkan obat: %v", err)
	}
	return res.LastInsertId()
}

// UpdateObat mengganti seluruh field record obat yang diedit.
func (s *ObatService) UpdateObat(req models.ObatRequest) error {
	var dummy int
	if err := s.DB.QueryRow("SELECT 1 FROM medications WHERE id = ?", req.IDObat).Scan(&dummy); err != nil {
		if err == sql.ErrNoRows {
			return ErrObatNotFound
		}
		return err
	}

	_, err := s.DB.Exec(`
		UPDATE medications
		SET name = ?, stock = ?, unit_price = ?, unit = ?, category = ?, expiry_date = ?
		WHERE id = ?`,
		req.Name, req.Stock, req.UnitPrice, req.Unit, req.Category, nullIfEmpty(req.ExpiryDate), req.IDObat,
	)
	if err != nil {
		return fmt.Errorf("gagal mengupdate obat: %v", err)
	}
	return nil
}

// HapusObat menghapus record obat. Obat yang pernah diresepkan ditolak supaya
// riwayat resep tidak kehilangan rujukannya.
func (s *ObatService) HapusObat(idObat int) error {
	var refs int
	if err := s.DB.QueryRow("SELECT COUNT(*) FROM prescriptions WHERE medication_id = ?", idObat).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrObatDipakaiResep
	}

	res, err := s.DB.Exec("DELETE FROM medications WHERE id = ?", idObat)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrObatNotFound
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
