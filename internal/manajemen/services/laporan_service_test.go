package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	antrianmodels "github.com/c14220110/klinik-backend/internal/antrian/models"
)

func setupLaporanService(t *testing.T) (*LaporanService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	svc := NewLaporanService(db)
	cleanup := func() { db.Close() }
	return svc, mock, cleanup
}

func TestGetPendapatanHarian(t *testing.T) {
	svc, mock, cleanup := setupLaporanService(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"tanggal", "total"}).
		AddRow("2026-08-01", 150000.0).
		AddRow("2026-08-02", 275000.0)

	mock.ExpectQuery("FROM transactions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	start, _ := time.Parse("2006-01-02", "2026-08-01")
	end, _ := time.Parse("2006-01-02", "2026-08-07")

	list, err := svc.GetPendapatanHarian(start, end)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-08-01", list[0].Tanggal)
	assert.Equal(t, 275000.0, list[1].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetKonsultasiPerDokter(t *testing.T) {
	svc, mock, cleanup := setupLaporanService(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "full_name", "jumlah"}).
		AddRow(3, "dr. Sari", 12).
		AddRow(5, "dr. Agus", 8)

	mock.ExpectQuery("FROM consultations c").WillReturnRows(rows)

	list, err := svc.GetKonsultasiPerDokter()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "dr. Sari", list[0].NamaDokter)
	assert.Equal(t, 12, list[0].Jumlah)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetObatTerlaris_DefaultLimit(t *testing.T) {
	svc, mock, cleanup := setupLaporanService(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "jumlah"}).
		AddRow(1, "Paracetamol 500mg", 40)

	// limit <= 0 diganti default 10
	mock.ExpectQuery("FROM prescriptions pr").
		WithArgs(10).
		WillReturnRows(rows)

	list, err := svc.GetObatTerlaris(0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Paracetamol 500mg", list[0].NamaObat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboard(t *testing.T) {
	svc, mock, cleanup := setupLaporanService(t)
	defer cleanup()

	for _, pair := range []struct {
		status string
		cnt    int
	}{
		{antrianmodels.StatusMenunggu, 4},
		{antrianmodels.StatusSedangKonsultasi, 1},
		{antrianmodels.StatusSelesai, 7},
		{antrianmodels.StatusBatal, 2},
	} {
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(pair.status).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(pair.cnt))
	}
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(425000.0))

	d, err := svc.GetDashboard()
	require.NoError(t, err)
	assert.Equal(t, 4, d.Menunggu)
	assert.Equal(t, 1, d.SedangKonsultasi)
	assert.Equal(t, 7, d.Selesai)
	assert.Equal(t, 2, d.Batal)
	assert.Equal(t, 14, d.TotalAntrian)
	assert.Equal(t, 425000.0, d.PendapatanHariIni)
	assert.NoError(t, mock.ExpectationsWereMet())
}
