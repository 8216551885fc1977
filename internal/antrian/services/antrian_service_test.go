package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/klinik-backend/internal/antrian/models"
)

func setupAntrianService(t *testing.T) (*AntrianService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	svc := NewAntrianService(db)
	cleanup := func() { db.Close() }
	return svc, mock, cleanup
}

func TestBuatJanji_Sukses(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	req := models.JanjiRequest{IDPasien: 1, IDDokter: 2, Tanggal: "2026-09-01", Jam: "09:00"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_verified FROM patients").
		WithArgs(req.IDPasien).
		WillReturnRows(sqlmock.NewRows([]string{"is_verified"}).AddRow(true))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(req.IDPasien, req.Tanggal, models.StatusBatal).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(req.Tanggal).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))
	mock.ExpectExec("INSERT INTO appointments").
		WithArgs(req.IDPasien, req.IDDokter, req.Tanggal, req.Jam, 3, models.StatusMenunggu).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	idAntrian, nomorAntrian, err := svc.BuatJanji(req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), idAntrian)
	assert.Equal(t, 3, nomorAntrian)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuatJanji_PasienBelumVerifikasi(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_verified FROM patients").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"is_verified"}).AddRow(false))
	mock.ExpectRollback()

	_, _, err := svc.BuatJanji(models.JanjiRequest{IDPasien: 5, IDDokter: 2, Tanggal: "2026-09-01", Jam: "09:00"})
	assert.ErrorIs(t, err, ErrPasienBelumVerifikasi)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuatJanji_SudahPunyaJanji(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_verified FROM patients").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"is_verified"}).AddRow(true))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(1, "2026-09-01", models.StatusBatal).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, _, err := svc.BuatJanji(models.JanjiRequest{IDPasien: 1, IDDokter: 2, Tanggal: "2026-09-01", Jam: "09:00"})
	assert.ErrorIs(t, err, ErrSudahPunyaJanji)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPanggilPasien_Sukses(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.StatusSedangKonsultasi, 10, models.StatusMenunggu).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT a.queue_number, p.full_name").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"queue_number", "full_name"}).AddRow(4, "Budi Santoso"))

	detail, err := svc.PanggilPasien(10)
	require.NoError(t, err)
	assert.Equal(t, 4, detail["nomor_antrian"])
	assert.Equal(t, "Budi Santoso", detail["nama_pasien"])
	assert.Equal(t, models.StatusSedangKonsultasi, detail["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPanggilPasien_BukanMenunggu(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.StatusSedangKonsultasi, 10, models.StatusMenunggu).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM appointments").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.StatusSelesai))

	_, err := svc.PanggilPasien(10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAntrianBukanMenunggu)
	assert.Contains(t, err.Error(), models.StatusSelesai)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetKandidatPasien(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{
		"id", "full_name", "phone", "senin", "selasa", "rabu", "kamis", "jumat",
	}).
		AddRow(4, "Budi Santoso", "081234567890", "pagi", nil, "sore", nil, nil).
		AddRow(7, "Siti Aminah", "082211112222", nil, "pagi", nil, nil, "pagi")

	// Hanya pasien terverifikasi tanpa janji aktif minggu ini yang boleh muncul.
	mock.ExpectQuery("is_verified = 1").
		WithArgs(models.StatusBatal).
		WillReturnRows(rows)

	list, err := svc.GetKandidatPasien()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 4, list[0]["id_pasien"])
	assert.Equal(t, "Budi Santoso", list[0]["full_name"])
	ketersediaan, ok := list[0]["ketersediaan"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "pagi", ketersediaan["senin"])
	assert.Equal(t, "", ketersediaan["selasa"])
	assert.Equal(t, "Siti Aminah", list[1]["full_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPanggilPasien_TidakDitemukan(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.StatusSedangKonsultasi, 99, models.StatusMenunggu).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM appointments").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	_, err := svc.PanggilPasien(99)
	assert.ErrorIs(t, err, ErrAntrianNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusAntrian_StatusTidakValid(t *testing.T) {
	svc, _, cleanup := setupAntrianService(t)
	defer cleanup()

	err := svc.UpdateStatusAntrian(1, "dipanggil")
	assert.ErrorIs(t, err, ErrStatusTidakValid)
}

func TestUpdateStatusAntrian_Terminal(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT status FROM appointments").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.StatusBatal))

	err := svc.UpdateStatusAntrian(1, models.StatusMenunggu)
	assert.ErrorIs(t, err, ErrStatusTerminal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusAntrian_Sukses(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT status FROM appointments").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.StatusMenunggu))
	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.StatusSedangKonsultasi, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.UpdateStatusAntrian(1, models.StatusSedangKonsultasi)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBatalkanAntrian_Sukses(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.StatusBatal, 3, models.StatusMenunggu, models.StatusSedangKonsultasi).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svc.BatalkanAntrian(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBatalkanAntrian_SudahSelesai(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.StatusBatal, 3, models.StatusMenunggu, models.StatusSedangKonsultasi).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM appointments").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	err := svc.BatalkanAntrian(3)
	assert.ErrorIs(t, err, ErrStatusTerminal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBatalkanAntrian_QueryErrorDiteruskan(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	dbErr := errors.New("driver: bad connection")

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.StatusBatal, 3, models.StatusMenunggu, models.StatusSedangKonsultasi).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM appointments").
		WithArgs(3).
		WillReturnError(dbErr)

	err := svc.BatalkanAntrian(3)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrStatusTerminal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAntrianToday_FilterStatus(t *testing.T) {
	svc, mock, cleanup := setupAntrianService(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{
		"id", "queue_number", "appointment_time", "status", "patient_id", "patient_name", "doctor_name",
	}).
		AddRow(1, 1, "08:00", models.StatusMenunggu, 11, "Budi Santoso", "dr. Sari").
		AddRow(2, 2, "08:30", models.StatusMenunggu, 12, "Siti Aminah", "dr. Sari")

	mock.ExpectQuery("FROM appointments a").
		WithArgs(models.StatusMenunggu).
		WillReturnRows(rows)

	list, err := svc.GetAntrianToday(models.StatusMenunggu)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0]["nomor_antrian"])
	assert.Equal(t, "Siti Aminah", list[1]["nama_pasien"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAntrianToday_FilterTidakValid(t *testing.T) {
	svc, _, cleanup := setupAntrianService(t)
	defer cleanup()

	_, err := svc.GetAntrianToday("dipanggil")
	assert.ErrorIs(t, err, ErrStatusTidakValid)
}
