package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	antrianmodels "github.com/c14220110/klinik-backend/internal/antrian/models"
)

func setupPenebusanService(t *testing.T) (*PenebusanService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	svc := NewPenebusanService(db)
	cleanup := func() { db.Close() }
	return svc, mock, cleanup
}

func TestTebusResep_Sukses(t *testing.T) {
	svc, mock, cleanup := setupPenebusanService(t)
	defer cleanup()

	idKonsultasi := 5

	mock.ExpectBegin()
	mock.ExpectQuery("FROM prescriptions pr").
		WithArgs(idKonsultasi).
		WillReturnRows(sqlmock.NewRows([]string{"id", "medication_id", "quantity", "name", "unit_price"}).
			AddRow(31, 1, 10, "Paracetamol", 500.0).
			AddRow(32, 2, 5, "Amoxicillin", 1200.0))
	mock.ExpectExec("UPDATE prescriptions SET status").
		WithArgs(idKonsultasi).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE medications SET stock").
		WithArgs(10, 1, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE medications SET stock").
		WithArgs(5, 2, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT a.id, a.patient_id").
		WithArgs(idKonsultasi).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id"}).AddRow(9, 4))
	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(antrianmodels.StatusSelesai, 9, antrianmodels.StatusBatal).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(sqlmock.AnyArg(), 9, 4, 11000.0).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectCommit()

	trx, err := svc.TebusResep(idKonsultasi)
	require.NoError(t, err)
	assert.Equal(t, 21, trx.IDTransaksi)
	assert.Equal(t, 9, trx.IDAntrian)
	assert.Equal(t, 4, trx.IDPasien)
	assert.Equal(t, 11000.0, trx.TotalAmount)
	assert.NotEmpty(t, trx.Reference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTebusResep_TidakAdaResepPending(t *testing.T) {
	svc, mock, cleanup := setupPenebusanService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM prescriptions pr").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "medication_id", "quantity", "name", "unit_price"}))
	mock.ExpectRollback()

	_, err := svc.TebusResep(5)
	assert.ErrorIs(t, err, ErrResepTidakAda)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTebusResep_StokKurangRollback(t *testing.T) {
	svc, mock, cleanup := setupPenebusanService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM prescriptions pr").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "medication_id", "quantity", "name", "unit_price"}).
			AddRow(31, 1, 99, "Paracetamol", 500.0))
	mock.ExpectExec("UPDATE prescriptions SET status").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE medications SET stock").
		WithArgs(99, 1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.TebusResep(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStokKurang)
	assert.Contains(t, err.Error(), "Paracetamol")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetResepPending_GroupingDanTotal(t *testing.T) {
	svc, mock, cleanup := setupPenebusanService(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{
		"c.id", "a.id", "p.id", "full_name", "symptoms", "diagnosis", "doctor_notes",
		"pr.id", "m.id", "m.name", "quantity", "dosage", "unit_price", "unit",
	}).
		AddRow(5, 9, 4, "Budi Santoso", "Demam", "ISPA", "catatan", 31, 1, "Paracetamol", 10, "3x1", 500.0, "tablet").
		AddRow(5, 9, 4, "Budi Santoso", "Demam", "ISPA", "catatan", 32, 2, "Amoxicillin", 5, "3x1", 1200.0, "kapsul").
		AddRow(6, 10, 7, "Siti Aminah", "Pusing", "Migrain", nil, 33, 3, "Ibuprofen", 6, "2x1", 800.0, "tablet")

	mock.ExpectQuery("FROM prescriptions pr").WillReturnRows(rows)

	groups, err := svc.GetResepPending()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, 5, groups[0].IDKonsultasi)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, 5000.0, groups[0].Items[0].Subtotal)
	assert.Equal(t, 11000.0, groups[0].Total)

	assert.Equal(t, "Siti Aminah", groups[1].NamaPasien)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, 4800.0, groups[1].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
