package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/c14220110/klinik-backend/internal/manajemen/models"
)

func setupAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	svc := NewAuthService(db)
	cleanup := func() { db.Close() }
	return svc, mock, cleanup
}

func stafRow(t *testing.T, password string) *sqlmock.Rows {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return sqlmock.NewRows([]string{
		"id", "email", "password", "full_name", "role", "phone_number", "address", "created_at",
	}).AddRow(3, "dokter@klinik.test", string(hash), "dr. Sari", models.RoleDokter, "0811111111", nil, time.Now())
}

func TestAuthenticateStaf_Sukses(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery("FROM profiles").
		WithArgs("dokter@klinik.test").
		WillReturnRows(stafRow(t, "rahasia123"))

	staf, err := svc.AuthenticateStaf("dokter@klinik.test", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, 3, staf.IDProfile)
	assert.Equal(t, models.RoleDokter, staf.Role)
	assert.Equal(t, "dr. Sari", staf.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateStaf_PasswordSalah(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery("FROM profiles").
		WithArgs("dokter@klinik.test").
		WillReturnRows(stafRow(t, "rahasia123"))

	_, err := svc.AuthenticateStaf("dokter@klinik.test", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateStaf_EmailTidakAda(t *testing.T) {
	svc, mock, cleanup := setupAuthService(t)
	defer cleanup()

	mock.ExpectQuery("FROM profiles").
		WithArgs("tidakada@klinik.test").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.AuthenticateStaf("tidakada@klinik.test", "apapun")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}
