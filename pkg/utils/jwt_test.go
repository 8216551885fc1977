package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDanValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "kunci-rahasia-test")

	token, err := GenerateJWTToken(3, "dokter", "dr. Sari", "dokter@klinik.test", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.IDProfile)
	assert.Equal(t, "dokter", claims.Role)
	assert.Equal(t, "dr. Sari", claims.NamaLengkap)
	assert.Equal(t, "dokter@klinik.test", claims.Email)
}

func TestValidateJWT_Kedaluwarsa(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "kunci-rahasia-test")

	token, err := GenerateJWTToken(3, "dokter", "dr. Sari", "dokter@klinik.test", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateJWTToken(token)
	assert.Error(t, err)
}

func TestValidateJWT_KunciBerbeda(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "kunci-pertama")
	token, err := GenerateJWTToken(3, "admin", "Admin", "admin@klinik.test", time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "kunci-kedua")
	_, err = ValidateJWTToken(token)
	assert.Error(t, err)
}

func TestGenerateJWT_TanpaSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := GenerateJWTToken(1, "admin", "Admin", "admin@klinik.test", time.Now().Add(time.Hour))
	assert.Error(t, err)
}
