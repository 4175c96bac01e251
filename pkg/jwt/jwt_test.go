package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/asset-balance-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func session() pkgjwt.Session {
	return pkgjwt.Session{
		SessionID: "sess-1",
		UserID:    "user1",
		UserName:  "John Doe",
		Role:      "logistics",
		BaseID:    "base1",
	}
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "asset-balance-test", 60, session())
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	s, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", s.SessionID)
	assert.Equal(t, "user1", s.UserID)
	assert.Equal(t, "John Doe", s.UserName)
	assert.Equal(t, "logistics", s.Role)
	assert.Equal(t, "base1", s.BaseID)
	assert.WithinDuration(t, time.Now(), s.IssuedAt, time.Minute)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "asset-balance-test", -1, session())
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "asset-balance-test", 60, session())
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "x", 60, session())
	assert.Error(t, err)
}
