package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/nicklcsdev/inventario-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", "nicklcsdev@gmail.com", "admin", "inventario-api", 5)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "nicklcsdev@gmail.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "inventario-api", claims.Issuer)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", "a@b.co", "visitante", "inventario-api", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "firma incorrecta")

	expired, err := pkgjwt.Generate(secret, "u-1", "a@b.co", "visitante", "inventario-api", -1)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(secret, expired)
	assert.Error(t, err, "token expirado")

	_, err = pkgjwt.Parse(secret, "no.es.jwt")
	assert.Error(t, err)

	_, err = pkgjwt.Generate("", "u", "e", "r", "i", 1)
	assert.Error(t, err)
}
