package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendashellx/pos-api/pkg/session"
)

const testSecret = "clave-de-prueba"

func testPayload() session.Payload {
	return session.Payload{
		Username:  "maria",
		TenantID:  "00000000-0000-0000-0000-000000000001",
		StoreName: "tienda_maria",
		Email:     "maria@example.com",
	}
}

// Round trip: lo que se firma es lo que se recupera.
func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := session.Generate(testSecret, "tienda-pos", 24, testPayload())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := session.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testPayload(), *payload)
}

// Un token firmado con otro secreto se rechaza.
func TestParse_SecretoIncorrecto(t *testing.T) {
	token, err := session.Generate(testSecret, "tienda-pos", 24, testPayload())
	require.NoError(t, err)

	_, err = session.Parse("otro-secreto", token)
	assert.Error(t, err)
}

// Un token sin tenant no sirve como sesión.
func TestParse_TenantVacio(t *testing.T) {
	p := testPayload()
	p.TenantID = ""
	token, err := session.Generate(testSecret, "tienda-pos", 24, p)
	require.NoError(t, err)

	_, err = session.Parse(testSecret, token)
	assert.Error(t, err)
}

// No se puede firmar sin secreto.
func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := session.Generate("", "tienda-pos", 24, testPayload())
	assert.Error(t, err)
}

// Basura no parsea.
func TestParse_TokenCorrupto(t *testing.T) {
	_, err := session.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
