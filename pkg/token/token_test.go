package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendapatitas/ventas-api/pkg/token"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := token.NewJWTIssuer("secreto", "ventas-api-test", 60)

	tok, err := issuer.Issue(42, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, err := issuer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
	assert.Equal(t, "ana@example.com", email)
}

func TestJWTIssuer_SecretVacio(t *testing.T) {
	issuer := token.NewJWTIssuer("", "x", 60)
	_, err := issuer.Issue(1, "a@b.com")
	assert.Error(t, err)
}

func TestJWTIssuer_FirmaIncorrecta(t *testing.T) {
	issuer := token.NewJWTIssuer("secreto", "x", 60)
	tok, err := issuer.Issue(1, "a@b.com")
	require.NoError(t, err)

	otro := token.NewJWTIssuer("otro-secreto", "x", 60)
	_, _, err = otro.Parse(tok)
	assert.Error(t, err)
}

func TestStaticIssuer(t *testing.T) {
	issuer := token.StaticIssuer{Token: "demo-token"}
	tok, err := issuer.Issue(99, "cualquiera@example.com")
	require.NoError(t, err)
	assert.Equal(t, "demo-token", tok)
}
