package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendapatitas/ventas-api/internal/application/dto"
	"github.com/tiendapatitas/ventas-api/internal/application/usecase"
	"github.com/tiendapatitas/ventas-api/internal/domain"
	"github.com/tiendapatitas/ventas-api/internal/domain/entity"
	"github.com/tiendapatitas/ventas-api/pkg/token"
)

var issuerTest = token.StaticIssuer{Token: "token-de-prueba"}

func TestCrearUsuario_RedactaYAsignaID(t *testing.T) {
	store := newStore(t, nil, []entity.Usuario{usuarioBase(1, "ana@example.com")}, nil)
	uc := usecase.NewUsuarioUseCase(store, issuerTest)

	creado, err := uc.Create(dto.CreateUsuarioRequest{
		Nombre:     "Martín",
		Apellido:   "Suárez",
		Email:      "martin@example.com",
		Contrasena: "supersecreta",
		Telefono:   "+54 11 5555-0102",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, creado.ID)
	assert.Equal(t, "martin@example.com", creado.Email)
	assert.NotNil(t, creado.Mascotas, "mascotas ausente se normaliza a secuencia vacía")

	sinContrasena(t, creado)
}

func TestCrearUsuario_EmailDuplicado(t *testing.T) {
	store := newStore(t, nil, []entity.Usuario{usuarioBase(1, "ana@example.com")}, nil)
	uc := usecase.NewUsuarioUseCase(store, issuerTest)

	_, err := uc.Create(dto.CreateUsuarioRequest{
		Nombre: "Otra", Apellido: "Ana", Email: "ana@example.com", Contrasena: "x",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCrearUsuario_CamposRequeridos(t *testing.T) {
	store := newStore(t, nil, nil, nil)
	uc := usecase.NewUsuarioUseCase(store, issuerTest)

	casos := []dto.CreateUsuarioRequest{
		{Apellido: "a", Email: "e", Contrasena: "c"},
		{Nombre: "n", Email: "e", Contrasena: "c"},
		{Nombre: "n", Apellido: "a", Contrasena: "c"},
		{Nombre: "n", Apellido: "a", Email: "e"},
	}
	for _, in := range casos {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.EqualError(t, err, dto.MsgUsuarioCamposRequeridos)
	}
}

func TestLogin_CoincidenciaExacta(t *testing.T) {
	store := newStore(t, nil, []entity.Usuario{usuarioBase(1, "ana@example.com")}, nil)
	uc := usecase.NewUsuarioUseCase(store, issuerTest)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Contrasena: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "token-de-prueba", out.Token)
	assert.Equal(t, 1, out.User.ID)
	sinContrasena(t, &out.User)

	// contraseña equivocada
	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Contrasena: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// email inexistente
	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Contrasena: "secreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// campos faltantes
	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmisorJWT(t *testing.T) {
	store := newStore(t, nil, []entity.Usuario{usuarioBase(7, "ana@example.com")}, nil)
	issuer := token.NewJWTIssuer("secreto-de-test", "ventas-api-test", 60)
	uc := usecase.NewUsuarioUseCase(store, issuer)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Contrasena: "secreta"})
	require.NoError(t, err)

	userID, email, err := issuer.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
	assert.Equal(t, "ana@example.com", email)
}

func TestActualizarUsuario_Parcial(t *testing.T) {
	store := newStore(t, nil, []entity.Usuario{usuarioBase(1, "ana@example.com")}, nil)
	uc := usecase.NewUsuarioUseCase(store, issuerTest)

	mascotas := []json.RawMessage{json.RawMessage(`{"nombre":"Michi","especie":"gato"}`)}
	out, err := uc.Update(1, dto.UpdateUsuarioRequest{
		Telefono: ptr("+54 11 4444-0000"),
		Mascotas: &mascotas,
	})
	require.NoError(t, err)
	assert.Equal(t, "+54 11 4444-0000", out.Telefono)
	require.Len(t, out.Mascotas, 1)
	// lo no enviado queda igual
	assert.Equal(t, "Ana", out.Nombre)
	sinContrasena(t, out)

	_, err = uc.Update(99, dto.UpdateUsuarioRequest{Nombre: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarUsuario_ConVentasFalla(t *testing.T) {
	store := newStore(t,
		nil,
		[]entity.Usuario{usuarioBase(1, "ana@example.com")},
		[]entity.Venta{ventaBase(4001, 1, 5, 1, "01-01-2024, 09:00:00")},
	)
	uc := usecase.NewUsuarioUseCase(store, issuerTest)

	_, err := uc.Delete(1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEliminarUsuario_SinVentas(t *testing.T) {
	store := newStore(t, nil, []entity.Usuario{usuarioBase(1, "ana@example.com")}, nil)
	uc := usecase.NewUsuarioUseCase(store, issuerTest)

	eliminado, err := uc.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, 1, eliminado.ID)
	sinContrasena(t, eliminado)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

// sinContrasena verifica a nivel JSON que la respuesta no contiene el campo
// de contraseña bajo ningún nombre.
func sinContrasena(t *testing.T, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var campos map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &campos))
	_, existe := campos["contraseña"]
	assert.False(t, existe, "la respuesta no debe incluir la contraseña: %s", raw)
	_, existe = campos["contrasena"]
	assert.False(t, existe)
}
