package dto

import "encoding/json"

// Mensajes de validación de los DTOs de cuentas.
const (
	MsgUsuarioCamposRequeridos = "nombre, apellido, email y contraseña son requeridos"
	MsgLoginCamposRequeridos   = "email y contraseña son requeridos"
)

// CreateUsuarioRequest entrada para registrar un usuario.
type CreateUsuarioRequest struct {
	Nombre     string            `json:"nombre" validate:"required"`
	Apellido   string            `json:"apellido" validate:"required"`
	Email      string            `json:"email" validate:"required"`
	Contrasena string            `json:"contraseña" validate:"required"`
	Telefono   string            `json:"telefono"`
	Mascotas   []json.RawMessage `json:"mascotas"`
}

// UpdateUsuarioRequest actualización parcial de un usuario. La contraseña no
// es actualizable por esta vía.
type UpdateUsuarioRequest struct {
	Nombre   *string            `json:"nombre"`
	Apellido *string            `json:"apellido"`
	Email    *string            `json:"email"`
	Telefono *string            `json:"telefono"`
	Mascotas *[]json.RawMessage `json:"mascotas"`
}

// LoginRequest credenciales de autenticación.
type LoginRequest struct {
	Email      string `json:"email" validate:"required"`
	Contrasena string `json:"contraseña" validate:"required"`
}

// UsuarioResponse usuario hacia afuera: nunca incluye la contraseña. Todo
// camino que emite un usuario construye este DTO.
type UsuarioResponse struct {
	ID       int               `json:"id"`
	Nombre   string            `json:"nombre"`
	Apellido string            `json:"apellido"`
	Email    string            `json:"email"`
	Telefono string            `json:"telefono"`
	Mascotas []json.RawMessage `json:"mascotas"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
