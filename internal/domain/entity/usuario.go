package entity

import "encoding/json"

// Usuario representa una cuenta registrada. Contrasena se persiste tal cual
// pero nunca debe salir en una respuesta: todo camino hacia afuera pasa por
// un DTO sin ese campo.
type Usuario struct {
	ID         int               `json:"id"`
	Nombre     string            `json:"nombre"`
	Apellido   string            `json:"apellido"`
	Email      string            `json:"email"`
	Contrasena string            `json:"contraseña"`
	Telefono   string            `json:"telefono"`
	Mascotas   []json.RawMessage `json:"mascotas"`
}
