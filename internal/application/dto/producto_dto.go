package dto

import "github.com/shopspring/decimal"

// Mensajes de validación de entrada. Cada DTO con tags `validate` tiene un
// único mensaje asociado; el caso de uso y cualquier otra superficie que
// valide el mismo DTO responden con el mismo texto.
const (
	MsgProductoCamposRequeridos = "nombre, marca, categoria y precio son requeridos"
	MsgBusquedaTextoRequerido   = "debe ingresar texto a buscar"
)

// CreateProductoRequest entrada para crear un producto. Los campos opcionales
// son punteros para distinguir "ausente" de un valor cero explícito.
type CreateProductoRequest struct {
	Nombre     string           `json:"nombre" validate:"required"`
	Marca      string           `json:"marca" validate:"required"`
	Categoria  string           `json:"categoria" validate:"required"`
	Precio     *decimal.Decimal `json:"precio" validate:"required"`
	Stock      *int             `json:"stock"`
	Disponible *bool            `json:"disponible"`
	Desc       *string          `json:"desc"`
	Imagen     *string          `json:"imagen"`
}

// UpdateProductoRequest entrada para actualización parcial: solo los campos
// presentes en el cuerpo se aplican.
type UpdateProductoRequest struct {
	Nombre     *string          `json:"nombre"`
	Marca      *string          `json:"marca"`
	Categoria  *string          `json:"categoria"`
	Precio     *decimal.Decimal `json:"precio"`
	Stock      *int             `json:"stock"`
	Disponible *bool            `json:"disponible"`
	Desc       *string          `json:"desc"`
	Imagen     *string          `json:"imagen"`
}

// BuscarProductosRequest búsqueda por texto libre sobre nombre o marca.
type BuscarProductosRequest struct {
	Texto string `json:"texto" validate:"required"`
}
