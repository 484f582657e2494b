package dto

import "github.com/tiendapatitas/ventas-api/internal/domain/entity"

// Mensaje de validación para la creación de ventas.
const MsgVentaCamposRequeridos = "id_usuario, direccion, metodo_pago y productos[] son requeridos"

// LineaVentaRequest producto solicitado dentro de una venta.
type LineaVentaRequest struct {
	ID       int `json:"id"`
	Cantidad int `json:"cantidad"`
}

// CreateVentaRequest entrada para crear una venta. Las líneas se validan una
// por una contra el catálogo, con mensajes que nombran el producto.
type CreateVentaRequest struct {
	IDUsuario  int                 `json:"id_usuario" validate:"required"`
	Direccion  string              `json:"direccion" validate:"required"`
	MetodoPago string              `json:"metodo_pago" validate:"required"`
	Productos  []LineaVentaRequest `json:"productos" validate:"required,min=1"`
}

// UpdateVentaRequest solo direccion y metodo_pago son mutables.
type UpdateVentaRequest struct {
	Direccion  *string `json:"direccion"`
	MetodoPago *string `json:"metodo_pago"`
}

// BuscarVentasRequest criterios de búsqueda; todos opcionales y combinados
// con AND. Las fechas son inclusivas y comparan solo la porción de día.
type BuscarVentasRequest struct {
	IDUsuario  *int   `json:"id_usuario"`
	FechaDesde string `json:"fecha_desde"`
	FechaHasta string `json:"fecha_hasta"`
	IDProducto *int   `json:"id_producto"`
}

// VentasPageResponse página del listado de ventas. Limit es el tamaño real
// de la página devuelta.
type VentasPageResponse struct {
	Total  int            `json:"total"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
	Data   []entity.Venta `json:"data"`
}

// BuscarVentasResponse resultado de la búsqueda por criterios.
type BuscarVentasResponse struct {
	Total int            `json:"total"`
	Data  []entity.Venta `json:"data"`
}
