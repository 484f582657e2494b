package entity

import "github.com/shopspring/decimal"

// PrimerIDVenta primer id asignado a una venta; los siguientes son max+1.
const PrimerIDVenta = 4001

// Venta representa una transacción de venta. Fecha, Total y Productos son
// inmutables después de la creación; solo Direccion y MetodoPago se pueden
// actualizar.
type Venta struct {
	ID         int             `json:"id"`
	IDUsuario  int             `json:"id_usuario"`
	Fecha      string          `json:"fecha"`
	Direccion  string          `json:"direccion"`
	MetodoPago string          `json:"metodo_pago"`
	Productos  []DetalleVenta  `json:"productos"`
	CostoEnvio decimal.Decimal `json:"costo_envio"`
	Total      decimal.Decimal `json:"total"`
}

// DetalleVenta es una línea de venta: copia inmutable del producto al momento
// de la compra. Ediciones posteriores del catálogo no la afectan.
type DetalleVenta struct {
	ID             int             `json:"id"`
	Nombre         string          `json:"nombre"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}
