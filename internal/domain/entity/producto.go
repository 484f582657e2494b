package entity

import "github.com/shopspring/decimal"

func init() {
	// Los documentos JSON persisten precios y totales como números, no como
	// strings entrecomillados.
	decimal.MarshalJSONWithoutQuotes = true
}

// Producto representa un producto del catálogo. Stock es estado compartido
// mutable: lo descuentan las ventas al crearse y lo reponen al eliminarse.
type Producto struct {
	ID         int             `json:"id"`
	Nombre     string          `json:"nombre"`
	Marca      string          `json:"marca"`
	Categoria  string          `json:"categoria"`
	Precio     decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
	Disponible bool            `json:"disponible"`
	Desc       string          `json:"desc"`
	Imagen     string          `json:"imagen"`
}
