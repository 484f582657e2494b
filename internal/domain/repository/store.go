package repository

// Nombres de las colecciones persistidas como documentos JSON.
const (
	ColProductos = "productos"
	ColUsuarios  = "usuarios"
	ColVentas    = "ventas"
)

// Tx da acceso a las colecciones bloqueadas durante una transacción lógica.
// Las escrituras se acumulan con Stage y se confirman todas juntas al
// retornar sin error; si el callback falla no se escribe nada.
type Tx interface {
	Read(name string, out any) error
	Stage(name string, v any)
}

// DocumentStore define el puerto de persistencia de colecciones (DIP).
// Read sirve para consultas sueltas; Tx serializa las operaciones de
// lectura-modificación-escritura adquiriendo exclusión mutua por colección.
type DocumentStore interface {
	Read(name string, out any) error
	Tx(fn func(tx Tx) error, collections ...string) error
}
