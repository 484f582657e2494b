package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tiendapatitas/ventas-api/internal/domain/entity"
	"github.com/tiendapatitas/ventas-api/internal/domain/repository"
	"github.com/tiendapatitas/ventas-api/internal/infrastructure/jsonstore"
)

// newStore arma un store en un directorio temporal con las tres colecciones
// sembradas.
func newStore(t *testing.T, productos []entity.Producto, usuarios []entity.Usuario, ventas []entity.Venta) *jsonstore.Store {
	t.Helper()
	store := jsonstore.New(t.TempDir())
	err := store.Tx(func(tx repository.Tx) error {
		tx.Stage(repository.ColProductos, productos)
		tx.Stage(repository.ColUsuarios, usuarios)
		tx.Stage(repository.ColVentas, ventas)
		return nil
	}, repository.ColProductos, repository.ColUsuarios, repository.ColVentas)
	require.NoError(t, err)
	return store
}

func productoBase(id int, nombre string, precio float64, stock int) entity.Producto {
	return entity.Producto{
		ID:         id,
		Nombre:     nombre,
		Marca:      "ACME",
		Categoria:  "alimentos",
		Precio:     decimal.NewFromFloat(precio),
		Stock:      stock,
		Disponible: true,
	}
}

func usuarioBase(id int, email string) entity.Usuario {
	return entity.Usuario{
		ID:         id,
		Nombre:     "Ana",
		Apellido:   "Pérez",
		Email:      email,
		Contrasena: "secreta",
		Mascotas:   []json.RawMessage{},
	}
}

func leerProductos(t *testing.T, store *jsonstore.Store) []entity.Producto {
	t.Helper()
	var productos []entity.Producto
	require.NoError(t, store.Read(repository.ColProductos, &productos))
	return productos
}

func leerVentas(t *testing.T, store *jsonstore.Store) []entity.Venta {
	t.Helper()
	var ventas []entity.Venta
	require.NoError(t, store.Read(repository.ColVentas, &ventas))
	return ventas
}

func stockDe(t *testing.T, store *jsonstore.Store, id int) int {
	t.Helper()
	for _, p := range leerProductos(t, store) {
		if p.ID == id {
			return p.Stock
		}
	}
	t.Fatalf("producto %d no encontrado", id)
	return 0
}

func ptr[T any](v T) *T { return &v }

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
