package jsonstore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendapatitas/ventas-api/internal/domain"
	"github.com/tiendapatitas/ventas-api/internal/domain/repository"
	"github.com/tiendapatitas/ventas-api/internal/infrastructure/jsonstore"
)

type registro struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

func TestReadWrite_RoundTrip(t *testing.T) {
	store := jsonstore.New(t.TempDir())

	err := store.Tx(func(tx repository.Tx) error {
		tx.Stage("cosas", []registro{{ID: 1, Nombre: "uno"}, {ID: 2, Nombre: "dos"}})
		return nil
	}, "cosas")
	require.NoError(t, err)

	var got []registro
	require.NoError(t, store.Read("cosas", &got))
	assert.Equal(t, []registro{{ID: 1, Nombre: "uno"}, {ID: 2, Nombre: "dos"}}, got)
}

func TestRead_ColeccionAusente(t *testing.T) {
	store := jsonstore.New(t.TempDir())
	var got []registro
	err := store.Read("fantasma", &got)
	assert.True(t, errors.Is(err, domain.ErrStorage))
}

func TestRead_ColeccionCorrupta(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rota.json"), []byte("{no es un arreglo"), 0o644))

	store := jsonstore.New(dir)
	var got []registro
	err := store.Read("rota", &got)
	assert.True(t, errors.Is(err, domain.ErrStorage))
}

func TestEnsure_CreaColeccionesVacias(t *testing.T) {
	dir := t.TempDir()
	store := jsonstore.New(dir)
	require.NoError(t, store.Ensure("a", "b"))

	var got []registro
	require.NoError(t, store.Read("a", &got))
	assert.Empty(t, got)
}

// Ensure no pisa una colección existente.
func TestEnsure_PreservaContenido(t *testing.T) {
	store := jsonstore.New(t.TempDir())
	err := store.Tx(func(tx repository.Tx) error {
		tx.Stage("a", []registro{{ID: 7, Nombre: "siete"}})
		return nil
	}, "a")
	require.NoError(t, err)

	require.NoError(t, store.Ensure("a"))

	var got []registro
	require.NoError(t, store.Read("a", &got))
	assert.Len(t, got, 1)
}

// Un error del callback descarta todo lo preparado: el disco queda intacto.
func TestTx_RollbackSinEscrituras(t *testing.T) {
	store := jsonstore.New(t.TempDir())
	require.NoError(t, store.Ensure("a", "b"))

	falla := errors.New("algo salió mal")
	err := store.Tx(func(tx repository.Tx) error {
		tx.Stage("a", []registro{{ID: 1}})
		tx.Stage("b", []registro{{ID: 2}})
		return falla
	}, "a", "b")
	assert.ErrorIs(t, err, falla)

	var a, b []registro
	require.NoError(t, store.Read("a", &a))
	require.NoError(t, store.Read("b", &b))
	assert.Empty(t, a)
	assert.Empty(t, b)
}

// Las dos colecciones preparadas se confirman juntas.
func TestTx_CommitMultiColeccion(t *testing.T) {
	store := jsonstore.New(t.TempDir())
	require.NoError(t, store.Ensure("a", "b"))

	err := store.Tx(func(tx repository.Tx) error {
		var a []registro
		if err := tx.Read("a", &a); err != nil {
			return err
		}
		tx.Stage("a", append(a, registro{ID: 1}))
		tx.Stage("b", []registro{{ID: 2}})
		return nil
	}, "a", "b")
	require.NoError(t, err)

	var a, b []registro
	require.NoError(t, store.Read("a", &a))
	require.NoError(t, store.Read("b", &b))
	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
}

// Una falla al preparar el commit (acá, un valor no serializable) no deja ni
// documentos a medio confirmar ni temporales huérfanos en el directorio.
func TestTx_FallaDeCommitNoDejaRastros(t *testing.T) {
	dir := t.TempDir()
	store := jsonstore.New(dir)
	require.NoError(t, store.Ensure("a", "b"))

	err := store.Tx(func(tx repository.Tx) error {
		tx.Stage("a", []registro{{ID: 1}})
		tx.Stage("b", make(chan int))
		return nil
	}, "a", "b")
	assert.True(t, errors.Is(err, domain.ErrStorage))

	var a, b []registro
	require.NoError(t, store.Read("a", &a))
	require.NoError(t, store.Read("b", &b))
	assert.Empty(t, a, "ninguna colección debe confirmarse si otra no pudo prepararse")
	assert.Empty(t, b)

	temps, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, temps)
}

func TestTx_LeerColeccionNoBloqueada(t *testing.T) {
	store := jsonstore.New(t.TempDir())
	require.NoError(t, store.Ensure("a", "b"))

	err := store.Tx(func(tx repository.Tx) error {
		var b []registro
		return tx.Read("b", &b)
	}, "a")
	assert.True(t, errors.Is(err, domain.ErrStorage))
}

// Dos transacciones concurrentes sobre la misma colección se serializan: el
// contador termina exacto, sin lecturas viejas.
func TestTx_SerializaEscrituras(t *testing.T) {
	store := jsonstore.New(t.TempDir())
	require.NoError(t, store.Ensure("contador"))

	const n = 20
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(id int) {
			done <- store.Tx(func(tx repository.Tx) error {
				var regs []registro
				if err := tx.Read("contador", &regs); err != nil {
					return err
				}
				regs = append(regs, registro{ID: id})
				tx.Stage("contador", regs)
				return nil
			}, "contador")
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}

	var regs []registro
	require.NoError(t, store.Read("contador", &regs))
	assert.Len(t, regs, n)
}
