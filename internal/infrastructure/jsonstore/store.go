// Package jsonstore implementa repository.DocumentStore sobre archivos JSON:
// una colección = un archivo <nombre>.json con un arreglo de registros.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tiendapatitas/ventas-api/internal/domain"
	"github.com/tiendapatitas/ventas-api/internal/domain/repository"
)

// Asegura que Store implementa el puerto de persistencia.
var _ repository.DocumentStore = (*Store)(nil)

// Store lee y escribe colecciones completas en un directorio de datos.
// Mantiene un mutex por colección: las operaciones de lectura-modificación-
// escritura corren bajo Tx con exclusión mutua, de modo que dos creaciones
// de venta concurrentes no puedan validar stock sobre un estado viejo.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New construye el store sobre dir.
func New(dir string) *Store {
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// Read carga el contenido completo de una colección en out. Un archivo
// ausente o corrupto se reporta como domain.ErrStorage: la operación en
// curso falla sin reintentos.
func (s *Store) Read(name string, out any) error {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		return domain.Storagef("colección %s no disponible: %v", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.Storagef("colección %s corrupta: %v", name, err)
	}
	return nil
}

// Ensure crea las colecciones que falten como arreglos vacíos, para que un
// despliegue nuevo responda listas vacías en lugar de fallar cada lectura.
func (s *Store) Ensure(names ...string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return domain.Storagef("crear directorio de datos: %v", err)
	}
	for _, name := range names {
		if _, err := os.Stat(s.path(name)); err == nil {
			continue
		}
		if err := s.writeDoc(name, []struct{}{}); err != nil {
			return err
		}
	}
	return nil
}

// Tx adquiere los locks de las colecciones indicadas (en orden estable para
// evitar interbloqueos), ejecuta fn y, solo si fn retorna nil, escribe todas
// las colecciones preparadas con Stage. Un error de fn deja el disco intacto.
func (s *Store) Tx(fn func(tx repository.Tx) error, collections ...string) error {
	names := append([]string(nil), collections...)
	sort.Strings(names)
	for _, n := range names {
		s.lockFor(n).Lock()
	}
	defer func() {
		for i := len(names) - 1; i >= 0; i-- {
			s.lockFor(names[i]).Unlock()
		}
	}()

	tx := &tx{store: s, locked: names, staged: make(map[string]any)}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit()
}

func (s *Store) writeDoc(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return domain.Storagef("serializar colección %s: %v", name, err)
	}
	return s.writeRaw(name, raw)
}

// writeRaw reemplaza el documento completo de la colección: escribe a un
// archivo temporal y lo renombra, para no dejar un documento a medias.
func (s *Store) writeRaw(name string, raw []byte) error {
	tmp, err := s.writeTemp(name, raw)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		os.Remove(tmp)
		return domain.Storagef("escribir colección %s: %v", name, err)
	}
	return nil
}

// writeTemp vuelca raw a un archivo temporal del directorio de datos y
// devuelve su ruta, listo para renombrar sobre el documento real.
func (s *Store) writeTemp(name string, raw []byte) (string, error) {
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return "", domain.Storagef("escribir colección %s: %v", name, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", domain.Storagef("escribir colección %s: %v", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", domain.Storagef("escribir colección %s: %v", name, err)
	}
	return tmp.Name(), nil
}

type tx struct {
	store  *Store
	locked []string
	staged map[string]any
}

func (t *tx) holds(name string) bool {
	for _, n := range t.locked {
		if n == name {
			return true
		}
	}
	return false
}

func (t *tx) Read(name string, out any) error {
	if !t.holds(name) {
		return domain.Storagef("colección %s no bloqueada por la transacción", name)
	}
	return t.store.Read(name, out)
}

func (t *tx) Stage(name string, v any) {
	t.staged[name] = v
}

// commit confirma en dos fases: serializa y vuelca todo lo preparado a
// archivos temporales y recién con todos listos los renombra sobre los
// documentos reales. Una falla antes de los renames limpia los temporales y
// deja el disco intacto; los renames mismos son la ventana residual.
func (t *tx) commit() error {
	names := make([]string, 0, len(t.staged))
	for name := range t.staged {
		if !t.holds(name) {
			return domain.Storagef("colección %s preparada sin bloquear", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	tmps := make(map[string]string, len(names))
	limpiar := func() {
		for _, tmp := range tmps {
			os.Remove(tmp)
		}
	}
	for _, name := range names {
		raw, err := json.MarshalIndent(t.staged[name], "", "  ")
		if err != nil {
			limpiar()
			return domain.Storagef("serializar colección %s: %v", name, err)
		}
		tmp, err := t.store.writeTemp(name, raw)
		if err != nil {
			limpiar()
			return err
		}
		tmps[name] = tmp
	}
	for i, name := range names {
		if err := os.Rename(tmps[name], t.store.path(name)); err != nil {
			for _, pendiente := range names[i:] {
				os.Remove(tmps[pendiente])
			}
			return domain.Storagef("escribir colección %s: %v", name, err)
		}
	}
	return nil
}
