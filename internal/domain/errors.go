package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUnauthorized       = errors.New("credenciales inválidas")
	ErrEmailAlreadyExists = errors.New("email ya registrado")
	ErrNoMatch            = errors.New("sin resultados")
	ErrStorage            = errors.New("almacenamiento no disponible")
)

// Error adjunta un mensaje legible a un error centinela, de modo que los
// handlers puedan clasificar con errors.Is y a la vez responder el texto
// específico de cada operación.
type Error struct {
	sentinel error
	message  string
}

func (e *Error) Error() string { return e.message }
func (e *Error) Unwrap() error { return e.sentinel }

// Wrap construye un error de dominio con mensaje propio.
func Wrap(sentinel error, format string, args ...any) error {
	return &Error{sentinel: sentinel, message: fmt.Sprintf(format, args...)}
}

func Invalidf(format string, args ...any) error {
	return Wrap(ErrInvalidInput, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return Wrap(ErrNotFound, format, args...)
}

func Conflictf(format string, args ...any) error {
	return Wrap(ErrConflict, format, args...)
}

func NoMatchf(format string, args ...any) error {
	return Wrap(ErrNoMatch, format, args...)
}

func Storagef(format string, args ...any) error {
	return Wrap(ErrStorage, format, args...)
}
