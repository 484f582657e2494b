// Package fecha maneja el formato de marca de tiempo usado en las ventas:
// "DD-MM-YYYY, HH:mm:ss". Para búsquedas solo interesa la porción de fecha.
package fecha

import (
	"fmt"
	"strings"
	"time"
)

// Layout formato completo con el que se estampan las ventas.
const Layout = "02-01-2006, 15:04:05"

// layoutDia porción de fecha sin hora.
const layoutDia = "02-01-2006"

// Now devuelve la hora actual formateada para persistir en una venta.
func Now() string {
	return time.Now().Format(Layout)
}

// Parse interpreta la porción de fecha de un valor "DD-MM-YYYY, HH:mm:ss"
// (o "DD-MM-YYYY" a secas) descartando la hora. Una entrada malformada
// devuelve error en lugar de un valor incomparable.
func Parse(s string) (time.Time, error) {
	dia, _, _ := strings.Cut(s, ",")
	t, err := time.Parse(layoutDia, strings.TrimSpace(dia))
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}
