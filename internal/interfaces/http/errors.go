package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tiendapatitas/ventas-api/internal/application/dto"
	"github.com/tiendapatitas/ventas-api/internal/domain"
)

// respondError traduce la taxonomía de errores de dominio a códigos HTTP.
// ErrNoMatch se responde como 404 con {mensaje}: una búsqueda vacía no es un
// error verdadero y el cuerpo lo distingue.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoMatch):
		return c.Status(fiber.StatusNotFound).JSON(dto.MensajeResponse{Mensaje: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}
