package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendapatitas/ventas-api/internal/application/dto"
	"github.com/tiendapatitas/ventas-api/internal/application/usecase"
)

// VentaHandler maneja las peticiones HTTP de ventas.
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// List responde GET /api/ventas con paginación por offset y limit.
func (h *VentaHandler) List(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	// limit ausente equivale al largo total; uno explícito se acota a >= 0.
	limit := -1
	if c.Query("limit") != "" {
		limit = c.QueryInt("limit", 0)
		if limit < 0 {
			limit = 0
		}
	}
	out, err := h.uc.List(offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID responde GET /api/ventas/:id.
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	venta, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}

// Create registra la venta y descuenta stock en una sola
// transacción; cualquier validación fallida deja todo como estaba.
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	venta, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// Search busca ventas por múltiples criterios combinados (POST /api/ventas/buscar).
func (h *VentaHandler) Search(c *fiber.Ctx) error {
	var in dto.BuscarVentasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Search(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update solo permite cambiar direccion y metodo_pago.
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	var in dto.UpdateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	venta, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"actualizado": venta})
}

// Delete elimina la venta y repone el stock de sus líneas.
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	eliminada, err := h.uc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"eliminado": eliminada})
}
