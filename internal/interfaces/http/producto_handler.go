package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendapatitas/ventas-api/internal/application/dto"
	"github.com/tiendapatitas/ventas-api/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP del catálogo.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List responde GET /api/productos con el catálogo completo.
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	productos, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(productos)
}

// GetByID responde GET /api/productos/:id.
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	producto, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(producto)
}

// Create da de alta un producto (POST /api/productos).
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	producto, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// Search busca por nombre o marca (POST /api/productos/buscar).
func (h *ProductoHandler) Search(c *fiber.Ctx) error {
	var in dto.BuscarProductosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	resultados, err := h.uc.Search(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resultados)
}

// Update aplica una actualización parcial (PUT /api/productos/:id).
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	producto, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(producto)
}

// Delete borra el producto si ninguna venta lo referencia.
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	eliminado, err := h.uc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"eliminado": eliminado})
}
