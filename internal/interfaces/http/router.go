package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendapatitas/ventas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC *usecase.ProductoUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	VentaUC    *usecase.VentaUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Post("/buscar", productoHandler.Search)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	usuarios := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Post("/login", usuarioHandler.Login)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	ventas := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Get("/", ventaHandler.List)
	ventas.Post("/", ventaHandler.Create)
	ventas.Post("/buscar", ventaHandler.Search)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Put("/:id", ventaHandler.Update)
	ventas.Delete("/:id", ventaHandler.Delete)
}
