package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tiendapatitas/ventas-api/internal/application/dto"
	"github.com/tiendapatitas/ventas-api/internal/domain"
	"github.com/tiendapatitas/ventas-api/internal/domain/entity"
	"github.com/tiendapatitas/ventas-api/internal/domain/repository"
	"github.com/tiendapatitas/ventas-api/pkg/validator"
)

// ProductoUseCase casos de uso CRUD del catálogo. El borrado consulta la
// colección de ventas para no dejar líneas de venta apuntando a un producto
// inexistente.
type ProductoUseCase struct {
	store repository.DocumentStore
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(store repository.DocumentStore) *ProductoUseCase {
	return &ProductoUseCase{store: store}
}

// List devuelve el catálogo completo.
func (uc *ProductoUseCase) List() ([]entity.Producto, error) {
	var productos []entity.Producto
	if err := uc.store.Read(repository.ColProductos, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

// GetByID devuelve un producto por id.
func (uc *ProductoUseCase) GetByID(id int) (*entity.Producto, error) {
	var productos []entity.Producto
	if err := uc.store.Read(repository.ColProductos, &productos); err != nil {
		return nil, err
	}
	p := buscarProducto(productos, id)
	if p == nil {
		return nil, domain.NotFoundf("producto no encontrado")
	}
	return p, nil
}

// Create valida los campos requeridos, asigna id secuencial y persiste.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*entity.Producto, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.Invalidf(dto.MsgProductoCamposRequeridos)
	}
	if in.Precio.LessThan(decimal.Zero) {
		return nil, domain.Invalidf("precio inválido")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.Invalidf("stock inválido")
	}

	nuevo := entity.Producto{
		Nombre:     in.Nombre,
		Marca:      in.Marca,
		Categoria:  in.Categoria,
		Precio:     *in.Precio,
		Stock:      0,
		Disponible: true,
	}
	if in.Stock != nil {
		nuevo.Stock = *in.Stock
	}
	if in.Disponible != nil {
		nuevo.Disponible = *in.Disponible
	}
	if in.Desc != nil {
		nuevo.Desc = *in.Desc
	}
	if in.Imagen != nil {
		nuevo.Imagen = *in.Imagen
	}

	err := uc.store.Tx(func(tx repository.Tx) error {
		var productos []entity.Producto
		if err := tx.Read(repository.ColProductos, &productos); err != nil {
			return err
		}
		nuevo.ID = siguienteIDProducto(productos)
		productos = append(productos, nuevo)
		tx.Stage(repository.ColProductos, productos)
		return nil
	}, repository.ColProductos)
	if err != nil {
		return nil, err
	}
	return &nuevo, nil
}

// Search busca por subcadena (sin distinguir mayúsculas) en nombre o marca.
// Cero coincidencias no es un error duro: se señala con domain.ErrNoMatch.
func (uc *ProductoUseCase) Search(in dto.BuscarProductosRequest) ([]entity.Producto, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.Invalidf(dto.MsgBusquedaTextoRequerido)
	}
	var productos []entity.Producto
	if err := uc.store.Read(repository.ColProductos, &productos); err != nil {
		return nil, err
	}
	filtro := strings.ToLower(in.Texto)
	resultados := make([]entity.Producto, 0)
	for _, p := range productos {
		if strings.Contains(strings.ToLower(p.Nombre), filtro) ||
			strings.Contains(strings.ToLower(p.Marca), filtro) {
			resultados = append(resultados, p)
		}
	}
	if len(resultados) == 0 {
		return nil, domain.NoMatchf("no se encontraron productos que coincidan con la búsqueda")
	}
	return resultados, nil
}

// Update aplica solo los campos presentes. Precio y stock negativos se
// rechazan sin modificar el registro.
func (uc *ProductoUseCase) Update(id int, in dto.UpdateProductoRequest) (*entity.Producto, error) {
	if in.Precio != nil && in.Precio.LessThan(decimal.Zero) {
		return nil, domain.Invalidf("precio inválido")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.Invalidf("stock inválido")
	}

	var actualizado *entity.Producto
	err := uc.store.Tx(func(tx repository.Tx) error {
		var productos []entity.Producto
		if err := tx.Read(repository.ColProductos, &productos); err != nil {
			return err
		}
		p := buscarProducto(productos, id)
		if p == nil {
			return domain.NotFoundf("producto no encontrado")
		}
		if in.Nombre != nil {
			p.Nombre = *in.Nombre
		}
		if in.Marca != nil {
			p.Marca = *in.Marca
		}
		if in.Categoria != nil {
			p.Categoria = *in.Categoria
		}
		if in.Precio != nil {
			p.Precio = *in.Precio
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.Disponible != nil {
			p.Disponible = *in.Disponible
		}
		if in.Desc != nil {
			p.Desc = *in.Desc
		}
		if in.Imagen != nil {
			p.Imagen = *in.Imagen
		}
		copia := *p
		actualizado = &copia
		tx.Stage(repository.ColProductos, productos)
		return nil
	}, repository.ColProductos)
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Delete elimina un producto si ninguna venta lo referencia en sus líneas.
func (uc *ProductoUseCase) Delete(id int) (*entity.Producto, error) {
	var eliminado *entity.Producto
	err := uc.store.Tx(func(tx repository.Tx) error {
		var ventas []entity.Venta
		if err := tx.Read(repository.ColVentas, &ventas); err != nil {
			return err
		}
		for _, v := range ventas {
			for _, it := range v.Productos {
				if it.ID == id {
					return domain.Conflictf("no se puede eliminar el producto porque está presente en ventas; elimine o modifique esas ventas primero")
				}
			}
		}

		var productos []entity.Producto
		if err := tx.Read(repository.ColProductos, &productos); err != nil {
			return err
		}
		idx := -1
		for i := range productos {
			if productos[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.NotFoundf("producto no encontrado")
		}
		copia := productos[idx]
		eliminado = &copia
		productos = append(productos[:idx], productos[idx+1:]...)
		tx.Stage(repository.ColProductos, productos)
		return nil
	}, repository.ColProductos, repository.ColVentas)
	if err != nil {
		return nil, err
	}
	return eliminado, nil
}

// buscarProducto devuelve un puntero al elemento del slice, o nil.
func buscarProducto(productos []entity.Producto, id int) *entity.Producto {
	for i := range productos {
		if productos[i].ID == id {
			return &productos[i]
		}
	}
	return nil
}

// siguienteIDProducto max(id)+1, o 1 para el catálogo vacío.
func siguienteIDProducto(productos []entity.Producto) int {
	max := 0
	for _, p := range productos {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
