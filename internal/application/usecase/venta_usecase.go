package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tiendapatitas/ventas-api/internal/application/dto"
	"github.com/tiendapatitas/ventas-api/internal/domain"
	"github.com/tiendapatitas/ventas-api/internal/domain/entity"
	"github.com/tiendapatitas/ventas-api/internal/domain/repository"
	"github.com/tiendapatitas/ventas-api/pkg/fecha"
	"github.com/tiendapatitas/ventas-api/pkg/validator"
)

// VentaUseCase es el único caso de uso que lee y escribe más de una colección
// por operación: crear una venta descuenta stock del catálogo y eliminarla lo
// repone. Ambas escrituras se confirman dentro de una misma transacción del
// store; una falla de validación no toca el disco.
type VentaUseCase struct {
	store repository.DocumentStore
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(store repository.DocumentStore) *VentaUseCase {
	return &VentaUseCase{store: store}
}

// List devuelve una página del listado. offset y limit negativos se llevan a
// cero; limit ausente (negativo en el handler) equivale al largo total.
func (uc *VentaUseCase) List(offset, limit int) (*dto.VentasPageResponse, error) {
	var ventas []entity.Venta
	if err := uc.store.Read(repository.ColVentas, &ventas); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = len(ventas)
	}
	slice := []entity.Venta{}
	if offset < len(ventas) {
		fin := offset + limit
		if fin > len(ventas) {
			fin = len(ventas)
		}
		slice = ventas[offset:fin]
	}
	return &dto.VentasPageResponse{
		Total:  len(ventas),
		Offset: offset,
		Limit:  len(slice),
		Data:   slice,
	}, nil
}

// GetByID devuelve una venta por id.
func (uc *VentaUseCase) GetByID(id int) (*entity.Venta, error) {
	var ventas []entity.Venta
	if err := uc.store.Read(repository.ColVentas, &ventas); err != nil {
		return nil, err
	}
	for i := range ventas {
		if ventas[i].ID == id {
			return &ventas[i], nil
		}
	}
	return nil, domain.NotFoundf("venta no encontrada")
}

// Create valida todas las líneas contra el catálogo y el padrón de usuarios
// y recién entonces confirma: descuenta stock, congela precios en el detalle
// y persiste catálogo y ventas juntos. Cualquier falla intermedia deja ambas
// colecciones exactamente como estaban.
func (uc *VentaUseCase) Create(in dto.CreateVentaRequest) (*entity.Venta, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.Invalidf(dto.MsgVentaCamposRequeridos)
	}

	var creada *entity.Venta
	err := uc.store.Tx(func(tx repository.Tx) error {
		var usuarios []entity.Usuario
		if err := tx.Read(repository.ColUsuarios, &usuarios); err != nil {
			return err
		}
		if buscarUsuario(usuarios, in.IDUsuario) == nil {
			return domain.Invalidf("id_usuario inválido")
		}

		var catalogo []entity.Producto
		if err := tx.Read(repository.ColProductos, &catalogo); err != nil {
			return err
		}
		var ventas []entity.Venta
		if err := tx.Read(repository.ColVentas, &ventas); err != nil {
			return err
		}

		// Se valida y descuenta sobre la copia en memoria del catálogo. El
		// descuento inmediato hace que líneas repetidas del mismo producto
		// compitan por el stock restante, no por el inicial. Si algo falla,
		// la copia se descarta sin haberse confirmado nada.
		detalle := make([]entity.DetalleVenta, 0, len(in.Productos))
		total := decimal.Zero
		for _, it := range in.Productos {
			prod := buscarProducto(catalogo, it.ID)
			if prod == nil {
				return domain.Invalidf("producto inexistente: %d", it.ID)
			}
			if it.Cantidad <= 0 {
				return domain.Invalidf("cantidad inválida para producto %d", it.ID)
			}
			if prod.Stock < it.Cantidad {
				return domain.Wrap(domain.ErrInsufficientStock, "stock insuficiente para %s", prod.Nombre)
			}
			prod.Stock -= it.Cantidad

			subtotal := prod.Precio.Mul(decimal.NewFromInt(int64(it.Cantidad))).Round(2)
			detalle = append(detalle, entity.DetalleVenta{
				ID:             prod.ID,
				Nombre:         prod.Nombre,
				PrecioUnitario: prod.Precio,
				Cantidad:       it.Cantidad,
				Subtotal:       subtotal,
			})
			total = total.Add(subtotal)
		}

		nueva := entity.Venta{
			ID:         siguienteIDVenta(ventas),
			IDUsuario:  in.IDUsuario,
			Fecha:      fecha.Now(),
			Direccion:  in.Direccion,
			MetodoPago: in.MetodoPago,
			Productos:  detalle,
			CostoEnvio: decimal.Zero,
			Total:      total.Round(2),
		}
		ventas = append(ventas, nueva)

		tx.Stage(repository.ColProductos, catalogo)
		tx.Stage(repository.ColVentas, ventas)
		creada = &nueva
		return nil
	}, repository.ColProductos, repository.ColUsuarios, repository.ColVentas)
	if err != nil {
		return nil, err
	}
	return creada, nil
}

// Search filtra por los criterios presentes, combinados con AND. Las fechas
// son cotas inclusivas que comparan solo el día; un criterio de fecha
// malformado es un error de entrada, no una búsqueda vacía.
func (uc *VentaUseCase) Search(in dto.BuscarVentasRequest) (*dto.BuscarVentasResponse, error) {
	var ventas []entity.Venta
	if err := uc.store.Read(repository.ColVentas, &ventas); err != nil {
		return nil, err
	}
	result := ventas

	if in.IDUsuario != nil {
		filtradas := result[:0:0]
		for _, v := range result {
			if v.IDUsuario == *in.IDUsuario {
				filtradas = append(filtradas, v)
			}
		}
		result = filtradas
	}

	if in.FechaDesde != "" {
		desde, err := fecha.Parse(in.FechaDesde)
		if err != nil {
			return nil, domain.Invalidf("fecha_desde inválida")
		}
		filtradas := result[:0:0]
		for _, v := range result {
			// Una fecha almacenada ilegible queda fuera de todo rango.
			t, err := fecha.Parse(v.Fecha)
			if err == nil && !t.Before(desde) {
				filtradas = append(filtradas, v)
			}
		}
		result = filtradas
	}

	if in.FechaHasta != "" {
		hasta, err := fecha.Parse(in.FechaHasta)
		if err != nil {
			return nil, domain.Invalidf("fecha_hasta inválida")
		}
		filtradas := result[:0:0]
		for _, v := range result {
			t, err := fecha.Parse(v.Fecha)
			if err == nil && !t.After(hasta) {
				filtradas = append(filtradas, v)
			}
		}
		result = filtradas
	}

	if in.IDProducto != nil {
		filtradas := result[:0:0]
		for _, v := range result {
			for _, it := range v.Productos {
				if it.ID == *in.IDProducto {
					filtradas = append(filtradas, v)
					break
				}
			}
		}
		result = filtradas
	}

	if len(result) == 0 {
		return nil, domain.NoMatchf("no se encontraron ventas con los criterios ingresados")
	}
	return &dto.BuscarVentasResponse{Total: len(result), Data: result}, nil
}

// Update solo admite direccion y metodo_pago; el detalle, el total y la
// fecha son inmutables después de la creación.
func (uc *VentaUseCase) Update(id int, in dto.UpdateVentaRequest) (*entity.Venta, error) {
	var actualizada *entity.Venta
	err := uc.store.Tx(func(tx repository.Tx) error {
		var ventas []entity.Venta
		if err := tx.Read(repository.ColVentas, &ventas); err != nil {
			return err
		}
		var venta *entity.Venta
		for i := range ventas {
			if ventas[i].ID == id {
				venta = &ventas[i]
				break
			}
		}
		if venta == nil {
			return domain.NotFoundf("venta no encontrada")
		}
		if in.Direccion != nil {
			venta.Direccion = *in.Direccion
		}
		if in.MetodoPago != nil {
			venta.MetodoPago = *in.MetodoPago
		}
		copia := *venta
		actualizada = &copia
		tx.Stage(repository.ColVentas, ventas)
		return nil
	}, repository.ColVentas)
	if err != nil {
		return nil, err
	}
	return actualizada, nil
}

// Delete elimina la venta y repone el stock de cada línea sobre el producto
// correspondiente. Un producto que ya no existe se tolera en silencio: la
// reposición es al mejor esfuerzo. Ambas colecciones se confirman juntas.
func (uc *VentaUseCase) Delete(id int) (*entity.Venta, error) {
	var borrada *entity.Venta
	err := uc.store.Tx(func(tx repository.Tx) error {
		var ventas []entity.Venta
		if err := tx.Read(repository.ColVentas, &ventas); err != nil {
			return err
		}
		idx := -1
		for i := range ventas {
			if ventas[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.NotFoundf("venta no encontrada")
		}
		copia := ventas[idx]
		borrada = &copia
		ventas = append(ventas[:idx], ventas[idx+1:]...)

		var catalogo []entity.Producto
		if err := tx.Read(repository.ColProductos, &catalogo); err != nil {
			return err
		}
		for _, it := range borrada.Productos {
			if prod := buscarProducto(catalogo, it.ID); prod != nil {
				prod.Stock += it.Cantidad
			}
		}

		tx.Stage(repository.ColVentas, ventas)
		tx.Stage(repository.ColProductos, catalogo)
		return nil
	}, repository.ColProductos, repository.ColVentas)
	if err != nil {
		return nil, err
	}
	return borrada, nil
}

// siguienteIDVenta max(id)+1; la primera venta recibe el id 4001.
func siguienteIDVenta(ventas []entity.Venta) int {
	if len(ventas) == 0 {
		return entity.PrimerIDVenta
	}
	max := 0
	for _, v := range ventas {
		if v.ID > max {
			max = v.ID
		}
	}
	return max + 1
}
