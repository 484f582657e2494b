package usecase

import (
	"encoding/json"

	"github.com/tiendapatitas/ventas-api/internal/application/dto"
	"github.com/tiendapatitas/ventas-api/internal/domain"
	"github.com/tiendapatitas/ventas-api/internal/domain/entity"
	"github.com/tiendapatitas/ventas-api/internal/domain/repository"
	"github.com/tiendapatitas/ventas-api/pkg/token"
	"github.com/tiendapatitas/ventas-api/pkg/validator"
)

// UsuarioUseCase casos de uso de cuentas. Toda respuesta pasa por
// toUsuarioResponse: la contraseña jamás sale del dominio.
type UsuarioUseCase struct {
	store  repository.DocumentStore
	issuer token.Issuer
}

// NewUsuarioUseCase construye el caso de uso con el emisor de tokens inyectado.
func NewUsuarioUseCase(store repository.DocumentStore, issuer token.Issuer) *UsuarioUseCase {
	return &UsuarioUseCase{store: store, issuer: issuer}
}

// List devuelve todos los usuarios sin contraseña.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	var usuarios []entity.Usuario
	if err := uc.store.Read(repository.ColUsuarios, &usuarios); err != nil {
		return nil, err
	}
	safe := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		safe = append(safe, toUsuarioResponse(&usuarios[i]))
	}
	return safe, nil
}

// GetByID devuelve un usuario por id, sin contraseña.
func (uc *UsuarioUseCase) GetByID(id int) (*dto.UsuarioResponse, error) {
	var usuarios []entity.Usuario
	if err := uc.store.Read(repository.ColUsuarios, &usuarios); err != nil {
		return nil, err
	}
	u := buscarUsuario(usuarios, id)
	if u == nil {
		return nil, domain.NotFoundf("usuario no encontrado")
	}
	out := toUsuarioResponse(u)
	return &out, nil
}

// Create registra un usuario nuevo. El email debe ser único en la colección;
// la unicidad solo se exige al crear.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.Invalidf(dto.MsgUsuarioCamposRequeridos)
	}

	nuevo := entity.Usuario{
		Nombre:     in.Nombre,
		Apellido:   in.Apellido,
		Email:      in.Email,
		Contrasena: in.Contrasena,
		Telefono:   in.Telefono,
		Mascotas:   in.Mascotas,
	}
	if nuevo.Mascotas == nil {
		nuevo.Mascotas = []json.RawMessage{}
	}

	err := uc.store.Tx(func(tx repository.Tx) error {
		var usuarios []entity.Usuario
		if err := tx.Read(repository.ColUsuarios, &usuarios); err != nil {
			return err
		}
		for _, u := range usuarios {
			if u.Email == in.Email {
				return domain.Wrap(domain.ErrEmailAlreadyExists, "email ya registrado")
			}
		}
		nuevo.ID = siguienteIDUsuario(usuarios)
		usuarios = append(usuarios, nuevo)
		tx.Stage(repository.ColUsuarios, usuarios)
		return nil
	}, repository.ColUsuarios)
	if err != nil {
		return nil, err
	}
	out := toUsuarioResponse(&nuevo)
	return &out, nil
}

// Login autentica por coincidencia exacta de email y contraseña y emite un
// token de sesión a través del puerto inyectado.
func (uc *UsuarioUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.Invalidf(dto.MsgLoginCamposRequeridos)
	}
	var usuarios []entity.Usuario
	if err := uc.store.Read(repository.ColUsuarios, &usuarios); err != nil {
		return nil, err
	}
	var user *entity.Usuario
	for i := range usuarios {
		if usuarios[i].Email == in.Email && usuarios[i].Contrasena == in.Contrasena {
			user = &usuarios[i]
			break
		}
	}
	if user == nil {
		return nil, domain.Wrap(domain.ErrUnauthorized, "credenciales inválidas")
	}
	tok, err := uc.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: tok, User: toUsuarioResponse(user)}, nil
}

// Update aplica solo los campos presentes; mascotas solo si el cuerpo trae
// una secuencia válida. La contraseña no se toca por esta vía.
func (uc *UsuarioUseCase) Update(id int, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	var actualizado *dto.UsuarioResponse
	err := uc.store.Tx(func(tx repository.Tx) error {
		var usuarios []entity.Usuario
		if err := tx.Read(repository.ColUsuarios, &usuarios); err != nil {
			return err
		}
		u := buscarUsuario(usuarios, id)
		if u == nil {
			return domain.NotFoundf("usuario no encontrado")
		}
		if in.Nombre != nil {
			u.Nombre = *in.Nombre
		}
		if in.Apellido != nil {
			u.Apellido = *in.Apellido
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Telefono != nil {
			u.Telefono = *in.Telefono
		}
		if in.Mascotas != nil {
			u.Mascotas = *in.Mascotas
		}
		out := toUsuarioResponse(u)
		actualizado = &out
		tx.Stage(repository.ColUsuarios, usuarios)
		return nil
	}, repository.ColUsuarios)
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Delete elimina un usuario que no tenga ventas asociadas.
func (uc *UsuarioUseCase) Delete(id int) (*dto.UsuarioResponse, error) {
	var eliminado *dto.UsuarioResponse
	err := uc.store.Tx(func(tx repository.Tx) error {
		var ventas []entity.Venta
		if err := tx.Read(repository.ColVentas, &ventas); err != nil {
			return err
		}
		for _, v := range ventas {
			if v.IDUsuario == id {
				return domain.Conflictf("no se puede eliminar el usuario porque tiene ventas asociadas; elimine o reasigne esas ventas primero")
			}
		}

		var usuarios []entity.Usuario
		if err := tx.Read(repository.ColUsuarios, &usuarios); err != nil {
			return err
		}
		idx := -1
		for i := range usuarios {
			if usuarios[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.NotFoundf("usuario no encontrado")
		}
		out := toUsuarioResponse(&usuarios[idx])
		eliminado = &out
		usuarios = append(usuarios[:idx], usuarios[idx+1:]...)
		tx.Stage(repository.ColUsuarios, usuarios)
		return nil
	}, repository.ColUsuarios, repository.ColVentas)
	if err != nil {
		return nil, err
	}
	return eliminado, nil
}

func buscarUsuario(usuarios []entity.Usuario, id int) *entity.Usuario {
	for i := range usuarios {
		if usuarios[i].ID == id {
			return &usuarios[i]
		}
	}
	return nil
}

func siguienteIDUsuario(usuarios []entity.Usuario) int {
	max := 0
	for _, u := range usuarios {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// toUsuarioResponse proyecta el usuario sin el campo de contraseña.
func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	mascotas := u.Mascotas
	if mascotas == nil {
		mascotas = []json.RawMessage{}
	}
	return dto.UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Telefono: u.Telefono,
		Mascotas: mascotas,
	}
}
