package usecase

import (
	"context"
	"fmt"

	"github.com/nicklcsdev/inventario-api/internal/domain"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
)

// EmpresaUseCases agrupa los casos de uso de empresas construidos sobre el mismo repositorio.
type EmpresaUseCases struct {
	Crear      *CrearEmpresaUseCase
	Listar     *ListarEmpresasUseCase
	Obtener    *ObtenerEmpresaUseCase
	Actualizar *ActualizarEmpresaUseCase
	Eliminar   *EliminarEmpresaUseCase
}

// NewEmpresaUseCases construye todos los casos de uso de empresas inyectando el puerto de persistencia.
func NewEmpresaUseCases(repo repository.EmpresaRepository) *EmpresaUseCases {
	return &EmpresaUseCases{
		Crear:      NewCrearEmpresaUseCase(repo),
		Listar:     NewListarEmpresasUseCase(repo),
		Obtener:    NewObtenerEmpresaUseCase(repo),
		Actualizar: NewActualizarEmpresaUseCase(repo),
		Eliminar:   NewEliminarEmpresaUseCase(repo),
	}
}

// CrearEmpresaUseCase registra una empresa nueva. Falla con BusinessRuleError si el NIT ya existe.
type CrearEmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewCrearEmpresaUseCase construye el caso de uso.
func NewCrearEmpresaUseCase(repo repository.EmpresaRepository) *CrearEmpresaUseCase {
	return &CrearEmpresaUseCase{repo: repo}
}

// Execute valida, comprueba unicidad del NIT y persiste.
// La comprobación de unicidad no es atómica: bajo concurrencia la garantía la da el almacenamiento.
func (uc *CrearEmpresaUseCase) Execute(ctx context.Context, nit, nombre, direccion, telefono string) (*entity.Empresa, error) {
	empresa, err := entity.NewEmpresa(nit, nombre, direccion, telefono)
	if err != nil {
		return nil, validationError(err)
	}

	existing, err := uc.repo.GetByNIT(ctx, empresa.NIT)
	if err != nil {
		return nil, WrapError("error crítico guardando empresa", err)
	}
	if existing != nil {
		return nil, domain.NewBusinessRuleError(fmt.Sprintf("ya existe una empresa con el NIT %s", empresa.NIT))
	}

	saved, err := uc.repo.Save(ctx, empresa)
	if err != nil {
		return nil, WrapError("error crítico guardando empresa", err)
	}
	return saved, nil
}

// ListarEmpresasUseCase lista todas las empresas. Una lista vacía no es error.
type ListarEmpresasUseCase struct {
	repo repository.EmpresaRepository
}

// NewListarEmpresasUseCase construye el caso de uso.
func NewListarEmpresasUseCase(repo repository.EmpresaRepository) *ListarEmpresasUseCase {
	return &ListarEmpresasUseCase{repo: repo}
}

func (uc *ListarEmpresasUseCase) Execute(ctx context.Context) ([]*entity.Empresa, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, WrapError("error consultando empresas", err)
	}
	if list == nil {
		list = []*entity.Empresa{}
	}
	return list, nil
}

// ObtenerEmpresaUseCase obtiene una empresa por NIT.
type ObtenerEmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewObtenerEmpresaUseCase construye el caso de uso.
func NewObtenerEmpresaUseCase(repo repository.EmpresaRepository) *ObtenerEmpresaUseCase {
	return &ObtenerEmpresaUseCase{repo: repo}
}

func (uc *ObtenerEmpresaUseCase) Execute(ctx context.Context, nit string) (*entity.Empresa, error) {
	empresa, err := uc.repo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, WrapError("error consultando empresa", err)
	}
	if empresa == nil {
		return nil, empresaNoEncontrada(nit)
	}
	return empresa, nil
}

// ActualizarEmpresaInput campos a reemplazar; nil conserva el valor actual. El NIT no se modifica.
type ActualizarEmpresaInput struct {
	Nombre    *string
	Direccion *string
	Telefono  *string
}

// ActualizarEmpresaUseCase reemplaza una empresa existente. Falla con ResourceNotFoundError si no existe.
type ActualizarEmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewActualizarEmpresaUseCase construye el caso de uso.
func NewActualizarEmpresaUseCase(repo repository.EmpresaRepository) *ActualizarEmpresaUseCase {
	return &ActualizarEmpresaUseCase{repo: repo}
}

// Execute carga la empresa, superpone los campos recibidos, re-valida la entidad completa y la sobrescribe.
func (uc *ActualizarEmpresaUseCase) Execute(ctx context.Context, nit string, in ActualizarEmpresaInput) (*entity.Empresa, error) {
	current, err := uc.repo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, WrapError("error actualizando empresa", err)
	}
	if current == nil {
		return nil, empresaNoEncontrada(nit)
	}

	empresa, err := entity.NewEmpresa(
		current.NIT,
		orDefault(in.Nombre, current.Nombre),
		orDefault(in.Direccion, current.Direccion),
		orDefault(in.Telefono, current.Telefono),
	)
	if err != nil {
		return nil, validationError(err)
	}

	saved, err := uc.repo.Save(ctx, empresa)
	if err != nil {
		return nil, WrapError("error actualizando empresa", err)
	}
	return saved, nil
}

// EliminarEmpresaUseCase elimina una empresa existente (sus productos caen en cascada en el adaptador).
type EliminarEmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEliminarEmpresaUseCase construye el caso de uso.
func NewEliminarEmpresaUseCase(repo repository.EmpresaRepository) *EliminarEmpresaUseCase {
	return &EliminarEmpresaUseCase{repo: repo}
}

func (uc *EliminarEmpresaUseCase) Execute(ctx context.Context, nit string) error {
	current, err := uc.repo.GetByNIT(ctx, nit)
	if err != nil {
		return WrapError("error eliminando empresa", err)
	}
	if current == nil {
		return empresaNoEncontrada(nit)
	}
	if err := uc.repo.Delete(ctx, current.NIT); err != nil {
		return WrapError("error eliminando empresa", err)
	}
	return nil
}

func empresaNoEncontrada(nit string) error {
	return domain.NewNotFoundError(fmt.Sprintf("no existe una empresa con el NIT %s", nit))
}

func orDefault(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}
