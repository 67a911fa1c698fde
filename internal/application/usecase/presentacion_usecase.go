package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

// PresentacionUseCase CRUD de presentaciones vendibles.
type PresentacionUseCase struct {
	repo         repository.PresentacionRepository
	productoRepo repository.ProductoRepository
}

func NewPresentacionUseCase(repo repository.PresentacionRepository, productoRepo repository.ProductoRepository) *PresentacionUseCase {
	return &PresentacionUseCase{repo: repo, productoRepo: productoRepo}
}

func (uc *PresentacionUseCase) Crear(ctx context.Context, in dto.CrearPresentacionRequest) (*entity.Presentacion, error) {
	if in.CapacidadKg.LessThanOrEqual(decimal.Zero) || in.PrecioVenta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("producto %s: %w", in.ProductoID, domain.ErrNotFound)
	}

	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	now := time.Now()
	pres := &entity.Presentacion{
		ID:          uuid.New().String(),
		ProductoID:  in.ProductoID,
		Nombre:      in.Nombre,
		CapacidadKg: in.CapacidadKg,
		Tipo:        in.Tipo,
		PrecioVenta: in.PrecioVenta,
		Activo:      activo,
		URLFoto:     in.URLFoto,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(pres); err != nil {
		return nil, err
	}
	return pres, nil
}

func (uc *PresentacionUseCase) GetByID(ctx context.Context, id string) (*entity.Presentacion, error) {
	pres, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pres == nil {
		return nil, fmt.Errorf("presentación %s: %w", id, domain.ErrNotFound)
	}
	return pres, nil
}

// Actualizar aplica cambios parciales. Cambiar el precio no afecta ventas
// existentes: cada línea congela el precio al momento de la venta.
func (uc *PresentacionUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarPresentacionRequest) (*entity.Presentacion, error) {
	pres, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		pres.Nombre = *in.Nombre
	}
	if in.CapacidadKg != nil {
		if in.CapacidadKg.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		pres.CapacidadKg = *in.CapacidadKg
	}
	if in.Tipo != nil {
		pres.Tipo = *in.Tipo
	}
	if in.PrecioVenta != nil {
		if in.PrecioVenta.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		pres.PrecioVenta = *in.PrecioVenta
	}
	if in.Activo != nil {
		pres.Activo = *in.Activo
	}
	if in.URLFoto != nil {
		pres.URLFoto = *in.URLFoto
	}
	pres.UpdatedAt = time.Now()
	if err := uc.repo.Update(pres); err != nil {
		return nil, err
	}
	return pres, nil
}

func (uc *PresentacionUseCase) List(ctx context.Context, productoID string, soloActivas bool, limit, offset int) ([]*entity.Presentacion, error) {
	return uc.repo.List(productoID, soloActivas, limit, offset)
}

// Eliminar desactiva o borra la presentación. La baja dura se delega al
// repositorio; las FK de ventas históricas la impiden cuando corresponde.
func (uc *PresentacionUseCase) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
