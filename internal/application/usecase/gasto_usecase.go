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

// GastoUseCase CRUD de gastos operativos.
type GastoUseCase struct {
	repo repository.GastoRepository
}

func NewGastoUseCase(repo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{repo: repo}
}

func (uc *GastoUseCase) Crear(ctx context.Context, in dto.CrearGastoRequest) (*entity.Gasto, error) {
	if in.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("monto debe ser positivo: %w", domain.ErrInvalidInput)
	}
	fecha := time.Now()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	gasto := &entity.Gasto{
		ID:          uuid.New().String(),
		Descripcion: in.Descripcion,
		Monto:       in.Monto,
		Fecha:       fecha,
		Categoria:   in.Categoria,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(gasto); err != nil {
		return nil, err
	}
	return gasto, nil
}

func (uc *GastoUseCase) GetByID(ctx context.Context, id string) (*entity.Gasto, error) {
	gasto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if gasto == nil {
		return nil, fmt.Errorf("gasto %s: %w", id, domain.ErrNotFound)
	}
	return gasto, nil
}

func (uc *GastoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarGastoRequest) (*entity.Gasto, error) {
	gasto, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Descripcion != nil {
		gasto.Descripcion = *in.Descripcion
	}
	if in.Monto != nil {
		if in.Monto.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		gasto.Monto = *in.Monto
	}
	if in.Fecha != nil {
		gasto.Fecha = *in.Fecha
	}
	if in.Categoria != nil {
		gasto.Categoria = *in.Categoria
	}
	if err := uc.repo.Update(gasto); err != nil {
		return nil, err
	}
	return gasto, nil
}

func (uc *GastoUseCase) List(ctx context.Context, categoria string, desde, hasta *time.Time, limit, offset int) ([]*entity.Gasto, error) {
	return uc.repo.List(categoria, desde, hasta, limit, offset)
}

func (uc *GastoUseCase) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
