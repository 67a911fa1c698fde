package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

// AlmacenUseCase CRUD de almacenes.
type AlmacenUseCase struct {
	repo repository.AlmacenRepository
}

func NewAlmacenUseCase(repo repository.AlmacenRepository) *AlmacenUseCase {
	return &AlmacenUseCase{repo: repo}
}

func (uc *AlmacenUseCase) Crear(ctx context.Context, in dto.CrearAlmacenRequest) (*entity.Almacen, error) {
	now := time.Now()
	almacen := &entity.Almacen{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Ciudad:    in.Ciudad,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(almacen); err != nil {
		return nil, err
	}
	return almacen, nil
}

func (uc *AlmacenUseCase) GetByID(ctx context.Context, id string) (*entity.Almacen, error) {
	almacen, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, fmt.Errorf("almacén %s: %w", id, domain.ErrNotFound)
	}
	return almacen, nil
}

func (uc *AlmacenUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarAlmacenRequest) (*entity.Almacen, error) {
	almacen, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		almacen.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		almacen.Direccion = *in.Direccion
	}
	if in.Ciudad != nil {
		almacen.Ciudad = *in.Ciudad
	}
	almacen.UpdatedAt = time.Now()
	if err := uc.repo.Update(almacen); err != nil {
		return nil, err
	}
	return almacen, nil
}

func (uc *AlmacenUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Almacen, error) {
	return uc.repo.List(limit, offset)
}

func (uc *AlmacenUseCase) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
