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

// ProveedorUseCase CRUD de proveedores de lotes.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

func (uc *ProveedorUseCase) Crear(ctx context.Context, in dto.CrearProveedorRequest) (*entity.Proveedor, error) {
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return proveedor, nil
}

func (uc *ProveedorUseCase) GetByID(ctx context.Context, id string) (*entity.Proveedor, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	return proveedor, nil
}

func (uc *ProveedorUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarProveedorRequest) (*entity.Proveedor, error) {
	proveedor, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		proveedor.Nombre = *in.Nombre
	}
	if in.Telefono != nil {
		proveedor.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		proveedor.Direccion = *in.Direccion
	}
	proveedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return proveedor, nil
}

func (uc *ProveedorUseCase) List(ctx context.Context, nombre string, limit, offset int) ([]*entity.Proveedor, error) {
	return uc.repo.List(nombre, limit, offset)
}

// Eliminar borra el proveedor. Los lotes que lo referencian conservan sus
// datos con proveedor_id nulo (FK ON DELETE SET NULL).
func (uc *ProveedorUseCase) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
