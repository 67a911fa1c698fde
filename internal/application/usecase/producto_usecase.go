// Package usecase agrupa los casos de uso CRUD simples del catálogo: entidades
// sin efectos de stock ni dinero. Los flujos transaccionales viven en sus
// propios paquetes (venta, pago, merma, inventario, pedido).
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

// ProductoUseCase CRUD de productos a granel.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*entity.Producto, error) {
	now := time.Now()
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (uc *ProductoUseCase) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return producto, nil
}

func (uc *ProductoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarProductoRequest) (*entity.Producto, error) {
	producto, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (uc *ProductoUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Producto, error) {
	return uc.repo.List(limit, offset)
}

func (uc *ProductoUseCase) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
