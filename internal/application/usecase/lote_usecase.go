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

// LoteUseCase CRUD de lotes de compra. El consumo del disponible lo hacen los
// flujos transaccionales (embolsado, mermas); aquí solo ediciones correctivas.
type LoteUseCase struct {
	repo          repository.LoteRepository
	productoRepo  repository.ProductoRepository
	almacenRepo   repository.AlmacenRepository
	proveedorRepo repository.ProveedorRepository
}

func NewLoteUseCase(repo repository.LoteRepository, productoRepo repository.ProductoRepository, almacenRepo repository.AlmacenRepository, proveedorRepo repository.ProveedorRepository) *LoteUseCase {
	return &LoteUseCase{repo: repo, productoRepo: productoRepo, almacenRepo: almacenRepo, proveedorRepo: proveedorRepo}
}

// validarProveedor chequea que el proveedor referenciado exista.
func (uc *LoteUseCase) validarProveedor(id string) error {
	proveedor, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (uc *LoteUseCase) Crear(ctx context.Context, in dto.CrearLoteRequest) (*entity.Lote, error) {
	if in.PesoHumedoKg.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("peso_humedo_kg debe ser positivo: %w", domain.ErrInvalidInput)
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("producto %s: %w", in.ProductoID, domain.ErrNotFound)
	}
	almacen, err := uc.almacenRepo.GetByID(in.AlmacenID)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, fmt.Errorf("almacén %s: %w", in.AlmacenID, domain.ErrNotFound)
	}
	if in.ProveedorID != nil {
		if err := uc.validarProveedor(*in.ProveedorID); err != nil {
			return nil, err
		}
	}

	disponible := in.PesoHumedoKg
	if in.CantidadDisponibleKg != nil {
		if in.CantidadDisponibleKg.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		disponible = *in.CantidadDisponibleKg
	}
	now := time.Now()
	lote := &entity.Lote{
		ID:                   uuid.New().String(),
		ProductoID:           in.ProductoID,
		AlmacenID:            in.AlmacenID,
		ProveedorID:          in.ProveedorID,
		PesoHumedoKg:         in.PesoHumedoKg,
		PesoSecoKg:           in.PesoSecoKg,
		CantidadDisponibleKg: disponible,
		FechaIngreso:         now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(lote); err != nil {
		return nil, err
	}
	return lote, nil
}

func (uc *LoteUseCase) GetByID(ctx context.Context, id string) (*entity.Lote, error) {
	lote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
	}
	return lote, nil
}

func (uc *LoteUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarLoteRequest) (*entity.Lote, error) {
	lote, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProveedorID != nil {
		if err := uc.validarProveedor(*in.ProveedorID); err != nil {
			return nil, err
		}
		lote.ProveedorID = in.ProveedorID
	}
	if in.PesoHumedoKg != nil {
		if in.PesoHumedoKg.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lote.PesoHumedoKg = *in.PesoHumedoKg
	}
	if in.PesoSecoKg != nil {
		lote.PesoSecoKg = in.PesoSecoKg
	}
	if in.CantidadDisponibleKg != nil {
		if in.CantidadDisponibleKg.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lote.CantidadDisponibleKg = *in.CantidadDisponibleKg
	}
	lote.UpdatedAt = time.Now()
	if err := uc.repo.Update(lote); err != nil {
		return nil, err
	}
	return lote, nil
}

func (uc *LoteUseCase) List(ctx context.Context, productoID string, limit, offset int) ([]*entity.Lote, error) {
	return uc.repo.List(productoID, limit, offset)
}

func (uc *LoteUseCase) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
