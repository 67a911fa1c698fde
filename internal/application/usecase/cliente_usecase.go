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

// ClienteUseCase CRUD de clientes. Los campos de proyección de recompra
// solo los escribe el orquestador de ventas.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

func (uc *ClienteUseCase) Crear(ctx context.Context, in dto.CrearClienteRequest) (*entity.Cliente, error) {
	now := time.Now()
	cliente := &entity.Cliente{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		Telefono:        in.Telefono,
		Direccion:       in.Direccion,
		ConsumoDiarioKg: in.ConsumoDiarioKg,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return cliente, nil
}

func (uc *ClienteUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarClienteRequest) (*entity.Cliente, error) {
	cliente, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	if in.ConsumoDiarioKg != nil {
		cliente.ConsumoDiarioKg = in.ConsumoDiarioKg
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// List lista clientes; con nombre no vacío delega en la búsqueda
// insensible a acentos y mayúsculas.
func (uc *ClienteUseCase) List(ctx context.Context, nombre string, limit, offset int) ([]*entity.Cliente, error) {
	if nombre != "" {
		return uc.repo.Search(nombre, limit, offset)
	}
	return uc.repo.List(limit, offset)
}

func (uc *ClienteUseCase) Eliminar(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
