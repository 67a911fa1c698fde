package usecase

import (
	"context"
	"fmt"

	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

// MovimientoUseCase consulta del libro de movimientos. El libro solo se
// escribe desde los flujos transaccionales; por HTTP es de lectura.
type MovimientoUseCase struct {
	repo repository.MovimientoRepository
}

func NewMovimientoUseCase(repo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo}
}

func (uc *MovimientoUseCase) GetByID(ctx context.Context, id string) (*entity.Movimiento, error) {
	mov, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, fmt.Errorf("movimiento %s: %w", id, domain.ErrNotFound)
	}
	return mov, nil
}

func (uc *MovimientoUseCase) List(ctx context.Context, f repository.MovimientoFilter, limit, offset int) ([]*entity.Movimiento, error) {
	return uc.repo.List(f, limit, offset)
}
