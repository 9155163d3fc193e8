package stock

import (
	"context"
	"time"

	"github.com/lojaviva/estoque-api/internal/application/dto"
	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/repository"
)

// MovementQueryUseCase leitura da trilha de auditoria (fora de transação).
type MovementQueryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewMovementQueryUseCase constrói o caso de uso de consulta.
func NewMovementQueryUseCase(movementRepo repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo}
}

// ListByProduct lista movimentos de um produto num intervalo de datas.
func (uc *MovementQueryUseCase) ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]dto.StockMovementDTO, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	movements, err := uc.movementRepo.ListByProduct(ctx, productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementDTO{
			ID:         m.ID,
			ProductID:  m.ProductID,
			Quantity:   m.Quantity,
			Type:       m.Type,
			Notes:      m.Notes,
			FromStatus: m.FromStatus,
			ToStatus:   m.ToStatus,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out, nil
}
