package repository

import (
	"context"
	"time"

	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// StockMovementRepository define a porta da trilha de auditoria (append-only:
// só Create e leituras; movimentos nunca são alterados ou removidos).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
