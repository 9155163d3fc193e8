package repository

import (
	"context"

	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// OrderRepository define a porta de persistência de pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
}
