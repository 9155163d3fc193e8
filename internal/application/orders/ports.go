package orders

import (
	"context"

	"github.com/lojaviva/estoque-api/internal/domain/repository"
)

// OrderTxRunner executa o workflow de pedido dentro de uma transação única:
// a gravação do pedido e todos os ajustes de estoque dos itens commitam ou
// revertem juntos.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
