package stock

import (
	"context"

	"github.com/lojaviva/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. O engine de ajuste nunca abre transação por
// conta própria fora daqui: o dono do Commit/Rollback é sempre o runner (ou
// o chamador, na variante InTx).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
