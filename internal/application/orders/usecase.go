package orders

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lojaviva/estoque-api/internal/application/dto"
	"github.com/lojaviva/estoque-api/internal/application/stock"
	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
	"github.com/lojaviva/estoque-api/internal/domain/repository"
)

// OrderUseCase é o workflow chamador do engine de estoque: cria a venda
// reservando item a item e cancela estornando, sempre numa transação única.
// Os produtos são processados em ordem crescente de id para que dois pedidos
// concorrentes adquiram os locks de linha na mesma ordem (sem deadlock).
type OrderUseCase struct {
	txRunner  OrderTxRunner
	adjust    *stock.AdjustStockUseCase
	orderRepo repository.OrderRepository
}

// NewOrderUseCase constrói o caso de uso de pedidos.
func NewOrderUseCase(txRunner OrderTxRunner, adjust *stock.AdjustStockUseCase, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, adjust: adjust, orderRepo: orderRepo}
}

// CreateOrder valida os itens, abre a transação, reserva o estoque de cada
// item (pendente→confirmada) e grava o pedido confirmado. Falha em qualquer
// item (ex.: estoque insuficiente) reverte a transação inteira.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	if len(in.Items) == 0 || in.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Status:        entity.OrderStatusConfirmed,
		Items:         make([]entity.OrderItem, len(in.Items)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for i, item := range in.Items {
		order.Items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Color:     item.Color,
			Size:      item.Size,
			Quantity:  item.Quantity,
		}
	}

	err := uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		orderRepo repository.OrderRepository,
	) error {
		total := decimal.Zero
		for _, idx := range lockOrder(order.Items) {
			item := &order.Items[idx]
			product, err := productRepo.GetByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			item.UnitPrice = product.Price

			_, err = uc.adjust.AdjustStockInTx(ctx, productRepo, movementRepo, stock.AdjustStockInput{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				Color:      item.Color,
				Size:       item.Size,
				Operation:  entity.OperationReserve,
				FromStatus: entity.OrderStatusPending,
				ToStatus:   entity.OrderStatusConfirmed,
			})
			if err != nil {
				return err
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		order.Total = total
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder estorna o estoque de todos os itens (confirmada→cancelada) e
// marca o pedido como cancelado, na mesma transação.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	var canceled *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		orderRepo repository.OrderRepository,
	) error {
		order, err := orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusConfirmed {
			return domain.ErrConflict
		}

		for _, idx := range lockOrder(order.Items) {
			item := order.Items[idx]
			_, err := uc.adjust.AdjustStockInTx(ctx, productRepo, movementRepo, stock.AdjustStockInput{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				Color:      item.Color,
				Size:       item.Size,
				Operation:  entity.OperationRestore,
				FromStatus: entity.OrderStatusConfirmed,
				ToStatus:   entity.OrderStatusCanceled,
			})
			if err != nil {
				return err
			}
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusCanceled); err != nil {
			return err
		}
		order.Status = entity.OrderStatusCanceled
		canceled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return canceled, nil
}

// GetOrder busca um pedido por id (leitura fora de transação).
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListOrders lista pedidos com paginação.
func (uc *OrderUseCase) ListOrders(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.List(ctx, limit, offset)
}

// lockOrder devolve os índices dos itens em ordem crescente de product id,
// a ordem fixa de aquisição dos locks de linha.
func lockOrder(items []entity.OrderItem) []int {
	idx := make([]int, len(items))
	for i := range items {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return items[idx[a]].ProductID < items[idx[b]].ProductID
	})
	return idx
}
