package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest linha do pedido no checkout. Color e Size são texto livre
// e serão resolvidos contra a grade do produto.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemDTO linha do pedido na resposta.
type OrderItemDTO struct {
	ProductID string          `json:"product_id"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse representação de pedido na API.
type OrderResponse struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Items         []OrderItemDTO  `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}
