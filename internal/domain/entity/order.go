package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de ciclo de vida do pedido. Também alimentam from_status/to_status
// dos movimentos de estoque gerados pelo workflow de pedidos.
const (
	OrderStatusPending   = "pendente"
	OrderStatusConfirmed = "confirmada"
	OrderStatusCanceled  = "cancelada"
)

// OrderItem é uma linha do pedido. Color e Size chegam como texto livre do
// checkout e são resolvidos contra a grade do produto pelo engine de estoque.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Order representa uma venda. Items é persistido como documento JSONB.
type Order struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Status        string
	Total         decimal.Decimal
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
