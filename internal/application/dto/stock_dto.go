package dto

import "time"

// AdjustStockRequest body para POST /api/stock/adjust (ajuste manual).
type AdjustStockRequest struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	Operation  string `json:"operation"` // reserve | restore
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status,omitempty"`
}

// AdjustStockResponse resultado de um ajuste. Applied=false com SkipReason
// preenchido indica o sucesso degradado (tamanho não resolvido / variante
// sem grade): nada foi mutado, mas a chamada não é erro.
type AdjustStockResponse struct {
	Applied    bool   `json:"applied"`
	SkipReason string `json:"skip_reason,omitempty"`
	Stock      int    `json:"stock"` // agregado após o ajuste
}

// StockMovementDTO linha da trilha de auditoria.
type StockMovementDTO struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Type       string    `json:"movement_type"`
	Notes      string    `json:"notes"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	CreatedAt  time.Time `json:"created_at"`
}
