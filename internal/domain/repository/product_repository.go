package repository

import (
	"context"

	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// ProductRepository define a porta de persistência de Product (DIP).
// GetForUpdate é o ponto de serialização do engine de ajuste: trava a linha
// com SELECT ... FOR UPDATE dentro da transação corrente.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// UpdateDetails grava os campos de catálogo (nome, preço, cor padrão,
	// documento de variantes e agregado). Usado pelo CRUD de catálogo.
	UpdateDetails(ctx context.Context, product *entity.Product) error
	// UpdateStockDocument grava apenas variants + stock + updated_at.
	// Usado pelo engine de ajuste depois de mutar o documento em memória.
	UpdateStockDocument(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
