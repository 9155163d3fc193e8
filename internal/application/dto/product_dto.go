package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeCellDTO par (tamanho, quantidade) da grade.
type SizeCellDTO struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// ColorVariantDTO grade de tamanhos de uma cor.
type ColorVariantDTO struct {
	ColorName string        `json:"colorName"`
	SizeStock []SizeCellDTO `json:"sizeStock"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	DefaultColor string            `json:"color,omitempty"`
	Variants     []ColorVariantDTO `json:"variants"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	DefaultColor string            `json:"color,omitempty"`
	Variants     []ColorVariantDTO `json:"variants"`
}

// ProductResponse representação de produto na API.
type ProductResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	DefaultColor string            `json:"color,omitempty"`
	Variants     []ColorVariantDTO `json:"variants"`
	Stock        int               `json:"stock"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
