package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeCell é a menor unidade rastreável de estoque: par (tamanho, quantidade)
// dentro de uma variante de cor. Quantity nunca fica negativa.
type SizeCell struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// ColorVariant agrupa a grade de tamanhos de uma cor do produto.
type ColorVariant struct {
	ColorName string     `json:"colorName"`
	SizeStock []SizeCell `json:"sizeStock"`
}

// Product representa um produto do catálogo com variantes por cor e tamanho.
// Variants é persistido como documento JSONB; Stock é o agregado derivado
// (soma de todas as células), recomputado a cada mutação — nunca setado
// diretamente, porque o catálogo também edita o documento fora do engine.
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal // preço de venda
	DefaultColor string          // cor padrão usada como fallback na resolução
	Variants     []ColorVariant
	Stock        int // agregado derivado, Σ quantidade de todas as células
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalQuantity recomputa o agregado varrendo o documento inteiro.
func (p *Product) TotalQuantity() int {
	total := 0
	for _, v := range p.Variants {
		for _, c := range v.SizeStock {
			total += c.Quantity
		}
	}
	return total
}

// ColorNames lista os nomes das cores cadastradas (para diagnósticos).
func (p *Product) ColorNames() []string {
	names := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		names = append(names, v.ColorName)
	}
	return names
}
