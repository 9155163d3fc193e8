package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

func TestTotalQuantity_SomaTodasAsCelulas(t *testing.T) {
	p := &entity.Product{
		Stock: 999, // campo defasado não interfere no recompute
		Variants: []entity.ColorVariant{
			{ColorName: "Azul", SizeStock: []entity.SizeCell{
				{Size: "P", Quantity: 2},
				{Size: "M", Quantity: 5},
			}},
			{ColorName: "Rosa", SizeStock: []entity.SizeCell{
				{Size: "M", Quantity: 3},
			}},
			{ColorName: "Verde"}, // sem grade
		},
	}

	assert.Equal(t, 10, p.TotalQuantity())
}

func TestTotalQuantity_SemVariantes(t *testing.T) {
	p := &entity.Product{}
	assert.Equal(t, 0, p.TotalQuantity())
}

func TestColorNames(t *testing.T) {
	p := &entity.Product{
		Variants: []entity.ColorVariant{
			{ColorName: "Azul"},
			{ColorName: "Rosa"},
		},
	}
	assert.Equal(t, []string{"Azul", "Rosa"}, p.ColorNames())
}
