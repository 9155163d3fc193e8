package stock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
	"github.com/lojaviva/estoque-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func productWith(defaultColor string, variants ...entity.ColorVariant) *entity.Product {
	return &entity.Product{
		ID:           "prod-1",
		Name:         "Vestido Midi",
		DefaultColor: defaultColor,
		Variants:     variants,
	}
}

func variant(color string, cells ...entity.SizeCell) entity.ColorVariant {
	return entity.ColorVariant{ColorName: color, SizeStock: cells}
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalização
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_CaixaEspacosAcentos(t *testing.T) {
	assert.Equal(t, "azul marinho", stock.Normalize("  Azul   Marinho "))
	assert.Equal(t, "padrao", stock.Normalize("Padrão"))
	assert.Equal(t, "unico", stock.Normalize("ÚNICO"))
	assert.Equal(t, "", stock.Normalize("   "))
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolução de cor — cadeia de fallback
// ──────────────────────────────────────────────────────────────────────────────

// Regra 1: match exato é insensível a caixa e espaços.
func TestResolveColor_MatchExatoNormalizado(t *testing.T) {
	p := productWith("",
		variant("Azul", entity.SizeCell{Size: "M", Quantity: 3}),
		variant("Rosa", entity.SizeCell{Size: "M", Quantity: 1}),
	)

	res, err := stock.ResolveColor(p, " azul ")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, stock.ColorExact, res.Match)
}

// Regra 2: pedido vazio ou placeholder genérico cai na primeira variante.
func TestResolveColor_PlaceholderGenerico(t *testing.T) {
	p := productWith("",
		variant("Preto", entity.SizeCell{Size: "P", Quantity: 2}),
		variant("Branco", entity.SizeCell{Size: "P", Quantity: 2}),
	)

	for _, requested := range []string{"", "Padrão", "padrao", "PADRAO"} {
		res, err := stock.ResolveColor(p, requested)
		require.NoError(t, err, "pedido %q deve resolver", requested)
		assert.Equal(t, 0, res.Index)
		assert.Equal(t, stock.ColorGeneric, res.Match)
	}
}

// Produto de variante única com pedido "Padrão": resolve a única variante
// sem conflito de precedência (regras 2 e 3 apontam o mesmo índice).
func TestResolveColor_PadraoEmVarianteUnica(t *testing.T) {
	p := productWith("", variant("Rosa", entity.SizeCell{Size: "M", Quantity: 5}))

	res, err := stock.ResolveColor(p, "Padrão")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)
}

// Regra 3: variante única é assumida não ambígua, qualquer nome serve.
func TestResolveColor_VarianteUnicaNomeIrrelevante(t *testing.T) {
	p := productWith("", variant("Rosa", entity.SizeCell{Size: "M", Quantity: 5}))

	res, err := stock.ResolveColor(p, "Vermelho")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, stock.ColorSingleVariant, res.Match)
}

// Regra 4: cor desconhecida cai na variante cujo nome é a cor padrão do
// produto.
func TestResolveColor_FallbackCorPadraoDoProduto(t *testing.T) {
	p := productWith("Branco",
		variant("Preto", entity.SizeCell{Size: "M", Quantity: 1}),
		variant("Branco", entity.SizeCell{Size: "M", Quantity: 4}),
	)

	res, err := stock.ResolveColor(p, "Cinza")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, stock.ColorDefault, res.Match)
}

// Regra 5: nada aplicou — erro tipado com as cores disponíveis.
func TestResolveColor_NenhumFallback_ErroComDiagnostico(t *testing.T) {
	p := productWith("Verde", // cor padrão sem variante correspondente
		variant("Preto", entity.SizeCell{Size: "M", Quantity: 1}),
		variant("Branco", entity.SizeCell{Size: "M", Quantity: 4}),
	)

	_, err := stock.ResolveColor(p, "Cinza")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrColorNotFound)

	var notFound *domain.ColorNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Cinza", notFound.Requested)
	assert.Equal(t, []string{"Preto", "Branco"}, notFound.Available)
}

func TestResolveColor_SemVariantes(t *testing.T) {
	p := productWith("Azul")

	_, err := stock.ResolveColor(p, "Azul")
	assert.ErrorIs(t, err, domain.ErrNoVariants)
}

// Match exato tem precedência sobre o placeholder: produto que cadastrou uma
// cor literalmente chamada "Padrão" resolve nela, não na primeira.
func TestResolveColor_ExatoVencePlaceholder(t *testing.T) {
	p := productWith("",
		variant("Azul", entity.SizeCell{Size: "M", Quantity: 1}),
		variant("Padrão", entity.SizeCell{Size: "M", Quantity: 2}),
	)

	res, err := stock.ResolveColor(p, "padrao")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, stock.ColorExact, res.Match)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolução de tamanho
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveSize_MatchExatoNormalizado(t *testing.T) {
	v := variant("Azul",
		entity.SizeCell{Size: "M", Quantity: 3},
		entity.SizeCell{Size: "G", Quantity: 1},
	)

	res := stock.ResolveSize(&v, " m ")
	require.True(t, res.Resolved())
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, stock.SizeExact, res.Match)
}

// Sinônimos de tamanho único casam entre si: pedido "U" encontra "Único".
func TestResolveSize_SinonimoTamanhoUnico(t *testing.T) {
	v := variant("Rosa", entity.SizeCell{Size: "Único", Quantity: 5})

	res := stock.ResolveSize(&v, "U")
	require.True(t, res.Resolved())
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, stock.SizeOneSize, res.Match)
}

func TestResolveSize_CelulaUnicaRotuloIrrelevante(t *testing.T) {
	v := variant("Rosa", entity.SizeCell{Size: "38", Quantity: 2})

	res := stock.ResolveSize(&v, "M")
	require.True(t, res.Resolved())
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, stock.SizeSingleCell, res.Match)
}

// Duas células com rótulos diferentes e pedido que não casa com nenhum:
// desfecho soft, sem célula apontada.
func TestResolveSize_NaoResolvido(t *testing.T) {
	v := variant("Rosa",
		entity.SizeCell{Size: "P", Quantity: 2},
		entity.SizeCell{Size: "M", Quantity: 2},
	)

	res := stock.ResolveSize(&v, "42")
	assert.False(t, res.Resolved())
	assert.Equal(t, stock.SizeUnresolved, res.Match)
}

// Variante sem grade nenhuma: nada a controlar.
func TestResolveSize_GradeVazia(t *testing.T) {
	v := variant("Rosa")

	res := stock.ResolveSize(&v, "M")
	assert.False(t, res.Resolved())
	assert.Equal(t, stock.SizeEmptyGrid, res.Match)
}
