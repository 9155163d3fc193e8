package stock

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// ColorMatch identifica qual regra da cadeia de fallback resolveu a cor.
// Modelar o desfecho como enum (em vez de índice -1/sentinela) deixa cada
// caminho de fallback testável isoladamente.
type ColorMatch int

const (
	ColorExact         ColorMatch = iota // nome da cor bate exatamente (normalizado)
	ColorGeneric                         // pedido vazio ou placeholder ("padrão") → primeira variante
	ColorSingleVariant                   // produto tem uma única variante, nome irrelevante
	ColorDefault                         // variante cujo nome é a cor padrão do produto
)

// SizeMatch identifica o desfecho da resolução de tamanho.
type SizeMatch int

const (
	SizeExact      SizeMatch = iota // rótulo bate exatamente (normalizado)
	SizeOneSize                     // sinônimo de tamanho único dos dois lados ("u"/"único")
	SizeSingleCell                  // variante tem uma única célula, rótulo irrelevante
	SizeEmptyGrid                   // variante sem grade de tamanhos; nada a controlar
	SizeUnresolved                  // nenhuma regra aplicou; skip sem erro
)

// VariantResolution aponta a variante de cor resolvida dentro do produto.
type VariantResolution struct {
	Index int
	Match ColorMatch
}

// SizeResolution aponta a célula de tamanho. Index só é válido quando
// Resolved() retorna true.
type SizeResolution struct {
	Index int
	Match SizeMatch
}

// Resolved informa se a resolução apontou uma célula concreta.
func (r SizeResolution) Resolved() bool {
	switch r.Match {
	case SizeExact, SizeOneSize, SizeSingleCell:
		return true
	}
	return false
}

// stripAccents remove marcas diacríticas (NFD → remove Mn → NFC), de modo
// que "padrão"/"padrao" e "único"/"unico" caiam na mesma chave.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize dobra caixa, espaços e acentos de um rótulo de cor/tamanho.
func Normalize(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Placeholders genéricos de cor e sinônimos de tamanho único, já na forma
// normalizada por Normalize.
var (
	genericColors = map[string]bool{"": true, "padrao": true}
	oneSizeLabels = map[string]bool{"u": true, "unico": true}
)

// ResolveColor mapeia a cor pedida para uma variante do produto aplicando a
// cadeia de fallback em ordem; a primeira regra que aplicar vence:
//
//  1. match exato no nome da cor;
//  2. pedido vazio ou placeholder genérico → primeira variante;
//  3. produto com uma única variante → ela, independente do nome;
//  4. variante cujo nome é a cor padrão do produto;
//  5. nada aplicou → ColorNotFoundError com as cores disponíveis.
func ResolveColor(p *entity.Product, requested string) (VariantResolution, error) {
	if len(p.Variants) == 0 {
		return VariantResolution{}, domain.ErrNoVariants
	}
	want := Normalize(requested)

	for i, v := range p.Variants {
		if Normalize(v.ColorName) == want {
			return VariantResolution{Index: i, Match: ColorExact}, nil
		}
	}
	if genericColors[want] {
		return VariantResolution{Index: 0, Match: ColorGeneric}, nil
	}
	if len(p.Variants) == 1 {
		return VariantResolution{Index: 0, Match: ColorSingleVariant}, nil
	}
	if def := Normalize(p.DefaultColor); def != "" {
		for i, v := range p.Variants {
			if Normalize(v.ColorName) == def {
				return VariantResolution{Index: i, Match: ColorDefault}, nil
			}
		}
	}
	return VariantResolution{}, &domain.ColorNotFoundError{
		Requested: requested,
		Available: p.ColorNames(),
	}
}

// ResolveSize mapeia o tamanho pedido para uma célula da variante. Tamanho
// não resolvido NÃO é erro: retorna SizeUnresolved e o chamador decide
// (o engine registra o skip e segue — ver AdjustStockUseCase).
//
//  1. match exato no rótulo;
//  2. pedido é sinônimo de tamanho único → qualquer célula também sinônimo;
//  3. variante com uma única célula → ela, independente do rótulo;
//  4. nada aplicou → SizeUnresolved.
//
// Variante sem grade nenhuma retorna SizeEmptyGrid: não há o que controlar.
func ResolveSize(v *entity.ColorVariant, requested string) SizeResolution {
	if len(v.SizeStock) == 0 {
		return SizeResolution{Index: -1, Match: SizeEmptyGrid}
	}
	want := Normalize(requested)

	for i, c := range v.SizeStock {
		if Normalize(c.Size) == want {
			return SizeResolution{Index: i, Match: SizeExact}
		}
	}
	if oneSizeLabels[want] {
		for i, c := range v.SizeStock {
			if oneSizeLabels[Normalize(c.Size)] {
				return SizeResolution{Index: i, Match: SizeOneSize}
			}
		}
	}
	if len(v.SizeStock) == 1 {
		return SizeResolution{Index: 0, Match: SizeSingleCell}
	}
	return SizeResolution{Index: -1, Match: SizeUnresolved}
}
