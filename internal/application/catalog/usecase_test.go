package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/estoque-api/internal/application/catalog"
	"github.com/lojaviva/estoque-api/internal/application/dto"
	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// fakeProductRepo só com o que o catálogo usa.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) UpdateDetails(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStockDocument(ctx context.Context, p *entity.Product) error {
	return r.UpdateDetails(ctx, p)
}

func (r *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func createReq() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:         "Saia Plissada",
		Price:        decimal.RequireFromString("99.90"),
		DefaultColor: "Preto",
		Variants: []dto.ColorVariantDTO{
			{ColorName: "Preto", SizeStock: []dto.SizeCellDTO{
				{Size: "P", Quantity: 2},
				{Size: "M", Quantity: 3},
			}},
			{ColorName: "Bege", SizeStock: []dto.SizeCellDTO{
				{Size: "M", Quantity: 4},
			}},
		},
	}
}

func TestCreateProduct_AgregadoDerivadoDaGrade(t *testing.T) {
	repo := newFakeProductRepo()
	uc := catalog.NewCatalogUseCase(repo)

	product, err := uc.CreateProduct(context.Background(), createReq())
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, 9, product.Stock, "agregado = soma de todas as células")
	assert.Len(t, repo.products, 1)
}

func TestCreateProduct_Validacao(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())
	ctx := context.Background()

	noName := createReq()
	noName.Name = ""
	_, err := uc.CreateProduct(ctx, noName)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negativePrice := createReq()
	negativePrice.Price = decimal.RequireFromString("-1")
	_, err = uc.CreateProduct(ctx, negativePrice)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	emptyColor := createReq()
	emptyColor.Variants[0].ColorName = ""
	_, err = uc.CreateProduct(ctx, emptyColor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negativeCell := createReq()
	negativeCell.Variants[0].SizeStock[0].Quantity = -1
	_, err = uc.CreateProduct(ctx, negativeCell)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A edição de catálogo reescreve a grade e recomputa o agregado — é a escrita
// out-of-band que coexiste com o engine de ajuste.
func TestUpdateProduct_ReescreveGradeERecomputa(t *testing.T) {
	repo := newFakeProductRepo()
	uc := catalog.NewCatalogUseCase(repo)
	ctx := context.Background()

	product, err := uc.CreateProduct(ctx, createReq())
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, product.ID, dto.UpdateProductRequest{
		Name:         "Saia Plissada Longa",
		Price:        decimal.RequireFromString("129.90"),
		DefaultColor: "Bege",
		Variants: []dto.ColorVariantDTO{
			{ColorName: "Bege", SizeStock: []dto.SizeCellDTO{
				{Size: "U", Quantity: 7},
			}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Saia Plissada Longa", updated.Name)
	assert.Equal(t, 7, updated.Stock)
	assert.Len(t, updated.Variants, 1)
}

func TestUpdateProduct_NaoEncontrado(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	_, err := uc.UpdateProduct(context.Background(), "ghost", dto.UpdateProductRequest{
		Name:  "Qualquer",
		Price: decimal.RequireFromString("10"),
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProduct_NaoEncontrado(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	_, err := uc.GetProduct(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProduct_IDObrigatorio(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newFakeProductRepo())

	err := uc.DeleteProduct(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
