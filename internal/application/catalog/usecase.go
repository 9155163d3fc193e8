package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lojaviva/estoque-api/internal/application/dto"
	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
	"github.com/lojaviva/estoque-api/internal/domain/repository"
)

// CatalogUseCase CRUD de produtos do catálogo. A edição de catálogo grava o
// documento de variantes diretamente (fora do engine de ajuste) — é a edição
// out-of-band que obriga o engine a recomputar o agregado a cada mutação.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

// NewCatalogUseCase constrói o caso de uso de catálogo.
func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo}
}

// CreateProduct valida e persiste um produto novo com sua grade.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	variants, err := toVariants(in.Variants)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		DefaultColor: in.DefaultColor,
		Variants:     variants,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	product.Stock = product.TotalQuantity()
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct substitui os campos de catálogo de um produto existente e
// recomputa o agregado a partir da grade recebida.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	variants, err := toVariants(in.Variants)
	if err != nil {
		return nil, err
	}
	if id == "" || in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.DefaultColor = in.DefaultColor
	product.Variants = variants
	product.Stock = product.TotalQuantity()
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.UpdateDetails(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct busca um produto por id.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// ListProducts lista produtos com paginação.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.List(ctx, limit, offset)
}

// DeleteProduct remove um produto do catálogo.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.productRepo.Delete(ctx, id)
}

// toVariants valida a grade recebida: nomes de cor não vazios e quantidades
// nunca negativas.
func toVariants(in []dto.ColorVariantDTO) ([]entity.ColorVariant, error) {
	variants := make([]entity.ColorVariant, 0, len(in))
	for _, v := range in {
		if v.ColorName == "" {
			return nil, domain.ErrInvalidInput
		}
		cells := make([]entity.SizeCell, 0, len(v.SizeStock))
		for _, c := range v.SizeStock {
			if c.Size == "" || c.Quantity < 0 {
				return nil, domain.ErrInvalidInput
			}
			cells = append(cells, entity.SizeCell{Size: c.Size, Quantity: c.Quantity})
		}
		variants = append(variants, entity.ColorVariant{ColorName: v.ColorName, SizeStock: cells})
	}
	return variants, nil
}
