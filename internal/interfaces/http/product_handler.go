package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lojaviva/estoque-api/internal/application/catalog"
	"github.com/lojaviva/estoque-api/internal/application/dto"
	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// ProductHandler CRUD de produtos do catálogo (protegido).
type ProductHandler struct {
	uc *catalog.CatalogUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create cria um produto com sua grade de variantes.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	product, err := h.uc.CreateProduct(c.Context(), in)
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// Update substitui os campos de catálogo de um produto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	product, err := h.uc.UpdateProduct(c.Context(), c.Params("id"), in)
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// GetByID busca um produto por id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// List lista produtos com paginação.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return catalogErrorResponse(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(out)
}

// Delete remove um produto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return catalogErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func catalogErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "produto duplicado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	variants := make([]dto.ColorVariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		cells := make([]dto.SizeCellDTO, 0, len(v.SizeStock))
		for _, cell := range v.SizeStock {
			cells = append(cells, dto.SizeCellDTO{Size: cell.Size, Quantity: cell.Quantity})
		}
		variants = append(variants, dto.ColorVariantDTO{ColorName: v.ColorName, SizeStock: cells})
	}
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DefaultColor: p.DefaultColor,
		Variants:     variants,
		Stock:        p.Stock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
