package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lojaviva/estoque-api/internal/application/dto"
	appstock "github.com/lojaviva/estoque-api/internal/application/stock"
	"github.com/lojaviva/estoque-api/internal/domain"
)

// StockHandler endpoints do engine de ajuste e da trilha de movimentos
// (protegidos; ajuste manual restrito a admin).
type StockHandler struct {
	adjust    *appstock.AdjustStockUseCase
	movements *appstock.MovementQueryUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(adjust *appstock.AdjustStockUseCase, movements *appstock.MovementQueryUseCase) *StockHandler {
	return &StockHandler{adjust: adjust, movements: movements}
}

// Adjust executa um ajuste manual de estoque (reserve/restore).
// Applied=false na resposta indica o skip por tamanho não resolvido.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.FromStatus == "" && in.ToStatus == "" {
		// Ajuste manual sem workflow: marca a origem no ciclo de vida.
		in.FromStatus = "manual"
		in.ToStatus = "manual"
	}
	result, err := h.adjust.AdjustStock(c.Context(), appstock.AdjustStockInput{
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Color:      in.Color,
		Size:       in.Size,
		Operation:  in.Operation,
		FromStatus: in.FromStatus,
		ToStatus:   in.ToStatus,
	})
	if err != nil {
		return stockErrorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.AdjustStockResponse{
		Applied:    result.Applied,
		SkipReason: result.SkipReason,
		Stock:      result.Stock,
	})
}

// ListMovements lista a trilha de auditoria de um produto.
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro from inválido (RFC3339)"})
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro to inválido (RFC3339)"})
		}
		to = &t
	}

	list, err := h.movements.ListByProduct(c.Context(), productID, from, to, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// stockErrorResponse mapeia os erros do engine para códigos HTTP. Erros
// tipados viajam com o diagnóstico completo na mensagem.
func stockErrorResponse(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
	}
	var colorNotFound *domain.ColorNotFoundError
	if errors.As(err, &colorNotFound) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "COLOR_NOT_FOUND", Message: colorNotFound.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	case errors.Is(err, domain.ErrNoVariants):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_VARIANTS", Message: "produto sem variantes cadastradas"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
