package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lojaviva/estoque-api/internal/application/dto"
	"github.com/lojaviva/estoque-api/internal/application/orders"
	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// OrderHandler endpoints do workflow de pedidos (protegido).
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create cria um pedido reservando o estoque de todos os itens numa
// transação única.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	order, err := h.uc.CreateOrder(c.Context(), in)
	if err != nil {
		return orderErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// Cancel cancela um pedido confirmado estornando o estoque.
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.uc.CancelOrder(c.Context(), c.Params("id"))
	if err != nil {
		return orderErrorResponse(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// GetByID busca um pedido por id.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return orderErrorResponse(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// List lista pedidos com paginação.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListOrders(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return orderErrorResponse(c, err)
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(out)
}

func orderErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "pedido não está em estado cancelável"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
	}
	// Erros do engine de estoque (insuficiente, cor, produto) mantêm o mesmo
	// mapeamento do ajuste direto.
	return stockErrorResponse(c, err)
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemDTO{
			ProductID: item.ProductID,
			Color:     item.Color,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status,
		Total:         o.Total,
		Items:         items,
		CreatedAt:     o.CreatedAt,
	}
}
