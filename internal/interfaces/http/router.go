package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojaviva/estoque-api/internal/application/auth"
	"github.com/lojaviva/estoque-api/internal/application/catalog"
	"github.com/lojaviva/estoque-api/internal/application/orders"
	"github.com/lojaviva/estoque-api/internal/application/stock"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AdjustStock *stock.AdjustStockUseCase
	Movements   *stock.MovementQueryUseCase
	CatalogUC   *catalog.CatalogUseCase
	OrderUC     *orders.OrderUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Pedidos (workflow chamador do engine)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Post("/:id/cancel", orderHandler.Cancel)

	// Estoque: ajuste manual (admin) e trilha de movimentos
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.AdjustStock, deps.Movements)
	stockGroup.Post("/adjust", RequireRole(entity.RoleAdmin), stockHandler.Adjust)
	stockGroup.Get("/movements", stockHandler.ListMovements)
}
