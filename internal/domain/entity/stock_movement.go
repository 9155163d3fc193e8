package entity

import "time"

// Tipos de movimento de estoque.
const (
	MovementTypeSale    = "venda"   // baixa por venda
	MovementTypeRestock = "entrada" // estorno por cancelamento/devolução
)

// Operações do engine de ajuste.
const (
	OperationReserve = "reserve" // subtrai a quantidade (venda)
	OperationRestore = "restore" // soma a quantidade (cancelamento/devolução)
)

// StockMovement é o registro imutável da trilha de auditoria: um por
// invocação do engine que chega à etapa de mutação, inclusive ajustes
// ignorados por divergência de rótulo. Nunca é atualizado nem removido.
type StockMovement struct {
	ID         string
	ProductID  string
	Quantity   int    // magnitude solicitada, sempre positiva
	Type       string // venda | entrada
	Notes      string // resumo legível da cor/tamanho resolvidos (ou do skip)
	FromStatus string // tags de ciclo de vida opacas, informadas pelo chamador
	ToStatus   string
	CreatedAt  time.Time
}
