package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
	"github.com/lojaviva/estoque-api/internal/domain/repository"
	"github.com/lojaviva/estoque-api/internal/domain/stock"
	"github.com/lojaviva/estoque-api/pkg/logger"
)

// AdjustStockUseCase é o engine de ajuste de estoque: trava a linha do
// produto (SELECT ... FOR UPDATE), resolve (cor, tamanho) contra a grade,
// aplica o delta com validação de disponibilidade, recomputa o agregado do
// zero e grava exatamente um movimento por invocação — tudo dentro da mesma
// transação. Ajustes do mesmo produto são serializados pelo lock de linha;
// produtos distintos seguem em paralelo.
type AdjustStockUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewAdjustStockUseCase constrói o engine.
func NewAdjustStockUseCase(txRunner TxRunner, log *logger.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, log: log}
}

// AdjustStockInput entrada de um ajuste. Quantity é a magnitude solicitada
// (sempre > 0); Operation decide o sinal do delta. FromStatus/ToStatus são
// tags opacas do ciclo de vida do chamador, copiadas para o movimento.
type AdjustStockInput struct {
	ProductID  string
	Quantity   int
	Color      string
	Size       string
	Operation  string // entity.OperationReserve | entity.OperationRestore
	FromStatus string
	ToStatus   string
}

// AdjustStockResult desfecho de um ajuste. Applied=false com SkipReason
// preenchido é o sucesso degradado: o tamanho não resolveu (ou a variante
// não tem grade) e nada foi mutado, mas a chamada NÃO é erro.
type AdjustStockResult struct {
	Applied    bool
	SkipReason string
	Stock      int // agregado após o ajuste (igual ao anterior em skip)
}

// AdjustStock abre uma transação via TxRunner e executa o ajuste. Qualquer
// erro provoca Rollback de tudo (documento e movimento); sem retries
// internos — política de retry é do chamador.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, input AdjustStockInput) (AdjustStockResult, error) {
	if err := validateInput(input); err != nil {
		return AdjustStockResult{}, err
	}
	var result AdjustStockResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		r, err := uc.AdjustStockInTx(ctx, productRepo, movementRepo, input)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return AdjustStockResult{}, err
	}
	return result, nil
}

// AdjustStockInTx executa o ajuste usando repositórios já atados à transação
// do chamador (workflow de pedidos). O chamador é dono do Commit/Rollback; se
// qualquer escrita falhar, deve reverter a transação inteira.
func (uc *AdjustStockUseCase) AdjustStockInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	input AdjustStockInput,
) (AdjustStockResult, error) {
	if err := validateInput(input); err != nil {
		return AdjustStockResult{}, err
	}

	// Trava a linha do produto: a segunda venda concorrente do mesmo produto
	// espera aqui até o Commit/Rollback da primeira e relê o estado real.
	product, err := productRepo.GetForUpdate(ctx, input.ProductID)
	if err != nil {
		return AdjustStockResult{}, err
	}
	if product == nil {
		return AdjustStockResult{}, domain.ErrProductNotFound
	}

	vres, err := stock.ResolveColor(product, input.Color)
	if err != nil {
		return AdjustStockResult{}, err
	}
	variant := &product.Variants[vres.Index]

	now := time.Now()
	movementType := entity.MovementTypeSale
	if input.Operation == entity.OperationRestore {
		movementType = entity.MovementTypeRestock
	}

	sres := stock.ResolveSize(variant, input.Size)
	if !sres.Resolved() {
		// Comportamento herdado da fonte original: divergência de rótulo de
		// tamanho não bloqueia uma venda já confirmada — o ajuste é ignorado
		// com sucesso e o estoque pode ficar sub-contado. Ver DESIGN.md.
		var reason string
		if sres.Match == stock.SizeEmptyGrid {
			reason = fmt.Sprintf("variante %q sem grade de tamanhos; ajuste ignorado", variant.ColorName)
		} else {
			reason = fmt.Sprintf("tamanho %q não encontrado na cor %q; ajuste ignorado", input.Size, variant.ColorName)
		}
		uc.log.Warn().
			Str("product_id", product.ID).
			Str("color", input.Color).
			Str("size", input.Size).
			Str("operation", input.Operation).
			Int("quantity", input.Quantity).
			Msg("ajuste de estoque ignorado: tamanho não resolvido")

		// A trilha registra também as tentativas ignoradas.
		mov := &entity.StockMovement{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Quantity:   input.Quantity,
			Type:       movementType,
			Notes:      reason,
			FromStatus: input.FromStatus,
			ToStatus:   input.ToStatus,
			CreatedAt:  now,
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return AdjustStockResult{}, err
		}
		return AdjustStockResult{Applied: false, SkipReason: reason, Stock: product.Stock}, nil
	}

	cell := &variant.SizeStock[sres.Index]
	switch input.Operation {
	case entity.OperationReserve:
		if cell.Quantity < input.Quantity {
			return AdjustStockResult{}, &domain.InsufficientStockError{
				ProductID: product.ID,
				Color:     variant.ColorName,
				Size:      cell.Size,
				Requested: input.Quantity,
				Available: cell.Quantity,
			}
		}
		cell.Quantity -= input.Quantity
	case entity.OperationRestore:
		// Devoluções são sempre aceitas; sem teto.
		cell.Quantity += input.Quantity
	}

	// Agregado sempre recomputado do documento inteiro: o catálogo edita as
	// variantes fora do engine e um delta em cache derivaria da realidade.
	product.Stock = product.TotalQuantity()
	product.UpdatedAt = now
	if err := productRepo.UpdateStockDocument(ctx, product); err != nil {
		return AdjustStockResult{}, fmt.Errorf("persistir documento de estoque: %w", err)
	}

	mov := &entity.StockMovement{
		ID:         uuid.New().String(),
		ProductID:  product.ID,
		Quantity:   input.Quantity,
		Type:       movementType,
		Notes:      fmt.Sprintf("%s: %d un. cor %q tamanho %q", movementType, input.Quantity, variant.ColorName, cell.Size),
		FromStatus: input.FromStatus,
		ToStatus:   input.ToStatus,
		CreatedAt:  now,
	}
	if err := movementRepo.Create(ctx, mov); err != nil {
		return AdjustStockResult{}, err
	}

	return AdjustStockResult{Applied: true, Stock: product.Stock}, nil
}

func validateInput(input AdjustStockInput) error {
	if input.ProductID == "" || input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	switch input.Operation {
	case entity.OperationReserve, entity.OperationRestore:
		return nil
	}
	return domain.ErrInvalidInput
}
