package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrNoVariants         = errors.New("produto sem variantes cadastradas")
	ErrColorNotFound      = errors.New("cor não encontrada")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrConflict           = errors.New("conflito com o estado atual")
)

// ColorNotFoundError indica que nenhuma regra da cadeia de fallback de cor
// aplicou. Carrega as cores disponíveis para diagnóstico do chamador.
type ColorNotFoundError struct {
	Requested string
	Available []string
}

func (e *ColorNotFoundError) Error() string {
	return fmt.Sprintf("cor %q não encontrada; cores disponíveis: %s",
		e.Requested, strings.Join(e.Available, ", "))
}

func (e *ColorNotFoundError) Unwrap() error { return ErrColorNotFound }

// InsufficientStockError indica que uma reserva pediu mais do que a célula
// resolvida tem disponível. Requested e Available permitem ao chamador montar
// uma mensagem precisa.
type InsufficientStockError struct {
	ProductID string
	Color     string
	Size      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para produto %s (cor %q, tamanho %q): pedido %d, disponível %d",
		e.ProductID, e.Color, e.Size, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
