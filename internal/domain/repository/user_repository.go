package repository

import (
	"context"

	"github.com/lojaviva/estoque-api/internal/domain/entity"
)

// UserRepository define a porta de persistência de usuários.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
