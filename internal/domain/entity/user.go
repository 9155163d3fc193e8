package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa um usuário do painel administrativo.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro depois de persistido
	Name         string
	Role         string // admin, vendedor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
