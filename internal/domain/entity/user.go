package entity

import "time"

// Papéis de acesso.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// User usuário do sistema (operadores de câmara e administradores).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
