package repository

import (
	"context"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// UserRepository porta de persistência de usuários.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
