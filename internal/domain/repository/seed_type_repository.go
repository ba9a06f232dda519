package repository

import (
	"context"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// SeedTypeRepository porta de persistência de tipos de semente.
type SeedTypeRepository interface {
	Create(ctx context.Context, seedType *entity.SeedType) error
	GetByID(ctx context.Context, id string) (*entity.SeedType, error)
	List(ctx context.Context, limit, offset int) ([]*entity.SeedType, error)
}
