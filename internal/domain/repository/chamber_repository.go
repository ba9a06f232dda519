package repository

import (
	"context"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// ChamberRepository porta de persistência de câmaras.
type ChamberRepository interface {
	Create(ctx context.Context, chamber *entity.Chamber) error
	GetByID(ctx context.Context, id string) (*entity.Chamber, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Chamber, error)
	Update(ctx context.Context, chamber *entity.Chamber) error
}
