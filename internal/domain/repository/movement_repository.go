package repository

import (
	"context"
	"time"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// MovementRepository porta de persistência do livro-razão de movimentações.
// Append-only: nenhum registro é atualizado ou removido, exceto a marcação de
// verificação (auxílio de reconciliação, fora do caminho transacional).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByLocation(ctx context.Context, locationID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	// ListUnverifiedBefore lista movimentações não verificadas anteriores ao corte.
	ListUnverifiedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Movement, error)
	MarkVerified(ctx context.Context, id, userID string) error
}
