package repository

import (
	"context"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// WithdrawalRepository porta de persistência de solicitações de retirada.
type WithdrawalRepository interface {
	Create(ctx context.Context, request *entity.WithdrawalRequest) error
	GetByID(ctx context.Context, id string) (*entity.WithdrawalRequest, error)
	// GetOpenByProduct retorna a solicitação PENDENTE do produto (ou nil).
	GetOpenByProduct(ctx context.Context, productID string) (*entity.WithdrawalRequest, error)
	// Resolve fecha a solicitação exatamente uma vez (condicionado a status PENDENTE).
	Resolve(ctx context.Context, id, status, userID string) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.WithdrawalRequest, error)
}
