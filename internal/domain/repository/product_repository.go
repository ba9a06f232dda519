package repository

import (
	"context"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// ProductRepository porta de persistência de produtos.
// UpdateWithVersion é a única via de mutação: escrita condicional (CAS) sobre a
// versão lida; retorna domain.ErrOptimisticLock se a versão armazenada mudou.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// UpdateWithVersion grava product condicionado a version == expectedVersion;
	// em caso de sucesso a versão armazenada passa a expectedVersion + 1.
	UpdateWithVersion(ctx context.Context, product *entity.Product, expectedVersion int) error
	// GetActiveByLocation retorna o produto não-terminal que referencia a localização (ou nil).
	GetActiveByLocation(ctx context.Context, locationID string) (*entity.Product, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Product, error)
}
