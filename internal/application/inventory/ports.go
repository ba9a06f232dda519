package inventory

import (
	"context"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados àquela tx. Ou as três escritas (produto, localização, movimentação)
// confirmam juntas, ou nenhuma é aplicada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error) error
}
