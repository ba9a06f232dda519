package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	dominventory "github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/inventory"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
	"github.com/google/uuid"
)

// WithdrawalUseCase fluxo de retirada sobre a máquina de estados do produto:
// solicitação (LOCADO → AGUARDANDO_RETIRADA), confirmação (total ou parcial) e
// cancelamento. Uma solicitação aberta por produto; a segunda tentativa perde na
// própria transição de status.
type WithdrawalUseCase struct {
	txRunner       TxRunner
	withdrawalRepo repository.WithdrawalRepository
}

// NewWithdrawalUseCase constrói o caso de uso.
func NewWithdrawalUseCase(txRunner TxRunner, withdrawalRepo repository.WithdrawalRepository) *WithdrawalUseCase {
	return &WithdrawalUseCase{txRunner: txRunner, withdrawalRepo: withdrawalRepo}
}

// RequestWithdrawalInput entrada da solicitação de retirada.
type RequestWithdrawalInput struct {
	ProductID         string
	Type              string // TOTAL | PARCIAL
	QuantityRequested int    // obrigatório em PARCIAL; em TOTAL assume a quantidade atual
	Reason            string
}

// RequestWithdrawal transita o produto LOCADO → AGUARDANDO_RETIRADA (CAS de
// versão) e cria a solicitação PENDENTE. Em PARCIAL a quantidade deve ser
// estritamente menor que a quantidade atual do produto.
func (uc *WithdrawalUseCase) RequestWithdrawal(ctx context.Context, input RequestWithdrawalInput, userID string) (*entity.WithdrawalRequest, error) {
	if input.Type != entity.WithdrawalTypeTotal && input.Type != entity.WithdrawalTypeParcial {
		return nil, domain.NewValidationError("type", "tipo de retirada deve ser TOTAL ou PARCIAL")
	}
	if input.Type == entity.WithdrawalTypeParcial && input.QuantityRequested <= 0 {
		return nil, domain.NewValidationError("quantityRequested", "a quantidade solicitada deve ser maior que zero")
	}

	var request *entity.WithdrawalRequest
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.LocationRepository,
		movementRepo repository.MovementRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error {
		product, err := productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := dominventory.EnsureTransition(product.Status, entity.ProductStatusAguardandoRetirada); err != nil {
			return err
		}

		quantity := input.QuantityRequested
		if input.Type == entity.WithdrawalTypeTotal {
			quantity = product.Quantity
		} else if quantity >= product.Quantity {
			return domain.NewValidationError("quantityRequested",
				"a quantidade solicitada deve ser menor que a quantidade total do produto")
		}

		expected := product.Version
		product.Status = entity.ProductStatusAguardandoRetirada
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateWithVersion(ctx, product, expected); err != nil {
			return err
		}

		now := time.Now()
		request = &entity.WithdrawalRequest{
			ID:                uuid.New().String(),
			ProductID:         product.ID,
			Type:              input.Type,
			QuantityRequested: quantity,
			Status:            entity.WithdrawalStatusPendente,
			Reason:            input.Reason,
			RequestedBy:       userID,
			RequestedAt:       now,
		}
		if err := withdrawalRepo.Create(ctx, request); err != nil {
			return err
		}
		// Toda mutação de produto confirma acompanhada de um registro no
		// livro-razão; transições sem peso entram como `adjustment` de peso zero.
		return movementRepo.Create(ctx, &entity.Movement{
			Type:         entity.MovementTypeAdjustment,
			ProductID:    product.ID,
			ToLocationID: product.LocationID,
			Quantity:     0,
			WeightKg:     decimal.Zero,
			UserID:       userID,
			Reason:       reasonOrDefault(input.Reason, "solicitação de retirada registrada"),
			IsAutomatic:  true,
			Timestamp:    now,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// ConfirmWithdrawal confirma a retirada de um produto AGUARDANDO_RETIRADA.
// quantity nil (ou igual à quantidade restante) → retirada total: produto
// RETIRADO (terminal), localização liberada, `exit` com o peso total.
// quantity menor → retirada parcial: produto volta a LOCADO com quantidade e
// peso recalculados, peso da localização reduzido, `exit` com o peso retirado.
func (uc *WithdrawalUseCase) ConfirmWithdrawal(ctx context.Context, productID string, quantity *int, userID, reason string) (*entity.Product, error) {
	var confirmed *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Status != entity.ProductStatusAguardandoRetirada {
			return &domain.InvalidTransitionError{
				From: product.Status, To: entity.ProductStatusRetirado,
				Message: "apenas produtos aguardando retirada podem ser retirados",
			}
		}
		open, err := withdrawalRepo.GetOpenByProduct(ctx, product.ID)
		if err != nil {
			return err
		}
		if open == nil {
			return domain.ErrNotFound
		}

		withdrawn := product.Quantity
		if quantity != nil {
			if *quantity <= 0 {
				return domain.NewValidationError("quantity", "a quantidade retirada deve ser maior que zero")
			}
			if *quantity > product.Quantity {
				return domain.NewValidationError("quantity", "a quantidade retirada excede a quantidade disponível")
			}
			withdrawn = *quantity
		}
		total := withdrawn == product.Quantity
		withdrawnWeight := product.WeightPerUnit.Mul(decimal.NewFromInt(int64(withdrawn)))
		locationID := product.LocationID

		if err := withdrawalRepo.Resolve(ctx, open.ID, entity.WithdrawalStatusConfirmada, userID); err != nil {
			return err
		}

		expected := product.Version
		if total {
			product.Status = entity.ProductStatusRetirado
			product.LocationID = nil
		} else {
			product.Status = entity.ProductStatusLocado
			product.Quantity -= withdrawn
			product.RecalcTotalWeight()
		}
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateWithVersion(ctx, product, expected); err != nil {
			return err
		}

		if locationID != nil {
			if total {
				if err := locationRepo.Release(ctx, *locationID); err != nil {
					return err
				}
			} else {
				if err := locationRepo.AddWeight(ctx, *locationID, withdrawnWeight.Neg()); err != nil {
					return err
				}
			}
		}

		now := time.Now()
		if err := movementRepo.Create(ctx, &entity.Movement{
			Type:           entity.MovementTypeExit,
			ProductID:      product.ID,
			FromLocationID: locationID,
			Quantity:       withdrawn,
			WeightKg:       withdrawnWeight,
			UserID:         userID,
			Reason:         reasonOrDefault(reason, "retirada confirmada"),
			IsAutomatic:    true,
			Timestamp:      now,
			CreatedAt:      now,
		}); err != nil {
			return err
		}
		confirmed = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// CancelWithdrawal reverte AGUARDANDO_RETIRADA → LOCADO e marca a solicitação
// aberta como CANCELADA.
func (uc *WithdrawalUseCase) CancelWithdrawal(ctx context.Context, productID, userID, reason string) (*entity.Product, error) {
	var cancelled *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.LocationRepository,
		movementRepo repository.MovementRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := dominventory.EnsureTransition(product.Status, entity.ProductStatusLocado); err != nil {
			return err
		}
		open, err := withdrawalRepo.GetOpenByProduct(ctx, product.ID)
		if err != nil {
			return err
		}
		if open == nil {
			return domain.ErrNotFound
		}
		if err := withdrawalRepo.Resolve(ctx, open.ID, entity.WithdrawalStatusCancelada, userID); err != nil {
			return err
		}

		expected := product.Version
		product.Status = entity.ProductStatusLocado
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateWithVersion(ctx, product, expected); err != nil {
			return err
		}

		now := time.Now()
		if err := movementRepo.Create(ctx, &entity.Movement{
			Type:         entity.MovementTypeAdjustment,
			ProductID:    product.ID,
			ToLocationID: product.LocationID,
			Quantity:     0,
			WeightKg:     decimal.Zero,
			UserID:       userID,
			Reason:       reasonOrDefault(reason, "solicitação de retirada cancelada"),
			IsAutomatic:  true,
			Timestamp:    now,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		cancelled = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// ListByProduct histórico de solicitações de um produto.
func (uc *WithdrawalUseCase) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.WithdrawalRequest, error) {
	return uc.withdrawalRepo.ListByProduct(ctx, productID, limit, offset)
}
