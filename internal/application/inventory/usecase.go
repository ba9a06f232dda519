package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	dominventory "github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/inventory"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

// InventoryUseCase fachada de operações de inventário. Toda operação pública que
// muta estado roda em uma única transação: mutação de produto + mutação de
// localização + um insert no livro-razão confirmam juntos ou não confirmam.
type InventoryUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	allocator    *LocationAllocator
}

// NewInventoryUseCase constrói a fachada. Os repositórios recebidos aqui são
// usados apenas para leituras fora de transação; escritas passam pelo txRunner.
func NewInventoryUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	allocator *LocationAllocator,
) *InventoryUseCase {
	return &InventoryUseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		allocator:    allocator,
	}
}

// CreateProductInput entrada para criação de produto. LocationID vazio aciona a
// seleção automática da localização ótima.
type CreateProductInput struct {
	Lot             string
	SeedTypeID      string
	Quantity        int
	WeightPerUnitKg decimal.Decimal
	LocationID      string
	ExpirationDate  *time.Time
	Notes           string
}

// MoveOptions opções de MoveProduct.
type MoveOptions struct {
	Reason      string
	WithBenefit bool // calcula o delta de pontuação entre localização antiga e nova
}

// MoveResult resultado de MoveProduct.
type MoveResult struct {
	Product        *entity.Product
	FromLocationID string
	ToLocationID   string
	BenefitScore   *decimal.Decimal
}

// CreateProduct resolve a localização (explícita ou ótima), valida capacidade,
// ocupa a localização, cria o produto (LOCADO, version 0) e registra uma
// movimentação `entry` com o peso total — tudo em uma transação.
func (uc *InventoryUseCase) CreateProduct(ctx context.Context, input CreateProductInput, userID string) (*entity.Product, error) {
	if input.Lot == "" {
		return nil, domain.NewValidationError("lot", "o código de lote é obrigatório")
	}
	if input.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "a quantidade deve ser maior que zero")
	}
	if input.WeightPerUnitKg.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("weightPerUnit", "o peso por unidade deve ser maior que zero")
	}

	totalWeight := input.WeightPerUnitKg.Mul(decimal.NewFromInt(int64(input.Quantity)))

	locationID := input.LocationID
	if locationID == "" {
		loc, err := uc.allocator.FindOptimalLocation(ctx, totalWeight)
		if err != nil {
			return nil, err
		}
		locationID = loc.ID
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Lot:            input.Lot,
		SeedTypeID:     input.SeedTypeID,
		Quantity:       input.Quantity,
		WeightPerUnit:  input.WeightPerUnitKg,
		TotalWeight:    totalWeight,
		LocationID:     &locationID,
		Status:         entity.ProductStatusLocado,
		Version:        0,
		ExpirationDate: input.ExpirationDate,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
		_ repository.WithdrawalRepository,
	) error {
		loc, err := locationRepo.GetByID(ctx, locationID)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.ErrNotFound
		}
		if result := uc.allocator.validateLocation(loc, totalWeight, ValidateOptions{NewPlacement: true}); !result.Valid {
			return capacityResultError(loc.ID, result)
		}
		// Guarda autoritativa: a escrita condicional em Occupy decide corridas
		// entre duas criações concorrentes na mesma localização.
		if err := locationRepo.Occupy(ctx, locationID, totalWeight); err != nil {
			return err
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return movementRepo.Create(ctx, &entity.Movement{
			Type:         entity.MovementTypeEntry,
			ProductID:    product.ID,
			ToLocationID: &locationID,
			Quantity:     product.Quantity,
			WeightKg:     totalWeight,
			UserID:       userID,
			Reason:       "entrada de produto",
			IsAutomatic:  true,
			Timestamp:    now,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// MoveProduct transfere um produto LOCADO para outra localização: valida a
// localização destino, ocupa a nova, libera a antiga, atualiza o produto (CAS de
// versão) e registra uma movimentação `transfer`.
func (uc *InventoryUseCase) MoveProduct(ctx context.Context, productID, newLocationID, userID string, opts MoveOptions) (*MoveResult, error) {
	if newLocationID == "" {
		return nil, domain.NewValidationError("newLocationId", "a localização de destino é obrigatória")
	}
	var result *MoveResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
		_ repository.WithdrawalRepository,
	) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Status != entity.ProductStatusLocado {
			return &domain.InvalidTransitionError{
				From: product.Status, To: entity.ProductStatusLocado,
				Message: "apenas produtos armazenados podem ser movidos",
			}
		}
		if product.LocationID == nil {
			return domain.NewValidationError("locationId", "produto sem localização atual")
		}
		oldLocationID := *product.LocationID
		if oldLocationID == newLocationID {
			return domain.NewValidationError("newLocationId", "a localização de destino é a atual")
		}

		oldLoc, err := locationRepo.GetByID(ctx, oldLocationID)
		if err != nil {
			return err
		}
		newLoc, err := locationRepo.GetByID(ctx, newLocationID)
		if err != nil {
			return err
		}
		if newLoc == nil {
			return domain.ErrNotFound
		}
		if res := uc.allocator.validateLocation(newLoc, product.TotalWeight, ValidateOptions{NewPlacement: true}); !res.Valid {
			return capacityResultError(newLoc.ID, res)
		}

		var benefit *decimal.Decimal
		if opts.WithBenefit && oldLoc != nil {
			delta := dominventory.LocationScore(newLoc).Sub(dominventory.LocationScore(oldLoc))
			benefit = &delta
		}

		if err := locationRepo.Occupy(ctx, newLocationID, product.TotalWeight); err != nil {
			return err
		}
		if err := locationRepo.Release(ctx, oldLocationID); err != nil {
			return err
		}

		expected := product.Version
		product.LocationID = &newLocationID
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateWithVersion(ctx, product, expected); err != nil {
			return err
		}

		now := time.Now()
		if err := movementRepo.Create(ctx, &entity.Movement{
			Type:           entity.MovementTypeTransfer,
			ProductID:      product.ID,
			FromLocationID: &oldLocationID,
			ToLocationID:   &newLocationID,
			Quantity:       product.Quantity,
			WeightKg:       product.TotalWeight,
			UserID:         userID,
			Reason:         reasonOrDefault(opts.Reason, "transferência de localização"),
			IsAutomatic:    true,
			Timestamp:      now,
			CreatedAt:      now,
		}); err != nil {
			return err
		}
		result = &MoveResult{
			Product:        product,
			FromLocationID: oldLocationID,
			ToLocationID:   newLocationID,
			BenefitScore:   benefit,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveProduct retirada total forçada, sem solicitação prévia: marca o produto
// RETIRADO, libera a localização e registra uma movimentação `exit`. Se havia
// uma solicitação aberta (produto AGUARDANDO_RETIRADA), ela é cancelada para não
// restar pendência órfã.
func (uc *InventoryUseCase) RemoveProduct(ctx context.Context, productID, userID, reason string) (*entity.Product, error) {
	var removed *entity.Product
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
		if !product.IsActive() {
			return &domain.InvalidTransitionError{
				From: product.Status, To: entity.ProductStatusRetirado,
				Message: "produto já retirado",
			}
		}
		if product.Status == entity.ProductStatusAguardandoRetirada {
			open, err := withdrawalRepo.GetOpenByProduct(ctx, product.ID)
			if err != nil {
				return err
			}
			if open != nil {
				if err := withdrawalRepo.Resolve(ctx, open.ID, entity.WithdrawalStatusCancelada, userID); err != nil {
					return err
				}
			}
		}
		locationID := product.LocationID
		expected := product.Version
		product.Status = entity.ProductStatusRetirado
		product.LocationID = nil
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateWithVersion(ctx, product, expected); err != nil {
			return err
		}
		if locationID != nil {
			if err := locationRepo.Release(ctx, *locationID); err != nil {
				return err
			}
		}
		now := time.Now()
		if err := movementRepo.Create(ctx, &entity.Movement{
			Type:           entity.MovementTypeExit,
			ProductID:      product.ID,
			FromLocationID: locationID,
			Quantity:       product.Quantity,
			WeightKg:       product.TotalWeight,
			UserID:         userID,
			Reason:         reasonOrDefault(reason, "remoção forçada"),
			IsAutomatic:    false,
			Timestamp:      now,
			CreatedAt:      now,
		}); err != nil {
			return err
		}
		removed = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// AdjustmentInput correção manual de quantidade de um produto LOCADO.
type AdjustmentInput struct {
	ProductID   string
	NewQuantity int
	Reason      string
}

// RegisterAdjustment correção manual de quantidade, sujeita às mesmas regras de
// capacidade do caminho automático. A movimentação resultante leva
// IsAutomatic=false e quantidade/peso com sinal (positivo entrada, negativo saída).
func (uc *InventoryUseCase) RegisterAdjustment(ctx context.Context, input AdjustmentInput, userID string) (*entity.Product, error) {
	if input.NewQuantity <= 0 {
		return nil, domain.NewValidationError("newQuantity", "a quantidade ajustada deve ser maior que zero; use a remoção para zerar")
	}
	if input.Reason == "" {
		return nil, domain.NewValidationError("reason", "o motivo do ajuste é obrigatório")
	}
	var adjusted *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
		_ repository.WithdrawalRepository,
	) error {
		product, err := productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Status != entity.ProductStatusLocado {
			return &domain.InvalidTransitionError{
				From: product.Status, To: entity.ProductStatusLocado,
				Message: "apenas produtos armazenados podem ser ajustados",
			}
		}
		if product.LocationID == nil {
			return domain.NewValidationError("locationId", "produto sem localização atual")
		}
		if input.NewQuantity == product.Quantity {
			return domain.NewValidationError("newQuantity", "a quantidade ajustada é igual à atual")
		}

		deltaQty := input.NewQuantity - product.Quantity
		deltaWeight := product.WeightPerUnit.Mul(decimal.NewFromInt(int64(deltaQty)))

		if deltaWeight.GreaterThan(decimal.Zero) {
			loc, err := locationRepo.GetByID(ctx, *product.LocationID)
			if err != nil {
				return err
			}
			if loc == nil {
				return domain.ErrNotFound
			}
			if res := uc.allocator.validateLocation(loc, deltaWeight, ValidateOptions{}); !res.Valid {
				return capacityResultError(loc.ID, res)
			}
		}
		if err := locationRepo.AddWeight(ctx, *product.LocationID, deltaWeight); err != nil {
			return err
		}

		expected := product.Version
		product.Quantity = input.NewQuantity
		product.RecalcTotalWeight()
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateWithVersion(ctx, product, expected); err != nil {
			return err
		}

		now := time.Now()
		if err := movementRepo.Create(ctx, &entity.Movement{
			Type:         entity.MovementTypeAdjustment,
			ProductID:    product.ID,
			ToLocationID: product.LocationID,
			Quantity:     deltaQty,
			WeightKg:     deltaWeight,
			UserID:       userID,
			Reason:       input.Reason,
			IsAutomatic:  false,
			Timestamp:    now,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		adjusted = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return adjusted, nil
}

// GetProduct leitura de um produto por ID (fora de transação).
func (uc *InventoryUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ValidateLocationCapacity variante somente-leitura da validação de capacidade,
// segura fora de transações mutantes.
func (uc *InventoryUseCase) ValidateLocationCapacity(ctx context.Context, locationID string, weightToAddKg decimal.Decimal, opts ValidateOptions) (*CapacityResult, error) {
	return uc.allocator.ValidateCapacity(ctx, locationID, weightToAddKg, opts)
}

// ListProductMovements histórico de movimentações de um produto.
func (uc *InventoryUseCase) ListProductMovements(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByProduct(ctx, productID, from, to, limit, offset)
}

// ListLocationMovements histórico de movimentações de uma localização.
func (uc *InventoryUseCase) ListLocationMovements(ctx context.Context, locationID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByLocation(ctx, locationID, from, to, limit, offset)
}

// capacityResultError converte um CapacityResult reprovado no erro tipado correspondente.
func capacityResultError(locationID string, result *CapacityResult) error {
	switch result.Code {
	case CodeLocationOccupied:
		return domain.ErrLocationOccupied
	case CodeInsufficientCapacity:
		return &domain.CapacityExceededError{LocationID: locationID, DeficitKg: result.DeficitKg}
	default:
		return domain.ErrValidation
	}
}

func reasonOrDefault(reason, def string) string {
	if reason == "" {
		return def
	}
	return reason
}
