package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// CreateProductRequest criação de produto. locationId vazio aciona a seleção
// automática da localização ótima.
type CreateProductRequest struct {
	Lot             string          `json:"lot" validate:"required"`
	SeedTypeID      string          `json:"seedTypeId" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,min=1"`
	WeightPerUnitKg decimal.Decimal `json:"weightPerUnitKg" validate:"required"`
	LocationID      string          `json:"locationId"`
	ExpirationDate  *time.Time      `json:"expirationDate"`
	Notes           string          `json:"notes"`
}

// MoveProductRequest transferência de produto para outra localização.
type MoveProductRequest struct {
	NewLocationID string `json:"newLocationId" validate:"required"`
	Reason        string `json:"reason"`
	WithBenefit   bool   `json:"withBenefit"`
}

// RemoveProductRequest remoção forçada (retirada total sem solicitação prévia).
type RemoveProductRequest struct {
	Reason string `json:"reason"`
}

// AdjustProductRequest correção manual de quantidade.
type AdjustProductRequest struct {
	NewQuantity int    `json:"newQuantity" validate:"required,min=1"`
	Reason      string `json:"reason" validate:"required"`
}

// RequestWithdrawalRequest solicitação de retirada.
type RequestWithdrawalRequest struct {
	Type              string `json:"type" validate:"required"` // TOTAL | PARCIAL
	QuantityRequested int    `json:"quantityRequested"`
	Reason            string `json:"reason"`
}

// ConfirmWithdrawalRequest confirmação de retirada; quantity nulo = total.
type ConfirmWithdrawalRequest struct {
	Quantity *int   `json:"quantity"`
	Reason   string `json:"reason"`
}

// CancelWithdrawalRequest cancelamento da solicitação aberta.
type CancelWithdrawalRequest struct {
	Reason string `json:"reason"`
}

// ValidateCapacityRequest validação somente-leitura de capacidade.
type ValidateCapacityRequest struct {
	WeightToAddKg   decimal.Decimal `json:"weightToAddKg" validate:"required"`
	NewPlacement    bool            `json:"newPlacement"`
	WithSuggestions bool            `json:"withSuggestions"`
	MaxSuggestions  int             `json:"maxSuggestions"`
}

// ProductResponse produto em respostas.
type ProductResponse struct {
	ID             string          `json:"id"`
	Lot            string          `json:"lot"`
	SeedTypeID     string          `json:"seedTypeId"`
	Quantity       int             `json:"quantity"`
	WeightPerUnit  decimal.Decimal `json:"weightPerUnitKg"`
	TotalWeight    decimal.Decimal `json:"totalWeightKg"`
	LocationID     *string         `json:"locationId,omitempty"`
	Status         string          `json:"status"`
	Version        int             `json:"version"`
	ExpirationDate *time.Time      `json:"expirationDate,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToProductResponse converte a entidade para o DTO de resposta.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:             p.ID,
		Lot:            p.Lot,
		SeedTypeID:     p.SeedTypeID,
		Quantity:       p.Quantity,
		WeightPerUnit:  p.WeightPerUnit,
		TotalWeight:    p.TotalWeight,
		LocationID:     p.LocationID,
		Status:         p.Status,
		Version:        p.Version,
		ExpirationDate: p.ExpirationDate,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// MovementResponse movimentação em respostas.
type MovementResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	ProductID      string          `json:"productId"`
	FromLocationID *string         `json:"fromLocationId,omitempty"`
	ToLocationID   *string         `json:"toLocationId,omitempty"`
	Quantity       int             `json:"quantity"`
	WeightKg       decimal.Decimal `json:"weightKg"`
	UserID         string          `json:"userId"`
	Reason         string          `json:"reason,omitempty"`
	IsAutomatic    bool            `json:"isAutomatic"`
	IsVerified     bool            `json:"isVerified"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ToMovementResponse converte a entidade para o DTO de resposta.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:             m.ID,
		Type:           m.Type,
		ProductID:      m.ProductID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Quantity:       m.Quantity,
		WeightKg:       m.WeightKg,
		UserID:         m.UserID,
		Reason:         m.Reason,
		IsAutomatic:    m.IsAutomatic,
		IsVerified:     m.IsVerified,
		Timestamp:      m.Timestamp,
	}
}

// WithdrawalResponse solicitação de retirada em respostas.
type WithdrawalResponse struct {
	ID                string     `json:"id"`
	ProductID         string     `json:"productId"`
	Type              string     `json:"type"`
	QuantityRequested int        `json:"quantityRequested"`
	Status            string     `json:"status"`
	Reason            string     `json:"reason,omitempty"`
	RequestedBy       string     `json:"requestedBy"`
	ResolvedBy        string     `json:"resolvedBy,omitempty"`
	RequestedAt       time.Time  `json:"requestedAt"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
}

// ToWithdrawalResponse converte a entidade para o DTO de resposta.
func ToWithdrawalResponse(w *entity.WithdrawalRequest) *WithdrawalResponse {
	if w == nil {
		return nil
	}
	return &WithdrawalResponse{
		ID:                w.ID,
		ProductID:         w.ProductID,
		Type:              w.Type,
		QuantityRequested: w.QuantityRequested,
		Status:            w.Status,
		Reason:            w.Reason,
		RequestedBy:       w.RequestedBy,
		ResolvedBy:        w.ResolvedBy,
		RequestedAt:       w.RequestedAt,
		ResolvedAt:        w.ResolvedAt,
	}
}
