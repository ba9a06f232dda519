package entity

import "time"

// Tipos de retirada.
const (
	WithdrawalTypeTotal   = "TOTAL"
	WithdrawalTypeParcial = "PARCIAL"
)

// Estados de solicitação de retirada.
const (
	WithdrawalStatusPendente   = "PENDENTE"
	WithdrawalStatusConfirmada = "CONFIRMADA"
	WithdrawalStatusCancelada  = "CANCELADA"
)

// WithdrawalRequest solicitação de retirada de um produto. No máximo uma
// solicitação PENDENTE por produto, garantido pelo estado AGUARDANDO_RETIRADA.
type WithdrawalRequest struct {
	ID                string
	ProductID         string
	Type              string
	QuantityRequested int
	Status            string
	Reason            string
	RequestedBy       string
	ResolvedBy        string
	RequestedAt       time.Time
	ResolvedAt        *time.Time
}

// IsOpen indica se a solicitação ainda aguarda resolução.
func (w *WithdrawalRequest) IsOpen() bool {
	return w.Status == WithdrawalStatusPendente
}
