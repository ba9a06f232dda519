package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação do livro-razão.
const (
	MovementTypeEntry      = "entry"
	MovementTypeExit       = "exit"
	MovementTypeTransfer   = "transfer"
	MovementTypeAdjustment = "adjustment"
)

// Movement registro imutável do livro-razão de inventário. Toda mutação de
// produto confirma acompanhada de exatamente uma movimentação; o registro nunca
// é alterado depois de gravado, exceto pela marcação de verificação.
type Movement struct {
	ID             string
	Type           string
	ProductID      string
	FromLocationID *string
	ToLocationID   *string
	Quantity       int
	WeightKg       decimal.Decimal
	UserID         string
	Reason         string
	IsAutomatic    bool
	IsVerified     bool
	VerifiedAt     *time.Time
	VerifiedBy     string
	Timestamp      time.Time
	CreatedAt      time.Time
}
