package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Coordinates posição física dentro da câmara: quadra, lado, fila e andar.
type Coordinates struct {
	Quadra int
	Lado   int
	Fila   int
	Andar  int
}

// Code código canônico da localização ("Q1-L2-F3-A4").
func (c Coordinates) Code() string {
	return fmt.Sprintf("Q%d-L%d-F%d-A%d", c.Quadra, c.Lado, c.Fila, c.Andar)
}

// Location posição de armazenamento em uma câmara. No máximo um produto ativo
// por localização; desocupada implica peso zero.
type Location struct {
	ID              string
	ChamberID       string
	Code            string
	Coordinates     Coordinates
	MaxCapacityKg   decimal.Decimal
	CurrentWeightKg decimal.Decimal
	IsOccupied      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AvailableCapacityKg capacidade restante da localização.
func (l *Location) AvailableCapacityKg() decimal.Decimal {
	return l.MaxCapacityKg.Sub(l.CurrentWeightKg)
}
