package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do ciclo de vida de um produto (lote de sementes) na câmara fria.
// LOCADO → AGUARDANDO_RETIRADA → LOCADO (cancelamento/retirada parcial) ou RETIRADO (terminal).
const (
	ProductStatusLocado             = "LOCADO"
	ProductStatusAguardandoRetirada = "AGUARDANDO_RETIRADA"
	ProductStatusRetirado           = "RETIRADO"
)

// Product representa um lote de sementes armazenado em uma localização.
// TotalWeight é sempre Quantity × WeightPerUnit (recalculado a cada mudança de quantidade).
// Version cresce exatamente 1 a cada mutação confirmada (optimistic locking).
type Product struct {
	ID             string
	Lot            string // código de lote de negócio
	SeedTypeID     string
	Quantity       int             // unidades (sacas)
	WeightPerUnit  decimal.Decimal // kg por unidade
	TotalWeight    decimal.Decimal // kg, denormalizado
	LocationID     *string         // preenchido apenas enquanto LOCADO/AGUARDANDO_RETIRADA
	Status         string
	Version        int // inicia em 0
	ExpirationDate *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecalcTotalWeight recalcula TotalWeight a partir de Quantity e WeightPerUnit.
func (p *Product) RecalcTotalWeight() {
	p.TotalWeight = p.WeightPerUnit.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// IsActive indica se o produto ainda ocupa uma localização (não terminal).
func (p *Product) IsActive() bool {
	return p.Status != ProductStatusRetirado
}
