package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados operacionais de câmara.
const (
	ChamberStatusAtiva      = "ATIVA"
	ChamberStatusManutencao = "MANUTENCAO"
)

// Dimensions grade da câmara: a geração de localizações percorre o produto
// cartesiano quadras × lados × filas × andares.
type Dimensions struct {
	Quadras int
	Lados   int
	Filas   int
	Andares int
}

// TotalLocations quantidade de localizações da grade completa.
func (d Dimensions) TotalLocations() int {
	return d.Quadras * d.Lados * d.Filas * d.Andares
}

// Chamber câmara fria de armazenamento de sementes.
type Chamber struct {
	ID                string
	Name              string
	Description       string
	Status            string
	Dimensions        Dimensions
	DefaultCapacityKg decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
