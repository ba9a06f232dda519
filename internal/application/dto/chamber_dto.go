package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// CreateChamberRequest criação de câmara.
type CreateChamberRequest struct {
	Name              string          `json:"name" validate:"required"`
	Description       string          `json:"description"`
	Quadras           int             `json:"quadras" validate:"required,min=1"`
	Lados             int             `json:"lados" validate:"required,min=1"`
	Filas             int             `json:"filas" validate:"required,min=1"`
	Andares           int             `json:"andares" validate:"required,min=1"`
	DefaultCapacityKg decimal.Decimal `json:"defaultCapacityKg" validate:"required"`
}

// UpdateChamberRequest atualização parcial de câmara.
type UpdateChamberRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Quadras     *int    `json:"quadras"`
	Lados       *int    `json:"lados"`
	Filas       *int    `json:"filas"`
	Andares     *int    `json:"andares"`
}

// ChamberResponse câmara em respostas.
type ChamberResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Status            string          `json:"status"`
	Quadras           int             `json:"quadras"`
	Lados             int             `json:"lados"`
	Filas             int             `json:"filas"`
	Andares           int             `json:"andares"`
	TotalLocations    int             `json:"totalLocations"`
	DefaultCapacityKg decimal.Decimal `json:"defaultCapacityKg"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ToChamberResponse converte a entidade para o DTO de resposta.
func ToChamberResponse(c *entity.Chamber) *ChamberResponse {
	if c == nil {
		return nil
	}
	return &ChamberResponse{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		Status:            c.Status,
		Quadras:           c.Dimensions.Quadras,
		Lados:             c.Dimensions.Lados,
		Filas:             c.Dimensions.Filas,
		Andares:           c.Dimensions.Andares,
		TotalLocations:    c.Dimensions.TotalLocations(),
		DefaultCapacityKg: c.DefaultCapacityKg,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// LocationResponse localização em respostas.
type LocationResponse struct {
	ID              string          `json:"id"`
	ChamberID       string          `json:"chamberId"`
	Code            string          `json:"code"`
	Quadra          int             `json:"quadra"`
	Lado            int             `json:"lado"`
	Fila            int             `json:"fila"`
	Andar           int             `json:"andar"`
	MaxCapacityKg   decimal.Decimal `json:"maxCapacityKg"`
	CurrentWeightKg decimal.Decimal `json:"currentWeightKg"`
	IsOccupied      bool            `json:"isOccupied"`
}

// ToLocationResponse converte a entidade para o DTO de resposta.
func ToLocationResponse(l *entity.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:              l.ID,
		ChamberID:       l.ChamberID,
		Code:            l.Code,
		Quadra:          l.Coordinates.Quadra,
		Lado:            l.Coordinates.Lado,
		Fila:            l.Coordinates.Fila,
		Andar:           l.Coordinates.Andar,
		MaxCapacityKg:   l.MaxCapacityKg,
		CurrentWeightKg: l.CurrentWeightKg,
		IsOccupied:      l.IsOccupied,
	}
}
