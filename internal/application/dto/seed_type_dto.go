package dto

import (
	"encoding/json"
	"time"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// CreateSeedTypeRequest criação de tipo de semente. Attributes é JSON livre
// (chave → valor arbitrário).
type CreateSeedTypeRequest struct {
	Name               string          `json:"name" validate:"required"`
	Description        string          `json:"description"`
	OptimalTemperature *float64        `json:"optimalTemperature"`
	OptimalHumidity    *float64        `json:"optimalHumidity"`
	MaxStorageTimeDays *int            `json:"maxStorageTimeDays"`
	Attributes         json.RawMessage `json:"attributes"`
}

// SeedTypeResponse tipo de semente em respostas.
type SeedTypeResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	OptimalTemperature *float64        `json:"optimalTemperature,omitempty"`
	OptimalHumidity    *float64        `json:"optimalHumidity,omitempty"`
	MaxStorageTimeDays *int            `json:"maxStorageTimeDays,omitempty"`
	Attributes         json.RawMessage `json:"attributes,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ToSeedTypeResponse converte a entidade para o DTO de resposta.
func ToSeedTypeResponse(s *entity.SeedType) *SeedTypeResponse {
	if s == nil {
		return nil
	}
	return &SeedTypeResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		OptimalTemperature: s.OptimalTemperature,
		OptimalHumidity:    s.OptimalHumidity,
		MaxStorageTimeDays: s.MaxStorageTimeDays,
		Attributes:         s.Attributes,
		CreatedAt:          s.CreatedAt,
	}
}
