package entity

import (
	"encoding/json"
	"time"
)

// SeedType tipo de semente com atributos dinâmicos (schema-less).
// Os atributos são apenas descritivos; o motor de inventário os consome mas não os valida.
type SeedType struct {
	ID                 string
	Name               string
	Description        string
	OptimalTemperature *float64 // °C
	OptimalHumidity    *float64 // %
	MaxStorageTimeDays *int
	Attributes         json.RawMessage // chave string → valor arbitrário
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
