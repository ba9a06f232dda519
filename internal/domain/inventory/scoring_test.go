package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/inventory"
)

func loc(code string, andar int, maxKg, currentKg int64) *entity.Location {
	return &entity.Location{
		ID:              code,
		Code:            code,
		Coordinates:     entity.Coordinates{Quadra: 1, Lado: 1, Fila: 1, Andar: andar},
		MaxCapacityKg:   decimal.NewFromInt(maxKg),
		CurrentWeightKg: decimal.NewFromInt(currentKg),
	}
}

func TestLocationScore_AndarBaixoVazio(t *testing.T) {
	// Localização vazia no andar 1: 100% disponível, sem penalidade.
	score := inventory.LocationScore(loc("Q1-L1-F1-A1", 1, 1000, 0))
	assert.True(t, score.Equal(decimal.NewFromInt(100)), "score = %s", score)
}

func TestLocationScore_PenalidadePorAndar(t *testing.T) {
	// Mesmo estado, andar 3: penalidade de (3-1)×10 = 20 pontos.
	score := inventory.LocationScore(loc("Q1-L1-F1-A3", 3, 1000, 0))
	assert.True(t, score.Equal(decimal.NewFromInt(80)), "score = %s", score)
}

func TestLocationScore_CapacidadeParcial(t *testing.T) {
	// 600/1000 ocupados no andar 2: 40 − 10 = 30.
	score := inventory.LocationScore(loc("Q1-L1-F1-A2", 2, 1000, 600))
	assert.True(t, score.Equal(decimal.NewFromInt(30)), "score = %s", score)
}

func TestLocationScore_CapacidadeZero(t *testing.T) {
	score := inventory.LocationScore(loc("Q1-L1-F1-A1", 1, 0, 0))
	assert.True(t, score.IsZero())
}

func TestBetterLocation_MaiorScoreVence(t *testing.T) {
	a := loc("Q1-L1-F1-A1", 1, 1000, 0) // score 100
	b := loc("Q1-L1-F1-A3", 3, 1000, 0) // score 80
	assert.True(t, inventory.BetterLocation(a, b))
	assert.False(t, inventory.BetterLocation(b, a))
}

func TestBetterLocation_EmpateResolvePorAndar(t *testing.T) {
	// Scores iguais (90): andar 1 com 10% ocupado vs andar 2 vazio.
	a := loc("Q1-L1-F1-A1", 1, 1000, 100)
	b := loc("Q1-L1-F1-A2", 2, 1000, 0)
	assert.True(t, inventory.BetterLocation(a, b), "empate de score resolve pelo andar mais baixo")
}

func TestBetterLocation_EmpateTotalResolvePorCodigo(t *testing.T) {
	a := loc("Q1-L1-F1-A1", 1, 1000, 0)
	b := loc("Q2-L1-F1-A1", 1, 1000, 0)
	assert.True(t, inventory.BetterLocation(a, b))
	assert.False(t, inventory.BetterLocation(b, a))
}
