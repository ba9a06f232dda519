package inventory

import (
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Penalidade por andar acima do primeiro (acesso físico mais difícil).
var andarPenalty = decimal.NewFromInt(10)

// LocationScore pontuação de uma localização para alocação ótima (serviço de domínio).
// Score = (capacidade disponível / capacidade máxima) × 100 − (andar − 1) × 10.
// Quanto maior, melhor: favorece andares baixos e maior capacidade restante.
func LocationScore(loc *entity.Location) decimal.Decimal {
	if loc.MaxCapacityKg.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := loc.AvailableCapacityKg().Div(loc.MaxCapacityKg).Mul(decimal.NewFromInt(100))
	penalty := andarPenalty.Mul(decimal.NewFromInt(int64(loc.Coordinates.Andar - 1)))
	return pct.Sub(penalty)
}

// BetterLocation compara duas localizações candidatas: maior score vence; empate
// resolve por andar mais baixo e, por fim, pelo código (ordem estável).
func BetterLocation(a, b *entity.Location) bool {
	sa, sb := LocationScore(a), LocationScore(b)
	if !sa.Equal(sb) {
		return sa.GreaterThan(sb)
	}
	if a.Coordinates.Andar != b.Coordinates.Andar {
		return a.Coordinates.Andar < b.Coordinates.Andar
	}
	return a.Code < b.Code
}
