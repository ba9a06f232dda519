package inventory

import (
	"context"
	"sort"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	dominventory "github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/inventory"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Códigos de resultado da validação de capacidade.
const (
	CodeCapacityOK           = "CAPACITY_OK"
	CodeLocationOccupied     = "LOCATION_OCCUPIED"
	CodeInsufficientCapacity = "INSUFFICIENT_CAPACITY"
)

// CapacityAnalysis detalhes quando a validação passa.
type CapacityAnalysis struct {
	AvailableCapacityKg decimal.Decimal
	UtilizationAfterPct decimal.Decimal
}

// LocationSuggestion localização alternativa com sua pontuação de alocação.
type LocationSuggestion struct {
	Location *entity.Location
	Score    decimal.Decimal
}

// CapacityResult resultado da validação de capacidade de uma localização.
// DeficitKg é preenchido apenas em INSUFFICIENT_CAPACITY; Suggestions apenas
// quando solicitadas em ValidateOptions.
type CapacityResult struct {
	Valid       bool
	Code        string
	DeficitKg   decimal.Decimal
	Analysis    *CapacityAnalysis
	Suggestions []LocationSuggestion
}

// ValidateOptions opções da validação de capacidade.
type ValidateOptions struct {
	// NewPlacement indica que a validação é para colocar um produto novo:
	// localização ocupada reprova com LOCATION_OCCUPIED.
	NewPlacement bool
	// WithSuggestions inclui localizações alternativas ranqueadas por score.
	WithSuggestions bool
	MaxSuggestions  int
}

// LocationAllocator valida e seleciona localizações (ocupação e capacidade).
// As mutações em si (Occupy/Release/AddWeight) acontecem nos repositórios,
// sempre dentro da transação da fachada.
type LocationAllocator struct {
	locationRepo repository.LocationRepository
}

// NewLocationAllocator constrói o alocador.
func NewLocationAllocator(locationRepo repository.LocationRepository) *LocationAllocator {
	return &LocationAllocator{locationRepo: locationRepo}
}

// ValidateCapacity verifica, nesta ordem: existência da localização, ocupação
// (para colocação nova) e capacidade. Leitura pura; não muta estado.
func (a *LocationAllocator) ValidateCapacity(ctx context.Context, locationID string, weightToAddKg decimal.Decimal, opts ValidateOptions) (*CapacityResult, error) {
	loc, err := a.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	result := a.validateLocation(loc, weightToAddKg, opts)
	if !result.Valid && opts.WithSuggestions {
		suggestions, err := a.suggest(ctx, weightToAddKg, loc.ID, opts.MaxSuggestions)
		if err != nil {
			return nil, err
		}
		result.Suggestions = suggestions
	}
	return result, nil
}

// validateLocation aplica as regras de ocupação e capacidade sobre um snapshot
// já carregado (usado também dentro de transações pela fachada).
func (a *LocationAllocator) validateLocation(loc *entity.Location, weightToAddKg decimal.Decimal, opts ValidateOptions) *CapacityResult {
	if opts.NewPlacement && loc.IsOccupied {
		return &CapacityResult{Valid: false, Code: CodeLocationOccupied}
	}
	after := loc.CurrentWeightKg.Add(weightToAddKg)
	if after.GreaterThan(loc.MaxCapacityKg) {
		return &CapacityResult{
			Valid:     false,
			Code:      CodeInsufficientCapacity,
			DeficitKg: after.Sub(loc.MaxCapacityKg),
		}
	}
	analysis := &CapacityAnalysis{AvailableCapacityKg: loc.MaxCapacityKg.Sub(after)}
	if loc.MaxCapacityKg.GreaterThan(decimal.Zero) {
		analysis.UtilizationAfterPct = after.Div(loc.MaxCapacityKg).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return &CapacityResult{Valid: true, Code: CodeCapacityOK, Analysis: analysis}
}

// FindOptimalLocation escolhe, entre as localizações desocupadas com capacidade
// suficiente, a de maior pontuação (andar baixo, mais capacidade restante).
// Retorna domain.ErrNoLocationAvailable quando nenhuma qualifica.
func (a *LocationAllocator) FindOptimalLocation(ctx context.Context, requiredWeightKg decimal.Decimal) (*entity.Location, error) {
	if requiredWeightKg.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("weightPerUnit", "o peso por unidade deve ser maior que zero")
	}
	candidates, err := a.locationRepo.ListAvailable(ctx, requiredWeightKg, 0)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoLocationAvailable
	}
	best := candidates[0]
	for _, loc := range candidates[1:] {
		if dominventory.BetterLocation(loc, best) {
			best = loc
		}
	}
	return best, nil
}

// suggest lista localizações desocupadas alternativas com capacidade para o peso,
// ranqueadas por score decrescente.
func (a *LocationAllocator) suggest(ctx context.Context, weightKg decimal.Decimal, excludeID string, max int) ([]LocationSuggestion, error) {
	if max <= 0 {
		max = 5
	}
	candidates, err := a.locationRepo.ListAvailable(ctx, weightKg, 0)
	if err != nil {
		return nil, err
	}
	suggestions := make([]LocationSuggestion, 0, len(candidates))
	for _, loc := range candidates {
		if loc.ID == excludeID {
			continue
		}
		suggestions = append(suggestions, LocationSuggestion{Location: loc, Score: dominventory.LocationScore(loc)})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return dominventory.BetterLocation(suggestions[i].Location, suggestions[j].Location)
	})
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions, nil
}
