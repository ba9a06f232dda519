package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/inventory"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
)

func newAllocator(s *memStore) *inventory.LocationAllocator {
	return inventory.NewLocationAllocator(&memLocationRepo{s: s})
}

func TestValidateCapacity_Aprovada(t *testing.T) {
	s := newMemStore()
	s.addLocation("loc-1", 1, 1000)
	alloc := newAllocator(s)

	result, err := alloc.ValidateCapacity(context.Background(), "loc-1", decimal.NewFromInt(600), inventory.ValidateOptions{NewPlacement: true})
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, inventory.CodeCapacityOK, result.Code)
	require.NotNil(t, result.Analysis)
	assert.True(t, result.Analysis.AvailableCapacityKg.Equal(decimal.NewFromInt(400)))
	assert.True(t, result.Analysis.UtilizationAfterPct.Equal(decimal.NewFromInt(60)), "utilização = %s", result.Analysis.UtilizationAfterPct)
}

func TestValidateCapacity_LocalizacaoOcupada(t *testing.T) {
	s := newMemStore()
	loc := s.addLocation("loc-1", 1, 1000)
	loc.IsOccupied = true
	loc.CurrentWeightKg = decimal.NewFromInt(300)
	alloc := newAllocator(s)

	result, err := alloc.ValidateCapacity(context.Background(), "loc-1", decimal.NewFromInt(100), inventory.ValidateOptions{NewPlacement: true})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, inventory.CodeLocationOccupied, result.Code)
}

func TestValidateCapacity_DeficitComSugestoes(t *testing.T) {
	s := newMemStore()
	s.addLocation("loc-cheia", 1, 500)
	s.addLocation("loc-a2", 2, 2000)
	s.addLocation("loc-a1", 1, 2000)
	alloc := newAllocator(s)

	result, err := alloc.ValidateCapacity(context.Background(), "loc-cheia", decimal.NewFromInt(800), inventory.ValidateOptions{
		NewPlacement:    true,
		WithSuggestions: true,
	})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, inventory.CodeInsufficientCapacity, result.Code)
	assert.True(t, result.DeficitKg.Equal(decimal.NewFromInt(300)), "déficit = %s", result.DeficitKg)

	// Alternativas ranqueadas por score, sem a própria localização validada.
	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, "loc-a1", result.Suggestions[0].Location.ID)
	assert.Equal(t, "loc-a2", result.Suggestions[1].Location.ID)
	assert.True(t, result.Suggestions[0].Score.GreaterThan(result.Suggestions[1].Score))
}

func TestValidateCapacity_LocalizacaoInexistente(t *testing.T) {
	s := newMemStore()
	alloc := newAllocator(s)

	_, err := alloc.ValidateCapacity(context.Background(), "nao-existe", decimal.NewFromInt(10), inventory.ValidateOptions{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestFindOptimalLocation_PrefereAndarBaixo(t *testing.T) {
	s := newMemStore()
	s.addLocation("loc-a4", 4, 3000)
	s.addLocation("loc-a2", 2, 3000)
	s.addLocation("loc-estreita", 1, 200)
	alloc := newAllocator(s)

	best, err := alloc.FindOptimalLocation(context.Background(), decimal.NewFromInt(500))
	require.NoError(t, err)
	// A do andar 1 não comporta 500 kg; entre as restantes vence o andar 2.
	assert.Equal(t, "loc-a2", best.ID)
}

func TestFindOptimalLocation_IgnoraOcupadas(t *testing.T) {
	s := newMemStore()
	occupied := s.addLocation("loc-a1", 1, 3000)
	occupied.IsOccupied = true
	s.addLocation("loc-a3", 3, 3000)
	alloc := newAllocator(s)

	best, err := alloc.FindOptimalLocation(context.Background(), decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, "loc-a3", best.ID)
}

func TestFindOptimalLocation_NenhumaDisponivel(t *testing.T) {
	s := newMemStore()
	s.addLocation("loc-1", 1, 100)
	alloc := newAllocator(s)

	_, err := alloc.FindOptimalLocation(context.Background(), decimal.NewFromInt(500))
	assert.True(t, errors.Is(err, domain.ErrNoLocationAvailable))
}

func TestFindOptimalLocation_PesoInvalido(t *testing.T) {
	s := newMemStore()
	alloc := newAllocator(s)

	_, err := alloc.FindOptimalLocation(context.Background(), decimal.Zero)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
