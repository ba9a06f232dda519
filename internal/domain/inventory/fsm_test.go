package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/inventory"
)

func TestCanTransition_TransicoesPermitidas(t *testing.T) {
	assert.True(t, inventory.CanTransition(entity.ProductStatusLocado, entity.ProductStatusAguardandoRetirada))
	assert.True(t, inventory.CanTransition(entity.ProductStatusAguardandoRetirada, entity.ProductStatusLocado))
	assert.True(t, inventory.CanTransition(entity.ProductStatusAguardandoRetirada, entity.ProductStatusRetirado))
}

func TestCanTransition_TransicoesProibidas(t *testing.T) {
	// LOCADO não vai direto a RETIRADO: a retirada exige solicitação prévia.
	assert.False(t, inventory.CanTransition(entity.ProductStatusLocado, entity.ProductStatusRetirado))
	// RETIRADO é terminal.
	assert.False(t, inventory.CanTransition(entity.ProductStatusRetirado, entity.ProductStatusLocado))
	assert.False(t, inventory.CanTransition(entity.ProductStatusRetirado, entity.ProductStatusAguardandoRetirada))
	// Auto-transições não existem na máquina.
	assert.False(t, inventory.CanTransition(entity.ProductStatusLocado, entity.ProductStatusLocado))
}

func TestEnsureTransition_RetornaErroTipado(t *testing.T) {
	err := inventory.EnsureTransition(entity.ProductStatusRetirado, entity.ProductStatusLocado)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

	var invalidTransition *domain.InvalidTransitionError
	require.True(t, errors.As(err, &invalidTransition))
	assert.Equal(t, entity.ProductStatusRetirado, invalidTransition.From)
	assert.Equal(t, entity.ProductStatusLocado, invalidTransition.To)
}

func TestEnsureTransition_SegundaSolicitacaoBloqueada(t *testing.T) {
	// Produto já AGUARDANDO_RETIRADA não admite outra solicitação.
	err := inventory.EnsureTransition(entity.ProductStatusAguardandoRetirada, entity.ProductStatusAguardandoRetirada)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apenas produtos armazenados")
}

func TestEnsureTransition_Valida(t *testing.T) {
	assert.NoError(t, inventory.EnsureTransition(entity.ProductStatusLocado, entity.ProductStatusAguardandoRetirada))
	assert.NoError(t, inventory.EnsureTransition(entity.ProductStatusAguardandoRetirada, entity.ProductStatusRetirado))
}
