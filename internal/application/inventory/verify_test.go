package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/inventory"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

func addMovement(s *memStore, id string, age time.Duration, verified bool) {
	s.movements = append(s.movements, &entity.Movement{
		ID:         id,
		Type:       entity.MovementTypeEntry,
		ProductID:  "prod-1",
		UserID:     testUser,
		IsVerified: verified,
		Timestamp:  time.Now().Add(-age),
	})
}

func TestVerifyPending_CortePadraoDe48h(t *testing.T) {
	s := newMemStore()
	addMovement(s, "mov-recente", 2*time.Hour, false)
	addMovement(s, "mov-antiga", 72*time.Hour, false)
	addMovement(s, "mov-verificada", 72*time.Hour, true)
	uc := inventory.NewVerificationUseCase(&memMovementRepo{s: s})

	pending, err := uc.VerifyPending(context.Background(), 0, 0)
	require.NoError(t, err)

	// Só a não verificada com mais de 48h aparece.
	require.Len(t, pending, 1)
	assert.Equal(t, "mov-antiga", pending[0].ID)
}

func TestVerifyPending_CorteCustomizado(t *testing.T) {
	s := newMemStore()
	addMovement(s, "mov-a", 2*time.Hour, false)
	addMovement(s, "mov-b", 10*time.Hour, false)
	uc := inventory.NewVerificationUseCase(&memMovementRepo{s: s})

	pending, err := uc.VerifyPending(context.Background(), 1, 0)
	require.NoError(t, err)

	// Mais antigas primeiro, as duas vencidas no corte de 1h.
	require.Len(t, pending, 2)
	assert.Equal(t, "mov-b", pending[0].ID)
	assert.Equal(t, "mov-a", pending[1].ID)
}

func TestVerifyPending_RespeitaLimite(t *testing.T) {
	s := newMemStore()
	addMovement(s, "mov-a", 80*time.Hour, false)
	addMovement(s, "mov-b", 70*time.Hour, false)
	addMovement(s, "mov-c", 60*time.Hour, false)
	uc := inventory.NewVerificationUseCase(&memMovementRepo{s: s})

	pending, err := uc.VerifyPending(context.Background(), 48, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "mov-a", pending[0].ID)
}

func TestMarkVerified_ConfirmaMovimentacao(t *testing.T) {
	s := newMemStore()
	addMovement(s, "mov-1", 72*time.Hour, false)
	uc := inventory.NewVerificationUseCase(&memMovementRepo{s: s})

	err := uc.MarkVerified(context.Background(), "mov-1", "auditor-1")
	require.NoError(t, err)

	m := s.movements[0]
	assert.True(t, m.IsVerified)
	assert.Equal(t, "auditor-1", m.VerifiedBy)
	require.NotNil(t, m.VerifiedAt)

	// Verificação é idempotente no sentido de não reconfirmar: segunda chamada falha.
	err = uc.MarkVerified(context.Background(), "mov-1", "auditor-2")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "auditor-1", m.VerifiedBy)
}

func TestMarkVerified_IDObrigatorio(t *testing.T) {
	uc := inventory.NewVerificationUseCase(&memMovementRepo{s: newMemStore()})
	err := uc.MarkVerified(context.Background(), "", testUser)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
