package inventory

import (
	"context"
	"time"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

// DefaultStaleThresholdHours corte padrão para considerar uma movimentação
// pendente de verificação como atrasada.
const DefaultStaleThresholdHours = 48

// VerificationUseCase auxílio de reconciliação: varre movimentações não
// verificadas mais antigas que o corte e as reporta para confirmação manual ou
// automática. Não participa do caminho transacional.
type VerificationUseCase struct {
	movementRepo repository.MovementRepository
}

// NewVerificationUseCase constrói o caso de uso.
func NewVerificationUseCase(movementRepo repository.MovementRepository) *VerificationUseCase {
	return &VerificationUseCase{movementRepo: movementRepo}
}

// VerifyPending lista as movimentações não verificadas anteriores ao corte
// (staleThresholdHours ≤ 0 usa o padrão de 48h).
func (uc *VerificationUseCase) VerifyPending(ctx context.Context, staleThresholdHours, limit int) ([]*entity.Movement, error) {
	if staleThresholdHours <= 0 {
		staleThresholdHours = DefaultStaleThresholdHours
	}
	cutoff := time.Now().Add(-time.Duration(staleThresholdHours) * time.Hour)
	return uc.movementRepo.ListUnverifiedBefore(ctx, cutoff, limit)
}

// MarkVerified confirma manualmente uma movimentação pendente.
func (uc *VerificationUseCase) MarkVerified(ctx context.Context, movementID, userID string) error {
	if movementID == "" {
		return domain.NewValidationError("movementId", "o id da movimentação é obrigatório")
	}
	return uc.movementRepo.MarkVerified(ctx, movementID, userID)
}
