package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

const withdrawalColumns = `id, product_id, type, quantity_requested, status, reason,
	requested_by, resolved_by, requested_at, resolved_at`

// WithdrawalRepo implementação de WithdrawalRepository sobre PostgreSQL (usável com pool ou tx).
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste uma solicitação de retirada.
func (r *WithdrawalRepo) Create(ctx context.Context, w *entity.WithdrawalRequest) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	query := `
		INSERT INTO withdrawal_requests (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		w.ID, w.ProductID, w.Type, w.QuantityRequested, w.Status, nullIfEmpty(w.Reason),
		w.RequestedBy, nullIfEmpty(w.ResolvedBy), w.RequestedAt, w.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("create withdrawal request: %w", err)
	}
	return nil
}

// GetByID obtém uma solicitação por ID (nil se não existe).
func (r *WithdrawalRepo) GetByID(ctx context.Context, id string) (*entity.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`
	w, err := scanWithdrawal(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal request: %w", err)
	}
	return w, nil
}

// GetOpenByProduct retorna a solicitação PENDENTE do produto (nil se nenhuma).
func (r *WithdrawalRepo) GetOpenByProduct(ctx context.Context, productID string) (*entity.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
		WHERE product_id = $1 AND status = $2`
	w, err := scanWithdrawal(r.q.QueryRow(ctx, query, productID, entity.WithdrawalStatusPendente))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open withdrawal request: %w", err)
	}
	return w, nil
}

// Resolve fecha a solicitação exatamente uma vez: a escrita é condicionada a
// status PENDENTE; zero linhas significa já resolvida (ou inexistente).
func (r *WithdrawalRepo) Resolve(ctx context.Context, id, status, userID string) error {
	query := `
		UPDATE withdrawal_requests
		SET status = $1, resolved_by = $2, resolved_at = now()
		WHERE id = $3 AND status = $4`
	tag, err := r.q.Exec(ctx, query, status, userID, id, entity.WithdrawalStatusPendente)
	if err != nil {
		return fmt.Errorf("resolve withdrawal request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProduct lista solicitações de um produto (mais recentes primeiro).
func (r *WithdrawalRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
		WHERE product_id = $1 ORDER BY requested_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawal requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.WithdrawalRequest
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan withdrawal request: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func scanWithdrawal(row pgx.Row) (*entity.WithdrawalRequest, error) {
	var w entity.WithdrawalRequest
	var reason, resolvedBy *string
	if err := row.Scan(
		&w.ID, &w.ProductID, &w.Type, &w.QuantityRequested, &w.Status, &reason,
		&w.RequestedBy, &resolvedBy, &w.RequestedAt, &w.ResolvedAt,
	); err != nil {
		return nil, err
	}
	if reason != nil {
		w.Reason = *reason
	}
	if resolvedBy != nil {
		w.ResolvedBy = *resolvedBy
	}
	return &w, nil
}
