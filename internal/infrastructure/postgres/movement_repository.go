package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, type, product_id, from_location_id, to_location_id,
	quantity, weight_kg, user_id, reason, is_automatic, is_verified, verified_at, verified_by,
	timestamp, created_at`

// MovementRepo implementação do livro-razão sobre PostgreSQL (usável com pool ou tx).
// Somente INSERT no caminho transacional; a tabela não tem UPDATE além da
// marcação de verificação nem DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação (append).
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Type, m.ProductID, m.FromLocationID, m.ToLocationID,
		m.Quantity, m.WeightKg, m.UserID, nullIfEmpty(m.Reason), m.IsAutomatic,
		m.IsVerified, m.VerifiedAt, nullIfEmpty(m.VerifiedBy), m.Timestamp, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID (nil se não existe).
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByProduct lista movimentações de um produto em um intervalo de datas.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.listBy(ctx, "product_id", productID, from, to, limit, offset)
}

// ListByLocation lista movimentações que tocaram uma localização (origem ou destino).
func (r *MovementRepo) ListByLocation(ctx context.Context, locationID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements
		WHERE (from_location_id = $1 OR to_location_id = $1)`
	args := []any{locationID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.queryMovements(ctx, query, args...)
}

// ListUnverifiedBefore lista movimentações não verificadas anteriores ao corte.
func (r *MovementRepo) ListUnverifiedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements
		WHERE is_verified = false AND timestamp < $1
		ORDER BY timestamp ASC`
	args := []any{cutoff}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.queryMovements(ctx, query, args...)
}

// MarkVerified marca uma movimentação pendente como verificada (exatamente uma vez).
func (r *MovementRepo) MarkVerified(ctx context.Context, id, userID string) error {
	query := `
		UPDATE movements
		SET is_verified = true, verified_at = now(), verified_by = $1
		WHERE id = $2 AND is_verified = false`
	tag, err := r.q.Exec(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("mark movement verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MovementRepo) listBy(ctx context.Context, column, value string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE ` + column + ` = $1`
	args := []any{value}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.queryMovements(ctx, query, args...)
}

func (r *MovementRepo) queryMovements(ctx context.Context, query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var reason, verifiedBy *string
	if err := row.Scan(
		&m.ID, &m.Type, &m.ProductID, &m.FromLocationID, &m.ToLocationID,
		&m.Quantity, &m.WeightKg, &m.UserID, &reason, &m.IsAutomatic,
		&m.IsVerified, &m.VerifiedAt, &verifiedBy, &m.Timestamp, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	if reason != nil {
		m.Reason = *reason
	}
	if verifiedBy != nil {
		m.VerifiedBy = *verifiedBy
	}
	return &m, nil
}
