package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

var _ repository.SeedTypeRepository = (*SeedTypeRepo)(nil)

const seedTypeColumns = `id, name, description, optimal_temperature, optimal_humidity,
	max_storage_time_days, attributes, created_at, updated_at`

// SeedTypeRepo implementação de SeedTypeRepository sobre PostgreSQL.
// Attributes é persistido como JSONB.
type SeedTypeRepo struct {
	q Querier
}

// NewSeedTypeRepository constrói o adaptador.
func NewSeedTypeRepository(q Querier) *SeedTypeRepo {
	return &SeedTypeRepo{q: q}
}

// Create persiste um tipo de semente.
func (r *SeedTypeRepo) Create(ctx context.Context, st *entity.SeedType) error {
	query := `
		INSERT INTO seed_types (` + seedTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		st.ID, st.Name, nullIfEmpty(st.Description),
		st.OptimalTemperature, st.OptimalHumidity, st.MaxStorageTimeDays,
		st.Attributes, st.CreatedAt, st.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create seed type: %w", err)
	}
	return nil
}

// GetByID obtém um tipo de semente por ID (nil se não existe).
func (r *SeedTypeRepo) GetByID(ctx context.Context, id string) (*entity.SeedType, error) {
	query := `SELECT ` + seedTypeColumns + ` FROM seed_types WHERE id = $1`
	st, err := scanSeedType(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seed type: %w", err)
	}
	return st, nil
}

// List lista tipos de semente com paginação.
func (r *SeedTypeRepo) List(ctx context.Context, limit, offset int) ([]*entity.SeedType, error) {
	query := `SELECT ` + seedTypeColumns + ` FROM seed_types ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list seed types: %w", err)
	}
	defer rows.Close()
	var list []*entity.SeedType
	for rows.Next() {
		st, err := scanSeedType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seed type: %w", err)
		}
		list = append(list, st)
	}
	return list, rows.Err()
}

func scanSeedType(row pgx.Row) (*entity.SeedType, error) {
	var st entity.SeedType
	var description *string
	if err := row.Scan(
		&st.ID, &st.Name, &description,
		&st.OptimalTemperature, &st.OptimalHumidity, &st.MaxStorageTimeDays,
		&st.Attributes, &st.CreatedAt, &st.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if description != nil {
		st.Description = *description
	}
	return &st, nil
}
