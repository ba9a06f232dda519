package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

var _ repository.ChamberRepository = (*ChamberRepo)(nil)

const chamberColumns = `id, name, description, status, quadras, lados, filas, andares,
	default_capacity_kg, created_at, updated_at`

// ChamberRepo implementação de ChamberRepository sobre PostgreSQL.
type ChamberRepo struct {
	q Querier
}

// NewChamberRepository constrói o adaptador.
func NewChamberRepository(q Querier) *ChamberRepo {
	return &ChamberRepo{q: q}
}

// Create persiste uma câmara nova.
func (r *ChamberRepo) Create(ctx context.Context, c *entity.Chamber) error {
	query := `
		INSERT INTO chambers (` + chamberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, nullIfEmpty(c.Description), c.Status,
		c.Dimensions.Quadras, c.Dimensions.Lados, c.Dimensions.Filas, c.Dimensions.Andares,
		c.DefaultCapacityKg, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create chamber: %w", err)
	}
	return nil
}

// GetByID obtém uma câmara por ID (nil se não existe).
func (r *ChamberRepo) GetByID(ctx context.Context, id string) (*entity.Chamber, error) {
	query := `SELECT ` + chamberColumns + ` FROM chambers WHERE id = $1`
	c, err := scanChamber(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chamber: %w", err)
	}
	return c, nil
}

// List lista câmaras com paginação.
func (r *ChamberRepo) List(ctx context.Context, limit, offset int) ([]*entity.Chamber, error) {
	query := `SELECT ` + chamberColumns + ` FROM chambers ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list chambers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chamber
	for rows.Next() {
		c, err := scanChamber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chamber: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update atualiza uma câmara.
func (r *ChamberRepo) Update(ctx context.Context, c *entity.Chamber) error {
	query := `
		UPDATE chambers
		SET name = $1, description = $2, status = $3,
		    quadras = $4, lados = $5, filas = $6, andares = $7,
		    default_capacity_kg = $8, updated_at = $9
		WHERE id = $10`
	_, err := r.q.Exec(ctx, query,
		c.Name, nullIfEmpty(c.Description), c.Status,
		c.Dimensions.Quadras, c.Dimensions.Lados, c.Dimensions.Filas, c.Dimensions.Andares,
		c.DefaultCapacityKg, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update chamber: %w", err)
	}
	return nil
}

func scanChamber(row pgx.Row) (*entity.Chamber, error) {
	var c entity.Chamber
	var description *string
	if err := row.Scan(
		&c.ID, &c.Name, &description, &c.Status,
		&c.Dimensions.Quadras, &c.Dimensions.Lados, &c.Dimensions.Filas, &c.Dimensions.Andares,
		&c.DefaultCapacityKg, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if description != nil {
		c.Description = *description
	}
	return &c, nil
}
