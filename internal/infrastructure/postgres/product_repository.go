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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, lot, seed_type_id, quantity, weight_per_unit_kg, total_weight_kg,
	location_id, status, version, expiration_date, notes, created_at, updated_at`

// ProductRepo implementação de ProductRepository sobre PostgreSQL (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um produto novo (version 0).
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Lot, p.SeedTypeID, p.Quantity, p.WeightPerUnit, p.TotalWeight,
		p.LocationID, p.Status, p.Version, p.ExpirationDate, nullIfEmpty(p.Notes),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create product: %w", domain.ErrLocationOccupied)
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID (nil se não existe).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// UpdateWithVersion grava o produto condicionado à versão lida (CAS). Zero
// linhas afetadas significa versão obsoleta: domain.ErrOptimisticLock. Em caso
// de sucesso, p.Version passa a expectedVersion + 1.
func (r *ProductRepo) UpdateWithVersion(ctx context.Context, p *entity.Product, expectedVersion int) error {
	query := `
		UPDATE products
		SET lot = $1, quantity = $2, weight_per_unit_kg = $3, total_weight_kg = $4,
		    location_id = $5, status = $6, notes = $7, updated_at = $8,
		    version = version + 1
		WHERE id = $9 AND version = $10`
	tag, err := r.q.Exec(ctx, query,
		p.Lot, p.Quantity, p.WeightPerUnit, p.TotalWeight,
		p.LocationID, p.Status, nullIfEmpty(p.Notes), p.UpdatedAt,
		p.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOptimisticLock
	}
	p.Version = expectedVersion + 1
	return nil
}

// GetActiveByLocation retorna o produto não-terminal que referencia a localização (nil se nenhum).
func (r *ProductRepo) GetActiveByLocation(ctx context.Context, locationID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE location_id = $1 AND status <> $2`
	p, err := scanProduct(r.q.QueryRow(ctx, query, locationID, entity.ProductStatusRetirado))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active product by location: %w", err)
	}
	return p, nil
}

// ListByStatus lista produtos por status com paginação.
func (r *ProductRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE status = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products by status: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var notes *string
	if err := row.Scan(
		&p.ID, &p.Lot, &p.SeedTypeID, &p.Quantity, &p.WeightPerUnit, &p.TotalWeight,
		&p.LocationID, &p.Status, &p.Version, &p.ExpirationDate, &notes,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if notes != nil {
		p.Notes = *notes
	}
	return &p, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
