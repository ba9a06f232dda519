package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, chamber_id, code, quadra, lado, fila, andar,
	max_capacity_kg, current_weight_kg, is_occupied, created_at, updated_at`

// LocationRepo implementação de LocationRepository sobre PostgreSQL (usável com pool ou tx).
// As escritas condicionais (Occupy/AddWeight) são a guarda autoritativa dos
// invariantes de ocupação e capacidade: a corrida entre duas transações é
// decidida pelo WHERE, não por leitura prévia.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByID obtém uma localização por ID (nil se não existe).
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	loc, err := scanLocation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return loc, nil
}

// GetByCode obtém uma localização pelo código dentro de uma câmara.
func (r *LocationRepo) GetByCode(ctx context.Context, chamberID, code string) (*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE chamber_id = $1 AND code = $2`
	loc, err := scanLocation(r.q.QueryRow(ctx, query, chamberID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by code: %w", err)
	}
	return loc, nil
}

// CreateBatch insere a grade de localizações ignorando códigos já existentes
// (ON CONFLICT DO NOTHING sobre chamber_id+code). Retorna quantas foram criadas.
func (r *LocationRepo) CreateBatch(ctx context.Context, locations []*entity.Location) (int, error) {
	created := 0
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, false, $9, $10)
		ON CONFLICT (chamber_id, code) DO NOTHING`
	for _, loc := range locations {
		tag, err := r.q.Exec(ctx, query,
			loc.ID, loc.ChamberID, loc.Code,
			loc.Coordinates.Quadra, loc.Coordinates.Lado, loc.Coordinates.Fila, loc.Coordinates.Andar,
			loc.MaxCapacityKg, loc.CreatedAt, loc.UpdatedAt,
		)
		if err != nil {
			return created, fmt.Errorf("create location %s: %w", loc.Code, err)
		}
		created += int(tag.RowsAffected())
	}
	return created, nil
}

// Occupy marca a localização como ocupada com o peso dado. Condicional: falha
// com ErrLocationOccupied se já ocupada e com CapacityExceededError se o peso
// não couber; exatamente uma de duas transações concorrentes vence.
func (r *LocationRepo) Occupy(ctx context.Context, locationID string, weightKg decimal.Decimal) error {
	query := `
		UPDATE locations
		SET is_occupied = true, current_weight_kg = $1, updated_at = now()
		WHERE id = $2 AND is_occupied = false AND $1 <= max_capacity_kg`
	tag, err := r.q.Exec(ctx, query, weightKg, locationID)
	if err != nil {
		return fmt.Errorf("occupy location: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	// Distinguir o motivo da recusa para o erro tipado correto.
	loc, err := r.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	if loc.IsOccupied {
		return domain.ErrLocationOccupied
	}
	return &domain.CapacityExceededError{LocationID: locationID, DeficitKg: weightKg.Sub(loc.MaxCapacityKg)}
}

// Release libera a localização: IsOccupied=false e peso zerado.
func (r *LocationRepo) Release(ctx context.Context, locationID string) error {
	query := `
		UPDATE locations
		SET is_occupied = false, current_weight_kg = 0, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, locationID)
	if err != nil {
		return fmt.Errorf("release location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddWeight ajusta o peso de uma localização ocupada mantendo
// 0 ≤ peso ≤ capacidade (delta negativo em retirada parcial).
func (r *LocationRepo) AddWeight(ctx context.Context, locationID string, deltaKg decimal.Decimal) error {
	query := `
		UPDATE locations
		SET current_weight_kg = current_weight_kg + $1, updated_at = now()
		WHERE id = $2 AND is_occupied = true
		  AND current_weight_kg + $1 >= 0
		  AND current_weight_kg + $1 <= max_capacity_kg`
	tag, err := r.q.Exec(ctx, query, deltaKg, locationID)
	if err != nil {
		return fmt.Errorf("add weight to location: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	loc, err := r.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	if !loc.IsOccupied {
		return domain.NewValidationError("locationId", "localização desocupada não admite ajuste de peso")
	}
	after := loc.CurrentWeightKg.Add(deltaKg)
	if after.GreaterThan(loc.MaxCapacityKg) {
		return &domain.CapacityExceededError{LocationID: locationID, DeficitKg: after.Sub(loc.MaxCapacityKg)}
	}
	return domain.NewValidationError("weightKg", "o ajuste deixaria o peso da localização negativo")
}

// ListAvailable lista localizações desocupadas com capacidade ≥ minCapacityKg,
// ordenadas por andar e código. limit ≤ 0 lista todas.
func (r *LocationRepo) ListAvailable(ctx context.Context, minCapacityKg decimal.Decimal, limit int) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations
		WHERE is_occupied = false AND max_capacity_kg >= $1
		ORDER BY andar ASC, code ASC`
	args := []any{minCapacityKg}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.queryLocations(ctx, query, args...)
}

// ListByChamber lista as localizações de uma câmara.
func (r *LocationRepo) ListByChamber(ctx context.Context, chamberID string, limit, offset int) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations
		WHERE chamber_id = $1 ORDER BY code ASC LIMIT $2 OFFSET $3`
	return r.queryLocations(ctx, query, chamberID, limit, offset)
}

func (r *LocationRepo) queryLocations(ctx context.Context, query string, args ...any) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, loc)
	}
	return list, rows.Err()
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	if err := row.Scan(
		&l.ID, &l.ChamberID, &l.Code,
		&l.Coordinates.Quadra, &l.Coordinates.Lado, &l.Coordinates.Fila, &l.Coordinates.Andar,
		&l.MaxCapacityKg, &l.CurrentWeightKg, &l.IsOccupied, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}
