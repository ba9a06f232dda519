package repository

import (
	"context"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LocationRepository porta de persistência de localizações.
// Occupy e Release são as únicas operações que alternam IsOccupied; ambas devem
// rodar na mesma transação da mutação de produto e do insert no livro-razão.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	GetByCode(ctx context.Context, chamberID, code string) (*entity.Location, error)
	// CreateBatch insere em lote a grade de localizações de uma câmara,
	// ignorando códigos já existentes; retorna quantas foram criadas.
	CreateBatch(ctx context.Context, locations []*entity.Location) (int, error)
	// Occupy marca a localização como ocupada com o peso dado. Falha com
	// domain.ErrLocationOccupied se já estiver ocupada e com
	// domain.ErrCapacityExceeded se o peso não couber.
	Occupy(ctx context.Context, locationID string, weightKg decimal.Decimal) error
	// Release libera a localização: IsOccupied=false, CurrentWeightKg=0.
	Release(ctx context.Context, locationID string) error
	// AddWeight ajusta o peso de uma localização ocupada (delta negativo em
	// retirada parcial), mantendo 0 ≤ peso ≤ capacidade.
	AddWeight(ctx context.Context, locationID string, deltaKg decimal.Decimal) error
	// ListAvailable lista localizações desocupadas com capacidade ≥ minCapacityKg.
	ListAvailable(ctx context.Context, minCapacityKg decimal.Decimal, limit int) ([]*entity.Location, error)
	ListByChamber(ctx context.Context, chamberID string, limit, offset int) ([]*entity.Location, error)
}
