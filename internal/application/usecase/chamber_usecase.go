package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/dto"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

// ChamberUseCase casos de uso de câmaras: CRUD e geração da grade de localizações.
type ChamberUseCase struct {
	chamberRepo  repository.ChamberRepository
	locationRepo repository.LocationRepository
}

// NewChamberUseCase constrói o caso de uso.
func NewChamberUseCase(chamberRepo repository.ChamberRepository, locationRepo repository.LocationRepository) *ChamberUseCase {
	return &ChamberUseCase{chamberRepo: chamberRepo, locationRepo: locationRepo}
}

// Create cria uma câmara nova.
func (uc *ChamberUseCase) Create(ctx context.Context, in dto.CreateChamberRequest) (*entity.Chamber, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "o nome da câmara é obrigatório")
	}
	dims := entity.Dimensions{Quadras: in.Quadras, Lados: in.Lados, Filas: in.Filas, Andares: in.Andares}
	if dims.Quadras <= 0 || dims.Lados <= 0 || dims.Filas <= 0 || dims.Andares <= 0 {
		return nil, domain.NewValidationError("dimensions", "todas as dimensões devem ser maiores que zero")
	}
	if in.DefaultCapacityKg.IsNegative() || in.DefaultCapacityKg.IsZero() {
		return nil, domain.NewValidationError("defaultCapacityKg", "a capacidade padrão deve ser maior que zero")
	}
	now := time.Now()
	chamber := &entity.Chamber{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Description:       in.Description,
		Status:            entity.ChamberStatusAtiva,
		Dimensions:        dims,
		DefaultCapacityKg: in.DefaultCapacityKg,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.chamberRepo.Create(ctx, chamber); err != nil {
		return nil, err
	}
	return chamber, nil
}

// GetByID obtém uma câmara por ID.
func (uc *ChamberUseCase) GetByID(ctx context.Context, id string) (*entity.Chamber, error) {
	chamber, err := uc.chamberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chamber == nil {
		return nil, domain.ErrNotFound
	}
	return chamber, nil
}

// List lista câmaras com paginação.
func (uc *ChamberUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Chamber, error) {
	return uc.chamberRepo.List(ctx, limit, offset)
}

// Update atualiza campos descritivos e dimensões de uma câmara. Reduzir
// dimensões não remove localizações existentes; GenerateLocations apenas
// acrescenta as posições que faltam.
func (uc *ChamberUseCase) Update(ctx context.Context, id string, in dto.UpdateChamberRequest) (*entity.Chamber, error) {
	chamber, err := uc.chamberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chamber == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		chamber.Name = *in.Name
	}
	if in.Description != nil {
		chamber.Description = *in.Description
	}
	if in.Status != nil {
		chamber.Status = *in.Status
	}
	if in.Quadras != nil {
		chamber.Dimensions.Quadras = *in.Quadras
	}
	if in.Lados != nil {
		chamber.Dimensions.Lados = *in.Lados
	}
	if in.Filas != nil {
		chamber.Dimensions.Filas = *in.Filas
	}
	if in.Andares != nil {
		chamber.Dimensions.Andares = *in.Andares
	}
	chamber.UpdatedAt = time.Now()
	if err := uc.chamberRepo.Update(ctx, chamber); err != nil {
		return nil, err
	}
	return chamber, nil
}

// GenerateLocations expande as dimensões da câmara no produto cruzado Q×L×F×A e
// insere em lote as localizações que ainda não existem (código Q{q}-L{l}-F{f}-A{a},
// capacidade padrão da câmara, desocupadas). Retorna quantas foram criadas.
func (uc *ChamberUseCase) GenerateLocations(ctx context.Context, chamberID string) (int, error) {
	chamber, err := uc.chamberRepo.GetByID(ctx, chamberID)
	if err != nil {
		return 0, err
	}
	if chamber == nil {
		return 0, domain.ErrNotFound
	}
	dims := chamber.Dimensions
	now := time.Now()
	locations := make([]*entity.Location, 0, dims.TotalLocations())
	for q := 1; q <= dims.Quadras; q++ {
		for l := 1; l <= dims.Lados; l++ {
			for f := 1; f <= dims.Filas; f++ {
				for a := 1; a <= dims.Andares; a++ {
					coords := entity.Coordinates{Quadra: q, Lado: l, Fila: f, Andar: a}
					locations = append(locations, &entity.Location{
						ID:            uuid.New().String(),
						ChamberID:     chamber.ID,
						Code:          coords.Code(),
						Coordinates:   coords,
						MaxCapacityKg: chamber.DefaultCapacityKg,
						CreatedAt:     now,
						UpdatedAt:     now,
					})
				}
			}
		}
	}
	return uc.locationRepo.CreateBatch(ctx, locations)
}

// ListLocations lista as localizações de uma câmara.
func (uc *ChamberUseCase) ListLocations(ctx context.Context, chamberID string, limit, offset int) ([]*entity.Location, error) {
	return uc.locationRepo.ListByChamber(ctx, chamberID, limit, offset)
}
