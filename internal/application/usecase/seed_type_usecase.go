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

// SeedTypeUseCase CRUD de tipos de semente. Os atributos dinâmicos são
// repassados como JSON opaco; nenhuma validação de schema acontece aqui.
type SeedTypeUseCase struct {
	repo repository.SeedTypeRepository
}

// NewSeedTypeUseCase constrói o caso de uso.
func NewSeedTypeUseCase(repo repository.SeedTypeRepository) *SeedTypeUseCase {
	return &SeedTypeUseCase{repo: repo}
}

// Create cria um tipo de semente.
func (uc *SeedTypeUseCase) Create(ctx context.Context, in dto.CreateSeedTypeRequest) (*entity.SeedType, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "o nome do tipo de semente é obrigatório")
	}
	now := time.Now()
	seedType := &entity.SeedType{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Description:        in.Description,
		OptimalTemperature: in.OptimalTemperature,
		OptimalHumidity:    in.OptimalHumidity,
		MaxStorageTimeDays: in.MaxStorageTimeDays,
		Attributes:         in.Attributes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, seedType); err != nil {
		return nil, err
	}
	return seedType, nil
}

// GetByID obtém um tipo de semente por ID.
func (uc *SeedTypeUseCase) GetByID(ctx context.Context, id string) (*entity.SeedType, error) {
	seedType, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seedType == nil {
		return nil, domain.ErrNotFound
	}
	return seedType, nil
}

// List lista tipos de semente com paginação.
func (uc *SeedTypeUseCase) List(ctx context.Context, limit, offset int) ([]*entity.SeedType, error) {
	return uc.repo.List(ctx, limit, offset)
}
