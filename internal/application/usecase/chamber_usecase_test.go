package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/dto"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/usecase"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

type fakeChamberRepo struct {
	chambers map[string]*entity.Chamber
}

var _ repository.ChamberRepository = (*fakeChamberRepo)(nil)

func newFakeChamberRepo() *fakeChamberRepo {
	return &fakeChamberRepo{chambers: map[string]*entity.Chamber{}}
}

func (r *fakeChamberRepo) Create(_ context.Context, c *entity.Chamber) error {
	cc := *c
	r.chambers[c.ID] = &cc
	return nil
}

func (r *fakeChamberRepo) GetByID(_ context.Context, id string) (*entity.Chamber, error) {
	c, ok := r.chambers[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeChamberRepo) List(_ context.Context, limit, offset int) ([]*entity.Chamber, error) {
	var out []*entity.Chamber
	for _, c := range r.chambers {
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

func (r *fakeChamberRepo) Update(_ context.Context, c *entity.Chamber) error {
	if _, ok := r.chambers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cc := *c
	r.chambers[c.ID] = &cc
	return nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: map[string]*entity.Location{}}
}

func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	cl := *l
	return &cl, nil
}

func (r *fakeLocationRepo) GetByCode(_ context.Context, chamberID, code string) (*entity.Location, error) {
	for _, l := range r.locations {
		if l.ChamberID == chamberID && l.Code == code {
			cl := *l
			return &cl, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) CreateBatch(_ context.Context, locations []*entity.Location) (int, error) {
	created := 0
	for _, loc := range locations {
		exists := false
		for _, l := range r.locations {
			if l.ChamberID == loc.ChamberID && l.Code == loc.Code {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		cl := *loc
		r.locations[cl.ID] = &cl
		created++
	}
	return created, nil
}

func (r *fakeLocationRepo) Occupy(context.Context, string, decimal.Decimal) error { return nil }
func (r *fakeLocationRepo) Release(context.Context, string) error                 { return nil }
func (r *fakeLocationRepo) AddWeight(context.Context, string, decimal.Decimal) error {
	return nil
}

func (r *fakeLocationRepo) ListAvailable(context.Context, decimal.Decimal, int) ([]*entity.Location, error) {
	return nil, nil
}

func (r *fakeLocationRepo) ListByChamber(_ context.Context, chamberID string, limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.locations {
		if l.ChamberID == chamberID {
			cl := *l
			out = append(out, &cl)
		}
	}
	return out, nil
}

func createTestChamber(t *testing.T, uc *usecase.ChamberUseCase, quadras, lados, filas, andares int) *entity.Chamber {
	t.Helper()
	chamber, err := uc.Create(context.Background(), dto.CreateChamberRequest{
		Name:              "Câmara 1",
		Quadras:           quadras,
		Lados:             lados,
		Filas:             filas,
		Andares:           andares,
		DefaultCapacityKg: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)
	return chamber
}

func TestChamberCreate_DimensoesInvalidas(t *testing.T) {
	uc := usecase.NewChamberUseCase(newFakeChamberRepo(), newFakeLocationRepo())

	_, err := uc.Create(context.Background(), dto.CreateChamberRequest{
		Name:              "Câmara",
		Quadras:           2,
		Lados:             0,
		Filas:             3,
		Andares:           4,
		DefaultCapacityKg: decimal.NewFromInt(1000),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestChamberCreate_CapacidadePadraoObrigatoria(t *testing.T) {
	uc := usecase.NewChamberUseCase(newFakeChamberRepo(), newFakeLocationRepo())

	_, err := uc.Create(context.Background(), dto.CreateChamberRequest{
		Name:    "Câmara",
		Quadras: 1, Lados: 1, Filas: 1, Andares: 1,
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestGenerateLocations_ProdutoCruzadoCompleto(t *testing.T) {
	chamberRepo := newFakeChamberRepo()
	locationRepo := newFakeLocationRepo()
	uc := usecase.NewChamberUseCase(chamberRepo, locationRepo)
	chamber := createTestChamber(t, uc, 2, 3, 4, 5)

	created, err := uc.GenerateLocations(context.Background(), chamber.ID)
	require.NoError(t, err)
	assert.Equal(t, 2*3*4*5, created)

	locations, err := uc.ListLocations(context.Background(), chamber.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, locations, 120)

	codes := map[string]bool{}
	for _, l := range locations {
		codes[l.Code] = true
		assert.True(t, l.MaxCapacityKg.Equal(decimal.NewFromInt(1500)))
		assert.False(t, l.IsOccupied)
	}
	// Códigos únicos cobrindo os extremos da grade.
	assert.Len(t, codes, 120)
	assert.True(t, codes["Q1-L1-F1-A1"])
	assert.True(t, codes["Q2-L3-F4-A5"])
}

func TestGenerateLocations_Idempotente(t *testing.T) {
	chamberRepo := newFakeChamberRepo()
	locationRepo := newFakeLocationRepo()
	uc := usecase.NewChamberUseCase(chamberRepo, locationRepo)
	chamber := createTestChamber(t, uc, 2, 2, 2, 2)

	created, err := uc.GenerateLocations(context.Background(), chamber.ID)
	require.NoError(t, err)
	assert.Equal(t, 16, created)

	// Segunda geração não duplica nada.
	created, err = uc.GenerateLocations(context.Background(), chamber.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	locations, _ := uc.ListLocations(context.Background(), chamber.ID, 0, 0)
	assert.Len(t, locations, 16)
}

func TestGenerateLocations_AposExpansaoCriaApenasAsNovas(t *testing.T) {
	chamberRepo := newFakeChamberRepo()
	locationRepo := newFakeLocationRepo()
	uc := usecase.NewChamberUseCase(chamberRepo, locationRepo)
	chamber := createTestChamber(t, uc, 1, 1, 1, 2)

	created, err := uc.GenerateLocations(context.Background(), chamber.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	andares := 4
	_, err = uc.Update(context.Background(), chamber.ID, dto.UpdateChamberRequest{Andares: &andares})
	require.NoError(t, err)

	created, err = uc.GenerateLocations(context.Background(), chamber.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, created, "só os andares novos viram localizações")
}

func TestGenerateLocations_CamaraInexistente(t *testing.T) {
	uc := usecase.NewChamberUseCase(newFakeChamberRepo(), newFakeLocationRepo())
	_, err := uc.GenerateLocations(context.Background(), "nao-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestChamberUpdate_AtualizaCamposParciais(t *testing.T) {
	chamberRepo := newFakeChamberRepo()
	uc := usecase.NewChamberUseCase(chamberRepo, newFakeLocationRepo())
	chamber := createTestChamber(t, uc, 1, 1, 1, 1)

	name := "Câmara Renomeada"
	status := entity.ChamberStatusManutencao
	before := time.Now()
	updated, err := uc.Update(context.Background(), chamber.ID, dto.UpdateChamberRequest{
		Name:   &name,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "Câmara Renomeada", updated.Name)
	assert.Equal(t, entity.ChamberStatusManutencao, updated.Status)
	assert.Equal(t, chamber.Dimensions, updated.Dimensions, "dimensões não informadas permanecem")
	assert.False(t, updated.UpdatedAt.Before(before))
}
