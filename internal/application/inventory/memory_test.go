package inventory_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes em memória com a mesma semântica condicional dos repositórios reais:
// Occupy/AddWeight/UpdateWithVersion/Resolve decidem no estado armazenado, e o
// TxRunner restaura o snapshot quando o callback falha (prova de atomicidade).
// ─────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products    map[string]*entity.Product
	locations   map[string]*entity.Location
	movements   []*entity.Movement
	withdrawals map[string]*entity.WithdrawalRequest
}

func newMemStore() *memStore {
	return &memStore{
		products:    map[string]*entity.Product{},
		locations:   map[string]*entity.Location{},
		withdrawals: map[string]*entity.WithdrawalRequest{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, l := range s.locations {
		cl := *l
		c.locations[id] = &cl
	}
	for _, m := range s.movements {
		cm := *m
		c.movements = append(c.movements, &cm)
	}
	for id, w := range s.withdrawals {
		cw := *w
		c.withdrawals[id] = &cw
	}
	return c
}

func (s *memStore) addLocation(id string, andar int, maxKg int64) *entity.Location {
	loc := &entity.Location{
		ID:              id,
		ChamberID:       "chamber-1",
		Code:            id,
		Coordinates:     entity.Coordinates{Quadra: 1, Lado: 1, Fila: 1, Andar: andar},
		MaxCapacityKg:   decimal.NewFromInt(maxKg),
		CurrentWeightKg: decimal.Zero,
	}
	s.locations[id] = loc
	return loc
}

// ── ProductRepository ────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, ok := r.s.products[p.ID]; ok {
		return fmt.Errorf("produto duplicado: %s", p.ID)
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) UpdateWithVersion(_ context.Context, p *entity.Product, expectedVersion int) error {
	stored, ok := r.s.products[p.ID]
	if !ok || stored.Version != expectedVersion {
		return domain.ErrOptimisticLock
	}
	cp := *p
	cp.Version = expectedVersion + 1
	r.s.products[p.ID] = &cp
	p.Version = cp.Version
	return nil
}

func (r *memProductRepo) GetActiveByLocation(_ context.Context, locationID string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.LocationID != nil && *p.LocationID == locationID && p.Status != entity.ProductStatusRetirado {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) ListByStatus(_ context.Context, status string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── LocationRepository ───────────────────────────────────────────────────────

type memLocationRepo struct{ s *memStore }

var _ repository.LocationRepository = (*memLocationRepo)(nil)

func (r *memLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	cl := *l
	return &cl, nil
}

func (r *memLocationRepo) GetByCode(_ context.Context, chamberID, code string) (*entity.Location, error) {
	for _, l := range r.s.locations {
		if l.ChamberID == chamberID && l.Code == code {
			cl := *l
			return &cl, nil
		}
	}
	return nil, nil
}

func (r *memLocationRepo) CreateBatch(_ context.Context, locations []*entity.Location) (int, error) {
	created := 0
	for _, loc := range locations {
		exists := false
		for _, l := range r.s.locations {
			if l.ChamberID == loc.ChamberID && l.Code == loc.Code {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		cl := *loc
		r.s.locations[cl.ID] = &cl
		created++
	}
	return created, nil
}

func (r *memLocationRepo) Occupy(_ context.Context, locationID string, weightKg decimal.Decimal) error {
	l, ok := r.s.locations[locationID]
	if !ok {
		return domain.ErrNotFound
	}
	if l.IsOccupied {
		return domain.ErrLocationOccupied
	}
	if weightKg.GreaterThan(l.MaxCapacityKg) {
		return &domain.CapacityExceededError{LocationID: locationID, DeficitKg: weightKg.Sub(l.MaxCapacityKg)}
	}
	l.IsOccupied = true
	l.CurrentWeightKg = weightKg
	return nil
}

func (r *memLocationRepo) Release(_ context.Context, locationID string) error {
	l, ok := r.s.locations[locationID]
	if !ok {
		return domain.ErrNotFound
	}
	l.IsOccupied = false
	l.CurrentWeightKg = decimal.Zero
	return nil
}

func (r *memLocationRepo) AddWeight(_ context.Context, locationID string, deltaKg decimal.Decimal) error {
	l, ok := r.s.locations[locationID]
	if !ok {
		return domain.ErrNotFound
	}
	if !l.IsOccupied {
		return domain.NewValidationError("locationId", "localização desocupada não admite ajuste de peso")
	}
	after := l.CurrentWeightKg.Add(deltaKg)
	if after.GreaterThan(l.MaxCapacityKg) {
		return &domain.CapacityExceededError{LocationID: locationID, DeficitKg: after.Sub(l.MaxCapacityKg)}
	}
	if after.IsNegative() {
		return domain.NewValidationError("weightKg", "o ajuste deixaria o peso da localização negativo")
	}
	l.CurrentWeightKg = after
	return nil
}

func (r *memLocationRepo) ListAvailable(_ context.Context, minCapacityKg decimal.Decimal, limit int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		if !l.IsOccupied && l.MaxCapacityKg.GreaterThanOrEqual(minCapacityKg) {
			cl := *l
			out = append(out, &cl)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coordinates.Andar != out[j].Coordinates.Andar {
			return out[i].Coordinates.Andar < out[j].Coordinates.Andar
		}
		return out[i].Code < out[j].Code
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memLocationRepo) ListByChamber(_ context.Context, chamberID string, limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		if l.ChamberID == chamberID {
			cl := *l
			out = append(out, &cl)
		}
	}
	return out, nil
}

// ── MovementRepository ───────────────────────────────────────────────────────

type memMovementRepo struct{ s *memStore }

var _ repository.MovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	cm := *m
	r.s.movements = append(r.s.movements, &cm)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			cm := *m
			return &cm, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListByProduct(_ context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool { return m.ProductID == productID }, from, to), nil
}

func (r *memMovementRepo) ListByLocation(_ context.Context, locationID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool {
		return (m.FromLocationID != nil && *m.FromLocationID == locationID) ||
			(m.ToLocationID != nil && *m.ToLocationID == locationID)
	}, from, to), nil
}

func (r *memMovementRepo) ListUnverifiedBefore(_ context.Context, cutoff time.Time, limit int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if !m.IsVerified && m.Timestamp.Before(cutoff) {
			cm := *m
			out = append(out, &cm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memMovementRepo) MarkVerified(_ context.Context, id, userID string) error {
	for _, m := range r.s.movements {
		if m.ID == id && !m.IsVerified {
			now := time.Now()
			m.IsVerified = true
			m.VerifiedAt = &now
			m.VerifiedBy = userID
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memMovementRepo) filter(match func(*entity.Movement) bool, from, to *time.Time) []*entity.Movement {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if !match(m) {
			continue
		}
		if from != nil && m.Timestamp.Before(*from) {
			continue
		}
		if to != nil && m.Timestamp.After(*to) {
			continue
		}
		cm := *m
		out = append(out, &cm)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

// ── WithdrawalRepository ─────────────────────────────────────────────────────

type memWithdrawalRepo struct{ s *memStore }

var _ repository.WithdrawalRepository = (*memWithdrawalRepo)(nil)

func (r *memWithdrawalRepo) Create(_ context.Context, w *entity.WithdrawalRequest) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	cw := *w
	r.s.withdrawals[w.ID] = &cw
	return nil
}

func (r *memWithdrawalRepo) GetByID(_ context.Context, id string) (*entity.WithdrawalRequest, error) {
	w, ok := r.s.withdrawals[id]
	if !ok {
		return nil, nil
	}
	cw := *w
	return &cw, nil
}

func (r *memWithdrawalRepo) GetOpenByProduct(_ context.Context, productID string) (*entity.WithdrawalRequest, error) {
	for _, w := range r.s.withdrawals {
		if w.ProductID == productID && w.Status == entity.WithdrawalStatusPendente {
			cw := *w
			return &cw, nil
		}
	}
	return nil, nil
}

func (r *memWithdrawalRepo) Resolve(_ context.Context, id, status, userID string) error {
	w, ok := r.s.withdrawals[id]
	if !ok || w.Status != entity.WithdrawalStatusPendente {
		return domain.ErrNotFound
	}
	now := time.Now()
	w.Status = status
	w.ResolvedBy = userID
	w.ResolvedAt = &now
	return nil
}

func (r *memWithdrawalRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.WithdrawalRequest, error) {
	var out []*entity.WithdrawalRequest
	for _, w := range r.s.withdrawals {
		if w.ProductID == productID {
			cw := *w
			out = append(out, &cw)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	return out, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// memTxRunner roda o callback sobre o store e restaura o snapshot em caso de
// erro, reproduzindo o rollback da transação real. movementRepo pode ser
// substituído para injetar falhas no insert do livro-razão.
type memTxRunner struct {
	s            *memStore
	movementRepo repository.MovementRepository
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
	withdrawalRepo repository.WithdrawalRepository,
) error) error {
	snapshot := t.s.clone()
	movementRepo := t.movementRepo
	if movementRepo == nil {
		movementRepo = &memMovementRepo{s: t.s}
	}
	err := fn(&memProductRepo{s: t.s}, &memLocationRepo{s: t.s}, movementRepo, &memWithdrawalRepo{s: t.s})
	if err != nil {
		*t.s = *snapshot
	}
	return err
}

// failingMovementRepo falha em Create para provar que nada da transação é aplicado.
type failingMovementRepo struct {
	memMovementRepo
}

func (r *failingMovementRepo) Create(context.Context, *entity.Movement) error {
	return fmt.Errorf("falha simulada no livro-razão")
}
