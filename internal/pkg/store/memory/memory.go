// Package memory is an in-process Store used by tests and by driverless
// runs when no database DSN is configured. Insertion order is preserved,
// matching the implementation-defined ordering the read side relies on.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
)

type memoryStore struct {
	mu sync.Mutex

	factors     []*domain.EmissionFactor
	airTravel   []*domain.AirTravel
	goods       []*domain.PurchasedGoodsAndServices
	electricity []*domain.Electricity
	users       []*domain.User

	nextID int64
}

func NewStore() store.Store {
	return &memoryStore{}
}

func (s *memoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memoryStore) InsertEmissionFactor(_ context.Context, factor *domain.EmissionFactor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *factor
	cp.ID = s.id()
	s.factors = append(s.factors, &cp)
	factor.ID = cp.ID
	return nil
}

func (s *memoryStore) ListEmissionFactors(_ context.Context) ([]*domain.EmissionFactor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.EmissionFactor, len(s.factors))
	for i, f := range s.factors {
		cp := *f
		out[i] = &cp
	}
	return out, nil
}

func (s *memoryStore) InsertAirTravel(_ context.Context, record *domain.AirTravel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *record
	cp.ID = s.id()
	s.airTravel = append(s.airTravel, &cp)
	record.ID = cp.ID
	return nil
}

func (s *memoryStore) ListAirTravel(_ context.Context) ([]*domain.AirTravel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.AirTravel, len(s.airTravel))
	for i, r := range s.airTravel {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (s *memoryStore) InsertPurchasedGoodsAndServices(_ context.Context, record *domain.PurchasedGoodsAndServices) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *record
	cp.ID = s.id()
	s.goods = append(s.goods, &cp)
	record.ID = cp.ID
	return nil
}

func (s *memoryStore) ListPurchasedGoodsAndServices(_ context.Context) ([]*domain.PurchasedGoodsAndServices, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.PurchasedGoodsAndServices, len(s.goods))
	for i, r := range s.goods {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (s *memoryStore) InsertElectricity(_ context.Context, record *domain.Electricity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *record
	cp.ID = s.id()
	s.electricity = append(s.electricity, &cp)
	record.ID = cp.ID
	return nil
}

func (s *memoryStore) ListElectricity(_ context.Context) ([]*domain.Electricity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Electricity, len(s.electricity))
	for i, r := range s.electricity {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (s *memoryStore) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *user
	cp.ID = s.id()
	s.users = append(s.users, &cp)
	user.ID = cp.ID
	return nil
}

func (s *memoryStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, constants.ErrDBNotFound
}
