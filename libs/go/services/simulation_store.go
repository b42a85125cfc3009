package services

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// SimulationStore holds the in-memory state used when no contract is
// deployed. Pool balances are stable-token micro units.
type SimulationStore struct {
	mu           sync.RWMutex
	pools        map[string]*big.Int
	animals      map[uint64]business.Animal
	byShelter    map[string][]uint64
	nextAnimalID uint64
	now          func() time.Time
}

// NewSimulationStore creates an empty store.
func NewSimulationStore() *SimulationStore {
	return &SimulationStore{
		pools:     make(map[string]*big.Int),
		animals:   make(map[uint64]business.Animal),
		byShelter: make(map[string][]uint64),
		now:       time.Now,
	}
}

// Pool returns the balance of a shelter's pool, zero when unknown.
func (s *SimulationStore) Pool(shelter string) *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if bal, ok := s.pools[helpers.NormalizeAddress(shelter)]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

// Credit adds amount to a shelter's pool and returns the new balance.
func (s *SimulationStore) Credit(shelter string, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("credit amount must be positive")
	}
	key := helpers.NormalizeAddress(shelter)

	s.mu.Lock()
	defer s.mu.Unlock()
	bal, ok := s.pools[key]
	if !ok {
		bal = new(big.Int)
		s.pools[key] = bal
	}
	bal.Add(bal, amount)
	return new(big.Int).Set(bal), nil
}

// Debit removes amount from a shelter's pool. The check and the update are
// atomic; on ErrInsufficientFunds the pool is untouched.
func (s *SimulationStore) Debit(shelter string, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("debit amount must be positive")
	}
	key := helpers.NormalizeAddress(shelter)

	s.mu.Lock()
	defer s.mu.Unlock()
	bal, ok := s.pools[key]
	if !ok || bal.Cmp(amount) < 0 {
		return nil, ErrInsufficientFunds
	}
	bal.Sub(bal, amount)
	return new(big.Int).Set(bal), nil
}

// AddAnimal registers an animal under owner and returns it. Ids start at 0
// and are never reused.
func (s *SimulationStore) AddAnimal(owner, name, species string) business.Animal {
	key := helpers.NormalizeAddress(owner)

	s.mu.Lock()
	defer s.mu.Unlock()
	animal := business.Animal{
		ID:           s.nextAnimalID,
		Shelter:      key,
		Name:         name,
		Species:      species,
		Balance:      new(big.Int),
		Active:       true,
		RegisteredAt: s.now(),
	}
	s.nextAnimalID++
	s.animals[animal.ID] = animal
	s.byShelter[key] = append(s.byShelter[key], animal.ID)
	return copyAnimal(animal)
}

// Animal looks up an animal by id.
func (s *SimulationStore) Animal(id uint64) (business.Animal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	animal, ok := s.animals[id]
	if !ok {
		return business.Animal{}, false
	}
	return copyAnimal(animal), true
}

// AnimalIDs lists the ids registered by owner in registration order.
func (s *SimulationStore) AnimalIDs(owner string) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byShelter[helpers.NormalizeAddress(owner)]
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out
}

func copyAnimal(a business.Animal) business.Animal {
	if a.Balance != nil {
		a.Balance = new(big.Int).Set(a.Balance)
	}
	return a
}
