package services_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/rescuedao/rescuedao-api/libs/go/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationStore_CreditDebit(t *testing.T) {
	store := services.NewSimulationStore()

	_, err := store.Credit("0xABCDEF0000000000000000000000000000000001", big.NewInt(120_000_000))
	require.NoError(t, err)
	assert.Equal(t, "120000000", store.Pool("0xabcdef0000000000000000000000000000000001").String())

	_, err = store.Debit("0xabcdef0000000000000000000000000000000001", big.NewInt(150_000_000))
	require.ErrorIs(t, err, services.ErrInsufficientFunds)
	assert.Equal(t, "120000000", store.Pool("0xabcdef0000000000000000000000000000000001").String(), "failed debit must not mutate")

	balance, err := store.Debit("0xabcdef0000000000000000000000000000000001", big.NewInt(20_000_000))
	require.NoError(t, err)
	assert.Equal(t, "100000000", balance.String())

	_, err = store.Debit(otherAddr, big.NewInt(1))
	assert.ErrorIs(t, err, services.ErrInsufficientFunds)
}

func TestSimulationStore_RejectsNonPositive(t *testing.T) {
	store := services.NewSimulationStore()
	_, err := store.Credit(otherAddr, big.NewInt(0))
	assert.Error(t, err)
	_, err = store.Debit(otherAddr, big.NewInt(-1))
	assert.Error(t, err)
}

func TestSimulationStore_ConcurrentDebitsNeverGoNegative(t *testing.T) {
	store := services.NewSimulationStore()
	_, err := store.Credit(shelterAddr, big.NewInt(10))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Debit(shelterAddr, big.NewInt(1)); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, int64(0), store.Pool(shelterAddr).Int64())
}

func TestSimulationStore_AnimalIDsAreMonotonic(t *testing.T) {
	store := services.NewSimulationStore()

	first := store.AddAnimal(shelterAddr, "Luna", "Dog")
	second := store.AddAnimal(otherAddr, "Milo", "Cat")
	third := store.AddAnimal(shelterAddr, "Kira", "Dog")

	assert.Equal(t, uint64(0), first.ID)
	assert.Equal(t, uint64(1), second.ID)
	assert.Equal(t, uint64(2), third.ID)

	assert.Equal(t, []uint64{0, 2}, store.AnimalIDs(shelterAddr))
	assert.Equal(t, []uint64{1}, store.AnimalIDs(otherAddr))

	animal, ok := store.Animal(1)
	require.True(t, ok)
	assert.Equal(t, "Milo", animal.Name)
	assert.True(t, animal.Active)
	assert.Equal(t, int64(0), animal.Balance.Int64())

	_, ok = store.Animal(99)
	assert.False(t, ok)
}
