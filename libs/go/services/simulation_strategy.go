package services

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

var _ ExecutionStrategy = (*SimulationStrategy)(nil)

// SimulationStrategy runs every action against the in-memory simulation
// store after a fixed latency. Donations are the exception: they are real
// native transfers straight to the shelter.
type SimulationStrategy struct {
	store      *SimulationStore
	roles      interfaces.RoleStore
	transferer interfaces.NativeTransferer
	latency    LatencyConfig
	logger     *logger.StructuredLogger
}

// NewSimulationStrategy creates a simulation strategy. transferer may be
// nil, in which case donations are rejected.
func NewSimulationStrategy(store *SimulationStore, roles interfaces.RoleStore, transferer interfaces.NativeTransferer, latency LatencyConfig) *SimulationStrategy {
	if store == nil {
		store = NewSimulationStore()
	}
	return &SimulationStrategy{
		store:      store,
		roles:      roles,
		transferer: transferer,
		latency:    latency,
		logger:     logger.NewStructuredLogger(logger.ComponentSimulation),
	}
}

func (s *SimulationStrategy) Mode() string { return constants.SimulationMode }

func (s *SimulationStrategy) ContractAddress() string { return "" }

func (s *SimulationStrategy) Decimals(kind business.OperationKind) int {
	if kind == business.OperationDonate {
		return constants.NativeTokenDecimals
	}
	return constants.StableTokenDecimals
}

func (s *SimulationStrategy) Preflight(kind business.OperationKind) error {
	switch kind {
	case business.OperationAddShelter:
		return ErrContractUnavailable
	case business.OperationDonate:
		if s.transferer == nil {
			return ErrProviderUnavailable
		}
	}
	return nil
}

func (s *SimulationStrategy) ProgressMessage(kind business.OperationKind, detail string) string {
	switch kind {
	case business.OperationAddAnimal:
		return "Adding animal (simulation mode)..."
	case business.OperationDonate:
		return "Sending donation from your wallet..."
	case business.OperationDonateRecurring:
		return fmt.Sprintf("Setting up %s recurring donation (simulation mode)...", detail)
	case business.OperationWithdraw:
		return "Withdrawing to wallet (simulation mode)..."
	case business.OperationMarkSpent:
		return "Marking as spent (simulation mode)..."
	default:
		return "Processing (simulation mode)..."
	}
}

func (s *SimulationStrategy) ResolveRoles(_ context.Context, account string) business.RoleFlags {
	return resolveFromConfig(s.roles.Snapshot(), account)
}

// Pool is the connected shelter's own pool; other roles see zero.
func (s *SimulationStrategy) Pool(_ context.Context, account string, flags business.RoleFlags) (*big.Int, error) {
	if !flags.IsShelter || account == "" {
		return new(big.Int), nil
	}
	return s.store.Pool(account), nil
}

func (s *SimulationStrategy) ShelterInfo(_ context.Context, account string, flags business.RoleFlags) (*business.Shelter, error) {
	if !flags.IsShelter {
		return nil, nil
	}
	addr := helpers.NormalizeAddress(account)
	entry, ok := s.roles.Snapshot().Shelters[addr]
	if !ok {
		return nil, nil
	}
	return &business.Shelter{
		Address:      addr,
		Name:         entry.Name,
		Active:       true,
		RegisteredAt: time.Now().UTC(),
	}, nil
}

func (s *SimulationStrategy) AnimalIDs(_ context.Context, account string, _ business.RoleFlags) ([]uint64, error) {
	return s.store.AnimalIDs(account), nil
}

func (s *SimulationStrategy) AddShelter(context.Context, string, string) (Submission, error) {
	return Submission{}, ErrContractUnavailable
}

func (s *SimulationStrategy) AddAnimal(ctx context.Context, owner, name, species string) (Submission, error) {
	if err := sleepContext(ctx, s.latency.Default); err != nil {
		return Submission{}, err
	}
	animal := s.store.AddAnimal(owner, name, species)
	s.logger.WithWallet(owner).WithField("animal_id", animal.ID).Info("simulated animal registered")
	return Submission{Message: "Animal added successfully (simulation)!"}, nil
}

func (s *SimulationStrategy) Donate(ctx context.Context, amount *big.Int, shelter string) (Submission, error) {
	if s.transferer == nil {
		return Submission{}, ErrProviderUnavailable
	}
	hash, err := s.transferer.SendValue(ctx, common.HexToAddress(shelter), amount)
	if err != nil {
		return Submission{}, err
	}
	formatted := helpers.FormatUnitsTrimmed(amount, constants.NativeTokenDecimals)
	return Submission{
		TxHash:  hash,
		Message: fmt.Sprintf("Donation of %s %s sent successfully.", formatted, constants.NativeTokenSymbol),
	}, nil
}

// DonateRecurring credits the whole schedule to the shelter pool at once.
func (s *SimulationStrategy) DonateRecurring(ctx context.Context, req RecurringDonation) (Submission, error) {
	if err := sleepContext(ctx, s.latency.Recurring); err != nil {
		return Submission{}, err
	}
	total := req.Total()
	if _, err := s.store.Credit(req.Shelter, total); err != nil {
		return Submission{}, err
	}
	return Submission{
		Message: fmt.Sprintf("Recurring donation scheduled: %s %s %s for %d occurrences (Total: %s %s) - Simulation",
			helpers.FormatUnitsTrimmed(req.Amount, constants.StableTokenDecimals),
			constants.StableTokenSymbol,
			req.Frequency,
			req.Occurrences,
			formatCents(total),
			constants.StableTokenSymbol),
	}, nil
}

// Withdraw re-checks the pool at execution time, after the latency.
func (s *SimulationStrategy) Withdraw(ctx context.Context, owner string, amount *big.Int, destination string) (Submission, error) {
	if err := sleepContext(ctx, s.latency.Default); err != nil {
		return Submission{}, err
	}
	if _, err := s.store.Debit(owner, amount); err != nil {
		return Submission{}, err
	}
	return Submission{
		Message: fmt.Sprintf("%s %s withdrawn to %s (simulation)",
			helpers.FormatUnitsTrimmed(amount, constants.StableTokenDecimals),
			constants.StableTokenSymbol,
			helpers.ShortAddress(destination)),
	}, nil
}

func (s *SimulationStrategy) MarkSpent(ctx context.Context, owner string, amount *big.Int) (Submission, error) {
	if err := sleepContext(ctx, s.latency.Default); err != nil {
		return Submission{}, err
	}
	if _, err := s.store.Debit(owner, amount); err != nil {
		return Submission{}, err
	}
	return Submission{
		Message: fmt.Sprintf("%s %s marked as spent (simulation)",
			helpers.FormatUnitsTrimmed(amount, constants.StableTokenDecimals),
			constants.StableTokenSymbol),
	}, nil
}

func (s *SimulationStrategy) Confirm(context.Context, common.Hash) error {
	return nil
}

func (s *SimulationStrategy) FetchAnimal(_ context.Context, id uint64) (*business.Animal, error) {
	animal, ok := s.store.Animal(id)
	if !ok {
		return nil, fmt.Errorf("animal %d: %w", id, ErrNotFound)
	}
	return &animal, nil
}

// formatCents renders stable-token micro units rounded half up to two decimals.
func formatCents(micro *big.Int) string {
	cents := new(big.Int).Add(micro, big.NewInt(5000))
	cents.Quo(cents, big.NewInt(10000))
	return helpers.FormatUnits(cents, 2)
}
