package services

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// ExecutionStrategy is the data source behind the orchestrator: the deployed
// contract or the local simulation. It is chosen once per orchestrator.
type ExecutionStrategy interface {
	Mode() string
	ContractAddress() string
	// Decimals is the scale used to parse the amount of kind.
	Decimals(kind business.OperationKind) int
	// Preflight rejects kinds the strategy cannot run at all.
	Preflight(kind business.OperationKind) error
	ProgressMessage(kind business.OperationKind, detail string) string

	ResolveRoles(ctx context.Context, account string) business.RoleFlags
	Pool(ctx context.Context, account string, flags business.RoleFlags) (*big.Int, error)
	ShelterInfo(ctx context.Context, account string, flags business.RoleFlags) (*business.Shelter, error)
	AnimalIDs(ctx context.Context, account string, flags business.RoleFlags) ([]uint64, error)

	AddShelter(ctx context.Context, address, name string) (Submission, error)
	AddAnimal(ctx context.Context, owner, name, species string) (Submission, error)
	Donate(ctx context.Context, amount *big.Int, shelter string) (Submission, error)
	DonateRecurring(ctx context.Context, req RecurringDonation) (Submission, error)
	Withdraw(ctx context.Context, owner string, amount *big.Int, destination string) (Submission, error)
	MarkSpent(ctx context.Context, owner string, amount *big.Int) (Submission, error)
	// Confirm blocks until a submitted transaction is mined.
	Confirm(ctx context.Context, txHash common.Hash) error

	FetchAnimal(ctx context.Context, id uint64) (*business.Animal, error)
}

// Submission is the outcome of handing a write to a strategy.
type Submission struct {
	TxHash common.Hash
	// AwaitReceipt is set when TxHash must be confirmed before the
	// operation completes.
	AwaitReceipt bool
	// Message replaces the status message when the operation completes
	// without awaiting a receipt.
	Message string
}

// RecurringDonation carries the validated parameters of a recurring donation.
type RecurringDonation struct {
	Shelter     string
	Amount      *big.Int
	Frequency   string
	Occurrences int
}

// Total is Amount times Occurrences.
func (r RecurringDonation) Total() *big.Int {
	return new(big.Int).Mul(r.Amount, big.NewInt(int64(r.Occurrences)))
}

// LatencyConfig is the simulated confirmation delay. Zero disables it.
type LatencyConfig struct {
	Default   time.Duration
	Recurring time.Duration
}

// DefaultLatencyConfig mirrors the pace of a wallet confirmation.
func DefaultLatencyConfig() LatencyConfig {
	return LatencyConfig{Default: time.Second, Recurring: 1500 * time.Millisecond}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
