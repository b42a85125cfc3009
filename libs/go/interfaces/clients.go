package interfaces

//go:generate mockgen -source=clients.go -destination=../mocks/mock_clients.go -package=mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// ContractGateway is the read/write surface of the deployed DonationSystem
// contract. Amounts are raw on-chain integers; callers own decimal scaling.
type ContractGateway interface {
	Address() common.Address

	IsAdmin(ctx context.Context, account common.Address) (bool, error)
	IsShelter(ctx context.Context, account common.Address) (bool, error)
	GetPool(ctx context.Context) (*big.Int, error)
	GetShelter(ctx context.Context, account common.Address) (*business.Shelter, error)
	GetAnimalsByShelter(ctx context.Context, shelter common.Address) ([]uint64, error)
	GetAnimal(ctx context.Context, id uint64) (*business.Animal, error)

	AddShelter(ctx context.Context, shelter common.Address, name string) (common.Hash, error)
	AddAnimal(ctx context.Context, name, species string) (common.Hash, error)
	Donate(ctx context.Context, shelter common.Address, value *big.Int) (common.Hash, error)
	DonateRecurring(ctx context.Context, shelter common.Address, amount *big.Int, frequency string, occurrences uint8) (common.Hash, error)
	WithdrawToWallet(ctx context.Context, destination common.Address, amount *big.Int) (common.Hash, error)
	MarkSpent(ctx context.Context, amount *big.Int) (common.Hash, error)

	WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// NativeTransferer sends a plain value transfer from the connected signer.
type NativeTransferer interface {
	From() common.Address
	SendValue(ctx context.Context, to common.Address, wei *big.Int) (common.Hash, error)
}

// RoleBackend persists the serialized role configuration and reports
// changes made by other writers.
type RoleBackend interface {
	// Read returns the stored blob; found is false when nothing is stored.
	Read(ctx context.Context) (data []byte, found bool, err error)
	Write(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
	// Watch delivers a signal whenever the stored blob may have changed.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
	Close() error
}

// SecretsProvider resolves secrets such as the signer key.
type SecretsProvider interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}
