package services

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"go.uber.org/zap"
)

var _ ExecutionStrategy = (*ContractStrategy)(nil)

// ContractStrategy forwards every action to the deployed contract and waits
// for receipts.
type ContractStrategy struct {
	gateway interfaces.ContractGateway
	roles   interfaces.RoleStore
	logger  *zap.Logger
}

// NewContractStrategy creates a strategy over gateway. Donor roles are still
// read from roles.
func NewContractStrategy(gateway interfaces.ContractGateway, roles interfaces.RoleStore) *ContractStrategy {
	return &ContractStrategy{
		gateway: gateway,
		roles:   roles,
		logger:  logger.Named(logger.ComponentContract),
	}
}

func (c *ContractStrategy) Mode() string { return constants.ContractMode }

func (c *ContractStrategy) ContractAddress() string {
	return c.gateway.Address().Hex()
}

func (c *ContractStrategy) Decimals(business.OperationKind) int {
	return constants.StableTokenDecimals
}

func (c *ContractStrategy) Preflight(business.OperationKind) error { return nil }

func (c *ContractStrategy) ProgressMessage(kind business.OperationKind, detail string) string {
	switch kind {
	case business.OperationAddShelter:
		return "Adding shelter..."
	case business.OperationAddAnimal:
		return "Adding animal..."
	case business.OperationDonate:
		return "Processing donation..."
	case business.OperationDonateRecurring:
		return fmt.Sprintf("Configuring %s recurring donation...", detail)
	case business.OperationWithdraw:
		return "Withdrawing to wallet..."
	case business.OperationMarkSpent:
		return "Marking as spent..."
	default:
		return "Processing..."
	}
}

func (c *ContractStrategy) ResolveRoles(ctx context.Context, account string) business.RoleFlags {
	return resolveFromContract(ctx, c.gateway, c.roles.Snapshot(), account, c.logger)
}

// Pool is the contract-wide donation pool.
func (c *ContractStrategy) Pool(ctx context.Context, _ string, _ business.RoleFlags) (*big.Int, error) {
	return c.gateway.GetPool(ctx)
}

func (c *ContractStrategy) ShelterInfo(ctx context.Context, account string, flags business.RoleFlags) (*business.Shelter, error) {
	if !flags.IsShelter || !helpers.IsAddressValid(helpers.NormalizeAddress(account)) {
		return nil, nil
	}
	return c.gateway.GetShelter(ctx, common.HexToAddress(account))
}

func (c *ContractStrategy) AnimalIDs(ctx context.Context, account string, flags business.RoleFlags) ([]uint64, error) {
	if !flags.IsShelter || !helpers.IsAddressValid(helpers.NormalizeAddress(account)) {
		return nil, nil
	}
	return c.gateway.GetAnimalsByShelter(ctx, common.HexToAddress(account))
}

func (c *ContractStrategy) AddShelter(ctx context.Context, address, name string) (Submission, error) {
	return submitted(c.gateway.AddShelter(ctx, common.HexToAddress(address), name))
}

func (c *ContractStrategy) AddAnimal(ctx context.Context, _ string, name, species string) (Submission, error) {
	return submitted(c.gateway.AddAnimal(ctx, name, species))
}

// Donate sends the stable-token-scaled amount as the call value.
func (c *ContractStrategy) Donate(ctx context.Context, amount *big.Int, shelter string) (Submission, error) {
	return submitted(c.gateway.Donate(ctx, common.HexToAddress(shelter), amount))
}

func (c *ContractStrategy) DonateRecurring(ctx context.Context, req RecurringDonation) (Submission, error) {
	if req.Occurrences < 0 || req.Occurrences > math.MaxUint8 {
		return Submission{}, fmt.Errorf("occurrences %d out of range", req.Occurrences)
	}
	return submitted(c.gateway.DonateRecurring(ctx, common.HexToAddress(req.Shelter), req.Amount, req.Frequency, uint8(req.Occurrences)))
}

func (c *ContractStrategy) Withdraw(ctx context.Context, _ string, amount *big.Int, destination string) (Submission, error) {
	return submitted(c.gateway.WithdrawToWallet(ctx, common.HexToAddress(destination), amount))
}

func (c *ContractStrategy) MarkSpent(ctx context.Context, _ string, amount *big.Int) (Submission, error) {
	return submitted(c.gateway.MarkSpent(ctx, amount))
}

func (c *ContractStrategy) Confirm(ctx context.Context, txHash common.Hash) error {
	receipt, err := c.gateway.WaitForReceipt(ctx, txHash)
	if err != nil {
		return err
	}
	if receipt != nil && receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", txHash.Hex())
	}
	return nil
}

func (c *ContractStrategy) FetchAnimal(ctx context.Context, id uint64) (*business.Animal, error) {
	return c.gateway.GetAnimal(ctx, id)
}

func submitted(hash common.Hash, err error) (Submission, error) {
	if err != nil {
		return Submission{}, err
	}
	return Submission{TxHash: hash, AwaitReceipt: true}, nil
}
