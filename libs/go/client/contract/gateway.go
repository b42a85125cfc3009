// Package contract is the go-ethereum client for the DonationSystem
// contract: reads, signed writes, receipt polling, and plain value
// transfers.
package contract

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"go.uber.org/zap"
)

var _ interfaces.ContractGateway = (*Gateway)(nil)

// ErrNoSigner is returned by writes on a read-only gateway.
var ErrNoSigner = errors.New("no signer configured for contract writes")

// shelterRecord and animalRecord mirror the tuple outputs of the contract.
// Field names follow the component names of the embedded ABI so
// abi.ConvertType can copy the decoded anonymous struct into them.
type shelterRecord struct {
	Wallet       common.Address
	Name         string
	Active       bool
	RegisteredAt *big.Int
}

type animalRecord struct {
	Id           *big.Int
	Shelter      common.Address
	Name         string
	Species      string
	Balance      *big.Int
	Active       bool
	RegisteredAt *big.Int
}

// GatewayConfig wires a Gateway.
type GatewayConfig struct {
	Deployment *ResolvedDeployment
	Caller     bind.ContractCaller
	Transactor bind.ContractTransactor
	Receipts   ReceiptFetcher
	// SignerKey is optional; without it the gateway is read-only.
	SignerKey *ecdsa.PrivateKey
	Poll      PollConfig
}

// Gateway implements interfaces.ContractGateway over a bound contract.
type Gateway struct {
	address  common.Address
	abi      abi.ABI
	chainID  *big.Int
	contract *bind.BoundContract
	receipts ReceiptFetcher
	signer   *bind.TransactOpts
	poll     PollConfig
	logger   *zap.Logger
}

// NewGateway binds the deployment to the given backends.
func NewGateway(cfg GatewayConfig) (*Gateway, error) {
	if cfg.Deployment == nil {
		return nil, errors.New("deployment is required")
	}
	if cfg.Caller == nil {
		return nil, errors.New("contract caller is required")
	}

	chainID := big.NewInt(cfg.Deployment.ChainID)
	g := &Gateway{
		address:  cfg.Deployment.Address,
		abi:      cfg.Deployment.ABI,
		chainID:  chainID,
		contract: bind.NewBoundContract(cfg.Deployment.Address, cfg.Deployment.ABI, cfg.Caller, cfg.Transactor, nil),
		receipts: cfg.Receipts,
		poll:     cfg.Poll.withDefaults(),
		logger: logger.Named(logger.ComponentContract,
			zap.String("contract", cfg.Deployment.Name),
			zap.String("contract_address", cfg.Deployment.Address.Hex()),
			zap.Int64("chain_id", cfg.Deployment.ChainID),
		),
	}

	if cfg.SignerKey != nil {
		if cfg.Transactor == nil {
			return nil, errors.New("contract transactor is required when a signer key is set")
		}
		opts, err := bind.NewKeyedTransactorWithChainID(cfg.SignerKey, chainID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build keyed transactor")
		}
		g.signer = opts
	}

	return g, nil
}

// Address returns the contract address.
func (g *Gateway) Address() common.Address { return g.address }

// Signer returns the address that signs writes, or the zero address.
func (g *Gateway) Signer() common.Address {
	if g.signer == nil {
		return common.Address{}
	}
	return g.signer.From
}

func (g *Gateway) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, errors.Wrapf(err, "contract call %s failed", method)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("contract call %s returned no values", method)
	}
	return out, nil
}

func (g *Gateway) IsAdmin(ctx context.Context, account common.Address) (bool, error) {
	out, err := g.call(ctx, methodIsAdmin, account)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (g *Gateway) IsShelter(ctx context.Context, account common.Address) (bool, error) {
	out, err := g.call(ctx, methodIsShelter, account)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (g *Gateway) GetPool(ctx context.Context) (*big.Int, error) {
	out, err := g.call(ctx, methodGetPool)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (g *Gateway) GetShelter(ctx context.Context, account common.Address) (*business.Shelter, error) {
	out, err := g.call(ctx, methodGetShelter, account)
	if err != nil {
		return nil, err
	}
	rec := *abi.ConvertType(out[0], new(shelterRecord)).(*shelterRecord)
	return &business.Shelter{
		Address:      rec.Wallet.Hex(),
		Name:         rec.Name,
		Active:       rec.Active,
		RegisteredAt: unixTime(rec.RegisteredAt),
	}, nil
}

func (g *Gateway) GetAnimalsByShelter(ctx context.Context, shelter common.Address) ([]uint64, error) {
	out, err := g.call(ctx, methodGetAnimalsByShelter, shelter)
	if err != nil {
		return nil, err
	}
	raw := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)
	ids := make([]uint64, 0, len(raw))
	for _, id := range raw {
		if !id.IsUint64() {
			return nil, errors.Errorf("animal id %s overflows uint64", id)
		}
		ids = append(ids, id.Uint64())
	}
	return ids, nil
}

func (g *Gateway) GetAnimal(ctx context.Context, id uint64) (*business.Animal, error) {
	out, err := g.call(ctx, methodGetAnimal, new(big.Int).SetUint64(id))
	if err != nil {
		return nil, err
	}
	rec := *abi.ConvertType(out[0], new(animalRecord)).(*animalRecord)
	if rec.Id == nil || !rec.Id.IsUint64() {
		return nil, errors.Errorf("contract returned invalid animal id for %d", id)
	}
	return &business.Animal{
		ID:           rec.Id.Uint64(),
		Shelter:      rec.Shelter.Hex(),
		Name:         rec.Name,
		Species:      rec.Species,
		Balance:      rec.Balance,
		Active:       rec.Active,
		RegisteredAt: unixTime(rec.RegisteredAt),
	}, nil
}

func (g *Gateway) transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (common.Hash, error) {
	if g.signer == nil {
		return common.Hash{}, ErrNoSigner
	}
	opts := *g.signer
	opts.Context = ctx
	opts.Value = value

	tx, err := g.contract.Transact(&opts, method, args...)
	if err != nil {
		return common.Hash{}, errors.Wrapf(err, "contract write %s failed", method)
	}
	g.logger.Info("Submitted contract transaction",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
	)
	return tx.Hash(), nil
}

func (g *Gateway) AddShelter(ctx context.Context, shelter common.Address, name string) (common.Hash, error) {
	return g.transact(ctx, nil, methodAddShelter, shelter, name)
}

func (g *Gateway) AddAnimal(ctx context.Context, name, species string) (common.Hash, error) {
	return g.transact(ctx, nil, methodAddAnimal, name, species)
}

func (g *Gateway) Donate(ctx context.Context, shelter common.Address, value *big.Int) (common.Hash, error) {
	return g.transact(ctx, value, methodDonate, shelter)
}

func (g *Gateway) DonateRecurring(ctx context.Context, shelter common.Address, amount *big.Int, frequency string, occurrences uint8) (common.Hash, error) {
	return g.transact(ctx, nil, methodDonateRecurring, shelter, amount, frequency, occurrences)
}

func (g *Gateway) WithdrawToWallet(ctx context.Context, destination common.Address, amount *big.Int) (common.Hash, error) {
	return g.transact(ctx, nil, methodWithdrawToWallet, destination, amount)
}

func (g *Gateway) MarkSpent(ctx context.Context, amount *big.Int) (common.Hash, error) {
	return g.transact(ctx, nil, methodMarkSpent, amount)
}

func (g *Gateway) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if g.receipts == nil {
		return nil, errors.New("no receipt backend configured")
	}
	return WaitForReceipt(ctx, g.receipts, txHash, g.poll)
}

func unixTime(ts *big.Int) time.Time {
	if ts == nil || !ts.IsInt64() {
		return time.Time{}
	}
	return time.Unix(ts.Int64(), 0).UTC()
}
