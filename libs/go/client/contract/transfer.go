package contract

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"go.uber.org/zap"
)

var _ interfaces.NativeTransferer = (*Transferer)(nil)

// nativeTransferGas is the fixed intrinsic gas of a plain value transfer.
const nativeTransferGas = 21000

// TransferBackend is the subset of *ethclient.Client needed to send value.
type TransferBackend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Transferer signs and sends plain value transfers, bypassing any contract.
type Transferer struct {
	backend TransferBackend
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	logger  *zap.Logger
}

// NewTransferer builds a transferer for the key on chainID.
func NewTransferer(backend TransferBackend, key *ecdsa.PrivateKey, chainID *big.Int) (*Transferer, error) {
	if backend == nil {
		return nil, errors.New("transfer backend is required")
	}
	if key == nil {
		return nil, errors.New("signer key is required")
	}
	if chainID == nil {
		return nil, errors.New("chain id is required")
	}
	from := crypto.PubkeyToAddress(key.PublicKey)
	return &Transferer{
		backend: backend,
		key:     key,
		from:    from,
		chainID: new(big.Int).Set(chainID),
		logger:  logger.Named(logger.ComponentContract, zap.String("from", from.Hex()), zap.String("chain_id", chainID.String())),
	}, nil
}

// From returns the sending address.
func (t *Transferer) From() common.Address { return t.from }

// SendValue submits the transfer and returns its hash without waiting for
// it to be mined.
func (t *Transferer) SendValue(ctx context.Context, to common.Address, wei *big.Int) (common.Hash, error) {
	if wei == nil || wei.Sign() <= 0 {
		return common.Hash{}, errors.New("transfer value must be positive")
	}

	nonce, err := t.backend.PendingNonceAt(ctx, t.from)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get pending nonce")
	}
	gasPrice, err := t.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to suggest gas price")
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    wei,
		Gas:      nativeTransferGas,
		GasPrice: gasPrice,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(t.chainID), t.key)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to sign transfer")
	}
	if err := t.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to send transfer")
	}

	t.logger.Info("Sent native transfer",
		zap.String("to", to.Hex()),
		zap.String("value_wei", wei.String()),
		zap.String("tx_hash", signed.Hash().Hex()),
	)
	return signed.Hash(), nil
}
