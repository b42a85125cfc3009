package contract

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// ErrTransactionReverted is returned when a receipt reports a failed status.
var ErrTransactionReverted = errors.New("transaction reverted")

// ReceiptFetcher is satisfied by *ethclient.Client.
type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// PollConfig tunes receipt polling. Zero values take the defaults.
type PollConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// Timeout bounds the whole wait; zero means wait until ctx is done.
	Timeout time.Duration
}

func (c PollConfig) withDefaults() PollConfig {
	if c.InitialInterval <= 0 {
		c.InitialInterval = 500 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 5 * time.Second
	}
	if c.Multiplier <= 1 {
		c.Multiplier = 1.5
	}
	return c
}

// WaitForReceipt polls until the transaction is mined. A pending
// transaction (ethereum.NotFound) is retried with exponential backoff; any
// other RPC error stops the wait.
func WaitForReceipt(ctx context.Context, fetcher ReceiptFetcher, txHash common.Hash, cfg PollConfig) (*types.Receipt, error) {
	cfg = cfg.withDefaults()

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = cfg.InitialInterval
	expBackoff.MaxInterval = cfg.MaxInterval
	expBackoff.Multiplier = cfg.Multiplier
	expBackoff.MaxElapsedTime = cfg.Timeout

	var receipt *types.Receipt
	operation := func() error {
		r, err := fetcher.TransactionReceipt(ctx, txHash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return err
			}
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(expBackoff, ctx)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "stopped waiting for receipt %s", txHash.Hex())
		}
		return nil, errors.Wrapf(err, "failed waiting for receipt %s", txHash.Hex())
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, errors.Wrapf(ErrTransactionReverted, "tx %s", txHash.Hex())
	}
	return receipt, nil
}
