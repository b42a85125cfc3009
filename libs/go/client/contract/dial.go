package contract

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"go.uber.org/zap"
)

// Connection is an RPC client plus the chain id it reported.
type Connection struct {
	Client  *ethclient.Client
	ChainID *big.Int
}

// Dial connects to rpcURL and reads its chain id.
func Dial(ctx context.Context, rpcURL string) (*Connection, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RPC")
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to read chain id")
	}
	logger.Info("Connected to network RPC", zap.String("chain_id", chainID.String()))
	return &Connection{Client: client, ChainID: chainID}, nil
}

// Close closes the RPC client.
func (c *Connection) Close() {
	if c != nil && c.Client != nil {
		c.Client.Close()
	}
}

// Setup is what the orchestrator needs from the chain side. Gateway is nil
// when no DonationSystem deployment resolves for the connected chain.
type Setup struct {
	Gateway    *Gateway
	Transferer *Transferer
}

// NewSetup resolves the DonationSystem deployment for conn's chain and
// builds the gateway and the native transferer. key may be nil, in which
// case both are read-only or absent.
func NewSetup(conn *Connection, deployments *Deployments, key *ecdsa.PrivateKey, poll PollConfig) (*Setup, error) {
	setup := &Setup{}
	if conn == nil {
		return setup, nil
	}

	if key != nil {
		transferer, err := NewTransferer(conn.Client, key, conn.ChainID)
		if err != nil {
			return nil, err
		}
		setup.Transferer = transferer
	}

	resolved, ok, err := deployments.Resolve(conn.ChainID.Int64(), constants.DonationSystemContract)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("No DonationSystem deployment for chain, using simulation mode",
			zap.String("chain_id", conn.ChainID.String()))
		return setup, nil
	}

	gateway, err := NewGateway(GatewayConfig{
		Deployment: resolved,
		Caller:     conn.Client,
		Transactor: conn.Client,
		Receipts:   conn.Client,
		SignerKey:  key,
		Poll:       poll,
	})
	if err != nil {
		return nil, err
	}
	setup.Gateway = gateway
	return setup, nil
}
