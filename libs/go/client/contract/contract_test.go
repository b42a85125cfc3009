package contract

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var (
	testContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testShelter  = common.HexToAddress("0x925d17c8ebb340f04dda7545ad6f193b353b29f3")
)

// fakeCaller answers eth_call by packing canned outputs with the ABI.
type fakeCaller struct {
	abi     abi.ABI
	outputs map[string][]interface{}
	errs    map[string]error

	mu    sync.Mutex
	calls []string
}

func (f *fakeCaller) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeCaller) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	method, err := f.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.calls = append(f.calls, method.Name)
	f.mu.Unlock()

	if err := f.errs[method.Name]; err != nil {
		return nil, err
	}
	return method.Outputs.Pack(f.outputs[method.Name]...)
}

func newTestGateway(t *testing.T, caller *fakeCaller) *Gateway {
	t.Helper()
	parsed, err := DefaultABI()
	require.NoError(t, err)
	caller.abi = parsed

	g, err := NewGateway(GatewayConfig{
		Deployment: &ResolvedDeployment{ChainID: 31337, Name: "DonationSystem", Address: testContract, ABI: parsed},
		Caller:     caller,
	})
	require.NoError(t, err)
	return g
}

func TestGateway_Reads(t *testing.T) {
	registered := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	caller := &fakeCaller{outputs: map[string][]interface{}{
		methodIsAdmin:             {true},
		methodIsShelter:           {false},
		methodGetPool:             {big.NewInt(42_500_000)},
		methodGetAnimalsByShelter: {[]*big.Int{big.NewInt(0), big.NewInt(5)}},
		methodGetShelter: {shelterRecord{
			Wallet:       testShelter,
			Name:         "Protectora",
			Active:       true,
			RegisteredAt: big.NewInt(registered.Unix()),
		}},
		methodGetAnimal: {animalRecord{
			Id:           big.NewInt(5),
			Shelter:      testShelter,
			Name:         "Luna",
			Species:      "Dog",
			Balance:      big.NewInt(1_000_000),
			Active:       true,
			RegisteredAt: big.NewInt(registered.Unix()),
		}},
	}}
	g := newTestGateway(t, caller)
	ctx := context.Background()

	isAdmin, err := g.IsAdmin(ctx, testShelter)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isShelter, err := g.IsShelter(ctx, testShelter)
	require.NoError(t, err)
	assert.False(t, isShelter)

	pool, err := g.GetPool(ctx)
	require.NoError(t, err)
	assert.Equal(t, "42500000", pool.String())

	ids, err := g.GetAnimalsByShelter(ctx, testShelter)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 5}, ids)

	shelter, err := g.GetShelter(ctx, testShelter)
	require.NoError(t, err)
	assert.Equal(t, "Protectora", shelter.Name)
	assert.Equal(t, testShelter.Hex(), shelter.Address)
	assert.Equal(t, registered, shelter.RegisteredAt)

	animal, err := g.GetAnimal(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), animal.ID)
	assert.Equal(t, "Luna", animal.Name)
	assert.Equal(t, "1000000", animal.Balance.String())

	assert.Equal(t, testContract, g.Address())
}

func TestGateway_ReadError(t *testing.T) {
	caller := &fakeCaller{errs: map[string]error{methodIsAdmin: errors.New("connection refused")}}
	g := newTestGateway(t, caller)

	_, err := g.IsAdmin(context.Background(), testShelter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGateway_WritesRequireSigner(t *testing.T) {
	g := newTestGateway(t, &fakeCaller{})

	_, err := g.Donate(context.Background(), testShelter, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNoSigner)
	assert.Equal(t, common.Address{}, g.Signer())
}

type fakeReceipts struct {
	mu       sync.Mutex
	pending  int
	receipt  *types.Receipt
	err      error
	attempts int
}

func (f *fakeReceipts) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.attempts <= f.pending {
		return nil, ethereum.NotFound
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

func TestWaitForReceipt(t *testing.T) {
	fast := PollConfig{InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
	hash := common.HexToHash("0x01")

	t.Run("retries while pending", func(t *testing.T) {
		fetcher := &fakeReceipts{pending: 3, receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful}}
		receipt, err := WaitForReceipt(context.Background(), fetcher, hash, fast)
		require.NoError(t, err)
		assert.NotNil(t, receipt)
		assert.Equal(t, 4, fetcher.attempts)
	})

	t.Run("reverted", func(t *testing.T) {
		fetcher := &fakeReceipts{receipt: &types.Receipt{Status: types.ReceiptStatusFailed}}
		_, err := WaitForReceipt(context.Background(), fetcher, hash, fast)
		assert.ErrorIs(t, err, ErrTransactionReverted)
	})

	t.Run("rpc error is permanent", func(t *testing.T) {
		fetcher := &fakeReceipts{err: errors.New("bad request")}
		_, err := WaitForReceipt(context.Background(), fetcher, hash, fast)
		require.Error(t, err)
		assert.Equal(t, 1, fetcher.attempts)
	})

	t.Run("context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()
		fetcher := &fakeReceipts{pending: 1 << 30}
		_, err := WaitForReceipt(ctx, fetcher, hash, fast)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

type fakeTransferBackend struct {
	sent *types.Transaction
}

func (f *fakeTransferBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 7, nil
}

func (f *fakeTransferBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeTransferBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = tx
	return nil
}

func TestTransferer_SendValue(t *testing.T) {
	key, err := ParsePrivateKey(testKeyHex)
	require.NoError(t, err)
	backend := &fakeTransferBackend{}
	chainID := big.NewInt(31337)

	transferer, err := NewTransferer(backend, key, chainID)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), transferer.From())

	wei := big.NewInt(1_500_000_000_000_000_000)
	hash, err := transferer.SendValue(context.Background(), testShelter, wei)
	require.NoError(t, err)

	require.NotNil(t, backend.sent)
	assert.Equal(t, hash, backend.sent.Hash())
	assert.Equal(t, uint64(7), backend.sent.Nonce())
	assert.Equal(t, uint64(21000), backend.sent.Gas())
	assert.Equal(t, &testShelter, backend.sent.To())
	assert.Equal(t, wei, backend.sent.Value())

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), backend.sent)
	require.NoError(t, err)
	assert.Equal(t, transferer.From(), sender)

	_, err = transferer.SendValue(context.Background(), testShelter, big.NewInt(0))
	assert.Error(t, err)
}

func TestParsePrivateKey(t *testing.T) {
	key, err := ParsePrivateKey(testKeyHex[2:])
	require.NoError(t, err)
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", AddressOf(key).Hex())

	_, err = ParsePrivateKey("0x1234")
	assert.Error(t, err)
}

func TestDeployments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deployments.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`chains:
  31337:
    DonationSystem:
      address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  11155111:
    DonationSystem:
      address: "not-an-address"
`), 0o644))

	deployments, err := LoadDeployments(path)
	require.NoError(t, err)

	resolved, ok, err := deployments.Resolve(31337, "DonationSystem")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testContract, resolved.Address)
	_, hasDonate := resolved.ABI.Methods[methodDonate]
	assert.True(t, hasDonate)

	_, ok, err = deployments.Resolve(1, "DonationSystem")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = deployments.Resolve(11155111, "DonationSystem")
	assert.Error(t, err)

	missing, err := LoadDeployments(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	_, ok, err = missing.Resolve(31337, "DonationSystem")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseABI_RequiresMethods(t *testing.T) {
	_, err := ParseABI(`[{"type":"function","name":"esAdmin","inputs":[],"outputs":[]}]`)
	assert.Error(t, err)
}
