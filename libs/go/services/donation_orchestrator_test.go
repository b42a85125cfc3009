package services_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/mocks"
	"github.com/rescuedao/rescuedao-api/libs/go/services"
	"github.com/rescuedao/rescuedao-api/libs/go/storage/rolestore"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func newRoleStore(t *testing.T) *services.RoleStoreService {
	t.Helper()
	store := services.NewRoleStoreService(rolestore.NewMemoryBackend())
	_, err := store.Load(context.Background())
	require.NoError(t, err)
	return store
}

func newSimOrchestrator(t *testing.T, wallet string, roles interfaces.RoleStore, sim *services.SimulationStore, transferer interfaces.NativeTransferer) *services.DonationOrchestrator {
	t.Helper()
	o, err := services.NewDonationOrchestrator(context.Background(), services.OrchestratorConfig{
		WalletAddress: wallet,
		Roles:         roles,
		Simulation:    sim,
		Transferer:    transferer,
	})
	require.NoError(t, err)
	t.Cleanup(o.Close)
	return o
}

func newContractOrchestrator(t *testing.T, wallet string, roles interfaces.RoleStore, gateway interfaces.ContractGateway) *services.DonationOrchestrator {
	t.Helper()
	o, err := services.NewDonationOrchestrator(context.Background(), services.OrchestratorConfig{
		WalletAddress: wallet,
		Roles:         roles,
		Gateway:       gateway,
	})
	require.NoError(t, err)
	t.Cleanup(o.Close)
	return o
}

func waitDone(t *testing.T, op interfaces.Operation) business.OperationSnapshot {
	t.Helper()
	select {
	case <-op.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("operation %s did not finish", op.ID())
	}
	return op.Snapshot()
}

func TestDonationOrchestrator_DefaultAdminEndToEnd(t *testing.T) {
	roles := newRoleStore(t)
	o := newSimOrchestrator(t, "0x16B67E7CDC48EA1E9ACB44965F26DDC6A1107C65", roles, nil, nil)

	state := o.State()
	assert.Equal(t, constants.SimulationMode, state.Mode)
	assert.Equal(t, business.RoleAdmin, state.Role)
	assert.True(t, state.IsAdmin)
	assert.False(t, state.IsShelter)
	assert.False(t, state.IsDonor, "admin is also a configured donor but roles are exclusive")
	assert.True(t, state.IsConnected)
	assert.Equal(t, adminAddr, state.UserAddress)
	assert.Equal(t, "0", state.Pool)
	assert.Equal(t, []business.RoleListing{{Address: shelterAddr, Name: constants.DefaultShelterName}}, state.Shelters)
	assert.Equal(t, []business.RoleListing{{Address: adminAddr, Name: constants.DefaultDonorName}}, state.Donors)
}

func TestDonationOrchestrator_ResolvesShelterAndDonor(t *testing.T) {
	roles := newRoleStore(t)
	require.NoError(t, roles.AddDonor(context.Background(), otherAddr, "Ana"))

	shelter := newSimOrchestrator(t, shelterAddr, roles, nil, nil)
	state := shelter.State()
	assert.Equal(t, business.RoleShelter, state.Role)
	require.NotNil(t, state.ShelterInfo)
	assert.Equal(t, constants.DefaultShelterName, state.ShelterInfo.Name)
	assert.True(t, state.ShelterInfo.Active)

	donor := newSimOrchestrator(t, otherAddr, roles, nil, nil)
	assert.Equal(t, business.RoleDonor, donor.State().Role)

	stranger := newSimOrchestrator(t, "0x2222222222222222222222222222222222222222", roles, nil, nil)
	assert.Equal(t, business.RoleNone, stranger.State().Role)
}

func TestDonationOrchestrator_RecurringCreditsTotal(t *testing.T) {
	roles := newRoleStore(t)
	sim := services.NewSimulationStore()
	donor := newSimOrchestrator(t, adminAddr, roles, sim, nil)
	shelter := newSimOrchestrator(t, shelterAddr, roles, sim, nil)

	op, err := donor.DonateRecurring(context.Background(), "10", "monthly", 12, shelterAddr)
	require.NoError(t, err)
	snap := waitDone(t, op)

	assert.Equal(t, business.StatusConfirmed, snap.Status)
	assert.Equal(t, "Recurring donation scheduled: 10 USDC monthly for 12 occurrences (Total: 120.00 USDC) - Simulation", snap.Message)
	assert.Equal(t, snap.Message, donor.State().Message)
	assert.Equal(t, "120000000", sim.Pool(shelterAddr).String())

	shelter.Refresh(context.Background())
	assert.Equal(t, "120", shelter.State().Pool)

	schedules := donor.Schedules()
	require.Len(t, schedules, 1)
	assert.Equal(t, 12, schedules[0].Occurrences)
	assert.Len(t, schedules[0].OccurrenceDates, 12)
	assert.Equal(t, "120.000000", schedules[0].Total)
}

func TestDonationOrchestrator_WithdrawInsufficientFunds(t *testing.T) {
	roles := newRoleStore(t)
	o := newSimOrchestrator(t, shelterAddr, roles, nil, nil)

	op, err := o.Withdraw(context.Background(), "5", otherAddr)
	require.NoError(t, err)
	snap := waitDone(t, op)

	assert.Equal(t, business.StatusFailed, snap.Status)
	assert.Equal(t, constants.MsgInsufficientFundsSim, snap.Message)

	state := o.State()
	assert.Equal(t, constants.MsgInsufficientFundsSim, state.Message)
	assert.False(t, state.IsProcessing)
	assert.Equal(t, "0", state.Pool)
}

func TestDonationOrchestrator_WithdrawAndMarkSpent(t *testing.T) {
	roles := newRoleStore(t)
	sim := services.NewSimulationStore()
	_, err := sim.Credit(shelterAddr, big.NewInt(20_000_000))
	require.NoError(t, err)
	o := newSimOrchestrator(t, shelterAddr, roles, sim, nil)
	assert.Equal(t, "20", o.State().Pool)

	op, err := o.Withdraw(context.Background(), "5", otherAddr)
	require.NoError(t, err)
	snap := waitDone(t, op)
	assert.Equal(t, business.StatusConfirmed, snap.Status)
	assert.Equal(t, "5 USDC withdrawn to 0x1111...1111 (simulation)", snap.Message)

	op, err = o.MarkSpent(context.Background(), "2.5")
	require.NoError(t, err)
	snap = waitDone(t, op)
	assert.Equal(t, "2.5 USDC marked as spent (simulation)", snap.Message)

	assert.Equal(t, "12.5", o.State().Pool)
}

type validationCase struct {
	name  string
	field string
	call  func(o *services.DonationOrchestrator) (interfaces.Operation, error)
}

func malformedInputCases(ctx context.Context) []validationCase {
	return []validationCase{
		{"zero donation", "amount", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.Donate(ctx, "0", shelterAddr)
		}},
		{"negative donation", "amount", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.Donate(ctx, "-3", shelterAddr)
		}},
		{"garbage amount", "amount", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.Withdraw(ctx, "ten", otherAddr)
		}},
		{"missing shelter", "shelter_address", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.Donate(ctx, "1", "")
		}},
		{"missing destination", "destination_address", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.Withdraw(ctx, "1", " ")
		}},
		{"bad frequency", "frequency", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.DonateRecurring(ctx, "1", "yearly", 3, shelterAddr)
		}},
		{"zero occurrences", "occurrences", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.DonateRecurring(ctx, "1", "daily", 0, shelterAddr)
		}},
		{"too many occurrences", "occurrences", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.DonateRecurring(ctx, "1", "daily", 101, shelterAddr)
		}},
		{"empty animal", "animal", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.AddAnimal(ctx, "Luna", "")
		}},
		{"shelter without name", "name", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.AddShelter(ctx, otherAddr, " ")
		}},
		{"mark spent zero", "amount", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.MarkSpent(ctx, "0.000000")
		}},
		{"too many decimals", "amount", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
			return o.MarkSpent(ctx, "0.0000001")
		}},
	}
}

func assertRejectedWithoutEffects(t *testing.T, o *services.DonationOrchestrator, tests []validationCase) {
	t.Helper()
	before := o.State()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := tt.call(o)
			assert.Nil(t, op)
			var verr *services.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			after := o.State()
			assert.False(t, after.IsProcessing)
			assert.Equal(t, before.Message, after.Message)
			assert.Equal(t, before.Pool, after.Pool)
			assert.Equal(t, before.AnimalIDs, after.AnimalIDs)
		})
	}
}

func TestDonationOrchestrator_ValidationLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()

	t.Run("simulation", func(t *testing.T) {
		roles := newRoleStore(t)
		sim := services.NewSimulationStore()
		// No SendValue expectation: any transfer fails the test.
		transferer := mocks.NewMockNativeTransfererForTest(t)
		transferer.EXPECT().From().Return(common.HexToAddress(shelterAddr)).AnyTimes()

		o := newSimOrchestrator(t, shelterAddr, roles, sim, transferer)
		assertRejectedWithoutEffects(t, o, malformedInputCases(ctx))
		assert.Empty(t, sim.AnimalIDs(shelterAddr))
		assert.Equal(t, int64(0), sim.Pool(shelterAddr).Int64())
		assert.Empty(t, o.Schedules())
	})

	t.Run("contract", func(t *testing.T) {
		roles := newRoleStore(t)
		// Reads only: any write or receipt wait fails the test.
		gateway := mocks.NewMockContractGatewayForTest(t)
		expectContractReads(gateway, false, true)
		gateway.EXPECT().GetShelter(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		gateway.EXPECT().GetAnimalsByShelter(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		o := newContractOrchestrator(t, shelterAddr, roles, gateway)
		cases := append(malformedInputCases(ctx),
			validationCase{"bad shelter address", "address", func(o *services.DonationOrchestrator) (interfaces.Operation, error) {
				return o.AddShelter(ctx, "0x1234", "Patitas")
			}},
		)
		assertRejectedWithoutEffects(t, o, cases)
		assert.Empty(t, o.Schedules())
	})
}

func TestDonationOrchestrator_RejectsWalletNotMatchingSigner(t *testing.T) {
	roles := newRoleStore(t)

	transferer := mocks.NewMockNativeTransfererForTest(t)
	transferer.EXPECT().From().Return(common.HexToAddress("0x1111111111111111111111111111111111111111")).AnyTimes()

	o, err := services.NewDonationOrchestrator(context.Background(), services.OrchestratorConfig{
		WalletAddress: adminAddr,
		Roles:         roles,
		Transferer:    transferer,
	})
	assert.Nil(t, o)
	assert.ErrorIs(t, err, services.ErrSignerMismatch)

	matching := mocks.NewMockNativeTransfererForTest(t)
	matching.EXPECT().From().Return(common.HexToAddress(adminAddr)).AnyTimes()
	o, err = services.NewDonationOrchestrator(context.Background(), services.OrchestratorConfig{
		WalletAddress: "0x" + strings.ToUpper(adminAddr[2:]),
		Roles:         roles,
		Transferer:    matching,
	})
	require.NoError(t, err)
	o.Close()
}

func TestDonationOrchestrator_SimulationAddShelterRejected(t *testing.T) {
	roles := newRoleStore(t)
	o := newSimOrchestrator(t, adminAddr, roles, nil, nil)

	op, err := o.AddShelter(context.Background(), otherAddr, "Patitas")
	assert.Nil(t, op)
	assert.ErrorIs(t, err, services.ErrContractUnavailable)

	state := o.State()
	assert.Equal(t, constants.MsgNoContractOrWallet, state.Message)
	assert.False(t, state.IsProcessing)
	_, added := roles.Snapshot().Shelters[otherAddr]
	assert.False(t, added)
}

func TestDonationOrchestrator_WalletNotConnected(t *testing.T) {
	roles := newRoleStore(t)
	o := newSimOrchestrator(t, "", roles, nil, nil)

	_, err := o.Donate(context.Background(), "1", shelterAddr)
	assert.ErrorIs(t, err, services.ErrWalletNotConnected)

	state := o.State()
	assert.Equal(t, constants.MsgWalletNotConnected, state.Message)
	assert.False(t, state.IsConnected)
	assert.Equal(t, business.RoleNone, state.Role)
}

func TestDonationOrchestrator_SimulationDonateUsesNativeTransfer(t *testing.T) {
	roles := newRoleStore(t)
	sim := services.NewSimulationStore()

	t.Run("without provider", func(t *testing.T) {
		o := newSimOrchestrator(t, adminAddr, roles, sim, nil)
		_, err := o.Donate(context.Background(), "1", shelterAddr)
		assert.ErrorIs(t, err, services.ErrProviderUnavailable)
		assert.Equal(t, constants.MsgProviderUnavailable, o.State().Message)
	})

	t.Run("sends wei and leaves pools untouched", func(t *testing.T) {
		transferer := mocks.NewMockNativeTransfererForTest(t)
		hash := common.HexToHash("0xabc1")
		wei, _ := new(big.Int).SetString("1500000000000000000", 10)
		transferer.EXPECT().
			SendValue(gomock.Any(), common.HexToAddress(shelterAddr), wei).
			Return(hash, nil)
		transferer.EXPECT().From().Return(common.HexToAddress(adminAddr)).AnyTimes()

		o := newSimOrchestrator(t, adminAddr, roles, sim, transferer)
		op, err := o.Donate(context.Background(), "1.5", shelterAddr)
		require.NoError(t, err)
		snap := waitDone(t, op)

		assert.Equal(t, business.StatusConfirmed, snap.Status)
		assert.Equal(t, "Donation of 1.5 ETH sent successfully.", snap.Message)
		assert.Equal(t, hash.Hex(), snap.TxHash)
		assert.Equal(t, int64(0), sim.Pool(shelterAddr).Int64())
	})

	t.Run("transfer failure", func(t *testing.T) {
		transferer := mocks.NewMockNativeTransfererForTest(t)
		transferer.EXPECT().SendValue(gomock.Any(), gomock.Any(), gomock.Any()).Return(common.Hash{}, errors.New("user rejected"))
		transferer.EXPECT().From().Return(common.HexToAddress(adminAddr)).AnyTimes()

		o := newSimOrchestrator(t, adminAddr, roles, sim, transferer)
		op, err := o.Donate(context.Background(), "1", shelterAddr)
		require.NoError(t, err)
		snap := waitDone(t, op)

		assert.Equal(t, business.StatusFailed, snap.Status)
		assert.Equal(t, "Failed to donate: user rejected", snap.Message)
		assert.False(t, o.State().IsProcessing)
	})
}

func TestDonationOrchestrator_SimulationAddAnimal(t *testing.T) {
	roles := newRoleStore(t)
	o := newSimOrchestrator(t, shelterAddr, roles, nil, nil)

	op, err := o.AddAnimal(context.Background(), "Luna", "Dog")
	require.NoError(t, err)
	snap := waitDone(t, op)
	assert.Equal(t, "Animal added successfully (simulation)!", snap.Message)

	assert.Equal(t, []uint64{0}, o.State().AnimalIDs)
	animal := o.FetchAnimal(context.Background(), 0)
	require.NotNil(t, animal)
	assert.Equal(t, "Luna", animal.Name)
	assert.Nil(t, o.FetchAnimal(context.Background(), 7))

	found, ok := o.Operation(op.ID())
	require.True(t, ok)
	assert.Equal(t, business.StatusConfirmed, found.Snapshot().Status)
}

func TestDonationOrchestrator_SubscribeSeesLifecycle(t *testing.T) {
	roles := newRoleStore(t)
	o := newSimOrchestrator(t, shelterAddr, roles, nil, nil)

	var mu sync.Mutex
	var processing []bool
	unsubscribe := o.Subscribe(func(s business.DonationState) {
		mu.Lock()
		processing = append(processing, s.IsProcessing)
		mu.Unlock()
	})
	defer unsubscribe()

	op, err := o.AddAnimal(context.Background(), "Milo", "Cat")
	require.NoError(t, err)
	waitDone(t, op)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, processing)
	assert.True(t, processing[0], "first notification reports the submission")
	assert.False(t, processing[len(processing)-1], "last notification reports completion")
}

func expectContractReads(gateway *mocks.MockContractGateway, admin, shelter bool) {
	gateway.EXPECT().Address().Return(contractAddr).AnyTimes()
	gateway.EXPECT().IsAdmin(gomock.Any(), gomock.Any()).Return(admin, nil).AnyTimes()
	gateway.EXPECT().IsShelter(gomock.Any(), gomock.Any()).Return(shelter, nil).AnyTimes()
	gateway.EXPECT().GetPool(gomock.Any()).Return(big.NewInt(42_500_000), nil).AnyTimes()
}

func TestDonationOrchestrator_ContractRoles(t *testing.T) {
	roles := newRoleStore(t)

	t.Run("contract is authoritative", func(t *testing.T) {
		gateway := mocks.NewMockContractGatewayForTest(t)
		expectContractReads(gateway, false, true)
		gateway.EXPECT().GetShelter(gomock.Any(), common.HexToAddress(otherAddr)).
			Return(&business.Shelter{Address: otherAddr, Name: "OnChain", Active: true}, nil).AnyTimes()
		gateway.EXPECT().GetAnimalsByShelter(gomock.Any(), common.HexToAddress(otherAddr)).
			Return([]uint64{3, 4}, nil).AnyTimes()

		o := newContractOrchestrator(t, otherAddr, roles, gateway)
		state := o.State()
		assert.Equal(t, constants.ContractMode, state.Mode)
		assert.Equal(t, contractAddr.Hex(), state.ContractAddress)
		assert.Equal(t, business.RoleShelter, state.Role)
		assert.Equal(t, "42.5", state.Pool)
		assert.Equal(t, []uint64{3, 4}, state.AnimalIDs)
		require.NotNil(t, state.ShelterInfo)
		assert.Equal(t, "OnChain", state.ShelterInfo.Name)
	})

	t.Run("read failure means no role", func(t *testing.T) {
		gateway := mocks.NewMockContractGatewayForTest(t)
		gateway.EXPECT().Address().Return(contractAddr).AnyTimes()
		gateway.EXPECT().IsAdmin(gomock.Any(), gomock.Any()).Return(false, errors.New("rpc down")).AnyTimes()
		gateway.EXPECT().GetPool(gomock.Any()).Return(nil, errors.New("rpc down")).AnyTimes()

		o := newContractOrchestrator(t, adminAddr, roles, gateway)
		state := o.State()
		assert.Equal(t, business.RoleNone, state.Role)
		assert.Equal(t, "0", state.Pool)
	})
}

func TestDonationOrchestrator_ContractDonateConfirmed(t *testing.T) {
	roles := newRoleStore(t)
	gateway := mocks.NewMockContractGatewayForTest(t)
	expectContractReads(gateway, false, false)

	hash := common.HexToHash("0xfeed")
	gateway.EXPECT().Donate(gomock.Any(), common.HexToAddress(shelterAddr), big.NewInt(10_000_000)).Return(hash, nil)
	gateway.EXPECT().WaitForReceipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	o := newContractOrchestrator(t, otherAddr, roles, gateway)
	op, err := o.Donate(context.Background(), "10", shelterAddr)
	require.NoError(t, err)
	snap := waitDone(t, op)

	assert.Equal(t, business.StatusConfirmed, snap.Status)
	assert.Equal(t, constants.MsgTxConfirmed, snap.Message)
	assert.Equal(t, hash.Hex(), snap.TxHash)
	assert.Equal(t, constants.MsgTxConfirmed, o.State().Message)
	assert.False(t, o.State().IsProcessing)
}

func TestDonationOrchestrator_ContractFailures(t *testing.T) {
	roles := newRoleStore(t)

	t.Run("submission rejected", func(t *testing.T) {
		gateway := mocks.NewMockContractGatewayForTest(t)
		expectContractReads(gateway, true, false)
		gateway.EXPECT().AddShelter(gomock.Any(), common.HexToAddress(otherAddr), "Patitas").
			Return(common.Hash{}, errors.New("execution reverted: only admin"))

		o := newContractOrchestrator(t, adminAddr, roles, gateway)
		op, err := o.AddShelter(context.Background(), otherAddr, "Patitas")
		require.NoError(t, err)
		snap := waitDone(t, op)
		assert.Equal(t, business.StatusFailed, snap.Status)
		assert.Equal(t, "Failed to add shelter: execution reverted: only admin", snap.Message)
	})

	t.Run("receipt error", func(t *testing.T) {
		gateway := mocks.NewMockContractGatewayForTest(t)
		expectContractReads(gateway, false, true)
		gateway.EXPECT().GetShelter(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		gateway.EXPECT().GetAnimalsByShelter(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		hash := common.HexToHash("0xbad")
		gateway.EXPECT().WithdrawToWallet(gomock.Any(), common.HexToAddress(otherAddr), big.NewInt(1_000_000)).Return(hash, nil)
		gateway.EXPECT().WaitForReceipt(gomock.Any(), hash).Return(nil, errors.New("transaction reverted"))

		o := newContractOrchestrator(t, shelterAddr, roles, gateway)
		op, err := o.Withdraw(context.Background(), "1", otherAddr)
		require.NoError(t, err)
		snap := waitDone(t, op)
		assert.Equal(t, business.StatusFailed, snap.Status)
		assert.Equal(t, "Error: transaction reverted", snap.Message)
		assert.False(t, o.State().IsProcessing)
	})

	t.Run("fetch animal failure returns nil", func(t *testing.T) {
		gateway := mocks.NewMockContractGatewayForTest(t)
		expectContractReads(gateway, false, false)
		gateway.EXPECT().GetAnimal(gomock.Any(), uint64(9)).Return(nil, errors.New("no such animal"))

		o := newContractOrchestrator(t, otherAddr, roles, gateway)
		assert.Nil(t, o.FetchAnimal(context.Background(), 9))
	})
}

func TestDonationOrchestrator_IsProcessingTracksEveryToken(t *testing.T) {
	roles := newRoleStore(t)
	gateway := mocks.NewMockContractGatewayForTest(t)
	expectContractReads(gateway, false, false)

	first := common.HexToHash("0x01")
	second := common.HexToHash("0x02")
	release := map[common.Hash]chan struct{}{
		first:  make(chan struct{}),
		second: make(chan struct{}),
	}
	gateway.EXPECT().Donate(gomock.Any(), gomock.Any(), big.NewInt(1_000_000)).Return(first, nil)
	gateway.EXPECT().Donate(gomock.Any(), gomock.Any(), big.NewInt(2_000_000)).Return(second, nil)
	gateway.EXPECT().WaitForReceipt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
			select {
			case <-release[hash]:
				return &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}).Times(2)

	o := newContractOrchestrator(t, otherAddr, roles, gateway)
	opA, err := o.Donate(context.Background(), "1", shelterAddr)
	require.NoError(t, err)
	opB, err := o.Donate(context.Background(), "2", shelterAddr)
	require.NoError(t, err)
	assert.True(t, o.State().IsProcessing)

	close(release[second])
	waitDone(t, opB)
	assert.True(t, o.State().IsProcessing, "first donation is still awaiting its receipt")
	assert.Eventually(t, func() bool {
		return opA.Snapshot().Status == business.StatusConfirming
	}, time.Second, 5*time.Millisecond)

	close(release[first])
	waitDone(t, opA)
	assert.False(t, o.State().IsProcessing)
}

func TestDonationOrchestrator_CloseCancelsInFlight(t *testing.T) {
	roles := newRoleStore(t)
	gateway := mocks.NewMockContractGatewayForTest(t)
	expectContractReads(gateway, false, false)
	gateway.EXPECT().Donate(gomock.Any(), gomock.Any(), gomock.Any()).Return(common.HexToHash("0x03"), nil)
	gateway.EXPECT().WaitForReceipt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ common.Hash) (*types.Receipt, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	o, err := services.NewDonationOrchestrator(context.Background(), services.OrchestratorConfig{
		WalletAddress: otherAddr,
		Roles:         roles,
		Gateway:       gateway,
	})
	require.NoError(t, err)

	op, err := o.Donate(context.Background(), "1", shelterAddr)
	require.NoError(t, err)
	o.Close()

	snap := waitDone(t, op)
	assert.Equal(t, business.StatusFailed, snap.Status)

	_, err = o.Donate(context.Background(), "1", shelterAddr)
	assert.ErrorIs(t, err, services.ErrOrchestratorClosed)
}

func TestDonationOrchestrator_WaitIdle(t *testing.T) {
	roles := newRoleStore(t)
	gateway := mocks.NewMockContractGatewayForTest(t)
	expectContractReads(gateway, false, false)

	release := make(chan struct{})
	gateway.EXPECT().Donate(gomock.Any(), gomock.Any(), gomock.Any()).Return(common.HexToHash("0x04"), nil)
	gateway.EXPECT().WaitForReceipt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ common.Hash) (*types.Receipt, error) {
			select {
			case <-release:
				return &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})

	o := newContractOrchestrator(t, otherAddr, roles, gateway)
	require.NoError(t, o.WaitIdle(context.Background()), "nothing in flight")

	op, err := o.Donate(context.Background(), "1", shelterAddr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, o.WaitIdle(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, o.WaitIdle(context.Background()))
	assert.Equal(t, business.StatusConfirmed, op.Snapshot().Status)
	assert.False(t, o.State().IsProcessing)
}
